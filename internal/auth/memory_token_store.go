package auth

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryTokenStore keeps refresh tokens in process memory. It pairs with the
// in-memory storage backend for development and tests; single process only.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]memoryToken
}

type memoryToken struct {
	userID    uint
	username  string
	expiresAt time.Time
}

var _ TokenStore = (*MemoryTokenStore)(nil)

// NewMemoryTokenStore creates a new in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]memoryToken)}
}

// StoreRefreshToken stores a refresh token with TTL.
func (s *MemoryTokenStore) StoreRefreshToken(_ context.Context, tokenID string, userID uint, username string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tokenID] = memoryToken{
		userID:    userID,
		username:  username,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// GetRefreshToken retrieves refresh token data, honoring expiry.
func (s *MemoryTokenStore) GetRefreshToken(_ context.Context, tokenID string) (uint, string, error) {
	s.mu.RLock()
	token, ok := s.tokens[tokenID]
	s.mu.RUnlock()
	if !ok || time.Now().After(token.expiresAt) {
		return 0, "", fmt.Errorf("refresh token not found")
	}
	return token.userID, token.username, nil
}

// DeleteRefreshToken removes a refresh token.
func (s *MemoryTokenStore) DeleteRefreshToken(_ context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, tokenID)
	return nil
}

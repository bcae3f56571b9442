package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "brandforge/internal/errors"
	"brandforge/internal/model"
	"brandforge/internal/repository"
)

func strPtr(s string) *string { return &s }

func newBrandServiceForTest() (BrandService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	return NewBrandService(store.Brands(), nil), store
}

func TestBrandService_Create(t *testing.T) {
	service, _ := newBrandServiceForTest()
	ctx := context.Background()

	brand, err := service.Create(ctx, 1, BrandInput{
		Name:     strPtr("Acme"),
		Tagline:  strPtr("We make everything"),
		Keywords: []string{"bold", "playful"},
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), brand.UserID)
	assert.Equal(t, "Acme", brand.Name)
	assert.True(t, brand.IsActive, "first brand becomes the active one")

	second, err := service.Create(ctx, 1, BrandInput{Name: strPtr("Side Project")})
	assert.NoError(t, err)
	assert.False(t, second.IsActive, "later brands do not steal the active flag")
}

func TestBrandService_Get_OwnershipScoped(t *testing.T) {
	service, _ := newBrandServiceForTest()
	ctx := context.Background()

	brand, err := service.Create(ctx, 1, BrandInput{Name: strPtr("Acme")})
	assert.NoError(t, err)

	// The owner sees it.
	got, err := service.Get(ctx, brand.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, brand.ID, got.ID)

	// Another user gets not-found, not forbidden.
	_, err = service.Get(ctx, brand.ID, 2)
	assert.ErrorIs(t, err, apperrors.ErrBrandNotFound)
}

func TestBrandService_Update_PartialFields(t *testing.T) {
	service, _ := newBrandServiceForTest()
	ctx := context.Background()

	brand, err := service.Create(ctx, 1, BrandInput{
		Name:    strPtr("Acme"),
		Tagline: strPtr("Original tagline"),
	})
	assert.NoError(t, err)
	createdUpdatedAt := brand.UpdatedAt

	updated, err := service.Update(ctx, brand.ID, 1, BrandInput{
		Tagline:  strPtr("New tagline"),
		Keywords: []string{"minimal"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Acme", updated.Name, "omitted fields keep their value")
	assert.Equal(t, "New tagline", *updated.Tagline)
	assert.Equal(t, model.StringList{"minimal"}, updated.Keywords)

	stored, err := service.Get(ctx, brand.ID, 1)
	assert.NoError(t, err)
	assert.True(t, stored.UpdatedAt.After(createdUpdatedAt) || stored.UpdatedAt.Equal(createdUpdatedAt))
	assert.Equal(t, "New tagline", *stored.Tagline)
}

func TestBrandService_Update_NotOwned(t *testing.T) {
	service, _ := newBrandServiceForTest()
	ctx := context.Background()

	brand, err := service.Create(ctx, 1, BrandInput{Name: strPtr("Acme")})
	assert.NoError(t, err)

	_, err = service.Update(ctx, brand.ID, 2, BrandInput{Name: strPtr("Hijacked")})
	assert.ErrorIs(t, err, apperrors.ErrBrandNotFound)

	stored, err := service.Get(ctx, brand.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Acme", stored.Name)
}

func TestBrandService_Current(t *testing.T) {
	service, store := newBrandServiceForTest()
	ctx := context.Background()

	t.Run("no brands", func(t *testing.T) {
		_, err := service.Current(ctx, 1)
		assert.ErrorIs(t, err, apperrors.ErrBrandNotFound)
	})

	// Seed two inactive brands directly so the fallback path is exercised.
	repo := store.Brands()
	first := &model.Brand{UserID: 1, Name: "First"}
	assert.NoError(t, repo.Create(ctx, first))
	second := &model.Brand{UserID: 1, Name: "Second"}
	assert.NoError(t, repo.Create(ctx, second))

	t.Run("falls back to most recently updated", func(t *testing.T) {
		assert.NoError(t, repo.Update(ctx, first))

		current, err := service.Current(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "First", current.Name)
	})

	t.Run("explicit active wins", func(t *testing.T) {
		_, err := service.Activate(ctx, second.ID, 1)
		assert.NoError(t, err)

		current, err := service.Current(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Second", current.Name)
	})
}

func TestBrandService_Activate(t *testing.T) {
	service, _ := newBrandServiceForTest()
	ctx := context.Background()

	first, err := service.Create(ctx, 1, BrandInput{Name: strPtr("First")})
	assert.NoError(t, err)
	second, err := service.Create(ctx, 1, BrandInput{Name: strPtr("Second")})
	assert.NoError(t, err)

	activated, err := service.Activate(ctx, second.ID, 1)
	assert.NoError(t, err)
	assert.True(t, activated.IsActive)

	// The sibling loses the flag.
	stored, err := service.Get(ctx, first.ID, 1)
	assert.NoError(t, err)
	assert.False(t, stored.IsActive)

	// A foreign brand cannot be activated.
	_, err = service.Activate(ctx, second.ID, 2)
	assert.ErrorIs(t, err, apperrors.ErrBrandNotFound)
}

func TestBrandService_Delete_Cascades(t *testing.T) {
	service, store := newBrandServiceForTest()
	ctx := context.Background()

	brand, err := service.Create(ctx, 1, BrandInput{Name: strPtr("Acme")})
	assert.NoError(t, err)

	color := &model.Color{BrandID: brand.ID, Name: "Red", HexValue: "#FF0000"}
	assert.NoError(t, store.Colors().Create(ctx, color))
	row := &model.Typography{BrandID: brand.ID, FontFamily: "Inter"}
	assert.NoError(t, store.Typography().Create(ctx, row))

	assert.NoError(t, service.Delete(ctx, brand.ID, 1))

	_, err = service.Get(ctx, brand.ID, 1)
	assert.ErrorIs(t, err, apperrors.ErrBrandNotFound)

	colors, err := store.Colors().ListByBrand(ctx, brand.ID)
	assert.NoError(t, err)
	assert.Empty(t, colors, "child colors are removed with the brand")

	rows, err := store.Typography().ListByBrand(ctx, brand.ID)
	assert.NoError(t, err)
	assert.Empty(t, rows, "child typography is removed with the brand")
}

func TestBrandService_Delete_NotOwned(t *testing.T) {
	service, _ := newBrandServiceForTest()
	ctx := context.Background()

	brand, err := service.Create(ctx, 1, BrandInput{Name: strPtr("Acme")})
	assert.NoError(t, err)

	err = service.Delete(ctx, brand.ID, 2)
	assert.ErrorIs(t, err, apperrors.ErrBrandNotFound)

	_, err = service.Get(ctx, brand.ID, 1)
	assert.NoError(t, err, "the brand survives a foreign delete attempt")
}

// MockBrandRepository backs error-path tests the in-memory store cannot
// produce, since it never fails.
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) Create(ctx context.Context, brand *model.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) Update(ctx context.Context, brand *model.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) FindByID(ctx context.Context, id, userID uint) (*model.Brand, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindActiveByUser(ctx context.Context, userID uint) (*model.Brand, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindLatestByUser(ctx context.Context, userID uint) (*model.Brand, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Brand), args.Error(1)
}

func (m *MockBrandRepository) ListByUser(ctx context.Context, userID uint) ([]model.Brand, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Brand), args.Error(1)
}

func (m *MockBrandRepository) SetActive(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockBrandRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// An unexpected storage failure during the active-brand lookup must fail
// the create, not silently produce an inactive brand.
func TestBrandService_Create_ActiveLookupFailure(t *testing.T) {
	repo := new(MockBrandRepository)
	service := NewBrandService(repo, nil)
	ctx := context.Background()

	lookupErr := errors.New("connection reset by peer")
	repo.On("FindActiveByUser", ctx, uint(1)).Return(nil, lookupErr)

	_, err := service.Create(ctx, 1, BrandInput{Name: strPtr("Acme")})
	assert.ErrorIs(t, err, lookupErr)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

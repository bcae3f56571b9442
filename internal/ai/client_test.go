package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"

	apperrors "brandforge/internal/errors"
)

// stubCompleter scripts chat completion responses for the client under test.
type stubCompleter struct {
	calls     int
	responses []stubResponse
	lastReq   openai.ChatCompletionRequest
}

type stubResponse struct {
	content string
	empty   bool
	err     error
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.lastReq = req
	idx := s.calls
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	s.calls++

	scripted := s.responses[idx]
	if scripted.err != nil {
		return openai.ChatCompletionResponse{}, scripted.err
	}
	if scripted.empty {
		return openai.ChatCompletionResponse{}, nil
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: scripted.content}},
		},
	}, nil
}

func newTestClient(stub *stubCompleter, maxRetries int) *Client {
	return NewClientWithCompleter(stub, "gpt-4o", 5*time.Second, maxRetries)
}

func TestClient_GenerateColorPalette(t *testing.T) {
	stub := &stubCompleter{responses: []stubResponse{{
		content: `{"primary":[{"name":"Forge Orange","hex":"#E85000","meaning":"energy"}],"secondary":[],"accent":[]}`,
	}}}
	client := newTestClient(stub, 0)

	palette, err := client.GenerateColorPalette(context.Background(), BrandProfileInput{BrandName: "Brandforge"})

	assert.NoError(t, err)
	assert.Len(t, palette.Primary, 1)
	assert.Equal(t, "#E85000", palette.Primary[0].Hex)
	assert.Equal(t, 1, stub.calls)

	// Structured generations request JSON mode.
	assert.NotNil(t, stub.lastReq.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, stub.lastReq.ResponseFormat.Type)
}

func TestClient_EmptyCompletion(t *testing.T) {
	stub := &stubCompleter{responses: []stubResponse{{empty: true}}}
	client := newTestClient(stub, 0)

	_, err := client.GenerateTypography(context.Background(), BrandProfileInput{BrandName: "Brandforge"})

	assert.ErrorIs(t, err, apperrors.ErrEmptyCompletion)
	assert.Equal(t, 1, stub.calls, "an empty answer is not retried")
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	stub := &stubCompleter{responses: []stubResponse{
		{err: &openai.APIError{HTTPStatusCode: 500, Message: "upstream hiccup"}},
		{content: `{"story":"s","values":[],"personality":[],"voiceAndTone":{"description":"d","examples":{"dos":[],"donts":[]}}}`},
	}}
	client := newTestClient(stub, 2)

	story, err := client.GenerateBrandStory(context.Background(), BrandProfileInput{BrandName: "Brandforge"})

	assert.NoError(t, err)
	assert.Equal(t, "s", story.Story)
	assert.Equal(t, 2, stub.calls)
}

func TestClient_RetryExhaustion(t *testing.T) {
	stub := &stubCompleter{responses: []stubResponse{
		{err: &openai.APIError{HTTPStatusCode: 429, Message: "rate limited"}},
	}}
	client := newTestClient(stub, 1)

	_, err := client.GenerateColorPalette(context.Background(), BrandProfileInput{BrandName: "Brandforge"})

	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	assert.Equal(t, 2, stub.calls, "initial attempt plus one retry")
}

func TestClient_NonRetryableAPIError(t *testing.T) {
	stub := &stubCompleter{responses: []stubResponse{
		{err: &openai.APIError{HTTPStatusCode: 400, Message: "bad request"}},
	}}
	client := newTestClient(stub, 3)

	_, err := client.GenerateColorPalette(context.Background(), BrandProfileInput{BrandName: "Brandforge"})

	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	assert.Equal(t, 1, stub.calls, "client errors are not retried")
}

func TestClient_TransportErrorRetried(t *testing.T) {
	stub := &stubCompleter{responses: []stubResponse{
		{err: errors.New("connection reset")},
		{content: `{"primary":[],"secondary":[],"accent":[]}`},
	}}
	client := newTestClient(stub, 2)

	_, err := client.GenerateColorPalette(context.Background(), BrandProfileInput{BrandName: "Brandforge"})

	assert.NoError(t, err)
	assert.Equal(t, 2, stub.calls)
}

func TestClient_MalformedJSON(t *testing.T) {
	stub := &stubCompleter{responses: []stubResponse{{content: "I'd suggest warm colors!"}}}
	client := newTestClient(stub, 0)

	_, err := client.GenerateColorPalette(context.Background(), BrandProfileInput{BrandName: "Brandforge"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, apperrors.ErrEmptyCompletion)
	assert.Equal(t, 1, stub.calls, "a parse failure is not retried")
}

func TestClient_Message(t *testing.T) {
	stub := &stubCompleter{responses: []stubResponse{{content: "Keep it short."}}}
	client := newTestClient(stub, 0)

	reply, err := client.Message(context.Background(), "what makes a good tagline?")

	assert.NoError(t, err)
	assert.Equal(t, "Keep it short.", reply)

	// Free-form chat is plain text with the assistant system prompt.
	assert.Nil(t, stub.lastReq.ResponseFormat)
	if assert.Len(t, stub.lastReq.Messages, 2) {
		assert.Equal(t, openai.ChatMessageRoleSystem, stub.lastReq.Messages[0].Role)
		assert.Equal(t, "what makes a good tagline?", stub.lastReq.Messages[1].Content)
	}
}

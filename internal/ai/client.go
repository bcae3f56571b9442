package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sethvargo/go-retry"

	apperrors "brandforge/internal/errors"
)

const retryBaseDelay = 500 * time.Millisecond

// ChatCompleter is the slice of the OpenAI client the generation layer
// uses. *openai.Client satisfies it; tests substitute a stub.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client turns brand profiles into design artifacts via an external
// completion service.
type Client struct {
	api        ChatCompleter
	model      string
	timeout    time.Duration
	maxRetries uint64
}

// NewClient builds a client for the OpenAI API.
func NewClient(apiKey, model string, timeout time.Duration, maxRetries int) *Client {
	return NewClientWithCompleter(openai.NewClient(apiKey), model, timeout, maxRetries)
}

// NewClientWithCompleter builds a client around an injected completion API.
func NewClientWithCompleter(api ChatCompleter, model string, timeout time.Duration, maxRetries int) *Client {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{
		api:        api,
		model:      model,
		timeout:    timeout,
		maxRetries: uint64(maxRetries),
	}
}

// complete runs one chat completion with retry and backoff. Transport
// errors and 429/5xx responses are retried; other API errors are not.
func (c *Client) complete(ctx context.Context, messages []openai.ChatCompletionMessage, jsonMode bool) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	var resp openai.ChatCompletionResponse
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(retryBaseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var callErr error
		resp, callErr = c.api.CreateChatCompletion(ctx, req)
		if callErr == nil {
			return nil
		}
		if isRetryable(callErr) {
			return retry.RetryableError(callErr)
		}
		return callErr
	})
	if err != nil {
		log.Printf("completion call failed: %v", err)
		return "", fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", apperrors.ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// isRetryable reports whether a completion error is worth another attempt.
func isRetryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	// Transport-level failure.
	return true
}

// completeJSON requests a JSON-mode completion for a single user prompt and
// decodes it into out.
func (c *Client) completeJSON(ctx context.Context, prompt string, out interface{}) error {
	content, err := c.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}, true)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		log.Printf("completion parse failed: %v", err)
		return fmt.Errorf("parse completion: %w", err)
	}
	return nil
}

// GenerateColorPalette produces a palette for the given brand profile.
func (c *Client) GenerateColorPalette(ctx context.Context, profile BrandProfileInput) (*ColorPaletteOutput, error) {
	var out ColorPaletteOutput
	if err := c.completeJSON(ctx, colorPalettePrompt(profile), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateTypography produces a typography recommendation for the profile.
func (c *Client) GenerateTypography(ctx context.Context, profile BrandProfileInput) (*TypographyOutput, error) {
	var out TypographyOutput
	if err := c.completeJSON(ctx, typographyPrompt(profile), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateBrandStory produces the narrative artifacts for the profile.
func (c *Client) GenerateBrandStory(ctx context.Context, profile BrandProfileInput) (*BrandStoryOutput, error) {
	var out BrandStoryOutput
	if err := c.completeJSON(ctx, brandStoryPrompt(profile), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateLogoGuidelines produces logo usage guidelines from the profile
// and its palette.
func (c *Client) GenerateLogoGuidelines(ctx context.Context, profile BrandProfileInput, palette ColorPaletteOutput) (GuidelineDocument, error) {
	var out GuidelineDocument
	if err := c.completeJSON(ctx, logoGuidelinesPrompt(profile, palette), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateDigitalGuidelines produces digital design guidelines.
func (c *Client) GenerateDigitalGuidelines(ctx context.Context, profile BrandProfileInput, palette ColorPaletteOutput, typography TypographyOutput) (GuidelineDocument, error) {
	var out GuidelineDocument
	if err := c.completeJSON(ctx, digitalGuidelinesPrompt(profile, palette, typography), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GeneratePrintGuidelines produces print design guidelines.
func (c *Client) GeneratePrintGuidelines(ctx context.Context, profile BrandProfileInput, palette ColorPaletteOutput, typography TypographyOutput) (GuidelineDocument, error) {
	var out GuidelineDocument
	if err := c.completeJSON(ctx, printGuidelinesPrompt(profile, palette, typography), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Message answers a free-form assistant question, plain text.
func (c *Client) Message(ctx context.Context, message string) (string, error) {
	return c.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: assistantSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: message},
	}, false)
}

// Package gemini backs the chat relay's Assistant capability with the
// Gemini API via google.golang.org/genai.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"sync"

	"gramsetu-backend/internal/usecase/chat"

	"google.golang.org/genai"
)

const (
	DefaultModel = "gemini-2.0-flash"

	temperature     = 0.7
	maxOutputTokens = 1000
)

type Client struct {
	client *genai.Client
	model  string

	mu   sync.Mutex
	chat *genai.Chat
}

var _ chat.Assistant = (*Client)(nil)

// New dials nothing; the genai client is lazy, so construction only
// fails on an empty key.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{client: gc, model: model}, nil
}

func (c *Client) generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(temperature)),
		MaxOutputTokens:   maxOutputTokens,
		SystemInstruction: genai.NewContentFromText(chat.Persona, genai.RoleUser),
	}
}

// Send appends text to the running conversation and returns the model's
// reply. Failures are wrapped in the relay's structured categories.
func (c *Client) Send(ctx context.Context, text string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.chat == nil {
		session, err := c.client.Chats.Create(ctx, c.model, c.generateConfig(), nil)
		if err != nil {
			return "", classify(err)
		}
		c.chat = session
	}

	resp, err := c.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", classify(err)
	}
	return resp.Text(), nil
}

// Reset drops the session; the next Send starts a fresh conversation
// seeded only with the persona instruction.
func (c *Client) Reset() {
	c.mu.Lock()
	c.chat = nil
	c.mu.Unlock()
}

// classify maps provider errors onto the relay's categories, keeping the
// original error in the chain for logging.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return fmt.Errorf("%w: %v", chat.ErrCredential, err)
		case 429:
			return fmt.Errorf("%w: %v", chat.ErrRateLimited, err)
		}
		return err
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", chat.ErrConnectivity, err)
	}
	return err
}

// AngelaMos | 2026
// client.go

package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/thoriumlabs/platform-api/internal/config"
	"github.com/thoriumlabs/platform-api/internal/core"
)

const systemPrompt = "You are a thorium and clean energy expert. Answer " +
	"questions about thorium, nuclear reactors, and clean energy concisely " +
	"and accurately."

// Asker answers free-form knowledge questions. The OpenAI client and the
// disabled fallback both satisfy it.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

type OpenAIClient struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
}

func NewOpenAIClient(cfg config.AssistantConfig) *OpenAIClient {
	return &OpenAIClient{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *OpenAIClient) Ask(
	ctx context.Context,
	question string,
) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: question},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request: %w: %v", core.ErrExternalService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read assistant response: %w", err)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return "", fmt.Errorf(
			"decode assistant response: %w: %v",
			core.ErrExternalService,
			err,
		)
	}

	if resp.StatusCode != http.StatusOK {
		msg := "upstream error"
		if chat.Error != nil {
			msg = chat.Error.Message
		}
		return "", fmt.Errorf(
			"assistant upstream %d: %s: %w",
			resp.StatusCode,
			msg,
			core.ErrExternalService,
		)
	}

	if len(chat.Choices) == 0 {
		return "", fmt.Errorf(
			"assistant returned no choices: %w",
			core.ErrExternalService,
		)
	}

	return chat.Choices[0].Message.Content, nil
}

// Disabled stands in when no API key is configured. Every question fails
// with ErrExternalService so callers degrade to a 503 instead of crashing.
type Disabled struct{}

func (Disabled) Ask(context.Context, string) (string, error) {
	return "", fmt.Errorf(
		"knowledge assistant is not configured: %w",
		core.ErrExternalService,
	)
}

// NewAsker picks the real client or the disabled fallback from config.
func NewAsker(cfg config.AssistantConfig) Asker {
	if cfg.Enabled() {
		return NewOpenAIClient(cfg)
	}
	return Disabled{}
}

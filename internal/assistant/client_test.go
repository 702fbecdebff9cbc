// AngelaMos | 2026
// client_test.go

package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoriumlabs/platform-api/internal/config"
	"github.com/thoriumlabs/platform-api/internal/core"
)

func testConfig(baseURL string) config.AssistantConfig {
	return config.AssistantConfig{
		APIKey:      "sk-test",
		BaseURL:     baseURL,
		Model:       "gpt-4o-mini",
		Temperature: 0.2,
		Timeout:     5 * time.Second,
	}
}

func TestOpenAIClient_Ask(t *testing.T) {
	var captured chatRequest

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.Header().Set("Content-Type", "application/json")
			//nolint:errcheck // test server
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]string{
						"role":    "assistant",
						"content": "Thorium is fertile, not fissile.",
					}},
				},
			})
		},
	))
	defer server.Close()

	client := NewOpenAIClient(testConfig(server.URL))

	answer, err := client.Ask(context.Background(), "Is thorium fissile?")
	require.NoError(t, err)
	assert.Equal(t, "Thorium is fertile, not fissile.", answer)

	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.InDelta(t, 0.2, captured.Temperature, 0.001)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "Is thorium fissile?", captured.Messages[1].Content)
}

func TestOpenAIClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			//nolint:errcheck // test server
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{
					"message": "rate limit exceeded",
					"type":    "rate_limit_error",
				},
			})
		},
	))
	defer server.Close()

	client := NewOpenAIClient(testConfig(server.URL))

	_, err := client.Ask(context.Background(), "anything")
	assert.ErrorIs(t, err, core.ErrExternalService)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			//nolint:errcheck // test server
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		},
	))
	defer server.Close()

	client := NewOpenAIClient(testConfig(server.URL))

	_, err := client.Ask(context.Background(), "anything")
	assert.ErrorIs(t, err, core.ErrExternalService)
}

func TestOpenAIClient_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {},
	))
	server.Close()

	client := NewOpenAIClient(testConfig(server.URL))

	_, err := client.Ask(context.Background(), "anything")
	assert.ErrorIs(t, err, core.ErrExternalService)
}

func TestDisabled_AlwaysExternalServiceError(t *testing.T) {
	_, err := Disabled{}.Ask(context.Background(), "anything")
	assert.ErrorIs(t, err, core.ErrExternalService)
}

func TestNewAsker_Selection(t *testing.T) {
	withKey := NewAsker(config.AssistantConfig{APIKey: "sk-test"})
	assert.IsType(t, &OpenAIClient{}, withKey)

	withoutKey := NewAsker(config.AssistantConfig{})
	assert.IsType(t, Disabled{}, withoutKey)
}

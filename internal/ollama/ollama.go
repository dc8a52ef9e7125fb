// Package ollama is a minimal client for the two endpoints the
// program needs: the installed-model list and single-shot generation.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrMissingResponse reports a well-formed generation reply that
	// lacks the "response" field.
	ErrMissingResponse = errors.New("no response field in generation output")

	// ErrInvalidResponse reports a generation reply body that could
	// not be decoded.
	ErrInvalidResponse = errors.New("invalid generation output")
)

// Model describes one installed model as reported by /api/tags.
type Model struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
	Details    struct {
		Family string `json:"family"`
	} `json:"details"`
}

// Client talks to one Ollama server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for baseURL. timeout bounds each request on
// top of any context deadline.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Tags lists the installed models. Any transport or status problem is
// an error; callers treat it as "service not running".
func (c *Client) Tags(ctx context.Context) ([]Model, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("building tags request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tags request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tags request: http %d", resp.StatusCode)
	}
	var payload struct {
		Models []Model `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding tags response: %w", err)
	}
	return payload.Models, nil
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// Generate runs a single non-streaming completion and returns the
// reply text. Failures split three ways so callers can report them
// distinctly: transport/status errors, ErrMissingResponse, and
// ErrInvalidResponse.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: model, Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("encoding generation request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading generation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation request: http %d: %s", resp.StatusCode, snippet(payload, 200))
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	raw, ok := out["response"]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingResponse, snippet(payload, 200))
	}
	var reply string
	if err := json.Unmarshal(raw, &reply); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return reply, nil
}

// PickModel returns preferred when it is installed, otherwise the
// first installed model, otherwise fallback.
func PickModel(models []Model, preferred, fallback string) string {
	if preferred != "" {
		for _, m := range models {
			if m.Name == preferred {
				return preferred
			}
		}
	}
	if len(models) > 0 {
		return models[0].Name
	}
	return fallback
}

func snippet(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		s = s[:n] + "..."
	}
	return s
}

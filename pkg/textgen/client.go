// Package textgen calls the external résumé text-generation service.
package textgen

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

	"resume-builder-backend/internal/domain"
)

var ErrEmptyResume = errors.New("text generation returned an empty resume")

type Config struct {
	URL     string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type Client struct {
	url    string
	apiKey string
	model  string
	http   *http.Client
}

var _ domain.TextGenerator = (*Client)(nil)

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		http:   &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Model string `json:"model,omitempty"`
	Data  any    `json:"data"`
}

type generateResponse struct {
	Resume string `json:"resume"`
}

// Generate posts {"data": payload} and returns the "resume" field of the reply.
func (c *Client) Generate(ctx context.Context, payload any) (string, error) {
	body, err := json.Marshal(generateRequest{Model: c.model, Data: payload})
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call text generation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("text generation failed: status=%d, body=%s", resp.StatusCode, string(respBody))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if strings.TrimSpace(out.Resume) == "" {
		return "", ErrEmptyResume
	}
	return out.Resume, nil
}

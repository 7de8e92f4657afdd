package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
)

// ErrEmptyResponse reports a well-formed completion with no usable content.
var ErrEmptyResponse = errors.New("ai: model returned no content")

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	log        *logger.Logger
}

func New(baseURL, apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		log:        logger.Default().WithPrefix("ai"),
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete sends one chat completion and returns the first choice's content.
func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("ai")

	payload := completionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	log.Debug("requesting completion: model=%s, prompt_bytes=%d", c.model, len(user))
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("completion request failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	log.Debug("completion received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("completion failed: status=%d, body=%s", resp.StatusCode, string(respBody))
		return "", fmt.Errorf("openrouter status %d: %s", resp.StatusCode, string(respBody))
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed to decode completion: %v", err)
		return "", err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	log.Info("completion generated: %d bytes", len(out.Choices[0].Message.Content))
	return out.Choices[0].Message.Content, nil
}

// GenerateStrategyInsights asks the model for tactical recommendations for
// an upcoming match, grounded in the scouted performance summaries.
func (c *Client) GenerateStrategyInsights(ctx context.Context, input StrategyInput) (string, error) {
	return c.complete(ctx, strategySystemPrompt, buildStrategyPrompt(input))
}

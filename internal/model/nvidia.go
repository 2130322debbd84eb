package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	apperrors "github.com/akshit-shetty/eduops-assistant/internal/errors"
)

// NVIDIAConfig configures the NVIDIA-hosted OpenAI-compatible endpoint.
type NVIDIAConfig struct {
	APIKey  string
	BaseURL string // e.g. https://integrate.api.nvidia.com/v1
	Model   string
	Timeout time.Duration
}

// NVIDIAClient implements Client against a chat-completions endpoint.
// One attempt per call; the fallback chain owns recovery, not the client.
type NVIDIAClient struct {
	cfg    *NVIDIAConfig
	client *http.Client
}

// NewNVIDIAClient creates a client, or nil for a nil config.
func NewNVIDIAClient(cfg *NVIDIAConfig) *NVIDIAClient {
	if cfg == nil {
		return nil
	}
	return &NVIDIAClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

const systemPrompt = `You are the assistant of an educational operations dashboard.
Answer questions about the program using only the aggregate numbers provided below.
Keep answers short and factual. If the data cannot answer the question, say so and
suggest rephrasing.`

// Complete sends the utterance with the aggregate data summary and
// returns the model's answer.
func (c *NVIDIAClient) Complete(ctx context.Context, utterance, dataSummary string) (string, error) {
	if !c.Available() {
		return "", apperrors.EscalationFailed(fmt.Errorf("client not configured"))
	}

	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt + "\n\nCurrent data:\n" + dataSummary},
			{"role": "user", "content": utterance},
		},
		"temperature": 0.2,
		"max_tokens":  400,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", apperrors.EscalationFailed(fmt.Errorf("failed to marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", apperrors.EscalationFailed(fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return "", apperrors.EscalationTimeout(err)
		}
		return "", apperrors.EscalationFailed(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.EscalationFailed(fmt.Errorf("failed to read response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperrors.EscalationFailed(
			fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", apperrors.EscalationFailed(fmt.Errorf("failed to parse response: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return "", apperrors.EscalationFailed(fmt.Errorf("no choices in response"))
	}
	return parsed.Choices[0].Message.Content, nil
}

// Available reports whether the client is configured with an API key.
func (c *NVIDIAClient) Available() bool {
	return c != nil && c.cfg != nil && c.cfg.APIKey != ""
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// ============================================================
// API Types
// ============================================================

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

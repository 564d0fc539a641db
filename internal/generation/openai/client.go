// Package openai talks to the OpenAI HTTP API for chat completions and
// image generation.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/crowlands/grimoire/internal/config"
	"github.com/crowlands/grimoire/internal/generation/domain"
)

type Client struct {
	apiKey     string
	baseURL    string
	chatModel  string
	imageModel string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(cfg config.Config, log *zap.Logger) *Client {
	return &Client{
		apiKey:     cfg.OpenAIAPIKey,
		baseURL:    cfg.OpenAIBaseURL,
		chatModel:  cfg.OpenAIChatModel,
		imageModel: cfg.OpenAIImageModel,
		httpClient: &http.Client{Timeout: cfg.GenerationTimeout},
		log:        log.Named("generation.openai"),
	}
}

func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body := map[string]any{
		"model": c.chatModel,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
	}

	raw, err := c.post(ctx, "/chat/completions", body)
	if err != nil {
		return "", err
	}

	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &response); err != nil {
		return "", fmt.Errorf("%w: decode completion: %v", domain.ErrModelUnavailable, err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrModelUnavailable, response.Error.Message)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", domain.ErrModelUnavailable)
	}
	return response.Choices[0].Message.Content, nil
}

// GenerateImage returns the first generated image as base64 PNG data.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model":           c.imageModel,
		"prompt":          prompt,
		"n":               1,
		"response_format": "b64_json",
	}

	raw, err := c.post(ctx, "/images/generations", body)
	if err != nil {
		return "", err
	}

	var response struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &response); err != nil {
		return "", fmt.Errorf("%w: decode image response: %v", domain.ErrModelUnavailable, err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrModelUnavailable, response.Error.Message)
	}
	if len(response.Data) == 0 || response.Data[0].B64JSON == "" {
		return "", domain.ErrNoImage
	}
	return response.Data[0].B64JSON, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body map[string]any) ([]byte, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrModelUnavailable, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.log.Warn("model backend error",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: status %d", domain.ErrModelUnavailable, resp.StatusCode)
	}
	return raw, nil
}

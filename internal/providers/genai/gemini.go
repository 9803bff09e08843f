package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// Gemini calls the Google generative language API to produce reply text.
// It implements the assistant's TextGenerator contract.
type Gemini struct {
	baseProvider
}

type GeminiConfig struct {
	BaseURL string // defaults to the public endpoint
	APIKey  string
	Model   string
	Timeout time.Duration
}

func NewGemini(cfg GeminiConfig) *Gemini {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	return &Gemini{
		baseProvider: newBaseProvider(baseURL, cfg.APIKey, cfg.Model, cfg.Timeout),
	}
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": prompt},
				},
			},
		},
	}

	path := fmt.Sprintf("/v1beta/models/%s:generateContent?key=%s", g.model, url.QueryEscape(g.apiKey))
	resp, err := g.doRequest(ctx, http.MethodPost, path, payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	return parseGeminiResponse(resp)
}

func parseGeminiResponse(resp *http.Response) (string, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty candidates: %s", string(data))
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

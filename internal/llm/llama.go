package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// LLaMAClient talks to a hosted LLaMA endpoint with bearer auth. Hosts
// disagree on the response shape, so several known variants are accepted.
type LLaMAClient struct {
	apiKey string
	model  string
	apiURL string
	http   *http.Client
}

func NewLLaMAClient(apiKey, model, apiURL string) *LLaMAClient {
	return &LLaMAClient{
		apiKey: apiKey,
		model:  model,
		apiURL: apiURL,
		http:   newHTTPClient(textTimeout),
	}
}

func (l *LLaMAClient) Name() string { return "llama" }

func (l *LLaMAClient) Complete(ctx context.Context, prompt string) (string, error) {
	if l.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if l.apiURL == "" {
		return "", fmt.Errorf("llama: missing api url")
	}

	payload := map[string]any{
		"model":       l.model,
		"input":       prompt,
		"messages":    []map[string]string{{"role": "user", "content": prompt}},
		"temperature": 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+l.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("llama request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Provider: "llama", Code: resp.StatusCode, Body: truncate(string(raw), maxErrorBody)}
	}

	jsonText := extractJSON(string(raw))
	if jsonText == "" {
		return "", ErrEmptyResponse
	}

	var parsed struct {
		OutputText    string `json:"output_text"`
		GeneratedText string `json:"generated_text"`
		Generation    struct {
			Text string `json:"text"`
		} `json:"generation"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return "", fmt.Errorf("decode llama response: %w", err)
	}

	candidates := []string{parsed.OutputText, parsed.GeneratedText, parsed.Generation.Text}
	if len(parsed.Choices) > 0 {
		candidates = append(candidates, parsed.Choices[0].Message.Content)
	}
	for _, c := range candidates {
		if s := strings.TrimSpace(c); s != "" {
			return s, nil
		}
	}

	return "", ErrEmptyResponse
}

func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}

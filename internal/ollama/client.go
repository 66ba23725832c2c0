package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Config struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// StreamHandler receives each generated fragment as it arrives.
type StreamHandler func(delta string) error

type GenerateRequest struct {
	Model  string
	Prompt string
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ollama request failed: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("ollama request failed with status %d", e.StatusCode)
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errors.New("ollama base url is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, errors.New("ollama model is required")
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: client,
	}, nil
}

// Generate sends one prompt and reads the streamed answer to completion.
// The response body is newline-delimited JSON; each object's response field
// is appended to the returned string in arrival order. A malformed line or a
// server-reported error fails the whole call and no partial text is returned.
func (c *Client) Generate(ctx context.Context, req GenerateRequest, handle StreamHandler) (string, error) {
	payload := generateRequest{
		Model:  c.resolveModel(req.Model),
		Prompt: req.Prompt,
		Stream: true,
	}
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return "", readStatusError(httpResp)
	}

	var answer strings.Builder

	scanner := bufio.NewScanner(httpResp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var chunk generateChunk
		if err := json.Unmarshal([]byte(line), &chunk); err != nil {
			return "", fmt.Errorf("decode stream chunk: %w", err)
		}
		if chunk.Error != "" {
			return "", fmt.Errorf("ollama error: %s", chunk.Error)
		}
		if chunk.Response == "" {
			continue
		}
		answer.WriteString(chunk.Response)
		if handle != nil {
			if err := handle(chunk.Response); err != nil {
				return "", err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read stream: %w", err)
	}
	return answer.String(), nil
}

// Models returns the model names known to the server via /api/tags.
// Informational only; the generation path does not depend on it.
func (c *Client) Models(ctx context.Context) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return nil, readStatusError(httpResp)
	}
	var resp tagsResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	names := make([]string, 0, len(resp.Models))
	for _, model := range resp.Models {
		if model.Name == "" {
			continue
		}
		names = append(names, model.Name)
	}
	return names, nil
}

func (c *Client) resolveModel(override string) string {
	if strings.TrimSpace(override) == "" {
		return c.model
	}
	return override
}

func readStatusError(httpResp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(httpResp.Body).Decode(&body)
	return &StatusError{
		StatusCode: httpResp.StatusCode,
		Message:    body.Error,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateChunk struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
	Error     string `json:"error,omitempty"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

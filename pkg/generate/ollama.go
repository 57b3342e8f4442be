package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

// OllamaClient runs extraction against a local Ollama server, for pipelines
// that keep legal text off external services.
type OllamaClient struct {
	client *api.Client
	model  string
}

// NewOllamaClient builds a client for the Ollama server at host
// (e.g. "http://localhost:11434").
func NewOllamaClient(host, model string, timeout time.Duration) (*OllamaClient, error) {
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}
	return &OllamaClient{
		client: api.NewClient(base, &http.Client{Timeout: timeout}),
		model:  model,
	}, nil
}

// Model returns the model identifier.
func (c *OllamaClient) Model() string {
	return c.model
}

// Generate issues one non-streaming generation request constrained to JSON
// output with temperature zero.
func (c *OllamaClient) Generate(ctx context.Context, req Request) (string, error) {
	stream := false
	genReq := api.GenerateRequest{
		Model:  c.model,
		System: req.System,
		Prompt: req.Prompt,
		Stream: &stream,
		Format: json.RawMessage(`"json"`),
		Options: map[string]any{
			"temperature": 0,
		},
	}

	var out strings.Builder
	err := c.client.Generate(ctx, &genReq, func(resp api.GenerateResponse) error {
		_, err := out.WriteString(resp.Response)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate failed: %w", err)
	}
	return out.String(), nil
}

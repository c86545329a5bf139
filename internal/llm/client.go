package llm

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
)

// GenerateRequest holds the parameters for one generation call.
// Temperature and MaxTokens override the task defaults when non-nil.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64
	MaxTokens    *int
}

// GenerateResponse holds the raw model output.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client is the minimal surface the extraction services need from a
// language model.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether the Ollama server answers at all.
	Available(ctx context.Context) bool
}

type ollamaClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates a Client that talks to a local Ollama instance
// over its HTTP API.
func NewOllamaClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			},
		},
		observer: observer,
	}
}

// Request and response bodies for POST /api/generate, non-streaming.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	body := ollamaRequest{
		Model:  c.cfg.Model,
		System: req.SystemPrompt,
		Prompt: req.UserPrompt,
		Options: ollamaOptions{
			Temperature: taskCfg.Temperature,
			NumPredict:  taskCfg.MaxTokens,
		},
	}
	if req.Temperature != nil {
		body.Options.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		body.Options.NumPredict = *req.MaxTokens
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TaskTimeout(req.Task))*time.Millisecond)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		resp, err := c.post(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.emit(req.Task, latency, nil)
			return &GenerateResponse{Text: resp.Response, Model: resp.Model, LatencyMs: latency}, nil
		}
		lastErr = err

		// A dead context means timeout or caller cancellation, not a
		// transient failure worth another attempt.
		if ctx.Err() != nil {
			break
		}
	}

	c.emit(req.Task, time.Since(start).Milliseconds(), lastErr)

	switch {
	case ctx.Err() != nil:
		return nil, ErrTimeout
	case isConnectionError(lastErr):
		return nil, ErrOllamaUnavailable
	default:
		return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}
}

func (c *ollamaClient) emit(task TaskType, latencyMs int64, err error) {
	c.observer.OnCallComplete(CallEvent{
		Task:      task,
		Model:     c.cfg.Model,
		LatencyMs: latencyMs,
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}

func (c *ollamaClient) post(ctx context.Context, body ollamaRequest) (*ollamaResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/api/generate", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrOllamaUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}

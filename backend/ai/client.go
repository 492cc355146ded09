package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL     = "https://openrouter.ai/api/v1"
	DefaultModel       = "openai/gpt-3.5-turbo"
	DefaultTimeout     = 45 * time.Second
	DefaultMaxTokens   = 2500
	DefaultTemperature = 0.7

	chatCompletionsPath = "/chat/completions"
	maxErrorBody        = 200
)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Referer     string
	Title       string
	Timeout     time.Duration
	MaxTokens   int
	// Temperature is optional; nil means DefaultTemperature. Zero is a valid setting.
	Temperature *float64
}

// Client talks to an OpenAI-compatible chat completions endpoint. It never
// retries and never caches.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Temperature == nil {
		t := DefaultTemperature
		cfg.Temperature = &t
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Transport: tr},
		log:        logger.Named("ai"),
	}
}

// NewWithHTTPClient swaps the transport, mostly for tests.
func NewWithHTTPClient(cfg Config, logger *zap.Logger, httpClient *http.Client) *Client {
	c := New(cfg, logger)
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

func (c *Client) Configured() bool { return c != nil && c.cfg.APIKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	MaxTokens      int               `json:"max_tokens"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt as a single user message and returns the reply text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	return c.do(ctx, c.newRequest(prompt, false))
}

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// CompleteJSON asks for a JSON object reply and decodes it into out. A reply
// that wraps the object in prose is accepted when the outermost braces parse.
func (c *Client) CompleteJSON(ctx context.Context, prompt string, out interface{}) error {
	content, err := c.do(ctx, c.newRequest(prompt, true))
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(content), out); err == nil {
		return nil
	}

	match := jsonObjectRe.FindString(content)
	if match == "" {
		return newError(ReasonMalformed, "reply is not JSON")
	}
	if err := json.Unmarshal([]byte(match), out); err != nil {
		return newError(ReasonMalformed, "extract JSON from reply: %v", err)
	}
	c.log.Debug("extracted JSON from prose reply")
	return nil
}

// Ping issues the smallest possible completion to check the provider.
func (c *Client) Ping(ctx context.Context) error {
	req := c.newRequest("Say 'OK'", false)
	req.MaxTokens = 5
	_, err := c.do(ctx, req)
	return err
}

func (c *Client) newRequest(prompt string, jsonMode bool) chatCompletionRequest {
	req := chatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: *c.cfg.Temperature,
	}
	if jsonMode {
		req.ResponseFormat = map[string]string{"type": "json_object"}
	}
	return req
}

func (c *Client) do(ctx context.Context, body chatCompletionRequest) (string, error) {
	if !c.Configured() {
		return "", newError(ReasonNotConfigured, "API key not configured")
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", newError(ReasonMalformed, "encode request: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+chatCompletionsPath, bytes.NewReader(payload))
	if err != nil {
		return "", newError(ReasonConnection, "build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referer)
	}
	if c.cfg.Title != "" {
		req.Header.Set("X-Title", c.cfg.Title)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.transportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", c.transportError(ctx, err)
	}
	c.log.Debug("chat completion",
		zap.Int("status", resp.StatusCode),
		zap.Bool("json_mode", body.ResponseFormat != nil),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(raw))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return "", &Error{Reason: ReasonHTTPStatus, Status: resp.StatusCode, Message: msg}
	}

	var out chatCompletionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", newError(ReasonMalformed, "decode response: %v", err)
	}
	if len(out.Choices) == 0 {
		return "", newError(ReasonMalformed, "response has no choices")
	}
	return out.Choices[0].Message.Content, nil
}

func (c *Client) transportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return newError(ReasonTimeout, "request timed out after %s", c.cfg.Timeout)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(ReasonTimeout, "request timed out after %s", c.cfg.Timeout)
	}
	return newError(ReasonConnection, "%v", err)
}

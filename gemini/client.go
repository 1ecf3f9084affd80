// Package gemini wraps the Gemini generateContent API behind a one-method
// Executor seam. The live Client sends the role instruction as the
// systemInstruction, the prompt as the sole user part, and declares the
// Google Search tool when the request is grounded.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is used when no model id is configured.
const DefaultModel = "gemini-2.5-flash-preview-09-2025"

// DefaultTimeout bounds a single exchange.
const DefaultTimeout = 30 * time.Second

// ClientConfig carries the startup configuration for the live client. The
// API key comes from the environment; it is never embedded in source.
type ClientConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the service endpoint. Tests point it at a local
	// server; live runs leave it empty.
	BaseURL string
}

// Client implements Executor over the official Gemini SDK.
type Client struct {
	api     *genai.Client
	model   string
	timeout time.Duration
	log     *zap.SugaredLogger
}

// NewClient builds the live client. The HTTP client is created once and
// reused for every exchange.
func NewClient(ctx context.Context, cfg ClientConfig, log *zap.SugaredLogger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigurationError{Reason: "api key is required; set GEMINI_API_KEY"}
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	gc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if cfg.BaseURL != "" {
		gc.HTTPOptions.BaseURL = cfg.BaseURL
	}

	api, err := genai.NewClient(ctx, gc)
	if err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("create genai client: %v", err)}
	}

	return &Client{
		api:     api,
		model:   model,
		timeout: timeout,
		log:     log,
	}, nil
}

// Model returns the configured model id.
func (c *Client) Model() string { return c.model }

// Execute performs one generateContent exchange. The per-exchange timeout is
// applied as a context deadline; expiry surfaces as a TransportError.
func (c *Client) Execute(ctx context.Context, req Request) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	c.log.Debugw("gemini exchange",
		"model", c.model,
		"grounded", req.Grounded,
		"prompt_bytes", len(req.Prompt),
	)

	resp, err := c.api.Models.GenerateContent(ctx, c.model, contents, requestConfig(req))
	if err != nil {
		return Response{}, &TransportError{Err: err}
	}
	return parseResponse(resp)
}

// Close drops the client handle. The SDK keeps no connection state that
// needs explicit shutdown; Close exists as the lifecycle seam for callers.
func (c *Client) Close() error {
	c.api = nil
	return nil
}

// requestConfig maps a Request onto the generateContent call shape. Grounding
// is taken from the request alone, never from call-site state.
func requestConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.Instruction, genai.RoleUser),
	}
	if req.Grounded {
		cfg.Tools = []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		}
	}
	return cfg
}

// parseResponse extracts the first candidate's text and its grounding
// citations, preserving the service's source order.
func parseResponse(resp *genai.GenerateContentResponse) (Response, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return Response{}, &MalformedResponseError{Reason: "reply carries no candidates"}
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return Response{}, &MalformedResponseError{Reason: "candidate carries no content"}
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return Response{}, &MalformedResponseError{Reason: "candidate carries no text"}
	}

	out := Response{Text: text}
	if gm := cand.GroundingMetadata; gm != nil {
		for _, chunk := range gm.GroundingChunks {
			if chunk == nil || chunk.Web == nil {
				continue
			}
			out.Sources = append(out.Sources, Citation{
				Title: chunk.Web.Title,
				URI:   chunk.Web.URI,
			})
		}
	}
	return out, nil
}

package grok

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// Message is a single turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model    string
	Messages []Message
}

type ChatResponse struct {
	Content      string
	Model        string
	FinishReason string
}

// Model is one entry of the /models listing.
type Model struct {
	ID string `json:"id"`
}

// StreamHandler receives each content delta as it arrives.
type StreamHandler func(delta string) error

type Config struct {
	BaseURL string
	Key     string
	Model   string
	// Timeout bounds non-streaming requests. Zero means no deadline.
	// Streaming requests are never bounded since generation can
	// legitimately take minutes.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to a Grok-style OpenAI-compatible endpoint. It performs
// exactly one HTTP request per operation and never retries.
type Client struct {
	baseURL      string
	key          string
	model        string
	httpClient   *http.Client
	streamClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errors.New("base url is required")
	}
	key := strings.TrimSpace(cfg.Key)
	if key == "" {
		return nil, errors.New("api key is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, errors.New("model is required")
	}
	httpClient := cfg.HTTPClient
	streamClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
		streamClient = &http.Client{}
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		key:          key,
		model:        model,
		httpClient:   httpClient,
		streamClient: streamClient,
	}, nil
}

func (c *Client) resolveModel(override string) string {
	if strings.TrimSpace(override) == "" {
		return c.model
	}
	return override
}

// UserMessage wraps a prompt as the single-message conversation most
// commands send.
func UserMessage(content string) []Message {
	return []Message{{Role: "user", Content: content}}
}

package grok

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	chatCompletionsPath = "/chat/completions"
	modelsPath          = "/models"

	doneSentinel = "[DONE]"
)

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream,omitempty"`
}

type chatChoice struct {
	Message      Message `json:"message"`
	Delta        Message `json:"delta"`
	FinishReason string  `json:"finish_reason"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

type modelList struct {
	Data []Model `json:"data"`
}

// Chat sends a buffered completion request and returns the first choice.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	payload := chatRequest{
		Model:    c.resolveModel(req.Model),
		Messages: req.Messages,
	}
	var resp chatResponse
	if err := c.do(ctx, chatCompletionsPath, payload, &resp); err != nil {
		return ChatResponse{}, err
	}
	if len(resp.Choices) == 0 {
		return ChatResponse{}, errors.New("response has no choices")
	}
	return ChatResponse{
		Content:      resp.Choices[0].Message.Content,
		Model:        resp.Model,
		FinishReason: resp.Choices[0].FinishReason,
	}, nil
}

// ChatStream sends a streaming completion request and feeds each content
// delta to handle as it arrives. Chunks that fail to decode are dropped;
// the endpoint interleaves partial and non-JSON lines mid-stream.
func (c *Client) ChatStream(ctx context.Context, req ChatRequest, handle StreamHandler) (ChatResponse, error) {
	payload := chatRequest{
		Model:    c.resolveModel(req.Model),
		Messages: req.Messages,
		Stream:   true,
	}
	resp, err := c.stream(ctx, chatCompletionsPath, payload)
	if err != nil {
		return ChatResponse{}, err
	}
	defer resp.Body.Close()

	var content strings.Builder
	var finishReason string
	var model string

	scanner := newStreamScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == doneSentinel {
			break
		}
		var chunk chatResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		if chunk.Model != "" {
			model = chunk.Model
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if reason := chunk.Choices[0].FinishReason; reason != "" {
			finishReason = reason
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		content.WriteString(delta)
		if handle != nil {
			if err := handle(delta); err != nil {
				return ChatResponse{}, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return ChatResponse{}, fmt.Errorf("read stream: %w", err)
	}
	return ChatResponse{
		Content:      content.String(),
		Model:        model,
		FinishReason: finishReason,
	}, nil
}

// Models lists the model ids the endpoint exposes, in response order.
func (c *Client) Models(ctx context.Context) ([]Model, error) {
	var resp modelList
	if err := c.do(ctx, modelsPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) newRequest(ctx context.Context, path string, payload any) (*http.Request, error) {
	method := http.MethodGet
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		method = http.MethodPost
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(ctx context.Context, path string, payload, out any) error {
	req, err := c.newRequest(ctx, path, payload)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("grok request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// stream issues the request and hands the live body back to the caller.
// The caller owns closing it.
func (c *Client) stream(ctx context.Context, path string, payload any) (*http.Response, error) {
	req, err := c.newRequest(ctx, path, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	resp, err := c.streamClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("grok request: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		return nil, statusError(resp)
	}
	return resp, nil
}

func newStreamScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

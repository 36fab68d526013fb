package grok

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// Generation model ids the endpoint exposes alongside the chat models.
	ImageModel = "grok-imagine-1.0"
	VideoModel = "grok-imagine-1.0-video"

	// Progress events from the video model carry a Chinese "进度" label.
	videoProgressMarker = "进度"
)

// GenerateImage requests an image for the prompt and returns the raw
// generated content. The endpoint embeds the result as an HTML img tag;
// callers scrape the URL out with ExtractImageURL.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.Chat(ctx, ChatRequest{
		Model:    ImageModel,
		Messages: UserMessage(prompt),
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// GenerateVideo requests a video for the prompt and consumes the whole
// stream, reporting progress updates through onProgress as they change.
// It returns the concatenated raw payload; the video URL is buried in it
// and recovered afterwards with ExtractVideoURL.
//
// The video model streams regardless of the stream field, so the payload
// omits it.
func (c *Client) GenerateVideo(ctx context.Context, prompt string, onProgress func(progress string)) (string, error) {
	payload := chatRequest{
		Model:    VideoModel,
		Messages: UserMessage(prompt),
	}
	resp, err := c.stream(ctx, chatCompletionsPath, payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var raw strings.Builder
	lastProgress := ""

	scanner := newStreamScanner(resp.Body)
	for scanner.Scan() {
		raw.WriteString(scanner.Text())
		raw.WriteByte('\n')

		line := strings.TrimSpace(scanner.Text())
		if !strings.Contains(line, videoProgressMarker) {
			continue
		}
		var chunk chatResponse
		data := strings.TrimPrefix(line, "data: ")
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		progress := strings.TrimSpace(chunk.Choices[0].Delta.Content)
		if progress == "" || progress == lastProgress {
			continue
		}
		lastProgress = progress
		if onProgress != nil {
			onProgress(progress)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read stream: %w", err)
	}
	return raw.String(), nil
}

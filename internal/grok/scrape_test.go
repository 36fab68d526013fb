package grok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractImageURL(t *testing.T) {
	url, ok := ExtractImageURL(`Here you go: <img src="https://x/y.png" alt="apple">`)
	assert.True(t, ok)
	assert.Equal(t, "https://x/y.png", url)

	_, ok = ExtractImageURL("no markup here")
	assert.False(t, ok)
}

func TestExtractVideoURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			name: "escaped quotes",
			raw:  `data: {"content":"<video src=\"https://x/y.mp4\">"}`,
			want: "https://x/y.mp4",
			ok:   true,
		},
		{
			name: "plain quotes",
			raw:  `<video src="https://x/y.mp4">`,
			want: "https://x/y.mp4",
			ok:   true,
		},
		{
			name: "escaped variant wins over plain",
			raw:  `src="https://plain/a.mp4" src=\"https://escaped/b.mp4\"`,
			want: "https://escaped/b.mp4",
			ok:   true,
		},
		{
			name: "non-mp4 src ignored",
			raw:  `<img src="https://x/y.png">`,
		},
		{
			name: "no match",
			raw:  "progress 99%",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, ok := ExtractVideoURL(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, url)
		})
	}
}

func TestExtractPosterURL(t *testing.T) {
	url, ok := ExtractPosterURL(`poster=\"https://x/p.jpg\"`)
	assert.True(t, ok)
	assert.Equal(t, "https://x/p.jpg", url)

	// plain-quote posters are not scraped, only the wire-escaped form
	_, ok = ExtractPosterURL(`poster="https://x/p.jpg"`)
	assert.False(t, ok)
}

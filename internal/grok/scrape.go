package grok

import "regexp"

// Generated content embeds media as HTML-ish markup, so URLs are
// recovered by best-effort pattern matching. The escaped-quote variants
// match attributes still wrapped in JSON string encoding, as captured
// straight off the wire; this depends on the exact quoting the model
// emits and is known to be fragile.
var (
	imageSrcPattern = regexp.MustCompile(`src="([^"]+)"`)

	videoSrcPatterns = []*regexp.Regexp{
		regexp.MustCompile(`src=\\"(https://[^"\\]+\.mp4)\\"`),
		regexp.MustCompile(`src="(https://[^"]+\.mp4)"`),
	}

	posterPattern = regexp.MustCompile(`poster=\\"(https://[^"\\]+)\\"`)
)

// ExtractImageURL pulls the first src attribute out of generated content.
func ExtractImageURL(content string) (string, bool) {
	match := imageSrcPattern.FindStringSubmatch(content)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ExtractVideoURL recovers an mp4 URL from a raw video stream payload,
// trying the escaped-quote pattern before the plain one.
func ExtractVideoURL(raw string) (string, bool) {
	for _, pattern := range videoSrcPatterns {
		if match := pattern.FindStringSubmatch(raw); match != nil {
			return match[1], true
		}
	}
	return "", false
}

// ExtractPosterURL recovers the preview image URL from a raw video
// stream payload.
func ExtractPosterURL(raw string) (string, bool) {
	match := posterPattern.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}
	return match[1], true
}

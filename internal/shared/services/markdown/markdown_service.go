package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Service renders ticket bodies and comments from markdown into sanitized
// HTML. Output is always run through bluemonday so user-authored content
// cannot inject scripts into the dashboard.
type Service struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

func NewService() *Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("code", "pre")

	return &Service{
		md:        md,
		sanitizer: policy,
	}
}

// Render converts markdown to sanitized HTML.
func (s *Service) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return s.sanitizer.Sanitize(buf.String()), nil
}

// SanitizeHTML strips unsafe markup from raw HTML without markdown parsing.
func (s *Service) SanitizeHTML(source string) string {
	return s.sanitizer.Sanitize(source)
}

// ABOUTME: Goldmark implementation of the MarkdownRenderer interface
// ABOUTME: Converts the module README to HTML for the help endpoint

package goldmark

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// GoldmarkRenderer implements the MarkdownRenderer interface
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a new goldmark renderer with GFM extensions
// (tables, strikethrough, autolinks, task lists)
func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Render converts Markdown source to an HTML fragment
func (r *GoldmarkRenderer) Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ABOUTME: Help service renders the module README as HTML for the host's help page
// ABOUTME: Uses an optionally injected Markdown renderer, falling back to plain text

package help

import (
	"html"

	"swaggerui-assets-api/core/interfaces"
)

// Service renders the help page content
type Service struct {
	fs         interfaces.FileSystem
	renderer   interfaces.MarkdownRenderer
	readmePath string
}

// NewService creates a new help service. The renderer may be nil, in which
// case the README is served as escaped plain text.
func NewService(fs interfaces.FileSystem, renderer interfaces.MarkdownRenderer, readmePath string) *Service {
	return &Service{
		fs:         fs,
		renderer:   renderer,
		readmePath: readmePath,
	}
}

// Render returns the help page HTML. A missing or unreadable README yields
// an empty string rather than an error.
func (s *Service) Render() string {
	data, err := s.fs.ReadFile(s.readmePath)
	if err != nil {
		return ""
	}

	if s.renderer != nil {
		if rendered, err := s.renderer.Render(data); err == nil {
			return rendered
		}
	}

	return "<pre>" + html.EscapeString(string(data)) + "</pre>"
}

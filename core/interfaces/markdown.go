package interfaces

// MarkdownRenderer defines the optional capability of converting Markdown
// source into HTML. The help service accepts a nil renderer and falls back
// to plain-text output, so the core never probes for installed converters.
type MarkdownRenderer interface {
	// Render converts Markdown source to an HTML fragment.
	Render(src []byte) (string, error)
}

package interfaces

// FileSystem defines the interface for the local filesystem checks performed
// by the library locator and SVG extractor. All paths are passed through as
// given; implementations do not resolve symlinks or normalize separators.
type FileSystem interface {
	// Exists reports whether a regular file exists at the given path.
	Exists(path string) bool

	// ReadFile reads the entire file at the given path.
	ReadFile(path string) ([]byte, error)
}

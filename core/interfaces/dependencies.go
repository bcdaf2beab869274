// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache provides the shared cache store used for memoized lookups
	Cache Cache

	// FileSystem provides local filesystem access
	FileSystem FileSystem

	// Logger provides structured logging
	Logger Logger
}

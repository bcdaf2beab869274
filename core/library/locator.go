// ABOUTME: Library locator resolves the on-disk path of the Swagger UI distribution
// ABOUTME: Memoizes successful lookups in the shared cache under a fixed key

package library

import (
	"context"
	"encoding/json"
	"path/filepath"

	"swaggerui-assets-api/core/interfaces"
)

// PathCacheKey is the fixed cache slot holding the located library path.
const PathCacheKey = "swagger_ui:library_path"

// libraryDirectories are the candidate directories checked under the
// application root, in order. Both conventional spellings of the library
// name are accepted; the first valid one wins.
var libraryDirectories = []string{
	"libraries/swagger-ui",
	"libraries/swagger_ui",
}

// requiredFiles must all exist under a candidate directory for it to
// qualify as a Swagger UI installation. Any missing file disqualifies
// the whole directory.
var requiredFiles = []string{
	"package.json",
	"dist/swagger-ui.css",
	"dist/swagger-ui-bundle.js",
	"dist/swagger-ui-standalone-preset.js",
}

// Service locates the Swagger UI library on disk
type Service struct {
	deps    interfaces.Dependencies
	appRoot string
}

// NewService creates a new library locator service
func NewService(deps interfaces.Dependencies, appRoot string) *Service {
	return &Service{
		deps:    deps,
		appRoot: appRoot,
	}
}

// Locate returns the application-root-relative path of the Swagger UI
// distribution, or ok=false if it is not installed.
//
// A cached path is returned unconditionally, even if the files have since
// been removed from disk; staleness is accepted until an explicit flush.
// A not-found result is never cached, so the library becomes discoverable
// automatically once installed, without requiring a flush.
func (s *Service) Locate(ctx context.Context) (string, bool) {
	if data, err := s.deps.Cache.Get(ctx, PathCacheKey); err == nil && len(data) > 0 {
		return string(data), true
	}

	for _, dir := range libraryDirectories {
		if s.isLibraryDirectory(dir) {
			if err := s.deps.Cache.Set(ctx, PathCacheKey, []byte(dir), 0); err != nil {
				s.logDebug("Failed to cache library path", map[string]interface{}{
					"path":  dir,
					"error": err.Error(),
				})
			}
			return dir, true
		}
	}

	return "", false
}

// Version returns the version string from the library's package.json
// manifest, or "" when the library is absent or the manifest is missing,
// unreadable, or has no version field.
func (s *Service) Version(ctx context.Context) string {
	path, ok := s.Locate(ctx)
	if !ok {
		return ""
	}

	data, err := s.deps.FileSystem.ReadFile(filepath.Join(s.appRoot, path, "package.json"))
	if err != nil {
		return ""
	}

	var manifest struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return ""
	}

	return manifest.Version
}

// Invalidate clears the memoized library path so the next Locate call
// re-scans the filesystem.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.deps.Cache.Delete(ctx, PathCacheKey)
}

// AppRoot returns the application root the locator resolves paths against
func (s *Service) AppRoot() string {
	return s.appRoot
}

// isLibraryDirectory reports whether dir holds a complete Swagger UI
// distribution. All required files must exist.
func (s *Service) isLibraryDirectory(dir string) bool {
	for _, file := range requiredFiles {
		if !s.deps.FileSystem.Exists(filepath.Join(s.appRoot, dir, file)) {
			return false
		}
	}
	return true
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

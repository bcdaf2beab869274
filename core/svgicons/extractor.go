// ABOUTME: SVG extractor pulls the inline icon-definition fragment out of dist/index.html
// ABOUTME: Newer Swagger UI versions expect the host page to provide this fragment

package svgicons

import (
	"bytes"
	"context"
	"path/filepath"

	"swaggerui-assets-api/core/interfaces"
	"swaggerui-assets-api/core/library"

	"github.com/PuerkitoBio/goquery"
)

// CacheKey is the fixed cache slot holding the extracted SVG fragment.
const CacheKey = "swagger_ui:svg_definition"

// Service extracts the SVG icon definitions from the Swagger UI distribution
type Service struct {
	deps    interfaces.Dependencies
	locator *library.Service
}

// NewService creates a new SVG extractor service
func NewService(deps interfaces.Dependencies, locator *library.Service) *Service {
	return &Service{
		deps:    deps,
		locator: locator,
	}
}

// Extract returns the serialized outer HTML of the first <svg> element
// under <body> in the library's dist/index.html, or ok=false when the
// library, the file, or the element is absent.
//
// Only the found case is memoized; every absent outcome is recomputed on
// the next call, mirroring the locator's asymmetric caching.
func (s *Service) Extract(ctx context.Context) (string, bool) {
	if data, err := s.deps.Cache.Get(ctx, CacheKey); err == nil && len(data) > 0 {
		return string(data), true
	}

	path, ok := s.locator.Locate(ctx)
	if !ok {
		return "", false
	}

	indexPath := filepath.Join(s.locator.AppRoot(), path, "dist", "index.html")
	if !s.deps.FileSystem.Exists(indexPath) {
		return "", false
	}

	data, err := s.deps.FileSystem.ReadFile(indexPath)
	if err != nil {
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		s.logDebug("Failed to parse index.html", map[string]interface{}{
			"path":  indexPath,
			"error": err.Error(),
		})
		return "", false
	}

	svg := doc.Find("body svg").First()
	if svg.Length() == 0 {
		return "", false
	}

	fragment, err := goquery.OuterHtml(svg)
	if err != nil {
		return "", false
	}

	if err := s.deps.Cache.Set(ctx, CacheKey, []byte(fragment), 0); err != nil {
		s.logDebug("Failed to cache SVG fragment", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return fragment, true
}

// Invalidate clears the memoized SVG fragment so the next Extract call
// re-parses the distribution's index.html.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.deps.Cache.Delete(ctx, CacheKey)
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

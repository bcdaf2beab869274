// ABOUTME: Cache handler exposes the host's cache-flush hook over HTTP
// ABOUTME: Invalidates the library path and SVG fragment slots together

package handlers

import (
	"context"
	"net/http"

	"swaggerui-assets-api/core/library"
	"swaggerui-assets-api/core/svgicons"

	"github.com/danielgtaylor/huma/v2"
)

// CacheHandler handles cache invalidation
type CacheHandler struct {
	locator   *library.Service
	extractor *svgicons.Service
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(locator *library.Service, extractor *svgicons.Service) *CacheHandler {
	return &CacheHandler{
		locator:   locator,
		extractor: extractor,
	}
}

// RegisterRoutes registers cache routes
func (h *CacheHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "flushCaches",
		Method:      http.MethodPost,
		Path:        "/v1/cache/flush",
		Summary:     "Flush the memoized lookups",
		Description: "Clears the library path and SVG definition cache slots so the next lookups re-scan the filesystem",
		Tags:        []string{"Cache"},
	}, h.FlushCaches)
}

// FlushCachesOutput defines the output for the flush operation
type FlushCachesOutput struct {
	Body struct {
		Flushed []string `json:"flushed" doc:"Cache keys that were invalidated"`
	}
}

// FlushCaches handles the POST /v1/cache/flush endpoint.
// Both slots are invalidated independently; a failure on one does not
// prevent the other from being cleared.
func (h *CacheHandler) FlushCaches(ctx context.Context, input *struct{}) (*FlushCachesOutput, error) {
	locatorErr := h.locator.Invalidate(ctx)
	extractorErr := h.extractor.Invalidate(ctx)

	if locatorErr != nil || extractorErr != nil {
		return nil, huma.Error500InternalServerError("Failed to flush caches")
	}

	output := &FlushCachesOutput{}
	output.Body.Flushed = []string{library.PathCacheKey, svgicons.CacheKey}
	return output, nil
}

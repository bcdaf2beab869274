// ABOUTME: SVG handler serves the extracted icon-definition fragment
// ABOUTME: Returns 404 while the library or the fragment is absent

package handlers

import (
	"context"
	"net/http"

	"swaggerui-assets-api/core/svgicons"

	"github.com/danielgtaylor/huma/v2"
)

// SVGHandler handles SVG fragment lookups
type SVGHandler struct {
	extractor *svgicons.Service
}

// NewSVGHandler creates a new SVG handler
func NewSVGHandler(extractor *svgicons.Service) *SVGHandler {
	return &SVGHandler{
		extractor: extractor,
	}
}

// RegisterRoutes registers SVG routes
func (h *SVGHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getSVGDefinition",
		Method:      http.MethodGet,
		Path:        "/v1/svg-definition",
		Summary:     "Get the Swagger UI SVG icon definitions",
		Description: "Returns the first <svg> element under <body> of the distribution's index.html, serialized as it appears in the source",
		Tags:        []string{"Assets"},
	}, h.GetSVGDefinition)
}

// GetSVGDefinitionOutput defines the output for the SVG lookup
type GetSVGDefinitionOutput struct {
	Body struct {
		SVG string `json:"svg" doc:"Outer HTML of the SVG icon-definition element"`
	}
}

// GetSVGDefinition handles the GET /v1/svg-definition endpoint
func (h *SVGHandler) GetSVGDefinition(ctx context.Context, input *struct{}) (*GetSVGDefinitionOutput, error) {
	fragment, ok := h.extractor.Extract(ctx)
	if !ok {
		return nil, huma.Error404NotFound("SVG definition not found")
	}

	output := &GetSVGDefinitionOutput{}
	output.Body.SVG = fragment
	return output, nil
}

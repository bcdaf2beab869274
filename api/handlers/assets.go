// ABOUTME: Assets handler exposes the asset bundle descriptors and library lookup
// ABOUTME: Absent-library cases degrade to empty mappings or 404, never 500

package handlers

import (
	"context"
	"net/http"

	"swaggerui-assets-api/core/assets"
	"swaggerui-assets-api/core/domain"
	"swaggerui-assets-api/core/library"

	"github.com/danielgtaylor/huma/v2"
)

// AssetsHandler handles asset bundle and library lookups
type AssetsHandler struct {
	registrar *assets.Service
	locator   *library.Service
}

// NewAssetsHandler creates a new assets handler
func NewAssetsHandler(registrar *assets.Service, locator *library.Service) *AssetsHandler {
	return &AssetsHandler{
		registrar: registrar,
		locator:   locator,
	}
}

// RegisterRoutes registers asset routes
func (h *AssetsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getAssetBundles",
		Method:      http.MethodGet,
		Path:        "/v1/asset-bundles",
		Summary:     "Get asset bundle descriptors",
		Description: "Returns the Swagger UI asset bundles, or an empty mapping when the library is not installed",
		Tags:        []string{"Assets"},
	}, h.GetAssetBundles)

	huma.Register(api, huma.Operation{
		OperationID: "getLibrary",
		Method:      http.MethodGet,
		Path:        "/v1/library",
		Summary:     "Get the located Swagger UI library",
		Tags:        []string{"Assets"},
	}, h.GetLibrary)

	huma.Register(api, huma.Operation{
		OperationID: "getTemplates",
		Method:      http.MethodGet,
		Path:        "/v1/templates",
		Summary:     "Get the render templates registered with the theme layer",
		Tags:        []string{"Assets"},
	}, h.GetTemplates)
}

// GetAssetBundlesOutput defines the output for the asset bundle lookup
type GetAssetBundlesOutput struct {
	Body struct {
		Bundles map[string]domain.AssetBundle `json:"bundles" doc:"Mapping from bundle name to descriptor"`
	}
}

// GetAssetBundles handles the GET /v1/asset-bundles endpoint
func (h *AssetsHandler) GetAssetBundles(ctx context.Context, input *struct{}) (*GetAssetBundlesOutput, error) {
	output := &GetAssetBundlesOutput{}
	output.Body.Bundles = h.registrar.BuildBundles(ctx)
	return output, nil
}

// GetLibraryOutput defines the output for the library lookup
type GetLibraryOutput struct {
	Body struct {
		Path    string `json:"path" doc:"Application-root-relative path of the library"`
		Version string `json:"version" doc:"Version from the library manifest, empty if unreadable"`
	}
}

// GetLibrary handles the GET /v1/library endpoint
func (h *AssetsHandler) GetLibrary(ctx context.Context, input *struct{}) (*GetLibraryOutput, error) {
	path, ok := h.locator.Locate(ctx)
	if !ok {
		return nil, huma.Error404NotFound("Swagger UI library is not installed")
	}

	output := &GetLibraryOutput{}
	output.Body.Path = path
	output.Body.Version = h.locator.Version(ctx)
	return output, nil
}

// GetTemplatesOutput defines the output for the template registration lookup
type GetTemplatesOutput struct {
	Body struct {
		Templates map[string]domain.Template `json:"templates" doc:"Mapping from template name to declaration"`
	}
}

// GetTemplates handles the GET /v1/templates endpoint
func (h *AssetsHandler) GetTemplates(ctx context.Context, input *struct{}) (*GetTemplatesOutput, error) {
	output := &GetTemplatesOutput{}
	output.Body.Templates = h.registrar.Templates()
	return output, nil
}

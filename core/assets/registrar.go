// ABOUTME: Asset registrar builds the declarative bundle descriptors for Swagger UI
// ABOUTME: Produces an empty mapping when the library is not installed

package assets

import (
	"context"

	"swaggerui-assets-api/core/domain"
	"swaggerui-assets-api/core/library"
)

// Bundle names exposed to the asset pipeline.
const (
	LibraryBundle     = "swagger_ui"
	IntegrationBundle = "swagger_ui_integration"
)

// integrationDependencies are the host-side bundles the integration glue
// script requires: the DOM-manipulation library, the host client runtime,
// and the host's client-side settings mechanism.
var integrationDependencies = []string{
	"core/jquery",
	"core/runtime",
	"core/settings",
}

// Service builds asset bundle descriptors
type Service struct {
	locator *library.Service
}

// NewService creates a new asset registrar service
func NewService(locator *library.Service) *Service {
	return &Service{
		locator: locator,
	}
}

// BuildBundles returns the mapping from bundle name to descriptor.
//
// When the library is not installed the mapping is empty and the host's
// asset pipeline simply never learns these bundles exist. Descriptors are
// built fresh on every call; the pipeline owns caching of compiled bundles.
func (s *Service) BuildBundles(ctx context.Context) map[string]domain.AssetBundle {
	bundles := map[string]domain.AssetBundle{}

	path, ok := s.locator.Locate(ctx)
	if !ok {
		return bundles
	}

	bundles[LibraryBundle] = domain.AssetBundle{
		Version: s.locator.Version(ctx),
		CSS: []domain.AssetFile{
			{Path: path + "/dist/swagger-ui.css", Minified: true},
		},
		JS: []domain.AssetFile{
			{Path: path + "/dist/swagger-ui-bundle.js", Minified: true},
			{Path: path + "/dist/swagger-ui-standalone-preset.js", Minified: true},
		},
	}

	bundles[IntegrationBundle] = domain.AssetBundle{
		Version: "1.0",
		JS: []domain.AssetFile{
			{Path: "js/swagger-ui-integration.js"},
		},
		Dependencies: integrationDependencies,
	}

	return bundles
}

// Templates returns the render templates this module registers with the
// host's theme layer. Pure declaration, no logic.
func (s *Service) Templates() map[string]domain.Template {
	return map[string]domain.Template{
		"swagger_ui_field_item": {
			Variables: []string{"field_name", "delta"},
		},
	}
}

// Package core contains the business logic for the Swagger UI Assets API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (AssetBundle, AssetFile, Template)
// - library: Locates the Swagger UI distribution on disk
// - assets: Builds the CSS/JS asset bundle descriptors
// - svgicons: Extracts the inline SVG icon definitions from the distribution
// - help: Renders the module help text from the bundled README
// - interfaces: Contracts for external dependencies (cache, filesystem, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "swaggerui-assets-api/core/interfaces"
//	    "swaggerui-assets-api/core/library"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache, // implements interfaces.Cache
//	    FileSystem: myFS,    // implements interfaces.FileSystem
//	    Logger:     myLogger,
//	}
//
//	// Create service
//	locator := library.NewService(deps, "/srv/app")
//
//	// Locate the distribution
//	path, found := locator.Locate(ctx)
package core

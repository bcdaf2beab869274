// ABOUTME: Asset bundle domain model describes front-end CSS/JS bundles
// ABOUTME: Consumed by the host's asset delivery pipeline, never cached here

package domain

// AssetFile represents a single CSS or JS file inside an asset bundle
type AssetFile struct {
	// Path is the file path relative to the application root
	Path string `json:"path"`

	// Minified marks files that ship pre-minified and must not be
	// re-minified by the host's asset pipeline
	Minified bool `json:"minified,omitempty"`
}

// AssetBundle is a declarative description of one front-end asset bundle
type AssetBundle struct {
	// Version is the bundle version reported to the asset pipeline
	Version string `json:"version"`

	// CSS lists the stylesheet files in the bundle
	CSS []AssetFile `json:"css,omitempty"`

	// JS lists the script files in the bundle
	JS []AssetFile `json:"js,omitempty"`

	// Dependencies names other asset bundles this one requires
	Dependencies []string `json:"dependencies,omitempty"`
}

// Template describes a render template exposed to the host's theme layer
type Template struct {
	// Variables names the variables the template accepts
	Variables []string `json:"variables"`
}

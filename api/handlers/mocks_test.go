package handlers

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"swaggerui-assets-api/core/assets"
	"swaggerui-assets-api/core/help"
	"swaggerui-assets-api/core/interfaces"
	"swaggerui-assets-api/core/library"
	"swaggerui-assets-api/core/svgicons"
)

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return nil, errors.New("key not found")
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

type fakeFileSystem struct {
	files       map[string][]byte
	existsCalls int
	readCalls   int
}

func newFakeFileSystem() *fakeFileSystem {
	return &fakeFileSystem{files: make(map[string][]byte)}
}

func (f *fakeFileSystem) Exists(path string) bool {
	f.existsCalls++
	_, ok := f.files[path]
	return ok
}

func (f *fakeFileSystem) ReadFile(path string) ([]byte, error) {
	f.readCalls++
	if data, ok := f.files[path]; ok {
		return data, nil
	}
	return nil, errors.New("file does not exist")
}

const testAppRoot = "/app"

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" style="display: none;"><symbol id="locked" viewBox="0 0 20 20"><path d="M10 1"></path></symbol></svg>`

// testHarness bundles the services wired over shared fakes
type testHarness struct {
	cache     *fakeCache
	fs        *fakeFileSystem
	locator   *library.Service
	registrar *assets.Service
	extractor *svgicons.Service
	help      *help.Service
}

func newTestHarness() *testHarness {
	cache := newFakeCache()
	fs := newFakeFileSystem()
	deps := interfaces.Dependencies{
		Cache:      cache,
		FileSystem: fs,
	}
	locator := library.NewService(deps, testAppRoot)
	return &testHarness{
		cache:     cache,
		fs:        fs,
		locator:   locator,
		registrar: assets.NewService(locator),
		extractor: svgicons.NewService(deps, locator),
		help:      help.NewService(fs, nil, "README.md"),
	}
}

// installLibrary places a full distribution, including an index.html with
// the icon-definition svg, into the harness filesystem
func (h *testHarness) installLibrary(version string) {
	dir := filepath.Join(testAppRoot, "libraries/swagger-ui")
	h.fs.files[filepath.Join(dir, "package.json")] = []byte(`{"version":"` + version + `"}`)
	h.fs.files[filepath.Join(dir, "dist/swagger-ui.css")] = []byte("css")
	h.fs.files[filepath.Join(dir, "dist/swagger-ui-bundle.js")] = []byte("js")
	h.fs.files[filepath.Join(dir, "dist/swagger-ui-standalone-preset.js")] = []byte("js")
	h.fs.files[filepath.Join(dir, "dist", "index.html")] = []byte(
		"<!DOCTYPE html><html><head><title>Swagger UI</title></head><body>" + testSVG + "</body></html>")
}

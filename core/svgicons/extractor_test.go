package svgicons

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"swaggerui-assets-api/core/interfaces"
	"swaggerui-assets-api/core/library"
)

type fakeCache struct {
	data    map[string][]byte
	setKeys []string
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
	c.setKeys = append(c.setKeys, key)
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

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" style="display: none;"><symbol id="unlocked" viewBox="0 0 20 20"><path d="M15.8 8H14V5.6C14 2.703 12.665 1 10 1"></path></symbol></svg>`

// newExtractor builds an extractor over a fake filesystem holding a full
// distribution whose index.html has the given body markup.
func newExtractor(body string) (*Service, *fakeCache, *fakeFileSystem) {
	fs := newFakeFileSystem()
	dir := filepath.Join(testAppRoot, "libraries/swagger-ui")
	fs.files[filepath.Join(dir, "package.json")] = []byte(`{"version":"5.11.0"}`)
	fs.files[filepath.Join(dir, "dist/swagger-ui.css")] = []byte("css")
	fs.files[filepath.Join(dir, "dist/swagger-ui-bundle.js")] = []byte("js")
	fs.files[filepath.Join(dir, "dist/swagger-ui-standalone-preset.js")] = []byte("js")
	if body != "" {
		html := "<!DOCTYPE html><html><head><title>Swagger UI</title></head><body>" + body + "</body></html>"
		fs.files[filepath.Join(dir, "dist", "index.html")] = []byte(html)
	}

	cache := newFakeCache()
	deps := interfaces.Dependencies{
		Cache:      cache,
		FileSystem: fs,
	}
	locator := library.NewService(deps, testAppRoot)
	return NewService(deps, locator), cache, fs
}

func TestExtract_LibraryNotInstalled(t *testing.T) {
	cache := newFakeCache()
	deps := interfaces.Dependencies{
		Cache:      cache,
		FileSystem: newFakeFileSystem(),
	}
	service := NewService(deps, library.NewService(deps, testAppRoot))

	fragment, ok := service.Extract(context.Background())

	if ok {
		t.Error("Extract should report absent when the library is not installed")
	}
	if fragment != "" {
		t.Errorf("Extract fragment = %q, want empty", fragment)
	}
}

func TestExtract_IndexFileMissing(t *testing.T) {
	service, cache, _ := newExtractor("")

	fragment, ok := service.Extract(context.Background())

	if ok || fragment != "" {
		t.Errorf("Extract = %q, %v; want absent when dist/index.html is missing", fragment, ok)
	}
	if _, cached := cache.data[CacheKey]; cached {
		t.Error("absent result must not be cached")
	}
}

func TestExtract_NoSVGInBody(t *testing.T) {
	service, cache, _ := newExtractor(`<div id="swagger-ui"></div>`)

	fragment, ok := service.Extract(context.Background())

	if ok || fragment != "" {
		t.Errorf("Extract = %q, %v; want absent when the body has no svg", fragment, ok)
	}
	if _, cached := cache.data[CacheKey]; cached {
		t.Error("absent result must not be cached")
	}
}

func TestExtract_ReturnsSVGOuterHTML(t *testing.T) {
	service, _, _ := newExtractor(testSVG + `<div id="swagger-ui"></div>`)

	fragment, ok := service.Extract(context.Background())

	if !ok {
		t.Fatal("Extract should find the svg element")
	}
	if fragment != testSVG {
		t.Errorf("Extract fragment = %q, want the exact outer HTML %q", fragment, testSVG)
	}
}

func TestExtract_FirstSVGWinsWhenMultiplePresent(t *testing.T) {
	second := `<svg id="second"><circle cx="1" cy="1" r="1"></circle></svg>`
	service, _, _ := newExtractor(testSVG + second)

	fragment, ok := service.Extract(context.Background())

	if !ok {
		t.Fatal("Extract should find an svg element")
	}
	if fragment != testSVG {
		t.Errorf("Extract fragment = %q, want the first svg in document order", fragment)
	}
}

func TestExtract_CachesFoundFragment(t *testing.T) {
	service, cache, fs := newExtractor(testSVG)
	ctx := context.Background()

	first, _ := service.Extract(ctx)
	fs.readCalls = 0
	fs.existsCalls = 0

	second, ok := service.Extract(ctx)

	if !ok || second != first {
		t.Errorf("second Extract = %q, want cached %q", second, first)
	}
	if fs.readCalls != 0 || fs.existsCalls != 0 {
		t.Errorf("second Extract touched the filesystem (%d reads, %d checks), want 0",
			fs.readCalls, fs.existsCalls)
	}
	if string(cache.data[CacheKey]) != first {
		t.Errorf("cached fragment = %q, want %q", cache.data[CacheKey], first)
	}
}

func TestExtract_AbsentResultRecomputedEveryCall(t *testing.T) {
	service, _, fs := newExtractor(`<div id="swagger-ui"></div>`)
	ctx := context.Background()

	service.Extract(ctx)
	firstReads := fs.readCalls
	service.Extract(ctx)

	if fs.readCalls != 2*firstReads {
		t.Errorf("second absent Extract performed %d reads, want a full re-parse (%d)",
			fs.readCalls-firstReads, firstReads)
	}
}

func TestInvalidate_ForcesReparse(t *testing.T) {
	service, _, fs := newExtractor(testSVG)
	ctx := context.Background()

	service.Extract(ctx)
	if err := service.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate returned error: %v", err)
	}
	fs.readCalls = 0

	fragment, ok := service.Extract(ctx)

	if !ok || fragment != testSVG {
		t.Errorf("Extract after Invalidate = %q, %v; want re-extracted fragment", fragment, ok)
	}
	if fs.readCalls == 0 {
		t.Error("Extract after Invalidate did not re-read the filesystem")
	}
}

package library

import (
	"context"
	"errors"
	"time"

	"swaggerui-assets-api/core/interfaces"
)

// fakeCache is an in-memory Cache implementation with call recording
type fakeCache struct {
	data     map[string][]byte
	setKeys  []string
	getErr   error
	setErr   error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		data: make(map[string][]byte),
	}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return nil, errors.New("key not found")
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value
	c.setKeys = append(c.setKeys, key)
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

// fakeFileSystem is a map-backed FileSystem implementation that counts
// existence checks and reads, so tests can assert whether a lookup
// touched the filesystem at all.
type fakeFileSystem struct {
	files       map[string][]byte
	existsCalls int
	readCalls   int
}

func newFakeFileSystem() *fakeFileSystem {
	return &fakeFileSystem{
		files: make(map[string][]byte),
	}
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

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

func testDeps(cache *fakeCache, fs *fakeFileSystem) interfaces.Dependencies {
	return interfaces.Dependencies{
		Cache:      cache,
		FileSystem: fs,
		Logger:     nopLogger{},
	}
}

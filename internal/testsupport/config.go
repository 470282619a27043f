// Package testsupport provides shared helpers for building test
// configurations and synthetic dataset fixtures.
package testsupport

import (
	"path/filepath"
	"testing"

	"costar/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a validated config seeded with unique temp directories
// per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "imdb")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Datasets.BaseURL = "http://127.0.0.1:0/"
	cfg.Datasets.DownloadTimeout = 5

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithBaseURL points dataset downloads at a test server.
func WithBaseURL(url string) ConfigOption {
	return func(c *config.Config) {
		if url != "" && url[len(url)-1] != '/' {
			url += "/"
		}
		c.Datasets.BaseURL = url
	}
}

// WithActors overrides the default comparison pair.
func WithActors(a, b string) ConfigOption {
	return func(c *config.Config) {
		c.Compare.ActorA = a
		c.Compare.ActorB = b
	}
}

// WithMaxList overrides the per-group listing cap.
func WithMaxList(n int) ConfigOption {
	return func(c *config.Config) {
		c.Compare.MaxList = n
	}
}

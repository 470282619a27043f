package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDatasets()
	c.normalizeCompare()
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv(EnvDataDir); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = value
	}

	var err error
	if c.Paths.DataDir, err = ExpandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDatasets() {
	c.Datasets.BaseURL = strings.TrimSpace(c.Datasets.BaseURL)
	if c.Datasets.BaseURL == "" {
		c.Datasets.BaseURL = defaultBaseURL
	}
	if !strings.HasSuffix(c.Datasets.BaseURL, "/") {
		c.Datasets.BaseURL += "/"
	}
	if c.Datasets.DownloadTimeout == 0 {
		c.Datasets.DownloadTimeout = defaultDownloadTimeout
	}
}

func (c *Config) normalizeCompare() {
	c.Compare.ActorA = strings.TrimSpace(c.Compare.ActorA)
	c.Compare.ActorB = strings.TrimSpace(c.Compare.ActorB)
}

func (c *Config) normalizeOutput() {
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColorMode
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

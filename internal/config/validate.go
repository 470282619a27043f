package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDatasets(); err != nil {
		return err
	}
	if err := c.validateCompare(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateDatasets() error {
	parsed, err := url.Parse(c.Datasets.BaseURL)
	if err != nil {
		return fmt.Errorf("datasets.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("datasets.base_url must be an http(s) URL, got %q", c.Datasets.BaseURL)
	}
	if c.Datasets.DownloadTimeout <= 0 {
		return errors.New("datasets.download_timeout must be positive (seconds)")
	}
	return nil
}

func (c *Config) validateCompare() error {
	if c.Compare.ActorA == "" {
		return errors.New("compare.actor_a must be set")
	}
	if c.Compare.ActorB == "" {
		return errors.New("compare.actor_b must be set")
	}
	if c.Compare.MaxList < 0 {
		return errors.New("compare.max_list must be >= 0 (0 lists every title)")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("output.color must be auto, always, or never, got %q", c.Output.Color)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
}

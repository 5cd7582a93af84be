package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/net/html/charset"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateCompound(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateProgress()
}

func (c *Config) validateInput() error {
	if c.Input.Encoding == "auto" {
		return nil
	}
	if enc, _ := charset.Lookup(c.Input.Encoding); enc == nil {
		return fmt.Errorf("input.encoding: unknown encoding %q", c.Input.Encoding)
	}
	return nil
}

func (c *Config) validateCompound() error {
	if c.Compound.MinPartLength < 1 {
		return errors.New("compound.min_part_length must be positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	names := map[string]string{
		"output.suffix_file":   c.Output.SuffixFile,
		"output.prefix_file":   c.Output.PrefixFile,
		"output.snapshot_file": c.Output.SnapshotFile,
	}
	for key, name := range names {
		if name == "" {
			return fmt.Errorf("%s must be set", key)
		}
	}
	if c.SuffixReportPath() == c.PrefixReportPath() {
		return errors.New("output.suffix_file and output.prefix_file must differ")
	}
	if filepath.Clean(c.SnapshotPath()) == filepath.Clean(c.SuffixReportPath()) {
		return errors.New("output.snapshot_file must differ from output.suffix_file")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

func (c *Config) validateProgress() error {
	switch c.Progress.Mode {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("progress.mode must be auto, always, or never (got %q)", c.Progress.Mode)
	}
}

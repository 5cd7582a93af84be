package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeInput(); err != nil {
		return err
	}
	c.normalizeCompound()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeProgress()
	return nil
}

// Normalize applies the same cleanup Load performs. Callers that mutate a
// loaded config (for example from CLI flags) re-run it before use.
func (c *Config) Normalize() error {
	return c.normalize()
}

func (c *Config) normalizeInput() error {
	envFallback(&c.Input.WordList, "AFFIXSPLIT_WORDLIST")
	envFallback(&c.Input.Vocabulary, "AFFIXSPLIT_VOCABULARY")
	envFallback(&c.Input.FrequencyList, "AFFIXSPLIT_FREQUENCY")

	var err error
	if c.Input.WordList, err = expandPath(strings.TrimSpace(c.Input.WordList)); err != nil {
		return fmt.Errorf("input.word_list: %w", err)
	}
	if c.Input.Vocabulary, err = expandPath(strings.TrimSpace(c.Input.Vocabulary)); err != nil {
		return fmt.Errorf("input.vocabulary: %w", err)
	}
	if c.Input.FrequencyList, err = expandPath(strings.TrimSpace(c.Input.FrequencyList)); err != nil {
		return fmt.Errorf("input.frequency_list: %w", err)
	}
	if c.Input.SubtlexExport, err = expandPath(strings.TrimSpace(c.Input.SubtlexExport)); err != nil {
		return fmt.Errorf("input.subtlex_export: %w", err)
	}
	c.Input.Encoding = strings.ToLower(strings.TrimSpace(c.Input.Encoding))
	if c.Input.Encoding == "" {
		c.Input.Encoding = defaultEncoding
	}
	return nil
}

func (c *Config) normalizeCompound() {
	if c.Compound.MinPartLength <= 0 {
		c.Compound.MinPartLength = defaultMinPartLength
	}
}

func (c *Config) normalizeOutput() error {
	var err error
	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = defaultOutputDir
	}
	if c.Output.Dir, err = expandPath(c.Output.Dir); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	c.Output.SuffixFile = strings.TrimSpace(c.Output.SuffixFile)
	if c.Output.SuffixFile == "" {
		c.Output.SuffixFile = defaultSuffixFile
	}
	c.Output.PrefixFile = strings.TrimSpace(c.Output.PrefixFile)
	if c.Output.PrefixFile == "" {
		c.Output.PrefixFile = defaultPrefixFile
	}
	c.Output.SnapshotFile = strings.TrimSpace(c.Output.SnapshotFile)
	if c.Output.SnapshotFile == "" {
		c.Output.SnapshotFile = defaultSnapshotFile
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func (c *Config) normalizeProgress() {
	c.Progress.Mode = strings.ToLower(strings.TrimSpace(c.Progress.Mode))
	if c.Progress.Mode == "" {
		c.Progress.Mode = defaultProgressMode
	}
}

func envFallback(target *string, key string) {
	if strings.TrimSpace(*target) != "" {
		return
	}
	if value, ok := os.LookupEnv(key); ok {
		*target = strings.TrimSpace(value)
	}
}

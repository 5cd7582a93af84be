package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Input describes where the word list, reference vocabulary, and frequency
// corpus are read from.
type Input struct {
	WordList      string `toml:"word_list"`
	Vocabulary    string `toml:"vocabulary"`
	FrequencyList string `toml:"frequency_list"`
	// Encoding is "auto" or an encoding label such as "utf-8" or "latin1".
	Encoding string `toml:"encoding"`
	// SubtlexExport receives the filtered SUBTLEX word column when set.
	SubtlexExport string `toml:"subtlex_export"`
}

// Stemming contains stemmer adapter switches.
type Stemming struct {
	IgnoreStopwords       bool `toml:"ignore_stopwords"`
	CistemCaseInsensitive bool `toml:"cistem_case_insensitive"`
}

// Compound contains compound decomposition settings.
type Compound struct {
	MinPartLength       int  `toml:"min_part_length"`
	AllowLinking        bool `toml:"allow_linking"`
	DecomposeVocabulary bool `toml:"decompose_vocabulary"`
}

// Output contains report and snapshot destinations.
type Output struct {
	Dir          string `toml:"dir"`
	SuffixFile   string `toml:"suffix_file"`
	PrefixFile   string `toml:"prefix_file"`
	EmitPrefixes bool   `toml:"emit_prefixes"`
	Snapshot     bool   `toml:"snapshot"`
	SnapshotFile string `toml:"snapshot_file"`
	Print        bool   `toml:"print"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Progress controls the progress bar shown during decomposition.
type Progress struct {
	// Mode is one of "auto", "always", or "never".
	Mode string `toml:"mode"`
}

// Config encapsulates all configuration values for affixsplit.
//
// Configuration sections by subsystem:
//   - Input: word list, vocabulary, frequency corpus, encoding
//   - Stemming: Snowball stop-word handling and CISTEM case behaviour
//   - Compound: dictionary decomposition settings
//   - Output: report files, prefix emission, snapshot store
//   - Logging: log format, level, and optional file
//   - Progress: progress bar behaviour
type Config struct {
	Input    Input    `toml:"input"`
	Stemming Stemming `toml:"stemming"`
	Compound Compound `toml:"compound"`
	Output   Output   `toml:"output"`
	Logging  Logging  `toml:"logging"`
	Progress Progress `toml:"progress"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/affixsplit/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	if err := loadDotEnv(); err != nil {
		return nil, "", false, err
	}

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// loadDotEnv reads .env from the working directory without overriding
// variables that are already set.
func loadDotEnv() error {
	info, err := os.Stat(".env")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat .env: %w", err)
	}
	if info.IsDir() {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("affixsplit.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output directory and the parent of any
// configured log file.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Output.Dir, err)
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		dir := filepath.Dir(c.Logging.File)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory %q: %w", dir, err)
		}
	}
	return nil
}

// RequireInputs reports which mandatory input paths are missing. The word
// list and vocabulary are always required; a frequency source is resolved
// later because a SUBTLEX word list can supply its own counts.
func (c *Config) RequireInputs() error {
	var missing []string
	if c.Input.WordList == "" {
		missing = append(missing, "input.word_list")
	}
	if c.Input.Vocabulary == "" {
		missing = append(missing, "input.vocabulary")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s must be set (edit the config file, export AFFIXSPLIT_* or pass flags)", strings.Join(missing, ", "))
	}
	return nil
}

// SuffixReportPath returns the absolute path of the suffix report.
func (c *Config) SuffixReportPath() string {
	return c.outputPath(c.Output.SuffixFile)
}

// PrefixReportPath returns the absolute path of the prefix report.
func (c *Config) PrefixReportPath() string {
	return c.outputPath(c.Output.PrefixFile)
}

// SnapshotPath returns the absolute path of the snapshot database.
func (c *Config) SnapshotPath() string {
	return c.outputPath(c.Output.SnapshotFile)
}

func (c *Config) outputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Output.Dir, name)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

package config

const (
	defaultEncoding      = "auto"
	defaultMinPartLength = 3
	defaultOutputDir     = "."
	defaultSuffixFile    = "german_suffixes_with_frequency.txt"
	defaultPrefixFile    = "german_prefixes_with_frequency.txt"
	defaultSnapshotFile  = "affix_snapshot.db"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultProgressMode  = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Input: Input{
			Encoding: defaultEncoding,
		},
		Stemming: Stemming{
			IgnoreStopwords: true,
		},
		Compound: Compound{
			MinPartLength:       defaultMinPartLength,
			AllowLinking:        true,
			DecomposeVocabulary: true,
		},
		Output: Output{
			Dir:          defaultOutputDir,
			SuffixFile:   defaultSuffixFile,
			PrefixFile:   defaultPrefixFile,
			SnapshotFile: defaultSnapshotFile,
			Print:        true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Progress: Progress{
			Mode: defaultProgressMode,
		},
	}
}

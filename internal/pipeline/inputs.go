package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"affixsplit/internal/config"
	"affixsplit/internal/frequency"
	"affixsplit/internal/logging"
	"affixsplit/internal/wordlist"
)

// ErrNoFrequencySource is returned when neither a frequency list nor SUBTLEX
// counts are available for scoring.
var ErrNoFrequencySource = errors.New("no frequency source: set input.frequency_list or use a SUBTLEX word list")

// Inputs holds everything a run reads from disk.
type Inputs struct {
	Source     string
	Format     wordlist.Format
	Encoding   string
	Words      []string
	Vocabulary []string
	Scorer     frequency.Scorer
}

// LoadInputs reads the word list, vocabulary and frequency corpus named by
// cfg. A SUBTLEX word list doubles as the frequency corpus when no separate
// list is configured.
func LoadInputs(cfg *config.Config, logger *slog.Logger) (*Inputs, error) {
	if err := cfg.RequireInputs(); err != nil {
		return nil, err
	}
	logger = logging.NewComponentLogger(logger, "loader")

	list, err := wordlist.Load(cfg.Input.WordList, cfg.Input.Encoding)
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}
	logger.Info("word list loaded",
		logging.Path(list.Path),
		logging.String("format", string(list.Format)),
		logging.String("encoding", list.Encoding),
		logging.Count(len(list.Words)),
	)

	if list.Format == wordlist.FormatSubtlex && cfg.Input.SubtlexExport != "" {
		if err := wordlist.WriteWords(cfg.Input.SubtlexExport, list.Words); err != nil {
			return nil, err
		}
		logger.Info("subtlex words exported", logging.Path(cfg.Input.SubtlexExport), logging.Count(len(list.Words)))
	}

	vocab, err := wordlist.LoadVocabulary(cfg.Input.Vocabulary, cfg.Input.Encoding)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	logger.Info("vocabulary loaded", logging.Path(cfg.Input.Vocabulary), logging.Count(len(vocab)))

	var table *frequency.Table
	switch {
	case cfg.Input.FrequencyList != "":
		table, err = frequency.Load(cfg.Input.FrequencyList, cfg.Input.Encoding)
		if err != nil {
			return nil, fmt.Errorf("load frequency list: %w", err)
		}
		logger.Info("frequency list loaded",
			logging.Path(cfg.Input.FrequencyList),
			logging.Count(table.Len()),
			logging.Float64("tokens", table.Total()),
		)
	case len(list.Counts) > 0:
		table = frequency.NewTable(list.Counts)
		logger.Info("using subtlex counts for scoring",
			logging.Count(table.Len()),
			logging.Float64("tokens", table.Total()),
		)
	default:
		return nil, ErrNoFrequencySource
	}

	return &Inputs{
		Source:     list.Path,
		Format:     list.Format,
		Encoding:   list.Encoding,
		Words:      list.Words,
		Vocabulary: vocab,
		Scorer:     table,
	}, nil
}

package compound

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"affixsplit/internal/logging"
	"affixsplit/internal/progress"
)

// ErrMatcherPanic wraps a panic recovered while dissecting a word.
var ErrMatcherPanic = errors.New("matcher panicked")

// Result is the outcome of dissecting one word.
type Result struct {
	Word   string
	Parts  []string
	Failed bool
	Err    error
}

// DecomposerOption customises a Decomposer.
type DecomposerOption func(*Decomposer)

// WithLogger sets the logger used for batch summaries.
func WithLogger(logger *slog.Logger) DecomposerOption {
	return func(d *Decomposer) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithProgress sets the progress bar factory for batches.
func WithProgress(factory progress.Factory) DecomposerOption {
	return func(d *Decomposer) {
		if factory != nil {
			d.progress = factory
		}
	}
}

// Decomposer dissects batches of words against a Dictionary.
type Decomposer struct {
	dict     *Dictionary
	logger   *slog.Logger
	progress progress.Factory
	dissect  func(string) ([]string, error)
}

// NewDecomposer returns a Decomposer over dict.
func NewDecomposer(dict *Dictionary, opts ...DecomposerOption) *Decomposer {
	d := &Decomposer{
		dict:     dict,
		logger:   logging.NewNop(),
		progress: progress.Nop,
		dissect:  dict.Dissect,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DissectAll dissects every word and returns one Result per input, in order.
// Failures never abort the batch. Stdout is silenced while the batch runs.
func (d *Decomposer) DissectAll(ctx context.Context, words []string, label string) []Result {
	restore := quietStdout()
	defer restore()

	tracker := d.progress(len(words), label)
	defer tracker.Finish()

	results := make([]Result, len(words))
	failed := 0
	for i, w := range words {
		if err := ctx.Err(); err != nil {
			results[i] = Result{Word: w, Failed: true, Err: err}
			failed++
			continue
		}
		parts, err := d.safeDissect(w)
		if err != nil {
			results[i] = Result{Word: w, Failed: true, Err: err}
			failed++
		} else {
			results[i] = Result{Word: w, Parts: parts}
		}
		tracker.Add(1)
	}

	d.logger.Debug("compound batch finished",
		logging.Stage(label),
		logging.Int("words", len(words)),
		logging.Int("failed", failed),
	)
	return results
}

func (d *Decomposer) safeDissect(word string) (parts []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			parts = nil
			err = fmt.Errorf("%w: %v", ErrMatcherPanic, r)
		}
	}()
	return d.dissect(word)
}

// Flatten returns the parts of all successful results in order.
func Flatten(results []Result) []string {
	var out []string
	for _, r := range results {
		if r.Failed {
			continue
		}
		out = append(out, r.Parts...)
	}
	return out
}

// Failures counts the failed results.
func Failures(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Failed {
			n++
		}
	}
	return n
}

// quietStdout points os.Stdout at the null device and returns a function
// restoring the previous value.
func quietStdout() func() {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return func() {}
	}
	prev := os.Stdout
	os.Stdout = devNull
	return func() {
		os.Stdout = prev
		_ = devNull.Close()
	}
}

// Package progress renders terminal progress bars for long batch stages.
package progress

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Mode controls when a bar is drawn.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// Tracker receives progress updates for a batch.
type Tracker interface {
	Add(n int)
	Finish()
}

// Factory creates a Tracker for a batch of total items.
type Factory func(total int, description string) Tracker

// NewFactory returns a Factory writing bars to w according to mode. In auto
// mode a bar is drawn only when w is a terminal.
func NewFactory(w io.Writer, mode Mode) Factory {
	if !enabled(w, mode) {
		return Nop
	}
	return func(total int, description string) Tracker {
		if total <= 0 {
			return nopTracker{}
		}
		return &barTracker{bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(description),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)}
	}
}

// Nop is a Factory that never draws.
func Nop(int, string) Tracker {
	return nopTracker{}
}

func enabled(w io.Writer, mode Mode) bool {
	switch mode {
	case ModeAlways:
		return w != nil
	case ModeNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type barTracker struct {
	bar *progressbar.ProgressBar
}

func (t *barTracker) Add(n int) {
	_ = t.bar.Add(n)
}

func (t *barTracker) Finish() {
	_ = t.bar.Finish()
}

type nopTracker struct{}

func (nopTracker) Add(int) {}
func (nopTracker) Finish() {}

package pipeline

import (
	"context"
	"fmt"

	"affixsplit/internal/logging"
	"affixsplit/internal/report"
	"affixsplit/internal/snapshot"
)

// Published lists where a run's output went.
type Published struct {
	SuffixReport string         `json:"suffix_report"`
	PrefixReport string         `json:"prefix_report,omitempty"`
	Snapshot     string         `json:"snapshot,omitempty"`
	Runs         []snapshot.Run `json:"runs,omitempty"`
}

// Publish writes the suffix report, the prefix report when enabled, and a
// snapshot when enabled.
func (p *Pipeline) Publish(ctx context.Context, res *Result, source string) (*Published, error) {
	if err := p.cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	out := &Published{SuffixReport: p.cfg.SuffixReportPath()}
	if err := report.Write(out.SuffixReport, res.Suffixes); err != nil {
		return nil, err
	}
	p.logger.Info("suffix report written", logging.Path(out.SuffixReport), logging.Count(len(res.Suffixes)))

	if p.cfg.Output.EmitPrefixes {
		out.PrefixReport = p.cfg.PrefixReportPath()
		if err := report.Write(out.PrefixReport, res.Prefixes); err != nil {
			return nil, err
		}
		p.logger.Info("prefix report written", logging.Path(out.PrefixReport), logging.Count(len(res.Prefixes)))
	}

	if !p.cfg.Output.Snapshot {
		return out, nil
	}
	out.Snapshot = p.cfg.SnapshotPath()
	store, err := snapshot.Open(out.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer store.Close()

	run, err := store.Save(ctx, snapshot.KindSuffix, source, res.Suffixes)
	if err != nil {
		return nil, fmt.Errorf("save suffix snapshot: %w", err)
	}
	out.Runs = append(out.Runs, *run)
	if p.cfg.Output.EmitPrefixes {
		run, err := store.Save(ctx, snapshot.KindPrefix, source, res.Prefixes)
		if err != nil {
			return nil, fmt.Errorf("save prefix snapshot: %w", err)
		}
		out.Runs = append(out.Runs, *run)
	}
	p.logger.Info("snapshot saved", logging.Path(out.Snapshot), logging.String("run_id", out.Runs[0].ID))
	return out, nil
}

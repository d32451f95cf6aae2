// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/signedge/config"
	"github.com/katalvlaran/signedge/degree"
	"github.com/katalvlaran/signedge/edgelist"
	"github.com/katalvlaran/signedge/output"
	"github.com/katalvlaran/signedge/report"
)

// SummaryFile is the name of the per-destination summary written next to
// the feature files.
const SummaryFile = "summary.txt"

// Execute loads cfg.Input, runs the extraction and writes one TSV file per
// destination plus a summary into cfg.OutputDir. It returns the paths of
// the feature files.
func Execute(ctx context.Context, cfg *config.Config) (*Result, []string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	g, st, err := edgelist.Load(cfg.Input)
	if err != nil {
		return nil, nil, err
	}
	klog.Infof("loaded %s: %d vertices, %d edges (%d self-loops skipped, %d duplicates)",
		cfg.Input, g.VertexCount(), st.Edges, st.SelfLoops, st.Duplicates)

	res, err := Run(ctx, g, cfg)
	if err != nil {
		return nil, nil, err
	}

	w, err := output.NewWriter(cfg.OutputDir, res.Ranges, res.Mode == config.ModeInter)
	if err != nil {
		return nil, nil, err
	}
	paths, err := w.WriteRouter(res.Router)
	if err != nil {
		return nil, nil, err
	}
	if err = writeSummary(filepath.Join(cfg.OutputDir, SummaryFile), res); err != nil {
		return nil, nil, err
	}
	klog.Infof("wrote %d files to %s", len(paths), cfg.OutputDir)

	return res, paths, nil
}

// Profile loads cfg.Input and writes one neighbor-profile file per bucket.
func Profile(cfg *config.Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, _, err := edgelist.Load(cfg.Input)
	if err != nil {
		return nil, err
	}
	rs, err := ResolveRanges(g, cfg)
	if err != nil {
		return nil, err
	}
	buckets, err := degree.Partition(g, rs)
	if err != nil {
		return nil, err
	}
	prof, err := degree.Profile(g, buckets)
	if err != nil {
		return nil, err
	}
	w, err := output.NewWriter(cfg.OutputDir, rs, false)
	if err != nil {
		return nil, err
	}

	return w.WriteProfiles(prof)
}

func writeSummary(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "pipeline: create summary")
	}
	if err = report.Write(f, report.Summarize(res.Router, res.Sentinel)); err != nil {
		f.Close()
		return errors.Wrap(err, "pipeline: write summary")
	}
	return errors.Wrap(f.Close(), "pipeline: close summary")
}

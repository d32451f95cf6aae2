// SPDX-License-Identifier: MIT

// Package pipeline wires the degree partition, candidate enumeration,
// sampling and leave-one-out extraction into one configurable run.
//
// The graph is processed strictly sequentially: at most one candidate edge
// is removed at any time and it is restored before the next candidate or
// cancellation check.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/signedge/config"
	"github.com/katalvlaran/signedge/core"
	"github.com/katalvlaran/signedge/degree"
	"github.com/katalvlaran/signedge/features"
	"github.com/katalvlaran/signedge/pairs"
	"github.com/katalvlaran/signedge/sampler"
)

// progressEvery is the number of extracted records between progress lines.
const progressEvery = 1000

// Result is the in-memory outcome of Run.
type Result struct {
	Mode       config.Mode
	Ranges     degree.Ranges
	Buckets    *degree.Buckets
	Router     *sampler.Router
	Sampler    *sampler.Sampler
	Sentinel   float64
	Candidates int // enumerated candidates
	Extracted  int // candidates that went through extraction
	Elapsed    time.Duration
}

// ResolveRanges returns the configured degree ranges, or derives them from
// g when none are configured.
func ResolveRanges(g *core.Graph, cfg *config.Config) (degree.Ranges, error) {
	rs, err := cfg.Ranges()
	if err != nil {
		return nil, err
	}
	if rs != nil {
		return rs, nil
	}
	rs, err = degree.Adaptive(g, cfg.AdaptiveMinBucket)
	if err != nil {
		return nil, err
	}
	klog.Infof("derived %d degree ranges (min bucket %d): %v", len(rs), cfg.AdaptiveMinBucket, rs)

	return rs, nil
}

// Run partitions g, enumerates candidates in cfg.Mode, and extracts the
// features of every candidate admitted by the per-class sampler.
//
// ctx is checked between candidates; on cancellation Run returns the
// context error and the graph is left exactly as it was loaded.
//
// Errors: configuration errors (config.ErrInvalidConfig,
// degree.ErrDegreeNotCovered, degree.ErrBadRanges),
// features.ErrBrokenInvariant, context errors.
func Run(ctx context.Context, g *core.Graph, cfg *config.Config) (*Result, error) {
	start := time.Now()

	rs, err := ResolveRanges(g, cfg)
	if err != nil {
		return nil, err
	}
	buckets, err := degree.Partition(g, rs)
	if err != nil {
		return nil, err
	}
	for _, b := range buckets.Groups {
		klog.V(2).Infof("bucket %d [%s]: %d nodes", b.Index, b.Range, len(b.Nodes))
	}

	var groups pairs.Groups
	router := sampler.NewRouter()
	switch cfg.Mode {
	case config.ModeIntra:
		groups, err = pairs.Intra(g, buckets)
		for _, d := range sampler.IntraDestinations(buckets.Len()) {
			router.Touch(d)
		}
	case config.ModeInter:
		groups, err = pairs.Inter(g, buckets)
	default:
		err = fmt.Errorf("%w: unknown mode %q", config.ErrInvalidConfig, cfg.Mode)
	}
	if err != nil {
		return nil, err
	}

	x, err := features.New(g,
		features.WithMaxPathLength(cfg.MaxPathLength),
		features.WithSentinel(cfg.InvalidSentinel),
		features.WithPathLimit(cfg.MaxShortestPaths),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	res := &Result{
		Mode:       cfg.Mode,
		Ranges:     rs,
		Buckets:    buckets,
		Router:     router,
		Sampler:    sampler.New(cfg.PerClassSampleLimit),
		Sentinel:   cfg.InvalidSentinel,
		Candidates: groups.Total(),
	}
	klog.Infof("%s mode: %d candidates in %d groups over %d vertices / %d edges",
		cfg.Mode, res.Candidates, len(groups), g.VertexCount(), g.EdgeCount())

	for _, key := range groups.Keys() {
		cands := groups[key]
		klog.V(1).Infof("group %d: %d candidates", key, len(cands))
		for _, c := range cands {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			class := c.Class()
			if !res.Sampler.Admit(class) {
				continue
			}
			rec, err := x.Extract(ctx, c)
			if err != nil {
				return nil, err
			}
			router.Add(rec)
			res.Sampler.Record(class)
			res.Extracted++
			if res.Extracted%progressEvery == 0 {
				klog.Infof("extracted %d records (%d skipped by cap)", res.Extracted, res.Sampler.Skipped())
			}
		}
	}

	res.Elapsed = time.Since(start)
	klog.Infof("extracted %d of %d candidates in %s (%d skipped by cap of %d)",
		res.Extracted, res.Candidates, res.Elapsed, res.Sampler.Skipped(), res.Sampler.Limit())

	return res, nil
}

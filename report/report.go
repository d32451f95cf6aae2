// SPDX-License-Identifier: MIT

// Package report summarizes extracted features per destination: how many
// values were computable and their mean and standard deviation.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/signedge/features"
	"github.com/katalvlaran/signedge/sampler"
)

// FeatureSummary describes one feature column of a destination.
// Mean and StdDev cover non-sentinel values only; StdDev is the sample
// standard deviation and 0 with fewer than two values.
type FeatureSummary struct {
	Valid    int
	Sentinel int
	Mean     float64
	StdDev   float64
}

// Summary describes one destination.
type Summary struct {
	Destination sampler.Destination
	Records     int
	Features    [features.NumFeatures]FeatureSummary
}

// Summarize computes a Summary for every destination of r, in router order.
func Summarize(r *sampler.Router, sentinel float64) []Summary {
	var out []Summary
	// Each only returns what the callback returns, and this one never fails.
	_ = r.Each(func(d sampler.Destination, recs []features.Record) error {
		out = append(out, summarize(d, recs, sentinel))
		return nil
	})
	return out
}

func summarize(d sampler.Destination, recs []features.Record, sentinel float64) Summary {
	s := Summary{Destination: d, Records: len(recs)}
	col := make([]float64, 0, len(recs))
	for i := 0; i < features.NumFeatures; i++ {
		col = col[:0]
		for _, rec := range recs {
			if rec.Features[i] == sentinel {
				s.Features[i].Sentinel++
				continue
			}
			col = append(col, rec.Features[i])
		}
		fs := &s.Features[i]
		fs.Valid = len(col)
		switch len(col) {
		case 0:
		case 1:
			fs.Mean = col[0]
		default:
			fs.Mean, fs.StdDev = stat.MeanStdDev(col, nil)
		}
	}
	return s
}

// Write renders summaries as an aligned table, one row per destination.
func Write(w io.Writer, sums []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "destination\trecords")
	for i := 1; i <= features.NumFeatures; i++ {
		fmt.Fprintf(tw, "\tprop%d mean±sd (valid)", i)
	}
	fmt.Fprintln(tw)
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%d", s.Destination, s.Records)
		for _, f := range s.Features {
			fmt.Fprintf(tw, "\t%.4f±%.4f (%d)", f.Mean, f.StdDev, f.Valid)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

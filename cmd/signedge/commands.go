// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/signedge/builder"
	"github.com/katalvlaran/signedge/degree"
	"github.com/katalvlaran/signedge/edgelist"
	"github.com/katalvlaran/signedge/pipeline"
	"github.com/katalvlaran/signedge/report"
)

func newExtractCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract per-edge features into TSV files",
		Long: `Extract loads the edge list, partitions vertices by degree range and
writes one TSV file per (group, sign) with the five leave-one-out
features of each sampled edge, plus summary.txt.

Examples:
  signedge extract -c run.yaml
  signedge extract -i slashdot.txt -o out --mode inter --ranges 0-5,6-20,21-100000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			res, paths, err := pipeline.Execute(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintln(out, p)
			}
			return report.Write(out, report.Summarize(res.Router, res.Sentinel))
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newProfileCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Write per-bucket neighbor profiles",
		Long: `Profile writes profile_<lo>-<hi>.tsv per degree range; each line holds a
vertex, its degree and how many of its neighbors fall in every range.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			paths, err := pipeline.Profile(cfg)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newRangesCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "Print the degree ranges and bucket sizes of a graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			g, _, err := edgelist.Load(cfg.Input)
			if err != nil {
				return err
			}
			rs, err := pipeline.ResolveRanges(g, cfg)
			if err != nil {
				return err
			}
			b, err := degree.Partition(g, rs)
			if err != nil {
				return err
			}
			for _, bucket := range b.Groups {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\n", bucket.Index, bucket.Range, len(bucket.Nodes))
			}
			return nil
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newSynthCmd() *cobra.Command {
	var (
		nodes    int
		p        float64
		negRatio float64
		seed     int64
		out      string
	)
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate a random signed graph as an edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if negRatio < 0 || negRatio > 1 {
				return fmt.Errorf("--neg-ratio %g not in [0, 1]", negRatio)
			}
			g, err := builder.BuildGraph(
				[]builder.BuilderOption{
					builder.WithRand(rand.New(rand.NewSource(seed))),
					builder.WithNegativeRatio(negRatio),
				},
				builder.RandomSparse(nodes, p),
			)
			if err != nil {
				return err
			}
			st := g.Stats()
			klog.Infof("synthesized %d vertices, %d edges (%d negative)", st.VertexCount, st.EdgeCount, st.NegativeEdges)
			if out == "" {
				return edgelist.Write(cmd.OutOrStdout(), g)
			}
			return edgelist.Save(out, g)
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&nodes, "nodes", "n", 100, "number of vertices")
	fs.Float64VarP(&p, "prob", "p", 0.05, "edge probability")
	fs.Float64Var(&negRatio, "neg-ratio", 0.2, "probability that an edge is negative")
	fs.Int64Var(&seed, "seed", 1, "random seed")
	fs.StringVarP(&out, "out", "o", "", "output file (stdout if empty)")
	return cmd
}

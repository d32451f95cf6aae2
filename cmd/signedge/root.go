// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/signedge/config"
)

// runFlags are the settings shared by commands that read a graph.
type runFlags struct {
	configPath  string
	input       string
	outputDir   string
	mode        string
	ranges      string
	minBucket   int
	sampleLimit int
	maxPath     int
	maxPaths    int
	sentinel    float64
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "signedge",
		Short: "signedge - leave-one-out features of signed edges",
		Long: `signedge partitions the vertices of a signed graph by degree range,
enumerates candidate edges inside or across the ranges and computes five
topological features per edge with the edge itself removed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	root.PersistentFlags().AddGoFlagSet(fset)

	root.AddCommand(
		newExtractCmd(),
		newProfileCmd(),
		newRangesCmd(),
		newSynthCmd(),
	)
	return root
}

func (f *runFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&f.input, "input", "i", "", "edge list `file` (u v sign per line)")
	fs.StringVarP(&f.outputDir, "output", "o", "", "output directory")
	fs.StringVar(&f.mode, "mode", "", "candidate enumeration: intra | inter")
	fs.StringVar(&f.ranges, "ranges", "", "degree ranges, e.g. 0-5,6-20,21-100000")
	fs.IntVar(&f.minBucket, "min-bucket", config.DefaultAdaptiveMinBucket, "min vertices per adaptive range when no ranges are set")
	fs.IntVar(&f.sampleLimit, "sample-limit", config.DefaultSampleLimit, "max records per (bucket pair, sign) class, 0 = unlimited")
	fs.IntVar(&f.maxPath, "max-path", config.DefaultMaxPathLength, "longest usable shortest path in edges, 0 = unlimited")
	fs.IntVar(&f.maxPaths, "max-paths", 0, "max shortest paths averaged per edge, 0 = all")
	fs.Float64Var(&f.sentinel, "sentinel", config.DefaultSentinel, "value written for uncomputable features")
}

// resolve builds the configuration: file and environment first, then every
// flag the user set explicitly.
func (f *runFlags) resolve(fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Resolve(f.configPath)
	if err != nil {
		return nil, err
	}
	if fs.Changed("input") {
		cfg.Input = f.input
	}
	if fs.Changed("output") {
		cfg.OutputDir = f.outputDir
	}
	if fs.Changed("mode") {
		cfg.Mode = config.Mode(f.mode)
	}
	if fs.Changed("ranges") {
		if cfg.DegreeRanges, err = parseRanges(f.ranges); err != nil {
			return nil, err
		}
	}
	if fs.Changed("min-bucket") {
		cfg.AdaptiveMinBucket = f.minBucket
	}
	if fs.Changed("sample-limit") {
		cfg.PerClassSampleLimit = f.sampleLimit
	}
	if fs.Changed("max-path") {
		cfg.MaxPathLength = f.maxPath
	}
	if fs.Changed("max-paths") {
		cfg.MaxShortestPaths = f.maxPaths
	}
	if fs.Changed("sentinel") {
		cfg.InvalidSentinel = f.sentinel
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseRanges parses "lo-hi,lo-hi,..." into [[lo,hi],...].
func parseRanges(s string) ([][]int, error) {
	var out [][]int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, ok := strings.Cut(part, "-")
		if !ok {
			return nil, fmt.Errorf("%w: range %q is not lo-hi", config.ErrInvalidConfig, part)
		}
		l, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("%w: range %q: %v", config.ErrInvalidConfig, part, err)
		}
		h, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return nil, fmt.Errorf("%w: range %q: %v", config.ErrInvalidConfig, part, err)
		}
		out = append(out, []int{l, h})
	}
	return out, nil
}

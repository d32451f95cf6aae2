// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/signedge/builder"
	"github.com/katalvlaran/signedge/config"
	"github.com/katalvlaran/signedge/core"
	"github.com/katalvlaran/signedge/degree"
	"github.com/katalvlaran/signedge/edgelist"
	"github.com/katalvlaran/signedge/features"
	"github.com/katalvlaran/signedge/pipeline"
	"github.com/katalvlaran/signedge/sampler"
)

func scenario(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, core.Positive))
	require.NoError(t, g.AddEdge(2, 3, core.Positive))
	require.NoError(t, g.AddEdge(1, 3, core.Positive))
	require.NoError(t, g.AddEdge(3, 4, core.Negative))
	return g
}

func scenarioConfig(mode config.Mode) *config.Config {
	cfg := config.Default()
	cfg.Input = "unused"
	cfg.Mode = mode
	cfg.DegreeRanges = [][]int{{0, 2}, {3, 10}}
	return cfg
}

func randomGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(17), builder.WithNegativeRatio(0.4)},
		builder.RandomSparse(80, 0.1),
	)
	require.NoError(t, err)
	return g
}

func TestRun_IntraScenario(t *testing.T) {
	g := scenario(t)
	res, err := pipeline.Run(context.Background(), g, scenarioConfig(config.ModeIntra))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Candidates)
	assert.Equal(t, 1, res.Extracted)
	assert.Len(t, res.Router.Destinations(), 4, "both signs of every bucket")

	recs := res.Router.Records(sampler.Destination{Group: 0, Lo: 0, Hi: 0, Sign: core.Positive})
	require.Len(t, recs, 1)
	assert.Equal(t, int64(1), recs[0].Candidate.A)
	assert.Equal(t, int64(2), recs[0].Candidate.B)
	assert.Equal(t, 1.0, recs[0].Features.Prop3())
	assert.Equal(t, 1.0, recs[0].Features.Prop4())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestRun_InterScenario(t *testing.T) {
	g := scenario(t)
	res, err := pipeline.Run(context.Background(), g, scenarioConfig(config.ModeInter))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Extracted)
	assert.Equal(t, []sampler.Destination{
		{Group: 0, Lo: 0, Hi: 1, Sign: core.Positive},
		{Group: 0, Lo: 0, Hi: 1, Sign: core.Negative},
	}, res.Router.Destinations())

	// (3,4,-): 4 becomes isolated
	neg := res.Router.Records(res.Router.Destinations()[1])
	require.Len(t, neg, 1)
	assert.Equal(t, features.DefaultSentinel, neg[0].Features.Prop1())
}

func TestRun_CapAndRestoration(t *testing.T) {
	g := randomGraph(t)
	before := g.Edges()

	cfg := config.Default()
	cfg.Input = "unused"
	cfg.AdaptiveMinBucket = 15
	cfg.PerClassSampleLimit = 3

	for _, mode := range []config.Mode{config.ModeIntra, config.ModeInter} {
		cfg.Mode = mode
		res, err := pipeline.Run(context.Background(), g, cfg)
		require.NoError(t, err)

		perClass := make(map[string]int)
		err = res.Router.Each(func(d sampler.Destination, recs []features.Record) error {
			for _, rec := range recs {
				assert.Equal(t, d.Sign, rec.Candidate.Sign)
				perClass[rec.Class.String()]++
			}
			return nil
		})
		require.NoError(t, err)
		for class, n := range perClass {
			assert.LessOrEqual(t, n, cfg.PerClassSampleLimit, "class %s", class)
		}
		assert.Equal(t, res.Extracted, res.Router.Len())
		assert.Equal(t, res.Candidates, res.Extracted+res.Sampler.Skipped())
		assert.Equal(t, before, g.Edges(), "graph restored after %s run", mode)
	}
}

func TestRun_Errors(t *testing.T) {
	g := scenario(t)

	cfg := scenarioConfig(config.ModeIntra)
	cfg.DegreeRanges = [][]int{{0, 2}}
	_, err := pipeline.Run(context.Background(), g, cfg)
	assert.ErrorIs(t, err, degree.ErrDegreeNotCovered)

	cfg = scenarioConfig("sideways")
	_, err = pipeline.Run(context.Background(), g, cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg = scenarioConfig(config.ModeInter)
	cfg.InvalidSentinel = 0
	_, err = pipeline.Run(context.Background(), g, cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pipeline.Run(ctx, g, scenarioConfig(config.ModeInter))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 4, g.EdgeCount())
}

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "edges.txt")
	require.NoError(t, edgelist.Save(input, scenario(t)))

	cfg := scenarioConfig(config.ModeIntra)
	cfg.Input = input
	cfg.OutputDir = filepath.Join(dir, "out")

	res, paths, err := pipeline.Execute(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Extracted)
	require.Len(t, paths, 4)

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "group_0-2_pos.tsv"))
	require.NoError(t, err)
	assertScenarioLine(t, string(data))

	_, err = os.Stat(filepath.Join(cfg.OutputDir, pipeline.SummaryFile))
	assert.NoError(t, err)

	cfg.Input = ""
	_, _, err = pipeline.Execute(context.Background(), cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestProfile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "edges.txt")
	require.NoError(t, edgelist.Save(input, scenario(t)))

	cfg := scenarioConfig(config.ModeIntra)
	cfg.Input = input
	cfg.OutputDir = dir

	paths, err := pipeline.Profile(cfg)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "3\t3\t3\t0\n", string(data))
}

// assertScenarioLine checks the single record of edge (1,2) in the 4-node
// scenario; prop2 = (1/1 + 1/3 + 1/1) / 2.
func assertScenarioLine(t *testing.T, data string) {
	t.Helper()
	require.True(t, strings.HasSuffix(data, "\n"))
	fields := strings.Split(strings.TrimSuffix(data, "\n"), "\t")
	require.Len(t, fields, 7)
	assert.Equal(t, []string{"1", "2"}, fields[:2])
	want := []float64{1, 7.0 / 6, 1, 1, 1}
	for i, f := range fields[2:] {
		v, err := strconv.ParseFloat(f, 64)
		require.NoError(t, err)
		assert.InDelta(t, want[i], v, 1e-12, "prop%d", i+1)
	}
}

// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/signedge/core"
	"github.com/katalvlaran/signedge/features"
	"github.com/katalvlaran/signedge/pairs"
	"github.com/katalvlaran/signedge/report"
	"github.com/katalvlaran/signedge/sampler"
)

func rec(a, b int64, s core.Sign, f features.Features) features.Record {
	c := pairs.Candidate{A: a, B: b, Sign: s}
	return features.Record{Candidate: c, Features: f, Class: c.Class()}
}

func TestSummarize(t *testing.T) {
	const sentinel = 1000
	r := sampler.NewRouter()
	r.Add(rec(1, 2, core.Positive, features.Features{1, 0.5, 0, sentinel, 0}))
	r.Add(rec(1, 3, core.Positive, features.Features{0, 0.5, 1, sentinel, 0}))
	r.Add(rec(1, 4, core.Positive, features.Features{sentinel, sentinel, 0.5, 1, 0}))
	r.Add(rec(5, 6, core.Negative, features.Features{-1, 1, 1, 1, 1}))

	sums := report.Summarize(r, sentinel)
	require.Len(t, sums, 2)

	pos := sums[0]
	assert.Equal(t, core.Positive, pos.Destination.Sign)
	assert.Equal(t, 3, pos.Records)

	p1 := pos.Features[0]
	assert.Equal(t, 2, p1.Valid)
	assert.Equal(t, 1, p1.Sentinel)
	assert.InDelta(t, 0.5, p1.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(0.5), p1.StdDev, 1e-12)

	p4 := pos.Features[3]
	assert.Equal(t, 1, p4.Valid)
	assert.Equal(t, 2, p4.Sentinel)
	assert.Equal(t, 1.0, p4.Mean)
	assert.Zero(t, p4.StdDev)

	neg := sums[1]
	assert.Equal(t, 1, neg.Records)
	assert.Equal(t, -1.0, neg.Features[0].Mean)
}

func TestWrite(t *testing.T) {
	r := sampler.NewRouter()
	r.Touch(sampler.Destination{Sign: core.Negative})
	sums := report.Summarize(r, features.DefaultSentinel)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sums))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "destination"))
	assert.Contains(t, lines[1], "0/0-0/neg")
}

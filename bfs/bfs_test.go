// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/signedge/bfs"
	"github.com/katalvlaran/signedge/core"
)

func mustEdge(t *testing.T, g *core.Graph, a, b int64) {
	t.Helper()
	if err := g.AddEdge(a, b, core.Positive); err != nil {
		t.Fatalf("AddEdge(%d,%d): %v", a, b, err)
	}
}

// chain builds 0–1–…–n.
func chain(t *testing.T, n int64) *core.Graph {
	g := core.NewGraph()
	for i := int64(0); i < n; i++ {
		mustEdge(t, g, i, i+1)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 1); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 7); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g.AddVertex(1)
	if _, err := bfs.BFS(g, 1, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.AllShortestPaths(g, 1, 1, bfs.WithPathLimit(-2)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative path limit: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.AllShortestPaths(g, 1, 9); !errors.Is(err, bfs.ErrTargetVertexNotFound) {
		t.Errorf("missing target: want ErrTargetVertexNotFound, got %v", err)
	}
}

// TestBFS_DepthsAndParents covers a simple chain and PathTo.
func TestBFS_DepthsAndParents(t *testing.T) {
	g := chain(t, 4)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int64{0, 1, 2, 3, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[4]; d != 4 {
		t.Errorf("Depth[4] = %d; want 4", d)
	}
	p, err := res.PathTo(3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int64{0, 1, 2, 3}; !reflect.DeepEqual(p, want) {
		t.Errorf("PathTo(3) = %v; want %v", p, want)
	}
	if res.Truncated {
		t.Error("unlimited search reported truncation")
	}
}

// TestBFS_MaxDepthTruncates checks the depth limit and the Truncated flag.
func TestBFS_MaxDepthTruncates(t *testing.T) {
	g := chain(t, 9)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int64{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if !res.Truncated {
		t.Error("expected Truncated")
	}
}

// TestBFS_HookAndCancellation checks OnVisit errors and context cancellation.
func TestBFS_HookAndCancellation(t *testing.T) {
	g := chain(t, 5)
	boom := errors.New("boom")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id int64, _ int) error {
		if id == 2 {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("hook error: want boom, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}

// TestAllShortestPaths_Diamond finds both tied routes of a diamond.
//
//	  2
//	 / \
//	1   4 - 5
//	 \ /
//	  3
func TestAllShortestPaths_Diamond(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, 1, 2)
	mustEdge(t, g, 1, 3)
	mustEdge(t, g, 2, 4)
	mustEdge(t, g, 3, 4)
	mustEdge(t, g, 4, 5)

	res, err := bfs.AllShortestPaths(g, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != bfs.PathFound || !res.Found() {
		t.Fatalf("Status = %v; want found", res.Status)
	}
	if res.Length != 3 {
		t.Errorf("Length = %d; want 3", res.Length)
	}
	want := [][]int64{{1, 2, 4, 5}, {1, 3, 4, 5}}
	if !reflect.DeepEqual(res.Paths, want) {
		t.Errorf("Paths = %v; want %v", res.Paths, want)
	}

	limited, err := bfs.AllShortestPaths(g, 1, 5, bfs.WithPathLimit(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(limited.Paths) != 1 {
		t.Errorf("limited paths = %d; want 1", len(limited.Paths))
	}
}

// TestAllShortestPaths_Statuses distinguishes unreachable from too-long targets.
func TestAllShortestPaths_Statuses(t *testing.T) {
	g := chain(t, 6)
	g.AddVertex(100)

	cases := []struct {
		name     string
		to       int64
		maxDepth int
		want     bfs.PathStatus
	}{
		{"within limit", 3, 3, bfs.PathFound},
		{"beyond limit", 6, 3, bfs.PathTooLong},
		{"isolated target", 100, 10, bfs.PathUnreachable},
		// the limit cuts the search short, so unreachability cannot be proven
		{"isolated target behind limit", 100, 3, bfs.PathTooLong},
		{"isolated target unlimited", 100, 0, bfs.PathUnreachable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := bfs.AllShortestPaths(g, 0, tc.to, bfs.WithMaxDepth(tc.maxDepth))
			if err != nil {
				t.Fatal(err)
			}
			if res.Status != tc.want {
				t.Errorf("Status = %v; want %v", res.Status, tc.want)
			}
			if tc.want != bfs.PathFound && len(res.Paths) != 0 {
				t.Errorf("non-found result carries paths: %v", res.Paths)
			}
		})
	}
}

func TestPathStatus_String(t *testing.T) {
	for s, want := range map[bfs.PathStatus]string{
		bfs.PathFound:       "found",
		bfs.PathUnreachable: "unreachable",
		bfs.PathTooLong:     "too-long",
		bfs.PathStatus(9):   "PathStatus(9)",
	} {
		if got := s.String(); got != want {
			t.Errorf("String(%d) = %q; want %q", int(s), got, want)
		}
	}
}

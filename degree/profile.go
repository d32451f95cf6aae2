// SPDX-License-Identifier: MIT

package degree

import (
	"fmt"

	"github.com/katalvlaran/signedge/core"
)

// ProfileRow describes how one vertex connects to every bucket:
// Counts[j] is the number of its neighbors that live in bucket j.
type ProfileRow struct {
	Node   int64
	Degree int
	Counts []int
}

// Profile returns, per bucket and in bucket node order, the neighbor
// distribution of each vertex over all buckets.
//
// Errors: ErrGraphNil; core errors if a bucket vertex has vanished from g;
// ErrDegreeNotCovered if a neighbor was not part of the partition.
// Complexity: O(V + E log d).
func Profile(g *core.Graph, b *Buckets) ([][]ProfileRow, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	out := make([][]ProfileRow, b.Len())
	for i, bucket := range b.Groups {
		rows := make([]ProfileRow, 0, len(bucket.Nodes))
		for _, v := range bucket.Nodes {
			nbrs, err := g.NeighborIDs(v)
			if err != nil {
				return nil, fmt.Errorf("degree: profile of %d: %w", v, err)
			}
			row := ProfileRow{Node: v, Degree: len(nbrs), Counts: make([]int, b.Len())}
			for _, x := range nbrs {
				j, ok := b.IndexOf(x)
				if !ok {
					return nil, fmt.Errorf("%w: neighbor %d of %d is not partitioned", ErrDegreeNotCovered, x, v)
				}
				row.Counts[j]++
			}
			rows = append(rows, row)
		}
		out[i] = rows
	}

	return out, nil
}

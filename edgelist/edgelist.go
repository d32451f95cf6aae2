// SPDX-License-Identifier: MIT

// Package edgelist reads and writes signed graphs as plain-text edge lists.
//
// Each data line is "u v sign" separated by spaces or tabs, with integer
// vertex IDs and sign ±1. Blank lines and lines starting with '#' or '%'
// are ignored, as are columns after the third. Self-loops are skipped and
// counted; a repeated edge overwrites the sign read earlier.
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/signedge/core"
)

var (
	// ErrBadLine indicates a data line with fewer than three columns or a
	// non-integer field.
	ErrBadLine = errors.New("edgelist: malformed line")

	// ErrBadSign indicates a sign other than 1 or -1.
	ErrBadSign = errors.New("edgelist: sign must be 1 or -1")
)

const maxLineBytes = 1 << 20

// Stats summarizes a Read.
type Stats struct {
	Lines      int // lines read, including comments
	Edges      int // edges in the resulting graph
	SelfLoops  int // skipped u == v lines
	Duplicates int // lines that overwrote an existing edge
}

// Load reads the edge list at path.
func Load(path string) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, errors.Wrap(err, "edgelist: open")
	}
	defer f.Close()

	g, st, err := Read(f)
	if err != nil {
		return nil, st, errors.Wrapf(err, "edgelist: %s", path)
	}
	return g, st, nil
}

// Read parses an edge list from r.
//
// Errors: ErrBadLine, ErrBadSign (both annotated with the line number),
// I/O errors from r.
func Read(r io.Reader) (*core.Graph, Stats, error) {
	g := core.NewGraph()
	var st Stats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		st.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == '%' {
			continue
		}

		u, v, s, err := parseLine(line)
		if err != nil {
			return nil, st, errors.Wrapf(err, "line %d: %q", st.Lines, line)
		}
		if u == v {
			g.AddVertex(u)
			st.SelfLoops++
			continue
		}
		if g.HasEdge(u, v) {
			st.Duplicates++
			if err = g.SetSign(u, v, s); err != nil {
				return nil, st, errors.Wrapf(err, "line %d", st.Lines)
			}
			continue
		}
		if err = g.AddEdge(u, v, s); err != nil {
			return nil, st, errors.Wrapf(err, "line %d", st.Lines)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, st, errors.Wrap(err, "edgelist: read")
	}
	st.Edges = g.EdgeCount()

	return g, st, nil
}

func parseLine(line string) (int64, int64, core.Sign, error) {
	f := strings.Fields(line)
	if len(f) < 3 {
		return 0, 0, 0, errors.Wrapf(ErrBadLine, "want 3 columns, got %d", len(f))
	}
	u, err := strconv.ParseInt(f[0], 10, 64)
	if err != nil {
		return 0, 0, 0, errors.Wrapf(ErrBadLine, "vertex %q", f[0])
	}
	v, err := strconv.ParseInt(f[1], 10, 64)
	if err != nil {
		return 0, 0, 0, errors.Wrapf(ErrBadLine, "vertex %q", f[1])
	}
	n, err := strconv.Atoi(f[2])
	if err != nil {
		return 0, 0, 0, errors.Wrapf(ErrBadLine, "sign %q", f[2])
	}
	s := core.Sign(n)
	if n < -1 || n > 1 || !s.Valid() {
		return 0, 0, 0, errors.Wrapf(ErrBadSign, "got %d", n)
	}

	return u, v, s, nil
}

// Write emits g as an edge list, one "u\tv\tsign" line per edge in
// core.Graph.Edges order, preceded by a comment header.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "# signed edge list: %d vertices, %d edges\n", g.VertexCount(), g.EdgeCount()); err != nil {
		return errors.Wrap(err, "edgelist: write")
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d\t%d\t%d\n", e.From, e.To, e.Sign.Int()); err != nil {
			return errors.Wrap(err, "edgelist: write")
		}
	}
	return errors.Wrap(bw.Flush(), "edgelist: flush")
}

// Save writes g to path, creating or truncating the file.
func Save(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "edgelist: create")
	}
	if err = Write(f, g); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "edgelist: close")
}

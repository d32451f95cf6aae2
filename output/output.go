// SPDX-License-Identifier: MIT

// Package output writes feature records and degree profiles as
// tab-separated files, one file per destination.
//
// Record lines are "a\tb\tp1\tp2\tp3\tp4\tp5" with no header; floats use
// the shortest representation that round-trips.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/signedge/degree"
	"github.com/katalvlaran/signedge/features"
	"github.com/katalvlaran/signedge/sampler"
)

// Writer names and writes destination files below a directory.
type Writer struct {
	dir    string
	ranges degree.Ranges
	inter  bool
}

// NewWriter creates dir if needed. inter selects the inter-bucket naming
// scheme, which is keyed by bucket pair instead of degree range.
func NewWriter(dir string, rs degree.Ranges, inter bool) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "output: create %s", dir)
	}
	return &Writer{dir: dir, ranges: rs, inter: inter}, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// FileName returns the base file name of d:
//
//	intra: group_<lo>-<hi>_<pos|neg>.tsv  (degree range of the bucket)
//	inter: inter_<i>-<j>_<pos|neg>.tsv    (canonical bucket pair)
func (w *Writer) FileName(d sampler.Destination) string {
	if w.inter {
		return fmt.Sprintf("inter_%d-%d_%s.tsv", d.Lo, d.Hi, d.Sign)
	}
	label := strconv.Itoa(d.Group)
	if d.Group >= 0 && d.Group < len(w.ranges) {
		label = w.ranges[d.Group].String()
	}
	return fmt.Sprintf("group_%s_%s.tsv", label, d.Sign)
}

// WriteRouter writes every destination of r and returns the paths written.
func (w *Writer) WriteRouter(r *sampler.Router) ([]string, error) {
	var paths []string
	err := r.Each(func(d sampler.Destination, recs []features.Record) error {
		p := filepath.Join(w.dir, w.FileName(d))
		if err := writeFile(p, func(bw io.Writer) error { return WriteRecords(bw, recs) }); err != nil {
			return err
		}
		paths = append(paths, p)
		return nil
	})
	return paths, err
}

// WriteRecords writes one line per record.
func WriteRecords(w io.Writer, recs []features.Record) error {
	buf := make([]byte, 0, 128)
	for _, rec := range recs {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, rec.Candidate.A, 10)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, rec.Candidate.B, 10)
		for _, f := range rec.Features {
			buf = append(buf, '\t')
			buf = strconv.AppendFloat(buf, f, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return errors.Wrap(err, "output: write record")
		}
	}
	return nil
}

// WriteProfiles writes profile_<lo>-<hi>.tsv for every bucket.
func (w *Writer) WriteProfiles(prof [][]degree.ProfileRow) ([]string, error) {
	paths := make([]string, 0, len(prof))
	for i, rows := range prof {
		label := strconv.Itoa(i)
		if i < len(w.ranges) {
			label = w.ranges[i].String()
		}
		p := filepath.Join(w.dir, "profile_"+label+".tsv")
		if err := writeFile(p, func(bw io.Writer) error { return WriteProfile(bw, rows) }); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// WriteProfile writes "node\tdegree\tc0\t...\tck-1" lines.
func WriteProfile(w io.Writer, rows []degree.ProfileRow) error {
	buf := make([]byte, 0, 64)
	for _, row := range rows {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, row.Node, 10)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(row.Degree), 10)
		for _, c := range row.Counts {
			buf = append(buf, '\t')
			buf = strconv.AppendInt(buf, int64(c), 10)
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return errors.Wrap(err, "output: write profile")
		}
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "output: create")
	}
	bw := bufio.NewWriter(f)
	if err = fn(bw); err != nil {
		f.Close()
		return errors.Wrapf(err, "output: %s", path)
	}
	if err = bw.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "output: flush %s", path)
	}
	return errors.Wrapf(f.Close(), "output: close %s", path)
}

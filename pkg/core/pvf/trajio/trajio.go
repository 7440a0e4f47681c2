// Package trajio reads and writes trajectory files: UTF-8 text, one point
// per line, two whitespace-separated decimal numbers for x and y. It is the
// I/O collaborator spec.md names but leaves external to the core engine,
// ported from original_source/pvf_fun.py's read_traj into an idiomatic
// bufio.Scanner-based reader instead of read_traj's character-by-character
// accumulation.
package trajio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/itohio/pvf/pkg/core/pvf"
)

// ReadTrajectory parses whitespace-delimited "x y" lines from r into a
// trajectory. A blank trailing line is rejected, matching the trajectory
// file format contract.
func ReadTrajectory(r io.Reader) ([]pvf.Point, error) {
	scanner := bufio.NewScanner(r)

	var pts []pvf.Point
	lineNo := 0
	var lastBlank bool

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			lastBlank = true
			continue
		}
		lastBlank = false

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("trajio: line %d: expected 2 fields, got %d", lineNo, len(fields))
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("trajio: line %d: invalid x value %q: %w", lineNo, fields[0], err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("trajio: line %d: invalid y value %q: %w", lineNo, fields[1], err)
		}

		pts = append(pts, pvf.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("trajio: scan: %w", err)
	}
	if lastBlank {
		return nil, fmt.Errorf("trajio: trailing blank line is not permitted")
	}

	return pts, nil
}

// WriteTrajectory writes one "%g %g" line per point.
func WriteTrajectory(w io.Writer, pts []pvf.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		if _, err := fmt.Fprintf(bw, "%g %g\n", p.X, p.Y); err != nil {
			return fmt.Errorf("trajio: write: %w", err)
		}
	}
	return bw.Flush()
}

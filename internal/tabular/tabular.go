// SPDX-License-Identifier: MIT

// Package tabular reads and writes flow tables and OD matrices as CSV and
// renders them for humans. It is the I/O edge used by the CLI; the library
// packages never touch files.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmigest/lump"
	"github.com/katalvlaran/lvmigest/matrix"
)

// ErrMalformed indicates CSV input that cannot be turned into a table or matrix.
var ErrMalformed = errors.New("tabular: malformed input")

// ReadFlows reads a tidy CSV with a header row into a flow table. The header
// must name the origin, destination and flow columns of f and every groupBy
// column; other columns are ignored.
func ReadFlows(r io.Reader, f lump.Fields, groupBy ...string) (*lump.Table, error) {
	recs, err := readAll(r)
	if err != nil {
		return nil, err
	}
	header := recs[0]
	rows := make([]map[string]string, 0, len(recs)-1)
	for _, rec := range recs[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			row[name] = strings.TrimSpace(rec[i])
		}
		rows = append(rows, row)
	}

	t, err := lump.FromMaps(rows, f, groupBy...)
	if err != nil {
		return nil, fmt.Errorf("ReadFlows: %v: %w", err, ErrMalformed)
	}

	return t, nil
}

// ReadMatrix reads an origin×destination matrix: the header holds an
// unused corner cell followed by destination labels, each further row an
// origin label followed by its flows.
func ReadMatrix(r io.Reader) (*matrix.Labeled, error) {
	recs, err := readAll(r)
	if err != nil {
		return nil, err
	}
	cols := trimAll(recs[0][1:])
	if len(cols) == 0 || len(recs) < 2 {
		return nil, fmt.Errorf("ReadMatrix: empty matrix: %w", ErrMalformed)
	}

	rows := make([]string, 0, len(recs)-1)
	vals := make([][]float64, 0, len(recs)-1)
	for n, rec := range recs[1:] {
		rows = append(rows, strings.TrimSpace(rec[0]))
		line := make([]float64, len(cols))
		for j, raw := range rec[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, fmt.Errorf("ReadMatrix: line %d column %q: %v: %w", n+2, cols[j], err, ErrMalformed)
			}
			line[j] = v
		}
		vals = append(vals, line)
	}

	d, err := matrix.NewDenseFromRows(vals)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %v: %w", err, ErrMalformed)
	}
	m, err := matrix.NewLabeled(d, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %v: %w", err, ErrMalformed)
	}

	return m, nil
}

// WriteTable writes t as a tidy CSV with columns t.Columns().
func WriteTable(w io.Writer, t *lump.Table) error {
	cw := csv.NewWriter(w)
	cols := t.Columns()
	if err := cw.Write(cols); err != nil {
		return err
	}
	line := make([]string, len(cols))
	for _, row := range lump.ToMaps(t) {
		for i, c := range cols {
			line[i] = row[c]
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteMatrix writes m in the layout accepted by ReadMatrix. corner labels
// the top-left cell.
func WriteMatrix(w io.Writer, m *matrix.Labeled, corner string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{corner}, m.ColLabels()...)); err != nil {
		return err
	}
	d := m.Dense()
	for i, o := range m.RowLabels() {
		vals, err := d.RowValues(i)
		if err != nil {
			return err
		}
		line := make([]string, 0, len(vals)+1)
		line = append(line, o)
		for _, v := range vals {
			line = append(line, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// readAll returns the header and data rows; csv enforces equal field counts.
func readAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %v: %w", err, ErrMalformed)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("read csv: no header: %w", ErrMalformed)
	}
	recs[0] = trimAll(recs[0])

	return recs, nil
}

func trimAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}

	return out
}

// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMalformed indicates an unreadable CSV, a wrong header or an unparsable field.
	ErrMalformed = errors.New("dataset: malformed input")

	// ErrInconsistent indicates a row violating the table invariants.
	ErrInconsistent = errors.New("dataset: inconsistent row")
)

// Sex of the migrant population in a row.
type Sex string

// Recognized sexes.
const (
	Male   Sex = "male"
	Female Sex = "female"
)

// Header is the expected CSV header, in order.
var Header = []string{"zone", "state", "sex", "in_mig", "out_mig", "net_mig"}

// Row is one zone/state/sex entry of the reference table.
type Row struct {
	Zone  string
	State string
	Sex   Sex
	In    float64
	Out   float64
	Net   float64
}

// netTol absorbs rounding in published net figures.
const netTol = 1e-6

// Validate checks labels, sex, non-negative finite in/out and net = in − out.
func (r Row) Validate() error {
	if r.Zone == "" || r.State == "" {
		return fmt.Errorf("empty zone or state: %w", ErrInconsistent)
	}
	if r.Sex != Male && r.Sex != Female {
		return fmt.Errorf("%s/%s: sex %q: %w", r.Zone, r.State, r.Sex, ErrInconsistent)
	}
	for _, v := range [...]float64{r.In, r.Out, r.Net} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s/%s/%s: non-finite count: %w", r.Zone, r.State, r.Sex, ErrInconsistent)
		}
	}
	if r.In < 0 || r.Out < 0 {
		return fmt.Errorf("%s/%s/%s: negative in/out: %w", r.Zone, r.State, r.Sex, ErrInconsistent)
	}
	if math.Abs(r.In-r.Out-r.Net) > netTol {
		return fmt.Errorf("%s/%s/%s: net %g != %g-%g: %w", r.Zone, r.State, r.Sex, r.Net, r.In, r.Out, ErrInconsistent)
	}

	return nil
}

// Read parses the reference table from CSV with Header as its first line,
// validating every row.
//
// Errors:
//   - ErrMalformed for CSV syntax errors, a wrong header or bad numbers.
//   - ErrInconsistent from Row.Validate.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: header: %v: %w", err, ErrMalformed)
	}
	for i, h := range Header {
		if strings.ToLower(strings.TrimSpace(head[i])) != h {
			return nil, fmt.Errorf("dataset: header column %d is %q, want %q: %w", i, head[i], h, ErrMalformed)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %v: %w", line, err, ErrMalformed)
		}
		row, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		if err = row.Validate(); err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRow(rec []string) (Row, error) {
	nums := make([]float64, 3)
	for i := range nums {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[3+i]), 64)
		if err != nil {
			return Row{}, fmt.Errorf("%s=%q: %w", Header[3+i], rec[3+i], ErrMalformed)
		}
		nums[i] = v
	}

	return Row{
		Zone:  strings.TrimSpace(rec[0]),
		State: strings.TrimSpace(rec[1]),
		Sex:   Sex(strings.ToLower(strings.TrimSpace(rec[2]))),
		In:    nums[0],
		Out:   nums[1],
		Net:   nums[2],
	}, nil
}

// Summary is an in/out/net roll-up for one key.
type Summary struct {
	Key string
	In  float64
	Out float64
	Net float64
}

// ByZone sums rows per zone in first-appearance order.
func ByZone(rows []Row) []Summary {
	return rollup(rows, func(r Row) string { return r.Zone })
}

// BySex sums rows per sex in first-appearance order.
func BySex(rows []Row) []Summary {
	return rollup(rows, func(r Row) string { return string(r.Sex) })
}

func rollup(rows []Row, key func(Row) string) []Summary {
	var out []Summary
	pos := make(map[string]int)
	for _, r := range rows {
		k := key(r)
		i, ok := pos[k]
		if !ok {
			i = len(out)
			pos[k] = i
			out = append(out, Summary{Key: k})
		}
		out[i].In += r.In
		out[i].Out += r.Out
		out[i].Net += r.Net
	}

	return out
}

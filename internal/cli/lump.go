// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/katalvlaran/lvmigest/internal/logger"
	"github.com/katalvlaran/lvmigest/internal/tabular"
	"github.com/katalvlaran/lvmigest/lump"
)

func lumpCmd(st *state) *cobra.Command {
	var (
		threshold  float64
		targets    []string
		other      string
		complete   bool
		fill       float64
		groupBy    []string
		inPath     string
		asMatrix   bool
		pretty     bool
		sparseOnly bool
	)

	c := &cobra.Command{
		Use:   "lump",
		Short: "Lump small regions or flows of an OD table into an other category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lc := st.cfg.Lump
			flags := cmd.Flags()
			if flags.Changed("threshold") {
				lc.Threshold = threshold
			}
			if flags.Changed("targets") {
				lc.Targets = targets
			}
			if flags.Changed("other") {
				lc.OtherLabel = other
			}
			if flags.Changed("complete") {
				lc.Complete = complete
			}
			if flags.Changed("fill") {
				lc.FillValue = fill
			}
			if flags.Changed("group-by") {
				lc.GroupBy = groupBy
			}

			in, err := openInput(cmd, inPath)
			if err != nil {
				return err
			}
			defer in.Close()

			t, err := readLumpInput(in, lc.Fields(), lc.GroupBy, asMatrix)
			if err != nil {
				return err
			}

			res, err := lump.Lump(t, lc.Threshold,
				lump.WithTargets(lc.Targets...),
				lump.WithOtherLabel(lc.OtherLabel),
				lump.WithComplete(lc.Complete),
				lump.WithFillValue(lc.FillValue),
				lump.WithReturnDense(!sparseOnly),
			)
			if err != nil {
				return err
			}
			logger.L().Debug("lump.done",
				"in_records", t.Len(),
				"out_records", res.Table().Len(),
				"dense", res.HasDense(),
			)

			return writeLumpResult(cmd.OutOrStdout(), res, pretty)
		},
	}

	c.Flags().Float64Var(&threshold, "threshold", 0, "lump entries strictly below this value")
	c.Flags().StringSliceVar(&targets, "targets", nil, "dimensions to threshold: flow|bilat, in|imm, out|emi")
	c.Flags().StringVar(&other, "other", lump.DefaultOtherLabel, "label of the lumped category")
	c.Flags().BoolVar(&complete, "complete", false, "emit every origin x destination combination")
	c.Flags().Float64Var(&fill, "fill", 0, "value of cells added by --complete")
	c.Flags().StringSliceVar(&groupBy, "group-by", nil, "columns that partition the table")
	c.Flags().StringVar(&inPath, "in", "", "input CSV (default stdin)")
	c.Flags().BoolVar(&asMatrix, "matrix", false, "input is an origin x destination matrix CSV")
	c.Flags().BoolVar(&pretty, "pretty", false, "render aligned columns with grouped numbers")
	c.Flags().BoolVar(&sparseOnly, "records", false, "always write records, even for completed matrix input")
	return c
}

func readLumpInput(r io.Reader, f lump.Fields, groupBy []string, asMatrix bool) (*lump.Table, error) {
	if !asMatrix {
		return tabular.ReadFlows(r, f, groupBy...)
	}
	m, err := tabular.ReadMatrix(r)
	if err != nil {
		return nil, err
	}
	t, err := lump.FromMatrix(m)
	if err != nil {
		return nil, err
	}
	t.Fields = f

	return t, nil
}

func writeLumpResult(w io.Writer, res *lump.Result, pretty bool) error {
	p := tabular.Printer(language.English)
	if !res.HasDense() {
		if pretty {
			return tabular.PrettyTable(w, res.Table(), p)
		}
		return tabular.WriteTable(w, res.Table())
	}

	ms, err := res.Matrices()
	if err != nil {
		return err
	}
	for i, gm := range ms {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if pretty {
			err = tabular.PrettyMatrix(w, gm.Matrix, p)
		} else {
			err = tabular.WriteMatrix(w, gm.Matrix, strings.Join(gm.Keys, "/"))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

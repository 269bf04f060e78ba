// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmigest/internal/logger"
	"github.com/katalvlaran/lvmigest/schedule"
)

func scheduleCmd(st *state) *cobra.Command {
	var (
		from, to, step float64
		paramsPath     string
		unscaled       bool
	)

	c := &cobra.Command{
		Use:   "schedule",
		Short: "Evaluate a Rogers-Castro age schedule (CSV age,value)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc := st.cfg.Schedule
			flags := cmd.Flags()
			if flags.Changed("from") {
				sc.From = from
			}
			if flags.Changed("to") {
				sc.To = to
			}
			if flags.Changed("step") {
				sc.Step = step
			}
			if flags.Changed("unscaled") {
				sc.Unscaled = unscaled
			}
			if paramsPath != "" {
				p, err := readParams(paramsPath)
				if err != nil {
					return err
				}
				sc.Params = p
			}

			ages, err := schedule.Ages(sc.From, sc.To, sc.Step)
			if err != nil {
				return err
			}
			vals, err := schedule.Evaluate(ages, sc.Params, schedule.WithScaled(!sc.Unscaled))
			if err != nil {
				return err
			}
			logger.L().Debug("schedule.evaluated", "ages", len(ages), "scaled", !sc.Unscaled)

			w := csv.NewWriter(cmd.OutOrStdout())
			if err := w.Write([]string{"age", "value"}); err != nil {
				return err
			}
			for i, x := range ages {
				if err := w.Write([]string{
					strconv.FormatFloat(x, 'g', -1, 64),
					strconv.FormatFloat(vals[i], 'g', -1, 64),
				}); err != nil {
					return err
				}
			}
			w.Flush()
			return w.Error()
		},
	}

	c.Flags().Float64Var(&from, "from", 0, "first age")
	c.Flags().Float64Var(&to, "to", 100, "last age (inclusive)")
	c.Flags().Float64Var(&step, "step", 1, "age step, e.g. 1 or 5")
	c.Flags().StringVar(&paramsPath, "params", "", "YAML file with a1, alpha1, a2, alpha2, mu2, lambda2, c")
	c.Flags().BoolVar(&unscaled, "unscaled", false, "print raw intensities instead of a schedule summing to 1")
	return c
}

// readParams loads a bare parameter map from a YAML file.
func readParams(path string) (schedule.Params, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p schedule.Params
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("params %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("params %s: %w", path, err)
	}

	return p, nil
}

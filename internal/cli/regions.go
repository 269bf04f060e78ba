// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/katalvlaran/lvmigest/dataset"
	"github.com/katalvlaran/lvmigest/internal/logger"
	"github.com/katalvlaran/lvmigest/internal/tabular"
)

func regionsCmd() *cobra.Command {
	var (
		inPath string
		by     string
	)

	c := &cobra.Command{
		Use:   "regions",
		Short: "Validate and summarise a regional migration table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rollup func([]dataset.Row) []dataset.Summary
			switch by {
			case "zone":
				rollup = dataset.ByZone
			case "sex":
				rollup = dataset.BySex
			default:
				return fmt.Errorf("--by %q: want zone or sex", by)
			}

			in, err := openInput(cmd, inPath)
			if err != nil {
				return err
			}
			defer in.Close()

			rows, err := dataset.Read(in)
			if err != nil {
				return err
			}
			logger.L().Debug("regions.read", "rows", len(rows), "by", by)

			p := tabular.Printer(language.English)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			p.Fprintf(tw, "%s\tin\tout\tnet\t\n", by)
			for _, s := range rollup(rows) {
				p.Fprintf(tw, "%s\t%.0f\t%.0f\t%.0f\t\n", s.Key, s.In, s.Out, s.Net)
			}
			p.Fprintf(tw, "rows\t%d\t\t\t\n", len(rows))
			return tw.Flush()
		},
	}

	c.Flags().StringVar(&inPath, "in", "", "dataset CSV (default stdin)")
	c.Flags().StringVar(&by, "by", "zone", "summary key: zone or sex")
	return c
}

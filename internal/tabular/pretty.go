// SPDX-License-Identifier: MIT

package tabular

import (
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/lvmigest/lump"
	"github.com/katalvlaran/lvmigest/matrix"
)

// Printer formats numbers with digit grouping for tag (e.g. 12,345.5 in English).
func Printer(tag language.Tag) *message.Printer { return message.NewPrinter(tag) }

func newTab(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
}

// PrettyTable renders t as aligned columns with grouped numbers.
func PrettyTable(w io.Writer, t *lump.Table, p *message.Printer) error {
	tw := newTab(w)
	p.Fprintf(tw, "%s\t\n", strings.Join(t.Columns(), "\t"))
	for _, r := range t.Records {
		for _, k := range r.Keys {
			p.Fprintf(tw, "%s\t", k)
		}
		p.Fprintf(tw, "%s\t%s\t%.1f\t\n", r.Orig, r.Dest, r.Flow)
	}

	return tw.Flush()
}

// PrettyMatrix renders m with origins down and destinations across.
func PrettyMatrix(w io.Writer, m *matrix.Labeled, p *message.Printer) error {
	tw := newTab(w)
	p.Fprintf(tw, "\t%s\t\n", strings.Join(m.ColLabels(), "\t"))
	d := m.Dense()
	for i, o := range m.RowLabels() {
		vals, err := d.RowValues(i)
		if err != nil {
			return err
		}
		p.Fprintf(tw, "%s\t", o)
		for _, v := range vals {
			p.Fprintf(tw, "%.1f\t", v)
		}
		p.Fprintf(tw, "\n")
	}

	return tw.Flush()
}

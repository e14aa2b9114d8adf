package report

import (
	"fmt"
	"io"

	"github.com/manics/kddstats/internal/buffer"
	"github.com/olekukonko/tablewriter"
)

// LabelSummary pairs a label with the statistics collected over its records.
type LabelSummary struct {
	Label string
	Stats *buffer.StatsCollector
}

// LabelTable renders one row per label with the statistics of the given
// feature column, in the fixed order [Mean, Std Dev, Min, Max, Count].
func LabelTable(w io.Writer, column string, col int, rows []LabelSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{column, "Mean", "Std Dev", "Min", "Max", "Count"})
	table.SetAutoFormatHeaders(false)

	for _, row := range rows {
		s := row.Stats.At(col)
		if s.Count() == 0 {
			table.Append([]string{row.Label, "-", "-", "-", "-", "0"})
			continue
		}
		table.Append([]string{
			row.Label,
			fmt.Sprintf("%.4f", s.Mean()),
			fmt.Sprintf("%.4f", s.StDev()),
			fmt.Sprintf("%.4f", s.Min()),
			fmt.Sprintf("%.4f", s.Max()),
			fmt.Sprintf("%d", s.Count()),
		})
	}

	table.Render()
}

// SummaryBlock renders the full per-column statistics of a collector.
func SummaryBlock(w io.Writer, names []string, collector *buffer.StatsCollector) {
	if collector.Size() == 0 {
		fmt.Fprintln(w, "no matching records")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Column", "Mean", "Std Dev", "Min", "Max", "Count", "Non-Zero"})
	table.SetAutoFormatHeaders(false)

	for i, name := range names {
		s := collector.At(i)
		table.Append([]string{
			name,
			fmt.Sprintf("%.4f", s.Mean()),
			fmt.Sprintf("%.4f", s.StDev()),
			fmt.Sprintf("%.4f", s.Min()),
			fmt.Sprintf("%.4f", s.Max()),
			fmt.Sprintf("%d", s.Count()),
			fmt.Sprintf("%d", s.NonZero()),
		})
	}

	table.Render()
}

// CorrTable renders the boolean high-correlation matrix over the given
// variable subset. Flagged pairs are marked with an 'x'.
func CorrTable(w io.Writer, names []string, flags [][]bool) {
	if len(names) == 0 {
		fmt.Fprintln(w, "no highly correlated variables")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{""}, names...))
	table.SetAutoFormatHeaders(false)

	for i, name := range names {
		row := make([]string, 0, len(names)+1)
		row = append(row, name)
		for j := range names {
			mark := ""
			if flags[i][j] {
				mark = "x"
			}
			row = append(row, mark)
		}
		table.Append(row)
	}

	table.Render()
}

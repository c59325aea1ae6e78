package utils

import (
	"fmt"
	"io"
	"time"

	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawRunSummary(w io.Writer, report *model.Report) {
	tw := table.Table{}
	tw.AppendHeader(table.Row{"#", "Step", "Calls", "Duration", "Result"})

	for _, step := range report.Steps {
		result := text.FgHiGreen.Sprint("ok")
		if step.Err != nil {
			result = text.FgHiRed.Sprint("failed")
		}
		tw.AppendRow(table.Row{
			step.Index,
			step.Name,
			step.Invocations,
			step.Duration.Round(time.Millisecond).String(),
			result,
		})
	}

	tw.AppendFooter(table.Row{"", "Total", report.Invocations, report.Duration.Round(time.Millisecond).String(), ""})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	fmt.Fprintln(w, tw.Render())

	if report.FunctionURI != "" {
		fmt.Fprintf(w, " Scheduled URI: %s\n", text.FgBlue.Sprint(report.FunctionURI))
	}
	if report.TimeZone != "" {
		fmt.Fprintf(w, " Time zone:     %s\n", text.FgBlue.Sprint(report.TimeZone))
	}
}

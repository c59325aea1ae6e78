package utils

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawStepDurationChart draws one bar per step; the slowest steps get the hottest colors.
func DrawStepDurationChart(w io.Writer, steps []model.StepResult) {
	if len(steps) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", text.FgHiWhite.Sprint(" Step durations (seconds)"))

	bc := barchart.New(12*len(steps), 16)
	indexedColors := assignRankedColors(steps)

	for idx, step := range steps {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("#%d", step.Index),
			Values: []barchart.BarValue{
				{
					Name:  step.Name,
					Value: step.Duration.Seconds(),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		})
	}

	bc.Draw()
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, defaultStyle.Render(bc.View())))
}

func assignRankedColors(steps []model.StepResult) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type durationWithIndex struct {
		index int
		value time.Duration
	}

	sorted := make([]durationWithIndex, len(steps))
	for i, step := range steps {
		sorted[i] = durationWithIndex{index: i, value: step.Duration}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].value > sorted[j].value
	})

	resultColors := make([]string, len(steps))
	for rank, entry := range sorted {
		if rank < len(palette) {
			resultColors[entry.index] = palette[rank]
		} else {
			resultColors[entry.index] = palette[len(palette)-1]
		}
	}

	return resultColors
}

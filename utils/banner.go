package utils

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

var bannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#4285F4")).
	Bold(true)

func DrawBanner(w io.Writer, projectName string) {
	fig := figure.NewFigure("GCF Provisioner", "", true)
	fmt.Fprintln(w, bannerStyle.Render(fig.String()))
	fmt.Fprintf(w, " Project: %s\n", text.FgBlue.Sprint(projectName))
	fmt.Fprintln(w, text.FgHiBlue.Sprint(" ------------------------------------------------"))
}

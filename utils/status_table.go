package utils

import (
	"fmt"
	"io"

	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawStatusTable(w io.Writer, status *model.ProvisioningStatus) {
	fmt.Fprintf(w, "\n%s\n", text.FgHiWhite.Sprint(" PROVISIONING STATUS"))
	fmt.Fprintf(w, " Project: %s\n", text.FgBlue.Sprint(status.ProjectID))

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Resource", "Name", "State", "Detail"})
	for _, r := range status.Resources {
		tw.AppendRow(table.Row{r.Kind, r.Name, colorState(r.State), r.Detail})
	}
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, WidthMax: 80},
	})

	fmt.Fprintln(w, tw.Render())
}

func colorState(state string) string {
	switch state {
	case "ACTIVE", "ENABLED":
		return text.FgHiGreen.Sprint(state)
	case model.StateNotFound, model.StateError:
		return text.FgHiRed.Sprint(state)
	default:
		return text.FgHiYellow.Sprint(state)
	}
}

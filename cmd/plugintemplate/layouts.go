package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vst3go/plugintemplate/pkg/framework/bus"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Print which input/output layouts the plugin accepts",
	Long: `Print a matrix of main input (rows) against main output (columns)
arrangements, marking the combinations the plugin supports.`,
	Args: cobra.NoArgs,
	RunE: runLayouts,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}

// supportMatrix returns one row per input arrangement, led by its name.
func supportMatrix(supported func(bus.Layout) bool) [][]string {
	rows := make([][]string, 0, len(bus.NamedArrangements))
	for _, in := range bus.NamedArrangements {
		row := []string{in.String()}
		for _, out := range bus.NamedArrangements {
			mark := "-"
			if supported(bus.NewLayout(in, out)) {
				mark = "yes"
			}
			row = append(row, mark)
		}
		rows = append(rows, row)
	}
	return rows
}

func runLayouts(cmd *cobra.Command, _ []string) error {
	p := newProcessor()

	headers := []string{"in \\ out"}
	for _, out := range bus.NamedArrangements {
		headers = append(headers, out.String())
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(supportMatrix(p.IsBusesLayoutSupported)...)

	cmd.Println(t.Render())
	return nil
}

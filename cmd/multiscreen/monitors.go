package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/frudas24/multiscreen/internal/geom"
	"github.com/spf13/cobra"
)

var monitorsJSONOutput bool

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List available monitors",
	Long:  `List every monitor with its bounds and working area, followed by the virtual screen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := openRegistry()
		if err != nil {
			return fmt.Errorf("failed to list monitors: %w", err)
		}
		list := reg.Monitors(nil)

		if monitorsJSONOutput {
			data, err := json.MarshalIndent(list, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		bold := lipgloss.NewStyle().Bold(true)
		cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("#00BCD4"))
		gray := lipgloss.NewStyle().Foreground(lipgloss.Color("#9A9EA0"))

		for _, m := range list {
			mark := ""
			if m.Primary && !m.IsVirtual() {
				mark = cyan.Render(" (primary)")
			}
			fmt.Printf("%s%s\n", bold.Render(m.Name), mark)
			fmt.Printf("  %s %s\n", gray.Render("bounds:      "), formatRect(m.Bounds))
			fmt.Printf("  %s %s\n", gray.Render("working area:"), formatRect(m.WorkingArea))
		}
		maxX, maxY := reg.Extent()
		fmt.Printf("%s %gx%g\n", bold.Render("Desktop extent:"), maxX, maxY)
		return nil
	},
}

func init() {
	monitorsCmd.Flags().BoolVar(&monitorsJSONOutput, "json", false, "Output monitors as JSON")
}

// formatRect renders a rect as "WxH at (X,Y)".
func formatRect(r geom.Rect) string {
	return fmt.Sprintf("%gx%g at (%g,%g)", r.Width, r.Height, r.X, r.Y)
}

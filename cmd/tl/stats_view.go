package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/taskline/taskline/internal/ui"
	"github.com/taskline/taskline/task"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"statistics"},
	Short:   "Show aggregate task counts",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := openCollection()
		if err != nil {
			return err
		}

		stats := collection.Statistics()
		if statsJSON {
			return encodeJSONToStdout(cmd, stats)
		}
		printf(cmd, "%s\n", renderStats(stats, styles()))
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Emit JSON instead of panels")
	rootCmd.AddCommand(statsCmd)
}

func renderStats(stats task.Stats, st ui.Styles) string {
	statusPanel := statsPanel(st, "By Status", []statsLine{
		{"To-Do", stats.Todo},
		{"In Progress", stats.InProgress},
		{"Completed", stats.Completed},
	})
	priorityPanel := statsPanel(st, "By Priority", []statsLine{
		{"Low", stats.LowPriority},
		{"Medium", stats.MediumPriority},
		{"High", stats.HighPriority},
	})

	var out strings.Builder
	fmt.Fprintf(&out, "%s %d\n", st.Bold.Render("Total tasks:"), stats.Total)
	out.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, statusPanel, " ", priorityPanel))
	if stats.Overdue > 0 {
		fmt.Fprintf(&out, "\n%s", st.Red.Render(fmt.Sprintf("Overdue: %d", stats.Overdue)))
	}
	return out.String()
}

type statsLine struct {
	label string
	count int
}

func statsPanel(st ui.Styles, heading string, lines []statsLine) string {
	width := 0
	for _, line := range lines {
		if len(line.label) > width {
			width = len(line.label)
		}
	}

	var body strings.Builder
	body.WriteString(st.Heading.Render(heading))
	for _, line := range lines {
		fmt.Fprintf(&body, "\n%-*s  %d", width, line.label, line.count)
	}
	return st.Panel.Render(body.String())
}

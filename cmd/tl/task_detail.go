package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskline/taskline/internal/ui"
	"github.com/taskline/taskline/task"
)

const detailTimeFormat = "2006-01-02 15:04:05"
const detailWidth = 72

var detailJSON bool

var detailCmd = &cobra.Command{
	Use:     "detail <id>",
	Aliases: []string{"show", "info"},
	Short:   "Show every field of a single task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		collection, err := openCollection()
		if err != nil {
			return err
		}

		t, ok := collection.Find(id)
		if !ok {
			return fmt.Errorf("task not found: id %d", id)
		}

		if detailJSON {
			return encodeJSONToStdout(cmd, taskJSON(t, time.Now()))
		}
		printf(cmd, "%s", renderTaskDetail(t, styles(), time.Now()))
		return nil
	},
}

func init() {
	detailCmd.Flags().BoolVar(&detailJSON, "json", false, "Emit JSON instead of text")
	rootCmd.AddCommand(detailCmd)
}

func renderTaskDetail(t *task.Task, st ui.Styles, now time.Time) string {
	var out strings.Builder

	name := t.Name()
	if t.IsOverdue(now) {
		name += " " + st.Red.Render("[overdue]")
	}
	fmt.Fprintf(&out, "%s %s\n", st.Bold.Render(fmt.Sprintf("#%d", t.ID())), name)
	fmt.Fprintf(&out, "Status:    %s\n", styleStatus(t.Status(), st))
	fmt.Fprintf(&out, "Priority:  %s\n", stylePriority(t.Priority(), st))
	fmt.Fprintf(&out, "Created:   %s\n", t.CreatedAt().Format(detailTimeFormat))
	if completed := t.CompletedAt(); completed != nil {
		fmt.Fprintf(&out, "Completed: %s\n", completed.Format(detailTimeFormat))
	}
	if due := t.DueDate(); due != nil {
		fmt.Fprintf(&out, "Due:       %s\n", due.Format(detailTimeFormat))
	}
	if tags := t.Tags(); len(tags) > 0 {
		fmt.Fprintf(&out, "Tags:      %s\n", strings.Join(tags, ", "))
	}
	if description := t.Description(); description != "" {
		out.WriteString("\n")
		out.WriteString(ui.RenderMarkdown(description, detailWidth))
		out.WriteString("\n")
	}

	return out.String()
}

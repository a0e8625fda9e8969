package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskline/taskline/internal/dates"
	stringsutil "github.com/taskline/taskline/internal/strings"
	"github.com/taskline/taskline/task"
)

var (
	addStatus      string
	addPriority    string
	addDescription string
	addDue         string
	addTags        []string
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new task",
	Long: `Add a new task. The name is required; everything else has a
default: status To-Do, priority Low, no description, no due date.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := openCollection()
		if err != nil {
			return err
		}

		opts := task.AddOptions{
			Description: addDescription,
			Tags:        addTags,
		}
		if addStatus != "" {
			if opts.Status, err = task.ParseStatus(addStatus); err != nil {
				return err
			}
		}
		if addPriority != "" {
			if opts.Priority, err = task.ParsePriority(addPriority); err != nil {
				return err
			}
		}
		if addDue != "" {
			due, err := dates.Parse(addDue, time.Now())
			if err != nil {
				return err
			}
			opts.DueDate = &due
		}

		t, err := collection.Add(stringsutil.NormalizeWhitespace(args[0]), opts)
		if err != nil {
			return reportSaveError(cmd, err)
		}
		printf(cmd, "Added task %d: %s\n", t.ID(), t.Name())
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id> <name> <status> <priority>",
	Short: "Update a task's name, status, and priority",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		status, err := task.ParseStatus(args[2])
		if err != nil {
			return err
		}
		priority, err := task.ParsePriority(args[3])
		if err != nil {
			return err
		}

		collection, err := openCollection()
		if err != nil {
			return err
		}

		t, err := collection.Update(id, stringsutil.NormalizeWhitespace(args[1]), status, priority)
		if err != nil {
			return reportSaveError(cmd, err)
		}
		printf(cmd, "Updated task %d: %s [%s, %s]\n", t.ID(), t.Name(), t.Status(), t.Priority())
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a task",
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

		if err := collection.Remove(id); err != nil {
			return reportSaveError(cmd, err)
		}
		printf(cmd, "Removed task %d\n", id)
		return nil
	},
}

var removeAllForce bool

var removeAllCmd = &cobra.Command{
	Use:   "remove-all",
	Short: "Remove every task",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := openCollection()
		if err != nil {
			return err
		}

		if !removeAllForce {
			ok, err := confirm(cmd, fmt.Sprintf("Remove all %d tasks?", collection.Len()))
			if err != nil {
				return err
			}
			if !ok {
				printLine(cmd, "Aborted.")
				return nil
			}
		}

		removed, err := collection.RemoveAll()
		if err != nil {
			return reportSaveError(cmd, err)
		}
		printf(cmd, "Removed %d tasks\n", removed)
		return nil
	},
}

var completeCmd = &cobra.Command{
	Use:     "complete <id>",
	Aliases: []string{"done"},
	Short:   "Mark a task as completed",
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

		t, err := collection.Complete(id)
		if err != nil {
			return reportSaveError(cmd, err)
		}
		printf(cmd, "Completed task %d: %s\n", t.ID(), t.Name())
		return nil
	},
}

var tagCmd = &cobra.Command{
	Use:   "tag <id> <tag>",
	Short: "Add a tag to a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		collection, err := openCollection()
		if err != nil {
			return err
		}

		t, added, err := collection.AddTag(id, args[1])
		if err != nil {
			return reportSaveError(cmd, err)
		}
		if !added {
			printf(cmd, "Task %d already has tag %q\n", t.ID(), args[1])
			return nil
		}
		printf(cmd, "Tagged task %d: %s\n", t.ID(), strings.Join(t.Tags(), ", "))
		return nil
	},
}

var untagCmd = &cobra.Command{
	Use:   "untag <id> <tag>",
	Short: "Remove a tag from a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		collection, err := openCollection()
		if err != nil {
			return err
		}

		t, err := collection.RemoveTag(id, args[1])
		if err != nil {
			return reportSaveError(cmd, err)
		}
		printf(cmd, "Untagged task %d: %s\n", t.ID(), formatTags(t))
		return nil
	},
}

var dueCmd = &cobra.Command{
	Use:     "due <id> <date>",
	Aliases: []string{"deadline"},
	Short:   "Set a task's due date",
	Long: `Set a task's due date. The date may be an ISO date (2026-03-01)
or a relative form: today, tomorrow, +3d, "after 3 days".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		due, err := dates.Parse(args[1], time.Now())
		if err != nil {
			return err
		}

		collection, err := openCollection()
		if err != nil {
			return err
		}

		t, err := collection.SetDueDate(id, due)
		if err != nil {
			return reportSaveError(cmd, err)
		}
		printf(cmd, "Task %d due %s\n", t.ID(), dates.Format(due))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "", "Initial status (todo, inprogress, completed)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (low, medium, high)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Longer description, markdown allowed")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (2026-03-01, today, tomorrow, +3d)")
	addCmd.Flags().StringArrayVarP(&addTags, "tag", "t", nil, "Tag to attach (repeatable)")

	removeAllCmd.Flags().BoolVarP(&removeAllForce, "force", "f", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(addCmd, updateCmd, removeCmd, removeAllCmd, completeCmd, tagCmd, untagCmd, dueCmd)
}

func parseID(value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id %q", value)
	}
	return id, nil
}

func formatTags(t *task.Task) string {
	tags := t.Tags()
	if len(tags) == 0 {
		return "(none)"
	}
	return strings.Join(tags, ", ")
}

// reportSaveError distinguishes a persistence failure from an operation
// failure: the mutation stood in memory, only the write failed, and the
// user should know which happened.
func reportSaveError(cmd *cobra.Command, err error) error {
	if task.IsSaveError(err) {
		logger().Warn("task changed in memory but the data file was not updated")
	}
	return err
}

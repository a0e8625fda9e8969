package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskline/taskline/task"
)

var (
	listTag  string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:     "list [filter]",
	Aliases: []string{"ls"},
	Short:   "List tasks, sorted by priority then due date",
	Long: `List tasks. Without a filter every task is shown sorted for
display: priority descending, due date ascending (undated last),
creation time ascending. A filter narrows by status (todo, inprogress,
completed), priority (low, medium, high), or overdue; filtered lists
keep collection order.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"todo", "inprogress", "completed", "low", "medium", "high", "overdue"},
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := openCollection()
		if err != nil {
			return err
		}

		var tasks []*task.Task
		if len(args) == 0 {
			tasks = collection.SortedTasks()
		} else {
			tasks, err = filterTasks(collection, args[0])
			if err != nil {
				return err
			}
		}
		if listTag != "" {
			tasks = keepTagged(tasks, listTag)
		}

		if listJSON {
			return encodeJSONToStdout(cmd, tasksJSON(tasks))
		}
		if len(tasks) == 0 {
			printLine(cmd, "No tasks found.")
			return nil
		}
		printf(cmd, "%s", renderTaskTable(tasks, styles(), time.Now()))
		printf(cmd, "Total: %d\n", len(tasks))
		return nil
	},
}

var (
	searchIndexed bool
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tasks by name, description, tag, status, or priority",
	Long: `Search tasks. The default engine is a case-insensitive
substring scan over name and description. --index switches to the trie
index, which covers every suffix of name, description, tags, and the
status and priority display strings, so mid-string matches succeed
("gres" finds In Progress tasks).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := openCollection()
		if err != nil {
			return err
		}

		var results []*task.Task
		if searchIndexed {
			results = collection.AdvancedSearch(args[0])
		} else {
			results = collection.Search(args[0])
		}

		if searchJSON {
			return encodeJSONToStdout(cmd, tasksJSON(results))
		}
		if len(results) == 0 {
			printf(cmd, "No tasks match %q.\n", args[0])
			return nil
		}
		printf(cmd, "%s", renderTaskTable(results, styles(), time.Now()))
		printf(cmd, "Matched: %d\n", len(results))
		return nil
	},
}

var overdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "List tasks past their due date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := openCollection()
		if err != nil {
			return err
		}

		tasks := collection.Overdue()
		if len(tasks) == 0 {
			printLine(cmd, "Nothing is overdue.")
			return nil
		}
		printf(cmd, "%s", renderTaskTable(tasks, styles(), time.Now()))
		printf(cmd, "Overdue: %d\n", len(tasks))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "Only show tasks carrying this tag")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Emit JSON instead of a table")

	searchCmd.Flags().BoolVar(&searchIndexed, "index", false, "Use the trie index instead of the substring scan")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Emit JSON instead of a table")

	rootCmd.AddCommand(listCmd, searchCmd, overdueCmd)
}

func filterTasks(collection *task.Collection, filter string) ([]*task.Task, error) {
	switch filter {
	case "overdue":
		return collection.Overdue(), nil
	}
	if status, err := task.ParseStatus(filter); err == nil {
		return collection.ByStatus(status), nil
	}
	if priority, err := task.ParsePriority(filter); err == nil {
		return collection.ByPriority(priority), nil
	}
	return nil, fmt.Errorf("unknown filter %q (want a status, a priority, or overdue)", filter)
}

func keepTagged(tasks []*task.Task, tag string) []*task.Task {
	var kept []*task.Task
	for _, t := range tasks {
		if t.HasTag(tag) {
			kept = append(kept, t)
		}
	}
	return kept
}

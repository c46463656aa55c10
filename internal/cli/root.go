package cli

import (
	"fmt"
	"strings"

	"github.com/riordanpawley/todo/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the td command tree over deps.
// deps.Logger may be nil; it is then built from the --verbose flag.
func NewRootCmd(deps *Dependencies, version string) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "td",
		Short: "td - edit the to-do list from the shell",
		Long: `td reads and writes the same task file as the todo console.

Every editing command loads the file, applies one change and saves it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Logger != nil {
				return nil
			}
			level := "warn"
			if verbose {
				level = "debug"
			}
			logger, err := logging.New(deps.Err, logging.Options{Level: level, Format: deps.Config.Log.Format, Prefix: "td"})
			if err != nil {
				return err
			}
			deps.Logger = logger
			return nil
		},
	}
	rootCmd.SetOut(deps.Out)
	rootCmd.SetErr(deps.Err)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVarP(&deps.Config.Storage.Path, "file", "f", deps.Config.Storage.Path, "Task file")

	addCmd := &cobra.Command{
		Use:   "add <description>...",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			priority, _ := cmd.Flags().GetString("priority")
			due, _ := cmd.Flags().GetString("due")
			return AddCommand(deps, strings.Join(args, " "), priority, due)
		},
	}
	addCmd.Flags().StringP("priority", "p", "medium", "Priority: low, medium, high")
	addCmd.Flags().StringP("due", "d", "", "Due date, YYYY-MM-DD")

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts ListOptions
			opts.Status, _ = cmd.Flags().GetString("status")
			opts.Keyword, _ = cmd.Flags().GetString("keyword")
			opts.Sort, _ = cmd.Flags().GetString("sort")
			return ListCommand(deps, opts)
		},
	}
	listCmd.Flags().StringP("status", "s", "", "Only tasks with this status: todo, doing, done")
	listCmd.Flags().StringP("keyword", "k", "", "Only tasks whose description contains this text (case-sensitive)")
	listCmd.Flags().String("sort", "", "Order the output: priority, date")

	rmCmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RemoveCommand(deps, args[0])
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status <id> <todo|doing|done>",
		Short: "Change a task's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return StatusCommand(deps, args[0], args[1])
		},
	}

	sortCmd := &cobra.Command{
		Use:   "sort <priority|date>",
		Short: "Reorder the task file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return SortCommand(deps, args[0])
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show merged configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ConfigCommand(deps)
		},
	}

	rootCmd.AddCommand(addCmd, listCmd, rmCmd, statusCmd, sortCmd, configCmd)
	return rootCmd
}

// Execute runs td with the process arguments and reports any error on deps.Err
func Execute(deps *Dependencies, version string) error {
	if err := NewRootCmd(deps, version).Execute(); err != nil {
		fmt.Fprintln(deps.Err, "Error:", err)
		return err
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"task-tracker/internal/config"
	"task-tracker/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd      *cobra.Command
	services *services.ServiceContainer
	config   *config.Config
	app      *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(container *services.ServiceContainer, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		services: container,
		config:   cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tasks",
		Short: "A command-line personal task tracker",
		Long: `Tasks is a command-line application for tracking personal tasks.

Every task belongs to a user; the acting user is named with --user or the
TASKS_USER environment variable and is created on first use. Commands only
ever see the acting user's own tasks.

EXAMPLES:
  tasks add                                # Create a task (interactive)
  tasks list                               # List your tasks
  tasks list --status in-progress         # Only tasks in progress
  tasks list --sort due                    # Sorted by due date
  tasks update                             # Edit a task field by field
  tasks status                             # Change a task's status (menu)
  tasks complete                           # Mark a task finished
  tasks delete                             # Remove a task
  tasks users                              # List known users

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  TASKS_USER                               Acting user name
  TASKS_DB_DIR                             Database directory (default: ~/.tasks)
  TASKS_DB_FILENAME                        Database filename (default: tasks.db)
  TASKS_DB_QUERY_TIMEOUT                   Query timeout (default: 10s)
  TASKS_DB_WRITE_TIMEOUT                   Write timeout (default: 5s)
  TASKS_VALIDATION_TITLE_MIN               Min title length (default: 1)
  TASKS_VALIDATION_TITLE_MAX               Max title length (default: 255)
  TASKS_APP_TIMEOUT                        Application timeout (default: 60s)
  TASKS_VERBOSE                            Enable verbose output (default: false)
  TASKS_DEBUG                              Enable debug logging

DATE FORMATS:
  Dates are entered as MM/DD/YYYY and shown as "<Month> <day>, <year>".

GETTING HELP:
  tasks [command] --help                   # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("user", "", "Acting user name (overrides TASKS_USER)")

	flags.String("db-dir", "", "Database directory (overrides TASKS_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TASKS_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TASKS_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TASKS_DB_WRITE_TIMEOUT)")

	flags.Int("title-min-length", 0, "Minimum task title length (overrides TASKS_VALIDATION_TITLE_MIN)")
	flags.Int("title-max-length", 0, "Maximum task title length (overrides TASKS_VALIDATION_TITLE_MAX)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides TASKS_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TASKS_VERBOSE)")
}

// getApp lazily builds the shared App bound to the process streams. The App
// caches the resolved acting user across handler calls within one process.
func (r *RootCommand) getApp() *App {
	if r.app == nil {
		r.app = NewApp(r.services, r.config, os.Stdin, os.Stdout)
	}
	return r.app
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new task interactively.

You will be prompted for a title, a description and a due date in the
MM/DD/YYYY format. A malformed date is reported and asked for again. The new
task starts as NOT_STARTED with today's date as its start date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Interactive commands get double the timeout
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			return NewAddCommand(r.getApp()).Execute(ctx, args)
		},
	}

	var listOpts ListOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your tasks",
		Long: `List the acting user's tasks.

Examples:
  tasks list                          # All tasks, oldest first
  tasks list --status not-started     # Only unstarted tasks
  tasks list --status finished        # Only finished tasks
  tasks list --sort start             # Sorted by start date
  tasks list --sort due               # Sorted by due date`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewListCommand(r.getApp()).Execute(ctx, listOpts)
		},
	}
	listCmd.Flags().StringVar(&listOpts.Status, "status", "", "Filter by status: not-started, in-progress, finished")
	listCmd.Flags().StringVar(&listOpts.SortBy, "sort", "", "Sort by field: start, due")

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task field by field",
		Long: `Update one of your tasks interactively.

After choosing a task by id you are asked for each field in turn; leaving an
answer blank keeps the current value. The status menu accepts 1, 2 or 3 and
silently keeps the current status for anything else.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			return NewUpdateCommand(r.getApp()).Execute(ctx, args)
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Change a task's status from a menu",
		Long: `Change the status of one of your tasks from a menu.

Options 1-3 set the status, 4 leaves the task unchanged and 5 exits the
program. Any other input asks again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			return NewStatusCommand(r.getApp()).Execute(ctx, args)
		},
	}

	completeCmd := &cobra.Command{
		Use:   "complete",
		Short: "Mark a task as finished",
		Long:  "Mark one of your tasks as FINISHED after choosing it by id.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			return NewCompleteCommand(r.getApp()).Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long: `Delete one of your tasks after choosing it by id.

This operation cannot be undone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			return NewDeleteCommand(r.getApp()).Execute(ctx, args)
		},
	}

	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "List known users",
		Long:  "List every user known to the tracker, in name order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewUsersCommand(r.getApp()).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		updateCmd,
		statusCmd,
		completeCmd,
		deleteCmd,
		usersCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if user, _ := flags.GetString("user"); user != "" {
		r.config.Application.User = user
	}

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Database.WriteTimeout = writeTimeout
	}

	if titleMinLength, _ := flags.GetInt("title-min-length"); titleMinLength > 0 {
		r.config.Validation.TitleMinLength = titleMinLength
	}
	if titleMaxLength, _ := flags.GetInt("title-max-length"); titleMaxLength > 0 {
		r.config.Validation.TitleMaxLength = titleMaxLength
	}

	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}

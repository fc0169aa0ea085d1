package cli

import (
	"context"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// ListOptions carries the parsed list flags
type ListOptions struct {
	Status string // "", "not-started", "in-progress", "finished"
	SortBy string // "", "start", "due"
}

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command with the given options
func (c *ListCommand) Execute(ctx context.Context, opts ListOptions) error {
	app := c.app

	user, err := app.RequireUser(ctx)
	if err != nil {
		return app.errors.HandleSimple(err)
	}

	tasks, err := c.fetchTasks(ctx, user.ID, opts)
	if err != nil {
		return app.errors.Handle("list tasks", err)
	}

	app.printer.PrintTasks(tasks)
	return nil
}

// fetchTasks selects the service query for the flag combination. Sorting and
// status filtering compose: the filter runs over the sorted slice, so the
// filtered output keeps the sort order.
func (c *ListCommand) fetchTasks(ctx context.Context, ownerID int64, opts ListOptions) ([]*domain.Task, error) {
	taskService := c.app.services.TaskService

	var tasks []*domain.Task
	var err error
	switch opts.SortBy {
	case "":
		tasks, err = taskService.ListTasks(ctx, ownerID)
	case "start":
		tasks, err = taskService.SortTasksByStartDate(ctx, ownerID)
	case "due":
		tasks, err = taskService.SortTasksByDueDate(ctx, ownerID)
	default:
		return nil, errors.NewInvalidInputError("sort", opts.SortBy, "valid values are start, due")
	}
	if err != nil {
		return nil, err
	}

	if opts.Status == "" {
		return tasks, nil
	}

	status, err := parseStatusFlag(opts.Status)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status == status {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}

// parseStatusFlag maps the flag spelling to a status. The wire spellings
// (NOT_STARTED etc.) are accepted too.
func parseStatusFlag(value string) (domain.Status, error) {
	switch value {
	case "not-started":
		return domain.StatusNotStarted, nil
	case "in-progress":
		return domain.StatusInProgress, nil
	case "finished":
		return domain.StatusFinished, nil
	}
	if status, err := domain.ParseStatus(value); err == nil {
		return status, nil
	}
	return "", errors.NewInvalidInputError("status", value, "valid values are not-started, in-progress, finished")
}

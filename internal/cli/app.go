package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/services"
)

// osExit is a variable that can be replaced in tests
var osExit = os.Exit

// App bundles the services with the interaction ports (prompter, printer,
// error handler) and the resolved acting user. Command handlers hold an App
// and never touch os.Stdin/os.Stdout directly.
type App struct {
	services *services.ServiceContainer
	config   *config.Config
	prompter *Prompter
	printer  *TaskPrinter
	errors   *ErrorHandler

	user *domain.User
}

// NewApp creates a CLI application with injected input and output streams
func NewApp(container *services.ServiceContainer, cfg *config.Config, in io.Reader, out io.Writer) *App {
	return &App{
		services: container,
		config:   cfg,
		prompter: NewPrompter(in, out),
		printer:  NewTaskPrinter(out),
		errors:   NewErrorHandler(),
	}
}

// RequireUser returns the acting user, resolving (and creating on first use)
// the configured user name on the first call. Every task operation is scoped
// to this user.
func (a *App) RequireUser(ctx context.Context) (*domain.User, error) {
	if a.user != nil {
		return a.user, nil
	}

	name := strings.TrimSpace(a.config.Application.User)
	if name == "" {
		return nil, errors.NewValidationError("no acting user configured: set --user or TASKS_USER", nil)
	}

	user, err := a.services.UserService.ResolveUser(ctx, name)
	if err != nil {
		return nil, err
	}

	logging.Debugf("acting user resolved: %d (%s)\n", user.ID, user.Name)
	a.user = user
	return a.user, nil
}

// promptForOwnedTask renders the acting user's tasks under the given header,
// reads a task id and authorizes it. The returned task is guaranteed to
// belong to the acting user; "not yours" and "no such task" come back as
// distinct errors.
func (a *App) promptForOwnedTask(ctx context.Context, header string) (*domain.Task, error) {
	user, err := a.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := a.services.TaskService.ListTasks(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	a.printer.Println(header)
	a.printer.PrintTasks(tasks)

	taskID, ok, err := a.prompter.ReadInt("")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewInvalidInputError("task_id", "", "a numeric task id is required")
	}

	return a.services.TaskService.AuthorizeTask(ctx, user.ID, taskID)
}

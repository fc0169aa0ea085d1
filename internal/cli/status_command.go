package cli

import (
	"context"

	"task-tracker/internal/domain"
)

// StatusCommand handles the interactive status menu command
type StatusCommand struct {
	app *App
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{app: app}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	return c.updateStatus(ctx)
}

// updateStatus picks a task, then loops on the five-option menu until the
// user sets a status, exits the operation or exits the program. The loop is
// unbounded: invalid input re-prompts, it never aborts.
func (c *StatusCommand) updateStatus(ctx context.Context) error {
	app := c.app

	task, err := app.promptForOwnedTask(ctx, "Select the task id of the task you want to update:")
	if err != nil {
		return app.errors.HandleSimple(err)
	}

	menu := "Choose new status:\n" +
		"(1) NOT STARTED\n" +
		"(2) IN PROGRESS\n" +
		"(3) COMPLETED\n" +
		"(4) Exit operation\n" +
		"(5) Exit program"

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		choice, ok, err := app.prompter.ReadInt(menu)
		if err != nil {
			return err
		}

		if ok {
			if status, valid := domain.StatusFromChoice(choice); valid {
				if _, err := app.services.TaskService.SetStatus(ctx, task.OwnerID, task.ID, status); err != nil {
					return app.errors.Handle("update status", err)
				}
				return nil
			}
			if choice == 4 {
				return nil
			}
			if choice == 5 {
				app.printer.Println("Thank you for playing!\n")
				osExit(0)
				return nil
			}
		}

		app.printer.Println("Invalid input, please try again\n")
	}
}

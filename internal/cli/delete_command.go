package cli

import (
	"context"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	return c.deleteTask(ctx)
}

// deleteTask removes a chosen task. There is no confirmation beyond entering
// the id.
func (c *DeleteCommand) deleteTask(ctx context.Context) error {
	app := c.app

	task, err := app.promptForOwnedTask(ctx, "Please input the task ID of the task you'd like to remove:")
	if err != nil {
		return app.errors.HandleSimple(err)
	}

	if err := app.services.TaskService.DeleteTask(ctx, task.OwnerID, task.ID); err != nil {
		return app.errors.Handle("delete task", err)
	}

	app.printer.Println("You have successfully deleted the task from your list!")
	return nil
}

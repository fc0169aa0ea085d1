package cli

import (
	"context"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	app *App
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{app: app}
}

// Execute runs the complete command
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	return c.completeTask(ctx)
}

// completeTask marks a chosen task FINISHED
func (c *CompleteCommand) completeTask(ctx context.Context) error {
	app := c.app

	task, err := app.promptForOwnedTask(ctx, "Please choose the task you'd like to mark as completed by ID:")
	if err != nil {
		return app.errors.HandleSimple(err)
	}

	if _, err := app.services.TaskService.CompleteTask(ctx, task.OwnerID, task.ID); err != nil {
		return app.errors.Handle("complete task", err)
	}

	app.printer.Println("Your task has been successfully completed!")
	return nil
}

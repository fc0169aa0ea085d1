package cli

import (
	"context"
	"time"

	"task-tracker/internal/validation"
)

// AddCommand handles the add command
type AddCommand struct {
	app       *App
	validator *validation.Validator
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:       app,
		validator: validation.NewValidator(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	return c.addTask(ctx)
}

// addTask implements the interactive create scenario: prompt for the fields,
// create the task, confirm and re-render the full list.
func (c *AddCommand) addTask(ctx context.Context) error {
	app := c.app

	user, err := app.RequireUser(ctx)
	if err != nil {
		return app.errors.HandleSimple(err)
	}

	title, err := app.prompter.ReadLine("Please provide the title for your new task:")
	if err != nil {
		return err
	}

	description, err := app.prompter.ReadLine("Please provide a description for your task:")
	if err != nil {
		return err
	}

	dueDate, err := c.promptForDueDate(ctx)
	if err != nil {
		return err
	}

	task, err := app.services.TaskService.CreateTask(ctx, user.ID, title, description, dueDate)
	if err != nil {
		return app.errors.Handle("create task", err)
	}

	app.printer.Println("You have successfully created a task!")

	tasks, err := app.services.TaskService.ListTasks(ctx, task.OwnerID)
	if err != nil {
		return app.errors.Handle("list tasks", err)
	}
	app.printer.PrintTasks(tasks)
	return nil
}

// promptForDueDate reads a due date, re-prompting until the input parses.
// A malformed date is recoverable here; everything else aborts the command.
func (c *AddCommand) promptForDueDate(ctx context.Context) (time.Time, error) {
	for {
		if ctx.Err() != nil {
			return time.Time{}, ctx.Err()
		}

		input, err := c.app.prompter.ReadLine("What is the deadline for the task? Write in this format: MM/DD/YYYY")
		if err != nil {
			return time.Time{}, err
		}

		dueDate, err := c.validator.ParseDueDate(input)
		if err == nil {
			return dueDate, nil
		}
		if !c.app.errors.IsRecoverableInputError(err) {
			return time.Time{}, err
		}
		c.app.printer.Println(c.app.errors.HandleSimple(err).Error())
	}
}

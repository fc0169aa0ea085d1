package cli

import (
	"context"
	"strings"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/validation"
)

// UpdateCommand handles the interactive update command
type UpdateCommand struct {
	app       *App
	validator *validation.Validator
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(app *App) *UpdateCommand {
	return &UpdateCommand{
		app:       app,
		validator: validation.NewValidator(),
	}
}

// Execute runs the update command
func (c *UpdateCommand) Execute(ctx context.Context, args []string) error {
	return c.updateTask(ctx)
}

// updateTask walks the fields one by one. A blank answer keeps the current
// value; only answered fields end up in the patch.
func (c *UpdateCommand) updateTask(ctx context.Context) error {
	app := c.app

	task, err := app.promptForOwnedTask(ctx, "Select the task id of the task you want to update:")
	if err != nil {
		return app.errors.HandleSimple(err)
	}

	var patch domain.TaskPatch

	title, err := app.prompter.ReadLine("Choose a new title or leave blank (just press enter) if you want to leave it unchanged:")
	if err != nil {
		return err
	}
	if strings.TrimSpace(title) != "" {
		patch.Title = &title
	}

	description, err := app.prompter.ReadLine("Add a new description or leave blank (just press enter) if you want to leave it unchanged:")
	if err != nil {
		return err
	}
	if strings.TrimSpace(description) != "" {
		patch.Description = &description
	}

	status, changed, err := c.promptForStatus()
	if err != nil {
		return err
	}
	if changed {
		patch.Status = &status
	}

	dueDate, changed, err := c.promptForDueDate(ctx)
	if err != nil {
		return err
	}
	if changed {
		patch.DueDate = &dueDate
	}

	if _, err := app.services.TaskService.UpdateTask(ctx, task.OwnerID, task.ID, patch); err != nil {
		return app.errors.Handle("update task", err)
	}

	app.printer.Println("Task was successfully updated!")
	return nil
}

// promptForStatus shows the 1/2/3 menu. Blank and out-of-range answers both
// mean "leave unchanged"; they are not errors.
func (c *UpdateCommand) promptForStatus() (domain.Status, bool, error) {
	prompt := "What will the new status of your task be? (leave blank -- just press enter -- to leave it unchanged)\n" +
		"(1) NOT STARTED\n" +
		"(2) IN PROGRESS\n" +
		"(3) COMPLETED"

	choice, ok, err := c.app.prompter.ReadInt(prompt)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}

	status, valid := domain.StatusFromChoice(choice)
	if !valid {
		return "", false, nil
	}
	return status, true, nil
}

// promptForDueDate reads a new due date. Blank keeps the current one;
// a malformed date is reported and the prompt repeats.
func (c *UpdateCommand) promptForDueDate(ctx context.Context) (time.Time, bool, error) {
	prompt := "What date should your task be completed by? Please input in this format: MM/DD/YYYY (leave blank -- just press enter -- if you want to leave unchanged)"

	for {
		if ctx.Err() != nil {
			return time.Time{}, false, ctx.Err()
		}

		input, err := c.app.prompter.ReadLine(prompt)
		if err != nil {
			return time.Time{}, false, err
		}
		if strings.TrimSpace(input) == "" {
			return time.Time{}, false, nil
		}

		dueDate, err := c.validator.ParseDueDate(input)
		if err == nil {
			return dueDate, true, nil
		}
		if !c.app.errors.IsRecoverableInputError(err) {
			return time.Time{}, false, err
		}
		c.app.printer.Println(c.app.errors.HandleSimple(err).Error())
	}
}

package cli

import (
	"context"
)

// UsersCommand handles the users command
type UsersCommand struct {
	app *App
}

// NewUsersCommand creates a new users command handler
func NewUsersCommand(app *App) *UsersCommand {
	return &UsersCommand{app: app}
}

// Execute runs the users command
func (c *UsersCommand) Execute(ctx context.Context, args []string) error {
	app := c.app

	users, err := app.services.UserService.ListUsers(ctx)
	if err != nil {
		return app.errors.Handle("list users", err)
	}

	if len(users) == 0 {
		app.printer.Println("No users on record yet.")
		return nil
	}

	app.printer.PrintUsers(users)
	return nil
}

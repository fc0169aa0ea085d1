package cli

import (
	"fmt"
	"io"
	"time"

	"task-tracker/internal/domain"
)

// TaskPrinter renders tasks and users for the terminal
type TaskPrinter struct {
	out io.Writer
}

// NewTaskPrinter creates a printer writing to out
func NewTaskPrinter(out io.Writer) *TaskPrinter {
	return &TaskPrinter{out: out}
}

// FormatDate renders a date as "<Month name> <day>, <year>", e.g.
// "March 15, 2025". Part of the output contract alongside the MM/DD/YYYY
// input format.
func (p *TaskPrinter) FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %d, %d", t.Month(), t.Day(), t.Year())
}

// PrintTasks renders tasks as numbered blocks. The leading number is the
// 1-based position in the listing, not the task ID; the ID follows on the
// next line.
func (p *TaskPrinter) PrintTasks(tasks []*domain.Task) {
	for i, task := range tasks {
		fmt.Fprintf(p.out, "%d)\nTASK ID: %d\n\tTASK TITLE: %s\n", i+1, task.ID, task.Title)
		fmt.Fprintf(p.out, "\t\tTASK STATUS: %s\n", task.Status)
		fmt.Fprintf(p.out, "\t\tTASK DESCRIPTION: %s\n", task.Description)
		fmt.Fprintf(p.out, "\t\tTASK STARTED ON: %s\n\t\tTASK DUE ON: %s\n", p.FormatDate(task.StartDate), p.FormatDate(task.DueDate))
		fmt.Fprint(p.out, "\n")
	}
}

// PrintUsers renders known users as a numbered list
func (p *TaskPrinter) PrintUsers(users []*domain.User) {
	for i, user := range users {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, user.Name)
	}
}

// Println writes a message line to the printer's output
func (p *TaskPrinter) Println(message string) {
	fmt.Fprintln(p.out, message)
}

// Printf writes a formatted message to the printer's output
func (p *TaskPrinter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

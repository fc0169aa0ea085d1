package sqlite

import "time"

// Task represents a task row. Status is stored as its wire string
// (NOT_STARTED, IN_PROGRESS, FINISHED) and dates as RFC3339 text.
type Task struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string
	Status      string
	StartDate   time.Time
	DueDate     time.Time
}

// User represents a user row. Names are unique.
type User struct {
	ID   int64
	Name string
}

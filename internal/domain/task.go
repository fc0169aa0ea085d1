package domain

import "time"

// Task represents a user-owned unit of work in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string
	Status      Status
	StartDate   time.Time
	DueDate     time.Time
}

// NewTask creates a new Task for the given owner. The start date records
// the creation time and the status always begins as NOT_STARTED.
func NewTask(ownerID int64, title, description string, startDate, dueDate time.Time) Task {
	return Task{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      StatusNotStarted,
		StartDate:   startDate,
		DueDate:     dueDate,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Title != "" && t.OwnerID > 0 && t.Status.IsValid()
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// TaskPatch carries a partial update for a task. A nil field leaves the
// corresponding task field unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *Status
	DueDate     *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.DueDate == nil
}

// Apply copies the non-nil patch fields onto the task and returns the result.
func (p TaskPatch) Apply(task Task) Task {
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.DueDate != nil {
		task.DueDate = *p.DueDate
	}
	return task
}

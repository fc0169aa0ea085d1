package services

import (
	"context"
	"time"

	"task-tracker/internal/domain"
)

// TaskService handles task lifecycle, ownership and querying. Every operation
// is scoped to an owner: the caller passes the already-resolved user ID and
// the service enforces that the referenced task belongs to that user.
//
// Operations take parsed parameters and return structured results; prompting
// and rendering belong to the interaction layer.
type TaskService interface {
	// Lifecycle operations
	CreateTask(ctx context.Context, ownerID int64, title, description string, dueDate time.Time) (*domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID int64, patch domain.TaskPatch) (*domain.Task, error)
	SetStatus(ctx context.Context, ownerID, taskID int64, status domain.Status) (*domain.Task, error)
	CompleteTask(ctx context.Context, ownerID, taskID int64) (*domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID int64) error

	// Ownership gate: returns the task when it exists and belongs to the
	// owner; a not-found error when no such task exists; a not-owned error
	// when it exists under another user.
	AuthorizeTask(ctx context.Context, ownerID, taskID int64) (*domain.Task, error)

	// Query operations
	ListTasks(ctx context.Context, ownerID int64) ([]*domain.Task, error)
	ListTasksByStatus(ctx context.Context, ownerID int64, status domain.Status) ([]*domain.Task, error)
	SortTasksByStartDate(ctx context.Context, ownerID int64) ([]*domain.Task, error)
	SortTasksByDueDate(ctx context.Context, ownerID int64) ([]*domain.Task, error)
}

// UserService resolves the acting user for the interaction layer.
type UserService interface {
	// ResolveUser finds a user by name, creating the record on first use.
	ResolveUser(ctx context.Context, name string) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

// ServiceContainer bundles all services for injection into the CLI.
type ServiceContainer struct {
	TaskService TaskService
	UserService UserService
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"task-tracker/internal/errors"
	"task-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasksByOwner(ctx context.Context, ownerID int64) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64, ownerID int64) error
	TaskExists(ctx context.Context, id int64) (bool, error)

	// User operations
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByName(ctx context.Context, name string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a new task and assigns its generated ID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (owner_id, title, description, status, start_date, due_date)
	VALUES (?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.OwnerID, task.Title, task.Description, task.Status,
		FormatTimeForDB(task.StartDate), FormatTimeForDB(task.DueDate))
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, owner_id, title, description, status, start_date, due_date
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasksByOwner retrieves all tasks belonging to the given owner, in insertion order
func (r *SQLiteRepository) ListTasksByOwner(ctx context.Context, ownerID int64) ([]*Task, error) {
	query := `
	SELECT id, owner_id, title, description, status, start_date, due_date
	FROM tasks
	WHERE owner_id = ?
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", ownerID)
}

// UpdateTask updates the mutable fields of an existing task. The statement is
// scoped to the task's owner, so a row belonging to another user is never
// touched regardless of what the caller checked beforehand. The start date is
// immutable and deliberately excluded from the SET list.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET title = ?, description = ?, status = ?, due_date = ?
	WHERE id = ? AND owner_id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		task.Title, task.Description, task.Status, FormatTimeForDB(task.DueDate),
		task.ID, task.OwnerID)
}

// DeleteTask deletes a task by ID, scoped to its owner
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64, ownerID int64) error {
	query := `DELETE FROM tasks WHERE id = ? AND owner_id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id, ownerID)
}

// TaskExists reports whether any task with the given ID exists, for any owner
func (r *SQLiteRepository) TaskExists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM tasks WHERE id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, HandleDatabaseError("check task exists", err)
	}
	return exists, nil
}

// CreateUser inserts a new user and assigns its generated ID
func (r *SQLiteRepository) CreateUser(ctx context.Context, user *User) error {
	query := `INSERT INTO users (name) VALUES (?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, user.Name)
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// GetUser retrieves a user by ID
func (r *SQLiteRepository) GetUser(ctx context.Context, id int64) (*User, error) {
	query := `SELECT id, name FROM users WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanUser, "user", fmt.Sprintf("%d", id), id)
}

// GetUserByName retrieves a user by unique name
func (r *SQLiteRepository) GetUserByName(ctx context.Context, name string) (*User, error) {
	query := `SELECT id, name FROM users WHERE name = ?`
	return QuerySingle(ctx, r.db, query, ScanUser, "user", name, name)
}

// ListUsers retrieves all users ordered by name
func (r *SQLiteRepository) ListUsers(ctx context.Context) ([]*User, error) {
	query := `SELECT id, name FROM users ORDER BY name ASC`
	return QueryMultiple(ctx, r.db, query, ScanUsers, "users")
}

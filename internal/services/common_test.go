package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
	"task-tracker/internal/repository/sqlite"
)

// fixedNow is the creation instant used by tests that pin timeNow.
var fixedNow = time.Date(2025, 3, 5, 9, 30, 0, 0, time.Local)

func setupServices(t *testing.T) (TaskService, UserService) {
	t.Helper()
	repo, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return NewTaskService(repo), NewUserService(repo)
}

func setupOwner(t *testing.T, users UserService, name string) *domain.User {
	t.Helper()
	user, err := users.ResolveUser(context.Background(), name)
	require.NoError(t, err)
	return user
}

func pinTimeNow(t *testing.T, instant time.Time) {
	t.Helper()
	original := timeNow
	timeNow = func() time.Time { return instant }
	t.Cleanup(func() { timeNow = original })
}

func mustCreateTask(t *testing.T, tasks TaskService, ownerID int64, title string, due time.Time) *domain.Task {
	t.Helper()
	task, err := tasks.CreateTask(context.Background(), ownerID, title, "", due)
	require.NoError(t, err)
	return task
}

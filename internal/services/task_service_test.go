package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/validation"
)

func TestTaskService_CreateTask(t *testing.T) {
	tests := []struct {
		name           string
		title          string
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:  "should create task with valid title",
			title: "Write report",
		},
		{
			name:  "should trim surrounding whitespace",
			title: "  Write report  ",
		},
		{
			name:  "should return validation error for empty title",
			title: "",
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "title")
			},
		},
		{
			name:  "should return validation error for whitespace-only title",
			title: "   ",
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "title")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			taskService, userService := setupServices(t)
			owner := setupOwner(t, userService, "alice")
			pinTimeNow(t, fixedNow)
			due := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
			ctx := context.Background()

			// Act
			result, err := taskService.CreateTask(ctx, owner.ID, tt.title, "quarterly numbers", due)

			// Assert
			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Greater(t, result.ID, int64(0))
				assert.Equal(t, owner.ID, result.OwnerID)
				assert.Equal(t, "Write report", result.Title)
				assert.Equal(t, domain.StatusNotStarted, result.Status)
				assert.True(t, fixedNow.Equal(result.StartDate))
				assert.True(t, due.Equal(result.DueDate))
			}
		})
	}
}

func TestTaskService_CreateTask_DueDateFromInput(t *testing.T) {
	// End-to-end shape of the create scenario: MM/DD/YYYY input becomes
	// midnight of that day on the stored task.
	taskService, userService := setupServices(t)
	owner := setupOwner(t, userService, "alice")
	ctx := context.Background()

	due, err := validation.NewValidator().ParseDueDate("03/15/2025")
	require.NoError(t, err)

	task, err := taskService.CreateTask(ctx, owner.ID, "Write report", "", due)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusNotStarted, task.Status)
	assert.True(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local).Equal(task.DueDate))
}

func TestTaskService_AuthorizeTask(t *testing.T) {
	taskService, userService := setupServices(t)
	alice := setupOwner(t, userService, "alice")
	bob := setupOwner(t, userService, "bob")
	ctx := context.Background()

	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)
	aliceTask := mustCreateTask(t, taskService, alice.ID, "alice task", due)

	t.Run("owner is authorized", func(t *testing.T) {
		task, err := taskService.AuthorizeTask(ctx, alice.ID, aliceTask.ID)
		require.NoError(t, err)
		assert.Equal(t, aliceTask.ID, task.ID)
		assert.Equal(t, alice.ID, task.OwnerID)
	})

	t.Run("existing task of another user is not owned", func(t *testing.T) {
		_, err := taskService.AuthorizeTask(ctx, bob.ID, aliceTask.ID)
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotOwned))
		assert.Contains(t, err.Error(), "does not belong to the current user")
	})

	t.Run("missing task is not found", func(t *testing.T) {
		_, err := taskService.AuthorizeTask(ctx, alice.ID, 9999)
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
		assert.Contains(t, err.Error(), "no task on record")
	})

	t.Run("invalid task id is a validation error", func(t *testing.T) {
		_, err := taskService.AuthorizeTask(ctx, alice.ID, 0)
		assert.Error(t, err)
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)

	t.Run("empty patch leaves every field unchanged", func(t *testing.T) {
		taskService, userService := setupServices(t)
		owner := setupOwner(t, userService, "alice")
		ctx := context.Background()

		created, err := taskService.CreateTask(ctx, owner.ID, "original", "original description", due)
		require.NoError(t, err)

		updated, err := taskService.UpdateTask(ctx, owner.ID, created.ID, domain.TaskPatch{})
		require.NoError(t, err)

		assert.Equal(t, created.Title, updated.Title)
		assert.Equal(t, created.Description, updated.Description)
		assert.Equal(t, created.Status, updated.Status)
		assert.True(t, created.DueDate.Equal(updated.DueDate))
		assert.True(t, created.StartDate.Equal(updated.StartDate))

		// And the stored row agrees.
		stored, err := taskService.AuthorizeTask(ctx, owner.ID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Title, stored.Title)
	})

	t.Run("patched fields are persisted", func(t *testing.T) {
		taskService, userService := setupServices(t)
		owner := setupOwner(t, userService, "alice")
		ctx := context.Background()

		created := mustCreateTask(t, taskService, owner.ID, "original", due)

		title := "renamed"
		description := "new details"
		status := domain.StatusInProgress
		newDue := time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local)

		updated, err := taskService.UpdateTask(ctx, owner.ID, created.ID, domain.TaskPatch{
			Title:       &title,
			Description: &description,
			Status:      &status,
			DueDate:     &newDue,
		})
		require.NoError(t, err)

		stored, err := taskService.AuthorizeTask(ctx, owner.ID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed", stored.Title)
		assert.Equal(t, "new details", stored.Description)
		assert.Equal(t, domain.StatusInProgress, stored.Status)
		assert.True(t, newDue.Equal(stored.DueDate))
		assert.True(t, created.StartDate.Equal(stored.StartDate))
		assert.Equal(t, updated.Title, stored.Title)
	})

	t.Run("blank patched title is rejected", func(t *testing.T) {
		taskService, userService := setupServices(t)
		owner := setupOwner(t, userService, "alice")
		ctx := context.Background()

		created := mustCreateTask(t, taskService, owner.ID, "original", due)

		blank := "  "
		_, err := taskService.UpdateTask(ctx, owner.ID, created.ID, domain.TaskPatch{Title: &blank})
		assert.Error(t, err)
	})

	t.Run("unknown patched status is rejected", func(t *testing.T) {
		taskService, userService := setupServices(t)
		owner := setupOwner(t, userService, "alice")
		ctx := context.Background()

		created := mustCreateTask(t, taskService, owner.ID, "original", due)

		bad := domain.Status("DONE")
		_, err := taskService.UpdateTask(ctx, owner.ID, created.ID, domain.TaskPatch{Status: &bad})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})

	t.Run("updating another user's task is not owned", func(t *testing.T) {
		taskService, userService := setupServices(t)
		alice := setupOwner(t, userService, "alice")
		bob := setupOwner(t, userService, "bob")
		ctx := context.Background()

		created := mustCreateTask(t, taskService, alice.ID, "alice task", due)

		title := "stolen"
		_, err := taskService.UpdateTask(ctx, bob.ID, created.ID, domain.TaskPatch{Title: &title})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotOwned))
	})
}

func TestTaskService_SetStatus(t *testing.T) {
	taskService, userService := setupServices(t)
	owner := setupOwner(t, userService, "alice")
	ctx := context.Background()
	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)

	task := mustCreateTask(t, taskService, owner.ID, "task", due)

	// Transitions are unconstrained: walk forward and straight back.
	for _, status := range []domain.Status{
		domain.StatusInProgress,
		domain.StatusFinished,
		domain.StatusNotStarted,
		domain.StatusFinished,
	} {
		updated, err := taskService.SetStatus(ctx, owner.ID, task.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)

		stored, err := taskService.AuthorizeTask(ctx, owner.ID, task.ID)
		require.NoError(t, err)
		assert.Equal(t, status, stored.Status)
	}

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := taskService.SetStatus(ctx, owner.ID, task.ID, domain.Status("DONE"))
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})
}

func TestTaskService_CompleteTask(t *testing.T) {
	taskService, userService := setupServices(t)
	owner := setupOwner(t, userService, "alice")
	ctx := context.Background()
	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)

	task := mustCreateTask(t, taskService, owner.ID, "finish me", due)

	completed, err := taskService.CompleteTask(ctx, owner.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFinished, completed.Status)

	finished, err := taskService.ListTasksByStatus(ctx, owner.ID, domain.StatusFinished)
	require.NoError(t, err)
	require.Len(t, finished, 1)
	assert.Equal(t, task.ID, finished[0].ID)
}

func TestTaskService_DeleteTask(t *testing.T) {
	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)

	t.Run("owner can delete", func(t *testing.T) {
		taskService, userService := setupServices(t)
		owner := setupOwner(t, userService, "alice")
		ctx := context.Background()

		task := mustCreateTask(t, taskService, owner.ID, "to delete", due)

		require.NoError(t, taskService.DeleteTask(ctx, owner.ID, task.ID))

		_, err := taskService.AuthorizeTask(ctx, owner.ID, task.ID)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("another user's delete fails and the task remains", func(t *testing.T) {
		taskService, userService := setupServices(t)
		alice := setupOwner(t, userService, "alice")
		bob := setupOwner(t, userService, "bob")
		ctx := context.Background()

		task := mustCreateTask(t, taskService, alice.ID, "alice task", due)

		err := taskService.DeleteTask(ctx, bob.ID, task.ID)
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotOwned))

		stored, err := taskService.AuthorizeTask(ctx, alice.ID, task.ID)
		require.NoError(t, err)
		assert.Equal(t, task.ID, stored.ID)
	})

	t.Run("deleting a missing task is not found", func(t *testing.T) {
		taskService, userService := setupServices(t)
		owner := setupOwner(t, userService, "alice")

		err := taskService.DeleteTask(context.Background(), owner.ID, 404)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestTaskService_StatusFiltersPartitionTasks(t *testing.T) {
	taskService, userService := setupServices(t)
	owner := setupOwner(t, userService, "alice")
	ctx := context.Background()
	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)

	// Five tasks spread over the three statuses.
	for i, status := range []domain.Status{
		domain.StatusNotStarted,
		domain.StatusInProgress,
		domain.StatusFinished,
		domain.StatusInProgress,
		domain.StatusNotStarted,
	} {
		task := mustCreateTask(t, taskService, owner.ID, "task", due.AddDate(0, 0, i))
		if status != domain.StatusNotStarted {
			_, err := taskService.SetStatus(ctx, owner.ID, task.ID, status)
			require.NoError(t, err)
		}
	}

	all, err := taskService.ListTasks(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, all, 5)

	seen := make(map[int64]int)
	for _, status := range domain.AllStatuses {
		filtered, err := taskService.ListTasksByStatus(ctx, owner.ID, status)
		require.NoError(t, err)
		for _, task := range filtered {
			assert.Equal(t, status, task.Status)
			seen[task.ID]++
		}
	}

	// Every task appears in exactly one status bucket.
	assert.Len(t, seen, len(all))
	for id, count := range seen {
		assert.Equal(t, 1, count, "task %d appeared in %d buckets", id, count)
	}
}

func TestTaskService_ListTasksByStatus_PreservesFetchOrder(t *testing.T) {
	taskService, userService := setupServices(t)
	owner := setupOwner(t, userService, "alice")
	ctx := context.Background()
	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)

	var ids []int64
	for _, title := range []string{"first", "second", "third"} {
		task := mustCreateTask(t, taskService, owner.ID, title, due)
		ids = append(ids, task.ID)
	}

	unstarted, err := taskService.ListTasksByStatus(ctx, owner.ID, domain.StatusNotStarted)
	require.NoError(t, err)
	require.Len(t, unstarted, 3)
	for i, task := range unstarted {
		assert.Equal(t, ids[i], task.ID)
	}
}

func TestTaskService_SortTasksByDueDate(t *testing.T) {
	taskService, userService := setupServices(t)
	owner := setupOwner(t, userService, "alice")
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2025, 5, d, 0, 0, 0, 0, time.Local) }
	// Created out of due-date order, with a duplicate due date to check
	// stability (insertion order kept for the tie).
	first := mustCreateTask(t, taskService, owner.ID, "due 20 a", day(20))
	second := mustCreateTask(t, taskService, owner.ID, "due 10", day(10))
	third := mustCreateTask(t, taskService, owner.ID, "due 20 b", day(20))
	fourth := mustCreateTask(t, taskService, owner.ID, "due 5", day(5))

	sorted, err := taskService.SortTasksByDueDate(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, sorted, 4)

	assert.Equal(t, fourth.ID, sorted[0].ID)
	assert.Equal(t, second.ID, sorted[1].ID)
	assert.Equal(t, first.ID, sorted[2].ID)
	assert.Equal(t, third.ID, sorted[3].ID)

	for i := 1; i < len(sorted); i++ {
		assert.False(t, sorted[i].DueDate.Before(sorted[i-1].DueDate))
	}
}

func TestTaskService_SortTasksByStartDate(t *testing.T) {
	taskService, userService := setupServices(t)
	owner := setupOwner(t, userService, "alice")
	ctx := context.Background()
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

	// Pin distinct creation instants, newest first, so insertion order and
	// start-date order disagree.
	instants := []time.Time{
		fixedNow.Add(2 * time.Hour),
		fixedNow,
		fixedNow.Add(time.Hour),
	}
	var ids []int64
	for _, instant := range instants {
		pinTimeNow(t, instant)
		task := mustCreateTask(t, taskService, owner.ID, "task", due)
		ids = append(ids, task.ID)
	}

	sorted, err := taskService.SortTasksByStartDate(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, sorted, 3)

	assert.Equal(t, ids[1], sorted[0].ID)
	assert.Equal(t, ids[2], sorted[1].ID)
	assert.Equal(t, ids[0], sorted[2].ID)

	// Same multiset as the unsorted fetch.
	all, err := taskService.ListTasks(ctx, owner.ID)
	require.NoError(t, err)
	sortedIDs := []int64{sorted[0].ID, sorted[1].ID, sorted[2].ID}
	allIDs := []int64{all[0].ID, all[1].ID, all[2].ID}
	sort.Slice(sortedIDs, func(i, j int) bool { return sortedIDs[i] < sortedIDs[j] })
	sort.Slice(allIDs, func(i, j int) bool { return allIDs[i] < allIDs[j] })
	assert.Equal(t, allIDs, sortedIDs)
}

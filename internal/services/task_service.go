package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// CreateTask creates a new task for the owner. The status always starts as
// NOT_STARTED and the start date records the creation time; both are set
// here, not by the caller.
func (s *taskServiceImpl) CreateTask(ctx context.Context, ownerID int64, title, description string, dueDate time.Time) (*domain.Task, error) {
	if err := s.taskValidator.ValidateOwnerID(ownerID); err != nil {
		return nil, err
	}

	cleanTitle, err := s.taskValidator.GetValidTitle(title)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(ownerID, cleanTitle, description, timeNow(), dueDate)
	dbTask := s.mapper.Task.ToDatabase(task)
	if err := s.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	logging.Debugf("created task %d for user %d\n", dbTask.ID, ownerID)
	created := s.mapper.Task.FromDatabase(dbTask)
	return &created, nil
}

// AuthorizeTask is the ownership gate used by every mutating operation.
// It scans the owner's tasks for the ID; when the ID is absent it probes
// global existence so the caller can tell "not yours" apart from "no such
// task". Read-only.
func (s *taskServiceImpl) AuthorizeTask(ctx context.Context, ownerID, taskID int64) (*domain.Task, error) {
	if err := s.taskValidator.ValidateOwnerID(ownerID); err != nil {
		return nil, err
	}
	if err := s.taskValidator.ValidateTaskID(taskID); err != nil {
		return nil, err
	}

	dbTasks, err := s.repo.ListTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	for _, dbTask := range dbTasks {
		if dbTask.ID == taskID {
			task := s.mapper.Task.FromDatabase(*dbTask)
			return &task, nil
		}
	}

	exists, err := s.repo.TaskExists(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewNotOwnedError("task", fmt.Sprintf("%d", taskID))
	}
	return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", taskID))
}

// UpdateTask applies a partial update to an owned task. Nil patch fields
// leave the corresponding task fields unchanged; an empty patch persists
// the task as-is.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, ownerID, taskID int64, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := s.AuthorizeTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if _, err := s.taskValidator.GetValidTitle(*patch.Title); err != nil {
			return nil, err
		}
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, errors.NewInvalidInputError("status", patch.Status.String(), "unknown status")
	}

	updated := patch.Apply(*task)
	dbTask := s.mapper.Task.ToDatabase(updated)
	if err := s.repo.UpdateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	return &updated, nil
}

// SetStatus force-sets the status of an owned task. Transitions are
// unconstrained: any status is reachable from any other.
func (s *taskServiceImpl) SetStatus(ctx context.Context, ownerID, taskID int64, status domain.Status) (*domain.Task, error) {
	if !status.IsValid() {
		return nil, errors.NewInvalidInputError("status", status.String(), "unknown status")
	}

	task, err := s.AuthorizeTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = status
	dbTask := s.mapper.Task.ToDatabase(*task)
	if err := s.repo.UpdateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	logging.Debugf("task %d status set to %s\n", taskID, status)
	return task, nil
}

// CompleteTask marks an owned task FINISHED.
func (s *taskServiceImpl) CompleteTask(ctx context.Context, ownerID, taskID int64) (*domain.Task, error) {
	return s.SetStatus(ctx, ownerID, taskID, domain.StatusFinished)
}

// DeleteTask removes an owned task. The repository delete is itself scoped
// to the owner, so the authorization check and the delete cannot disagree
// about whose task is being removed.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	if _, err := s.AuthorizeTask(ctx, ownerID, taskID); err != nil {
		return err
	}
	return s.repo.DeleteTask(ctx, taskID, ownerID)
}

// ListTasks returns all of the owner's tasks in fetch order.
func (s *taskServiceImpl) ListTasks(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	if err := s.taskValidator.ValidateOwnerID(ownerID); err != nil {
		return nil, err
	}

	dbTasks, err := s.repo.ListTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// ListTasksByStatus returns the owner's tasks with exactly the given status,
// preserving fetch order.
func (s *taskServiceImpl) ListTasksByStatus(ctx context.Context, ownerID int64, status domain.Status) ([]*domain.Task, error) {
	if !status.IsValid() {
		return nil, errors.NewInvalidInputError("status", status.String(), "unknown status")
	}

	tasks, err := s.ListTasks(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status == status {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}

// SortTasksByStartDate returns the owner's tasks sorted ascending by start
// date. The sort is stable: ties keep fetch order.
func (s *taskServiceImpl) SortTasksByStartDate(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	tasks, err := s.ListTasks(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].StartDate.Before(tasks[j].StartDate)
	})
	return tasks, nil
}

// SortTasksByDueDate returns the owner's tasks sorted ascending by due date.
// The sort is stable: ties keep fetch order.
func (s *taskServiceImpl) SortTasksByDueDate(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	tasks, err := s.ListTasks(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate.Before(tasks[j].DueDate)
	})
	return tasks, nil
}

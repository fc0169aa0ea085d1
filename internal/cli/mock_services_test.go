package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/services"
)

// mockTaskService implements the TaskService interface for testing. It keeps
// tasks in insertion order the way the real repository lists them.
type mockTaskService struct {
	tasks      map[int64]*domain.Task
	order      []int64
	nextTaskID int64
	failWith   error // forced error for every call when set
}

// newMockTaskService creates a new mock TaskService instance
func newMockTaskService() *mockTaskService {
	return &mockTaskService{
		tasks:      make(map[int64]*domain.Task),
		nextTaskID: 1,
	}
}

// seedTask inserts a task directly, bypassing validation
func (m *mockTaskService) seedTask(ownerID int64, title, description string, status domain.Status, startDate, dueDate time.Time) *domain.Task {
	task := &domain.Task{
		ID:          m.nextTaskID,
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      status,
		StartDate:   startDate,
		DueDate:     dueDate,
	}
	m.tasks[task.ID] = task
	m.order = append(m.order, task.ID)
	m.nextTaskID++
	return task
}

func (m *mockTaskService) CreateTask(ctx context.Context, ownerID int64, title, description string, dueDate time.Time) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if strings.TrimSpace(title) == "" {
		return nil, errors.NewValidationError("task title is required", nil)
	}
	task := m.seedTask(ownerID, strings.TrimSpace(title), description, domain.StatusNotStarted, time.Now(), dueDate)
	copied := *task
	return &copied, nil
}

func (m *mockTaskService) AuthorizeTask(ctx context.Context, ownerID, taskID int64) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	task, exists := m.tasks[taskID]
	if !exists {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", taskID))
	}
	if task.OwnerID != ownerID {
		return nil, errors.NewNotOwnedError("task", fmt.Sprintf("%d", taskID))
	}
	copied := *task
	return &copied, nil
}

func (m *mockTaskService) UpdateTask(ctx context.Context, ownerID, taskID int64, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := m.AuthorizeTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}
	updated := patch.Apply(*task)
	m.tasks[taskID] = &updated
	copied := updated
	return &copied, nil
}

func (m *mockTaskService) SetStatus(ctx context.Context, ownerID, taskID int64, status domain.Status) (*domain.Task, error) {
	if !status.IsValid() {
		return nil, errors.NewInvalidInputError("status", status.String(), "unknown status")
	}
	task, err := m.AuthorizeTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}
	task.Status = status
	m.tasks[taskID] = task
	copied := *task
	return &copied, nil
}

func (m *mockTaskService) CompleteTask(ctx context.Context, ownerID, taskID int64) (*domain.Task, error) {
	return m.SetStatus(ctx, ownerID, taskID, domain.StatusFinished)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	if _, err := m.AuthorizeTask(ctx, ownerID, taskID); err != nil {
		return err
	}
	delete(m.tasks, taskID)
	for i, id := range m.order {
		if id == taskID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockTaskService) ListTasks(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var tasks []*domain.Task
	for _, id := range m.order {
		task := m.tasks[id]
		if task.OwnerID == ownerID {
			copied := *task
			tasks = append(tasks, &copied)
		}
	}
	return tasks, nil
}

func (m *mockTaskService) ListTasksByStatus(ctx context.Context, ownerID int64, status domain.Status) ([]*domain.Task, error) {
	tasks, err := m.ListTasks(ctx, ownerID)
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

func (m *mockTaskService) SortTasksByStartDate(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	tasks, err := m.ListTasks(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].StartDate.Before(tasks[j].StartDate) })
	return tasks, nil
}

func (m *mockTaskService) SortTasksByDueDate(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	tasks, err := m.ListTasks(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].DueDate.Before(tasks[j].DueDate) })
	return tasks, nil
}

// mockUserService implements the UserService interface for testing
type mockUserService struct {
	users      map[int64]*domain.User
	byName     map[string]int64
	nextUserID int64
}

// newMockUserService creates a new mock UserService instance
func newMockUserService() *mockUserService {
	return &mockUserService{
		users:      make(map[int64]*domain.User),
		byName:     make(map[string]int64),
		nextUserID: 1,
	}
}

func (m *mockUserService) ResolveUser(ctx context.Context, name string) (*domain.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewValidationError("user name is required", nil)
	}
	if id, ok := m.byName[name]; ok {
		copied := *m.users[id]
		return &copied, nil
	}
	user := &domain.User{ID: m.nextUserID, Name: name}
	m.users[user.ID] = user
	m.byName[name] = user.ID
	m.nextUserID++
	copied := *user
	return &copied, nil
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, errors.NewNotFoundError("user", fmt.Sprintf("%d", id))
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	for _, user := range m.users {
		copied := *user
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

var _ services.TaskService = (*mockTaskService)(nil)
var _ services.UserService = (*mockUserService)(nil)

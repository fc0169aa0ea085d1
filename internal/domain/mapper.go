package domain

import (
	"task-tracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:          domainTask.ID,
		OwnerID:     domainTask.OwnerID,
		Title:       domainTask.Title,
		Description: domainTask.Description,
		Status:      domainTask.Status.String(),
		StartDate:   domainTask.StartDate,
		DueDate:     domainTask.DueDate,
	}
}

// FromDatabase converts a database Task to a domain Task.
// Unknown status strings fall back to NOT_STARTED rather than failing,
// so one corrupted row cannot make a whole listing unreadable.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	status, err := ParseStatus(dbTask.Status)
	if err != nil {
		status = StatusNotStarted
	}
	return Task{
		ID:          dbTask.ID,
		OwnerID:     dbTask.OwnerID,
		Title:       dbTask.Title,
		Description: dbTask.Description,
		Status:      status,
		StartDate:   dbTask.StartDate,
		DueDate:     dbTask.DueDate,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		domainTask := m.FromDatabase(*dbTask)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}

// UserMapper handles conversion between domain and database User models.
type UserMapper struct{}

// NewUserMapper creates a new UserMapper instance.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToDatabase converts a domain User to a database User.
func (m *UserMapper) ToDatabase(domainUser User) sqlite.User {
	return sqlite.User{
		ID:   domainUser.ID,
		Name: domainUser.Name,
	}
}

// FromDatabase converts a database User to a domain User.
func (m *UserMapper) FromDatabase(dbUser sqlite.User) User {
	return User{
		ID:   dbUser.ID,
		Name: dbUser.Name,
	}
}

// FromDatabaseSlice converts a slice of database Users to domain Users.
func (m *UserMapper) FromDatabaseSlice(dbUsers []*sqlite.User) []*User {
	domainUsers := make([]*User, len(dbUsers))
	for i, dbUser := range dbUsers {
		domainUser := m.FromDatabase(*dbUser)
		domainUsers[i] = &domainUser
	}
	return domainUsers
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
	User *UserMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
		User: NewUserMapper(),
	}
}

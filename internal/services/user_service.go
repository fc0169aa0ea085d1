package services

import (
	"context"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/validation"
)

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	userValidator *validation.UserValidator
}

// NewUserService creates a new UserService instance
func NewUserService(repo sqlite.Repository) UserService {
	return &userServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		userValidator: validation.NewUserValidator(),
	}
}

// ResolveUser finds a user by name, creating the record on first use. The
// caller is trusted to have authenticated the name; this service only maps
// it to an identifier.
func (s *userServiceImpl) ResolveUser(ctx context.Context, name string) (*domain.User, error) {
	if err := s.userValidator.ValidateUserName(name); err != nil {
		return nil, err
	}

	dbUser, err := s.repo.GetUserByName(ctx, name)
	if err == nil {
		user := s.mapper.User.FromDatabase(*dbUser)
		return &user, nil
	}
	if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return nil, err
	}

	newUser := &sqlite.User{Name: name}
	if err := s.repo.CreateUser(ctx, newUser); err != nil {
		return nil, err
	}

	logging.Debugf("created user %d (%s)\n", newUser.ID, name)
	user := s.mapper.User.FromDatabase(*newUser)
	return &user, nil
}

// GetUser retrieves a user by ID
func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	dbUser, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user := s.mapper.User.FromDatabase(*dbUser)
	return &user, nil
}

// ListUsers retrieves all known users
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	dbUsers, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.User.FromDatabaseSlice(dbUsers), nil
}

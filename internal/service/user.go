package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hongminglow/user-service/internal/models"
	"github.com/hongminglow/user-service/internal/models/dto"
	"github.com/hongminglow/user-service/internal/storage"
	"github.com/hongminglow/user-service/pkg/validator"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserConflict = errors.New("user was modified concurrently")
)

// ValidationError reports request fields that are missing.
type ValidationError struct {
	Fields validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return "invalid user request: " + strings.Join(names, ", ")
}

// UserService owns the user lifecycle: create, read, full update and status
// toggle. It holds no state of its own; everything lives in the store.
//
// Update and UpdateStatus read then write. A concurrent write in between is
// caught by the store's version check and reported as ErrUserConflict rather
// than silently overwritten.
type UserService struct {
	store storage.UserStore
}

func NewUserService(store storage.UserStore) *UserService {
	return &UserService{store: store}
}

// Create stores a new user built verbatim from req.
func (s *UserService) Create(ctx context.Context, req dto.UserRequest) (dto.UserResponse, error) {
	if err := validateUser(req); err != nil {
		return dto.UserResponse{}, err
	}

	user := models.User{}
	applyRequest(&user, req)

	saved, err := s.store.Save(ctx, user)
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("create user: %w", err)
	}
	return dto.NewUserResponse(saved), nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (dto.UserResponse, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

// Update overwrites every field of an existing user. The id never changes.
func (s *UserService) Update(ctx context.Context, id int64, req dto.UserRequest) (dto.UserResponse, error) {
	if err := validateUser(req); err != nil {
		return dto.UserResponse{}, err
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	applyRequest(&user, req)

	return s.save(ctx, user)
}

// UpdateStatus flips only IsActive; all other fields keep their stored values.
func (s *UserService) UpdateStatus(ctx context.Context, id int64, req dto.UserStatusRequest) (dto.UserResponse, error) {
	if errs := validator.ValidateStatus(req.IsActive); errs.HasErrors() {
		return dto.UserResponse{}, &ValidationError{Fields: errs}
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	user.IsActive = *req.IsActive

	return s.save(ctx, user)
}

func (s *UserService) find(ctx context.Context, id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
	}
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}

func (s *UserService) save(ctx context.Context, user models.User) (dto.UserResponse, error) {
	saved, err := s.store.Save(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			// Deleted underneath us.
			return dto.UserResponse{}, fmt.Errorf("user %d: %w", user.ID, ErrUserNotFound)
		case errors.Is(err, storage.ErrConflict):
			return dto.UserResponse{}, fmt.Errorf("user %d: %w", user.ID, ErrUserConflict)
		default:
			return dto.UserResponse{}, fmt.Errorf("save user %d: %w", user.ID, err)
		}
	}
	return dto.NewUserResponse(saved), nil
}

func validateUser(req dto.UserRequest) error {
	if errs := validator.ValidateUser(req.Name, req.Email, req.Password, req.Document, req.IsActive); errs.HasErrors() {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// applyRequest copies request fields as-is, no trimming or normalisation.
// Callers validate first, so IsActive is non-nil.
func applyRequest(user *models.User, req dto.UserRequest) {
	user.Name = req.Name
	user.Email = req.Email
	user.Password = req.Password
	user.IsActive = *req.IsActive
	user.Document = req.Document
}

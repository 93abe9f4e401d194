package service

import (
	"context"
	"errors"

	"forum-api/internal/domain"
	"forum-api/internal/repository"
)

// UserService exposes the user-facing read and the admin-only delete.
type UserService interface {
	Profile(ctx context.Context, accessToken, userUUID string) (*domain.User, error)
	Delete(ctx context.Context, accessToken, userUUID string) (*domain.User, error)
}

type userService struct {
	auth  AuthService
	users repository.UserRepository
}

func NewUserService(auth AuthService, users repository.UserRepository) UserService {
	return &userService{
		auth:  auth,
		users: users,
	}
}

func (s *userService) Profile(ctx context.Context, accessToken, userUUID string) (*domain.User, error) {
	if _, err := s.auth.Resolve(ctx, accessToken, actGetUserProfile.hint); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrUserNotFound("User with entered uuid does not exist")
		}
		return nil, err
	}
	return user, nil
}

// Delete removes a user account. Only an admin session may do this; the
// row delete cascades to the user's sessions, questions and answers at
// the store level.
func (s *userService) Delete(ctx context.Context, accessToken, userUUID string) (*domain.User, error) {
	session, err := s.auth.Resolve(ctx, accessToken, actDeleteUser.hint)
	if err != nil {
		return nil, err
	}

	caller, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	notFound := domain.ErrUserNotFound("User with entered uuid to be deleted does not exist")
	target, err := s.users.GetByUUID(ctx, userUUID)
	exists := true
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		exists = false
	}
	if err := decide(actDeleteUser, caller.ID, caller.Role, exists, 0, notFound); err != nil {
		return nil, err
	}

	if err := s.users.Delete(ctx, target.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	return target, nil
}

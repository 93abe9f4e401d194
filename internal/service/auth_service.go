package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"forum-api/internal/crypto"
	"forum-api/internal/domain"
	"forum-api/internal/repository"
	"forum-api/internal/token"
)

// AuthService issues, resolves and terminates auth sessions. Every other
// service funnels its token through Resolve before touching a store.
type AuthService interface {
	SignUp(ctx context.Context, user *domain.User, password string) (*domain.User, error)
	SignIn(ctx context.Context, username, password string) (*domain.Session, *domain.User, error)
	SignOut(ctx context.Context, accessToken string) (*domain.User, error)
	// Resolve maps a bearer token to its live session. The hint completes
	// the signed-out message so the caller can say what signing in again
	// would enable.
	Resolve(ctx context.Context, accessToken, hint string) (*domain.Session, error)
}

type authService struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	secret     string
	sessionTTL time.Duration
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, secret string, sessionTTL time.Duration) AuthService {
	return &authService{
		users:      users,
		sessions:   sessions,
		secret:     secret,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) SignUp(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.TrimSpace(user.Email)
	if user.Username == "" {
		return nil, errors.New("username is required")
	}
	if user.Email == "" {
		return nil, errors.New("email is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	if _, err := s.users.GetByUsername(ctx, user.Username); err == nil {
		return nil, domain.ErrUsernameTaken()
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if _, err := s.users.GetByEmail(ctx, user.Email); err == nil {
		return nil, domain.ErrEmailTaken()
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	salt, digest, err := crypto.HashPassword(password, nil)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user.UUID = uuid.NewString()
	user.Salt = salt
	user.PasswordDigest = digest
	if user.Role == "" {
		user.Role = domain.RoleMember
	}
	user.CreatedAt = time.Now().UTC()

	if _, err := s.users.Create(ctx, user); err != nil {
		// a racing sign-up can slip past the pre-checks
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.ErrUsernameTaken()
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) SignIn(ctx context.Context, username, password string) (*domain.Session, *domain.User, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, domain.ErrInvalidCredentials()
		}
		return nil, nil, err
	}
	if !crypto.VerifyPassword(password, user.Salt, user.PasswordDigest) {
		return nil, nil, domain.ErrInvalidCredentials()
	}

	accessToken, expiresAt, err := token.Issue(s.secret, user.UUID, s.sessionTTL)
	if err != nil {
		return nil, nil, err
	}

	session := &domain.Session{
		UUID:        uuid.NewString(),
		UserID:      user.ID,
		AccessToken: accessToken,
		LoginAt:     time.Now().UTC(),
		ExpiresAt:   expiresAt,
	}
	// one new session per sign-in; earlier sessions of the same user stay live
	if _, err := s.sessions.Create(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, user, nil
}

func (s *authService) Resolve(ctx context.Context, accessToken, hint string) (*domain.Session, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, domain.ErrNotSignedIn()
	}
	session, err := s.sessions.GetByToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrNotSignedIn()
		}
		return nil, err
	}
	if session.LogoutAt != nil {
		return nil, domain.ErrSignedOut(hint)
	}
	// an expired session authenticates nothing, same as a signed-out one
	if !time.Now().UTC().Before(session.ExpiresAt) {
		return nil, domain.ErrSignedOut(hint)
	}
	return session, nil
}

func (s *authService) SignOut(ctx context.Context, accessToken string) (*domain.User, error) {
	session, err := s.Resolve(ctx, accessToken, "")
	if err != nil {
		if domain.KindOf(err) != domain.KindUnknown {
			return nil, domain.ErrSignOutRestricted()
		}
		return nil, err
	}

	updated, err := s.sessions.MarkSignedOut(ctx, session.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !updated {
		// lost a race with another sign-out on the same token
		return nil, domain.ErrSignOutRestricted()
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

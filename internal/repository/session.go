package repository

import (
	"context"
	"time"

	"forum-api/internal/domain"
)

// SessionRepository persists auth sessions. Sessions are append-only: rows
// are never deleted, and the only update is marking a sign-out.
type SessionRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, session *domain.Session) (int64, error)
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	// MarkSignedOut sets logout_at on a not-yet-signed-out session and
	// reports whether a row was actually updated.
	MarkSignedOut(ctx context.Context, id int64, at time.Time) (bool, error)
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"forum-api/internal/domain"
	"forum-api/internal/repository"
)

const createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	uuid TEXT NOT NULL UNIQUE,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	access_token TEXT NOT NULL UNIQUE,
	login_at DATETIME NOT NULL,
	expires_at DATETIME NOT NULL,
	logout_at DATETIME
);
`

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createSessionsTable); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO sessions (uuid, user_id, access_token, login_at, expires_at, logout_at)
VALUES (?, ?, ?, ?, ?, NULL)`,
		session.UUID,
		session.UserID,
		session.AccessToken,
		session.LoginAt,
		session.ExpiresAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("session last insert id: %w", err)
	}
	session.ID = id
	return id, nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, uuid, user_id, access_token, login_at, expires_at, logout_at
FROM sessions
WHERE access_token = ?`,
		token,
	)

	var (
		session  domain.Session
		logoutAt sql.NullTime
	)
	if err := row.Scan(
		&session.ID,
		&session.UUID,
		&session.UserID,
		&session.AccessToken,
		&session.LoginAt,
		&session.ExpiresAt,
		&logoutAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	if logoutAt.Valid {
		t := logoutAt.Time
		session.LogoutAt = &t
	}
	return &session, nil
}

// MarkSignedOut is the single mutation sessions ever see. The logout_at
// guard makes it first-write-wins under concurrent sign-outs.
func (r *SessionRepository) MarkSignedOut(ctx context.Context, id int64, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET logout_at = ? WHERE id = ? AND logout_at IS NULL`,
		at, id,
	)
	if err != nil {
		return false, fmt.Errorf("mark session signed out: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("sign out rows affected: %w", err)
	}
	return affected > 0, nil
}

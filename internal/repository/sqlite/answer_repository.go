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

const createAnswersTable = `
CREATE TABLE IF NOT EXISTS answers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	uuid TEXT NOT NULL UNIQUE,
	content TEXT NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	question_id INTEGER NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL
);
`

type AnswerRepository struct {
	db *sql.DB
}

func NewAnswerRepository(db *sql.DB) repository.AnswerRepository {
	return &AnswerRepository{db: db}
}

func (r *AnswerRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAnswersTable); err != nil {
		return fmt.Errorf("create answers table: %w", err)
	}
	return nil
}

func (r *AnswerRepository) Create(ctx context.Context, answer *domain.Answer) (int64, error) {
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO answers (uuid, content, user_id, question_id, created_at)
VALUES (?, ?, ?, ?, ?)`,
		answer.UUID,
		answer.Content,
		answer.UserID,
		answer.QuestionID,
		answer.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert answer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("answer last insert id: %w", err)
	}
	answer.ID = id
	return id, nil
}

func (r *AnswerRepository) GetByUUID(ctx context.Context, uuid string) (*domain.Answer, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, uuid, content, user_id, question_id, created_at
FROM answers
WHERE uuid = ?`,
		uuid,
	)

	var answer domain.Answer
	if err := row.Scan(
		&answer.ID,
		&answer.UUID,
		&answer.Content,
		&answer.UserID,
		&answer.QuestionID,
		&answer.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan answer: %w", err)
	}
	return &answer, nil
}

func (r *AnswerRepository) ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, uuid, content, user_id, question_id, created_at
FROM answers
WHERE question_id = ?`,
		questionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var answer domain.Answer
		if err := rows.Scan(
			&answer.ID,
			&answer.UUID,
			&answer.Content,
			&answer.UserID,
			&answer.QuestionID,
			&answer.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan answer row: %w", err)
		}
		answers = append(answers, answer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}
	return answers, nil
}

func (r *AnswerRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE answers SET content = ? WHERE id = ?`, content, id)
	if err != nil {
		return fmt.Errorf("update answer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update answer rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AnswerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM answers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete answer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete answer rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

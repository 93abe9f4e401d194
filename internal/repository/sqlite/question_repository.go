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

const createQuestionsTable = `
CREATE TABLE IF NOT EXISTS questions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	uuid TEXT NOT NULL UNIQUE,
	content TEXT NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL
);
`

type QuestionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) repository.QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createQuestionsTable); err != nil {
		return fmt.Errorf("create questions table: %w", err)
	}
	return nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) (int64, error) {
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO questions (uuid, content, user_id, created_at)
VALUES (?, ?, ?, ?)`,
		question.UUID,
		question.Content,
		question.UserID,
		question.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("question last insert id: %w", err)
	}
	question.ID = id
	return id, nil
}

func (r *QuestionRepository) GetByUUID(ctx context.Context, uuid string) (*domain.Question, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, uuid, content, user_id, created_at
FROM questions
WHERE uuid = ?`,
		uuid,
	)
	return scanQuestion(row)
}

func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, uuid, content, user_id, created_at
FROM questions`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()
	return collectQuestions(rows)
}

func (r *QuestionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, uuid, content, user_id, created_at
FROM questions
WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list questions by user: %w", err)
	}
	defer rows.Close()
	return collectQuestions(rows)
}

// UpdateContent replaces the question text in one statement so the
// existence check and the write cannot race a concurrent delete.
func (r *QuestionRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE questions SET content = ? WHERE id = ?`, content, id)
	if err != nil {
		return fmt.Errorf("update question: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update question rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete question rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanQuestion(row interface {
	Scan(dest ...any) error
}) (*domain.Question, error) {
	var question domain.Question
	if err := row.Scan(
		&question.ID,
		&question.UUID,
		&question.Content,
		&question.UserID,
		&question.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan question: %w", err)
	}
	return &question, nil
}

func collectQuestions(rows *sql.Rows) ([]domain.Question, error) {
	var questions []domain.Question
	for rows.Next() {
		var question domain.Question
		if err := rows.Scan(
			&question.ID,
			&question.UUID,
			&question.Content,
			&question.UserID,
			&question.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan question row: %w", err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}

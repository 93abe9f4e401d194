package repository

import (
	"context"

	"forum-api/internal/domain"
)

// QuestionRepository defines persistence operations for Question entities.
// List results come back in storage order; no sorting is promised.
type QuestionRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, question *domain.Question) (int64, error)
	GetByUUID(ctx context.Context, uuid string) (*domain.Question, error)
	List(ctx context.Context) ([]domain.Question, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Question, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
}

// AnswerRepository defines persistence operations for Answer entities.
type AnswerRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, answer *domain.Answer) (int64, error)
	GetByUUID(ctx context.Context, uuid string) (*domain.Answer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
}

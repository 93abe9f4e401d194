package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"forum-api/internal/domain"
	"forum-api/internal/repository"
)

// AnswerService gates answer CRUD behind the session and access policy.
// Answers additionally hang off a parent question, which must exist for
// create and list.
type AnswerService interface {
	Create(ctx context.Context, accessToken, questionUUID, content string) (*domain.Answer, error)
	Edit(ctx context.Context, accessToken, answerUUID, content string) (*domain.Answer, error)
	Delete(ctx context.Context, accessToken, answerUUID string) (*domain.Answer, error)
	AllForQuestion(ctx context.Context, accessToken, questionUUID string) ([]domain.Answer, *domain.Question, error)
}

type answerService struct {
	auth      AuthService
	answers   repository.AnswerRepository
	questions repository.QuestionRepository
}

func NewAnswerService(auth AuthService, answers repository.AnswerRepository, questions repository.QuestionRepository) AnswerService {
	return &answerService{
		auth:      auth,
		answers:   answers,
		questions: questions,
	}
}

func (s *answerService) Create(ctx context.Context, accessToken, questionUUID, content string) (*domain.Answer, error) {
	session, err := s.auth.Resolve(ctx, accessToken, actCreateAnswer.hint)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, errors.New("answer content is required")
	}

	question, err := s.questions.GetByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrQuestionNotFound()
		}
		return nil, err
	}

	answer := &domain.Answer{
		UUID:       uuid.NewString(),
		Content:    content,
		UserID:     session.UserID,
		QuestionID: question.ID,
	}
	if _, err := s.answers.Create(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *answerService) Edit(ctx context.Context, accessToken, answerUUID, content string) (*domain.Answer, error) {
	session, err := s.auth.Resolve(ctx, accessToken, actEditAnswer.hint)
	if err != nil {
		return nil, err
	}

	answer, exists, err := s.lookup(ctx, answerUUID)
	if err != nil {
		return nil, err
	}
	var ownerID int64
	if exists {
		ownerID = answer.UserID
	}
	if err := decide(actEditAnswer, session.UserID, "", exists, ownerID, domain.ErrAnswerNotFound()); err != nil {
		return nil, err
	}

	if err := s.answers.UpdateContent(ctx, answer.ID, content); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrAnswerNotFound()
		}
		return nil, err
	}
	answer.Content = content
	return answer, nil
}

func (s *answerService) Delete(ctx context.Context, accessToken, answerUUID string) (*domain.Answer, error) {
	session, err := s.auth.Resolve(ctx, accessToken, actDeleteAnswer.hint)
	if err != nil {
		return nil, err
	}

	answer, exists, err := s.lookup(ctx, answerUUID)
	if err != nil {
		return nil, err
	}
	var ownerID int64
	if exists {
		ownerID = answer.UserID
	}
	if err := decide(actDeleteAnswer, session.UserID, "", exists, ownerID, domain.ErrAnswerNotFound()); err != nil {
		return nil, err
	}

	if err := s.answers.Delete(ctx, answer.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrAnswerNotFound()
		}
		return nil, err
	}
	return answer, nil
}

func (s *answerService) AllForQuestion(ctx context.Context, accessToken, questionUUID string) ([]domain.Answer, *domain.Question, error) {
	if _, err := s.auth.Resolve(ctx, accessToken, actListAnswers.hint); err != nil {
		return nil, nil, err
	}

	question, err := s.questions.GetByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, domain.ErrQuestionNotFound()
		}
		return nil, nil, err
	}

	answers, err := s.answers.ListByQuestion(ctx, question.ID)
	if err != nil {
		return nil, nil, err
	}
	return answers, question, nil
}

func (s *answerService) lookup(ctx context.Context, answerUUID string) (*domain.Answer, bool, error) {
	answer, err := s.answers.GetByUUID(ctx, answerUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return answer, true, nil
}

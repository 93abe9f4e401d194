package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"forum-api/internal/domain"
	"forum-api/internal/repository"
)

// QuestionService gates question CRUD behind the session and access policy.
type QuestionService interface {
	Create(ctx context.Context, accessToken, content string) (*domain.Question, error)
	All(ctx context.Context, accessToken string) ([]domain.Question, error)
	AllByUser(ctx context.Context, accessToken, userUUID string) ([]domain.Question, error)
	Edit(ctx context.Context, accessToken, questionUUID, content string) (*domain.Question, error)
	Delete(ctx context.Context, accessToken, questionUUID string) (*domain.Question, error)
}

type questionService struct {
	auth      AuthService
	questions repository.QuestionRepository
	users     repository.UserRepository
}

func NewQuestionService(auth AuthService, questions repository.QuestionRepository, users repository.UserRepository) QuestionService {
	return &questionService{
		auth:      auth,
		questions: questions,
		users:     users,
	}
}

func (s *questionService) Create(ctx context.Context, accessToken, content string) (*domain.Question, error) {
	session, err := s.auth.Resolve(ctx, accessToken, actCreateQuestion.hint)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, errors.New("question content is required")
	}

	question := &domain.Question{
		UUID:    uuid.NewString(),
		Content: content,
		UserID:  session.UserID,
	}
	if _, err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *questionService) All(ctx context.Context, accessToken string) ([]domain.Question, error) {
	if _, err := s.auth.Resolve(ctx, accessToken, actListQuestions.hint); err != nil {
		return nil, err
	}
	return s.questions.List(ctx)
}

// AllByUser reports USR-001 both for an unknown user and for a known user
// with zero questions; the two cases are indistinguishable to callers.
// Published behavior, kept as-is.
func (s *questionService) AllByUser(ctx context.Context, accessToken, userUUID string) ([]domain.Question, error) {
	if _, err := s.auth.Resolve(ctx, accessToken, actListByUser.hint); err != nil {
		return nil, err
	}

	notFound := domain.ErrUserNotFound("User with entered uuid whose question details are to be seen does not exist")
	user, err := s.users.GetByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	questions, err := s.questions.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, notFound
	}
	return questions, nil
}

func (s *questionService) Edit(ctx context.Context, accessToken, questionUUID, content string) (*domain.Question, error) {
	session, err := s.auth.Resolve(ctx, accessToken, actEditQuestion.hint)
	if err != nil {
		return nil, err
	}

	question, exists, err := s.lookup(ctx, questionUUID)
	if err != nil {
		return nil, err
	}
	var ownerID int64
	if exists {
		ownerID = question.UserID
	}
	if err := decide(actEditQuestion, session.UserID, "", exists, ownerID, domain.ErrQuestionNotFound()); err != nil {
		return nil, err
	}

	if err := s.questions.UpdateContent(ctx, question.ID, content); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrQuestionNotFound()
		}
		return nil, err
	}
	question.Content = content
	return question, nil
}

func (s *questionService) Delete(ctx context.Context, accessToken, questionUUID string) (*domain.Question, error) {
	session, err := s.auth.Resolve(ctx, accessToken, actDeleteQuestion.hint)
	if err != nil {
		return nil, err
	}

	question, exists, err := s.lookup(ctx, questionUUID)
	if err != nil {
		return nil, err
	}
	var ownerID int64
	if exists {
		ownerID = question.UserID
	}
	if err := decide(actDeleteQuestion, session.UserID, "", exists, ownerID, domain.ErrQuestionNotFound()); err != nil {
		return nil, err
	}

	if err := s.questions.Delete(ctx, question.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrQuestionNotFound()
		}
		return nil, err
	}
	return question, nil
}

func (s *questionService) lookup(ctx context.Context, questionUUID string) (*domain.Question, bool, error) {
	question, err := s.questions.GetByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return question, true, nil
}

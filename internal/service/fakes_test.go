package service

import (
	"context"
	"sync"
	"time"

	"forum-api/internal/domain"
	"forum-api/internal/repository"
)

// In-memory fakes for the store interfaces. Error fields allow injecting
// store failures per call site.

type fakeUserRepo struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*domain.User
	getErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (f *fakeUserRepo) Init(ctx context.Context) error { return nil }

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return 0, repository.ErrDuplicate
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByUUID(ctx context.Context, uuid string) (*domain.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.UUID == uuid {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeSessionRepo struct {
	mu       sync.RWMutex
	nextID   int64
	sessions map[int64]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[int64]*domain.Session)}
}

func (f *fakeSessionRepo) Init(ctx context.Context) error { return nil }

func (f *fakeSessionRepo) Create(ctx context.Context, session *domain.Session) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	session.ID = f.nextID
	f.sessions[session.ID] = session
	return session.ID, nil
}

func (f *fakeSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, s := range f.sessions {
		if s.AccessToken == token {
			return s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSessionRepo) MarkSignedOut(ctx context.Context, id int64, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok || s.LogoutAt != nil {
		return false, nil
	}
	t := at
	s.LogoutAt = &t
	return true, nil
}

type fakeQuestionRepo struct {
	mu        sync.RWMutex
	nextID    int64
	questions map[int64]*domain.Question
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[int64]*domain.Question)}
}

func (f *fakeQuestionRepo) Init(ctx context.Context) error { return nil }

func (f *fakeQuestionRepo) Create(ctx context.Context, question *domain.Question) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	question.ID = f.nextID
	f.questions[question.ID] = question
	return question.ID, nil
}

func (f *fakeQuestionRepo) GetByUUID(ctx context.Context, uuid string) (*domain.Question, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, q := range f.questions {
		if q.UUID == uuid {
			return q, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeQuestionRepo) List(ctx context.Context) ([]domain.Question, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []domain.Question
	for _, q := range f.questions {
		out = append(out, *q)
	}
	return out, nil
}

func (f *fakeQuestionRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Question, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []domain.Question
	for _, q := range f.questions {
		if q.UserID == userID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) UpdateContent(ctx context.Context, id int64, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.questions[id]
	if !ok {
		return repository.ErrNotFound
	}
	q.Content = content
	return nil
}

func (f *fakeQuestionRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.questions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.questions, id)
	return nil
}

type fakeAnswerRepo struct {
	mu      sync.RWMutex
	nextID  int64
	answers map[int64]*domain.Answer
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: make(map[int64]*domain.Answer)}
}

func (f *fakeAnswerRepo) Init(ctx context.Context) error { return nil }

func (f *fakeAnswerRepo) Create(ctx context.Context, answer *domain.Answer) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	answer.ID = f.nextID
	f.answers[answer.ID] = answer
	return answer.ID, nil
}

func (f *fakeAnswerRepo) GetByUUID(ctx context.Context, uuid string) (*domain.Answer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, a := range f.answers {
		if a.UUID == uuid {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAnswerRepo) ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []domain.Answer
	for _, a := range f.answers {
		if a.QuestionID == questionID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAnswerRepo) UpdateContent(ctx context.Context, id int64, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.answers[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.Content = content
	return nil
}

func (f *fakeAnswerRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.answers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.answers, id)
	return nil
}

// testEnv bundles the fakes plus fully wired services for scenario tests.
type testEnv struct {
	users     *fakeUserRepo
	sessions  *fakeSessionRepo
	questions *fakeQuestionRepo
	answers   *fakeAnswerRepo

	auth     AuthService
	user     UserService
	question QuestionService
	answer   AnswerService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:     newFakeUserRepo(),
		sessions:  newFakeSessionRepo(),
		questions: newFakeQuestionRepo(),
		answers:   newFakeAnswerRepo(),
	}
	env.auth = NewAuthService(env.users, env.sessions, "test-secret", 8*time.Hour)
	env.user = NewUserService(env.auth, env.users)
	env.question = NewQuestionService(env.auth, env.questions, env.users)
	env.answer = NewAnswerService(env.auth, env.answers, env.questions)
	return env
}

// signUpAndIn registers a member and signs them in, returning the token.
func (env *testEnv) signUpAndIn(ctx context.Context, username string, role domain.Role) (string, *domain.User, error) {
	user := &domain.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	if _, err := env.auth.SignUp(ctx, user, "s3cret-"+username); err != nil {
		return "", nil, err
	}
	session, _, err := env.auth.SignIn(ctx, username, "s3cret-"+username)
	if err != nil {
		return "", nil, err
	}
	return session.AccessToken, user, nil
}

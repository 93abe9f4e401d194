package domain

import "time"

// Question is a forum question. UserID references the creating user and is
// immutable after creation; only Content may change, and only by the owner.
type Question struct {
	ID        int64
	UUID      string
	Content   string
	UserID    int64
	CreatedAt time.Time
}

// Answer is a reply to a Question. Same ownership rules as Question, with
// an additional immutable reference to the parent question.
type Answer struct {
	ID         int64
	UUID       string
	Content    string
	UserID     int64
	QuestionID int64
	CreatedAt  time.Time
}

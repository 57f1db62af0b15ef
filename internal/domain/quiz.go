package domain

import (
	"context"
	"time"
)

// Quiz is a named collection of questions.
type Quiz struct {
	ID           int64
	Title        string
	DocumentName string
	CreatedAt    time.Time
	Questions    []*Question
}

// Question belongs to exactly one quiz.
type Question struct {
	ID           int64
	QuizID       int64
	QuestionText string
	Hint         string
	Answers      []*Answer
}

// Answer belongs to exactly one question.
type Answer struct {
	ID              int64
	QuestionID      int64
	AnswerText      string
	IsCorrectAnswer bool
}

// QuizRepository defines the persistence operations the quiz editor needs.
// Every method runs on the transaction carried by ctx when there is one.
type QuizRepository interface {
	// GetQuizByID returns nil, nil when no quiz has the given id.
	GetQuizByID(ctx context.Context, id int64) (*Quiz, error)
	UpdateQuizTitle(ctx context.Context, id int64, title string) error
	// DeleteQuestionsByQuizID removes every question of the quiz together with
	// its answers.
	DeleteQuestionsByQuizID(ctx context.Context, quizID int64) error
	// InsertQuestion stores q and sets q.ID to the generated identity.
	InsertQuestion(ctx context.Context, q *Question) error
	// InsertAnswer stores a and sets a.ID to the generated identity.
	InsertAnswer(ctx context.Context, a *Answer) error
	// GetQuestionsWithAnswers returns the quiz's questions, answers attached,
	// in insertion order.
	GetQuestionsWithAnswers(ctx context.Context, quizID int64) ([]*Question, error)
}

// TransactionManager runs fn inside one database transaction. The context
// passed to fn carries the transaction; fn's error rolls it back.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

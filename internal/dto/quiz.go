package dto

import "time"

// EditQuizRequest replaces a quiz's title and its whole question set.
// Pointer fields distinguish "absent or null" from zero values so that an
// empty string or a false flag is still accepted.
// @Description Request body for editing a quiz
type EditQuizRequest struct {
	ID           *int64          `json:"id" validate:"required"`
	Title        *string         `json:"title" validate:"required"`
	DocumentName *string         `json:"document_name" validate:"required"`
	CreatedAt    *Timestamp      `json:"created_at,omitempty"`
	Questions    []QuestionInput `json:"questions" validate:"required,dive"`
}

// QuestionInput is one question of an edit request. ID is ignored.
type QuestionInput struct {
	ID           *int64        `json:"id,omitempty"`
	QuestionText *string       `json:"question_text" validate:"required"`
	Hint         *string       `json:"hint" validate:"required"`
	Answers      []AnswerInput `json:"answers" validate:"required,dive"`
}

// AnswerInput is one candidate answer of a question. ID is ignored.
type AnswerInput struct {
	ID              *int64  `json:"id,omitempty"`
	AnswerText      *string `json:"answer_text" validate:"required"`
	IsCorrectAnswer *bool   `json:"is_correct_answer" validate:"required"`
}

// EditQuizResponse is returned after a successful edit.
type EditQuizResponse struct {
	Message string `json:"message"`
	QuizID  int64  `json:"quiz_id"`
}

// QuizDetailResponse is a quiz with its questions and answers in order.
// @Description Quiz with questions and answers
type QuizDetailResponse struct {
	ID           int64              `json:"id"`
	Title        string             `json:"title"`
	DocumentName string             `json:"document_name"`
	CreatedAt    time.Time          `json:"created_at"`
	Questions    []QuestionResponse `json:"questions"`
}

type QuestionResponse struct {
	ID           int64            `json:"id"`
	QuestionText string           `json:"question_text"`
	Hint         string           `json:"hint"`
	Answers      []AnswerResponse `json:"answers"`
}

type AnswerResponse struct {
	ID              int64  `json:"id"`
	AnswerText      string `json:"answer_text"`
	IsCorrectAnswer bool   `json:"is_correct_answer"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

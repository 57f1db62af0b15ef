package models

import "time"

// Quiz maps a row of the quizzes table.
type Quiz struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	DocumentName string    `db:"document_name"`
	CreatedAt    time.Time `db:"created_at"`
}

// Question maps a row of the questions table.
type Question struct {
	ID           int64  `db:"id"`
	QuizID       int64  `db:"quiz_id"`
	QuestionText string `db:"question_text"`
	Hint         string `db:"hint"`
}

// Answer maps a row of the answers table.
type Answer struct {
	ID              int64  `db:"id"`
	QuestionID      int64  `db:"question_id"`
	AnswerText      string `db:"answer_text"`
	IsCorrectAnswer bool   `db:"is_correct_answer"`
}

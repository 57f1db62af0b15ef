package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quiz-editor/internal/domain"
	"quiz-editor/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const (
	selectQuizByIDQuery = `SELECT id, title, document_name, created_at FROM quizzes WHERE id = ?`

	updateQuizTitleQuery = `UPDATE quizzes SET title = ? WHERE id = ?`

	deleteAnswersByQuizIDQuery = `DELETE FROM answers WHERE question_id IN (SELECT id FROM questions WHERE quiz_id = ?)`

	deleteQuestionsByQuizIDQuery = `DELETE FROM questions WHERE quiz_id = ?`

	insertQuestionQuery = `INSERT INTO questions (quiz_id, question_text, hint) VALUES (?, ?, ?) RETURNING id`

	insertAnswerQuery = `INSERT INTO answers (question_id, answer_text, is_correct_answer) VALUES (?, ?, ?) RETURNING id`

	selectQuestionsByQuizIDQuery = `SELECT id, quiz_id, question_text, hint FROM questions WHERE quiz_id = ? ORDER BY id`

	selectAnswersByQuizIDQuery = `SELECT a.id, a.question_id, a.answer_text, a.is_correct_answer
	FROM answers a
	JOIN questions q ON q.id = a.question_id
	WHERE q.quiz_id = ?
	ORDER BY a.id`
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

func (a *QuizDatabaseAdapter) exec(ctx context.Context) DBTX {
	return GetExecutor(ctx, a.db)
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id int64) (*domain.Quiz, error) {
	ex := a.exec(ctx)
	var row models.Quiz
	if err := ex.GetContext(ctx, &row, ex.Rebind(selectQuizByIDQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %d: %w", id, err)
	}
	return toDomainQuiz(&row), nil
}

// UpdateQuizTitle implements domain.QuizRepository
func (a *QuizDatabaseAdapter) UpdateQuizTitle(ctx context.Context, id int64, title string) error {
	ex := a.exec(ctx)
	result, err := ex.ExecContext(ctx, ex.Rebind(updateQuizTitleQuery), title, id)
	if err != nil {
		return fmt.Errorf("failed to update quiz title: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuizNotFoundError(id)
	}
	return nil
}

// DeleteQuestionsByQuizID implements domain.QuizRepository. Answers are
// deleted explicitly so the result does not depend on cascade being enabled.
func (a *QuizDatabaseAdapter) DeleteQuestionsByQuizID(ctx context.Context, quizID int64) error {
	ex := a.exec(ctx)
	if _, err := ex.ExecContext(ctx, ex.Rebind(deleteAnswersByQuizIDQuery), quizID); err != nil {
		return fmt.Errorf("failed to delete answers of quiz %d: %w", quizID, err)
	}
	if _, err := ex.ExecContext(ctx, ex.Rebind(deleteQuestionsByQuizIDQuery), quizID); err != nil {
		return fmt.Errorf("failed to delete questions of quiz %d: %w", quizID, err)
	}
	return nil
}

// InsertQuestion implements domain.QuizRepository
func (a *QuizDatabaseAdapter) InsertQuestion(ctx context.Context, q *domain.Question) error {
	if q == nil {
		return fmt.Errorf("cannot insert nil question")
	}
	ex := a.exec(ctx)
	var id int64
	if err := ex.GetContext(ctx, &id, ex.Rebind(insertQuestionQuery), q.QuizID, q.QuestionText, q.Hint); err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}
	q.ID = id
	return nil
}

// InsertAnswer implements domain.QuizRepository
func (a *QuizDatabaseAdapter) InsertAnswer(ctx context.Context, ans *domain.Answer) error {
	if ans == nil {
		return fmt.Errorf("cannot insert nil answer")
	}
	ex := a.exec(ctx)
	var id int64
	if err := ex.GetContext(ctx, &id, ex.Rebind(insertAnswerQuery), ans.QuestionID, ans.AnswerText, ans.IsCorrectAnswer); err != nil {
		return fmt.Errorf("failed to insert answer: %w", err)
	}
	ans.ID = id
	return nil
}

// GetQuestionsWithAnswers implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuestionsWithAnswers(ctx context.Context, quizID int64) ([]*domain.Question, error) {
	ex := a.exec(ctx)

	var questionRows []models.Question
	if err := ex.SelectContext(ctx, &questionRows, ex.Rebind(selectQuestionsByQuizIDQuery), quizID); err != nil {
		return nil, fmt.Errorf("failed to get questions of quiz %d: %w", quizID, err)
	}
	if len(questionRows) == 0 {
		return []*domain.Question{}, nil
	}

	var answerRows []models.Answer
	if err := ex.SelectContext(ctx, &answerRows, ex.Rebind(selectAnswersByQuizIDQuery), quizID); err != nil {
		return nil, fmt.Errorf("failed to get answers of quiz %d: %w", quizID, err)
	}

	questions := make([]*domain.Question, 0, len(questionRows))
	byID := make(map[int64]*domain.Question, len(questionRows))
	for i := range questionRows {
		q := toDomainQuestion(&questionRows[i])
		questions = append(questions, q)
		byID[q.ID] = q
	}
	for i := range answerRows {
		ans := toDomainAnswer(&answerRows[i])
		if q, ok := byID[ans.QuestionID]; ok {
			q.Answers = append(q.Answers, ans)
		}
	}
	return questions, nil
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	return &domain.Quiz{
		ID:           m.ID,
		Title:        m.Title,
		DocumentName: m.DocumentName,
		CreatedAt:    m.CreatedAt,
	}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:           m.ID,
		QuizID:       m.QuizID,
		QuestionText: m.QuestionText,
		Hint:         m.Hint,
		Answers:      []*domain.Answer{},
	}
}

func toDomainAnswer(m *models.Answer) *domain.Answer {
	return &domain.Answer{
		ID:              m.ID,
		QuestionID:      m.QuestionID,
		AnswerText:      m.AnswerText,
		IsCorrectAnswer: m.IsCorrectAnswer,
	}
}

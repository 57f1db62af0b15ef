package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"quiz-editor/internal/database"
	"quiz-editor/internal/domain"
	"quiz-editor/internal/dto"
	"quiz-editor/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSQLite migrates a fresh database file and seeds quiz 7 with two
// questions of two answers each.
func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "quiz.db")
	require.NoError(t, database.RunMigrations(database.DriverSQLite, dsn))

	db, err := database.NewSQLXDB(database.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.MustExec(`INSERT INTO quizzes (id, title, document_name) VALUES (7, 'Old title', 'seed.pdf')`)
	db.MustExec(`INSERT INTO questions (id, quiz_id, question_text, hint) VALUES (1, 7, 'Old Q1', 'old hint'), (2, 7, 'Old Q2', '')`)
	db.MustExec(`INSERT INTO answers (question_id, answer_text, is_correct_answer) VALUES (1, 'a', 1), (1, 'b', 0), (2, 'c', 1), (2, 'd', 0)`)
	return db
}

// faultyRepository fails InsertAnswer for one answer text, by error or panic.
type faultyRepository struct {
	domain.QuizRepository
	failOn string
	panics bool
}

func (f *faultyRepository) InsertAnswer(ctx context.Context, a *domain.Answer) error {
	if a.AnswerText == f.failOn {
		if f.panics {
			panic("answer writer crashed")
		}
		return errors.New("forced constraint violation")
	}
	return f.QuizRepository.InsertAnswer(ctx, a)
}

func newSQLiteService(db *sqlx.DB, repo domain.QuizRepository) QuizService {
	if repo == nil {
		repo = repository.NewQuizDatabaseAdapter(db)
	}
	return NewQuizService(repo, repository.NewTransactionManagerAdapter(db), nil)
}

func countRows(t *testing.T, db *sqlx.DB, query string, args ...interface{}) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, query, args...))
	return n
}

type answerContent struct {
	Text    string
	Correct bool
}

type questionContent struct {
	Text    string
	Hint    string
	Answers []answerContent
}

func contentOf(detail *dto.QuizDetailResponse) []questionContent {
	out := make([]questionContent, 0, len(detail.Questions))
	for _, q := range detail.Questions {
		qc := questionContent{Text: q.QuestionText, Hint: q.Hint, Answers: []answerContent{}}
		for _, a := range q.Answers {
			qc.Answers = append(qc.Answers, answerContent{Text: a.AnswerText, Correct: a.IsCorrectAnswer})
		}
		out = append(out, qc)
	}
	return out
}

func TestSQLiteReplaceQuiz_Capitals(t *testing.T) {
	db := setupSQLite(t)
	svc := newSQLiteService(db, nil)
	ctx := context.Background()

	resp, err := svc.ReplaceQuiz(ctx, capitalsRequest(7))
	require.NoError(t, err)
	assert.Equal(t, "Quiz updated successfully", resp.Message)
	assert.Equal(t, int64(7), resp.QuizID)

	detail, err := svc.GetQuiz(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Capitals", detail.Title)
	assert.Equal(t, []questionContent{{
		Text: "Capital of France?",
		Hint: "City of lights",
		Answers: []answerContent{
			{Text: "Paris", Correct: true},
			{Text: "Lyon", Correct: false},
		},
	}}, contentOf(detail))

	// client supplied ids are ignored
	assert.NotEqual(t, int64(41), detail.Questions[0].ID)
	assert.NotEqual(t, int64(99), detail.Questions[0].Answers[0].ID)

	// no orphans of the previous version survive
	assert.Equal(t, 1, countRows(t, db, `SELECT COUNT(*) FROM questions`))
	assert.Equal(t, 2, countRows(t, db, `SELECT COUNT(*) FROM answers`))
}

func TestSQLiteReplaceQuiz_DocumentNameNotPersisted(t *testing.T) {
	db := setupSQLite(t)
	svc := newSQLiteService(db, nil)

	req := capitalsRequest(7)
	req.DocumentName = strPtr("other.pdf")
	_, err := svc.ReplaceQuiz(context.Background(), req)
	require.NoError(t, err)

	var docName string
	require.NoError(t, db.Get(&docName, `SELECT document_name FROM quizzes WHERE id = 7`))
	assert.Equal(t, "seed.pdf", docName)
}

func TestSQLiteReplaceQuiz_NotFoundLeavesStorageUntouched(t *testing.T) {
	db := setupSQLite(t)
	svc := newSQLiteService(db, nil)

	_, err := svc.ReplaceQuiz(context.Background(), capitalsRequest(9999))

	assert.ErrorIs(t, err, domain.ErrQuizNotFound)
	assert.EqualError(t, err, "Quiz with ID 9999 not found")
	assert.Equal(t, 1, countRows(t, db, `SELECT COUNT(*) FROM quizzes`))
	assert.Equal(t, 1, countRows(t, db, `SELECT COUNT(*) FROM quizzes WHERE title = 'Old title'`))
	assert.Equal(t, 2, countRows(t, db, `SELECT COUNT(*) FROM questions`))
	assert.Equal(t, 4, countRows(t, db, `SELECT COUNT(*) FROM answers`))
}

// A fault during answer insertion rolls back the whole replacement: the title
// and the previous questions and answers are all still there.
func TestSQLiteReplaceQuiz_FaultRollsBackEverything(t *testing.T) {
	db := setupSQLite(t)
	repo := &faultyRepository{QuizRepository: repository.NewQuizDatabaseAdapter(db), failOn: "Lyon"}
	svc := newSQLiteService(db, repo)
	ctx := context.Background()

	before, err := newSQLiteService(db, nil).GetQuiz(ctx, 7)
	require.NoError(t, err)

	_, err = svc.ReplaceQuiz(ctx, capitalsRequest(7))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.Contains(t, err.Error(), "An error occurred while updating the quiz: forced constraint violation")

	var title string
	require.NoError(t, db.Get(&title, `SELECT title FROM quizzes WHERE id = 7`))
	assert.Equal(t, "Old title", title)

	after, err := newSQLiteService(db, nil).GetQuiz(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, 4, countRows(t, db, `SELECT COUNT(*) FROM answers`))
}

func TestSQLiteReplaceQuiz_PanicRollsBackEverything(t *testing.T) {
	db := setupSQLite(t)
	repo := &faultyRepository{QuizRepository: repository.NewQuizDatabaseAdapter(db), failOn: "Lyon", panics: true}
	svc := newSQLiteService(db, repo)

	_, err := svc.ReplaceQuiz(context.Background(), capitalsRequest(7))

	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.EqualError(t, err, "An error occurred while updating the quiz: answer writer crashed")

	var title string
	require.NoError(t, db.Get(&title, `SELECT title FROM quizzes WHERE id = 7`))
	assert.Equal(t, "Old title", title)
	assert.Equal(t, 2, countRows(t, db, `SELECT COUNT(*) FROM questions`))
	assert.Equal(t, 4, countRows(t, db, `SELECT COUNT(*) FROM answers`))
}

func TestSQLiteReplaceQuiz_Idempotent(t *testing.T) {
	db := setupSQLite(t)
	svc := newSQLiteService(db, nil)
	ctx := context.Background()

	req := capitalsRequest(7)
	req.Questions = append(req.Questions, dto.QuestionInput{
		QuestionText: strPtr("Capital of Italy?"),
		Hint:         strPtr(""),
		Answers:      []dto.AnswerInput{},
	})

	_, err := svc.ReplaceQuiz(ctx, req)
	require.NoError(t, err)
	first, err := svc.GetQuiz(ctx, 7)
	require.NoError(t, err)

	_, err = svc.ReplaceQuiz(ctx, req)
	require.NoError(t, err)
	second, err := svc.GetQuiz(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, contentOf(first), contentOf(second))
	assert.NotEqual(t, first.Questions[0].ID, second.Questions[0].ID)
	assert.Equal(t, 2, countRows(t, db, `SELECT COUNT(*) FROM questions`))
}

func TestSQLiteReplaceQuiz_EmptyQuestionList(t *testing.T) {
	db := setupSQLite(t)
	svc := newSQLiteService(db, nil)

	req := capitalsRequest(7)
	req.Questions = []dto.QuestionInput{}
	_, err := svc.ReplaceQuiz(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, countRows(t, db, `SELECT COUNT(*) FROM questions`))
	assert.Equal(t, 0, countRows(t, db, `SELECT COUNT(*) FROM answers`))
}

func TestSQLiteSchema_QuizDeleteCascades(t *testing.T) {
	db := setupSQLite(t)

	db.MustExec(`DELETE FROM quizzes WHERE id = 7`)

	assert.Equal(t, 0, countRows(t, db, `SELECT COUNT(*) FROM questions`))
	assert.Equal(t, 0, countRows(t, db, `SELECT COUNT(*) FROM answers`))
}

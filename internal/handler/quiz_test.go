package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"quiz-editor/internal/domain"
	"quiz-editor/internal/dto"
	"quiz-editor/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockQuizService is a mock implementation of service.QuizService
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) ReplaceQuiz(ctx context.Context, req *dto.EditQuizRequest) (*dto.EditQuizResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EditQuizResponse), args.Error(1)
}

func (m *MockQuizService) GetQuiz(ctx context.Context, quizID int64) (*dto.QuizDetailResponse, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizDetailResponse), args.Error(1)
}

func setupApp(svc *MockQuizService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := NewQuizHandler(svc)
	app.Put("/api/edit-quiz", h.EditQuiz)
	app.Get("/api/quiz/:id", h.GetQuiz)
	return app
}

const capitalsBody = `{
	"id": 7,
	"title": "Capitals",
	"document_name": "geo.pdf",
	"questions": [{
		"question_text": "Capital of France?",
		"hint": "City of lights",
		"answers": [
			{"answer_text": "Paris", "is_correct_answer": true},
			{"answer_text": "Lyon", "is_correct_answer": false}
		]
	}]
}`

func doPut(t *testing.T, app *fiber.App, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/api/edit-quiz", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func TestEditQuiz_Success(t *testing.T) {
	svc := new(MockQuizService)
	app := setupApp(svc)

	svc.On("ReplaceQuiz", mock.Anything, mock.MatchedBy(func(r *dto.EditQuizRequest) bool {
		return *r.ID == 7 && *r.Title == "Capitals" && len(r.Questions) == 1 &&
			len(r.Questions[0].Answers) == 2 && *r.Questions[0].Answers[0].IsCorrectAnswer
	})).Return(&dto.EditQuizResponse{Message: "Quiz updated successfully", QuizID: 7}, nil).Once()

	resp, raw := doPut(t, app, capitalsBody)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Quiz updated successfully","quiz_id":7}`, string(raw))
	svc.AssertExpectations(t)
}

func TestEditQuiz_NotFound(t *testing.T) {
	svc := new(MockQuizService)
	app := setupApp(svc)

	svc.On("ReplaceQuiz", mock.Anything, mock.Anything).Return(nil, domain.NewQuizNotFoundError(7)).Once()

	resp, raw := doPut(t, app, capitalsBody)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Quiz with ID 7 not found"}`, string(raw))
}

func TestEditQuiz_InternalError(t *testing.T) {
	svc := new(MockQuizService)
	app := setupApp(svc)

	svc.On("ReplaceQuiz", mock.Anything, mock.Anything).
		Return(nil, domain.NewInternalError("An error occurred while updating the quiz", errors.New("database is locked"))).Once()

	resp, raw := doPut(t, app, capitalsBody)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "An error occurred while updating the quiz: database is locked", body.Detail)
}

func TestEditQuiz_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLoc []interface{}
	}{
		{
			name:    "missing title",
			body:    `{"id": 7, "document_name": "d", "questions": []}`,
			wantLoc: []interface{}{"body", "title"},
		},
		{
			name:    "null questions",
			body:    `{"id": 7, "title": "t", "document_name": "d", "questions": null}`,
			wantLoc: []interface{}{"body", "questions"},
		},
		{
			name:    "missing is_correct_answer",
			body:    `{"id": 7, "title": "t", "document_name": "d", "questions": [{"question_text": "q", "hint": "", "answers": [{"answer_text": "a"}]}]}`,
			wantLoc: []interface{}{"body", "questions", float64(0), "answers", float64(0), "is_correct_answer"},
		},
		{
			name:    "id of wrong type",
			body:    `{"id": "seven", "title": "t", "document_name": "d", "questions": []}`,
			wantLoc: []interface{}{"body", "id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockQuizService)
			app := setupApp(svc)

			resp, raw := doPut(t, app, tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			var body struct {
				Detail []struct {
					Loc []interface{} `json:"loc"`
				} `json:"detail"`
			}
			require.NoError(t, json.Unmarshal(raw, &body))
			require.NotEmpty(t, body.Detail)
			assert.Equal(t, tt.wantLoc, body.Detail[0].Loc)
			svc.AssertNotCalled(t, "ReplaceQuiz", mock.Anything, mock.Anything)
		})
	}
}

func TestEditQuiz_EmptyStringsAndFalseAreAccepted(t *testing.T) {
	svc := new(MockQuizService)
	app := setupApp(svc)

	svc.On("ReplaceQuiz", mock.Anything, mock.Anything).
		Return(&dto.EditQuizResponse{Message: "Quiz updated successfully", QuizID: 7}, nil).Once()

	resp, _ := doPut(t, app, `{"id": 7, "title": "", "document_name": "", "questions": [{"question_text": "", "hint": "", "answers": [{"answer_text": "", "is_correct_answer": false}]}]}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestGetQuiz(t *testing.T) {
	svc := new(MockQuizService)
	app := setupApp(svc)

	svc.On("GetQuiz", mock.Anything, int64(7)).Return(&dto.QuizDetailResponse{
		ID:        7,
		Title:     "Capitals",
		Questions: []dto.QuestionResponse{},
	}, nil).Once()
	svc.On("GetQuiz", mock.Anything, int64(8)).Return(nil, domain.NewQuizNotFoundError(8)).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/quiz/7", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var detail dto.QuizDetailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	assert.Equal(t, "Capitals", detail.Title)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/quiz/8", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/quiz/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	svc.AssertExpectations(t)
}

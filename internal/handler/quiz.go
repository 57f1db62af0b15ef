package handler

import (
	"quiz-editor/internal/logger"
	"quiz-editor/internal/service"
	"quiz-editor/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// EditQuiz godoc
// @Summary Edit a quiz
// @Description Replaces the quiz title and all of its questions and answers. Question and answer ids in the body are ignored; document_name and created_at are accepted but not stored.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.EditQuizRequest true "Full quiz content"
// @Success 200 {object} dto.EditQuizResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /edit-quiz [put]
func (h *QuizHandler) EditQuiz(c *fiber.Ctx) error {
	req, err := h.validator.ParseEditQuizRequest(c.Body())
	if err != nil {
		return err
	}

	resp, err := h.service.ReplaceQuiz(c.UserContext(), req)
	if err != nil {
		logger.Get().Debug("Edit quiz failed", zap.Int64("quiz_id", *req.ID), zap.Error(err))
		return err
	}

	return c.JSON(resp)
}

// GetQuiz godoc
// @Summary Get a quiz
// @Description Returns the quiz with its questions and answers in insertion order
// @Tags quiz
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quizID, err := h.validator.ParseQuizID(c.Params("id"))
	if err != nil {
		return err
	}

	detail, err := h.service.GetQuiz(c.UserContext(), quizID)
	if err != nil {
		return err
	}

	return c.JSON(detail)
}

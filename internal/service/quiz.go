package service

import (
	"context"
	"errors"
	"fmt"
	"quiz-editor/internal/domain"
	"quiz-editor/internal/dto"
	"quiz-editor/internal/logger"

	"go.uber.org/zap"
)

const (
	quizUpdatedMessage  = "Quiz updated successfully"
	updateFailedMessage = "An error occurred while updating the quiz"
	readFailedMessage   = "An error occurred while reading the quiz"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	// ReplaceQuiz overwrites the quiz title and replaces every question and
	// answer with the ones in req, atomically.
	ReplaceQuiz(ctx context.Context, req *dto.EditQuizRequest) (*dto.EditQuizResponse, error)
	// GetQuiz returns the quiz with its questions and answers in order.
	GetQuiz(ctx context.Context, quizID int64) (*dto.QuizDetailResponse, error)
}

// quizService implements QuizService
type quizService struct {
	repo        domain.QuizRepository
	txManager   domain.TransactionManager
	detailCache QuizDetailCacheService
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	repo domain.QuizRepository,
	txManager domain.TransactionManager,
	detailCache QuizDetailCacheService,
) QuizService {
	if detailCache == nil {
		detailCache = &noopQuizDetailCacheService{}
	}
	return &quizService{
		repo:        repo,
		txManager:   txManager,
		detailCache: detailCache,
	}
}

// ReplaceQuiz implements QuizService. Client supplied question and answer ids
// are ignored; document_name and created_at are accepted but not stored.
func (s *quizService) ReplaceQuiz(ctx context.Context, req *dto.EditQuizRequest) (*dto.EditQuizResponse, error) {
	if req == nil || req.ID == nil {
		return nil, domain.NewInternalError(updateFailedMessage, fmt.Errorf("request without quiz id"))
	}
	quizID := *req.ID

	err := s.replaceInTx(ctx, quizID, req)
	if err != nil {
		if errors.Is(err, domain.ErrQuizNotFound) {
			logger.Get().Info("Quiz not found for edit", zap.Int64("quiz_id", quizID))
			return nil, err
		}
		logger.Get().Error("Error updating quiz", zap.Int64("quiz_id", quizID), zap.Error(err))
		return nil, domain.NewInternalError(updateFailedMessage, err)
	}

	if err := s.detailCache.Invalidate(ctx, quizID); err != nil {
		logger.Get().Warn("Failed to invalidate quiz detail cache", zap.Int64("quiz_id", quizID), zap.Error(err))
	}

	logger.Get().Info("Quiz updated",
		zap.Int64("quiz_id", quizID),
		zap.Int("question_count", len(req.Questions)),
	)
	return &dto.EditQuizResponse{Message: quizUpdatedMessage, QuizID: quizID}, nil
}

// replaceInTx runs the replacement in one transaction. A panic inside it is
// returned as an error once the transaction has rolled back.
func (s *quizService) replaceInTx(ctx context.Context, quizID int64, req *dto.EditQuizRequest) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%v", p)
		}
	}()

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		quiz, err := s.repo.GetQuizByID(txCtx, quizID)
		if err != nil {
			return err
		}
		if quiz == nil {
			return domain.NewQuizNotFoundError(quizID)
		}

		if err := s.repo.UpdateQuizTitle(txCtx, quizID, deref(req.Title)); err != nil {
			return err
		}

		if err := s.repo.DeleteQuestionsByQuizID(txCtx, quizID); err != nil {
			return err
		}

		for _, qIn := range req.Questions {
			question := &domain.Question{
				QuizID:       quizID,
				QuestionText: deref(qIn.QuestionText),
				Hint:         deref(qIn.Hint),
			}
			if err := s.repo.InsertQuestion(txCtx, question); err != nil {
				return err
			}

			for _, aIn := range qIn.Answers {
				answer := &domain.Answer{
					QuestionID:      question.ID,
					AnswerText:      deref(aIn.AnswerText),
					IsCorrectAnswer: aIn.IsCorrectAnswer != nil && *aIn.IsCorrectAnswer,
				}
				if err := s.repo.InsertAnswer(txCtx, answer); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, quizID int64) (*dto.QuizDetailResponse, error) {
	cached, err := s.detailCache.Get(ctx, quizID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrQuizDetailNotCached) {
		logger.Get().Warn("Quiz detail cache read failed, falling back to database",
			zap.Int64("quiz_id", quizID), zap.Error(err))
	}

	// Read before loading so an edit committed during the load is detected.
	version, versionErr := s.detailCache.Version(ctx, quizID)
	if versionErr != nil {
		logger.Get().Warn("Quiz version read failed, detail will not be cached",
			zap.Int64("quiz_id", quizID), zap.Error(versionErr))
	}

	var detail *dto.QuizDetailResponse
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		quiz, err := s.repo.GetQuizByID(txCtx, quizID)
		if err != nil {
			return err
		}
		if quiz == nil {
			return domain.NewQuizNotFoundError(quizID)
		}
		questions, err := s.repo.GetQuestionsWithAnswers(txCtx, quizID)
		if err != nil {
			return err
		}
		quiz.Questions = questions
		detail = toQuizDetailResponse(quiz)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrQuizNotFound) {
			return nil, err
		}
		logger.Get().Error("Error reading quiz", zap.Int64("quiz_id", quizID), zap.Error(err))
		return nil, domain.NewInternalError(readFailedMessage, err)
	}

	if versionErr == nil {
		if err := s.detailCache.Put(ctx, detail, version); err != nil {
			logger.Get().Warn("Failed to cache quiz detail", zap.Int64("quiz_id", quizID), zap.Error(err))
		}
	}
	return detail, nil
}

func toQuizDetailResponse(quiz *domain.Quiz) *dto.QuizDetailResponse {
	resp := &dto.QuizDetailResponse{
		ID:           quiz.ID,
		Title:        quiz.Title,
		DocumentName: quiz.DocumentName,
		CreatedAt:    quiz.CreatedAt,
		Questions:    make([]dto.QuestionResponse, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		qr := dto.QuestionResponse{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Hint:         q.Hint,
			Answers:      make([]dto.AnswerResponse, 0, len(q.Answers)),
		}
		for _, a := range q.Answers {
			qr.Answers = append(qr.Answers, dto.AnswerResponse{
				ID:              a.ID,
				AnswerText:      a.AnswerText,
				IsCorrectAnswer: a.IsCorrectAnswer,
			})
		}
		resp.Questions = append(resp.Questions, qr)
	}
	return resp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

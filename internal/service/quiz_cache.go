package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"quiz-editor/internal/cache"
	"quiz-editor/internal/domain"
	"quiz-editor/internal/dto"
	"quiz-editor/internal/logger"
	"time"

	"go.uber.org/zap"
)

// ErrQuizDetailNotCached is returned when a quiz read is not in the cache.
var ErrQuizDetailNotCached = errors.New("quiz detail not found in cache")

// ErrQuizDetailStale is returned by Put when the quiz was edited while the
// detail was being loaded. The entry is not kept.
var ErrQuizDetailStale = errors.New("quiz detail changed while loading")

// QuizDetailCacheService caches quiz read responses keyed by quiz id.
type QuizDetailCacheService interface {
	// Version returns the quiz's edit counter. Take it before loading a detail
	// and pass it to Put.
	Version(ctx context.Context, quizID int64) (string, error)
	// Put stores detail unless the edit counter moved away from version.
	Put(ctx context.Context, detail *dto.QuizDetailResponse, version string) error
	Get(ctx context.Context, quizID int64) (*dto.QuizDetailResponse, error)
	// Invalidate bumps the edit counter and drops the cached detail.
	Invalidate(ctx context.Context, quizID int64) error
}

type quizDetailCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewQuizDetailCacheService falls back to a no-op service when cache is nil.
func NewQuizDetailCacheService(c domain.Cache, ttl time.Duration) QuizDetailCacheService {
	if c == nil {
		logger.Get().Warn("QuizDetailCacheService initialized with nil cache. Service will be no-op.")
		return &noopQuizDetailCacheService{}
	}
	return &quizDetailCacheServiceImpl{cache: c, ttl: ttl}
}

func (s *quizDetailCacheServiceImpl) Version(ctx context.Context, quizID int64) (string, error) {
	key := cache.QuizVersionKey(quizID)
	v, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return "0", nil
		}
		return "", domain.NewInternalError(fmt.Sprintf("failed to get quiz version from cache for key %s", key), err)
	}
	return v, nil
}

func (s *quizDetailCacheServiceImpl) Put(ctx context.Context, detail *dto.QuizDetailResponse, version string) error {
	if detail == nil {
		return fmt.Errorf("cannot cache nil quiz detail")
	}

	key := cache.QuizDetailKey(detail.ID)
	data, err := json.Marshal(detail)
	if err != nil {
		return domain.NewInternalError("failed to marshal quiz detail for caching", err)
	}

	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to set quiz detail to cache for key %s", key), err)
	}

	// An edit that committed after version was read may have invalidated
	// before the Set above; its entry would then outlive the edit.
	current, err := s.Version(ctx, detail.ID)
	if err != nil || current != version {
		if delErr := s.cache.Delete(ctx, key); delErr != nil {
			return domain.NewInternalError(fmt.Sprintf("failed to drop stale quiz detail for key %s", key), delErr)
		}
		if err != nil {
			return err
		}
		return ErrQuizDetailStale
	}
	logger.Get().Debug("Cached quiz detail", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *quizDetailCacheServiceImpl) Get(ctx context.Context, quizID int64) (*dto.QuizDetailResponse, error) {
	key := cache.QuizDetailKey(quizID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrQuizDetailNotCached
		}
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get quiz detail from cache for key %s", key), err)
	}
	if data == "" {
		return nil, ErrQuizDetailNotCached
	}

	var detail dto.QuizDetailResponse
	if err := json.Unmarshal([]byte(data), &detail); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal quiz detail from cache for key %s", key), err)
	}
	return &detail, nil
}

func (s *quizDetailCacheServiceImpl) Invalidate(ctx context.Context, quizID int64) error {
	versionKey := cache.QuizVersionKey(quizID)
	_, incrErr := s.cache.Incr(ctx, versionKey)

	key := cache.QuizDetailKey(quizID)
	if err := s.cache.Delete(ctx, key); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to delete quiz detail from cache for key %s", key), err)
	}
	if incrErr != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to bump quiz version for key %s", versionKey), incrErr)
	}
	return nil
}

type noopQuizDetailCacheService struct{}

func (*noopQuizDetailCacheService) Version(context.Context, int64) (string, error) { return "0", nil }

func (*noopQuizDetailCacheService) Put(context.Context, *dto.QuizDetailResponse, string) error {
	return nil
}

func (*noopQuizDetailCacheService) Get(context.Context, int64) (*dto.QuizDetailResponse, error) {
	return nil, ErrQuizDetailNotCached
}

func (*noopQuizDetailCacheService) Invalidate(context.Context, int64) error { return nil }

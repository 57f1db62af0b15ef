package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "quizedit"

	QuizServiceName       = "quiz"
	QuizDetailObjectType  = "detail"
	QuizVersionObjectType = "version"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// QuizDetailKey is the key under which a quiz read response is cached.
func QuizDetailKey(quizID int64) string {
	return GenerateCacheKey(QuizServiceName, QuizDetailObjectType, strconv.FormatInt(quizID, 10))
}

// QuizVersionKey holds a counter bumped on every edit of the quiz. Readers
// compare it around a cache fill to detect a concurrent edit.
func QuizVersionKey(quizID int64) string {
	return GenerateCacheKey(QuizServiceName, QuizVersionObjectType, strconv.FormatInt(quizID, 10))
}

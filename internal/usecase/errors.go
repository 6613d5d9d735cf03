package usecase

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	ErrUserNotFound = errors.New("user not found")
	ErrIdeaNotFound = errors.New("idea not found")
	ErrPostNotFound = errors.New("post not found")

	// ErrScoringServiceUnavailable means the external ranking service was
	// unreachable, timed out, errored, or returned garbage. Transient; the
	// caller may retry.
	ErrScoringServiceUnavailable = errors.New("scoring service unavailable")

	// ErrMatchmakingFailed covers any other internal fault in the matchmaking
	// pipeline. No partial results accompany it.
	ErrMatchmakingFailed = errors.New("matchmaking failed")

	ErrAssistantUnavailable = errors.New("assistant unavailable")

	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

package domain

import "errors"

var (
	// ErrRecommenderNotConfigured indicates no LLM backend is configured.
	ErrRecommenderNotConfigured = errors.New("recommendations not configured")

	// ErrInvalidRecommendation indicates the model replied with something other than the expected JSON.
	ErrInvalidRecommendation = errors.New("invalid recommendation response")

	// ErrRecommenderUnavailable indicates the LLM backend failed or timed out.
	ErrRecommenderUnavailable = errors.New("recommendation backend unavailable")
)

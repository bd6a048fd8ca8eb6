package service

import (
	"context"
	"io"

	"pestplan/pkg/recommend/types"
)

type RecommendService interface {
	// Recommend runs the whole pipeline on a raw request body: credential
	// check, decode, validation, prompt, model call, extraction, schedule.
	// Errors are *types.Failure values tagged with the failure kind.
	Recommend(ctx context.Context, body io.Reader) (*types.RecommendationResult, error)
}

// pkg/ai/client.go

package ai

import "context"

// Client takes a rendered prompt and returns the model's raw reply text.
// The reply carries no shape guarantee; callers parse it themselves.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

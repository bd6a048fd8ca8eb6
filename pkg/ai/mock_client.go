// pkg/ai/mock_client.go

package ai

import "context"

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) Generate(ctx context.Context, prompt string) (string, error) {
	return `{"confidence":0.5,"treatment_schedule":[` +
		`{"product":"Mancozeb","timing":"Day 0","notes":"mock protectant"},` +
		`{"product":"Azoxystrobin","timing":"Day 7","notes":"mock systemic"}]}`, nil
}

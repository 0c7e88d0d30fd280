package llm

import "context"

// MockClient is a test double for Client.
type MockClient struct {
	ProviderName string
	InferFunc    func(ctx context.Context, req Request) (*Response, error)

	// Requests records every request passed to Infer.
	Requests []Request
}

func (m *MockClient) Name() string {
	if m.ProviderName != "" {
		return m.ProviderName
	}
	return "mock"
}

func (m *MockClient) Infer(ctx context.Context, req Request) (*Response, error) {
	m.Requests = append(m.Requests, req)
	if m.InferFunc != nil {
		return m.InferFunc(ctx, req)
	}
	return &Response{Text: "{}"}, nil
}

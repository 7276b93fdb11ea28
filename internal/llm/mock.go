package llm

import "context"

// MockClient is a scripted Client for tests. It records the last request
// and returns the configured response or error.
type MockClient struct {
	Response    *CompletionResponse
	Err         error
	LastRequest *CompletionRequest
	Calls       int
}

// NewMockClient creates a mock client that replies with the given content.
func NewMockClient(content string) *MockClient {
	return &MockClient{
		Response: &CompletionResponse{Content: content, Model: "mock"},
	}
}

// Complete returns the scripted response or error.
func (m *MockClient) Complete(_ context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	m.Calls++
	m.LastRequest = req
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

// Name returns the provider name.
func (m *MockClient) Name() string { return "mock" }

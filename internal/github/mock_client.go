package github

import (
	"context"

	"github.com/Didstopia/ghtag/internal/model"
)

// MockClient is a mock implementation of the Client interface for testing
type MockClient struct {
	// ListTagsFunc can be set to mock ListTags behavior
	ListTagsFunc func(ctx context.Context, owner, repo string, opts *ListOptions) ([]*model.Tag, error)

	// CompareCommitsFunc can be set to mock CompareCommits behavior
	CompareCommitsFunc func(ctx context.Context, owner, repo, base, head string) ([]*model.Commit, error)

	// CreateTagFunc can be set to mock CreateTag behavior
	CreateTagFunc func(ctx context.Context, owner, repo string, req *CreateTagRequest) (string, error)

	// CreateRefFunc can be set to mock CreateRef behavior
	CreateRefFunc func(ctx context.Context, owner, repo, ref, sha string) error

	// Call tracking
	Calls []MockCall
}

// MockCall records a method call for verification
type MockCall struct {
	Method string
	Args   []interface{}
}

// NewMockClient creates a new mock client
func NewMockClient() *MockClient {
	return &MockClient{
		Calls: make([]MockCall, 0),
	}
}

// ListTags implements Client.ListTags
func (m *MockClient) ListTags(ctx context.Context, owner, repo string, opts *ListOptions) ([]*model.Tag, error) {
	var page ListOptions
	if opts != nil {
		page = *opts
	}
	m.Calls = append(m.Calls, MockCall{Method: "ListTags", Args: []interface{}{owner, repo, page}})
	if m.ListTagsFunc != nil {
		return m.ListTagsFunc(ctx, owner, repo, opts)
	}
	return nil, nil
}

// CompareCommits implements Client.CompareCommits
func (m *MockClient) CompareCommits(ctx context.Context, owner, repo, base, head string) ([]*model.Commit, error) {
	m.Calls = append(m.Calls, MockCall{Method: "CompareCommits", Args: []interface{}{owner, repo, base, head}})
	if m.CompareCommitsFunc != nil {
		return m.CompareCommitsFunc(ctx, owner, repo, base, head)
	}
	return nil, nil
}

// CreateTag implements Client.CreateTag
func (m *MockClient) CreateTag(ctx context.Context, owner, repo string, req *CreateTagRequest) (string, error) {
	m.Calls = append(m.Calls, MockCall{Method: "CreateTag", Args: []interface{}{owner, repo, req}})
	if m.CreateTagFunc != nil {
		return m.CreateTagFunc(ctx, owner, repo, req)
	}
	return "", nil
}

// CreateRef implements Client.CreateRef
func (m *MockClient) CreateRef(ctx context.Context, owner, repo, ref, sha string) error {
	m.Calls = append(m.Calls, MockCall{Method: "CreateRef", Args: []interface{}{owner, repo, ref, sha}})
	if m.CreateRefFunc != nil {
		return m.CreateRefFunc(ctx, owner, repo, ref, sha)
	}
	return nil
}

// Reset clears all recorded calls
func (m *MockClient) Reset() {
	m.Calls = make([]MockCall, 0)
}

// CallCount returns the number of times a method was called
func (m *MockClient) CallCount(method string) int {
	count := 0
	for _, call := range m.Calls {
		if call.Method == method {
			count++
		}
	}
	return count
}

// CallsFor returns the recorded calls of a method in invocation order
func (m *MockClient) CallsFor(method string) []MockCall {
	var calls []MockCall
	for _, call := range m.Calls {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

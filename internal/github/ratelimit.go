package github

import (
	"context"
	"math"
	"time"

	gherrors "github.com/Didstopia/ghtag/internal/errors"
	"github.com/Didstopia/ghtag/internal/model"
)

// RetryConfig configures retry behavior for API calls
type RetryConfig struct {
	// MaxRetries is the maximum number of retries for transient errors
	MaxRetries int

	// InitialDelay is the initial delay between retries
	InitialDelay time.Duration

	// MaxDelay is the maximum delay between retries
	MaxDelay time.Duration

	// Multiplier is the factor by which delay increases after each retry
	Multiplier float64
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:   3,
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
}

// RetryableClient wraps a Client with retry logic
type RetryableClient struct {
	client Client
	config *RetryConfig
}

// NewRetryableClient creates a new client with retry support
func NewRetryableClient(c Client, config *RetryConfig) *RetryableClient {
	if config == nil {
		config = DefaultRetryConfig()
	}
	return &RetryableClient{
		client: c,
		config: config,
	}
}

// ListTags implements Client.ListTags with retries
func (r *RetryableClient) ListTags(ctx context.Context, owner, repo string, opts *ListOptions) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := r.withRetry(ctx, func() error {
		var err error
		tags, err = r.client.ListTags(ctx, owner, repo, opts)
		return err
	})
	return tags, err
}

// CompareCommits implements Client.CompareCommits with retries
func (r *RetryableClient) CompareCommits(ctx context.Context, owner, repo, base, head string) ([]*model.Commit, error) {
	var commits []*model.Commit
	err := r.withRetry(ctx, func() error {
		var err error
		commits, err = r.client.CompareCommits(ctx, owner, repo, base, head)
		return err
	})
	return commits, err
}

// CreateTag implements Client.CreateTag with retries
func (r *RetryableClient) CreateTag(ctx context.Context, owner, repo string, req *CreateTagRequest) (string, error) {
	var sha string
	err := r.withRetry(ctx, func() error {
		var err error
		sha, err = r.client.CreateTag(ctx, owner, repo, req)
		return err
	})
	return sha, err
}

// CreateRef implements Client.CreateRef with retries
func (r *RetryableClient) CreateRef(ctx context.Context, owner, repo, ref, sha string) error {
	return r.withRetry(ctx, func() error {
		return r.client.CreateRef(ctx, owner, repo, ref, sha)
	})
}

// withRetry executes a function with exponential backoff retry logic
func (r *RetryableClient) withRetry(ctx context.Context, operation func() error) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(calculateBackoff(attempt-1, r.config)):
			}
		}

		lastErr = operation()
		if lastErr == nil {
			return nil
		}

		// Only retry on rate limit errors
		if !gherrors.IsRateLimited(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// calculateBackoff calculates the delay for a given retry attempt
func calculateBackoff(attempt int, config *RetryConfig) time.Duration {
	delay := float64(config.InitialDelay) * math.Pow(config.Multiplier, float64(attempt))
	if delay > float64(config.MaxDelay) {
		delay = float64(config.MaxDelay)
	}
	return time.Duration(delay)
}

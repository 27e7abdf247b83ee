// Package github provides interfaces and implementation for GitHub API operations
package github

import (
	"context"

	"github.com/Didstopia/ghtag/internal/model"
)

// Client defines the interface for GitHub API operations
type Client interface {
	// ListTags returns a single page of tags for a repository
	ListTags(ctx context.Context, owner, repo string, opts *ListOptions) ([]*model.Tag, error)

	// CompareCommits returns the commits between base and head (base...head)
	CompareCommits(ctx context.Context, owner, repo, base, head string) ([]*model.Commit, error)

	// CreateTag creates an annotated tag object and returns its SHA
	CreateTag(ctx context.Context, owner, repo string, req *CreateTagRequest) (string, error)

	// CreateRef creates a git reference pointing at sha
	CreateRef(ctx context.Context, owner, repo, ref, sha string) error
}

// ListOptions specifies the page to fetch for list operations
type ListOptions struct {
	// Page is the 1-based page number
	Page int

	// PerPage specifies the number of results per page (max 100)
	PerPage int
}

// DefaultListOptions returns default list options
func DefaultListOptions() *ListOptions {
	return &ListOptions{
		Page:    1,
		PerPage: 100,
	}
}

// CreateTagRequest describes an annotated tag object
type CreateTagRequest struct {
	Tag     string
	Message string
	// Object is the SHA of the tagged object
	Object string
	// Type is the type of the tagged object, usually "commit"
	Type string
}

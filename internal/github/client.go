package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	gh "github.com/google/go-github/v68/github"
	"github.com/gregjones/httpcache"
	"golang.org/x/oauth2"

	gherrors "github.com/Didstopia/ghtag/internal/errors"
	"github.com/Didstopia/ghtag/internal/model"
)

// DefaultHostname is the hostname of the public GitHub service
const DefaultHostname = "github.com"

// client implements the Client interface
type client struct {
	ghClient *gh.Client
}

type clientOptions struct {
	hostname  string
	httpCache bool
}

// Option configures the client built by NewClient
type Option func(*clientOptions)

// WithHostname targets a GitHub Enterprise Server instance
func WithHostname(hostname string) Option {
	return func(o *clientOptions) {
		o.hostname = hostname
	}
}

// WithHTTPCache enables an in-memory HTTP cache so repeated GET requests
// are revalidated with ETags instead of being fetched again
func WithHTTPCache() Option {
	return func(o *clientOptions) {
		o.httpCache = true
	}
}

// NewClient creates a new GitHub client with the provided token.
// An unusable hostname is an error; the client never falls back to github.com.
func NewClient(token string, opts ...Option) (Client, error) {
	o := &clientOptions{hostname: DefaultHostname}
	for _, opt := range opts {
		opt(o)
	}

	ctx := context.Background()
	if o.httpCache {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpcache.NewMemoryCacheTransport().Client())
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	ghClient := gh.NewClient(tc)
	if o.hostname != "" && o.hostname != DefaultHostname {
		baseURL := fmt.Sprintf("https://%s/api/v3/", o.hostname)
		uploadURL := fmt.Sprintf("https://%s/api/uploads/", o.hostname)
		enterprise, err := ghClient.WithEnterpriseURLs(baseURL, uploadURL)
		if err != nil {
			return nil, gherrors.NewValidationError("hostname", fmt.Sprintf("invalid GitHub hostname %q: %v", o.hostname, err))
		}
		ghClient = enterprise
	}

	return &client{
		ghClient: ghClient,
	}, nil
}

// ListTags returns one page of tags. The request is built by hand so the
// response decodes straight into model.Tag, node_id included.
func (c *client) ListTags(ctx context.Context, owner, repo string, opts *ListOptions) ([]*model.Tag, error) {
	if opts == nil {
		opts = DefaultListOptions()
	}

	u := fmt.Sprintf("repos/%v/%v/tags?per_page=%d&page=%d",
		url.PathEscape(owner), url.PathEscape(repo), opts.PerPage, opts.Page)
	req, err := c.ghClient.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	var tags []*model.Tag
	resp, err := c.ghClient.Do(ctx, req, &tags)
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}
	return tags, nil
}

// CompareCommits returns the commits of base...head in the order GitHub lists them
func (c *client) CompareCommits(ctx context.Context, owner, repo, base, head string) ([]*model.Commit, error) {
	comparison, resp, err := c.ghClient.Repositories.CompareCommits(ctx, owner, repo, base, head, nil)
	if err != nil {
		return nil, wrapAPIError(resp, err)
	}

	commits := make([]*model.Commit, 0, len(comparison.Commits))
	for _, rc := range comparison.Commits {
		commits = append(commits, &model.Commit{
			SHA: rc.GetSHA(),
			Commit: model.CommitDetail{
				Message: rc.GetCommit().GetMessage(),
			},
		})
	}
	return commits, nil
}

// CreateTag creates an annotated tag object
func (c *client) CreateTag(ctx context.Context, owner, repo string, req *CreateTagRequest) (string, error) {
	tag, resp, err := c.ghClient.Git.CreateTag(ctx, owner, repo, &gh.Tag{
		Tag:     gh.Ptr(req.Tag),
		Message: gh.Ptr(req.Message),
		Object: &gh.GitObject{
			SHA:  gh.Ptr(req.Object),
			Type: gh.Ptr(req.Type),
		},
	})
	if err != nil {
		return "", wrapAPIError(resp, err)
	}
	return tag.GetSHA(), nil
}

// CreateRef creates a reference such as refs/tags/v1.0.0
func (c *client) CreateRef(ctx context.Context, owner, repo, ref, sha string) error {
	_, resp, err := c.ghClient.Git.CreateRef(ctx, owner, repo, &gh.Reference{
		Ref: gh.Ptr(ref),
		Object: &gh.GitObject{
			SHA: gh.Ptr(sha),
		},
	})
	if err != nil {
		return wrapAPIError(resp, err)
	}
	return nil
}

// wrapAPIError converts a GitHub API response error to our error type.
// It checks go-github typed errors first for accurate rate-limit detection,
// then falls back to status code mapping. GitHub API error messages are
// preserved in the returned error for better diagnostics.
func wrapAPIError(resp *gh.Response, err error) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return fmt.Errorf("%w: %s", gherrors.ErrRateLimited, rateLimitErr.Message)
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: %s", gherrors.ErrRateLimited, abuseErr.Message)
	}

	apiMessage := ""
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		apiMessage = ghErr.Message
	}

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}

	var sentinel error
	switch statusCode {
	case http.StatusUnauthorized:
		sentinel = gherrors.ErrUnauthorized
	case http.StatusForbidden:
		// 403 without a typed rate-limit error is a permission denial
		sentinel = gherrors.ErrForbidden
	case http.StatusTooManyRequests:
		sentinel = gherrors.ErrRateLimited
	case http.StatusNotFound:
		sentinel = gherrors.ErrNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		sentinel = gherrors.ErrConflict
	default:
		msg := "API request failed"
		if apiMessage != "" {
			msg = apiMessage
		}
		return gherrors.NewAPIError(statusCode, msg, err)
	}

	if apiMessage != "" {
		return fmt.Errorf("%w: %s", sentinel, apiMessage)
	}
	return sentinel
}

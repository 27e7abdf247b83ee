package tagging

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Didstopia/ghtag/internal/github"
	"github.com/Didstopia/ghtag/internal/model"
)

// PageSize is the number of tags requested per page
const PageSize = 100

// Tagger runs tag operations against a single repository.
// Errors from the GitHub client are returned as is.
type Tagger struct {
	accessor *Accessor
	repo     model.RepoContext
	log      logrus.FieldLogger
}

// NewTagger creates a Tagger for repo. A nil logger discards debug output.
func NewTagger(accessor *Accessor, repo model.RepoContext, log logrus.FieldLogger) *Tagger {
	if log == nil {
		discard := logrus.New()
		discard.SetLevel(logrus.PanicLevel)
		log = discard
	}
	return &Tagger{
		accessor: accessor,
		repo:     repo,
		log:      log,
	}
}

// Repo returns the repository the tagger targets
func (t *Tagger) Repo() model.RepoContext {
	return t.repo
}

// ListTags returns the first page of tags, or every page when fetchAll is set.
// Paging stops at the first page holding fewer than PageSize tags.
func (t *Tagger) ListTags(ctx context.Context, fetchAll bool) ([]*model.Tag, error) {
	client, err := t.accessor.Client()
	if err != nil {
		return nil, err
	}

	var allTags []*model.Tag
	opts := &github.ListOptions{
		Page:    1,
		PerPage: PageSize,
	}

	for {
		tags, err := client.ListTags(ctx, t.repo.Owner, t.repo.Repo, opts)
		if err != nil {
			return nil, err
		}

		allTags = append(allTags, tags...)

		if len(tags) < PageSize || !fetchAll {
			break
		}
		opts.Page++
	}

	t.log.Debugf("Fetched %d tag(s) over %d page(s)", len(allTags), opts.Page)
	if allTags == nil {
		allTags = []*model.Tag{}
	}
	return allTags, nil
}

// CompareCommits returns the commits of baseRef...headRef exactly as GitHub
// lists them. Large comparisons truncated by GitHub are not paged.
func (t *Tagger) CompareCommits(ctx context.Context, baseRef, headRef string) ([]*model.Commit, error) {
	client, err := t.accessor.Client()
	if err != nil {
		return nil, err
	}
	t.log.Debugf("Comparing commits (%s...%s)", baseRef, headRef)

	return client.CompareCommits(ctx, t.repo.Owner, t.repo.Repo, baseRef, headRef)
}

// CreateTag creates refs/tags/<newTag>. With annotated set, a tag object is
// created first and the ref points at it; otherwise the ref points at sha.
// A ref failure after the tag object was created leaves the object in place.
func (t *Tagger) CreateTag(ctx context.Context, newTag string, annotated bool, sha string) error {
	client, err := t.accessor.Client()
	if err != nil {
		return err
	}

	target := sha
	if annotated {
		t.log.Debug("Creating annotated tag.")
		tagSHA, err := client.CreateTag(ctx, t.repo.Owner, t.repo.Repo, &github.CreateTagRequest{
			Tag:     newTag,
			Message: newTag,
			Object:  sha,
			Type:    "commit",
		})
		if err != nil {
			return err
		}
		target = tagSHA
	}

	t.log.Debug("Pushing new tag to the repo.")
	return client.CreateRef(ctx, t.repo.Owner, t.repo.Repo, TagRef(newTag), target)
}

// TagRef returns the fully qualified ref of a tag name
func TagRef(name string) string {
	return fmt.Sprintf("refs/tags/%s", name)
}

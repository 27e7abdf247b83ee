// Package util provides shared utility functions
package util

import (
	"fmt"
	"strings"

	gherrors "github.com/Didstopia/ghtag/internal/errors"
	"github.com/Didstopia/ghtag/internal/model"
)

const defaultHostname = "github.com"

// ParseRepository accepts owner/repo, an HTTPS clone URL or an SSH clone URL
// for hostname (github.com when empty) and returns the repository it names
func ParseRepository(repository, hostname string) (model.RepoContext, error) {
	if hostname == "" {
		hostname = defaultHostname
	}
	repository = strings.TrimSpace(repository)
	if repository == "" {
		return model.RepoContext{}, gherrors.ErrMissingRepository
	}

	sshPrefix := "git@" + hostname + ":"
	switch {
	case strings.HasPrefix(repository, sshPrefix):
		repository = strings.TrimPrefix(repository, sshPrefix)
	case strings.Contains(repository, "://"):
		idx := strings.Index(repository, "://"+hostname+"/")
		if idx == -1 {
			return model.RepoContext{}, gherrors.NewValidationError("repository",
				fmt.Sprintf("not a %s URL: %s", hostname, repository))
		}
		repository = repository[idx+len("://"+hostname+"/"):]
	}

	repository = strings.TrimSuffix(repository, "/")
	repository = strings.TrimSuffix(repository, ".git")
	return ValidateGitHubRepository(repository)
}

// ValidateGitHubRepository validates a repository in the short owner/repo form
func ValidateGitHubRepository(repository string) (model.RepoContext, error) {
	invalid := func(message string) (model.RepoContext, error) {
		return model.RepoContext{}, fmt.Errorf("%w: %s", gherrors.ErrInvalidRepository, message)
	}

	if strings.Contains(repository, "://") || strings.Contains(repository, defaultHostname+"/") {
		return invalid("use short format (owner/repo), not a URL")
	}

	owner, repo, found := strings.Cut(repository, "/")
	if !found || strings.Contains(repo, "/") {
		return invalid("got: " + repository)
	}
	if owner == "" || repo == "" {
		return invalid("owner and repo name cannot be empty")
	}

	if strings.ContainsAny(owner, "@#$%^&*() ") {
		return invalid("owner contains invalid characters")
	}
	if strings.ContainsAny(repo, "@#$%^&*() ") {
		return invalid("repo name contains invalid characters")
	}

	return model.RepoContext{Owner: owner, Repo: repo}, nil
}

// Package model holds the records ghtag reads from the GitHub API
package model

// Tag is a repository tag as listed by GET /repos/{owner}/{repo}/tags
type Tag struct {
	Name       string    `json:"name"`
	Commit     TagCommit `json:"commit"`
	ZipballURL string    `json:"zipball_url"`
	TarballURL string    `json:"tarball_url"`
	NodeID     string    `json:"node_id"`
}

// TagCommit is the commit a tag points at
type TagCommit struct {
	SHA string `json:"sha"`
	URL string `json:"url"`
}

// Commit is one entry of a compare result
type Commit struct {
	SHA    string       `json:"sha"`
	Commit CommitDetail `json:"commit"`
}

// CommitDetail carries the git-level commit data
type CommitDetail struct {
	Message string `json:"message"`
}

// RepoContext identifies the repository every request targets
type RepoContext struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

func (r RepoContext) String() string {
	return r.Owner + "/" + r.Repo
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Didstopia/ghtag/internal/model"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTags(w io.Writer, tags []*model.Tag) error {
	if len(tags) == 0 {
		fmt.Fprintln(w, "No tags found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCOMMIT")
	for _, tag := range tags {
		fmt.Fprintf(tw, "%s\t%s\n", tag.Name, shortSHA(tag.Commit.SHA))
	}
	return tw.Flush()
}

func printCommits(w io.Writer, commits []*model.Commit) error {
	if len(commits) == 0 {
		fmt.Fprintln(w, "No commits between refs.")
		return nil
	}

	for _, commit := range commits {
		fmt.Fprintf(w, "%s  %s\n", shortSHA(commit.SHA), subject(commit.Commit.Message))
	}
	return nil
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

// subject returns the first line of a commit message
func subject(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(line)
}

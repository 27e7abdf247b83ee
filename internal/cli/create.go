package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gherrors "github.com/Didstopia/ghtag/internal/errors"
)

var (
	annotated bool
	targetSHA string
)

var createCmd = &cobra.Command{
	Use:   "create <tag>",
	Short: "Create a tag",
	Long: `Create a tag pointing at a commit.

A lightweight tag is a ref pointing straight at the commit. With --annotated
a tag object is created first and the ref points at it.

The commit defaults to GITHUB_SHA when --sha is not given.

Examples:
  ghtag create v1.2.0 --sha 3f2a9c1
  ghtag create v1.2.0 --annotated
  ghtag create v1.2.0 --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().BoolVar(&annotated, "annotated", false, "Create an annotated tag object")
	createCmd.Flags().StringVar(&targetSHA, "sha", "", "Commit SHA to tag (default: GITHUB_SHA)")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	newTag := strings.TrimSpace(args[0])
	if newTag == "" {
		return gherrors.NewValidationError("tag", "tag name cannot be empty")
	}
	if targetSHA == "" {
		return gherrors.ErrMissingSHA
	}

	tagger, err := newTagger()
	if err != nil {
		return err
	}

	kind := "lightweight"
	if annotated {
		kind = "annotated"
	}

	if dryRun {
		log.Infof("Dry run enabled, would create %s tag %s at %s in %s", kind, newTag, targetSHA, tagger.Repo())
		return nil
	}

	if err := tagger.CreateTag(cmd.Context(), newTag, annotated, targetSHA); err != nil {
		if gherrors.IsConflict(err) {
			return fmt.Errorf("tag %s may already exist: %w", newTag, err)
		}
		return fmt.Errorf("failed to create tag %s: %w", newTag, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s tag %s at %s\n", kind, newTag, shortSHA(targetSHA))
	return nil
}

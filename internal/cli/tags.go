package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gherrors "github.com/Didstopia/ghtag/internal/errors"
	"github.com/Didstopia/ghtag/internal/tagging"
)

var (
	fetchAll          bool
	jsonOutput        bool
	versionPrefix     string
	includePrerelease bool
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List repository tags",
	Long: `List the tags of a repository in the order GitHub returns them.

Only the first 100 tags are listed unless --fetch-all is given.

Examples:
  ghtag tags --repository owner/repo
  ghtag tags --repository owner/repo --fetch-all --json`,
	Args: cobra.NoArgs,
	RunE: runTags,
}

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the highest semantic version tag",
	Long: `Print the tag with the highest semantic version.

Tags that do not start with --prefix or are not valid semver are ignored.

Examples:
  ghtag latest --repository owner/repo
  ghtag latest --repository owner/repo --prefix release- --prerelease`,
	Args: cobra.NoArgs,
	RunE: runLatest,
}

func init() {
	for _, cmd := range []*cobra.Command{tagsCmd, latestCmd} {
		cmd.Flags().BoolVarP(&fetchAll, "fetch-all", "a", false, "Fetch every page of tags instead of the first 100")
		cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")
	}

	latestCmd.Flags().StringVar(&versionPrefix, "prefix", tagging.DefaultPrefix, "Prefix stripped from tag names before parsing")
	latestCmd.Flags().BoolVar(&includePrerelease, "prerelease", false, "Consider pre-release versions")

	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(latestCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	tagger, err := newTagger()
	if err != nil {
		return err
	}

	tags, err := tagger.ListTags(cmd.Context(), fetchAll)
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	log.Debugf("Found %d tag(s) in %s", len(tags), tagger.Repo())

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), tags)
	}
	return printTags(cmd.OutOrStdout(), tags)
}

func runLatest(cmd *cobra.Command, args []string) error {
	tagger, err := newTagger()
	if err != nil {
		return err
	}

	tags, err := tagger.ListTags(cmd.Context(), fetchAll)
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	tag, version, found := tagging.LatestVersion(tags, versionPrefix, includePrerelease)
	if !found {
		return fmt.Errorf("%w: no semver tag with prefix %q in %s", gherrors.ErrNotFound, versionPrefix, tagger.Repo())
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), map[string]string{
			"tag":     tag.Name,
			"version": version.String(),
			"sha":     tag.Commit.SHA,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), tag.Name)
	return nil
}

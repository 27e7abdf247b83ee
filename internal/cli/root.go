// Package cli provides the command-line interface for ghtag
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Didstopia/ghtag/internal/auth"
	"github.com/Didstopia/ghtag/internal/config"
	"github.com/Didstopia/ghtag/internal/github"
	"github.com/Didstopia/ghtag/internal/tagging"
	"github.com/Didstopia/ghtag/pkg/util"
)

// Version information (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	verbose    bool
	dryRun     bool
	token      string
	hostname   string
	repository string
	maxRetries int
	httpCache  bool
)

// Global logger
var log = logrus.New()

// Config loader
var configLoader *config.Loader

// accessor owns the one GitHub client of the process
var accessor *tagging.Accessor

// Root command
var rootCmd = &cobra.Command{
	Use:   "ghtag",
	Short: "Discover and create version tags on GitHub",
	Long: `ghtag lists the tags of a GitHub repository, compares commits between
two refs and creates new lightweight or annotated tags.

Inside GitHub Actions the repository, commit and token are read from
GITHUB_REPOSITORY, GITHUB_SHA and INPUT_GITHUB_TOKEN/GITHUB_TOKEN.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Inject config file and environment values
		if err := configLoader.InjectToCommand(cmd); err != nil {
			return err
		}
		configureLogger(verbose)
		return nil
	},
}

func init() {
	configLoader = config.NewLoader()
	accessor = tagging.NewAccessor(resolveToken, buildClient)
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "D", false, "Simulate running without making changes")
	rootCmd.PersistentFlags().StringVarP(&token, "token", "t", "", "GitHub API token")
	rootCmd.PersistentFlags().StringVar(&hostname, "hostname", auth.DefaultHostname, "GitHub hostname (for GitHub Enterprise)")
	rootCmd.PersistentFlags().StringVarP(&repository, "repository", "r", "", "GitHub Repository (format: owner/repo)")
	rootCmd.PersistentFlags().IntVar(&maxRetries, "max-retries", 0, "Retry rate limited requests up to N times")
	rootCmd.PersistentFlags().BoolVar(&httpCache, "http-cache", false, "Cache GET responses in memory and revalidate with ETags")
}

func initConfig() {
	if err := configLoader.Initialize(); err != nil {
		// Config initialization failure is not fatal for all commands
		log.Warnf("Config initialization: %v", err)
	}

	// Bind flags to viper
	for _, name := range []string{"verbose", "dry-run", "token", "hostname", "repository", "max-retries", "http-cache"} {
		if err := configLoader.BindFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			log.Debugf("Binding flag %s: %v", name, err)
		}
	}
}

// configureLogger sets the log level and disables colors outside a terminal
func configureLogger(verbose bool) {
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	interactive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		interactive = false
	}
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !interactive,
		DisableTimestamp: !interactive,
	})
}

// resolveToken is read by the accessor when the client is first built
func resolveToken() string {
	result, err := auth.GetToken(token, hostname, auth.NewStorage())
	if err != nil || result.Token == "" {
		log.Warn("No GitHub token configured, requests will be unauthenticated")
		return ""
	}
	log.Debugf("Using token %s from %s", auth.MaskToken(result.Token), auth.FormatTokenSource(result.Source))
	return result.Token
}

// buildClient creates the GitHub client the accessor hands out
func buildClient(token string) (github.Client, error) {
	opts := []github.Option{github.WithHostname(hostname)}
	if httpCache {
		opts = append(opts, github.WithHTTPCache())
	}

	client, err := github.NewClient(token, opts...)
	if err != nil {
		return nil, err
	}
	if maxRetries > 0 {
		retry := github.DefaultRetryConfig()
		retry.MaxRetries = maxRetries
		log.Debugf("Retrying rate limited requests up to %d time(s)", maxRetries)
		return github.NewRetryableClient(client, retry), nil
	}
	return client, nil
}

// newTagger returns a tagger for the configured repository
func newTagger() (*tagging.Tagger, error) {
	repo, err := util.ParseRepository(repository, hostname)
	if err != nil {
		return nil, err
	}
	log.Debugf("Using repository %s", repo)
	return tagging.NewTagger(accessor, repo, log), nil
}

// Execute runs the root command
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Warn("Received interrupt signal, shutting down...")
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

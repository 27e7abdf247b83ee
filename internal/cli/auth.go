package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Didstopia/ghtag/internal/auth"
	gherrors "github.com/Didstopia/ghtag/internal/errors"
)

// authCmd is the parent command for auth subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the GitHub token",
	Long:  `Show where the GitHub token comes from and manage the token stored in the system keychain.`,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which token would be used",
	Args:  cobra.NoArgs,
	RunE:  runAuthStatus,
}

var authStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Store a token in the system keychain",
	Long: `Store a token in the system keychain. The token is read from --token or,
when that is empty, from the first line of standard input.

Examples:
  echo "$TOKEN" | ghtag auth store
  ghtag auth store --hostname github.mycompany.com --token <token>`,
	Args: cobra.NoArgs,
	RunE: runAuthStore,
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the token stored in the system keychain",
	Args:  cobra.NoArgs,
	RunE:  runAuthClear,
}

func init() {
	authCmd.AddCommand(authStatusCmd, authStoreCmd, authClearCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	storage := auth.NewStorage()
	result, err := auth.GetToken(token, hostname, storage)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Token == "" {
		fmt.Fprintf(out, "No token configured for %s\n", result.Hostname)
		fmt.Fprintf(out, "  Set %s, pass --token or run: ghtag auth store\n", auth.EnvGitHubToken)
		return nil
	}

	fmt.Fprintf(out, "Token for %s: %s\n", result.Hostname, auth.MaskToken(result.Token))
	fmt.Fprintf(out, "  Source: %s\n", auth.FormatTokenSource(result.Source))
	if result.Source == auth.TokenSourceKeychain {
		fmt.Fprintf(out, "  Stored in: %s\n", storage.Location())
	}
	return nil
}

func runAuthStore(cmd *cobra.Command, args []string) error {
	value := token
	if value == "" {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		if scanner.Scan() {
			value = strings.TrimSpace(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}
	if value == "" {
		return gherrors.ErrMissingToken
	}

	storage := auth.NewStorage()
	if err := storage.SetToken(hostname, value); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stored token %s for %s in %s\n", auth.MaskToken(value), hostname, storage.Location())
	return nil
}

func runAuthClear(cmd *cobra.Command, args []string) error {
	if err := auth.NewStorage().DeleteToken(hostname); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed stored token for %s\n", hostname)
	return nil
}

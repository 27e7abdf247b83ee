// Package auth resolves the GitHub token ghtag authenticates with
package auth

import (
	"fmt"
	"os"

	"github.com/Didstopia/ghtag/internal/github"
)

const (
	// DefaultHostname is the default GitHub hostname
	DefaultHostname = github.DefaultHostname

	// EnvActionsToken is where GitHub Actions exposes the github_token input
	EnvActionsToken = "INPUT_GITHUB_TOKEN"

	// EnvGitHubToken is the environment variable for GitHub token
	EnvGitHubToken = "GITHUB_TOKEN"
)

// TokenSource represents where the token was obtained from
type TokenSource string

const (
	TokenSourceFlag     TokenSource = "flag"
	TokenSourceInput    TokenSource = "action-input"
	TokenSourceEnv      TokenSource = "environment"
	TokenSourceKeychain TokenSource = "keychain"
	TokenSourceNone     TokenSource = "none"
)

// TokenResult contains the resolved token and its source
type TokenResult struct {
	Token    string
	Source   TokenSource
	Hostname string
}

// GetToken resolves the GitHub token using the following priority:
// 1. Explicit token (from --token flag or config file)
// 2. INPUT_GITHUB_TOKEN, set by GitHub Actions for the github_token input
// 3. GITHUB_TOKEN environment variable
// 4. Token stored in the system keychain
//
// Finding no token is not an error. Requests made without one fail later.
func GetToken(explicitToken string, hostname string, storage *Storage) (*TokenResult, error) {
	if hostname == "" {
		hostname = DefaultHostname
	}

	result := func(token string, source TokenSource) *TokenResult {
		return &TokenResult{Token: token, Source: source, Hostname: hostname}
	}

	if explicitToken != "" {
		return result(explicitToken, TokenSourceFlag), nil
	}

	if inputToken := os.Getenv(EnvActionsToken); inputToken != "" {
		return result(inputToken, TokenSourceInput), nil
	}

	if envToken := os.Getenv(EnvGitHubToken); envToken != "" {
		return result(envToken, TokenSourceEnv), nil
	}

	if storage != nil {
		if storedToken, err := storage.GetToken(hostname); err == nil && storedToken != "" {
			return result(storedToken, TokenSourceKeychain), nil
		}
	}

	return result("", TokenSourceNone), nil
}

// FormatTokenSource returns a human-readable description of the token source
func FormatTokenSource(source TokenSource) string {
	switch source {
	case TokenSourceFlag:
		return "command line flag or config file"
	case TokenSourceInput:
		return "action input (INPUT_GITHUB_TOKEN)"
	case TokenSourceEnv:
		return fmt.Sprintf("environment variable (%s)", EnvGitHubToken)
	case TokenSourceKeychain:
		return "keychain"
	default:
		return "unknown"
	}
}

// MaskToken returns a masked version of the token for display
func MaskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "****" + token[len(token)-4:]
}

package auth

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/zalando/go-keyring"
)

// KeyringServiceName is the service name used in the system keychain
const KeyringServiceName = "ghtag"

// ErrNoStoredToken is returned when the keychain holds no token for a hostname
var ErrNoStoredToken = errors.New("no token stored in keychain")

// Storage keeps tokens in the system keychain, keyed by hostname
type Storage struct {
	service string
}

// NewStorage creates a new Storage instance
func NewStorage() *Storage {
	return &Storage{service: KeyringServiceName}
}

// GetToken retrieves the stored token for a hostname
func (s *Storage) GetToken(hostname string) (string, error) {
	if hostname == "" {
		hostname = DefaultHostname
	}

	token, err := keyring.Get(s.service, hostname)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoStoredToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to read keychain: %w", err)
	}
	return token, nil
}

// SetToken stores a token for a hostname
func (s *Storage) SetToken(hostname, token string) error {
	if hostname == "" {
		hostname = DefaultHostname
	}
	if err := keyring.Set(s.service, hostname, token); err != nil {
		return fmt.Errorf("failed to write keychain: %w", err)
	}
	return nil
}

// DeleteToken removes the stored token for a hostname
func (s *Storage) DeleteToken(hostname string) error {
	if hostname == "" {
		hostname = DefaultHostname
	}

	err := keyring.Delete(s.service, hostname)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete token from keychain: %w", err)
	}
	return nil
}

// Location returns a description of where tokens are stored
func (s *Storage) Location() string {
	switch runtime.GOOS {
	case "darwin":
		return "macOS Keychain"
	case "linux":
		return "Secret Service (GNOME Keyring/KWallet)"
	case "windows":
		return "Windows Credential Manager"
	default:
		return "System Keychain"
	}
}

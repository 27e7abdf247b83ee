// Package tagging lists, compares and creates version tags for one repository
package tagging

import (
	"sync"

	"github.com/Didstopia/ghtag/internal/github"
)

// TokenFunc returns the API token. It is read once, when the client is built.
type TokenFunc func() string

// Factory builds a GitHub client bound to token
type Factory func(token string) (github.Client, error)

// Accessor builds the GitHub client on first use and hands out the same
// instance for the rest of the process. The client is never rebuilt, even
// if the token turns out to be invalid. A build error is kept and returned
// on every call.
type Accessor struct {
	token   TokenFunc
	factory Factory

	once   sync.Once
	client github.Client
	err    error
}

// NewAccessor creates an accessor that builds its client with factory
func NewAccessor(token TokenFunc, factory Factory) *Accessor {
	return &Accessor{
		token:   token,
		factory: factory,
	}
}

// Client returns the shared client, building it on the first call
func (a *Accessor) Client() (github.Client, error) {
	a.once.Do(func() {
		token := ""
		if a.token != nil {
			token = a.token()
		}
		a.client, a.err = a.factory(token)
	})
	return a.client, a.err
}

// StaticAccessor wraps an already built client
func StaticAccessor(c github.Client) *Accessor {
	return NewAccessor(nil, func(string) (github.Client, error) { return c, nil })
}

// Package push abstracts the push-notification registration
// collaborator. Its absence must never break anything: when no token
// can be produced, the client simply stays on the fixed-interval poll.
package push

import "context"

// TokenSource produces a device push token, if the platform has one.
// An empty token with a nil error means push is unavailable here.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Disabled is the no-push fallback.
type Disabled struct{}

func (Disabled) Token(context.Context) (string, error) { return "", nil }

// Static returns a fixed token; used by tests and by platforms that
// obtain the token out of band.
type Static string

func (s Static) Token(context.Context) (string, error) { return string(s), nil }

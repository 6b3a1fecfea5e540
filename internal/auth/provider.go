package auth

import "context"

// Provider is a federated identity source ("sign in with ...").
// Implementations block until the user completes or abandons the
// flow; abandonment is reported as ErrCanceled.
type Provider interface {
	Name() string
	// Authenticate returns the provider-asserted email and display name.
	Authenticate(ctx context.Context) (email, displayName string, err error)
}

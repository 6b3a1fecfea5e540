package service

import (
	"fmt"

	"github.com/alexanderramin/lancer/internal/auth"
)

// requireOwner resolves the signed-in owner before any store access.
// Mutations on a signed-out session fail here and never reach the
// repository.
func requireOwner(session *auth.Session) (string, error) {
	identity := session.CurrentIdentity()
	if identity == nil {
		return "", fmt.Errorf("resolving owner: %w", auth.ErrNotAuthenticated)
	}
	return identity.ID, nil
}

package domain

// Identity is the authenticated principal that owns records. It is a
// read-only reference held for the lifetime of a session; the account
// itself lives in the auth backend.
type Identity struct {
	ID          string
	DisplayName string
	Email       string
}

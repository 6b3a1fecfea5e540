package domain

import (
	"fmt"
	"strings"
	"time"
)

type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Country   string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields required before a client can be stored.
func (c *Client) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("client name is required")
	}
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return fmt.Errorf("client email %q is not a valid address", c.Email)
	}
	return nil
}

// DisplayID returns a short identifier for display: the ID truncated to
// 8 characters.
func (c *Client) DisplayID() string {
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}

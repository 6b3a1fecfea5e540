// Package filter narrows in-memory record lists for display. It never
// touches storage: inputs are the mirror's current snapshots, outputs
// are fresh slices preserving the input order.
package filter

import (
	"strings"

	"github.com/alexanderramin/lancer/internal/domain"
)

// Projects returns the projects matching every populated condition in
// c. Search is a case-insensitive substring match over title and
// client name; status matches exactly; deadline and payment ranges are
// inclusive. The input is never mutated.
func Projects(projects []*domain.Project, c Criteria) []*domain.Project {
	out := make([]*domain.Project, 0, len(projects))
	needle := strings.ToLower(strings.TrimSpace(c.Search))

	for _, p := range projects {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Client), needle) {
			continue
		}
		if c.Status != "" && string(p.Status) != c.Status {
			continue
		}
		if c.Dates.Start != nil && p.Deadline.Before(*c.Dates.Start) {
			continue
		}
		if c.Dates.End != nil && p.Deadline.After(*c.Dates.End) {
			continue
		}
		if p.Payment < c.Amount.Min || p.Payment > c.Amount.Max {
			continue
		}
		out = append(out, p)
	}

	return out
}

// Clients returns the clients whose name or email contains the search
// term. Clients carry no status, dates or amounts, so the remaining
// criteria do not apply.
func Clients(clients []*domain.Client, c Criteria) []*domain.Client {
	needle := strings.ToLower(strings.TrimSpace(c.Search))
	if needle == "" {
		out := make([]*domain.Client, len(clients))
		copy(out, clients)
		return out
	}

	out := make([]*domain.Client, 0, len(clients))
	for _, cl := range clients {
		if strings.Contains(strings.ToLower(cl.Name), needle) ||
			strings.Contains(strings.ToLower(cl.Email), needle) {
			out = append(out, cl)
		}
	}
	return out
}

package stats

import (
	"time"

	"github.com/alexanderramin/lancer/internal/domain"
)

// DashboardStats is derived, never persisted: a pure function of the
// current project/client/payment lists, recomputed on every change.
type DashboardStats struct {
	TotalProjects     int
	OngoingProjects   int
	CompletedProjects int
	TotalEarnings     float64
	PendingPayments   float64
	TotalClients      int
	OverdueProjects   int
	OverduePayments   int
}

// Compute derives dashboard statistics from the given lists at the
// given instant. Inputs are never mutated; empty lists yield all zeros.
//
// PendingPayments sums the payment field of ongoing projects, not
// Payment entities. Dashboards depend on that exact meaning, so it is
// kept even though the name suggests otherwise.
func Compute(projects []*domain.Project, clients []*domain.Client, payments []*domain.Payment, now time.Time) DashboardStats {
	var s DashboardStats

	s.TotalProjects = len(projects)
	s.TotalClients = len(clients)

	for _, p := range projects {
		switch p.Status {
		case domain.ProjectOngoing:
			s.OngoingProjects++
			s.PendingPayments += p.Payment
		case domain.ProjectCompleted:
			s.CompletedProjects++
			s.TotalEarnings += p.Payment
		}
		if p.Overdue(now) {
			s.OverdueProjects++
		}
	}

	for _, p := range payments {
		if p.Overdue(now) {
			s.OverduePayments++
		}
	}

	return s
}

// Breakdown summarizes earnings across project statuses.
type Breakdown struct {
	Total     float64 // earned: completed projects
	Pending   float64 // outstanding: ongoing projects
	Potential float64 // Total + Pending
}

// EarningsBreakdown derives the earned/outstanding/potential split from
// the project list.
func EarningsBreakdown(projects []*domain.Project) Breakdown {
	var b Breakdown
	for _, p := range projects {
		switch p.Status {
		case domain.ProjectCompleted:
			b.Total += p.Payment
		case domain.ProjectOngoing:
			b.Pending += p.Payment
		}
	}
	b.Potential = b.Total + b.Pending
	return b
}

// MonthPoint is one bucket of the monthly earnings series.
type MonthPoint struct {
	Month    time.Month
	Year     int
	Earnings float64
}

// MonthlyEarnings buckets completed-project payments by creation month
// for the trailing n months (oldest first, ending with the current
// month).
func MonthlyEarnings(projects []*domain.Project, now time.Time, n int) []MonthPoint {
	points := make([]MonthPoint, 0, n)

	// Anchor on the first of the month so stepping back from a day-31
	// "now" cannot overflow into the wrong month.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for i := n - 1; i >= 0; i-- {
		ref := anchor.AddDate(0, -i, 0)
		point := MonthPoint{Month: ref.Month(), Year: ref.Year()}

		for _, p := range projects {
			if p.Status != domain.ProjectCompleted {
				continue
			}
			if p.CreatedAt.Month() == point.Month && p.CreatedAt.Year() == point.Year {
				point.Earnings += p.Payment
			}
		}

		points = append(points, point)
	}

	return points
}

package stats

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/lancer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestCompute_EmptyListsYieldZeros(t *testing.T) {
	s := Compute(nil, nil, nil, testNow)
	assert.Equal(t, DashboardStats{}, s)
}

func TestCompute_EarningsSplit(t *testing.T) {
	projects := []*domain.Project{
		{Status: domain.ProjectCompleted, Payment: 500},
		{Status: domain.ProjectOngoing, Payment: 300},
	}

	s := Compute(projects, nil, nil, testNow)
	assert.Equal(t, 500.0, s.TotalEarnings)
	assert.Equal(t, 300.0, s.PendingPayments)
	assert.Equal(t, 2, s.TotalProjects)
	assert.Equal(t, 1, s.OngoingProjects)
	assert.Equal(t, 1, s.CompletedProjects)
}

func TestCompute_OverdueProject(t *testing.T) {
	projects := []*domain.Project{
		{
			Status:   domain.ProjectOngoing,
			Deadline: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	s := Compute(projects, nil, nil, testNow)
	assert.Equal(t, 1, s.OverdueProjects)
}

func TestCompute_NoDeadlineNeverOverdue(t *testing.T) {
	projects := []*domain.Project{
		{Status: domain.ProjectOngoing, Payment: 300},
	}

	s := Compute(projects, nil, nil, testNow)
	assert.Zero(t, s.OverdueProjects, "a deadline was never set")
	assert.Equal(t, 300.0, s.PendingPayments)
}

func TestCompute_OverduePaymentsCountPendingOnly(t *testing.T) {
	due := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	payments := []*domain.Payment{
		{Status: domain.PaymentPending, DueDate: due},
		{Status: domain.PaymentPaid, DueDate: due},
		{Status: domain.PaymentPartial, DueDate: due},
		{Status: domain.PaymentPending, DueDate: testNow.AddDate(0, 1, 0)},
	}

	s := Compute(nil, nil, payments, testNow)
	assert.Equal(t, 1, s.OverduePayments)
}

// Totals must match an independent reduction regardless of list order.
func TestCompute_MatchesReferenceSums(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var projects []*domain.Project
	for i := 0; i < 200; i++ {
		status := domain.ProjectOngoing
		if rng.Intn(2) == 0 {
			status = domain.ProjectCompleted
		}
		projects = append(projects, &domain.Project{
			Status:  status,
			Payment: float64(rng.Intn(10000)),
		})
	}

	var wantEarnings, wantPending float64
	for _, p := range projects {
		if p.Status == domain.ProjectCompleted {
			wantEarnings += p.Payment
		} else {
			wantPending += p.Payment
		}
	}

	s := Compute(projects, nil, nil, testNow)
	assert.Equal(t, wantEarnings, s.TotalEarnings)
	assert.Equal(t, wantPending, s.PendingPayments)

	// Shuffling the input must not change the totals.
	rng.Shuffle(len(projects), func(i, j int) {
		projects[i], projects[j] = projects[j], projects[i]
	})
	shuffled := Compute(projects, nil, nil, testNow)
	assert.Equal(t, s.TotalEarnings, shuffled.TotalEarnings)
	assert.Equal(t, s.PendingPayments, shuffled.PendingPayments)
}

func TestCompute_DoesNotMutateInputs(t *testing.T) {
	p := &domain.Project{Status: domain.ProjectCompleted, Payment: 100}
	projects := []*domain.Project{p}

	first := Compute(projects, nil, nil, testNow)
	second := Compute(projects, nil, nil, testNow)
	assert.Equal(t, first, second, "repeat calls see identical inputs")
	assert.Equal(t, 100.0, p.Payment)
}

func TestEarningsBreakdown(t *testing.T) {
	projects := []*domain.Project{
		{Status: domain.ProjectCompleted, Payment: 800},
		{Status: domain.ProjectOngoing, Payment: 200},
		{Status: domain.ProjectOngoing, Payment: 50},
	}

	b := EarningsBreakdown(projects)
	assert.Equal(t, 800.0, b.Total)
	assert.Equal(t, 250.0, b.Pending)
	assert.Equal(t, 1050.0, b.Potential)
}

func TestMonthlyEarnings(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	projects := []*domain.Project{
		{Status: domain.ProjectCompleted, Payment: 100, CreatedAt: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
		{Status: domain.ProjectCompleted, Payment: 250, CreatedAt: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
		{Status: domain.ProjectOngoing, Payment: 999, CreatedAt: time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)},
		{Status: domain.ProjectCompleted, Payment: 400, CreatedAt: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)},
	}

	points := MonthlyEarnings(projects, now, 3)
	require.Len(t, points, 3)

	assert.Equal(t, time.January, points[0].Month)
	assert.Equal(t, 0.0, points[0].Earnings)

	assert.Equal(t, time.February, points[1].Month)
	assert.Equal(t, 250.0, points[1].Earnings)

	assert.Equal(t, time.March, points[2].Month)
	assert.Equal(t, 100.0, points[2].Earnings, "ongoing projects do not count")
}

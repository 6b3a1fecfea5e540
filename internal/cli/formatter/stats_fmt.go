package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lancer/internal/stats"
)

// FormatDashboard renders the dashboard statistics card.
func FormatDashboard(s stats.DashboardStats) string {
	var b strings.Builder

	line := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(label), value))
	}

	line("PROJECTS ", fmt.Sprintf("%s total  %s ongoing  %s completed",
		Bold(fmt.Sprint(s.TotalProjects)),
		StyleGreen.Render(fmt.Sprint(s.OngoingProjects)),
		StyleDim.Render(fmt.Sprint(s.CompletedProjects))))
	line("CLIENTS  ", Bold(fmt.Sprint(s.TotalClients)))
	line("EARNED   ", StyleGreen.Render(Currency(s.TotalEarnings)))
	line("PENDING  ", StyleYellow.Render(Currency(s.PendingPayments)))

	overdueProjects := StyleGreen.Render("0")
	if s.OverdueProjects > 0 {
		overdueProjects = StyleRed.Render(fmt.Sprint(s.OverdueProjects))
	}
	overduePayments := StyleGreen.Render("0")
	if s.OverduePayments > 0 {
		overduePayments = StyleRed.Render(fmt.Sprint(s.OverduePayments))
	}
	line("OVERDUE  ", fmt.Sprintf("%s projects  %s payments", overdueProjects, overduePayments))

	return RenderBox("Dashboard", b.String())
}

// FormatMonthlyEarnings renders the trailing monthly earnings series as
// a simple horizontal bar chart.
func FormatMonthlyEarnings(points []stats.MonthPoint) string {
	if len(points) == 0 {
		return ""
	}

	var max float64
	for _, p := range points {
		if p.Earnings > max {
			max = p.Earnings
		}
	}

	const barWidth = 24
	var b strings.Builder
	for _, p := range points {
		label := fmt.Sprintf("%s %d", p.Month.String()[:3], p.Year)
		filled := 0
		if max > 0 {
			filled = int(p.Earnings / max * barWidth)
		}
		bar := StyleGreen.Render(strings.Repeat("█", filled)) +
			StyleDim.Render(strings.Repeat("░", barWidth-filled))
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			StyleDim.Render(label), bar, StyleFg.Render(Currency(p.Earnings))))
	}

	return RenderBox("Earnings", b.String())
}

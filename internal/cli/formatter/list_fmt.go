package formatter

import (
	"strings"

	"github.com/alexanderramin/lancer/internal/domain"
)

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "TITLE", "CLIENT", "STATUS", "PAYMENT", "DEADLINE"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		client := p.Client
		if strings.TrimSpace(client) == "" {
			client = Dim("--")
		}

		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Title),
			client,
			ProjectStatusPill(p.Status),
			StyleFg.Render(Currency(p.Payment)),
			RelativeDateStyled(p.Deadline),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Projects", table)
}

// FormatClientList renders a styled client list inside a bordered box.
func FormatClientList(clients []*domain.Client) string {
	headers := []string{"ID", "NAME", "EMAIL", "PHONE", "COUNTRY"}
	rows := make([][]string, 0, len(clients))

	for _, c := range clients {
		email := c.Email
		if email == "" {
			email = Dim("--")
		}
		phone := c.Phone
		if phone == "" {
			phone = Dim("--")
		}
		country := c.Country
		if country == "" {
			country = Dim("--")
		}

		rows = append(rows, []string{
			TruncID(c.ID),
			Bold(c.Name),
			email,
			phone,
			country,
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Clients", table)
}

// FormatPaymentList renders a styled payment list inside a bordered box.
func FormatPaymentList(payments []*domain.Payment) string {
	headers := []string{"ID", "PROJECT", "AMOUNT", "STATUS", "DUE", "PAID"}
	rows := make([][]string, 0, len(payments))

	for _, p := range payments {
		paid := Dim("--")
		if p.PaidDate != nil {
			paid = StyleFg.Render(HumanDate(*p.PaidDate))
		}

		rows = append(rows, []string{
			TruncID(p.ID),
			TruncID(p.ProjectID),
			StyleFg.Render(Currency(p.Amount)),
			PaymentStatusPill(p.Status),
			RelativeDateStyled(p.DueDate),
			paid,
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Payments", table)
}

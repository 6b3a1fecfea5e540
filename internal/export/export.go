// Package export renders record lists to portable documents. Two
// formats exist: CSV with a header row and every value double-quoted,
// and a text format of one indented JSON block per record.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/lancer/internal/domain"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatText Format = "text"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown export format %q (csv|text)", s)
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatCSV {
		return "csv"
	}
	return "txt"
}

const dateLayout = "2006-01-02"

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// csvField wraps every value in double quotes, doubling embedded
// quotes. Quoting is unconditional so the column count is unambiguous
// even for empty values.
func csvField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func csvDocument(headers []string, rows [][]string) string {
	var b strings.Builder
	writeCSVRow(&b, headers)
	for _, row := range rows {
		b.WriteByte('\n')
		writeCSVRow(&b, row)
	}
	return b.String()
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(csvField(f))
	}
}

// textDocument renders one indented JSON block per record, separated
// by blank lines.
func textDocument(records []any) (string, error) {
	blocks := make([]string, 0, len(records))
	for _, r := range records {
		buf, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("rendering record: %w", err)
		}
		blocks = append(blocks, string(buf))
	}
	return strings.Join(blocks, "\n\n"), nil
}

type projectRecord struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Client      string  `json:"client"`
	Deadline    string  `json:"deadline"`
	Payment     float64 `json:"payment"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"createdAt"`
}

func newProjectRecord(p *domain.Project) projectRecord {
	return projectRecord{
		ID:          p.ID,
		Title:       p.Title,
		Client:      p.Client,
		Deadline:    p.Deadline.Format(dateLayout),
		Payment:     p.Payment,
		Status:      string(p.Status),
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

// Projects renders the project list in the given format.
func Projects(projects []*domain.Project, f Format) (string, error) {
	switch f {
	case FormatCSV:
		headers := []string{"id", "title", "client", "deadline", "payment", "status", "description", "createdAt"}
		rows := make([][]string, 0, len(projects))
		for _, p := range projects {
			r := newProjectRecord(p)
			rows = append(rows, []string{r.ID, r.Title, r.Client, r.Deadline, money(p.Payment), r.Status, r.Description, r.CreatedAt})
		}
		return csvDocument(headers, rows), nil
	case FormatText:
		records := make([]any, 0, len(projects))
		for _, p := range projects {
			records = append(records, newProjectRecord(p))
		}
		return textDocument(records)
	default:
		return "", fmt.Errorf("unknown export format %q", f)
	}
}

type clientRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	CreatedAt string `json:"createdAt"`
}

func newClientRecord(c *domain.Client) clientRecord {
	return clientRecord{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Country:   c.Country,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// Clients renders the client list in the given format.
func Clients(clients []*domain.Client, f Format) (string, error) {
	switch f {
	case FormatCSV:
		headers := []string{"id", "name", "email", "phone", "country", "createdAt"}
		rows := make([][]string, 0, len(clients))
		for _, c := range clients {
			r := newClientRecord(c)
			rows = append(rows, []string{r.ID, r.Name, r.Email, r.Phone, r.Country, r.CreatedAt})
		}
		return csvDocument(headers, rows), nil
	case FormatText:
		records := make([]any, 0, len(clients))
		for _, c := range clients {
			records = append(records, newClientRecord(c))
		}
		return textDocument(records)
	default:
		return "", fmt.Errorf("unknown export format %q", f)
	}
}

type paymentRecord struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"projectId"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	DueDate     string  `json:"dueDate"`
	PaidDate    string  `json:"paidDate,omitempty"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"createdAt"`
}

func newPaymentRecord(p *domain.Payment) paymentRecord {
	r := paymentRecord{
		ID:          p.ID,
		ProjectID:   p.ProjectID,
		Amount:      p.Amount,
		Status:      string(p.Status),
		DueDate:     p.DueDate.Format(dateLayout),
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
	if p.PaidDate != nil {
		r.PaidDate = p.PaidDate.Format(dateLayout)
	}
	return r
}

// Payments renders the payment list in the given format.
func Payments(payments []*domain.Payment, f Format) (string, error) {
	switch f {
	case FormatCSV:
		headers := []string{"id", "projectId", "amount", "status", "dueDate", "paidDate", "description", "createdAt"}
		rows := make([][]string, 0, len(payments))
		for _, p := range payments {
			r := newPaymentRecord(p)
			rows = append(rows, []string{r.ID, r.ProjectID, money(p.Amount), r.Status, r.DueDate, r.PaidDate, r.Description, r.CreatedAt})
		}
		return csvDocument(headers, rows), nil
	case FormatText:
		records := make([]any, 0, len(payments))
		for _, p := range payments {
			records = append(records, newPaymentRecord(p))
		}
		return textDocument(records)
	default:
		return "", fmt.Errorf("unknown export format %q", f)
	}
}

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/lancer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject() *domain.Project {
	return &domain.Project{
		ID:          "p1",
		Title:       "Website Redesign",
		Client:      "Acme Corp",
		Deadline:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Payment:     1200.5,
		Status:      domain.ProjectOngoing,
		Description: `Phase "one" only`,
		CreatedAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat(" txt ")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestProjectsCSV(t *testing.T) {
	doc, err := Projects([]*domain.Project{sampleProject()}, FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(doc, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"id","title","client","deadline","payment","status","description","createdAt"`, lines[0])
	assert.Equal(t, `"p1","Website Redesign","Acme Corp","2025-06-01","1200.50","ongoing","Phase ""one"" only","2025-01-02T03:04:05Z"`, lines[1])
}

func TestProjectsCSV_EmptyListIsHeaderOnly(t *testing.T) {
	doc, err := Projects(nil, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, `"id","title","client","deadline","payment","status","description","createdAt"`, doc)
}

func TestProjectsText(t *testing.T) {
	second := sampleProject()
	second.ID = "p2"
	doc, err := Projects([]*domain.Project{sampleProject(), second}, FormatText)
	require.NoError(t, err)

	blocks := strings.Split(doc, "\n\n")
	require.Len(t, blocks, 2)

	// Each block is valid indented JSON carrying the record fields.
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(blocks[0]), &rec))
	assert.Equal(t, "p1", rec["id"])
	assert.Equal(t, "Website Redesign", rec["title"])
	assert.Equal(t, 1200.5, rec["payment"])
	assert.Contains(t, blocks[0], "\n  \"title\"")
}

func TestClientsCSV(t *testing.T) {
	c := &domain.Client{
		ID:        "c1",
		Name:      "Acme Corp",
		Email:     "billing@acme.test",
		Country:   "DE",
		CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	doc, err := Clients([]*domain.Client{c}, FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(doc, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"c1","Acme Corp","billing@acme.test","","DE","2025-01-02T00:00:00Z"`, lines[1])
}

func TestPaymentsCSV_PaidDateOptional(t *testing.T) {
	paid := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	payments := []*domain.Payment{
		{ID: "m1", ProjectID: "p1", Amount: 100, Status: domain.PaymentPending, DueDate: paid, CreatedAt: paid},
		{ID: "m2", ProjectID: "p1", Amount: 50, Status: domain.PaymentPaid, DueDate: paid, PaidDate: &paid, CreatedAt: paid},
	}

	doc, err := Payments(payments, FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(doc, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], `"pending","2025-02-01","",`)
	assert.Contains(t, lines[2], `"paid","2025-02-01","2025-02-01",`)
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "projects-2026-08-28.csv", DefaultFilename("projects", FormatCSV, now))
	assert.Equal(t, "clients-2026-08-28.txt", DefaultFilename("clients", FormatText, now))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.csv")

	require.NoError(t, WriteFile(path, "\"id\"\n\"p1\""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\"id\"\n\"p1\"", string(data))
}

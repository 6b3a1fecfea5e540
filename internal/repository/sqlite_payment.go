package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lancer/internal/db"
	"github.com/alexanderramin/lancer/internal/domain"
)

// SQLitePaymentRepo implements PaymentRepo using a SQLite database.
type SQLitePaymentRepo struct {
	db db.DBTX
}

// NewSQLitePaymentRepo creates a new SQLitePaymentRepo.
func NewSQLitePaymentRepo(conn db.DBTX) *SQLitePaymentRepo {
	return &SQLitePaymentRepo{db: conn}
}

const paymentColumns = `id, project_id, amount, status, due_date, paid_date, description, owner_id, created_at, updated_at`

func (r *SQLitePaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ProjectID,
		p.Amount,
		string(p.Status),
		p.DueDate.Format(dateLayout),
		nullableTimeToString(p.PaidDate, dateLayout),
		p.Description,
		p.OwnerID,
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting payment: %w", err)
	}
	return nil
}

func (r *SQLitePaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanPayment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("payment %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning payment: %w", err)
	}
	return p, nil
}

func (r *SQLitePaymentRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE owner_id = ? ORDER BY created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *SQLitePaymentRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE project_id = ? ORDER BY created_at DESC`
	return r.list(ctx, query, projectID)
}

func (r *SQLitePaymentRepo) list(ctx context.Context, query string, arg any) ([]*domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payments: %w", err)
	}
	return payments, nil
}

func (r *SQLitePaymentRepo) Update(ctx context.Context, id string, patch domain.PaymentPatch) error {
	sets := []string{"updated_at = ?"}
	args := []any{patch.UpdatedAt.UTC().Format(time.RFC3339)}

	if patch.ProjectID != nil {
		sets = append(sets, "project_id = ?")
		args = append(args, *patch.ProjectID)
	}
	if patch.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, *patch.Amount)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, patch.DueDate.Format(dateLayout))
	}
	if patch.PaidDate != nil {
		sets = append(sets, "paid_date = ?")
		args = append(args, patch.PaidDate.Format(dateLayout))
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	args = append(args, id)

	query := "UPDATE payments SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating payment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("payment %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLitePaymentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting payment: %w", err)
	}
	return nil
}

func scanPayment(row scanner) (*domain.Payment, error) {
	var p domain.Payment
	var dueDateStr, statusStr, createdAtStr, updatedAtStr string
	var paidDateStr sql.NullString

	err := row.Scan(
		&p.ID, &p.ProjectID, &p.Amount,
		&statusStr, &dueDateStr, &paidDateStr,
		&p.Description, &p.OwnerID,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	p.Status = domain.PaymentStatus(statusStr)
	p.DueDate = parseDate(dueDateStr)
	p.PaidDate = parseNullableTime(paidDateStr, dateLayout)
	p.CreatedAt = parseTimeOrNow(createdAtStr)
	p.UpdatedAt = parseTimeOrNow(updatedAtStr)

	return &p, nil
}

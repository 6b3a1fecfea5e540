package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/lancer/internal/db"
)

// SQLiteAuthSessionRepo implements AuthSessionRepo using a SQLite database.
type SQLiteAuthSessionRepo struct {
	db db.DBTX
}

// NewSQLiteAuthSessionRepo creates a new SQLiteAuthSessionRepo.
func NewSQLiteAuthSessionRepo(conn db.DBTX) *SQLiteAuthSessionRepo {
	return &SQLiteAuthSessionRepo{db: conn}
}

func (r *SQLiteAuthSessionRepo) Create(ctx context.Context, token, accountID string) error {
	query := `INSERT INTO auth_sessions (token, account_id, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, token, accountID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting auth session: %w", err)
	}
	return nil
}

func (r *SQLiteAuthSessionRepo) Resolve(ctx context.Context, token string) (string, error) {
	var accountID string
	err := r.db.QueryRowContext(ctx,
		`SELECT account_id FROM auth_sessions WHERE token = ?`, token,
	).Scan(&accountID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("auth session: %w", ErrNotFound)
		}
		return "", fmt.Errorf("resolving auth session: %w", err)
	}
	return accountID, nil
}

func (r *SQLiteAuthSessionRepo) Delete(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM auth_sessions WHERE token = ?`, token); err != nil {
		return fmt.Errorf("deleting auth session: %w", err)
	}
	return nil
}

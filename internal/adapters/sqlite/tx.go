package sqlite

import (
	"context"
	"database/sql"
	"time"

	"lovediary/internal/domain"
)

// profileTx groups the profile writes of one Save
type profileTx struct {
	tx  *sql.Tx
	ctx context.Context
}

func (s *Store) beginTx(ctx context.Context) (*profileTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &profileTx{tx: tx, ctx: ctx}, nil
}

// UpsertProfile inserts or replaces the single profile row
func (t *profileTx) UpsertProfile(p domain.Profile) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT OR REPLACE INTO profile (id, your_name, partner_name, start_date, updated_at)
		VALUES (1, ?, ?, ?, ?)
	`, p.YourName, p.PartnerName, formatTime(p.StartDate), formatTime(p.UpdatedAt))
	return err
}

// RecordStartDate appends a start date to the history
func (t *profileTx) RecordStartDate(changedAt, startDate time.Time) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO start_date_history (changed_at, start_date)
		VALUES (?, ?)
	`, formatTime(changedAt), formatTime(startDate))
	return err
}

// Commit commits the transaction
func (t *profileTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *profileTx) Rollback() error {
	return t.tx.Rollback()
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

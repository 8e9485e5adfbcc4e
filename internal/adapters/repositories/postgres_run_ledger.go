package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"load-optimizer-service/internal/domain"
)

const runType = "LOAD_OPTIMIZATION"

// Postgres-backed implementation of the RunLedger port, writing the
// optimization_logs audit table. Ids are freshly generated per request, so
// concurrent runs never contend on the same row.
type PostgresRunLedger struct{ DB *sql.DB }

func NewPostgresRunLedger(db *sql.DB) *PostgresRunLedger {
	return &PostgresRunLedger{DB: db}
}

func (l *PostgresRunLedger) Begin(ctx context.Context, id string, params []byte) error {
	if l.DB == nil {
		return errors.New("run ledger: DB is nil")
	}

	query := `
	INSERT INTO optimization_logs (log_id, optimization_type, input_parameters, created_at)
	VALUES ($1, $2, $3, $4);
	`
	if _, err := l.DB.ExecContext(ctx, query, id, runType, params, time.Now()); err != nil {
		return fmt.Errorf("run ledger begin %s: %w", id, err)
	}
	return nil
}

func (l *PostgresRunLedger) Complete(ctx context.Context, id string, duration time.Duration, output []byte) error {
	if l.DB == nil {
		return errors.New("run ledger: DB is nil")
	}

	query := `
	UPDATE optimization_logs
	SET completed_at = $1, duration_ms = $2, output = $3, status = $4
	WHERE log_id = $5;
	`
	_, err := l.DB.ExecContext(ctx, query, time.Now(), duration.Milliseconds(), output, domain.RunStatusSuccess, id)
	if err != nil {
		return fmt.Errorf("run ledger complete %s: %w", id, err)
	}
	return nil
}

func (l *PostgresRunLedger) Fail(ctx context.Context, id string, duration time.Duration, message string) error {
	if l.DB == nil {
		return errors.New("run ledger: DB is nil")
	}

	query := `
	UPDATE optimization_logs
	SET completed_at = $1, duration_ms = $2, error_message = $3, status = $4
	WHERE log_id = $5;
	`
	_, err := l.DB.ExecContext(ctx, query, time.Now(), duration.Milliseconds(), message, domain.RunStatusError, id)
	if err != nil {
		return fmt.Errorf("run ledger fail %s: %w", id, err)
	}
	return nil
}

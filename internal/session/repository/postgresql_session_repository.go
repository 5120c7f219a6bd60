// Package repository implements session persistence for the authoritative
// store. Repositories support both PostgreSQL and MySQL; the active-session
// uniqueness invariant lives here, in the database constraint, never in the
// ledger client.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/allisson/parkledger/internal/database"
	apperrors "github.com/allisson/parkledger/internal/errors"
	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// PostgreSQLSessionRepository implements session persistence for PostgreSQL databases.
type PostgreSQLSessionRepository struct {
	db *sql.DB
}

// NewPostgreSQLSessionRepository creates a repository over the given database.
func NewPostgreSQLSessionRepository(db *sql.DB) *PostgreSQLSessionRepository {
	return &PostgreSQLSessionRepository{db: db}
}

// Create inserts a new session into the PostgreSQL database.
// A duplicate active plate hash fails with ErrSessionAlreadyActive.
func (p *PostgreSQLSessionRepository) Create(ctx context.Context, session *sessionDomain.Session) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO sessions
			  (id, plate_hash, lot_id, token_id, serial, transaction_id, entry_time, exit_time, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := querier.ExecContext(
		ctx,
		query,
		session.ID,
		session.PlateHash,
		session.LotID,
		session.TokenID,
		session.Serial,
		session.TransactionID,
		session.EntryTime,
		session.ExitTime,
		session.Status,
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return sessionDomain.ErrSessionAlreadyActive
		}
		return apperrors.Wrap(err, "failed to create session")
	}
	return nil
}

// GetActiveByPlateHash retrieves the active session for a plate digest.
func (p *PostgreSQLSessionRepository) GetActiveByPlateHash(
	ctx context.Context,
	plateHash []byte,
) (*sessionDomain.Session, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, plate_hash, lot_id, token_id, serial, transaction_id, entry_time, exit_time, status, created_at, updated_at
			  FROM sessions
			  WHERE plate_hash = $1 AND status = 'active'
			  LIMIT 1`

	return scanSession(querier.QueryRowContext(ctx, query, plateHash))
}

// Update persists the mutable fields of an existing session.
func (p *PostgreSQLSessionRepository) Update(ctx context.Context, session *sessionDomain.Session) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE sessions
			  SET serial = $1, transaction_id = $2, exit_time = $3, status = $4, updated_at = $5
			  WHERE id = $6`

	result, err := querier.ExecContext(
		ctx,
		query,
		session.Serial,
		session.TransactionID,
		session.ExitTime,
		session.Status,
		session.UpdatedAt,
		session.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update session")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a session row, used to undo a provisional insert after a
// failed mint.
func (p *PostgreSQLSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	_, err := querier.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete session")
	}
	return nil
}

// List retrieves sessions ordered by entry time descending.
func (p *PostgreSQLSessionRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*sessionDomain.Session, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, plate_hash, lot_id, token_id, serial, transaction_id, entry_time, exit_time, status, created_at, updated_at
			  FROM sessions
			  ORDER BY entry_time DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list sessions")
	}
	defer rows.Close()

	return collectSessions(rows)
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*sessionDomain.Session, error) {
	var session sessionDomain.Session
	err := row.Scan(
		&session.ID,
		&session.PlateHash,
		&session.LotID,
		&session.TokenID,
		&session.Serial,
		&session.TransactionID,
		&session.EntryTime,
		&session.ExitTime,
		&session.Status,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan session")
	}
	return &session, nil
}

func collectSessions(rows *sql.Rows) ([]*sessionDomain.Session, error) {
	sessions := make([]*sessionDomain.Session, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate sessions")
	}
	return sessions, nil
}

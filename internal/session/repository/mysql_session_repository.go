package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/allisson/parkledger/internal/database"
	apperrors "github.com/allisson/parkledger/internal/errors"
	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// mysqlDuplicateEntry is the MySQL error number for duplicate key violations.
const mysqlDuplicateEntry = 1062

// MySQLSessionRepository implements session persistence for MySQL databases.
type MySQLSessionRepository struct {
	db *sql.DB
}

// NewMySQLSessionRepository creates a repository over the given database.
func NewMySQLSessionRepository(db *sql.DB) *MySQLSessionRepository {
	return &MySQLSessionRepository{db: db}
}

// Create inserts a new session into the MySQL database.
// A duplicate active plate hash fails with ErrSessionAlreadyActive.
func (m *MySQLSessionRepository) Create(ctx context.Context, session *sessionDomain.Session) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO sessions
			  (id, plate_hash, lot_id, token_id, serial, transaction_id, entry_time, exit_time, status, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

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
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return sessionDomain.ErrSessionAlreadyActive
		}
		return apperrors.Wrap(err, "failed to create session")
	}
	return nil
}

// GetActiveByPlateHash retrieves the active session for a plate digest.
func (m *MySQLSessionRepository) GetActiveByPlateHash(
	ctx context.Context,
	plateHash []byte,
) (*sessionDomain.Session, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, plate_hash, lot_id, token_id, serial, transaction_id, entry_time, exit_time, status, created_at, updated_at
			  FROM sessions
			  WHERE plate_hash = ? AND status = 'active'
			  LIMIT 1`

	return scanSession(querier.QueryRowContext(ctx, query, plateHash))
}

// Update persists the mutable fields of an existing session.
func (m *MySQLSessionRepository) Update(ctx context.Context, session *sessionDomain.Session) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE sessions
			  SET serial = ?, transaction_id = ?, exit_time = ?, status = ?, updated_at = ?
			  WHERE id = ?`

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
func (m *MySQLSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	_, err := querier.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete session")
	}
	return nil
}

// List retrieves sessions ordered by entry time descending.
func (m *MySQLSessionRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*sessionDomain.Session, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, plate_hash, lot_id, token_id, serial, transaction_id, entry_time, exit_time, status, created_at, updated_at
			  FROM sessions
			  ORDER BY entry_time DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list sessions")
	}
	defer rows.Close()

	return collectSessions(rows)
}

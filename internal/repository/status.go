package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/statusfeed/statusfeed-go/internal/model"
)

var ErrStatusNotFound = errors.New("status not found")

// MySQLStatusRepository is the MySQL-backed StatusRepository.
type MySQLStatusRepository struct {
	db *sql.DB
}

// NewMySQLStatusRepository creates a new MySQLStatusRepository.
func NewMySQLStatusRepository(db *sql.DB) *MySQLStatusRepository {
	return &MySQLStatusRepository{db: db}
}

// Create inserts a new status and sets the generated ID on the status struct.
func (r *MySQLStatusRepository) Create(ctx context.Context, status *model.Status) error {
	query := `INSERT INTO statuses (user_id, content, date_published) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, status.UserID, status.Content, status.DatePublished)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	status.ID = id
	return nil
}

// GetByID retrieves a status by its ID.
func (r *MySQLStatusRepository) GetByID(ctx context.Context, id int64) (*model.Status, error) {
	query := `SELECT id, user_id, content, date_published, updated_at FROM statuses WHERE id = ?`

	status := &model.Status{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&status.ID, &status.UserID, &status.Content, &status.DatePublished, &status.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatusNotFound
		}
		return nil, err
	}

	return status, nil
}

// ListByUser retrieves all statuses owned by a user, in insertion order.
func (r *MySQLStatusRepository) ListByUser(ctx context.Context, userID int64) ([]model.Status, error) {
	query := `SELECT id, user_id, content, date_published, updated_at
		FROM statuses WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []model.Status
	for rows.Next() {
		var s model.Status
		if err := rows.Scan(&s.ID, &s.UserID, &s.Content, &s.DatePublished, &s.UpdatedAt); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}

	return statuses, rows.Err()
}

// Update persists a content change to an existing status. MySQL reports zero
// affected rows for a no-op content change, so the existence check stays with
// the caller.
func (r *MySQLStatusRepository) Update(ctx context.Context, status *model.Status) error {
	query := `UPDATE statuses SET content = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, status.Content, status.ID)
	return err
}

// Delete permanently removes a status.
func (r *MySQLStatusRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM statuses WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrStatusNotFound
	}

	return nil
}

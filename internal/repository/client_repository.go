package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/vehicle-rental/internal/model"
)

// ClientRepo provides read access to the clients table.  Clients are
// reference data: the booking core only ever checks that a NIF exists, so
// no write methods are exposed.
type ClientRepo struct{ DB *sql.DB }

// NewClientRepo returns a ClientRepo bound to the given database.
func NewClientRepo(db *sql.DB) *ClientRepo { return &ClientRepo{DB: db} }

// ExistsTx reports whether a client with the given NIF exists.  It runs
// inside the booking transaction so the check observes the same snapshot
// as the writes that follow.
func (r *ClientRepo) ExistsTx(ctx context.Context, tx *sql.Tx, nif string) (bool, error) {
	var found string
	err := tx.QueryRowContext(ctx,
		"SELECT nif FROM clients WHERE nif = ? LIMIT 1", nif).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByNIF fetches a client record for display purposes.  Returns
// sql.ErrNoRows when the NIF is unknown.
func (r *ClientRepo) GetByNIF(ctx context.Context, nif string) (model.Client, error) {
	var c model.Client
	err := r.DB.QueryRowContext(ctx,
		"SELECT nif, name FROM clients WHERE nif = ? LIMIT 1", nif).
		Scan(&c.NIF, &c.Name)
	return c, err
}

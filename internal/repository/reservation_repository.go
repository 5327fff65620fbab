package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/vehicle-rental/internal/model"
)

// dateLayout is the DATE column format used for binding and scanning
// reservation day boundaries.
const dateLayout = "2006-01-02"

// ReservationRepo provides access to the reservations table.  The booking
// core only ever checks for conflicts and inserts; reservations are never
// updated or deleted, so those operations do not exist here.
type ReservationRepo struct{ DB *sql.DB }

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

// OverlapExistsTx reports whether any existing reservation for the plate
// intersects the closed day range [start,end].  The SQL condition is the
// direct translation of the interval predicate a1 <= b2 AND b1 <= a2:
// an existing reservation conflicts when its start is on or before the new
// end AND the new start is on or before its end.  Note both comparisons
// are inclusive; requiring the existing end strictly after the new start
// would under-reject bookings that touch at a boundary day.
func (r *ReservationRepo) OverlapExistsTx(ctx context.Context, tx *sql.Tx, plate string, res *model.Reservation) (bool, error) {
	const q = `SELECT COUNT(*)
	           FROM reservations
	           WHERE plate = ?
	             AND start_date <= ?
	             AND ? <= end_date`
	var n int
	err := tx.QueryRowContext(ctx, q, plate,
		res.EndDate.Format(dateLayout), res.StartDate.Format(dateLayout)).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateTx inserts a reservation inside the booking transaction and
// populates the generated ID on the provided record.  The caller owns
// commit and rollback.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `INSERT INTO reservations (client_nif, plate, start_date, end_date) VALUES (?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q,
		res.ClientNIF, res.Plate,
		res.StartDate.Format(dateLayout), res.EndDate.Format(dateLayout))
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = id
	return nil
}

// ListByPlate returns all reservations for a vehicle ordered by start
// date.  It backs the availability endpoint agents consult before booking.
func (r *ReservationRepo) ListByPlate(ctx context.Context, plate string) ([]model.Reservation, error) {
	const q = `SELECT id, client_nif, plate, start_date, end_date
	           FROM reservations
	           WHERE plate = ?
	           ORDER BY start_date`
	return r.list(ctx, q, plate)
}

// ListByClient returns all reservations made for a client, newest first.
func (r *ReservationRepo) ListByClient(ctx context.Context, nif string) ([]model.Reservation, error) {
	const q = `SELECT id, client_nif, plate, start_date, end_date
	           FROM reservations
	           WHERE client_nif = ?
	           ORDER BY start_date DESC`
	return r.list(ctx, q, nif)
}

func (r *ReservationRepo) list(ctx context.Context, query string, arg interface{}) ([]model.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(&res.ID, &res.ClientNIF, &res.Plate, &res.StartDate, &res.EndDate); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

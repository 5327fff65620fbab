package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/vehicle-rental/internal/model"
	"github.com/iliyamo/vehicle-rental/internal/rental"
)

// VehicleRepo provides read access to vehicles, their models and the
// active fuel prices.  All pricing facts a booking needs are loaded in a
// single joined query so the transaction observes one consistent snapshot.
type VehicleRepo struct{ DB *sql.DB }

// NewVehicleRepo returns a VehicleRepo bound to the given database.
func NewVehicleRepo(db *sql.DB) *VehicleRepo { return &VehicleRepo{DB: db} }

// ExistsTx reports whether a vehicle with the given plate exists.  The
// vehicle row is locked with FOR UPDATE, which serializes concurrent
// bookings of the same plate: the second transaction blocks here until the
// first commits, so its later overlap check sees the winner's reservation.
func (r *VehicleRepo) ExistsTx(ctx context.Context, tx *sql.Tx, plate string) (bool, error) {
	var found string
	err := tx.QueryRowContext(ctx,
		"SELECT plate FROM vehicles WHERE plate = ? FOR UPDATE", plate).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PricingInfoTx loads the model and fuel reference data used to price a
// booking for the given plate.  It joins vehicles, models and fuel_prices
// in one statement; the fuel price is assumed present once the model
// resolves, so a missing join row surfaces as sql.ErrNoRows and is treated
// by callers as an unexpected storage failure, not a domain error.
func (r *VehicleRepo) PricingInfoTx(ctx context.Context, tx *sql.Tx, plate string) (rental.PricingInfo, error) {
	const q = `SELECT m.id, m.daily_price, m.tank_capacity, m.fuel_type, fp.price_per_liter
	           FROM vehicles v
	           JOIN models m ON m.id = v.model_id
	           JOIN fuel_prices fp ON fp.fuel_type = m.fuel_type
	           WHERE v.plate = ?`
	var info rental.PricingInfo
	err := tx.QueryRowContext(ctx, q, plate).Scan(
		&info.ModelID, &info.DailyPrice, &info.TankCapacity, &info.FuelType, &info.PricePerLiter,
	)
	return info, err
}

// GetByPlate returns a vehicle together with its model.  Returns
// sql.ErrNoRows when the plate is unknown.
func (r *VehicleRepo) GetByPlate(ctx context.Context, plate string) (model.Vehicle, model.VehicleModel, error) {
	const q = `SELECT v.plate, v.model_id, m.id, m.name, m.daily_price, m.tank_capacity, m.fuel_type
	           FROM vehicles v
	           JOIN models m ON m.id = v.model_id
	           WHERE v.plate = ?`
	var v model.Vehicle
	var m model.VehicleModel
	err := r.DB.QueryRowContext(ctx, q, plate).Scan(
		&v.Plate, &v.ModelID, &m.ID, &m.Name, &m.DailyPrice, &m.TankCapacity, &m.FuelType,
	)
	return v, m, err
}

// VehicleListing pairs a vehicle with its model for catalog display.
type VehicleListing struct {
	Vehicle model.Vehicle      `json:"vehicle"`
	Model   model.VehicleModel `json:"model"`
}

// List returns the whole fleet with model details, ordered by plate.  It
// backs the public catalog endpoint and is cache-friendly.
func (r *VehicleRepo) List(ctx context.Context) ([]VehicleListing, error) {
	const q = `SELECT v.plate, v.model_id, m.id, m.name, m.daily_price, m.tank_capacity, m.fuel_type
	           FROM vehicles v
	           JOIN models m ON m.id = v.model_id
	           ORDER BY v.plate`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]VehicleListing, 0)
	for rows.Next() {
		var item VehicleListing
		if err := rows.Scan(
			&item.Vehicle.Plate, &item.Vehicle.ModelID,
			&item.Model.ID, &item.Model.Name, &item.Model.DailyPrice,
			&item.Model.TankCapacity, &item.Model.FuelType,
		); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFuelPrices returns the active price per liter for every fuel type.
func (r *VehicleRepo) ListFuelPrices(ctx context.Context) ([]model.FuelPrice, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT fuel_type, price_per_liter FROM fuel_prices ORDER BY fuel_type")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.FuelPrice, 0)
	for rows.Next() {
		var fp model.FuelPrice
		if err := rows.Scan(&fp.FuelType, &fp.PricePerLiter); err != nil {
			return nil, err
		}
		out = append(out, fp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

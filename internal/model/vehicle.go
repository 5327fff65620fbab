package model

import "github.com/shopspring/decimal"

// Vehicle is a rentable unit of the fleet, identified by its plate.  Each
// vehicle belongs to a model which carries the pricing reference data.
//
// Fields:
//  Plate   – unique registration plate, primary key.
//  ModelID – model the vehicle belongs to.
type Vehicle struct {
	Plate   string `json:"plate"`    // vehicles.plate
	ModelID int64  `json:"model_id"` // vehicles.model_id
}

// VehicleModel groups vehicles of the same make and trim and holds the
// facts a booking is priced from.  Monetary fields are exact decimals;
// invoice totals must be reproducible to the cent.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – human readable model name.
//  DailyPrice   – rental price per day.
//  TankCapacity – fuel tank size in liters, used for the full-tank charge.
//  FuelType     – key into fuel_prices.
type VehicleModel struct {
	ID           int64           `json:"id"`            // models.id
	Name         string          `json:"name"`          // models.name
	DailyPrice   decimal.Decimal `json:"daily_price"`   // models.daily_price
	TankCapacity int             `json:"tank_capacity"` // models.tank_capacity
	FuelType     string          `json:"fuel_type"`     // models.fuel_type
}

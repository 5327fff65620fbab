package model

import "github.com/shopspring/decimal"

// FuelPrice is the active per-liter price for one fuel type.  There is
// exactly one row per type; the booking transaction reads it together with
// the vehicle's model so both observe the same snapshot.
type FuelPrice struct {
	FuelType      string          `json:"fuel_type"`       // fuel_prices.fuel_type
	PricePerLiter decimal.Decimal `json:"price_per_liter"` // fuel_prices.price_per_liter
}

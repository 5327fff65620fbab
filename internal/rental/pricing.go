package rental

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PricingInfo carries the reference data needed to price a rental.  It is
// read from the vehicle's model and the active fuel price inside the same
// transaction that writes the booking.
type PricingInfo struct {
	ModelID       int64           // models.id
	DailyPrice    decimal.Decimal // models.daily_price
	TankCapacity  int             // models.tank_capacity, liters
	FuelType      string          // models.fuel_type
	PricePerLiter decimal.Decimal // fuel_prices.price_per_liter
}

// Quote is a fully priced booking.  RentalCost and FuelCost sum exactly to
// Total; all three are exact decimals so the invoice lines reproduce the
// invoice amount to the cent.
type Quote struct {
	RentalCost decimal.Decimal
	FuelCost   decimal.Decimal
	Total      decimal.Decimal
}

// Price computes the cost of a rental: the model's daily price times the
// day count, plus a full-tank refill at the active per-liter price.  The
// refill is charged on tank capacity regardless of actual consumption.
func Price(info PricingInfo, days int) Quote {
	rental := info.DailyPrice.Mul(decimal.NewFromInt(int64(days)))
	fuel := info.PricePerLiter.Mul(decimal.NewFromInt(int64(info.TankCapacity)))
	return Quote{
		RentalCost: rental,
		FuelCost:   fuel,
		Total:      rental.Add(fuel),
	}
}

// RentalConcept is the invoice line text for the rental charge.
func RentalConcept(days int, modelID int64) string {
	return fmt.Sprintf("%d days rental, vehicle model %d", days, modelID)
}

// FuelConcept is the invoice line text for the full-tank charge.
func FuelConcept(capacity int, fuelType string) string {
	return fmt.Sprintf("Full tank of %d liters of %s", capacity, fuelType)
}

package rental

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPriceDefaultRental(t *testing.T) {
	// Reference example: 30.00/day, 50 liter tank at 1.50/liter, 4 days.
	info := PricingInfo{
		ModelID:       7,
		DailyPrice:    dec("30.00"),
		TankCapacity:  50,
		FuelType:      "diesel",
		PricePerLiter: dec("1.50"),
	}
	q := Price(info, DefaultRentalDays)

	assert.True(t, q.RentalCost.Equal(dec("120.00")), "rental cost = %s", q.RentalCost)
	assert.True(t, q.FuelCost.Equal(dec("75.00")), "fuel cost = %s", q.FuelCost)
	assert.True(t, q.Total.Equal(dec("195.00")), "total = %s", q.Total)
}

func TestPriceLinesSumExactly(t *testing.T) {
	// Prices chosen to break binary floating point.
	info := PricingInfo{
		DailyPrice:    dec("33.10"),
		TankCapacity:  47,
		PricePerLiter: dec("1.37"),
	}
	for days := 1; days <= 30; days++ {
		q := Price(info, days)
		assert.True(t, q.RentalCost.Add(q.FuelCost).Equal(q.Total),
			"days=%d: %s + %s != %s", days, q.RentalCost, q.FuelCost, q.Total)
	}
}

func TestConcepts(t *testing.T) {
	assert.Equal(t, "4 days rental, vehicle model 7", RentalConcept(4, 7))
	assert.Equal(t, "Full tank of 50 liters of diesel", FuelConcept(50, "diesel"))
}

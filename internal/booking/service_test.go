package booking

import (
	"context"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/vehicle-rental/internal/model"
	"github.com/iliyamo/vehicle-rental/internal/rental"
	"github.com/iliyamo/vehicle-rental/internal/repository"
)

// mockStore stands in for the transaction-bound store so the orchestration
// can be exercised without a database.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) ClientExists(ctx context.Context, nif string) (bool, error) {
	args := m.Called(ctx, nif)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) VehicleExists(ctx context.Context, plate string) (bool, error) {
	args := m.Called(ctx, plate)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) OverlapExists(ctx context.Context, res *model.Reservation) (bool, error) {
	args := m.Called(ctx, res)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) InsertReservation(ctx context.Context, res *model.Reservation) error {
	args := m.Called(ctx, res)
	if args.Error(0) == nil {
		res.ID = 101 // simulate generated key
	}
	return args.Error(0)
}

func (m *mockStore) PricingInfo(ctx context.Context, plate string) (rental.PricingInfo, error) {
	args := m.Called(ctx, plate)
	return args.Get(0).(rental.PricingInfo), args.Error(1)
}

func (m *mockStore) InsertInvoice(ctx context.Context, inv *model.Invoice) error {
	args := m.Called(ctx, inv)
	if args.Error(0) == nil {
		inv.ID = 7001
		for i := range inv.Lines {
			inv.Lines[i].InvoiceID = inv.ID
		}
	}
	return args.Error(0)
}

func date(day int) time.Time {
	return time.Date(2026, time.May, day, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Reference pricing facts: 30.00/day, 50 liter tank at 1.50/liter.
func testPricing() rental.PricingInfo {
	return rental.PricingInfo{
		ModelID:       7,
		DailyPrice:    dec("30.00"),
		TankCapacity:  50,
		FuelType:      "diesel",
		PricePerLiter: dec("1.50"),
	}
}

func validRequest() Request {
	return Request{ClientNIF: "12345678Z", Plate: "0001BBB", StartDate: date(10)}
}

func TestBookUnknownClient(t *testing.T) {
	st := new(mockStore)
	st.On("ClientExists", mock.Anything, "12345678Z").Return(false, nil)

	res, err := book(context.Background(), st, validRequest())

	assert.ErrorIs(t, err, repository.ErrClientNotFound)
	assert.Nil(t, res)
	st.AssertNotCalled(t, "InsertReservation", mock.Anything, mock.Anything)
	st.AssertNotCalled(t, "InsertInvoice", mock.Anything, mock.Anything)
}

func TestBookUnknownVehicle(t *testing.T) {
	st := new(mockStore)
	st.On("ClientExists", mock.Anything, "12345678Z").Return(true, nil)
	st.On("VehicleExists", mock.Anything, "0001BBB").Return(false, nil)

	res, err := book(context.Background(), st, validRequest())

	assert.ErrorIs(t, err, repository.ErrVehicleNotFound)
	assert.Nil(t, res)
	st.AssertNotCalled(t, "InsertReservation", mock.Anything, mock.Anything)
	st.AssertNotCalled(t, "InsertInvoice", mock.Anything, mock.Anything)
}

func TestBookInvalidDuration(t *testing.T) {
	st := new(mockStore)
	req := validRequest()
	end := req.StartDate // zero rental days
	req.EndDate = &end

	res, err := book(context.Background(), st, req)

	assert.ErrorIs(t, err, rental.ErrInvalidDuration)
	assert.Nil(t, res)
	// The interval is rejected before any store access.
	st.AssertExpectations(t)
	st.AssertNotCalled(t, "ClientExists", mock.Anything, mock.Anything)
}

func TestBookVehicleUnavailable(t *testing.T) {
	st := new(mockStore)
	st.On("ClientExists", mock.Anything, "12345678Z").Return(true, nil)
	st.On("VehicleExists", mock.Anything, "0001BBB").Return(true, nil)
	st.On("OverlapExists", mock.Anything, mock.Anything).Return(true, nil)

	res, err := book(context.Background(), st, validRequest())

	assert.ErrorIs(t, err, repository.ErrVehicleUnavailable)
	assert.Nil(t, res)
	st.AssertNotCalled(t, "InsertReservation", mock.Anything, mock.Anything)
	st.AssertNotCalled(t, "InsertInvoice", mock.Anything, mock.Anything)
}

func TestBookDefaultDuration(t *testing.T) {
	st := new(mockStore)
	st.On("ClientExists", mock.Anything, "12345678Z").Return(true, nil)
	st.On("VehicleExists", mock.Anything, "0001BBB").Return(true, nil)
	st.On("OverlapExists", mock.Anything, mock.Anything).Return(false, nil)
	st.On("InsertReservation", mock.Anything, mock.Anything).Return(nil)
	st.On("PricingInfo", mock.Anything, "0001BBB").Return(testPricing(), nil)
	st.On("InsertInvoice", mock.Anything, mock.Anything).Return(nil)

	res, err := book(context.Background(), st, validRequest())
	require.NoError(t, err)

	// No end date: 4 rental days ending start+4.
	assert.Equal(t, rental.DefaultRentalDays, res.Days)
	assert.Equal(t, date(10), res.Reservation.StartDate)
	assert.Equal(t, date(14), res.Reservation.EndDate)
	assert.EqualValues(t, 101, res.Reservation.ID)

	// 30.00*4 + 1.50*50 = 195.00 split into two lines.
	require.Len(t, res.Invoice.Lines, 2)
	assert.True(t, res.Invoice.Amount.Equal(dec("195.00")), "total = %s", res.Invoice.Amount)
	assert.True(t, res.Invoice.Lines[0].Amount.Equal(dec("120.00")))
	assert.True(t, res.Invoice.Lines[1].Amount.Equal(dec("75.00")))
	assert.Equal(t, "4 days rental, vehicle model 7", res.Invoice.Lines[0].Concept)
	assert.Equal(t, "Full tank of 50 liters of diesel", res.Invoice.Lines[1].Concept)
	assert.Equal(t, "12345678Z", res.Invoice.ClientNIF)

	st.AssertExpectations(t)
}

func TestBookResolvedEndDateUsedEverywhere(t *testing.T) {
	st := new(mockStore)
	var checked, inserted *model.Reservation
	st.On("ClientExists", mock.Anything, mock.Anything).Return(true, nil)
	st.On("VehicleExists", mock.Anything, mock.Anything).Return(true, nil)
	st.On("OverlapExists", mock.Anything, mock.MatchedBy(func(r *model.Reservation) bool {
		checked = r
		return true
	})).Return(false, nil)
	st.On("InsertReservation", mock.Anything, mock.MatchedBy(func(r *model.Reservation) bool {
		inserted = r
		return true
	})).Return(nil)
	st.On("PricingInfo", mock.Anything, mock.Anything).Return(testPricing(), nil)
	st.On("InsertInvoice", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	end := date(17)
	req.EndDate = &end
	res, err := book(context.Background(), st, req)
	require.NoError(t, err)

	// The overlap check, the insert and the invoice all see the same
	// resolved interval.
	require.NotNil(t, checked)
	require.NotNil(t, inserted)
	assert.Equal(t, checked.EndDate, inserted.EndDate)
	assert.Equal(t, date(17), inserted.EndDate)
	assert.Equal(t, 7, res.Days)
	assert.Equal(t, "7 days rental, vehicle model 7", res.Invoice.Lines[0].Concept)
}

func TestBookReservationRaceReportsUnavailable(t *testing.T) {
	st := new(mockStore)
	st.On("ClientExists", mock.Anything, mock.Anything).Return(true, nil)
	st.On("VehicleExists", mock.Anything, mock.Anything).Return(true, nil)
	st.On("OverlapExists", mock.Anything, mock.Anything).Return(false, nil)
	// A concurrent booking won between the check and our insert; the
	// unique constraint rejects the row.
	st.On("InsertReservation", mock.Anything, mock.Anything).
		Return(&mysql.MySQLError{Number: 1062, Message: "duplicate entry"})

	res, err := book(context.Background(), st, validRequest())

	assert.ErrorIs(t, err, repository.ErrVehicleUnavailable)
	assert.Nil(t, res)
	st.AssertNotCalled(t, "InsertInvoice", mock.Anything, mock.Anything)
}

func TestBookInvoiceConstraintViolation(t *testing.T) {
	st := new(mockStore)
	st.On("ClientExists", mock.Anything, mock.Anything).Return(true, nil)
	st.On("VehicleExists", mock.Anything, mock.Anything).Return(true, nil)
	st.On("OverlapExists", mock.Anything, mock.Anything).Return(false, nil)
	st.On("InsertReservation", mock.Anything, mock.Anything).Return(nil)
	st.On("PricingInfo", mock.Anything, mock.Anything).Return(testPricing(), nil)
	st.On("InsertInvoice", mock.Anything, mock.Anything).
		Return(&mysql.MySQLError{Number: 1452, Message: "fk violated"})

	res, err := book(context.Background(), st, validRequest())

	assert.ErrorIs(t, err, repository.ErrConstraintViolation)
	assert.Nil(t, res)
}

func TestBookUnclassifiedStorageError(t *testing.T) {
	st := new(mockStore)
	boom := &mysql.MySQLError{Number: 1205, Message: "lock wait timeout"}
	st.On("ClientExists", mock.Anything, mock.Anything).Return(true, nil)
	st.On("VehicleExists", mock.Anything, mock.Anything).Return(true, nil)
	st.On("OverlapExists", mock.Anything, mock.Anything).Return(false, nil)
	st.On("InsertReservation", mock.Anything, mock.Anything).Return(boom)

	_, err := book(context.Background(), st, validRequest())

	// Not hidden behind a domain kind; the raw failure propagates.
	assert.NotErrorIs(t, err, repository.ErrConstraintViolation)
	assert.NotErrorIs(t, err, repository.ErrVehicleUnavailable)
	assert.ErrorIs(t, err, boom)
}

// Package booking implements the vehicle rental booking transaction: it
// validates the client and vehicle, resolves the rental interval, rejects
// conflicting reservations, prices the rental and records the reservation
// and its invoice as one atomic unit of work.
package booking

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/iliyamo/vehicle-rental/internal/model"
	"github.com/iliyamo/vehicle-rental/internal/queue"
	"github.com/iliyamo/vehicle-rental/internal/rental"
	"github.com/iliyamo/vehicle-rental/internal/repository"
)

// Store is the view of the rental store a single booking transaction needs.
// The production implementation binds the repositories to one *sql.Tx so
// every read and write shares the same snapshot and commit boundary; tests
// substitute a mock to exercise the orchestration without a database.
type Store interface {
	// ClientExists reports whether the client NIF is known.
	ClientExists(ctx context.Context, nif string) (bool, error)
	// VehicleExists reports whether the plate is known.  Implementations
	// must also serialize concurrent bookings of the same plate (the SQL
	// implementation locks the vehicle row).
	VehicleExists(ctx context.Context, plate string) (bool, error)
	// OverlapExists reports whether the reservation's day range conflicts
	// with an existing reservation for the same plate.
	OverlapExists(ctx context.Context, res *model.Reservation) (bool, error)
	// InsertReservation materializes the reservation and fills in its ID.
	InsertReservation(ctx context.Context, res *model.Reservation) error
	// PricingInfo loads the model and fuel reference data for the plate.
	PricingInfo(ctx context.Context, plate string) (rental.PricingInfo, error)
	// InsertInvoice materializes the invoice and its lines, filling in IDs.
	InsertInvoice(ctx context.Context, inv *model.Invoice) error
}

// EventPublisher emits booking.confirmed events after a successful commit.
// Publishing is best-effort: a failed publish never fails the booking.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// Request carries the caller's booking parameters.  EndDate is optional;
// when nil the rental runs for rental.DefaultRentalDays from StartDate.
type Request struct {
	ClientNIF string
	Plate     string
	StartDate time.Time
	EndDate   *time.Time
}

// Result reports a committed booking back to the caller.
type Result struct {
	Reservation model.Reservation `json:"reservation"`
	Invoice     model.Invoice     `json:"invoice"`
	Days        int               `json:"days"`
}

// Service coordinates the booking transaction.  The database handle is
// injected explicitly so the transaction boundary is visible and testable;
// there is no hidden global connection state.
type Service struct {
	db           *sql.DB
	clients      *repository.ClientRepo
	vehicles     *repository.VehicleRepo
	reservations *repository.ReservationRepo
	invoices     *repository.InvoiceRepo
	events       EventPublisher
}

// NewService constructs a booking Service.  events may be nil, in which
// case no booking.confirmed events are published.
func NewService(db *sql.DB, clients *repository.ClientRepo, vehicles *repository.VehicleRepo, reservations *repository.ReservationRepo, invoices *repository.InvoiceRepo, events EventPublisher) *Service {
	if db == nil || clients == nil || vehicles == nil || reservations == nil || invoices == nil {
		panic("nil dependency passed to booking.NewService")
	}
	return &Service{
		db:           db,
		clients:      clients,
		vehicles:     vehicles,
		reservations: reservations,
		invoices:     invoices,
		events:       events,
	}
}

// Book runs the whole booking as one transaction.  Either the reservation,
// the invoice and both invoice lines all become durable, or none do.
// Domain failures surface as repository.ErrClientNotFound,
// repository.ErrVehicleNotFound, rental.ErrInvalidDuration or
// repository.ErrVehicleUnavailable; write failures are classified into
// repository.ErrConstraintViolation or propagated unclassified.  Every
// exit path releases the transaction.
func (s *Service) Book(ctx context.Context, req Request) (*Result, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := book(ctx, &txStore{tx: tx, s: s}, req)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, repository.ClassifyWriteError(err)
	}
	committed = true

	s.publishConfirmed(ctx, res)
	return res, nil
}

// book is the orchestration itself, separated from transaction control so
// it can be exercised against a mock Store.  The (effectiveEnd, days) pair
// is resolved exactly once and feeds both the overlap check and the
// invoice; the raw requested end date is never consulted again.
func book(ctx context.Context, st Store, req Request) (*Result, error) {
	dur, err := rental.ResolveDuration(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	ok, err := st.ClientExists(ctx, req.ClientNIF)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrClientNotFound
	}

	ok, err = st.VehicleExists(ctx, req.Plate)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrVehicleNotFound
	}

	res := model.Reservation{
		ClientNIF: req.ClientNIF,
		Plate:     req.Plate,
		StartDate: dur.Start,
		EndDate:   dur.End,
	}
	conflict, err := st.OverlapExists(ctx, &res)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, repository.ErrVehicleUnavailable
	}

	if err := st.InsertReservation(ctx, &res); err != nil {
		// A unique constraint on (plate, dates) means a concurrent booking
		// won the race; report it as an availability conflict, not as a
		// generic write failure.
		if repository.IsDuplicateEntry(err) {
			return nil, repository.ErrVehicleUnavailable
		}
		return nil, repository.ClassifyWriteError(err)
	}

	info, err := st.PricingInfo(ctx, req.Plate)
	if err != nil {
		return nil, err
	}
	quote := rental.Price(info, dur.Days)

	inv := model.Invoice{
		Amount:    quote.Total,
		ClientNIF: req.ClientNIF,
		Lines: []model.InvoiceLine{
			{Concept: rental.RentalConcept(dur.Days, info.ModelID), Amount: quote.RentalCost},
			{Concept: rental.FuelConcept(info.TankCapacity, info.FuelType), Amount: quote.FuelCost},
		},
	}
	if err := st.InsertInvoice(ctx, &inv); err != nil {
		return nil, repository.ClassifyWriteError(err)
	}

	return &Result{Reservation: res, Invoice: inv, Days: dur.Days}, nil
}

// publishConfirmed emits the booking.confirmed event.  Errors are logged
// and dropped; the booking has already committed.
func (s *Service) publishConfirmed(ctx context.Context, res *Result) {
	if s.events == nil {
		return
	}
	ev := queue.BookingConfirmedEvent{
		ReservationID: res.Reservation.ID,
		InvoiceID:     res.Invoice.ID,
		ClientNIF:     res.Reservation.ClientNIF,
		Plate:         res.Reservation.Plate,
		StartDate:     res.Reservation.StartDate.Format("2006-01-02"),
		EndDate:       res.Reservation.EndDate.Format("2006-01-02"),
		Days:          res.Days,
		RentalAmount:  res.Invoice.Lines[0].Amount.String(),
		FuelAmount:    res.Invoice.Lines[1].Amount.String(),
		TotalAmount:   res.Invoice.Amount.String(),
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.events.PublishBookingConfirmed(ctx, ev); err != nil {
		log.Printf("booking: publish confirmed event failed: %v", err)
	}
}

// txStore binds the repositories to one transaction.
type txStore struct {
	tx *sql.Tx
	s  *Service
}

func (st *txStore) ClientExists(ctx context.Context, nif string) (bool, error) {
	return st.s.clients.ExistsTx(ctx, st.tx, nif)
}

func (st *txStore) VehicleExists(ctx context.Context, plate string) (bool, error) {
	return st.s.vehicles.ExistsTx(ctx, st.tx, plate)
}

func (st *txStore) OverlapExists(ctx context.Context, res *model.Reservation) (bool, error) {
	return st.s.reservations.OverlapExistsTx(ctx, st.tx, res.Plate, res)
}

func (st *txStore) InsertReservation(ctx context.Context, res *model.Reservation) error {
	return st.s.reservations.CreateTx(ctx, st.tx, res)
}

func (st *txStore) PricingInfo(ctx context.Context, plate string) (rental.PricingInfo, error) {
	return st.s.vehicles.PricingInfoTx(ctx, st.tx, plate)
}

func (st *txStore) InsertInvoice(ctx context.Context, inv *model.Invoice) error {
	return st.s.invoices.CreateTx(ctx, st.tx, inv)
}

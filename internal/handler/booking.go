package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-rental/internal/booking"
	"github.com/iliyamo/vehicle-rental/internal/rental"
	"github.com/iliyamo/vehicle-rental/internal/repository"
)

// BookingHandler exposes the booking transaction and the record lookups
// around it.  The handler itself holds no transaction logic; it binds the
// request, calls the booking service and maps the domain error taxonomy to
// HTTP statuses.
type BookingHandler struct {
	Bookings     *booking.Service
	Clients      *repository.ClientRepo
	Reservations *repository.ReservationRepo
	Invoices     *repository.InvoiceRepo
}

// NewBookingHandler constructs a BookingHandler.  All dependencies must be
// non-nil.
func NewBookingHandler(svc *booking.Service, clients *repository.ClientRepo, reservations *repository.ReservationRepo, invoices *repository.InvoiceRepo) *BookingHandler {
	if svc == nil || clients == nil || reservations == nil || invoices == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: svc, Clients: clients, Reservations: reservations, Invoices: invoices}
}

// bookingReq is the JSON body of POST /v1/bookings.  Dates use the
// YYYY-MM-DD layout; end_date may be omitted for the default rental length.
type bookingReq struct {
	ClientNIF string `json:"client_nif"`
	Plate     string `json:"plate"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
}

// CreateBooking handles POST /v1/bookings.  It books the vehicle for the
// client over the requested interval in one atomic transaction and returns
// 201 with the reservation and invoice.  Error mapping: 404 for unknown
// client or vehicle, 400 for an invalid interval or body, 409 when the
// vehicle is already reserved or a storage constraint rejects the write,
// 500 for anything else.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ClientNIF == "" || req.Plate == "" || req.StartDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "client_nif, plate and start_date are required"})
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_date, want YYYY-MM-DD"})
	}
	var end *time.Time
	if req.EndDate != "" {
		e, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end_date, want YYYY-MM-DD"})
		}
		end = &e
	}

	res, err := h.Bookings.Book(c.Request().Context(), booking.Request{
		ClientNIF: req.ClientNIF,
		Plate:     req.Plate,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrClientNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found", "client_nif": req.ClientNIF})
		case errors.Is(err, repository.ErrVehicleNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found", "plate": req.Plate})
		case errors.Is(err, rental.ErrInvalidDuration):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "end date must be at least one day after start date"})
		case errors.Is(err, repository.ErrVehicleUnavailable):
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "vehicle already reserved for the requested dates",
				"plate": req.Plate,
			})
		case errors.Is(err, repository.ErrConstraintViolation):
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking rejected by storage constraint"})
		default:
			c.Logger().Errorf("booking failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
		}
	}
	return c.JSON(http.StatusCreated, res)
}

// VehicleReservations handles GET /v1/vehicles/:plate/reservations.  It
// returns the reservations agents consult to explain an availability
// rejection.
func (h *BookingHandler) VehicleReservations(c echo.Context) error {
	plate := c.Param("plate")
	if plate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plate"})
	}
	items, err := h.Reservations.ListByPlate(c.Request().Context(), plate)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ClientReservations handles GET /v1/clients/:nif/reservations.
func (h *BookingHandler) ClientReservations(c echo.Context) error {
	nif := c.Param("nif")
	if nif == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid nif"})
	}
	ctx := c.Request().Context()
	if _, err := h.Clients.GetByNIF(ctx, nif); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load client"})
	}
	items, err := h.Reservations.ListByClient(ctx, nif)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetInvoice handles GET /v1/invoices/:id.  It returns the invoice with
// its two lines; the line amounts always sum to the invoice amount.
func (h *BookingHandler) GetInvoice(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid invoice id"})
	}
	inv, err := h.Invoices.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "invoice not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load invoice"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": inv})
}

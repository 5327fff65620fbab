// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// BookingConfirmedEvent is published after a booking transaction commits.
// It carries enough of the reservation and invoice for downstream
// consumers to log, notify or feed analytics without querying the primary
// database.  Monetary amounts are decimal strings to keep them exact.
type BookingConfirmedEvent struct {
	ReservationID int64  `json:"reservation_id"`
	InvoiceID     int64  `json:"invoice_id"`
	ClientNIF     string `json:"client_nif"`
	Plate         string `json:"plate"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Days          int    `json:"days"`
	RentalAmount  string `json:"rental_amount"`
	FuelAmount    string `json:"fuel_amount"`
	TotalAmount   string `json:"total_amount"`
	ConfirmedAt   string `json:"confirmed_at"`
}

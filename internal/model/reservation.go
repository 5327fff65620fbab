package model

import "time"

// Reservation records that a vehicle is booked for a client over a closed
// day range.  Start and end dates are both inclusive; for any vehicle no
// two reservations' day ranges may overlap, not even at a boundary day.
// Reservations are created by the booking transaction and never updated
// or deleted afterwards.
//
// Fields:
//  ID        – generated primary key.
//  ClientNIF – client the vehicle is reserved for.
//  Plate     – reserved vehicle.
//  StartDate – first rental day, inclusive.
//  EndDate   – last rental day, inclusive.
type Reservation struct {
	ID        int64     `json:"id"`         // reservations.id
	ClientNIF string    `json:"client_nif"` // reservations.client_nif
	Plate     string    `json:"plate"`      // reservations.plate
	StartDate time.Time `json:"start_date"` // reservations.start_date
	EndDate   time.Time `json:"end_date"`   // reservations.end_date
}

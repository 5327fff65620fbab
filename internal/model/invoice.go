package model

import "github.com/shopspring/decimal"

// Invoice is the billing record produced by one successful booking.  Its
// amount equals the exact sum of its lines.
//
// Fields:
//  ID        – generated primary key.
//  Amount    – invoice total, exact decimal.
//  ClientNIF – billed client.
type Invoice struct {
	ID        int64           `json:"id"`         // invoices.id
	Amount    decimal.Decimal `json:"amount"`     // invoices.amount
	ClientNIF string          `json:"client_nif"` // invoices.client_nif
	Lines     []InvoiceLine   `json:"lines,omitempty"`
}

// InvoiceLine is one charge on an invoice.  A booking always produces
// exactly two: the rental charge and the full-tank fuel charge.
type InvoiceLine struct {
	InvoiceID int64           `json:"invoice_id"` // invoice_lines.invoice_id
	Concept   string          `json:"concept"`    // invoice_lines.concept
	Amount    decimal.Decimal `json:"amount"`     // invoice_lines.amount
}

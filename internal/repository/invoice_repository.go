package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/vehicle-rental/internal/model"
)

// InvoiceRepo provides access to invoices and their lines.  A booking
// writes one invoice header and exactly two lines; the amounts of the
// lines sum to the header amount by construction and the store never
// sees one without the others thanks to the shared transaction.
type InvoiceRepo struct{ DB *sql.DB }

// NewInvoiceRepo returns an InvoiceRepo bound to the given database.
func NewInvoiceRepo(db *sql.DB) *InvoiceRepo { return &InvoiceRepo{DB: db} }

// CreateTx inserts the invoice header and all of its lines inside the
// booking transaction.  The generated invoice ID is populated on the
// record and stamped onto each line.  The caller owns commit and rollback.
func (r *InvoiceRepo) CreateTx(ctx context.Context, tx *sql.Tx, inv *model.Invoice) error {
	result, err := tx.ExecContext(ctx,
		"INSERT INTO invoices (amount, client_nif) VALUES (?, ?)",
		inv.Amount, inv.ClientNIF)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	inv.ID = id
	const lineQ = `INSERT INTO invoice_lines (invoice_id, concept, amount) VALUES (?, ?, ?)`
	for i := range inv.Lines {
		inv.Lines[i].InvoiceID = id
		if _, err := tx.ExecContext(ctx, lineQ, id, inv.Lines[i].Concept, inv.Lines[i].Amount); err != nil {
			return err
		}
	}
	return nil
}

// GetByID loads an invoice together with its lines.  Returns sql.ErrNoRows
// when the invoice does not exist.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (model.Invoice, error) {
	var inv model.Invoice
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, amount, client_nif FROM invoices WHERE id = ?", id).
		Scan(&inv.ID, &inv.Amount, &inv.ClientNIF)
	if err != nil {
		return model.Invoice{}, err
	}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT invoice_id, concept, amount FROM invoice_lines WHERE invoice_id = ?", id)
	if err != nil {
		return model.Invoice{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var line model.InvoiceLine
		if err := rows.Scan(&line.InvoiceID, &line.Concept, &line.Amount); err != nil {
			return model.Invoice{}, err
		}
		inv.Lines = append(inv.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return model.Invoice{}, err
	}
	return inv, nil
}

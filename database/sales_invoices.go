package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"ptra/model"
)

func CreateSalesInvoiceInTx(tx *sqlx.Tx, inv model.SalesInvoice) (int64, error) {
	const q = `
		INSERT INTO sales_invoices (invoiceNumber, date, customerId, productId, totalPrice, notaAngka, driverName, plateNumber, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := tx.Exec(q, inv.InvoiceNumber, inv.Date, inv.CustomerID, inv.ProductID, inv.TotalPrice, inv.NotaAngka, inv.DriverName, inv.PlateNumber, inv.Notes)
	if err != nil {
		return 0, fmt.Errorf("CreateSalesInvoiceInTx (InvoiceNumber: %s) failed: %w", inv.InvoiceNumber, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateSalesInvoiceInTx failed to read new id: %w", err)
	}
	return id, nil
}

// CreateInvoiceRowInTx inserts one denormalized invoice row. The statement is
// strictly positional: invoice_id, row_number, then the ten length slots, so
// args must hold exactly twelve values.
func CreateInvoiceRowInTx(tx *sqlx.Tx, args []interface{}) error {
	if len(args) != 12 {
		return fmt.Errorf("CreateInvoiceRowInTx expects 12 positional args, got %d", len(args))
	}
	const q = `
		INSERT INTO invoice_rows (invoice_id, row_number, c0, c1, c2, c3, c4, c5, c6, c7, c8, c9)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.Exec(q, args...); err != nil {
		return fmt.Errorf("CreateInvoiceRowInTx failed: %w", err)
	}
	return nil
}

package migrator

import (
	"log"
	"strconv"

	"github.com/jmoiron/sqlx"

	"ptra/database"
	"ptra/model"
	"ptra/sqldump"
)

// invoiceRowParams is the positional arity of the invoice_rows insert:
// invoice_id, row_number, then the ten c0..c9 length slots.
const invoiceRowParams = 12

// migrateSalesInvoices imports `faktur_jual` headers and their `barang_jual`
// line rows. A header whose customer or product code does not resolve is
// logged and skipped whole; its line rows then fail the invoice lookup and are
// skipped too, so no orphan rows are ever written.
func migrateSalesInvoices(tx *sqlx.Tx, dump string, customerMap, productMap map[string]int64) error {
	log.Println("--- Migrating sales invoices ---")
	invoiceMap := make(map[string]int64)

	// faktur_jual: no_faktur, tgl, kode_costumer, kode_barang, 3 unused,
	//              total, terbilang, sopir, no_pol, ket
	for _, rec := range sqldump.ExtractInserts(dump, "faktur_jual") {
		noFaktur := field(rec, 0)

		customerID, ok := customerMap[field(rec, 2)]
		if !ok {
			log.Printf("WARN: skipping invoice %s: customer code %s not found", noFaktur, field(rec, 2))
			continue
		}
		productID, ok := productMap[field(rec, 3)]
		if !ok {
			log.Printf("WARN: skipping invoice %s: product code %s not found", noFaktur, field(rec, 3))
			continue
		}

		id, err := database.CreateSalesInvoiceInTx(tx, model.SalesInvoice{
			InvoiceNumber: noFaktur,
			Date:          field(rec, 1),
			CustomerID:    customerID,
			ProductID:     productID,
			TotalPrice:    parseFloatOrZero(field(rec, 7)),
			NotaAngka:     field(rec, 8),
			DriverName:    field(rec, 9),
			PlateNumber:   field(rec, 10),
			Notes:         field(rec, 11),
		})
		if err != nil {
			return err
		}
		invoiceMap[noFaktur] = id
	}

	// barang_jual: id (unused), no_faktur, then up to ten roll lengths.
	// One legacy row becomes one invoice_rows row with row_number 0.
	rows := sqldump.ExtractInserts(dump, "barang_jual")
	log.Printf("Migrating %d invoice line rows.", len(rows))
	for _, rec := range rows {
		noFaktur := field(rec, 1)
		invoiceID, ok := invoiceMap[noFaktur]
		if !ok {
			log.Printf("WARN: skipping invoice row: invoice number %s not found in map", noFaktur)
			continue
		}

		var rolls []string
		if len(rec) > 2 {
			rolls = rec[2:]
		}
		if len(rolls) > 10 {
			rolls = rolls[:10]
		}

		args := make([]interface{}, 0, invoiceRowParams)
		args = append(args, invoiceID, 0)
		for _, r := range rolls {
			if n, err := strconv.ParseFloat(r, 64); err == nil {
				args = append(args, n)
			} else {
				args = append(args, nil)
			}
		}
		// Right-pad with NULLs to the full positional arity.
		for len(args) < invoiceRowParams {
			args = append(args, nil)
		}

		if err := database.CreateInvoiceRowInTx(tx, args); err != nil {
			return err
		}
	}

	log.Println("Sales invoice migration finished.")
	return nil
}

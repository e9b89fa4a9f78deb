package database

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schemaSQL string

// TargetTables lists every table the importer owns during a run. The last
// three are cleared but never repopulated here; the desktop application
// writes them.
var TargetTables = []string{
	"products", "customers", "suppliers",
	"sales_invoices", "invoice_rows",
	"dyeing_orders", "dyeing_order_items",
	"return_invoices", "return_invoice_rows",
	"dyeing_results", "dyeing_result_items",
}

// ApplySchema creates the target tables if they do not exist yet.
func ApplySchema(db *sqlx.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// ClearTables empties all target tables and resets their auto-increment
// counters, inside its own transaction.
func ClearTables(db *sqlx.DB) (err error) {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for table clearing: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	for _, table := range TargetTables {
		log.Printf("Clearing table %s...", table)
		if _, err = tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
		if _, err = tx.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table); err != nil {
			return fmt.Errorf("failed to reset sequence for %s: %w", table, err)
		}
	}
	return nil
}

// CountRows returns the row count of a single table.
func CountRows(db *sqlx.DB, table string) (int64, error) {
	var n int64
	if err := db.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return n, nil
}

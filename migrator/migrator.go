// Package migrator moves the legacy dump tables into the application schema.
// Each table migrator consumes extracted tuples, resolves foreign keys through
// legacy-code maps built by earlier migrators, and writes through the
// database package. Everything after table clearing runs in one transaction.
package migrator

import (
	"fmt"
	"log"
	"strconv"

	"github.com/jmoiron/sqlx"

	"ptra/database"
)

// Run executes the full migration: clear the target tables, then migrate
// products, customers, suppliers, sales invoices and dyeing orders inside a
// single transaction. Any unexpected error rolls the whole migration back;
// rows that merely fail foreign-key resolution are logged and skipped by the
// individual migrators and never abort the run.
func Run(db *sqlx.DB, dump string) (err error) {
	log.Println("--- Clearing target tables ---")
	if err := database.ClearTables(db); err != nil {
		return fmt.Errorf("failed to clear target tables: %w", err)
	}
	log.Println("Finished clearing tables.")

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin migration transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			log.Printf("Rolling back migration due to error: %v", err)
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	productMap, err := migrateProducts(tx, dump)
	if err != nil {
		return err
	}
	customerMap, err := migrateCustomers(tx, dump)
	if err != nil {
		return err
	}
	supplierMap, err := migrateSuppliers(tx, dump)
	if err != nil {
		return err
	}
	if err = migrateSalesInvoices(tx, dump, customerMap, productMap); err != nil {
		return err
	}
	if err = migrateDyeingOrders(tx, dump, supplierMap); err != nil {
		return err
	}
	return nil
}

// LogSummary logs the row count of every target table, typically after a
// successful commit.
func LogSummary(db *sqlx.DB) {
	log.Println("--- Import summary ---")
	for _, table := range database.TargetTables {
		n, err := database.CountRows(db, table)
		if err != nil {
			log.Printf("WARN: could not count rows in %s: %v", table, err)
			continue
		}
		log.Printf("  %s: %d rows", table, n)
	}
}

// field returns the i-th extracted field, or the empty string when the legacy
// tuple is shorter than expected.
func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

// parseFloatOrZero coerces invalid or empty numeric text to 0, like the
// legacy tooling did.
func parseFloatOrZero(s string) float64 {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseIntOrZero(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

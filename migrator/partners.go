package migrator

import (
	"log"

	"github.com/jmoiron/sqlx"

	"ptra/database"
	"ptra/model"
	"ptra/sqldump"
)

// migrateCustomers imports the legacy `costumers` table (the misspelling is
// the legacy table's) and returns the legacy customer code -> new id map.
func migrateCustomers(tx *sqlx.Tx, dump string) (map[string]int64, error) {
	log.Println("--- Migrating customers ---")
	customerMap := make(map[string]int64)

	// costumers: kode_costumer, nama_costumer, alamat, no_telp,
	//            no_npwp, nama_npwp, alamat_npwp, no_telp_npwp
	for _, rec := range sqldump.ExtractInserts(dump, "costumers") {
		id, err := database.CreateCustomerInTx(tx, model.Customer{
			Name:        field(rec, 1),
			Address:     field(rec, 2),
			Phone:       field(rec, 3),
			NpwpNumber:  field(rec, 4),
			NpwpName:    field(rec, 5),
			NpwpAddress: field(rec, 6),
			NpwpPhone:   field(rec, 7),
			Status:      "Active",
			Avatar:      "",
		})
		if err != nil {
			return nil, err
		}
		customerMap[field(rec, 0)] = id
	}

	log.Println("Customer migration finished.")
	return customerMap, nil
}

// migrateSuppliers imports the legacy `sumpier` table (again the legacy
// misspelling) and returns the legacy supplier code -> new id map.
func migrateSuppliers(tx *sqlx.Tx, dump string) (map[string]int64, error) {
	log.Println("--- Migrating suppliers ---")
	supplierMap := make(map[string]int64)

	// sumpier: kode_sumpier, nama_sumpier, alamat, no_telp
	for _, rec := range sqldump.ExtractInserts(dump, "sumpier") {
		id, err := database.CreateSupplierInTx(tx, model.Supplier{
			Name:    field(rec, 1),
			Address: field(rec, 2),
			Phone:   field(rec, 3),
		})
		if err != nil {
			return nil, err
		}
		supplierMap[field(rec, 0)] = id
	}

	log.Println("Supplier migration finished.")
	return supplierMap, nil
}

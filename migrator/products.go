package migrator

import (
	"log"

	"github.com/jmoiron/sqlx"

	"ptra/database"
	"ptra/model"
	"ptra/sqldump"
)

// migrateProducts imports sellable products from `barang` and dyeing products
// from `barangcelup`, and returns the legacy product code -> new id map.
// Dyeing products carry no stable legacy code, so they are deduplicated by
// exact name against already-inserted products and contribute no map entries;
// downstream consumers resolve them by name instead.
func migrateProducts(tx *sqlx.Tx, dump string) (map[string]int64, error) {
	log.Println("--- Migrating products ---")
	productMap := make(map[string]int64)

	// barang: kode_barang, nama_barang, harga, id_satuan, ket
	barang := sqldump.ExtractInserts(dump, "barang")
	log.Printf("Migrating %d products from table 'barang'", len(barang))
	for _, rec := range barang {
		id, err := database.CreateProductInTx(tx, model.Product{
			Name:    field(rec, 1),
			Price:   parseFloatOrZero(field(rec, 2)),
			Comment: field(rec, 4),
			Type:    model.ProductTypeJual,
		})
		if err != nil {
			return nil, err
		}
		productMap[field(rec, 0)] = id
	}

	// barangcelup: kode_barang (auto-increment, not stable), nama_barang, harga
	barangCelup := sqldump.ExtractInserts(dump, "barangcelup")
	log.Printf("Migrating %d products from table 'barangcelup'", len(barangCelup))
	for _, rec := range barangCelup {
		name := field(rec, 1)
		_, exists, err := database.GetProductIDByName(tx, name)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		if _, err := database.CreateProductInTx(tx, model.Product{
			Name:    name,
			Price:   parseFloatOrZero(field(rec, 2)),
			Comment: "",
			Type:    model.ProductTypeCelup,
		}); err != nil {
			return nil, err
		}
	}

	log.Println("Product migration finished.")
	return productMap, nil
}

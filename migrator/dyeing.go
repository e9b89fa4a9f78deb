package migrator

import (
	"database/sql"
	"log"

	"github.com/jmoiron/sqlx"

	"ptra/database"
	"ptra/model"
	"ptra/sqldump"
)

// legacyNull is the literal null marker left in extracted fields.
const legacyNull = "NULL"

// sjBucket collects the legacy item rows of one SJ number in first-seen order.
type sjBucket struct {
	sj   string
	rows [][]string
}

// migrateDyeingOrders imports `order_celup` headers and their `barang_celup`
// paired line items. The supplier resolves through the supplier map; the
// product resolves by display name, because dyeing products have no stable
// legacy code (the legacy header stores the product name in its code field).
func migrateDyeingOrders(tx *sqlx.Tx, dump string, supplierMap map[string]int64) error {
	log.Println("--- Migrating dyeing orders ---")
	orderMap := make(map[string]int64)

	// order_celup: no_sj, tgl, kode_sumpier, kode_barang (product name),
	//              harga, warna, setting, finish, jenis_kendaraan, no_pol,
	//              ket, total_rol, total_meter, total_kg, total_harga
	for _, rec := range sqldump.ExtractInserts(dump, "order_celup") {
		noSj := field(rec, 0)

		supplierID, ok := supplierMap[field(rec, 2)]
		if !ok {
			log.Printf("WARN: skipping dyeing order %s: supplier code %s not found", noSj, field(rec, 2))
			continue
		}
		productID, found, err := database.GetProductIDByName(tx, field(rec, 3))
		if err != nil {
			return err
		}
		if !found {
			log.Printf("WARN: skipping dyeing order %s: product %s not found", noSj, field(rec, 3))
			continue
		}

		id, err := database.CreateDyeingOrderInTx(tx, model.DyeingOrder{
			SjNumber:      noSj,
			Date:          field(rec, 1),
			SupplierID:    supplierID,
			ProductID:     productID,
			PricePerMeter: parseFloatOrZero(field(rec, 4)),
			Color:         field(rec, 5),
			Setting:       field(rec, 6),
			Finish:        field(rec, 7),
			VehicleType:   field(rec, 8),
			VehiclePlate:  field(rec, 9),
			Notes:         field(rec, 10),
			TotalRolls:    parseIntOrZero(field(rec, 11)),
			TotalMeters:   parseFloatOrZero(field(rec, 12)),
			TotalWeight:   parseFloatOrZero(field(rec, 13)),
			TotalPrice:    parseFloatOrZero(field(rec, 14)),
		})
		if err != nil {
			return err
		}
		orderMap[noSj] = id
	}

	// barang_celup: id (unused), no_sj, then alternating length/weight values.
	// Rows are bucketed per SJ number first because one order spreads across
	// several legacy rows; bucket order follows extraction order.
	items := sqldump.ExtractInserts(dump, "barang_celup")
	log.Printf("Migrating %d dyeing order item rows.", len(items))

	var buckets []sjBucket
	bucketIndex := make(map[string]int)
	for _, rec := range items {
		sj := field(rec, 1)
		var pairs []string
		if len(rec) > 2 {
			pairs = rec[2:]
		}
		if i, ok := bucketIndex[sj]; ok {
			buckets[i].rows = append(buckets[i].rows, pairs)
		} else {
			bucketIndex[sj] = len(buckets)
			buckets = append(buckets, sjBucket{sj: sj, rows: [][]string{pairs}})
		}
	}

	for _, b := range buckets {
		orderID, ok := orderMap[b.sj]
		if !ok {
			log.Printf("WARN: skipping dyeing order items: SJ number %s not found in map", b.sj)
			continue
		}
		for rowNumber, row := range b.rows {
			for i := 0; i < len(row); i += 2 {
				// A pair is written only when the length side is present.
				// A weight paired with a NULL length is dropped with it.
				panjang := row[i]
				if panjang == legacyNull {
					continue
				}
				berat := sql.NullString{}
				if i+1 < len(row) {
					berat = sql.NullString{String: row[i+1], Valid: true}
				}
				if err := database.CreateDyeingOrderItemInTx(tx, model.DyeingOrderItem{
					OrderID:   orderID,
					RowNumber: rowNumber,
					PairIndex: i / 2,
					Panjang:   panjang,
					Berat:     berat,
				}); err != nil {
					return err
				}
			}
		}
	}

	log.Println("Dyeing order migration finished.")
	return nil
}

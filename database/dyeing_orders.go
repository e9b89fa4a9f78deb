package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"ptra/model"
)

func CreateDyeingOrderInTx(tx *sqlx.Tx, o model.DyeingOrder) (int64, error) {
	const q = `
		INSERT INTO dyeing_orders (sjNumber, date, supplierId, productId, pricePerMeter, color, setting, finish, vehicleType, vehiclePlate, notes, totalRolls, totalMeters, totalWeight, totalPrice)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := tx.Exec(q,
		o.SjNumber, o.Date, o.SupplierID, o.ProductID, o.PricePerMeter,
		o.Color, o.Setting, o.Finish, o.VehicleType, o.VehiclePlate, o.Notes,
		o.TotalRolls, o.TotalMeters, o.TotalWeight, o.TotalPrice)
	if err != nil {
		return 0, fmt.Errorf("CreateDyeingOrderInTx (SjNumber: %s) failed: %w", o.SjNumber, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateDyeingOrderInTx failed to read new id: %w", err)
	}
	return id, nil
}

func CreateDyeingOrderItemInTx(tx *sqlx.Tx, item model.DyeingOrderItem) error {
	const q = `
		INSERT INTO dyeing_order_items (order_id, row_number, pair_index, panjang, berat)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := tx.Exec(q, item.OrderID, item.RowNumber, item.PairIndex, item.Panjang, item.Berat); err != nil {
		return fmt.Errorf("CreateDyeingOrderItemInTx (order %d, row %d, pair %d) failed: %w",
			item.OrderID, item.RowNumber, item.PairIndex, err)
	}
	return nil
}

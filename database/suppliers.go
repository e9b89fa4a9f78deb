package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"ptra/model"
)

func CreateSupplierInTx(tx *sqlx.Tx, s model.Supplier) (int64, error) {
	const q = `INSERT INTO suppliers (name, address, phone) VALUES (?, ?, ?)`
	res, err := tx.Exec(q, s.Name, s.Address, s.Phone)
	if err != nil {
		return 0, fmt.Errorf("CreateSupplierInTx (Name: %s) failed: %w", s.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateSupplierInTx failed to read new id: %w", err)
	}
	return id, nil
}

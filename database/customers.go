package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"ptra/model"
)

func CreateCustomerInTx(tx *sqlx.Tx, c model.Customer) (int64, error) {
	const q = `
		INSERT INTO customers (name, address, phone, npwpNumber, npwpName, npwpAddress, npwpPhone, status, avatar)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := tx.Exec(q, c.Name, c.Address, c.Phone, c.NpwpNumber, c.NpwpName, c.NpwpAddress, c.NpwpPhone, c.Status, c.Avatar)
	if err != nil {
		return 0, fmt.Errorf("CreateCustomerInTx (Name: %s) failed: %w", c.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateCustomerInTx failed to read new id: %w", err)
	}
	return id, nil
}

package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ptra/model"
)

func CreateProductInTx(tx *sqlx.Tx, p model.Product) (int64, error) {
	const q = `INSERT INTO products (name, price, comment, type) VALUES (?, ?, ?, ?)`
	res, err := tx.Exec(q, p.Name, p.Price, p.Comment, p.Type)
	if err != nil {
		return 0, fmt.Errorf("CreateProductInTx (Name: %s) failed: %w", p.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateProductInTx failed to read new id: %w", err)
	}
	return id, nil
}

// GetProductIDByName looks a product up by its exact display name. The second
// return value is false when no product matches.
func GetProductIDByName(tx *sqlx.Tx, name string) (int64, bool, error) {
	var id int64
	const q = `SELECT id FROM products WHERE name = ? LIMIT 1`
	err := tx.QueryRow(q, name).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("GetProductIDByName (Name: %s) failed: %w", name, err)
	}
	return id, true, nil
}

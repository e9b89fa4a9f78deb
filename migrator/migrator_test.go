package migrator

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptra/database"
)

// testDump covers every legacy table, including rows with unresolvable
// references that the migrators must warn about and skip.
const testDump = "INSERT INTO `barang` (`kode_barang`, `nama_barang`, `harga`, `id_satuan`, `ket`) VALUES ('B001', 'Kain X', 1000, 1, 'bagus'),('B002', 'Kain Y', 2000, 1, '');\n" +
	"INSERT INTO `barangcelup` (`kode_barang`, `nama_barang`, `harga`) VALUES (7, 'Kain X', '500'),(8, 'Celup Z', '750');\n" +
	"INSERT INTO `costumers` (`kode_costumer`, `nama_costumer`, `alamat`, `no_telp`, `no_npwp`, `nama_npwp`, `alamat_npwp`, `no_telp_npwp`) VALUES ('7', 'Toko A', 'Jl. Mawar 1', '0811', 'NPWP1', 'PT A', 'Jl. NPWP 2', '0812');\n" +
	"INSERT INTO `sumpier` (`kode_sumpier`, `nama_sumpier`, `alamat`, `no_telp`) VALUES ('S01', 'CV Celup', 'Jl. Industri 3', '022');\n" +
	"INSERT INTO `faktur_jual` (`no_faktur`, `tgl`, `kode_costumer`, `kode_barang`, `a`, `b`, `c`, `total`, `terbilang`, `sopir`, `no_pol`, `ket`) VALUES " +
	"('F001', '2020-01-02', '7', 'B001', '', '', '', '150000', 'seratus lima puluh ribu', 'Budi', 'D 1234 AB', 'lunas')," +
	"('F002', '2020-01-03', '9', 'B001', '', '', '', '10', '', '', '', '')," +
	"('F003', '2020-01-04', '7', 'B999', '', '', '', '10', '', '', '', '');\n" +
	"INSERT INTO `barang_jual` (`id`, `no_faktur`, `p1`, `p2`, `p3`, `p4`) VALUES (99, 'F001', '10', '20', 'NULL', '30'),(100, 'F999', '5', '6', '7', '8');\n" +
	"INSERT INTO `order_celup` (`no_sj`, `tgl`, `kode_sumpier`, `kode_barang`, `harga`, `warna`, `setting`, `finish`, `jenis_kendaraan`, `no_pol`, `ket`, `total_rol`, `total_meter`, `total_kg`, `total_harga`) VALUES " +
	"('C001', '2020-02-01', 'S01', 'Celup Z', '1500', 'Biru', '120', 'soft', 'Truk', 'D 5678 CD', 'cat ulang', '3', '120.5', '80.25', '180750')," +
	"('C002', '2020-02-02', 'S99', 'Celup Z', '1', '', '', '', '', '', '', '0', '0', '0', '0')," +
	"('C003', '2020-02-03', 'S01', 'Tidak Ada', '1', '', '', '', '', '', '', '0', '0', '0', '0');\n" +
	"INSERT INTO `barang_celup` (`id`, `no_sj`, `p1`, `b1`, `p2`, `b2`) VALUES (1, 'C001', '50', '10', 'NULL', '20'),(2, 'C999', '5', '1', 'NULL', 'NULL');\n"

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.ApplySchema(db))
	return db
}

func countRows(t *testing.T, db *sqlx.DB, table string) int64 {
	t.Helper()
	n, err := database.CountRows(db, table)
	require.NoError(t, err)
	return n
}

func TestRun_FullMigration(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(db, testDump))

	// 2 barang + 1 new barangcelup; 'Kain X' deduplicates by name.
	assert.EqualValues(t, 3, countRows(t, db, "products"))
	assert.EqualValues(t, 1, countRows(t, db, "customers"))
	assert.EqualValues(t, 1, countRows(t, db, "suppliers"))

	// F002 (unknown customer) and F003 (unknown product) are skipped.
	assert.EqualValues(t, 1, countRows(t, db, "sales_invoices"))
	// The barang_jual row for F999 is skipped with its invoice.
	assert.EqualValues(t, 1, countRows(t, db, "invoice_rows"))

	// C002 (unknown supplier) and C003 (unknown product name) are skipped.
	assert.EqualValues(t, 1, countRows(t, db, "dyeing_orders"))
	assert.EqualValues(t, 1, countRows(t, db, "dyeing_order_items"))
}

func TestRun_ProductDedupByName(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(db, testDump))

	var products []struct {
		ID   int64  `db:"id"`
		Type string `db:"type"`
	}
	require.NoError(t, db.Select(&products, "SELECT id, type FROM products WHERE name = 'Kain X'"))
	require.Len(t, products, 1)
	// The earlier sell product wins; its id stays the lowest assigned.
	assert.Equal(t, "JUAL", products[0].Type)
	assert.EqualValues(t, 1, products[0].ID)
}

func TestRun_PaddedInvoiceRow(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(db, testDump))

	var row struct {
		InvoiceID int64           `db:"invoice_id"`
		RowNumber int             `db:"row_number"`
		C0        sql.NullFloat64 `db:"c0"`
		C1        sql.NullFloat64 `db:"c1"`
		C2        sql.NullFloat64 `db:"c2"`
		C3        sql.NullFloat64 `db:"c3"`
		C4        sql.NullFloat64 `db:"c4"`
		C9        sql.NullFloat64 `db:"c9"`
	}
	require.NoError(t, db.Get(&row, "SELECT invoice_id, row_number, c0, c1, c2, c3, c4, c9 FROM invoice_rows"))

	var invoiceID int64
	require.NoError(t, db.Get(&invoiceID, "SELECT id FROM sales_invoices WHERE invoiceNumber = 'F001'"))
	assert.Equal(t, invoiceID, row.InvoiceID)
	assert.Equal(t, 0, row.RowNumber)

	require.True(t, row.C0.Valid)
	assert.Equal(t, 10.0, row.C0.Float64)
	require.True(t, row.C1.Valid)
	assert.Equal(t, 20.0, row.C1.Float64)
	assert.False(t, row.C2.Valid) // literal NULL text does not parse
	require.True(t, row.C3.Valid)
	assert.Equal(t, 30.0, row.C3.Float64)
	assert.False(t, row.C4.Valid) // right-padded
	assert.False(t, row.C9.Valid)
}

func TestRun_AsymmetricPairSkip(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(db, testDump))

	var items []struct {
		RowNumber int            `db:"row_number"`
		PairIndex int            `db:"pair_index"`
		Panjang   string         `db:"panjang"`
		Berat     sql.NullString `db:"berat"`
	}
	require.NoError(t, db.Select(&items, "SELECT row_number, pair_index, panjang, berat FROM dyeing_order_items ORDER BY row_number, pair_index"))

	// Pair 1 of the C001 row has a weight (20) but a NULL length, so the
	// whole pair is dropped.
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].RowNumber)
	assert.Equal(t, 0, items[0].PairIndex)
	assert.Equal(t, "50", items[0].Panjang)
	require.True(t, items[0].Berat.Valid)
	assert.Equal(t, "10", items[0].Berat.String)
}

func TestRun_IdempotentRerun(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(db, testDump))

	first := make(map[string]int64)
	for _, table := range database.TargetTables {
		first[table] = countRows(t, db, table)
	}

	require.NoError(t, Run(db, testDump))
	for _, table := range database.TargetTables {
		assert.Equal(t, first[table], countRows(t, db, table), "table %s", table)
	}
}

func TestRun_RollbackOnUnexpectedError(t *testing.T) {
	// Two fully resolvable invoices sharing one invoice number: the second
	// insert violates the UNIQUE constraint, which must abort and roll back
	// the entire run, products and customers included.
	dump := "INSERT INTO `barang` (`kode_barang`, `nama_barang`, `harga`, `id_satuan`, `ket`) VALUES ('B001', 'Kain X', 1000, 1, '');\n" +
		"INSERT INTO `costumers` (`kode_costumer`, `nama_costumer`, `alamat`, `no_telp`, `no_npwp`, `nama_npwp`, `alamat_npwp`, `no_telp_npwp`) VALUES ('7', 'Toko A', '', '', '', '', '', '');\n" +
		"INSERT INTO `faktur_jual` (`no_faktur`, `tgl`, `kode_costumer`, `kode_barang`, `a`, `b`, `c`, `total`, `terbilang`, `sopir`, `no_pol`, `ket`) VALUES " +
		"('F001', '2020-01-02', '7', 'B001', '', '', '', '1', '', '', '', '')," +
		"('F001', '2020-01-03', '7', 'B001', '', '', '', '2', '', '', '', '');\n"

	db := newTestDB(t)
	err := Run(db, dump)
	require.Error(t, err)

	for _, table := range database.TargetTables {
		assert.EqualValues(t, 0, countRows(t, db, table), "table %s", table)
	}
}

func TestMigrateProducts_MapCoversSellProductsOnly(t *testing.T) {
	db := newTestDB(t)
	tx, err := db.Beginx()
	require.NoError(t, err)
	defer tx.Rollback()

	productMap, err := migrateProducts(tx, testDump)
	require.NoError(t, err)

	assert.Len(t, productMap, 2)
	assert.Contains(t, productMap, "B001")
	assert.Contains(t, productMap, "B002")
	// Dye products have no stable legacy code and stay out of the map.
}

func TestMigrateProducts_InvalidPriceCoercesToZero(t *testing.T) {
	dump := "INSERT INTO `barang` (`kode_barang`, `nama_barang`, `harga`, `id_satuan`, `ket`) VALUES ('B001', 'Kain X', 'abc', 1, '');"

	db := newTestDB(t)
	tx, err := db.Beginx()
	require.NoError(t, err)
	defer tx.Rollback()

	_, err = migrateProducts(tx, dump)
	require.NoError(t, err)

	var price float64
	require.NoError(t, tx.Get(&price, "SELECT price FROM products WHERE name = 'Kain X'"))
	assert.Equal(t, 0.0, price)
}

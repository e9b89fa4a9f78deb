package model

import "database/sql"

// Product types as stored in the products.type column.
const (
	ProductTypeJual  = "JUAL"  // sellable fabric
	ProductTypeCelup = "CELUP" // dyeing product
)

type Product struct {
	ID      int64   `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	Price   float64 `db:"price" json:"price"`
	Comment string  `db:"comment" json:"comment"`
	Type    string  `db:"type" json:"type"`
}

type Customer struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Address     string `db:"address" json:"address"`
	Phone       string `db:"phone" json:"phone"`
	NpwpNumber  string `db:"npwpNumber" json:"npwpNumber"`
	NpwpName    string `db:"npwpName" json:"npwpName"`
	NpwpAddress string `db:"npwpAddress" json:"npwpAddress"`
	NpwpPhone   string `db:"npwpPhone" json:"npwpPhone"`
	Status      string `db:"status" json:"status"`
	Avatar      string `db:"avatar" json:"avatar"`
}

type Supplier struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Address string `db:"address" json:"address"`
	Phone   string `db:"phone" json:"phone"`
}

type SalesInvoice struct {
	ID            int64   `db:"id" json:"id"`
	InvoiceNumber string  `db:"invoiceNumber" json:"invoiceNumber"`
	Date          string  `db:"date" json:"date"`
	CustomerID    int64   `db:"customerId" json:"customerId"`
	ProductID     int64   `db:"productId" json:"productId"`
	TotalPrice    float64 `db:"totalPrice" json:"totalPrice"`
	NotaAngka     string  `db:"notaAngka" json:"notaAngka"`
	DriverName    string  `db:"driverName" json:"driverName"`
	PlateNumber   string  `db:"plateNumber" json:"plateNumber"`
	Notes         string  `db:"notes" json:"notes"`
}

type DyeingOrder struct {
	ID            int64   `db:"id" json:"id"`
	SjNumber      string  `db:"sjNumber" json:"sjNumber"`
	Date          string  `db:"date" json:"date"`
	SupplierID    int64   `db:"supplierId" json:"supplierId"`
	ProductID     int64   `db:"productId" json:"productId"`
	PricePerMeter float64 `db:"pricePerMeter" json:"pricePerMeter"`
	Color         string  `db:"color" json:"color"`
	Setting       string  `db:"setting" json:"setting"`
	Finish        string  `db:"finish" json:"finish"`
	VehicleType   string  `db:"vehicleType" json:"vehicleType"`
	VehiclePlate  string  `db:"vehiclePlate" json:"vehiclePlate"`
	Notes         string  `db:"notes" json:"notes"`
	TotalRolls    int64   `db:"totalRolls" json:"totalRolls"`
	TotalMeters   float64 `db:"totalMeters" json:"totalMeters"`
	TotalWeight   float64 `db:"totalWeight" json:"totalWeight"`
	TotalPrice    float64 `db:"totalPrice" json:"totalPrice"`
}

// DyeingOrderItem is one (length, weight) roll pair of a dyeing order row.
// The values are stored as the raw legacy text, matching the target schema;
// Berat is null when the legacy row ends on an unpaired length value.
type DyeingOrderItem struct {
	ID        int64          `db:"id" json:"id"`
	OrderID   int64          `db:"order_id" json:"orderId"`
	RowNumber int            `db:"row_number" json:"rowNumber"`
	PairIndex int            `db:"pair_index" json:"pairIndex"`
	Panjang   string         `db:"panjang" json:"panjang"`
	Berat     sql.NullString `db:"berat" json:"berat"`
}

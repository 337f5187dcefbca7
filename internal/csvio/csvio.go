// Package csvio reads and writes the three dataset tables as CSV files.
// Nullable fields are encoded as empty cells; readers turn empty cells in
// nullable columns back into nil.
package csvio

import (
	"strconv"
	"time"
)

// File names inside the raw and processed output directories.
const (
	CustomersFile    = "customers.csv"
	ProductsFile     = "products.csv"
	TransactionsFile = "transactions.csv"

	CustomersRawFile    = "customers_raw.csv"
	ProductsRawFile     = "products_raw.csv"
	TransactionsRawFile = "transactions_raw.csv"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

var (
	customerHeader    = []string{"customer_id", "name", "email", "age", "signup_date", "country", "segment"}
	productHeader     = []string{"product_id", "product_name", "category", "price", "cost"}
	transactionHeader = []string{"transaction_id", "customer_id", "product_id", "transaction_date", "quantity", "unit_price", "discount_pct", "total_amount"}
)

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

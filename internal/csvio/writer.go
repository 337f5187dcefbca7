package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ecomlab/datagen/internal/model"
)

// WriteCustomers writes one customers table to path, overwriting any previous file.
func WriteCustomers(path string, rows []model.Customer) error {
	return writeTable(path, customerHeader, rows, customerRecord)
}

// WriteProducts writes one products table to path.
func WriteProducts(path string, rows []model.Product) error {
	return writeTable(path, productHeader, rows, productRecord)
}

// WriteTransactions writes one transactions table to path.
func WriteTransactions(path string, rows []model.Transaction) error {
	return writeTable(path, transactionHeader, rows, transactionRecord)
}

func writeTable[T any](path string, header []string, rows []T, record func(T) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header of %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(record(row)); err != nil {
			f.Close()
			return fmt.Errorf("write row of %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func customerRecord(c model.Customer) []string {
	email := ""
	if c.Email != nil {
		email = *c.Email
	}
	age := ""
	if c.Age != nil {
		age = strconv.Itoa(*c.Age)
	}
	return []string{
		c.ID,
		c.Name,
		email,
		age,
		formatDate(c.SignupDate),
		c.Country,
		c.Segment.String(),
	}
}

func productRecord(p model.Product) []string {
	return []string{
		p.ID,
		p.Name,
		p.Category,
		formatMoney(p.Price),
		formatMoney(p.Cost),
	}
}

func transactionRecord(t model.Transaction) []string {
	quantity := ""
	if t.Quantity != nil {
		quantity = strconv.Itoa(*t.Quantity)
	}
	discount := ""
	if t.DiscountPct != nil {
		discount = strconv.FormatFloat(*t.DiscountPct, 'f', 2, 64)
	}
	return []string{
		t.ID,
		t.CustomerID,
		t.ProductID,
		formatTimestamp(t.Date),
		quantity,
		formatMoney(t.UnitPrice),
		discount,
		formatMoney(t.TotalAmount),
	}
}

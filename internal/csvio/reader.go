package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ecomlab/datagen/internal/model"
)

// ReadCustomers loads a customers table previously written by WriteCustomers.
func ReadCustomers(path string) ([]model.Customer, error) {
	return readTable(path, parseCustomer)
}

// ReadProducts loads a products table.
func ReadProducts(path string) ([]model.Product, error) {
	return readTable(path, parseProduct)
}

// ReadTransactions loads a transactions table.
func ReadTransactions(path string) ([]model.Transaction, error) {
	return readTable(path, parseTransaction)
}

func readTable[T any](path string, parse func(index map[string]int, record []string) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(h)] = i
	}

	var rows []T
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		row, err := parse(index, record)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseCustomer(index map[string]int, record []string) (model.Customer, error) {
	c := model.Customer{
		ID:      field(index, record, "customer_id"),
		Name:    field(index, record, "name"),
		Country: field(index, record, "country"),
	}

	if s := field(index, record, "email"); s != "" {
		c.Email = &s
	}
	if s := field(index, record, "age"); s != "" {
		age, err := strconv.Atoi(s)
		if err != nil {
			return model.Customer{}, fmt.Errorf("age: %w", err)
		}
		c.Age = &age
	}

	signup, err := time.Parse(dateLayout, field(index, record, "signup_date"))
	if err != nil {
		return model.Customer{}, fmt.Errorf("signup_date: %w", err)
	}
	c.SignupDate = signup

	seg, ok := model.ParseSegment(field(index, record, "segment"))
	if !ok {
		return model.Customer{}, fmt.Errorf("unknown segment %q", field(index, record, "segment"))
	}
	c.Segment = seg

	return c, nil
}

func parseProduct(index map[string]int, record []string) (model.Product, error) {
	price, err := strconv.ParseFloat(field(index, record, "price"), 64)
	if err != nil {
		return model.Product{}, fmt.Errorf("price: %w", err)
	}
	cost, err := strconv.ParseFloat(field(index, record, "cost"), 64)
	if err != nil {
		return model.Product{}, fmt.Errorf("cost: %w", err)
	}

	return model.Product{
		ID:       field(index, record, "product_id"),
		Name:     field(index, record, "product_name"),
		Category: field(index, record, "category"),
		Price:    price,
		Cost:     cost,
	}, nil
}

func parseTransaction(index map[string]int, record []string) (model.Transaction, error) {
	t := model.Transaction{
		ID:         field(index, record, "transaction_id"),
		CustomerID: field(index, record, "customer_id"),
		ProductID:  field(index, record, "product_id"),
	}

	date, err := time.Parse(timestampLayout, field(index, record, "transaction_date"))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction_date: %w", err)
	}
	t.Date = date

	if s := field(index, record, "quantity"); s != "" {
		qty, err := strconv.Atoi(s)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("quantity: %w", err)
		}
		t.Quantity = &qty
	}

	t.UnitPrice, err = strconv.ParseFloat(field(index, record, "unit_price"), 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("unit_price: %w", err)
	}

	if s := field(index, record, "discount_pct"); s != "" {
		discount, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("discount_pct: %w", err)
		}
		t.DiscountPct = &discount
	}

	t.TotalAmount, err = strconv.ParseFloat(field(index, record, "total_amount"), 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("total_amount: %w", err)
	}

	return t, nil
}

func field(index map[string]int, record []string, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

package model

import "time"

type Transaction struct {
	ID          string
	CustomerID  string
	ProductID   string
	Date        time.Time
	Quantity    *int // nullable: cleared by defect injection in the raw variant
	UnitPrice   float64
	DiscountPct *float64 // nullable
	TotalAmount float64  // round2(unit_price * quantity * (1 - discount_pct))
}

// Discount returns the applied discount fraction, treating a missing value as zero.
func (t Transaction) Discount() float64 {
	if t.DiscountPct == nil {
		return 0
	}
	return *t.DiscountPct
}

package generator

import (
	"fmt"
	"time"

	"github.com/ecomlab/datagen/internal/model"
)

// Quantities 1..5; most purchases are single-item.
var quantityWeights = []float64{0.70, 0.15, 0.08, 0.05, 0.02}

func (g *Generator) transactions(customers []model.Customer, products []model.Product) []model.Transaction {
	// Exponential per-customer weights emulate repeat purchasers: a few
	// customers account for a disproportionate share of transactions.
	weights := make([]float64, len(customers))
	for i := range weights {
		weights[i] = g.rng.ExpFloat64() * 1.5
	}
	customerCum := cumulate(weights)
	quantityCum := cumulate(quantityWeights)

	windowDays := int(g.windowEnd.Sub(g.windowStart).Hours() / 24)

	out := make([]model.Transaction, g.cfg.Counts.Transactions)
	for i := range out {
		customer := customers[weightedIndex(g.rng, customerCum)]
		product := products[g.rng.IntN(len(products))]

		date := g.windowStart.
			AddDate(0, 0, g.rng.IntN(windowDays+1)).
			Add(time.Duration(g.rng.IntN(24))*time.Hour + time.Duration(g.rng.IntN(60))*time.Minute)

		quantity := weightedIndex(g.rng, quantityCum) + 1

		discount := 0.0
		if g.rng.Float64() < 0.2 {
			discount = round2(uniform(g.rng, 0.05, 0.30))
		}

		out[i] = model.Transaction{
			ID:          fmt.Sprintf("TXN_%06d", i),
			CustomerID:  customer.ID,
			ProductID:   product.ID,
			Date:        date,
			Quantity:    &quantity,
			UnitPrice:   product.Price,
			DiscountPct: &discount,
			TotalAmount: round2(product.Price * float64(quantity) * (1 - discount)),
		}
	}
	return out
}

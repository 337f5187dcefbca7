package generator

import (
	"fmt"

	"github.com/ecomlab/datagen/internal/model"
)

// Catalog categories with their retail price ranges. Cost lands between 40%
// and 70% of the range floor.
var categories = []struct {
	name     string
	min, max float64
}{
	{"Electronics", 50, 2000},
	{"Clothing", 15, 200},
	{"Home & Garden", 20, 500},
	{"Sports", 25, 400},
	{"Books", 10, 50},
	{"Beauty", 15, 150},
	{"Toys", 10, 100},
	{"Food & Beverage", 5, 80},
}

func (g *Generator) products() []model.Product {
	out := make([]model.Product, g.cfg.Counts.Products)
	for i := range out {
		cat := categories[g.rng.IntN(len(categories))]

		out[i] = model.Product{
			ID:       fmt.Sprintf("PROD_%05d", i),
			Name:     fmt.Sprintf("%s Product %d", cat.name, i),
			Category: cat.name,
			Price:    round2(uniform(g.rng, cat.min, cat.max)),
			Cost:     round2(uniform(g.rng, cat.min*0.4, cat.min*0.7)),
		}
	}
	return out
}

package model

type Product struct {
	ID       string
	Name     string
	Category string
	Price    float64 // sale price, 2 decimals
	Cost     float64 // acquisition cost, 2 decimals
}

package generator

import (
	"math/rand/v2"
	"slices"

	"github.com/ecomlab/datagen/internal/config"
	"github.com/ecomlab/datagen/internal/model"
)

// injector applies controlled data-quality defects to copies of the clean
// tables. The clean slices are never mutated: the processed output stays
// fully clean regardless of generation order.
type injector struct {
	rng           *rand.Rand
	duplicateRate float64
	missingRate   float64

	rowsDuplicated int
	cellsNulled    int
}

func newInjector(rng *rand.Rand, cfg config.DefectsConfig) *injector {
	return &injector{
		rng:           rng,
		duplicateRate: cfg.DuplicateRate,
		missingRate:   cfg.MissingRate,
	}
}

// customers returns a copy of clean with a fraction of nullable cells
// (email, age) cleared independently at random. A non-zero rate always
// clears at least one cell.
func (in *injector) customers(clean []model.Customer) []model.Customer {
	out := slices.Clone(clean)

	nulled := 0
	for i := range out {
		if in.rng.Float64() < in.missingRate {
			out[i].Email = nil
			nulled++
		}
		if in.rng.Float64() < in.missingRate {
			out[i].Age = nil
			nulled++
		}
	}
	if nulled == 0 && in.missingRate > 0 && len(out) > 0 {
		out[0].Email = nil
		nulled = 1
	}
	in.cellsNulled += nulled

	return out
}

// transactions returns a copy of clean with a fraction of nullable cells
// (quantity, discount) cleared, then a fraction of rows re-appended verbatim,
// transaction_id included, emulating double-logged events. A non-zero
// duplicate rate always appends at least one duplicate.
func (in *injector) transactions(clean []model.Transaction) []model.Transaction {
	out := slices.Clone(clean)

	nulled := 0
	for i := range out {
		if out[i].Quantity != nil && in.rng.Float64() < in.missingRate {
			out[i].Quantity = nil
			nulled++
		}
		if out[i].DiscountPct != nil && in.rng.Float64() < in.missingRate {
			out[i].DiscountPct = nil
			nulled++
		}
	}
	in.cellsNulled += nulled

	if in.duplicateRate > 0 && len(clean) > 0 {
		dups := int(float64(len(clean)) * in.duplicateRate)
		if dups < 1 {
			dups = 1
		}
		for range dups {
			out = append(out, out[in.rng.IntN(len(clean))])
		}
		in.rowsDuplicated += dups
	}

	return out
}

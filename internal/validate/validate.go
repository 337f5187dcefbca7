// Package validate re-checks a generated dataset on disk against the
// invariants the generator guarantees. It is the tool for deciding whether
// files left by an earlier (possibly failed) run are trustworthy.
package validate

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/ecomlab/datagen/internal/config"
	"github.com/ecomlab/datagen/internal/csvio"
	"github.com/ecomlab/datagen/internal/model"
)

// Totals are recomputed from parsed 2-decimal values, so anything beyond
// half a cent is a real arithmetic violation.
const moneyTolerance = 0.005

// Issue describes one failed invariant.
type Issue struct {
	Table       string
	Description string
}

// Report holds the outcome of one dataset check run.
type Report struct {
	ProcessedCustomers    int
	ProcessedProducts     int
	ProcessedTransactions int
	RawCustomers          int
	RawTransactions       int
	RawDuplicateRows      int
	RawMissingCells       int

	Issues []Issue
}

func (r *Report) OK() bool { return len(r.Issues) == 0 }

func (r *Report) addf(table, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Table: table, Description: fmt.Sprintf(format, args...)})
}

// String renders the check report.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "processed: %d customers, %d products, %d transactions\n",
		r.ProcessedCustomers, r.ProcessedProducts, r.ProcessedTransactions)
	fmt.Fprintf(&b, "raw: %d customers, %d transactions (%d duplicate rows, %d missing cells)\n",
		r.RawCustomers, r.RawTransactions, r.RawDuplicateRows, r.RawMissingCells)
	if r.OK() {
		fmt.Fprintln(&b, ">> Dataset valid ✅")
		return b.String()
	}
	fmt.Fprintf(&b, "%d check(s) failed:\n", len(r.Issues))
	for _, issue := range r.Issues {
		fmt.Fprintf(&b, "  - [%s] %s\n", issue.Table, issue.Description)
	}
	return b.String()
}

// Dataset loads both variants from cfg's output directories and checks every
// invariant: referential integrity, total arithmetic, the date window,
// duplicate-free processed IDs, and the presence of injected defects in the
// raw variant when the configured rates are non-zero.
func Dataset(cfg config.Config) (*Report, error) {
	processed := cfg.Output.ProcessedDir
	raw := cfg.Output.RawDir

	customers, err := csvio.ReadCustomers(filepath.Join(processed, csvio.CustomersFile))
	if err != nil {
		return nil, fmt.Errorf("load processed customers: %w", err)
	}
	products, err := csvio.ReadProducts(filepath.Join(processed, csvio.ProductsFile))
	if err != nil {
		return nil, fmt.Errorf("load processed products: %w", err)
	}
	transactions, err := csvio.ReadTransactions(filepath.Join(processed, csvio.TransactionsFile))
	if err != nil {
		return nil, fmt.Errorf("load processed transactions: %w", err)
	}
	rawCustomers, err := csvio.ReadCustomers(filepath.Join(raw, csvio.CustomersRawFile))
	if err != nil {
		return nil, fmt.Errorf("load raw customers: %w", err)
	}
	rawTransactions, err := csvio.ReadTransactions(filepath.Join(raw, csvio.TransactionsRawFile))
	if err != nil {
		return nil, fmt.Errorf("load raw transactions: %w", err)
	}

	r := &Report{
		ProcessedCustomers:    len(customers),
		ProcessedProducts:     len(products),
		ProcessedTransactions: len(transactions),
		RawCustomers:          len(rawCustomers),
		RawTransactions:       len(rawTransactions),
	}

	r.checkProcessed(cfg, customers, products, transactions)
	r.checkRaw(cfg, rawCustomers, rawTransactions)

	return r, nil
}

func (r *Report) checkProcessed(cfg config.Config, customers []model.Customer, products []model.Product, transactions []model.Transaction) {
	customerIDs := make(map[string]bool, len(customers))
	for _, c := range customers {
		customerIDs[c.ID] = true
		if c.Email == nil {
			r.addf("customers", "%s: missing email in processed table", c.ID)
		}
		if c.Age == nil {
			r.addf("customers", "%s: missing age in processed table", c.ID)
		}
		if !c.Segment.Valid() {
			r.addf("customers", "%s: unknown segment %q", c.ID, c.Segment)
		}
	}

	productPrices := make(map[string]float64, len(products))
	for _, p := range products {
		productPrices[p.ID] = p.Price
	}

	windowStart, windowEnd, err := cfg.Dates.Window()
	if err != nil {
		r.addf("transactions", "date window unusable: %v", err)
		return
	}
	// dates carry hour/minute; the last valid instant is the end of the final day
	windowCutoff := windowEnd.AddDate(0, 0, 1)

	seen := make(map[string]bool, len(transactions))
	for _, t := range transactions {
		if seen[t.ID] {
			r.addf("transactions", "%s: duplicate transaction id in processed table", t.ID)
		}
		seen[t.ID] = true

		if !customerIDs[t.CustomerID] {
			r.addf("transactions", "%s: customer %s not found", t.ID, t.CustomerID)
		}
		price, ok := productPrices[t.ProductID]
		if !ok {
			r.addf("transactions", "%s: product %s not found", t.ID, t.ProductID)
		} else if math.Abs(price-t.UnitPrice) > moneyTolerance {
			r.addf("transactions", "%s: unit price %.2f does not match catalog price %.2f", t.ID, t.UnitPrice, price)
		}

		if t.DiscountPct == nil {
			r.addf("transactions", "%s: missing discount in processed table", t.ID)
		}
		if t.Quantity == nil {
			r.addf("transactions", "%s: missing quantity in processed table", t.ID)
		} else {
			want := math.Round(t.UnitPrice*float64(*t.Quantity)*(1-t.Discount())*100) / 100
			if math.Abs(want-t.TotalAmount) > moneyTolerance {
				r.addf("transactions", "%s: total %.2f, expected %.2f", t.ID, t.TotalAmount, want)
			}
		}

		if t.Date.Before(windowStart) || !t.Date.Before(windowCutoff) {
			r.addf("transactions", "%s: date %s outside window %s..%s",
				t.ID, t.Date.Format("2006-01-02 15:04:05"), cfg.Dates.WindowStart, cfg.Dates.WindowEnd)
		}
	}
}

func (r *Report) checkRaw(cfg config.Config, customers []model.Customer, transactions []model.Transaction) {
	for _, c := range customers {
		if c.Email == nil {
			r.RawMissingCells++
		}
		if c.Age == nil {
			r.RawMissingCells++
		}
	}

	seen := make(map[string]int, len(transactions))
	for _, t := range transactions {
		if t.Quantity == nil {
			r.RawMissingCells++
		}
		if t.DiscountPct == nil {
			r.RawMissingCells++
		}
		seen[t.ID]++
	}
	for _, n := range seen {
		if n > 1 {
			r.RawDuplicateRows += n - 1
		}
	}

	if cfg.Defects.DuplicateRate > 0 && r.RawDuplicateRows == 0 {
		r.addf("transactions_raw", "duplicate rate %g configured but no duplicate rows found", cfg.Defects.DuplicateRate)
	}
	if cfg.Defects.MissingRate > 0 && r.RawMissingCells == 0 {
		r.addf("customers_raw", "missing rate %g configured but no missing cells found", cfg.Defects.MissingRate)
	}
}

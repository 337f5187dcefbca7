package generator

import (
	"fmt"
	"strings"
)

// Summary reports what one run produced.
type Summary struct {
	Seed               uint64
	Customers          int
	Products           int
	Transactions       int
	RawTransactions    int
	DuplicatesInjected int
	CellsNulled        int
	RawDir             string
	ProcessedDir       string
}

// String renders the completion report printed after a successful run.
func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintln(&b, ">> Generation complete ✅")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Generated (seed %d):\n", s.Seed)
	fmt.Fprintf(&b, "  - %d customers\n", s.Customers)
	fmt.Fprintf(&b, "  - %d products\n", s.Products)
	fmt.Fprintf(&b, "  - %d transactions\n", s.Transactions)
	fmt.Fprintf(&b, "  - %d raw transactions (including %d duplicates)\n", s.RawTransactions, s.DuplicatesInjected)
	fmt.Fprintf(&b, "  - %d cells nulled in nullable columns\n", s.CellsNulled)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Files saved to:")
	fmt.Fprintf(&b, "  - %s (raw data with quality issues)\n", s.RawDir)
	fmt.Fprintf(&b, "  - %s (clean data for comparison)\n", s.ProcessedDir)
	return b.String()
}

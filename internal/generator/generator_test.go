package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomlab/datagen/internal/config"
	"github.com/ecomlab/datagen/internal/csvio"
)

func testConfig(t *testing.T, seed uint64) config.Config {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)

	cfg.Counts = config.CountsConfig{Customers: 10, Products: 5, Transactions: 50}
	cfg.Seed = seed
	cfg.Output.RawDir = filepath.Join(t.TempDir(), "raw")
	cfg.Output.ProcessedDir = filepath.Join(t.TempDir(), "processed")
	return cfg
}

func runGenerator(t *testing.T, cfg config.Config) *Summary {
	t.Helper()

	gen, err := New(cfg, nil)
	require.NoError(t, err)
	summary, err := gen.Run()
	require.NoError(t, err)
	return summary
}

func datasetFiles(cfg config.Config) []string {
	return []string{
		filepath.Join(cfg.Output.ProcessedDir, csvio.CustomersFile),
		filepath.Join(cfg.Output.ProcessedDir, csvio.ProductsFile),
		filepath.Join(cfg.Output.ProcessedDir, csvio.TransactionsFile),
		filepath.Join(cfg.Output.RawDir, csvio.CustomersRawFile),
		filepath.Join(cfg.Output.RawDir, csvio.ProductsRawFile),
		filepath.Join(cfg.Output.RawDir, csvio.TransactionsRawFile),
	}
}

func TestRunCountsAndSummary(t *testing.T) {
	cfg := testConfig(t, 42)

	gen, err := New(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), gen.Seed())

	summary, err := gen.Run()
	require.NoError(t, err)
	assert.Equal(t, gen.Seed(), summary.Seed)
	assert.Equal(t, 10, summary.Customers)
	assert.Equal(t, 5, summary.Products)
	assert.Equal(t, 50, summary.Transactions)
	assert.GreaterOrEqual(t, summary.DuplicatesInjected, 1)
	assert.Equal(t, 50+summary.DuplicatesInjected, summary.RawTransactions)
	assert.GreaterOrEqual(t, summary.CellsNulled, 1)

	for _, path := range datasetFiles(cfg) {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
}

func TestFixedSeedReproducesByteIdenticalFiles(t *testing.T) {
	first := testConfig(t, 42)
	second := testConfig(t, 42)
	runGenerator(t, first)
	runGenerator(t, second)

	firstFiles := datasetFiles(first)
	secondFiles := datasetFiles(second)
	for i := range firstFiles {
		a, err := os.ReadFile(firstFiles[i])
		require.NoError(t, err)
		b, err := os.ReadFile(secondFiles[i])
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), firstFiles[i])
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	first := testConfig(t, 42)
	second := testConfig(t, 43)
	runGenerator(t, first)
	runGenerator(t, second)

	a, err := os.ReadFile(filepath.Join(first.Output.ProcessedDir, csvio.TransactionsFile))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(second.Output.ProcessedDir, csvio.TransactionsFile))
	require.NoError(t, err)
	assert.NotEqual(t, string(a), string(b))
}

func TestZeroSeedRandomizes(t *testing.T) {
	first := testConfig(t, 0)
	second := testConfig(t, 0)
	s1 := runGenerator(t, first)
	s2 := runGenerator(t, second)

	assert.NotZero(t, s1.Seed)
	assert.NotZero(t, s2.Seed)
	assert.NotEqual(t, s1.Seed, s2.Seed)

	a, err := os.ReadFile(filepath.Join(first.Output.ProcessedDir, csvio.TransactionsFile))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(second.Output.ProcessedDir, csvio.TransactionsFile))
	require.NoError(t, err)
	assert.NotEqual(t, string(a), string(b))
}

func TestProcessedTablesHoldInvariants(t *testing.T) {
	cfg := testConfig(t, 7)
	runGenerator(t, cfg)

	customers, err := csvio.ReadCustomers(filepath.Join(cfg.Output.ProcessedDir, csvio.CustomersFile))
	require.NoError(t, err)
	products, err := csvio.ReadProducts(filepath.Join(cfg.Output.ProcessedDir, csvio.ProductsFile))
	require.NoError(t, err)
	transactions, err := csvio.ReadTransactions(filepath.Join(cfg.Output.ProcessedDir, csvio.TransactionsFile))
	require.NoError(t, err)

	signupStart, err := cfg.Dates.SignupStartTime()
	require.NoError(t, err)

	customerIDs := map[string]bool{}
	for _, c := range customers {
		customerIDs[c.ID] = true
		require.NotNil(t, c.Email, c.ID)
		require.NotNil(t, c.Age, c.ID)
		assert.GreaterOrEqual(t, *c.Age, 18)
		assert.LessOrEqual(t, *c.Age, 79)
		assert.True(t, c.Segment.Valid())
		assert.False(t, c.SignupDate.Before(signupStart))
		assert.False(t, c.SignupDate.After(signupStart.AddDate(0, 0, cfg.Dates.SignupDays)))
	}

	productPrices := map[string]float64{}
	for _, p := range products {
		productPrices[p.ID] = p.Price
		assert.Greater(t, p.Price, 0.0)
		assert.Greater(t, p.Cost, 0.0)
	}

	windowStart, windowEnd, err := cfg.Dates.Window()
	require.NoError(t, err)
	windowCutoff := windowEnd.AddDate(0, 0, 1)

	seen := map[string]bool{}
	for _, tx := range transactions {
		assert.False(t, seen[tx.ID], "duplicate id %s", tx.ID)
		seen[tx.ID] = true

		assert.True(t, customerIDs[tx.CustomerID], "%s: unknown customer %s", tx.ID, tx.CustomerID)
		price, ok := productPrices[tx.ProductID]
		require.True(t, ok, "%s: unknown product %s", tx.ID, tx.ProductID)
		assert.InDelta(t, price, tx.UnitPrice, 0.005)

		require.NotNil(t, tx.DiscountPct, tx.ID)
		require.NotNil(t, tx.Quantity, tx.ID)
		want := tx.UnitPrice * float64(*tx.Quantity) * (1 - *tx.DiscountPct)
		assert.InDelta(t, want, tx.TotalAmount, 0.005, tx.ID)

		assert.GreaterOrEqual(t, *tx.Quantity, 1)
		assert.LessOrEqual(t, *tx.Quantity, 5)
		assert.False(t, tx.Date.Before(windowStart), tx.ID)
		assert.True(t, tx.Date.Before(windowCutoff), tx.ID)
	}
}

func TestRawTablesCarryInjectedDefects(t *testing.T) {
	cfg := testConfig(t, 7)
	runGenerator(t, cfg)

	rawCustomers, err := csvio.ReadCustomers(filepath.Join(cfg.Output.RawDir, csvio.CustomersRawFile))
	require.NoError(t, err)
	rawTransactions, err := csvio.ReadTransactions(filepath.Join(cfg.Output.RawDir, csvio.TransactionsRawFile))
	require.NoError(t, err)

	missing := 0
	for _, c := range rawCustomers {
		if c.Email == nil {
			missing++
		}
		if c.Age == nil {
			missing++
		}
	}
	assert.GreaterOrEqual(t, missing, 1, "non-zero missing rate must null at least one cell")

	counts := map[string]int{}
	duplicates := 0
	for _, tx := range rawTransactions {
		counts[tx.ID]++
		if counts[tx.ID] > 1 {
			duplicates++
		}
	}
	assert.GreaterOrEqual(t, duplicates, 1, "non-zero duplicate rate must duplicate at least one row")

	// raw products are the clean catalog under a different file name
	a, err := os.ReadFile(filepath.Join(cfg.Output.ProcessedDir, csvio.ProductsFile))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(cfg.Output.RawDir, csvio.ProductsRawFile))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t, 1)
	cfg.Counts.Customers = 0

	_, err := New(cfg, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidCount))

	// nothing may be written when validation fails
	_, statErr := os.Stat(cfg.Output.ProcessedDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunFailsOnUnwritableOutputDir(t *testing.T) {
	cfg := testConfig(t, 1)

	// a regular file where a directory component should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	cfg.Output.ProcessedDir = filepath.Join(blocker, "processed")

	gen, err := New(cfg, nil)
	require.NoError(t, err)
	_, err = gen.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "processed")
}

func TestSignupDatesStayInsideWindow(t *testing.T) {
	cfg := testConfig(t, 11)
	cfg.Dates.SignupStart = "2022-06-01"
	cfg.Dates.SignupDays = 10

	gen, err := New(cfg, nil)
	require.NoError(t, err)
	_, err = gen.Run()
	require.NoError(t, err)

	customers, err := csvio.ReadCustomers(filepath.Join(cfg.Output.ProcessedDir, csvio.CustomersFile))
	require.NoError(t, err)

	start := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, c := range customers {
		assert.False(t, c.SignupDate.Before(start))
		assert.False(t, c.SignupDate.After(start.AddDate(0, 0, 10)))
	}
}

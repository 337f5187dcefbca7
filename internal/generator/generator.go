// Package generator synthesizes the sample dataset: three correlated tables
// (customers, products, transactions) in a clean "processed" variant plus a
// defect-injected "raw" variant.
package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ecomlab/datagen/internal/config"
	"github.com/ecomlab/datagen/internal/csvio"
	"github.com/ecomlab/datagen/internal/model"
)

// Generator produces one raw + processed dataset pair from a validated config.
// A single seeded random stream drives every sample, so a fixed seed yields
// byte-identical output files across runs.
type Generator struct {
	cfg  config.Config
	seed uint64
	rng  *rand.Rand
	log  *zap.Logger

	signupStart time.Time
	windowStart time.Time
	windowEnd   time.Time
}

// New validates cfg and prepares a generator. A zero cfg.Seed is replaced
// with a fresh random seed; the effective seed is reported in the Summary.
func New(cfg config.Config, log *zap.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = randomSeed()
	}

	// parseability already checked by Validate
	signupStart, _ := cfg.Dates.SignupStartTime()
	windowStart, windowEnd, _ := cfg.Dates.Window()

	return &Generator{
		cfg:         cfg,
		seed:        seed,
		rng:         rand.New(rand.NewPCG(seed, 0)),
		log:         log,
		signupStart: signupStart,
		windowStart: windowStart,
		windowEnd:   windowEnd,
	}, nil
}

// Seed returns the effective seed of this run.
func (g *Generator) Seed() uint64 { return g.seed }

// Run executes the whole pipeline: synthesize the clean tables, derive
// defect-injected copies, and persist both variants. Any IO failure aborts
// the run; partially written files from a failed run are not valid output.
func (g *Generator) Run() (*Summary, error) {
	g.log.Info("generating customer table", zap.Int("count", g.cfg.Counts.Customers))
	customers := g.customers()

	g.log.Info("generating product catalog", zap.Int("count", g.cfg.Counts.Products))
	products := g.products()

	g.log.Info("generating transaction table", zap.Int("count", g.cfg.Counts.Transactions))
	transactions := g.transactions(customers, products)

	g.log.Info("injecting data quality defects",
		zap.Float64("duplicate_rate", g.cfg.Defects.DuplicateRate),
		zap.Float64("missing_rate", g.cfg.Defects.MissingRate))
	inj := newInjector(g.rng, g.cfg.Defects)
	rawCustomers := inj.customers(customers)
	rawTransactions := inj.transactions(transactions)

	if err := writeProcessed(g.cfg.Output.ProcessedDir, customers, products, transactions); err != nil {
		return nil, err
	}
	if err := writeRaw(g.cfg.Output.RawDir, rawCustomers, products, rawTransactions); err != nil {
		return nil, err
	}

	return &Summary{
		Seed:               g.seed,
		Customers:          len(customers),
		Products:           len(products),
		Transactions:       len(transactions),
		RawTransactions:    len(rawTransactions),
		DuplicatesInjected: inj.rowsDuplicated,
		CellsNulled:        inj.cellsNulled,
		RawDir:             g.cfg.Output.RawDir,
		ProcessedDir:       g.cfg.Output.ProcessedDir,
	}, nil
}

func writeProcessed(dir string, customers []model.Customer, products []model.Product, transactions []model.Transaction) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create processed dir: %w", err)
	}
	if err := csvio.WriteCustomers(filepath.Join(dir, csvio.CustomersFile), customers); err != nil {
		return fmt.Errorf("write processed customers: %w", err)
	}
	if err := csvio.WriteProducts(filepath.Join(dir, csvio.ProductsFile), products); err != nil {
		return fmt.Errorf("write processed products: %w", err)
	}
	if err := csvio.WriteTransactions(filepath.Join(dir, csvio.TransactionsFile), transactions); err != nil {
		return fmt.Errorf("write processed transactions: %w", err)
	}
	return nil
}

func writeRaw(dir string, customers []model.Customer, products []model.Product, transactions []model.Transaction) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create raw dir: %w", err)
	}
	if err := csvio.WriteCustomers(filepath.Join(dir, csvio.CustomersRawFile), customers); err != nil {
		return fmt.Errorf("write raw customers: %w", err)
	}
	if err := csvio.WriteProducts(filepath.Join(dir, csvio.ProductsRawFile), products); err != nil {
		return fmt.Errorf("write raw products: %w", err)
	}
	if err := csvio.WriteTransactions(filepath.Join(dir, csvio.TransactionsRawFile), transactions); err != nil {
		return fmt.Errorf("write raw transactions: %w", err)
	}
	return nil
}

func randomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	s := binary.LittleEndian.Uint64(b[:])
	if s == 0 {
		s = 1
	}
	return s
}

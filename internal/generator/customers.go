package generator

import (
	"fmt"

	"github.com/ecomlab/datagen/internal/model"
	"github.com/ecomlab/datagen/internal/util"
)

var (
	countries = []string{"USA", "UK", "Germany", "France", "Canada", "Australia"}

	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
		"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
		"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
	}

	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson",
		"Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee",
	}

	emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "icloud.com"}

	segments       = []model.Segment{model.SegmentNew, model.SegmentRegular, model.SegmentVIP}
	segmentWeights = []float64{0.40, 0.45, 0.15}
)

func (g *Generator) customers() []model.Customer {
	segmentCum := cumulate(segmentWeights)

	out := make([]model.Customer, g.cfg.Counts.Customers)
	for i := range out {
		first := pick(g.rng, firstNames)
		last := pick(g.rng, lastNames)

		// index suffix keeps addresses unique across shared name pools
		email := fmt.Sprintf("%s.%s%d@%s", util.Slug(first), util.Slug(last), i, pick(g.rng, emailDomains))
		age := 18 + g.rng.IntN(62)

		out[i] = model.Customer{
			ID:         fmt.Sprintf("CUST_%05d", i),
			Name:       first + " " + last,
			Email:      &email,
			Age:        &age,
			SignupDate: g.signupStart.AddDate(0, 0, g.rng.IntN(g.cfg.Dates.SignupDays+1)),
			Country:    pick(g.rng, countries),
			Segment:    segments[weightedIndex(g.rng, segmentCum)],
		}
	}
	return out
}

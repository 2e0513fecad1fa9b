package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vitorbocca/nola-godlevel-backend/internal/fake"
	"github.com/vitorbocca/nola-godlevel-backend/internal/models"
	"github.com/vitorbocca/nola-godlevel-backend/internal/repository"
)

const saleBatchSize = 500

// weekdayMultipliers index Monday through Sunday: weekends run hot.
var weekdayMultipliers = []float64{0.8, 0.9, 0.95, 1.0, 1.3, 1.5, 1.4}

// SalesSeeder synthesizes the order stream for the configured window.
type SalesSeeder struct {
	repo  repository.SaleRepository
	faker *fake.Faker
	rng   *rand.Rand

	stores         []uint
	channels       []ChannelSpec
	products       []ProductSpec
	items          []ItemSpec
	optionGroupIDs []uint
	customers      []uint

	productSampler *weightedSampler
	channelSampler *weightedSampler
}

func NewSalesSeeder(repo repository.SaleRepository, faker *fake.Faker, rng *rand.Rand) *SalesSeeder {
	return &SalesSeeder{repo: repo, faker: faker, rng: rng}
}

// Seed generates months of sales ending now and returns the total created.
// Each day's expected volume is Gaussian around 2700 scaled by weekday, with
// two injected anomalies: a 7-day slump somewhere in days 30-60 and a single
// promo spike in days 90-120. The two windows are drawn independently and may
// overlap; that is deliberate.
func (s *SalesSeeder) Seed(stores []uint, channels []ChannelSpec, products []ProductSpec,
	items []ItemSpec, optionGroupIDs []uint, customers []uint, months int) (int, error) {

	fmt.Printf("Generating sales for %d months...\n", months)

	s.stores = stores
	s.channels = channels
	s.products = products
	s.items = items
	s.optionGroupIDs = optionGroupIDs
	s.customers = customers

	popularity := make([]float64, len(products))
	for i, p := range products {
		popularity[i] = p.Popularity
	}
	s.productSampler = newWeightedSampler(popularity)

	channelWeights := make([]float64, len(channels))
	for i, c := range channels {
		channelWeights[i] = c.Weight
	}
	s.channelSampler = newWeightedSampler(channelWeights)

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -30*months)
	badWeekStart := startDate.AddDate(0, 0, 30+s.rng.Intn(31))
	promoDay := startDate.AddDate(0, 0, 90+s.rng.Intn(31))

	totalSales := 0
	for current := startDate; !current.After(endDate); current = current.AddDate(0, 0, 1) {
		count, err := s.seedDay(current, badWeekStart, promoDay)
		if err != nil {
			return totalSales, err
		}
		totalSales += count

		if current.AddDate(0, 0, 1).Day() == 1 {
			fmt.Printf("  → %s: %d sales\n", current.AddDate(0, 0, 1).Format("January 2006"), totalSales)
		}
	}

	fmt.Printf("✓ %d total sales generated\n", totalSales)
	return totalSales, nil
}

func (s *SalesSeeder) seedDay(day, badWeekStart, promoDay time.Time) (int, error) {
	mult := weekdayMultipliers[(int(day.Weekday())+6)%7]

	if !day.Before(badWeekStart) && day.Before(badWeekStart.AddDate(0, 0, 7)) {
		mult *= 0.7
	}
	if sameDate(day, promoDay) {
		mult *= 3.0
	}

	dailySales := int(gauss(s.rng, 2700, 400) * mult)

	count := 0
	batch := make([]*models.Sale, 0, saleBatchSize)
	for i := 0; i < dailySales; i++ {
		hour := hourSampler.Pick(s.rng)
		saleTime := time.Date(day.Year(), day.Month(), day.Day(),
			hour, s.rng.Intn(60), s.rng.Intn(60), 0, day.Location())

		storeID := s.stores[s.rng.Intn(len(s.stores))]
		channel := s.channels[s.channelSampler.Pick(s.rng)]

		var customerID *uint
		if s.rng.Float64() > 0.3 {
			id := s.customers[s.rng.Intn(len(s.customers))]
			customerID = &id
		}

		batch = append(batch, s.composeSale(saleTime, storeID, channel, customerID))

		if len(batch) >= saleBatchSize {
			if err := s.repo.CreateBatch(batch); err != nil {
				return count, fmt.Errorf("inserting sales batch: %w", err)
			}
			count += len(batch)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := s.repo.CreateBatch(batch); err != nil {
			return count, fmt.Errorf("inserting sales batch: %w", err)
		}
		count += len(batch)
	}
	return count, nil
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

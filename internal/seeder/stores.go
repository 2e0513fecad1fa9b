package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vitorbocca/nola-godlevel-backend/internal/fake"
	"github.com/vitorbocca/nola-godlevel-backend/internal/models"
	"github.com/vitorbocca/nola-godlevel-backend/internal/repository"
)

// Store coordinates jitter around the São Paulo region and are stored as
// drawn: lat in [-25.5, -21.5], long in [-49.6, -43.6].
const (
	baseLatitude  = -23.5
	baseLongitude = -46.6
)

type StoreSeeder struct {
	repo  repository.StoreRepository
	faker *fake.Faker
	rng   *rand.Rand
}

func NewStoreSeeder(repo repository.StoreRepository, faker *fake.Faker, rng *rand.Rand) *StoreSeeder {
	return &StoreSeeder{repo: repo, faker: faker, rng: rng}
}

// Seed creates numStores stores across a pool of 20 cities and returns their ids.
func (s *StoreSeeder) Seed(subBrandIDs []uint, numStores int) ([]uint, error) {
	fmt.Printf("Generating %d stores...\n", numStores)

	cities := make([]string, 20)
	for i := range cities {
		cities[i] = s.faker.City()
	}

	storeIDs := make([]uint, 0, numStores)
	for i := 0; i < numStores; i++ {
		city := cities[s.rng.Intn(len(cities))]
		latitude := baseLatitude + uniform(s.rng, -2, 2)
		longitude := baseLongitude + uniform(s.rng, -3, 3)

		store := models.Store{
			BrandID:       brandID,
			SubBrandID:    subBrandIDs[s.rng.Intn(len(subBrandIDs))],
			Name:          fmt.Sprintf("%s - %s", s.faker.Company(), city),
			City:          city,
			State:         s.faker.StateAbbrev(),
			District:      s.faker.Neighborhood(),
			AddressStreet: s.faker.StreetName(),
			AddressNumber: 10 + s.rng.Intn(9990),
			Latitude:      decimal.NewFromFloat(latitude).Round(6),
			Longitude:     decimal.NewFromFloat(longitude).Round(6),
			IsActive:      s.rng.Float64() > 0.1,
			IsOwn:         s.rng.Float64() > 0.7,
			CreationDate:  s.dateBetween(180, 720),
			CreatedAt:     time.Now().AddDate(0, 0, -(180 + s.rng.Intn(541))),
		}
		if err := s.repo.Create(&store); err != nil {
			return nil, fmt.Errorf("seeding store %d: %w", i+1, err)
		}
		storeIDs = append(storeIDs, store.ID)
	}

	fmt.Printf("✓ %d stores created\n", len(storeIDs))
	return storeIDs, nil
}

// dateBetween returns a date between minDays and maxDays in the past.
func (s *StoreSeeder) dateBetween(minDays, maxDays int) time.Time {
	t := time.Now().AddDate(0, 0, -(minDays + s.rng.Intn(maxDays-minDays+1)))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

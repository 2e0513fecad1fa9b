package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vitorbocca/nola-godlevel-backend/internal/fake"
	"github.com/vitorbocca/nola-godlevel-backend/internal/models"
	"github.com/vitorbocca/nola-godlevel-backend/internal/repository"
)

const customerBatchSize = 1000

var genders = []string{"M", "F", "NB", "O"}

var registrationOrigins = []string{"qr_code", "link", "balcony", "pos"}

type CustomerSeeder struct {
	repo  repository.CustomerRepository
	faker *fake.Faker
	rng   *rand.Rand
}

func NewCustomerSeeder(repo repository.CustomerRepository, faker *fake.Faker, rng *rand.Rand) *CustomerSeeder {
	return &CustomerSeeder{repo: repo, faker: faker, rng: rng}
}

// Seed bulk-creates numCustomers profiles and returns every customer id in the
// table for the sales stage to sample from.
func (s *CustomerSeeder) Seed(numCustomers int) ([]uint, error) {
	fmt.Printf("Generating %d customers...\n", numCustomers)

	customers := make([]models.Customer, 0, numCustomers)
	for i := 0; i < numCustomers; i++ {
		customers = append(customers, models.Customer{
			CustomerName:           s.faker.Name(),
			Email:                  s.faker.Email(),
			PhoneNumber:            s.faker.PhoneNumber(),
			CPF:                    s.faker.CPF(),
			BirthDate:              s.faker.DateOfBirth(18, 75),
			Gender:                 genders[s.rng.Intn(len(genders))],
			AgreeTerms:             s.rng.Intn(2) == 0,
			ReceivePromotionsEmail: s.rng.Intn(3) == 0,
			RegistrationOrigin:     registrationOrigins[s.rng.Intn(len(registrationOrigins))],
			CreatedAt:              time.Now().AddDate(0, 0, -s.rng.Intn(721)),
		})
	}

	if err := s.repo.CreateBatch(customers, customerBatchSize); err != nil {
		return nil, fmt.Errorf("seeding customers: %w", err)
	}

	customerIDs, err := s.repo.AllIDs()
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	fmt.Printf("✓ %d customers created\n", len(customerIDs))
	return customerIDs, nil
}

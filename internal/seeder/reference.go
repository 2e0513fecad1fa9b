package seeder

import (
	"fmt"
	"log"

	"github.com/vitorbocca/nola-godlevel-backend/internal/models"
	"github.com/vitorbocca/nola-godlevel-backend/internal/repository"
)

// brandID is the tenant identifier the challenge environment expects.
const (
	brandID   uint = 1
	brandName      = "Challenge Brand"
)

var subBrandNames = []string{"Challenge Burger", "Challenge Pizza", "Challenge Sushi"}

type channelSeed struct {
	Name       string
	Type       string
	Weight     float64
	Commission float64
}

// Commission is carried for reference; nothing downstream consumes it.
var channelSeeds = []channelSeed{
	{"Presencial", models.ChannelTypeDineIn, 0.40, 0},
	{"iFood", models.ChannelTypeDelivery, 0.30, 27},
	{"Rappi", models.ChannelTypeDelivery, 0.15, 25},
	{"Uber Eats", models.ChannelTypeDelivery, 0.08, 30},
	{"WhatsApp", models.ChannelTypeDelivery, 0.05, 0},
	{"App Próprio", models.ChannelTypeDelivery, 0.02, 0},
}

var paymentTypeNames = []string{
	"Dinheiro", "Cartão de Crédito", "Cartão de Débito",
	"PIX", "Vale Refeição", "Vale Alimentação",
}

// ChannelSpec is the in-memory channel descriptor the sales stage samples from.
type ChannelSpec struct {
	ID     uint
	Name   string
	Type   string
	Weight float64
}

type ReferenceSeeder struct {
	repo repository.ReferenceRepository
}

func NewReferenceSeeder(repo repository.ReferenceRepository) *ReferenceSeeder {
	return &ReferenceSeeder{repo: repo}
}

// Seed creates the brand, sub-brands, channels and payment types everything
// else references. Returns the generated sub-brand ids and channel specs.
func (s *ReferenceSeeder) Seed() ([]uint, []ChannelSpec, error) {
	fmt.Println("Setting up base data...")

	if err := s.ensureBrand(); err != nil {
		return nil, nil, err
	}

	subBrandIDs := make([]uint, 0, len(subBrandNames))
	for _, name := range subBrandNames {
		subBrand := models.SubBrand{BrandID: brandID, Name: name}
		if err := s.repo.CreateSubBrand(&subBrand); err != nil {
			return nil, nil, fmt.Errorf("seeding sub-brand %q: %w", name, err)
		}
		subBrandIDs = append(subBrandIDs, subBrand.ID)
	}

	channels := make([]ChannelSpec, 0, len(channelSeeds))
	for _, seed := range channelSeeds {
		channel := models.Channel{
			BrandID:     brandID,
			Name:        seed.Name,
			Description: "Canal " + seed.Name,
			Type:        seed.Type,
		}
		if err := s.repo.CreateChannel(&channel); err != nil {
			return nil, nil, fmt.Errorf("seeding channel %q: %w", seed.Name, err)
		}
		channels = append(channels, ChannelSpec{
			ID:     channel.ID,
			Name:   seed.Name,
			Type:   seed.Type,
			Weight: seed.Weight,
		})
	}

	for _, description := range paymentTypeNames {
		paymentType := models.PaymentType{BrandID: brandID, Description: description}
		if err := s.repo.CreatePaymentType(&paymentType); err != nil {
			return nil, nil, fmt.Errorf("seeding payment type %q: %w", description, err)
		}
	}

	fmt.Printf("✓ Base data: %d sub-brands, %d channels\n", len(subBrandIDs), len(channels))
	return subBrandIDs, channels, nil
}

// ensureBrand makes sure the brand exists at brandID. If an insert at that id
// is rejected, it falls back to an auto-assigned id and warns that the
// configured constant is stale; the run still aborts unless the brand can be
// confirmed at brandID afterwards.
func (s *ReferenceSeeder) ensureBrand() error {
	existing, err := s.repo.FindBrand(brandID)
	if err != nil {
		return err
	}

	switch {
	case existing != nil:
		fmt.Printf("✓ Brand with ID %d already exists\n", brandID)
	default:
		brand := models.Brand{ID: brandID, Name: brandName}
		if err := s.repo.CreateBrand(&brand); err != nil {
			fallback := models.Brand{Name: brandName}
			if err := s.repo.CreateBrand(&fallback); err != nil {
				return fmt.Errorf("creating brand: %w", err)
			}
			if fallback.ID != brandID {
				log.Printf("⚠ Warning: created brand with ID %d instead of %d", fallback.ID, brandID)
				log.Printf("⚠ Update the brand id constant to %d or manually update the database", fallback.ID)
			}
		} else {
			fmt.Printf("✓ Created brand with ID %d\n", brandID)
		}
	}

	// Everything downstream inserts against brandID, so confirm it resolved.
	confirmed, err := s.repo.FindBrand(brandID)
	if err != nil {
		return err
	}
	if confirmed == nil {
		return fmt.Errorf("brand with ID %d does not exist and could not be created; create it manually or check database permissions", brandID)
	}
	return nil
}

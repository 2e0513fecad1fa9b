// Package seeder runs the data-generation pipeline: reference data, stores,
// catalog, customers, then the synthetic sales stream. Stages run strictly in
// order because each one references identifiers committed by the previous.
package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/vitorbocca/nola-godlevel-backend/internal/config"
	"github.com/vitorbocca/nola-godlevel-backend/internal/fake"
	"github.com/vitorbocca/nola-godlevel-backend/internal/repository"
)

type Seeder struct {
	cfg   *config.Config
	rng   *rand.Rand
	faker *fake.Faker

	storeRepo repository.StoreRepository
	saleRepo  repository.SaleRepository

	reference *ReferenceSeeder
	stores    *StoreSeeder
	catalog   *CatalogSeeder
	customers *CustomerSeeder
	sales     *SalesSeeder
}

func New(db *gorm.DB, cfg *config.Config) *Seeder {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	faker := fake.New(rng)

	storeRepo := repository.NewStoreRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	return &Seeder{
		cfg:       cfg,
		rng:       rng,
		faker:     faker,
		storeRepo: storeRepo,
		saleRepo:  saleRepo,
		reference: NewReferenceSeeder(repository.NewReferenceRepository(db)),
		stores:    NewStoreSeeder(storeRepo, faker, rng),
		catalog:   NewCatalogSeeder(repository.NewCatalogRepository(db), rng),
		customers: NewCustomerSeeder(repository.NewCustomerRepository(db), faker, rng),
		sales:     NewSalesSeeder(saleRepo, faker, rng),
	}
}

// Run executes the whole pipeline and prints the final summary. It returns on
// the first error; there is no retry anywhere.
func (s *Seeder) Run() error {
	subBrandIDs, channels, err := s.reference.Seed()
	if err != nil {
		return fmt.Errorf("reference data: %w", err)
	}

	storeIDs, err := s.stores.Seed(subBrandIDs, s.cfg.NumStores)
	if err != nil {
		return fmt.Errorf("stores: %w", err)
	}

	products, items, optionGroupIDs, err := s.catalog.Seed(subBrandIDs, s.cfg.NumProducts, s.cfg.NumItems)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	customerIDs, err := s.customers.Seed(s.cfg.NumCustomers)
	if err != nil {
		return fmt.Errorf("customers: %w", err)
	}

	_, err = s.sales.Seed(storeIDs, channels, products, items, optionGroupIDs, customerIDs, s.cfg.Months)
	if err != nil {
		return fmt.Errorf("sales: %w", err)
	}

	fmt.Println("Creating indexes...")
	s.saleRepo.CreateIndexes()
	fmt.Println("✓ Indexes created")

	return s.printSummary(len(products), len(items), len(customerIDs))
}

func (s *Seeder) printSummary(numProducts, numItems, numCustomers int) error {
	storeCount, err := s.storeRepo.Count()
	if err != nil {
		return fmt.Errorf("counting stores: %w", err)
	}
	salesCount, productSalesCount, itemSalesCount, err := s.saleRepo.Counts()
	if err != nil {
		return fmt.Errorf("counting sales: %w", err)
	}

	avgItems := 0.0
	if salesCount > 0 {
		avgItems = float64(productSalesCount) / float64(salesCount)
	}

	fmt.Println()
	fmt.Println("======================================================================")
	fmt.Println("✓ Data generation complete!")
	fmt.Printf("  Stores: %d\n", storeCount)
	fmt.Printf("  Products: %d\n", numProducts)
	fmt.Printf("  Items/Complements: %d\n", numItems)
	fmt.Printf("  Customers: %d\n", numCustomers)
	fmt.Printf("  Sales: %d\n", salesCount)
	fmt.Printf("  Product Sales: %d\n", productSalesCount)
	fmt.Printf("  Item Customizations: %d\n", itemSalesCount)
	fmt.Printf("  Avg items per sale: %.1f\n", avgItems)
	fmt.Println("======================================================================")
	return nil
}

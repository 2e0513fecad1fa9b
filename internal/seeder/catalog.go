package seeder

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vitorbocca/nola-godlevel-backend/internal/models"
	"github.com/vitorbocca/nola-godlevel-backend/internal/repository"
)

var productCategories = []string{"Burgers", "Pizzas", "Pratos", "Combos", "Sobremesas", "Bebidas"}

var productPrefixes = map[string][]string{
	"Burgers":    {"X-Burger", "Cheeseburger", "Bacon Burger", "Double Burger", "Veggie Burger"},
	"Pizzas":     {"Pizza Margherita", "Pizza Calabresa", "Pizza 4 Queijos", "Pizza Portuguesa", "Pizza Frango"},
	"Pratos":     {"Prato Executivo", "Filé", "Frango Grelhado", "Lasanha", "Risoto"},
	"Combos":     {"Combo Família", "Combo Individual", "Combo Duplo", "Combo Kids", "Combo Executivo"},
	"Sobremesas": {"Brownie", "Pudim", "Sorvete", "Petit Gateau", "Torta"},
	"Bebidas":    {"Refrigerante", "Suco", "Água", "Cerveja", "Vinho"},
}

var itemCategories = []string{"Complementos", "Molhos", "Adicionais"}

var itemNames = map[string][]string{
	"Complementos": {"Bacon", "Queijo Cheddar", "Queijo Mussarela", "Ovo", "Alface", "Tomate",
		"Cebola", "Picles", "Jalapeño", "Cogumelos", "Abacaxi", "Catupiry"},
	"Molhos": {"Molho Barbecue", "Molho Mostarda", "Molho Especial", "Maionese", "Ketchup",
		"Molho Picante", "Molho Ranch", "Molho Tártaro"},
	"Adicionais": {"Batata Frita", "Onion Rings", "Nuggets", "Salada", "Arroz", "Feijão",
		"Farofa", "Vinagrete"},
}

var optionGroupNames = []string{"Adicionais", "Remover", "Ponto da Carne", "Tamanho"}

var productSizes = []string{"P", "M", "G"}

// ProductSpec carries the pricing metadata the sales stage needs but the
// database does not store.
type ProductSpec struct {
	ID               uint
	Name             string
	Category         string
	BasePrice        float64
	Popularity       float64
	HasCustomization bool
}

type ItemSpec struct {
	ID    uint
	Name  string
	Price float64
}

type CatalogSeeder struct {
	repo repository.CatalogRepository
	rng  *rand.Rand
}

func NewCatalogSeeder(repo repository.CatalogRepository, rng *rand.Rand) *CatalogSeeder {
	return &CatalogSeeder{repo: repo, rng: rng}
}

// Seed creates the product and item catalogs plus the option groups, and
// returns in-memory descriptors for the sales stage.
func (s *CatalogSeeder) Seed(subBrandIDs []uint, numProducts, numItems int) ([]ProductSpec, []ItemSpec, []uint, error) {
	fmt.Printf("Generating %d products and %d items...\n", numProducts, numItems)

	products, err := s.seedProducts(subBrandIDs, numProducts)
	if err != nil {
		return nil, nil, nil, err
	}

	items, err := s.seedItems(subBrandIDs, numItems)
	if err != nil {
		return nil, nil, nil, err
	}

	optionGroupIDs := make([]uint, 0, len(optionGroupNames))
	for _, name := range optionGroupNames {
		group := models.OptionGroup{BrandID: brandID, Name: name}
		if err := s.repo.CreateOptionGroup(&group); err != nil {
			return nil, nil, nil, fmt.Errorf("seeding option group %q: %w", name, err)
		}
		optionGroupIDs = append(optionGroupIDs, group.ID)
	}

	fmt.Printf("✓ %d products, %d items, %d option groups\n", len(products), len(items), len(optionGroupIDs))
	return products, items, optionGroupIDs, nil
}

func (s *CatalogSeeder) seedProducts(subBrandIDs []uint, numProducts int) ([]ProductSpec, error) {
	products := make([]ProductSpec, 0, numProducts)
	perCategory := numProducts / len(productCategories)

	for _, categoryName := range productCategories {
		category := models.Category{BrandID: brandID, Name: categoryName, Type: models.CategoryTypeProduct}
		if err := s.repo.CreateCategory(&category); err != nil {
			return nil, fmt.Errorf("seeding category %q: %w", categoryName, err)
		}

		prefixes := productPrefixes[categoryName]
		for i := 0; i < perCategory; i++ {
			prefix := prefixes[s.rng.Intn(len(prefixes))]
			name := fmt.Sprintf("%s %s #%03d", prefix, productSizes[i%3], i+1)

			product := models.Product{
				BrandID:    brandID,
				SubBrandID: subBrandIDs[s.rng.Intn(len(subBrandIDs))],
				CategoryID: category.ID,
				Name:       name,
				PosUUID:    uuid.NewString(),
			}
			if err := s.repo.CreateProduct(&product); err != nil {
				return nil, fmt.Errorf("seeding product %q: %w", name, err)
			}

			products = append(products, ProductSpec{
				ID:               product.ID,
				Name:             name,
				Category:         categoryName,
				BasePrice:        round2(uniform(s.rng, 15, 120)),
				Popularity:       betaVariate(s.rng, 2, 5),
				HasCustomization: s.rng.Float64() > 0.4,
			})
		}
	}
	return products, nil
}

func (s *CatalogSeeder) seedItems(subBrandIDs []uint, numItems int) ([]ItemSpec, error) {
	var items []ItemSpec

	for _, categoryName := range itemCategories {
		category := models.Category{BrandID: brandID, Name: categoryName, Type: models.CategoryTypeItem}
		if err := s.repo.CreateCategory(&category); err != nil {
			return nil, fmt.Errorf("seeding category %q: %w", categoryName, err)
		}

		names := itemNames[categoryName]
		if len(names) == 0 {
			// No curated list: fall back to numbered items.
			count := numItems / len(itemCategories)
			names = make([]string, count)
			for i := range names {
				names[i] = fmt.Sprintf("%s #%02d", categoryName[:len(categoryName)-1], i+1)
			}
		}

		for _, name := range names {
			item := models.Item{
				BrandID:    brandID,
				SubBrandID: subBrandIDs[s.rng.Intn(len(subBrandIDs))],
				CategoryID: category.ID,
				Name:       name,
				PosUUID:    uuid.NewString(),
			}
			if err := s.repo.CreateItem(&item); err != nil {
				return nil, fmt.Errorf("seeding item %q: %w", name, err)
			}
			items = append(items, ItemSpec{
				ID:    item.ID,
				Name:  name,
				Price: round2(uniform(s.rng, 2, 15)),
			})
		}
	}
	return items, nil
}

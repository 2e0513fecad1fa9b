package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vitorbocca/nola-godlevel-backend/internal/models"
)

type CatalogRepository interface {
	CreateCategory(category *models.Category) error
	CreateProduct(product *models.Product) error
	CreateItem(item *models.Item) error
	CreateOptionGroup(group *models.OptionGroup) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateCategory(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return errors.Wrap(err, "failed to create category")
	}
	return nil
}

func (r *catalogRepository) CreateProduct(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}
	return nil
}

func (r *catalogRepository) CreateItem(item *models.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		return errors.Wrap(err, "failed to create item")
	}
	return nil
}

func (r *catalogRepository) CreateOptionGroup(group *models.OptionGroup) error {
	if err := r.db.Create(group).Error; err != nil {
		return errors.Wrap(err, "failed to create option group")
	}
	return nil
}

package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vitorbocca/nola-godlevel-backend/internal/models"
)

type StoreRepository interface {
	Create(store *models.Store) error
	Count() (int64, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(store *models.Store) error {
	if err := r.db.Create(store).Error; err != nil {
		return errors.Wrap(err, "failed to create store")
	}
	return nil
}

func (r *storeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Store{}).Count(&count).Error
	return count, err
}

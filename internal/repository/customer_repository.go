package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vitorbocca/nola-godlevel-backend/internal/models"
)

type CustomerRepository interface {
	CreateBatch(customers []models.Customer, batchSize int) error
	AllIDs() ([]uint, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// CreateBatch inserts customers with a multi-row insert per batchSize rows,
// so tens of thousands of profiles do not cost one round trip each.
func (r *customerRepository) CreateBatch(customers []models.Customer, batchSize int) error {
	if err := r.db.CreateInBatches(customers, batchSize).Error; err != nil {
		return errors.Wrap(err, "failed to batch-create customers")
	}
	return nil
}

// AllIDs returns every customer id in the table, including rows from earlier
// runs, so re-running the seeder samples across the whole pool.
func (r *customerRepository) AllIDs() ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&models.Customer{}).Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customer ids")
	}
	return ids, nil
}

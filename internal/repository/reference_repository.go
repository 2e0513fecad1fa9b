package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vitorbocca/nola-godlevel-backend/internal/models"
)

type ReferenceRepository interface {
	FindBrand(id uint) (*models.Brand, error)
	CreateBrand(brand *models.Brand) error
	CreateSubBrand(subBrand *models.SubBrand) error
	CreateChannel(channel *models.Channel) error
	CreatePaymentType(paymentType *models.PaymentType) error
}

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

// FindBrand returns nil without error when the brand does not exist.
func (r *referenceRepository) FindBrand(id uint) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.First(&brand, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up brand")
	}
	return &brand, nil
}

// CreateBrand inserts the brand as given; a non-zero ID is used verbatim so the
// caller can attempt the configured id first and retry without one.
func (r *referenceRepository) CreateBrand(brand *models.Brand) error {
	if err := r.db.Create(brand).Error; err != nil {
		return errors.Wrap(err, "failed to create brand")
	}
	return nil
}

func (r *referenceRepository) CreateSubBrand(subBrand *models.SubBrand) error {
	if err := r.db.Create(subBrand).Error; err != nil {
		return errors.Wrap(err, "failed to create sub-brand")
	}
	return nil
}

func (r *referenceRepository) CreateChannel(channel *models.Channel) error {
	if err := r.db.Create(channel).Error; err != nil {
		return errors.Wrap(err, "failed to create channel")
	}
	return nil
}

func (r *referenceRepository) CreatePaymentType(paymentType *models.PaymentType) error {
	if err := r.db.Create(paymentType).Error; err != nil {
		return errors.Wrap(err, "failed to create payment type")
	}
	return nil
}

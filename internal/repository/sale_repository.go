package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vitorbocca/nola-godlevel-backend/internal/models"
)

// Delivery addresses are clamped to a Brazil-covering bounding box at
// persistence time; the raw draw is allowed to exceed it.
const (
	minLatitude  = -33.0
	maxLatitude  = -5.0
	minLongitude = -74.0
	maxLongitude = -34.0
)

type SaleRepository interface {
	CreateBatch(sales []*models.Sale) error
	CreateIndexes()
	Counts() (sales, productSales, itemProductSales int64, err error)
}

type saleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

// CreateBatch persists a batch of sale graphs in one transaction. The sale
// rows with their product lines, item lines and delivery records go in via a
// single associated create, which hands back every generated id; delivery
// addresses and payment rows need those ids and follow within the same
// transaction. A failure rolls back the whole batch; earlier batches stay
// committed.
func (r *saleRepository) CreateBatch(sales []*models.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sales).Error; err != nil {
			return errors.Wrap(err, "failed to insert sales batch")
		}

		for _, sale := range sales {
			if err := r.insertDeliveryAddress(tx, sale); err != nil {
				return err
			}
			if err := r.insertPayments(tx, sale); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *saleRepository) insertDeliveryAddress(tx *gorm.DB, sale *models.Sale) error {
	if sale.Delivery == nil || sale.Delivery.Address == nil {
		return nil
	}

	addr := sale.Delivery.Address
	addr.SaleID = sale.ID
	addr.DeliverySaleID = sale.Delivery.ID
	addr.Latitude = clamp(addr.Latitude, minLatitude, maxLatitude)
	addr.Longitude = clamp(addr.Longitude, minLongitude, maxLongitude)

	if err := tx.Create(addr).Error; err != nil {
		return errors.Wrap(err, "failed to insert delivery address")
	}
	return nil
}

// insertPayments resolves each split's payment type by description at insert
// time. A description that no longer resolves drops that split silently.
func (r *saleRepository) insertPayments(tx *gorm.DB, sale *models.Sale) error {
	for _, split := range sale.PaymentSplits {
		var paymentType models.PaymentType
		err := tx.Where("description = ?", split.TypeDescription).
			Limit(1).Find(&paymentType).Error
		if err != nil {
			return errors.Wrap(err, "failed to look up payment type")
		}
		if paymentType.ID == 0 {
			continue
		}

		payment := models.Payment{
			SaleID:        sale.ID,
			PaymentTypeID: paymentType.ID,
			Value:         split.Value,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return errors.Wrap(err, "failed to insert payment")
		}
	}
	return nil
}

// CreateIndexes creates the two reporting indexes best-effort. Failures are
// swallowed: the index may already exist or the role may lack the privilege.
func (r *saleRepository) CreateIndexes() {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_sales_date_status ON sales(DATE(created_at), sale_status_desc)",
		"CREATE INDEX IF NOT EXISTS idx_product_sales_product_sale ON product_sales(product_id, sale_id)",
	}
	for _, stmt := range statements {
		_ = r.db.Exec(stmt).Error
	}
}

func (r *saleRepository) Counts() (sales, productSales, itemProductSales int64, err error) {
	if err = r.db.Model(&models.Sale{}).Count(&sales).Error; err != nil {
		return
	}
	if err = r.db.Model(&models.ProductSale{}).Count(&productSales).Error; err != nil {
		return
	}
	err = r.db.Model(&models.ItemProductSale{}).Count(&itemProductSales).Error
	return
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

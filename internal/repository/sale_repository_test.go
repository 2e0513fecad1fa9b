package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vitorbocca/nola-godlevel-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.PaymentType{}, &models.Sale{}, &models.ProductSale{},
		&models.ItemProductSale{}, &models.DeliverySale{}, &models.DeliveryAddress{},
		&models.Payment{},
	))
	return db
}

func newDeliverySale(lat, long float64) *models.Sale {
	fee := decimal.NewFromInt(9)
	return &models.Sale{
		StoreID:          1,
		ChannelID:        2,
		CreatedAt:        time.Now(),
		SaleStatusDesc:   models.SaleCompleted,
		TotalAmountItems: decimal.NewFromInt(50),
		DeliveryFee:      fee,
		ServiceTaxFee:    decimal.NewFromInt(5),
		TotalAmount:      decimal.NewFromInt(64),
		ValuePaid:        decimal.NewFromInt(64),
		Origin:           "pos",
		Products: []models.ProductSale{
			{
				ProductID:  7,
				Quantity:   2,
				BasePrice:  decimal.NewFromInt(25),
				TotalPrice: decimal.NewFromInt(50),
				Items: []models.ItemProductSale{
					{ItemID: 3, Quantity: 1, AdditionalPrice: decimal.NewFromInt(4), Price: decimal.NewFromInt(4), Amount: 1},
				},
			},
		},
		Delivery: &models.DeliverySale{
			CourierName:  "Entregador Teste",
			CourierType:  "PLATFORM",
			DeliveryType: "DELIVERY",
			Status:       models.DeliveryStatusDelivered,
			DeliveryFee:  fee,
			CourierFee:   decimal.NewFromFloat(5.4),
			Address: &models.DeliveryAddress{
				Street:       "Rua das Flores",
				Number:       "120",
				Neighborhood: "Centro",
				City:         "São Paulo",
				State:        "SP",
				PostalCode:   "01234-000",
				Latitude:     lat,
				Longitude:    long,
			},
		},
	}
}

func TestCreateBatchBackfillsIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewSaleRepository(db)

	sale := newDeliverySale(-23.5, -46.6)
	require.NoError(t, repo.CreateBatch([]*models.Sale{sale}))

	assert.NotZero(t, sale.ID)
	require.Len(t, sale.Products, 1)
	assert.NotZero(t, sale.Products[0].ID)
	assert.Equal(t, sale.ID, sale.Products[0].SaleID)
	require.Len(t, sale.Products[0].Items, 1)
	assert.Equal(t, sale.Products[0].ID, sale.Products[0].Items[0].ProductSaleID)
	assert.Equal(t, sale.ID, sale.Delivery.SaleID)

	var addr models.DeliveryAddress
	require.NoError(t, db.First(&addr).Error)
	assert.Equal(t, sale.ID, addr.SaleID)
	assert.Equal(t, sale.Delivery.ID, addr.DeliverySaleID)
}

func TestCreateBatchClampsAddresses(t *testing.T) {
	db := newTestDB(t)
	repo := NewSaleRepository(db)

	// Way outside the bounding box on both axes.
	sale := newDeliverySale(-40.0, -20.0)
	require.NoError(t, repo.CreateBatch([]*models.Sale{sale}))

	var addr models.DeliveryAddress
	require.NoError(t, db.First(&addr).Error)
	assert.Equal(t, minLatitude, addr.Latitude)
	assert.Equal(t, maxLongitude, addr.Longitude)
}

func TestCreateBatchResolvesPayments(t *testing.T) {
	db := newTestDB(t)
	repo := NewSaleRepository(db)

	require.NoError(t, db.Create(&models.PaymentType{BrandID: 1, Description: "Pix"}).Error)

	sale := newDeliverySale(-23.5, -46.6)
	sale.PaymentSplits = []models.PaymentSplit{
		{TypeDescription: "Pix", Value: decimal.NewFromInt(40)},
		{TypeDescription: "Vale Refeição Inexistente", Value: decimal.NewFromInt(24)},
	}
	require.NoError(t, repo.CreateBatch([]*models.Sale{sale}))

	var payments []models.Payment
	require.NoError(t, db.Find(&payments).Error)
	require.Len(t, payments, 1)
	assert.Equal(t, sale.ID, payments[0].SaleID)
	assert.True(t, decimal.NewFromInt(40).Equal(payments[0].Value))
}

func TestCreateBatchEmpty(t *testing.T) {
	repo := NewSaleRepository(newTestDB(t))
	require.NoError(t, repo.CreateBatch(nil))
}

func TestCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewSaleRepository(db)

	require.NoError(t, repo.CreateBatch([]*models.Sale{
		newDeliverySale(-23.5, -46.6),
		newDeliverySale(-22.9, -43.2),
	}))

	sales, productSales, itemSales, err := repo.Counts()
	require.NoError(t, err)
	assert.EqualValues(t, 2, sales)
	assert.EqualValues(t, 2, productSales)
	assert.EqualValues(t, 2, itemSales)
}

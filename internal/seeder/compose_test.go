package seeder

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitorbocca/nola-godlevel-backend/internal/fake"
	"github.com/vitorbocca/nola-godlevel-backend/internal/models"
)

// newComposeSeeder builds a SalesSeeder with an in-memory catalog; composeSale
// never touches the database.
func newComposeSeeder(seed int64) *SalesSeeder {
	rng := rand.New(rand.NewSource(seed))
	s := &SalesSeeder{
		faker: fake.New(rng),
		rng:   rng,
		products: []ProductSpec{
			{ID: 1, BasePrice: 25.50, Popularity: 0.8, HasCustomization: true},
			{ID: 2, BasePrice: 42.00, Popularity: 0.3, HasCustomization: false},
			{ID: 3, BasePrice: 15.90, Popularity: 0.1, HasCustomization: true},
		},
		items: []ItemSpec{
			{ID: 10, Price: 4.50},
			{ID: 11, Price: 2.00},
			{ID: 12, Price: 7.25},
		},
		optionGroupIDs: []uint{100, 101, 102, 103},
	}
	popularity := []float64{0.8, 0.3, 0.1}
	s.productSampler = newWeightedSampler(popularity)
	return s
}

func TestComposeSaleFinancialIdentity(t *testing.T) {
	t.Parallel()

	s := newComposeSeeder(7)
	saleTime := time.Now()
	dineIn := ChannelSpec{ID: 1, Type: models.ChannelTypeDineIn, Weight: 0.4}
	delivery := ChannelSpec{ID: 2, Type: models.ChannelTypeDelivery, Weight: 0.3}

	for i := 0; i < 3000; i++ {
		channel := dineIn
		if i%2 == 0 {
			channel = delivery
		}
		sale := s.composeSale(saleTime, 1, channel, nil)

		expected := sale.TotalAmountItems.
			Sub(sale.TotalDiscount).
			Add(sale.TotalIncrease).
			Add(sale.DeliveryFee).
			Add(sale.ServiceTaxFee)
		assert.True(t, sale.TotalAmount.Equal(expected),
			"total %s != items %s - discount %s + increase %s + fee %s + tax %s",
			sale.TotalAmount, sale.TotalAmountItems, sale.TotalDiscount,
			sale.TotalIncrease, sale.DeliveryFee, sale.ServiceTaxFee)

		// Line items stay in their sampling bounds.
		require.GreaterOrEqual(t, len(sale.Products), 1)
		require.LessOrEqual(t, len(sale.Products), 5)
		for _, line := range sale.Products {
			assert.GreaterOrEqual(t, line.Quantity, 1)
			assert.LessOrEqual(t, line.Quantity, 3)
			assert.LessOrEqual(t, len(line.Items), 4)
		}
	}
}

func TestComposeSaleStatusRules(t *testing.T) {
	t.Parallel()

	s := newComposeSeeder(11)
	saleTime := time.Now()
	delivery := ChannelSpec{ID: 2, Type: models.ChannelTypeDelivery, Weight: 0.3}

	sawCompleted, sawCancelled := false, false
	for i := 0; i < 3000; i++ {
		sale := s.composeSale(saleTime, 1, delivery, nil)

		switch sale.SaleStatusDesc {
		case models.SaleCompleted:
			sawCompleted = true
			require.NotNil(t, sale.Delivery, "completed delivery sale must carry a delivery record")
			require.NotNil(t, sale.Delivery.Address)
			require.NotNil(t, sale.ProductionSeconds)
			require.NotNil(t, sale.DeliverySeconds)
			assert.GreaterOrEqual(t, *sale.ProductionSeconds, 300)
			assert.LessOrEqual(t, *sale.ProductionSeconds, 2400)
			assert.GreaterOrEqual(t, *sale.DeliverySeconds, 600)
			assert.LessOrEqual(t, *sale.DeliverySeconds, 3600)
			assert.True(t, sale.ValuePaid.Equal(sale.TotalAmount))

			courierFee := sale.DeliveryFee.Mul(decimal.NewFromFloat(0.6)).Round(2)
			assert.True(t, sale.Delivery.CourierFee.Equal(courierFee))

			// Splits always settle the full paid amount.
			sum := decimal.Zero
			require.NotEmpty(t, sale.PaymentSplits)
			require.LessOrEqual(t, len(sale.PaymentSplits), 2)
			for _, split := range sale.PaymentSplits {
				sum = sum.Add(split.Value)
			}
			assert.True(t, sum.Equal(sale.ValuePaid),
				"splits sum %s != value paid %s", sum, sale.ValuePaid)

		case models.SaleCancelled:
			sawCancelled = true
			assert.Nil(t, sale.Delivery)
			assert.Nil(t, sale.ProductionSeconds)
			assert.Nil(t, sale.DeliverySeconds)
			assert.Empty(t, sale.PaymentSplits)
			assert.True(t, sale.ValuePaid.IsZero())

		default:
			t.Fatalf("unexpected sale status %q", sale.SaleStatusDesc)
		}
	}
	assert.True(t, sawCompleted)
	assert.True(t, sawCancelled)
}

func TestComposeSaleChannelRules(t *testing.T) {
	t.Parallel()

	s := newComposeSeeder(13)
	saleTime := time.Now()
	dineIn := ChannelSpec{ID: 1, Type: models.ChannelTypeDineIn, Weight: 0.4}
	delivery := ChannelSpec{ID: 2, Type: models.ChannelTypeDelivery, Weight: 0.3}

	for i := 0; i < 1000; i++ {
		sale := s.composeSale(saleTime, 1, dineIn, nil)
		assert.True(t, sale.DeliveryFee.IsZero(), "dine-in sales have no delivery fee")
		assert.Nil(t, sale.Delivery)
		require.NotNil(t, sale.PeopleQuantity)
		assert.GreaterOrEqual(t, *sale.PeopleQuantity, 1)
		assert.LessOrEqual(t, *sale.PeopleQuantity, 8)

		sale = s.composeSale(saleTime, 1, delivery, nil)
		assert.Nil(t, sale.PeopleQuantity)
		if !sale.DeliveryFee.IsZero() {
			fee, _ := sale.DeliveryFee.Float64()
			assert.Contains(t, deliveryFees, fee)
		}
	}
}

func TestComposeSaleCustomerName(t *testing.T) {
	t.Parallel()

	s := newComposeSeeder(17)
	channel := ChannelSpec{ID: 1, Type: models.ChannelTypeDineIn, Weight: 0.4}

	anonymous := s.composeSale(time.Now(), 1, channel, nil)
	require.NotNil(t, anonymous.CustomerName)
	assert.NotEmpty(t, *anonymous.CustomerName)

	customerID := uint(7)
	identified := s.composeSale(time.Now(), 1, channel, &customerID)
	assert.Nil(t, identified.CustomerName)
	require.NotNil(t, identified.CustomerID)
	assert.Equal(t, customerID, *identified.CustomerID)
}

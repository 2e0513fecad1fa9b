package seeder

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vitorbocca/nola-godlevel-backend/internal/models"
)

var discountReasons = []string{
	"Cupom de desconto", "Promoção do dia", "Cliente fidelidade",
	"Desconto gerente", "Primeira compra", "Aniversário",
}

var deliveryFees = []float64{5, 7, 9, 12, 15}

var addressComplements = []string{"Apto 101", "Casa", "Bloco A", "Fundos", "", ""}

// composeSale synthesizes one order with its product lines, complements,
// delivery details and payment splits. Nothing touches the database here.
func (s *SalesSeeder) composeSale(saleTime time.Time, storeID uint, channel ChannelSpec, customerID *uint) *models.Sale {
	productLines, subtotal := s.composeProductLines()

	var discount float64
	var discountReason *string
	if s.rng.Float64() < 0.2 {
		discount = round2(subtotal * uniform(s.rng, 0.05, 0.30))
		reason := discountReasons[s.rng.Intn(len(discountReasons))]
		discountReason = &reason
	}

	var increase float64
	if s.rng.Float64() < 0.05 {
		increase = round2(subtotal * uniform(s.rng, 0.02, 0.10))
	}

	var deliveryFee float64
	if channel.Type == models.ChannelTypeDelivery {
		deliveryFee = deliveryFees[s.rng.Intn(len(deliveryFees))]
	}

	var serviceTax float64
	if s.rng.Float64() < 0.3 {
		serviceTax = round2(subtotal * 0.10)
	}

	status := models.SaleCompleted
	if s.rng.Float64() >= 0.95 {
		status = models.SaleCancelled
	}

	// Components are rounded individually and the total is assembled in
	// decimal, so total == items - discount + increase + fee + tax holds
	// exactly.
	itemsValue := money(subtotal)
	discountValue := money(discount)
	increaseValue := money(increase)
	feeValue := money(deliveryFee)
	taxValue := money(serviceTax)
	totalAmount := itemsValue.Sub(discountValue).Add(increaseValue).Add(feeValue).Add(taxValue)

	valuePaid := decimal.Zero
	if status == models.SaleCompleted {
		valuePaid = totalAmount
	}

	sale := &models.Sale{
		StoreID:          storeID,
		CustomerID:       customerID,
		ChannelID:        channel.ID,
		CreatedAt:        saleTime,
		SaleStatusDesc:   status,
		TotalAmountItems: itemsValue,
		TotalDiscount:    discountValue,
		TotalIncrease:    increaseValue,
		DeliveryFee:      feeValue,
		ServiceTaxFee:    taxValue,
		TotalAmount:      totalAmount,
		ValuePaid:        valuePaid,
		DiscountReason:   discountReason,
		Origin:           "POS",
		Products:         productLines,
	}

	if customerID == nil {
		name := s.faker.Name()
		sale.CustomerName = &name
	}

	if status == models.SaleCompleted {
		production := 300 + s.rng.Intn(2101)
		sale.ProductionSeconds = &production
		if channel.Type == models.ChannelTypeDelivery {
			deliverySeconds := 600 + s.rng.Intn(3001)
			sale.DeliverySeconds = &deliverySeconds
			sale.Delivery = s.composeDelivery(feeValue)
		}
		sale.PaymentSplits = s.composePayments(valuePaid)
	}

	if channel.Type == models.ChannelTypeDineIn {
		people := 1 + s.rng.Intn(8)
		sale.PeopleQuantity = &people
	}

	return sale
}

// composeProductLines draws 1-5 products weighted by popularity, attaches
// complements to customizable ones, and returns the lines with the order
// subtotal.
func (s *SalesSeeder) composeProductLines() ([]models.ProductSale, float64) {
	numProducts := expCount(s.rng, 0.5) + 1
	if numProducts > 5 {
		numProducts = 5
	}

	lines := make([]models.ProductSale, 0, numProducts)
	subtotal := 0.0

	for i := 0; i < numProducts; i++ {
		product := s.products[s.productSampler.Pick(s.rng)]
		qty := 1 + s.rng.Intn(3)

		var itemLines []models.ItemProductSale
		additions := 0.0
		if product.HasCustomization && s.rng.Float64() > 0.4 {
			numItems := 1 + s.rng.Intn(4)
			for j := 0; j < numItems; j++ {
				item := s.items[s.rng.Intn(len(s.items))]
				additions += item.Price

				line := models.ItemProductSale{
					ItemID:          item.ID,
					Quantity:        1,
					AdditionalPrice: money(item.Price),
					Price:           money(item.Price),
					Amount:          1,
				}
				if s.rng.Float64() > 0.5 {
					groupID := s.optionGroupIDs[s.rng.Intn(len(s.optionGroupIDs))]
					line.OptionGroupID = &groupID
				}
				itemLines = append(itemLines, line)
			}
		}

		lineTotal := (product.BasePrice + additions) * float64(qty)
		subtotal += lineTotal

		lines = append(lines, models.ProductSale{
			ProductID:  product.ID,
			Quantity:   qty,
			BasePrice:  money(product.BasePrice),
			TotalPrice: money(lineTotal),
			Items:      itemLines,
		})
	}

	return lines, subtotal
}

func (s *SalesSeeder) composeDelivery(deliveryFee decimal.Decimal) *models.DeliverySale {
	// Raw draw covers a wide Brazil-sized range; persistence clamps it.
	latitude := baseLatitude + uniform(s.rng, -10, 5)
	longitude := baseLongitude + uniform(s.rng, -10, 10)

	var complement *string
	if s.rng.Float64() > 0.5 {
		if c := addressComplements[s.rng.Intn(len(addressComplements))]; c != "" {
			complement = &c
		}
	}

	return &models.DeliverySale{
		CourierName:  s.faker.Name(),
		CourierPhone: s.faker.PhoneNumber(),
		CourierType:  models.CourierTypes[s.rng.Intn(len(models.CourierTypes))],
		DeliveryType: models.DeliveryTypes[s.rng.Intn(len(models.DeliveryTypes))],
		Status:       models.DeliveryStatusDelivered,
		DeliveryFee:  deliveryFee,
		CourierFee:   deliveryFee.Mul(decimal.NewFromFloat(0.6)).Round(2),
		Address: &models.DeliveryAddress{
			Street:       s.faker.StreetName(),
			Number:       fmt.Sprint(10 + s.rng.Intn(9990)),
			Complement:   complement,
			Neighborhood: s.faker.Neighborhood(),
			City:         s.faker.City(),
			State:        s.faker.StateAbbrev(),
			PostalCode:   s.faker.PostalCode(),
			Latitude:     latitude,
			Longitude:    longitude,
		},
	}
}

// composePayments splits the paid amount: 85% a single payment, 15% two, with
// the first split between 30% and 70% of the total and restricted to the card
// and cash types.
func (s *SalesSeeder) composePayments(valuePaid decimal.Decimal) []models.PaymentSplit {
	if s.rng.Float64() < 0.85 {
		return []models.PaymentSplit{{
			TypeDescription: paymentTypeNames[s.rng.Intn(len(paymentTypeNames))],
			Value:           valuePaid,
		}}
	}

	split := valuePaid.Mul(decimal.NewFromFloat(uniform(s.rng, 0.3, 0.7))).Round(2)
	return []models.PaymentSplit{
		{
			TypeDescription: paymentTypeNames[s.rng.Intn(3)],
			Value:           split,
		},
		{
			TypeDescription: paymentTypeNames[s.rng.Intn(len(paymentTypeNames))],
			Value:           valuePaid.Sub(split),
		},
	}
}

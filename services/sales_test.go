package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nouhin-backend/filters"
	"nouhin-backend/models"
)

func TestSalesSummary_GroupsByCustomer(t *testing.T) {
	svc := seeded(t)
	_, err := svc.CreateCustomer(CreateCustomerInput{Name: "佐藤物産"})
	require.NoError(t, err)

	create := func(customer string, qty, price float64) {
		t.Helper()
		_, err := svc.CreateDelivery(CreateDeliveryInput{
			CustomerName: customer,
			DeliveryDate: "2024-05-10",
			Items:        []DeliveryItemInput{{ProductName: "自由入力", Quantity: qty, UnitPrice: &price}},
		})
		require.NoError(t, err)
	}
	create("山田商店", 2, 10)
	create("佐藤物産", 4, 100)
	create("山田商店", 1, 5)

	summary, details, err := svc.SalesSummary(filters.Query{})
	require.NoError(t, err)
	assert.Len(t, details, 3)

	// first-seen group order, sums per resolved customer name
	require.Len(t, summary, 2)
	assert.Equal(t, SalesRow{CustomerName: "山田商店", TotalSales: 25}, summary[0])
	assert.Equal(t, SalesRow{CustomerName: "佐藤物産", TotalSales: 400}, summary[1])
}

func TestSalesSummary_DanglingCustomerFallsBack(t *testing.T) {
	svc := seeded(t)
	d, err := svc.CreateDelivery(CreateDeliveryInput{
		CustomerName: "山田商店",
		DeliveryDate: "2024-05-10",
		Items:        []DeliveryItemInput{{ProductName: "りんご", Quantity: 2}},
	})
	require.NoError(t, err)
	_, err = svc.UpdateDelivery(d.Id, UpdateDeliveryInput{CustomerId: sptr("C999")})
	require.NoError(t, err)

	summary, _, err := svc.SalesSummary(filters.Query{})
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, models.FallbackName, summary[0].CustomerName)
	assert.Equal(t, 160.0, summary[0].TotalSales)
}

func TestSalesSummary_RespectsFilter(t *testing.T) {
	svc := seeded(t)
	price := 10.0
	for _, date := range []string{"2024-05-01", "2024-06-01"} {
		_, err := svc.CreateDelivery(CreateDeliveryInput{
			CustomerName: "山田商店",
			DeliveryDate: date,
			Items:        []DeliveryItemInput{{ProductName: "自由入力", Quantity: 1, UnitPrice: &price}},
		})
		require.NoError(t, err)
	}

	summary, details, err := svc.SalesSummary(filters.Query{"startDate": "2024-06-01"})
	require.NoError(t, err)
	assert.Len(t, details, 1)
	require.Len(t, summary, 1)
	assert.Equal(t, 10.0, summary[0].TotalSales)
}

func TestSalesSummary_EmptyResult(t *testing.T) {
	svc := seeded(t)
	summary, details, err := svc.SalesSummary(filters.Query{})
	require.NoError(t, err)
	assert.Empty(t, details)
	assert.NotNil(t, summary)
	assert.Empty(t, summary)
}

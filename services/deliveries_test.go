package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nouhin-backend/documents"
	"nouhin-backend/filters"
	"nouhin-backend/models"
	"nouhin-backend/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return New(st, documents.HTMLRenderer{}, zap.NewNop())
}

// seeded returns a service with one customer and two products.
func seeded(t *testing.T) *Service {
	t.Helper()
	svc := newTestService(t)

	_, err := svc.CreateCustomer(CreateCustomerInput{Name: "山田商店", ClosingDay: 20})
	require.NoError(t, err)
	_, err = svc.CreateProduct(CreateProductInput{Name: "りんご", UnitPrice: 80, Unit: "個"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(CreateProductInput{Name: "みかん", UnitPrice: 60, Unit: "個"})
	require.NoError(t, err)
	return svc
}

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func TestCreateDelivery(t *testing.T) {
	svc := seeded(t)

	d, err := svc.CreateDelivery(CreateDeliveryInput{
		CustomerName: "山田商店",
		DeliveryDate: "2024-05-10",
		Items: []DeliveryItemInput{
			{ProductName: "りんご", Quantity: 3},
			{ProductName: "特注品", Quantity: 1, UnitPrice: fptr(500), Unit: sptr("式")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "D001", d.Id)
	assert.Equal(t, "V00001", d.VoucherNumber)
	assert.Equal(t, "C001", d.CustomerId)
	assert.Equal(t, models.StatusUnissued, d.Status)
	assert.Equal(t, models.InvoiceStatusUnbilled, d.InvoiceStatus)

	// resolved item inherits product id, unit and price
	require.Len(t, d.Items, 2)
	assert.Equal(t, "P001", d.Items[0].ProductId)
	assert.Equal(t, "個", d.Items[0].Unit)
	assert.Equal(t, 80.0, d.Items[0].UnitPrice)

	// unresolved name stays a free-form line
	assert.Empty(t, d.Items[1].ProductId)
	assert.Equal(t, "特注品", d.Items[1].ProductName)
	assert.Equal(t, 500.0, d.Items[1].UnitPrice)

	assert.Equal(t, 3*80.0+500.0, d.TotalAmount())
}

func TestCreateDelivery_CustomerNotFound(t *testing.T) {
	svc := seeded(t)

	_, err := svc.CreateDelivery(CreateDeliveryInput{
		CustomerName: "存在しない商店",
		DeliveryDate: "2024-05-10",
		Items:        []DeliveryItemInput{{ProductName: "りんご", Quantity: 1}},
	})
	var ref *models.ReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "customerName", ref.Field)

	// nothing was created, no voucher burned
	list, err := svc.ListDeliveries(filters.Query{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateDelivery_VouchersIncrement(t *testing.T) {
	svc := seeded(t)

	in := CreateDeliveryInput{
		CustomerName: "山田商店",
		DeliveryDate: "2024-05-10",
		Items:        []DeliveryItemInput{{ProductName: "りんご", Quantity: 1}},
	}
	d1, err := svc.CreateDelivery(in)
	require.NoError(t, err)
	d2, err := svc.CreateDelivery(in)
	require.NoError(t, err)
	assert.Equal(t, "V00001", d1.VoucherNumber)
	assert.Equal(t, "V00002", d2.VoucherNumber)
}

func TestUpdateDelivery_PartialMerge(t *testing.T) {
	svc := seeded(t)
	d, err := svc.CreateDelivery(CreateDeliveryInput{
		CustomerName: "山田商店",
		DeliveryDate: "2024-05-10",
		Items:        []DeliveryItemInput{{ProductName: "りんご", Quantity: 3}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateDelivery(d.Id, UpdateDeliveryInput{Notes: sptr("午前着")})
	require.NoError(t, err)
	assert.Equal(t, "午前着", updated.Notes)
	// untouched fields survive
	assert.Equal(t, d.VoucherNumber, updated.VoucherNumber)
	assert.Equal(t, d.Items, updated.Items)
}

func TestUpdateDelivery_ItemsReplaceWholesale(t *testing.T) {
	svc := seeded(t)
	d, err := svc.CreateDelivery(CreateDeliveryInput{
		CustomerName: "山田商店",
		DeliveryDate: "2024-05-10",
		Items: []DeliveryItemInput{
			{ProductName: "りんご", Quantity: 3},
			{ProductName: "みかん", Quantity: 2},
		},
	})
	require.NoError(t, err)

	items := []DeliveryItemInput{{ProductName: "みかん", Quantity: 5}}
	updated, err := svc.UpdateDelivery(d.Id, UpdateDeliveryInput{Items: &items})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "P002", updated.Items[0].ProductId)
	assert.Equal(t, 5.0, updated.Items[0].Quantity)
}

func TestUpdateDelivery_ProductNotFoundAbortsAll(t *testing.T) {
	svc := seeded(t)
	d, err := svc.CreateDelivery(CreateDeliveryInput{
		CustomerName: "山田商店",
		DeliveryDate: "2024-05-10",
		Items:        []DeliveryItemInput{{ProductName: "りんご", Quantity: 3}},
	})
	require.NoError(t, err)

	items := []DeliveryItemInput{{ProductId: "P999", Quantity: 1, UnitPrice: fptr(1)}}
	_, err = svc.UpdateDelivery(d.Id, UpdateDeliveryInput{
		Items: &items,
		Notes: sptr("should not stick"),
	})
	var ref *models.ReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "productId", ref.Field)

	// the delivery is unchanged, including the non-item fields of the patch
	list, lerr := svc.ListDeliveries(filters.Query{})
	require.NoError(t, lerr)
	require.Len(t, list, 1)
	assert.Equal(t, d.Items, list[0].Items)
	assert.Empty(t, list[0].Notes)
}

func TestUpdateDelivery_CustomerIdTrustedAsIs(t *testing.T) {
	svc := seeded(t)
	d, err := svc.CreateDelivery(CreateDeliveryInput{
		CustomerName: "山田商店",
		DeliveryDate: "2024-05-10",
		Items:        []DeliveryItemInput{{ProductName: "りんご", Quantity: 1}},
	})
	require.NoError(t, err)

	// a raw customerId is not validated; dangling refs resolve to 不明 later
	updated, err := svc.UpdateDelivery(d.Id, UpdateDeliveryInput{CustomerId: sptr("C999")})
	require.NoError(t, err)
	assert.Equal(t, "C999", updated.CustomerId)
}

func TestDeleteDelivery(t *testing.T) {
	svc := seeded(t)
	d, err := svc.CreateDelivery(CreateDeliveryInput{
		CustomerName: "山田商店",
		DeliveryDate: "2024-05-10",
		Items:        []DeliveryItemInput{{ProductName: "りんご", Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDelivery(d.Id))

	var nf *models.NotFoundError
	err = svc.DeleteDelivery(d.Id)
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "delivery", nf.Entity)
}

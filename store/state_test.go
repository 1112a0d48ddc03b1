package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nouhin-backend/models"
)

func TestNextVoucher_Monotonic(t *testing.T) {
	st := &State{}
	st.seedVoucher()

	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 10; i++ {
		v := st.NextVoucher()
		if i == 0 {
			assert.Equal(t, "V00001", v)
		}
		assert.Len(t, v, 6)
		assert.False(t, seen[v], "voucher %s handed out twice", v)
		assert.Greater(t, v, prev)
		seen[v] = true
		prev = v
	}
}

func TestSeedVoucher_FromPersistedState(t *testing.T) {
	st := &State{
		Deliveries: []models.Delivery{{VoucherNumber: "V00003"}, {VoucherNumber: "V00007"}},
		Invoices:   []models.Invoice{{VoucherNumber: "V00005"}},
	}
	st.seedVoucher()
	assert.Equal(t, "V00008", st.NextVoucher())
	assert.Equal(t, "V00009", st.NextVoucher())
}

func TestSeedVoucher_Empty(t *testing.T) {
	st := &State{}
	st.seedVoucher()
	assert.Equal(t, "V00001", st.NextVoucher())
}

func TestNextId_GapsNeverReused(t *testing.T) {
	st := &State{Products: []models.Product{{Id: "P001"}, {Id: "P003"}}}
	// P002 was deleted at some point; next id must exceed the max suffix
	assert.Equal(t, "P004", st.NextProductId())

	st.Products = nil
	assert.Equal(t, "P001", st.NextProductId())
}

func TestNextId_PerEntityPrefix(t *testing.T) {
	st := &State{
		Customers:  []models.Customer{{Id: "C009"}},
		Deliveries: []models.Delivery{{Id: "D012"}},
		Invoices:   []models.Invoice{{Id: "I002"}},
	}
	assert.Equal(t, "C010", st.NextCustomerId())
	assert.Equal(t, "D013", st.NextDeliveryId())
	assert.Equal(t, "I003", st.NextInvoiceId())
}

func TestNumericSuffix(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"P004", 4},
		{"V00123", 123},
		{"C999", 999},
		{"no-digits", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, numericSuffix(tt.id), tt.id)
	}
}

func TestCustomerName_Fallback(t *testing.T) {
	st := &State{Customers: []models.Customer{{Id: "C001", Name: "山田商店"}}}
	assert.Equal(t, "山田商店", st.CustomerName("C001"))
	assert.Equal(t, models.FallbackName, st.CustomerName("C404"))
}

func TestFindHelpers(t *testing.T) {
	st := &State{
		Products: []models.Product{{Id: "P001", Name: "りんご"}},
	}
	require.NotNil(t, st.FindProduct("P001"))
	assert.Nil(t, st.FindProduct("P002"))
	require.NotNil(t, st.FindProductByName("りんご"))
	assert.Nil(t, st.FindProductByName("みかん"))
}

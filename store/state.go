package store

import (
	"fmt"
	"strconv"
	"strings"

	"nouhin-backend/models"
)

// State holds every collection in memory. All access goes through
// Store.View/Store.Mutate, which serialize callers; State itself has no
// locking.
type State struct {
	Products   []models.Product
	Customers  []models.Customer
	Deliveries []models.Delivery
	Invoices   []models.Invoice
	Users      []models.User
	Company    models.CompanyInfo

	voucherSeq int
}

// NextVoucher returns the next shared voucher number (V + 5 digits) and
// advances the counter. Numbers are never reused, even after deletions.
func (st *State) NextVoucher() string {
	v := fmt.Sprintf("V%05d", st.voucherSeq)
	st.voucherSeq++
	return v
}

// seedVoucher sets the counter to max(existing suffixes)+1, or 1 when no
// deliveries or invoices exist yet.
func (st *State) seedVoucher() {
	max := 0
	for _, d := range st.Deliveries {
		if n := numericSuffix(d.VoucherNumber); n > max {
			max = n
		}
	}
	for _, inv := range st.Invoices {
		if n := numericSuffix(inv.VoucherNumber); n > max {
			max = n
		}
	}
	st.voucherSeq = max + 1
}

// nextId builds prefix + zero-padded(max suffix + 1). Max-based, not
// count-based: deleted ids are never handed out again.
func nextId(prefix string, width int, ids []string) string {
	max := 0
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if n := numericSuffix(id); n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, max+1)
}

// numericSuffix extracts the trailing decimal run of an id, 0 if none.
func numericSuffix(id string) int {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	if i == len(id) {
		return 0
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return 0
	}
	return n
}

func (st *State) NextProductId() string {
	ids := make([]string, len(st.Products))
	for i, p := range st.Products {
		ids[i] = p.Id
	}
	return nextId("P", 3, ids)
}

func (st *State) NextCustomerId() string {
	ids := make([]string, len(st.Customers))
	for i, c := range st.Customers {
		ids[i] = c.Id
	}
	return nextId("C", 3, ids)
}

func (st *State) NextDeliveryId() string {
	ids := make([]string, len(st.Deliveries))
	for i, d := range st.Deliveries {
		ids[i] = d.Id
	}
	return nextId("D", 3, ids)
}

func (st *State) NextInvoiceId() string {
	ids := make([]string, len(st.Invoices))
	for i, inv := range st.Invoices {
		ids[i] = inv.Id
	}
	return nextId("I", 3, ids)
}

// FindProduct returns a pointer into the live slice; mutate only inside
// Store.Mutate.
func (st *State) FindProduct(id string) *models.Product {
	for i := range st.Products {
		if st.Products[i].Id == id {
			return &st.Products[i]
		}
	}
	return nil
}

func (st *State) FindProductByName(name string) *models.Product {
	for i := range st.Products {
		if st.Products[i].Name == name {
			return &st.Products[i]
		}
	}
	return nil
}

func (st *State) FindCustomer(id string) *models.Customer {
	for i := range st.Customers {
		if st.Customers[i].Id == id {
			return &st.Customers[i]
		}
	}
	return nil
}

func (st *State) FindCustomerByName(name string) *models.Customer {
	for i := range st.Customers {
		if st.Customers[i].Name == name {
			return &st.Customers[i]
		}
	}
	return nil
}

func (st *State) FindDelivery(id string) *models.Delivery {
	for i := range st.Deliveries {
		if st.Deliveries[i].Id == id {
			return &st.Deliveries[i]
		}
	}
	return nil
}

func (st *State) FindInvoice(id string) *models.Invoice {
	for i := range st.Invoices {
		if st.Invoices[i].Id == id {
			return &st.Invoices[i]
		}
	}
	return nil
}

// CustomerName resolves a customer id to its display name, falling back to
// 不明 for dangling references.
func (st *State) CustomerName(id string) string {
	if c := st.FindCustomer(id); c != nil {
		return c.Name
	}
	return models.FallbackName
}

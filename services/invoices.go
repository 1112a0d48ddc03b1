package services

import (
	"nouhin-backend/models"
	"nouhin-backend/store"
	"nouhin-backend/utils"
)

type InvoiceItemInput struct {
	ProductId string  `json:"productId" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}

type CreateInvoiceInput struct {
	CustomerId string             `json:"customerId" validate:"required"`
	IssueDate  string             `json:"issueDate" validate:"required"`
	Items      []InvoiceItemInput `json:"items" validate:"required,min=1,dive"`
}

func (s *Service) ListInvoices() []models.Invoice {
	var out []models.Invoice
	s.store.View(func(st *store.State) {
		out = append([]models.Invoice(nil), st.Invoices...)
	})
	return out
}

// CreateInvoice computes the total once and stores it; invoices are not
// recomputed on read the way delivery amounts are.
func (s *Service) CreateInvoice(in CreateInvoiceInput) (models.Invoice, error) {
	var created models.Invoice
	err := s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		items := make([]models.InvoiceItem, 0, len(in.Items))
		var total float64
		for _, it := range in.Items {
			items = append(items, models.InvoiceItem{
				ProductId: it.ProductId,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
			total += it.Quantity * it.UnitPrice
		}
		created = models.Invoice{
			Id:            st.NextInvoiceId(),
			VoucherNumber: st.NextVoucher(),
			CustomerId:    in.CustomerId,
			IssueDate:     in.IssueDate,
			Items:         items,
			TotalAmount:   utils.Round2(total),
		}
		st.Invoices = append(st.Invoices, created)
		return []store.Collection{store.Invoices}, nil
	})
	return created, err
}

func (s *Service) DeleteInvoice(id string) error {
	return s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		for i := range st.Invoices {
			if st.Invoices[i].Id == id {
				st.Invoices = append(st.Invoices[:i], st.Invoices[i+1:]...)
				return []store.Collection{store.Invoices}, nil
			}
		}
		return nil, &models.NotFoundError{Entity: "invoice", Id: id}
	})
}

package services

import (
	"context"

	"go.uber.org/zap"

	"nouhin-backend/documents"
	"nouhin-backend/models"
	"nouhin-backend/store"
)

// DocumentContentType reports what the configured renderer produces.
func (s *Service) DocumentContentType() string {
	return s.renderer.ContentType()
}

// IssueDeliveryNote renders the delivery-note document for a delivery and,
// on success, flips its status 未発行→発行済み. Issuing an already issued
// delivery renders again and leaves the status at 発行済み; the transition
// never runs backward.
func (s *Service) IssueDeliveryNote(ctx context.Context, id string) ([]byte, error) {
	return s.issue(ctx, id, documents.DeliveryNoteHTML, func(d *models.Delivery) {
		d.Status = models.StatusIssued
	})
}

// IssueInvoice renders the invoice document for a delivery and, on success,
// flips its invoiceStatus 未請求→請求済み, one-way.
func (s *Service) IssueInvoice(ctx context.Context, id string) ([]byte, error) {
	return s.issue(ctx, id, documents.InvoiceHTML, func(d *models.Delivery) {
		d.InvoiceStatus = models.InvoiceStatusBilled
	})
}

func (s *Service) issue(ctx context.Context, id string,
	render func(documents.Data) (string, error), flip func(*models.Delivery)) ([]byte, error) {

	// Collect under the read lock; rendering must not hold the store.
	var data documents.Data
	var lookupErr error
	s.store.View(func(st *store.State) {
		d := st.FindDelivery(id)
		if d == nil {
			lookupErr = &models.NotFoundError{Entity: "delivery", Id: id}
			return
		}
		c := st.FindCustomer(d.CustomerId)
		if c == nil {
			lookupErr = &models.NotFoundError{Entity: "customer", Id: d.CustomerId}
			return
		}
		data = documents.Data{Delivery: *d, Customer: *c, Company: st.Company}
	})
	if lookupErr != nil {
		return nil, lookupErr
	}

	html, err := render(data)
	if err != nil {
		return nil, err
	}
	doc, err := s.renderer.Render(ctx, html)
	if err != nil {
		return nil, err
	}

	// Only a successful render moves the flag.
	if err := s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		d := st.FindDelivery(id)
		if d == nil {
			return nil, &models.NotFoundError{Entity: "delivery", Id: id}
		}
		flip(d)
		return []store.Collection{store.Deliveries}, nil
	}); err != nil {
		return nil, err
	}

	s.log.Info("document issued",
		zap.String("delivery", id),
		zap.String("voucher", data.Delivery.VoucherNumber))
	return doc, nil
}

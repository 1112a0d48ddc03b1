package services

import (
	"fmt"
	"strconv"

	"nouhin-backend/models"
	"nouhin-backend/store"
)

// ImportRecord is one loosely-typed row from an uploaded file or JSON
// batch. Only fields present in the record are copied; numeric fields that
// are missing or unparsable default to 0. A malformed record never rejects
// the rest of the batch.
type ImportRecord map[string]any

func (r ImportRecord) str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		// xlsx cells frequently surface numbers for id-like columns
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func (r ImportRecord) float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func (r ImportRecord) int(key string) int {
	return int(r.float(key))
}

// ImportBatch upserts records by id into the named collection: an existing
// record with the same id is fully replaced, anything else is appended.
// Records without an id get the next generated one. Returns the number of
// records applied.
func (s *Service) ImportBatch(entity string, records []ImportRecord) (int, error) {
	var count int
	err := s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		switch entity {
		case "products":
			for _, r := range records {
				p := importProduct(r)
				if p.Id == "" {
					p.Id = st.NextProductId()
				}
				if existing := st.FindProduct(p.Id); existing != nil {
					*existing = p
				} else {
					st.Products = append(st.Products, p)
				}
				count++
			}
			return []store.Collection{store.Products}, nil
		case "customers":
			for _, r := range records {
				c := importCustomer(r)
				if c.Id == "" {
					c.Id = st.NextCustomerId()
				}
				if existing := st.FindCustomer(c.Id); existing != nil {
					*existing = c
				} else {
					st.Customers = append(st.Customers, c)
				}
				count++
			}
			return []store.Collection{store.Customers}, nil
		case "deliveries":
			// Flat exports repeat the delivery once per line item, so rows
			// sharing an id within one batch accumulate items instead of
			// overwriting each other.
			index := make(map[string]int, len(st.Deliveries))
			for i := range st.Deliveries {
				index[st.Deliveries[i].Id] = i
			}
			batch := make(map[string]bool, len(records))
			for _, r := range records {
				d := importDelivery(r)
				if d.Id != "" && batch[d.Id] {
					i := index[d.Id]
					st.Deliveries[i].Items = append(st.Deliveries[i].Items, d.Items...)
					count++
					continue
				}
				if d.Id == "" {
					d.Id = st.NextDeliveryId()
				}
				if d.VoucherNumber == "" {
					d.VoucherNumber = st.NextVoucher()
				}
				if i, ok := index[d.Id]; ok {
					st.Deliveries[i] = d
				} else {
					st.Deliveries = append(st.Deliveries, d)
					index[d.Id] = len(st.Deliveries) - 1
				}
				batch[d.Id] = true
				count++
			}
			return []store.Collection{store.Deliveries}, nil
		case "invoices":
			for _, r := range records {
				inv := importInvoice(r)
				if inv.Id == "" {
					inv.Id = st.NextInvoiceId()
				}
				if inv.VoucherNumber == "" {
					inv.VoucherNumber = st.NextVoucher()
				}
				if existing := st.FindInvoice(inv.Id); existing != nil {
					*existing = inv
				} else {
					st.Invoices = append(st.Invoices, inv)
				}
				count++
			}
			return []store.Collection{store.Invoices}, nil
		case "users":
			for _, r := range records {
				u := models.User{
					Id:       r.str("id"),
					Username: r.str("username"),
					Email:    r.str("email"),
					Role:     r.str("role"),
				}
				replaced := false
				for i := range st.Users {
					if st.Users[i].Id == u.Id && u.Id != "" {
						st.Users[i] = u
						replaced = true
						break
					}
				}
				if !replaced {
					st.Users = append(st.Users, u)
				}
				count++
			}
			return []store.Collection{store.Users}, nil
		default:
			return nil, &models.ValidationError{Field: "entity", Reason: fmt.Sprintf("unknown collection %q", entity)}
		}
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func importProduct(r ImportRecord) models.Product {
	return models.Product{
		Id:              r.str("id"),
		Name:            r.str("name"),
		UnitPrice:       r.float("unitPrice"),
		Unit:            r.str("unit"),
		ShippingAddress: r.str("shippingAddress"),
		PostalCode:      r.str("postalCode"),
		Customer:        r.str("customer"),
		Notes:           r.str("notes"),
		ShippingName:    r.str("shippingName"),
	}
}

func importCustomer(r ImportRecord) models.Customer {
	return models.Customer{
		Id:                    r.str("id"),
		Name:                  r.str("name"),
		FormalName:            r.str("formalName"),
		Address:               r.str("address"),
		PostalCode:            r.str("postalCode"),
		Phone:                 r.str("phone"),
		ClosingDay:            r.int("closingDay"),
		PaymentTerms:          r.str("paymentTerms"),
		Email:                 r.str("email"),
		ContactPerson:         r.str("contactPerson"),
		InvoiceDeliveryMethod: r.str("invoiceDeliveryMethod"),
	}
}

func importDelivery(r ImportRecord) models.Delivery {
	d := models.Delivery{
		Id:                    r.str("id"),
		VoucherNumber:         r.str("voucherNumber"),
		DeliveryDate:          r.str("deliveryDate"),
		CustomerId:            r.str("customerId"),
		Notes:                 r.str("notes"),
		OrderId:               r.str("orderId"),
		Status:                r.str("status"),
		InvoiceStatus:         r.str("invoiceStatus"),
		SalesGroup:            r.str("salesGroup"),
		ShippingAddressName:   r.str("shippingAddressName"),
		ShippingPostalCode:    r.str("shippingPostalCode"),
		ShippingAddressDetail: r.str("shippingAddressDetail"),
	}
	if d.Status == "" {
		d.Status = models.StatusUnissued
	}
	if d.InvoiceStatus == "" {
		d.InvoiceStatus = models.InvoiceStatusUnbilled
	}
	if raw, ok := r["items"].([]any); ok {
		for _, el := range raw {
			m, ok := el.(map[string]any)
			if !ok {
				continue
			}
			ir := ImportRecord(m)
			d.Items = append(d.Items, models.DeliveryItem{
				ProductId:   ir.str("productId"),
				ProductName: ir.str("productName"),
				Quantity:    ir.float("quantity"),
				UnitPrice:   ir.float("unitPrice"),
				Unit:        ir.str("unit"),
				Notes:       ir.str("notes"),
			})
		}
		return d
	}
	// Spreadsheet rows carry the item inline as flat columns, one item per
	// row; the amount column is derived and ignored. An item-less export
	// row has all three of these empty.
	item := models.DeliveryItem{
		ProductId:   r.str("productId"),
		ProductName: r.str("productName"),
		Quantity:    r.float("quantity"),
		UnitPrice:   r.float("unitPrice"),
		Unit:        r.str("unit"),
	}
	if item.ProductId != "" || item.ProductName != "" || item.Quantity != 0 {
		d.Items = append(d.Items, item)
	}
	return d
}

func importInvoice(r ImportRecord) models.Invoice {
	inv := models.Invoice{
		Id:            r.str("id"),
		VoucherNumber: r.str("voucherNumber"),
		CustomerId:    r.str("customerId"),
		IssueDate:     r.str("issueDate"),
		TotalAmount:   r.float("totalAmount"),
	}
	if raw, ok := r["items"].([]any); ok {
		for _, el := range raw {
			m, ok := el.(map[string]any)
			if !ok {
				continue
			}
			ir := ImportRecord(m)
			inv.Items = append(inv.Items, models.InvoiceItem{
				ProductId: ir.str("productId"),
				Quantity:  ir.float("quantity"),
				UnitPrice: ir.float("unitPrice"),
			})
		}
	}
	return inv
}

// ResetCollection clears the named collection, best-effort removes its
// backing file and re-persists it empty. Calling it on an already empty
// collection succeeds again.
func (s *Service) ResetCollection(entity string) error {
	var col store.Collection
	switch entity {
	case "products":
		col = store.Products
	case "customers":
		col = store.Customers
	case "deliveries":
		col = store.Deliveries
	case "invoices":
		col = store.Invoices
	case "users":
		col = store.Users
	default:
		return &models.ValidationError{Field: "entity", Reason: fmt.Sprintf("unknown collection %q", entity)}
	}
	s.store.RemoveFile(col)
	return s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		switch col {
		case store.Products:
			st.Products = nil
		case store.Customers:
			st.Customers = nil
		case store.Deliveries:
			st.Deliveries = nil
		case store.Invoices:
			st.Invoices = nil
		case store.Users:
			st.Users = nil
		}
		return []store.Collection{col}, nil
	})
}

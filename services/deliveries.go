package services

import (
	"nouhin-backend/filters"
	"nouhin-backend/models"
	"nouhin-backend/store"
)

type DeliveryItemInput struct {
	ProductId   string   `json:"productId"`
	ProductName string   `json:"productName"`
	Quantity    float64  `json:"quantity" validate:"gt=0"`
	UnitPrice   *float64 `json:"unitPrice" validate:"omitempty,gte=0"`
	Unit        *string  `json:"unit"`
	Notes       string   `json:"notes"`
}

type CreateDeliveryInput struct {
	CustomerName          string              `json:"customerName" validate:"required"`
	DeliveryDate          string              `json:"deliveryDate" validate:"required"`
	Items                 []DeliveryItemInput `json:"items" validate:"required,min=1,dive"`
	Notes                 string              `json:"notes"`
	OrderId               string              `json:"orderId"`
	SalesGroup            string              `json:"salesGroup"`
	ShippingAddressName   string              `json:"shippingAddressName"`
	ShippingPostalCode    string              `json:"shippingPostalCode"`
	ShippingAddressDetail string              `json:"shippingAddressDetail"`
}

type UpdateDeliveryInput struct {
	CustomerName          *string              `json:"customerName"`
	CustomerId            *string              `json:"customerId"`
	DeliveryDate          *string              `json:"deliveryDate"`
	Items                 *[]DeliveryItemInput `json:"items" validate:"omitempty,dive"`
	Notes                 *string              `json:"notes"`
	OrderId               *string              `json:"orderId"`
	SalesGroup            *string              `json:"salesGroup"`
	ShippingAddressName   *string              `json:"shippingAddressName"`
	ShippingPostalCode    *string              `json:"shippingPostalCode"`
	ShippingAddressDetail *string              `json:"shippingAddressDetail"`
}

func (s *Service) ListDeliveries(q filters.Query) ([]models.Delivery, error) {
	var out []models.Delivery
	var err error
	s.store.View(func(st *store.State) {
		out, err = filters.Deliveries(st.Deliveries, q)
	})
	return out, err
}

// resolveItem turns an item input into a stored line item. An explicit
// productId must resolve (hard error); a productName is resolved
// best-effort and degrades to a free-form line when no product matches.
// Product values only fill fields the caller left empty.
func resolveItem(st *store.State, in DeliveryItemInput) (models.DeliveryItem, error) {
	item := models.DeliveryItem{
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		Notes:       in.Notes,
	}
	var prod *models.Product
	if in.ProductId != "" {
		prod = st.FindProduct(in.ProductId)
		if prod == nil {
			return item, &models.ReferenceError{Field: "productId", Value: in.ProductId}
		}
		item.ProductId = in.ProductId
	} else if in.ProductName != "" {
		if prod = st.FindProductByName(in.ProductName); prod != nil {
			item.ProductId = prod.Id
		}
	}
	if prod != nil {
		item.Unit = prod.Unit
		item.UnitPrice = prod.UnitPrice
		if item.ProductName == "" {
			item.ProductName = prod.Name
		}
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	return item, nil
}

// CreateDelivery resolves the customer by exact name, resolves each line
// item, draws the next voucher number and appends the delivery with both
// status flags in their initial state.
func (s *Service) CreateDelivery(in CreateDeliveryInput) (models.Delivery, error) {
	var created models.Delivery
	err := s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		customer := st.FindCustomerByName(in.CustomerName)
		if customer == nil {
			return nil, &models.ReferenceError{Field: "customerName", Value: in.CustomerName}
		}
		items := make([]models.DeliveryItem, 0, len(in.Items))
		for _, it := range in.Items {
			item, err := resolveItem(st, it)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		created = models.Delivery{
			Id:                    st.NextDeliveryId(),
			VoucherNumber:         st.NextVoucher(),
			DeliveryDate:          in.DeliveryDate,
			CustomerId:            customer.Id,
			Items:                 items,
			Notes:                 in.Notes,
			OrderId:               in.OrderId,
			Status:                models.StatusUnissued,
			InvoiceStatus:         models.InvoiceStatusUnbilled,
			SalesGroup:            in.SalesGroup,
			ShippingAddressName:   in.ShippingAddressName,
			ShippingPostalCode:    in.ShippingPostalCode,
			ShippingAddressDetail: in.ShippingAddressDetail,
		}
		st.Deliveries = append(st.Deliveries, created)
		return []store.Collection{store.Deliveries}, nil
	})
	return created, err
}

// UpdateDelivery applies a partial merge. Resolution happens before any
// field is written, so a failing reference leaves the delivery untouched.
// A supplied item list replaces the previous one wholesale.
func (s *Service) UpdateDelivery(id string, in UpdateDeliveryInput) (models.Delivery, error) {
	var updated models.Delivery
	err := s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		d := st.FindDelivery(id)
		if d == nil {
			return nil, &models.NotFoundError{Entity: "delivery", Id: id}
		}

		// Resolve everything first; commit nothing on error.
		customerId := d.CustomerId
		if in.CustomerName != nil {
			customer := st.FindCustomerByName(*in.CustomerName)
			if customer == nil {
				return nil, &models.ReferenceError{Field: "customerName", Value: *in.CustomerName}
			}
			customerId = customer.Id
		} else if in.CustomerId != nil {
			customerId = *in.CustomerId
		}

		var items []models.DeliveryItem
		if in.Items != nil {
			items = make([]models.DeliveryItem, 0, len(*in.Items))
			for _, it := range *in.Items {
				item, err := resolveItem(st, it)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
		}

		d.CustomerId = customerId
		if in.Items != nil {
			d.Items = items
		}
		if in.DeliveryDate != nil {
			d.DeliveryDate = *in.DeliveryDate
		}
		if in.Notes != nil {
			d.Notes = *in.Notes
		}
		if in.OrderId != nil {
			d.OrderId = *in.OrderId
		}
		if in.SalesGroup != nil {
			d.SalesGroup = *in.SalesGroup
		}
		if in.ShippingAddressName != nil {
			d.ShippingAddressName = *in.ShippingAddressName
		}
		if in.ShippingPostalCode != nil {
			d.ShippingPostalCode = *in.ShippingPostalCode
		}
		if in.ShippingAddressDetail != nil {
			d.ShippingAddressDetail = *in.ShippingAddressDetail
		}
		updated = *d
		return []store.Collection{store.Deliveries}, nil
	})
	return updated, err
}

func (s *Service) DeleteDelivery(id string) error {
	return s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		for i := range st.Deliveries {
			if st.Deliveries[i].Id == id {
				st.Deliveries = append(st.Deliveries[:i], st.Deliveries[i+1:]...)
				return []store.Collection{store.Deliveries}, nil
			}
		}
		return nil, &models.NotFoundError{Entity: "delivery", Id: id}
	})
}

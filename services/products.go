package services

import (
	"nouhin-backend/filters"
	"nouhin-backend/models"
	"nouhin-backend/store"
)

type CreateProductInput struct {
	Name            string  `json:"name" validate:"required"`
	UnitPrice       float64 `json:"unitPrice" validate:"gte=0"`
	Unit            string  `json:"unit"`
	ShippingAddress string  `json:"shippingAddress"`
	PostalCode      string  `json:"postalCode"`
	Customer        string  `json:"customer"`
	Notes           string  `json:"notes"`
	ShippingName    string  `json:"shippingName"`
}

type UpdateProductInput struct {
	Name            *string  `json:"name"`
	UnitPrice       *float64 `json:"unitPrice" validate:"omitempty,gte=0"`
	Unit            *string  `json:"unit"`
	ShippingAddress *string  `json:"shippingAddress"`
	PostalCode      *string  `json:"postalCode"`
	Customer        *string  `json:"customer"`
	Notes           *string  `json:"notes"`
	ShippingName    *string  `json:"shippingName"`
}

// ListProducts returns the filtered product collection in insertion order.
func (s *Service) ListProducts(q filters.Query) ([]models.Product, error) {
	var out []models.Product
	var err error
	s.store.View(func(st *store.State) {
		out, err = filters.Products(st.Products, q)
	})
	return out, err
}

// CreateProduct assigns the next P-prefixed id (max-based, gaps never
// reused) and appends the product.
func (s *Service) CreateProduct(in CreateProductInput) (models.Product, error) {
	var created models.Product
	err := s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		created = models.Product{
			Id:              st.NextProductId(),
			Name:            in.Name,
			UnitPrice:       in.UnitPrice,
			Unit:            in.Unit,
			ShippingAddress: in.ShippingAddress,
			PostalCode:      in.PostalCode,
			Customer:        in.Customer,
			Notes:           in.Notes,
			ShippingName:    in.ShippingName,
		}
		st.Products = append(st.Products, created)
		return []store.Collection{store.Products}, nil
	})
	return created, err
}

// UpdateProduct applies a partial merge, field by field.
func (s *Service) UpdateProduct(id string, in UpdateProductInput) (models.Product, error) {
	var updated models.Product
	err := s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		p := st.FindProduct(id)
		if p == nil {
			return nil, &models.NotFoundError{Entity: "product", Id: id}
		}
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.UnitPrice != nil {
			p.UnitPrice = *in.UnitPrice
		}
		if in.Unit != nil {
			p.Unit = *in.Unit
		}
		if in.ShippingAddress != nil {
			p.ShippingAddress = *in.ShippingAddress
		}
		if in.PostalCode != nil {
			p.PostalCode = *in.PostalCode
		}
		if in.Customer != nil {
			p.Customer = *in.Customer
		}
		if in.Notes != nil {
			p.Notes = *in.Notes
		}
		if in.ShippingName != nil {
			p.ShippingName = *in.ShippingName
		}
		updated = *p
		return []store.Collection{store.Products}, nil
	})
	return updated, err
}

// DeleteProduct removes the product. Deliveries referencing it keep their
// dangling productId; lookups simply stop resolving.
func (s *Service) DeleteProduct(id string) error {
	return s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		for i := range st.Products {
			if st.Products[i].Id == id {
				st.Products = append(st.Products[:i], st.Products[i+1:]...)
				return []store.Collection{store.Products}, nil
			}
		}
		return nil, &models.NotFoundError{Entity: "product", Id: id}
	})
}

package services

import (
	"nouhin-backend/filters"
	"nouhin-backend/models"
	"nouhin-backend/store"
)

type CreateCustomerInput struct {
	Name                  string `json:"name" validate:"required"`
	FormalName            string `json:"formalName"`
	Address               string `json:"address"`
	PostalCode            string `json:"postalCode"`
	Phone                 string `json:"phone"`
	ClosingDay            int    `json:"closingDay" validate:"omitempty,min=1,max=31"`
	PaymentTerms          string `json:"paymentTerms"`
	Email                 string `json:"email" validate:"omitempty,email"`
	ContactPerson         string `json:"contactPerson"`
	InvoiceDeliveryMethod string `json:"invoiceDeliveryMethod"`
}

type UpdateCustomerInput struct {
	Name                  *string `json:"name"`
	FormalName            *string `json:"formalName"`
	Address               *string `json:"address"`
	PostalCode            *string `json:"postalCode"`
	Phone                 *string `json:"phone"`
	ClosingDay            *int    `json:"closingDay" validate:"omitempty,min=1,max=31"`
	PaymentTerms          *string `json:"paymentTerms"`
	Email                 *string `json:"email" validate:"omitempty,email"`
	ContactPerson         *string `json:"contactPerson"`
	InvoiceDeliveryMethod *string `json:"invoiceDeliveryMethod"`
}

func (s *Service) ListCustomers(q filters.Query) ([]models.Customer, error) {
	var out []models.Customer
	var err error
	s.store.View(func(st *store.State) {
		out, err = filters.Customers(st.Customers, q)
	})
	return out, err
}

// CreateCustomer assigns the next C-prefixed id, same max-based policy as
// products.
func (s *Service) CreateCustomer(in CreateCustomerInput) (models.Customer, error) {
	var created models.Customer
	err := s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		created = models.Customer{
			Id:                    st.NextCustomerId(),
			Name:                  in.Name,
			FormalName:            in.FormalName,
			Address:               in.Address,
			PostalCode:            in.PostalCode,
			Phone:                 in.Phone,
			ClosingDay:            in.ClosingDay,
			PaymentTerms:          in.PaymentTerms,
			Email:                 in.Email,
			ContactPerson:         in.ContactPerson,
			InvoiceDeliveryMethod: in.InvoiceDeliveryMethod,
		}
		st.Customers = append(st.Customers, created)
		return []store.Collection{store.Customers}, nil
	})
	return created, err
}

func (s *Service) UpdateCustomer(id string, in UpdateCustomerInput) (models.Customer, error) {
	var updated models.Customer
	err := s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		c := st.FindCustomer(id)
		if c == nil {
			return nil, &models.NotFoundError{Entity: "customer", Id: id}
		}
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.FormalName != nil {
			c.FormalName = *in.FormalName
		}
		if in.Address != nil {
			c.Address = *in.Address
		}
		if in.PostalCode != nil {
			c.PostalCode = *in.PostalCode
		}
		if in.Phone != nil {
			c.Phone = *in.Phone
		}
		if in.ClosingDay != nil {
			c.ClosingDay = *in.ClosingDay
		}
		if in.PaymentTerms != nil {
			c.PaymentTerms = *in.PaymentTerms
		}
		if in.Email != nil {
			c.Email = *in.Email
		}
		if in.ContactPerson != nil {
			c.ContactPerson = *in.ContactPerson
		}
		if in.InvoiceDeliveryMethod != nil {
			c.InvoiceDeliveryMethod = *in.InvoiceDeliveryMethod
		}
		updated = *c
		return []store.Collection{store.Customers}, nil
	})
	return updated, err
}

func (s *Service) DeleteCustomer(id string) error {
	return s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		for i := range st.Customers {
			if st.Customers[i].Id == id {
				st.Customers = append(st.Customers[:i], st.Customers[i+1:]...)
				return []store.Collection{store.Customers}, nil
			}
		}
		return nil, &models.NotFoundError{Entity: "customer", Id: id}
	})
}

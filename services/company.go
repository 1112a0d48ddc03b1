package services

import (
	"nouhin-backend/models"
	"nouhin-backend/store"
)

// UpdateCompanyInput carries a PATCH-style partial: nil fields keep their
// prior value.
type UpdateCompanyInput struct {
	Name              *string `json:"name"`
	PostalCode        *string `json:"postalCode"`
	Address           *string `json:"address"`
	Phone             *string `json:"phone"`
	Fax               *string `json:"fax"`
	BankName          *string `json:"bankName"`
	BankBranch        *string `json:"bankBranch"`
	BankAccountType   *string `json:"bankAccountType"`
	BankAccountNumber *string `json:"bankAccountNumber"`
	BankAccountHolder *string `json:"bankAccountHolder"`
	ContactPerson     *string `json:"contactPerson"`
}

func (s *Service) GetCompanyInfo() models.CompanyInfo {
	var info models.CompanyInfo
	s.store.View(func(st *store.State) {
		info = st.Company
	})
	return info
}

// UpdateCompanyInfo shallow-merges the patch over the singleton record.
func (s *Service) UpdateCompanyInfo(in UpdateCompanyInput) models.CompanyInfo {
	var updated models.CompanyInfo
	_ = s.store.Mutate(func(st *store.State) ([]store.Collection, error) {
		c := &st.Company
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.PostalCode != nil {
			c.PostalCode = *in.PostalCode
		}
		if in.Address != nil {
			c.Address = *in.Address
		}
		if in.Phone != nil {
			c.Phone = *in.Phone
		}
		if in.Fax != nil {
			c.Fax = *in.Fax
		}
		if in.BankName != nil {
			c.BankName = *in.BankName
		}
		if in.BankBranch != nil {
			c.BankBranch = *in.BankBranch
		}
		if in.BankAccountType != nil {
			c.BankAccountType = *in.BankAccountType
		}
		if in.BankAccountNumber != nil {
			c.BankAccountNumber = *in.BankAccountNumber
		}
		if in.BankAccountHolder != nil {
			c.BankAccountHolder = *in.BankAccountHolder
		}
		if in.ContactPerson != nil {
			c.ContactPerson = *in.ContactPerson
		}
		updated = *c
		return []store.Collection{store.Company}, nil
	})
	return updated
}

package models

// CompanyInfo is the singleton identity of the issuing company, printed on
// delivery notes and invoices. It is only ever patched, never recreated.
type CompanyInfo struct {
	Name              string `json:"name"`
	PostalCode        string `json:"postalCode"`
	Address           string `json:"address"`
	Phone             string `json:"phone"`
	Fax               string `json:"fax"`
	BankName          string `json:"bankName"`
	BankBranch        string `json:"bankBranch"`
	BankAccountType   string `json:"bankAccountType"`
	BankAccountNumber string `json:"bankAccountNumber"`
	BankAccountHolder string `json:"bankAccountHolder"`
	ContactPerson     string `json:"contactPerson"`
}

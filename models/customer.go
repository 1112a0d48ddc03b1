package models

// Customer is a billing counterparty. ClosingDay is a day of month (1-31);
// InvoiceDeliveryMethod is free text in practice (郵送, メール, Web).
type Customer struct {
	Id                    string `json:"id"`
	Name                  string `json:"name"`
	FormalName            string `json:"formalName,omitempty"`
	Address               string `json:"address"`
	PostalCode            string `json:"postalCode"`
	Phone                 string `json:"phone"`
	ClosingDay            int    `json:"closingDay"`
	PaymentTerms          string `json:"paymentTerms"`
	Email                 string `json:"email"`
	ContactPerson         string `json:"contactPerson"`
	InvoiceDeliveryMethod string `json:"invoiceDeliveryMethod"`
}

package filters

import (
	"strings"

	"nouhin-backend/models"
)

// Customers filters the customer collection. closingDay bounds are integer
// day-of-month comparisons; invoiceDeliveryMethod takes a comma-separated
// list and matches on set membership.
func Customers(list []models.Customer, q Query) ([]models.Customer, error) {
	minDay, err := q.int("minClosingDay")
	if err != nil {
		return nil, err
	}
	maxDay, err := q.int("maxClosingDay")
	if err != nil {
		return nil, err
	}

	name, hasName := q.str("name")
	postal, hasPostal := q.str("postalCode")
	address, hasAddress := q.str("address")
	phone, hasPhone := q.str("phone")
	terms, hasTerms := q.str("paymentTerms")
	email, hasEmail := q.str("email")
	contact, hasContact := q.str("contactPerson")

	var methods []string
	if v, ok := q.str("invoiceDeliveryMethod"); ok {
		methods = strings.Split(v, ",")
	}

	out := make([]models.Customer, 0, len(list))
	for _, c := range list {
		if hasName && !textMatches(c.Name, name, q.matchType("name")) {
			continue
		}
		if hasPostal && !textMatches(c.PostalCode, postal, q.matchType("postalCode")) {
			continue
		}
		if hasAddress && !textMatches(c.Address, address, q.matchType("address")) {
			continue
		}
		if hasPhone && !textMatches(c.Phone, phone, q.matchType("phone")) {
			continue
		}
		if hasTerms && !textMatches(c.PaymentTerms, terms, q.matchType("paymentTerms")) {
			continue
		}
		if hasEmail && !textMatches(c.Email, email, q.matchType("email")) {
			continue
		}
		if hasContact && !textMatches(c.ContactPerson, contact, q.matchType("contactPerson")) {
			continue
		}
		if minDay != nil && c.ClosingDay < *minDay {
			continue
		}
		if maxDay != nil && c.ClosingDay > *maxDay {
			continue
		}
		if methods != nil && !contains(methods, c.InvoiceDeliveryMethod) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

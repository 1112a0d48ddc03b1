package filters

import "nouhin-backend/models"

// Products filters the product collection. Textual fields honor their
// _matchType companion; unit price bounds are inclusive.
func Products(list []models.Product, q Query) ([]models.Product, error) {
	minPrice, err := q.float("minUnitPrice")
	if err != nil {
		return nil, err
	}
	maxPrice, err := q.float("maxUnitPrice")
	if err != nil {
		return nil, err
	}

	name, hasName := q.str("productName")
	unit, hasUnit := q.str("unit")
	postal, hasPostal := q.str("postalCode")
	shipping, hasShipping := q.str("shippingAddress")
	customer, hasCustomer := q.str("customer")
	notes, hasNotes := q.str("notes")

	out := make([]models.Product, 0, len(list))
	for _, p := range list {
		if hasName && !textMatches(p.Name, name, q.matchType("productName")) {
			continue
		}
		if hasUnit && !textMatches(p.Unit, unit, q.matchType("unit")) {
			continue
		}
		if hasPostal && !textMatches(p.PostalCode, postal, q.matchType("postalCode")) {
			continue
		}
		if hasShipping && !textMatches(p.ShippingAddress, shipping, q.matchType("shippingAddress")) {
			continue
		}
		if hasCustomer && !textMatches(p.Customer, customer, q.matchType("customer")) {
			continue
		}
		if hasNotes && !textMatches(p.Notes, notes, q.matchType("notes")) {
			continue
		}
		if !inRange(p.UnitPrice, minPrice, maxPrice) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

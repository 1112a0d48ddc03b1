package models

// Product is a sellable item tied to the customer it is usually shipped for.
// Customer holds the owning customer's id (weak reference, no cascade).
type Product struct {
	Id              string  `json:"id"`
	Name            string  `json:"name"`
	UnitPrice       float64 `json:"unitPrice"`
	Unit            string  `json:"unit"`
	ShippingAddress string  `json:"shippingAddress"`
	PostalCode      string  `json:"postalCode"`
	Customer        string  `json:"customer"`
	Notes           string  `json:"notes"`
	ShippingName    string  `json:"shippingName,omitempty"`
}

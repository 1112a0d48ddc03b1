package filters

import (
	"strings"

	"nouhin-backend/models"
)

// Deliveries filters the delivery collection.
//
// Item-scoped constraints follow two distinct policies, on purpose and per
// field: productId, unit and the unit-price bounds are existential (the
// delivery matches when at least one line item satisfies them), while the
// quantity and amount bounds compare a sum across all line items. The two
// policies must not be unified; which field uses which is observable
// behavior.
func Deliveries(list []models.Delivery, q Query) ([]models.Delivery, error) {
	minQty, err := q.float("minQuantity")
	if err != nil {
		return nil, err
	}
	maxQty, err := q.float("maxQuantity")
	if err != nil {
		return nil, err
	}
	minPrice, err := q.float("minUnitPrice")
	if err != nil {
		return nil, err
	}
	maxPrice, err := q.float("maxUnitPrice")
	if err != nil {
		return nil, err
	}
	minAmount, err := q.float("minAmount")
	if err != nil {
		return nil, err
	}
	maxAmount, err := q.float("maxAmount")
	if err != nil {
		return nil, err
	}

	startDate, hasStart := q.str("startDate")
	endDate, hasEnd := q.str("endDate")
	customerId, hasCustomer := q.str("customerId")
	productId, hasProduct := q.str("productId")
	status, hasStatus := q.str("status")
	invoiceStatus, hasInvoiceStatus := q.str("invoiceStatus")
	salesGroup, hasSalesGroup := q.str("salesGroup")
	unit, hasUnit := q.str("unit")
	orderId, hasOrder := q.str("orderId")
	notes, hasNotes := q.str("notes")
	shipName, hasShipName := q.str("shippingAddressName")
	shipPostal, hasShipPostal := q.str("shippingPostalCode")
	shipDetail, hasShipDetail := q.str("shippingAddressDetail")

	out := make([]models.Delivery, 0, len(list))
	for _, d := range list {
		if hasStart && d.DeliveryDate < startDate {
			continue
		}
		if hasEnd && d.DeliveryDate > endDate {
			continue
		}
		if hasCustomer && d.CustomerId != customerId {
			continue
		}
		if hasStatus && d.Status != status {
			continue
		}
		if hasInvoiceStatus && d.InvoiceStatus != invoiceStatus {
			continue
		}
		if hasSalesGroup && !strings.Contains(d.SalesGroup, salesGroup) {
			continue
		}
		if hasOrder && !strings.Contains(d.OrderId, orderId) {
			continue
		}
		if hasNotes && !strings.Contains(d.Notes, notes) {
			continue
		}
		if hasShipName && !strings.Contains(d.ShippingAddressName, shipName) {
			continue
		}
		if hasShipPostal && !strings.Contains(d.ShippingPostalCode, shipPostal) {
			continue
		}
		if hasShipDetail && !strings.Contains(d.ShippingAddressDetail, shipDetail) {
			continue
		}
		if hasProduct && !anyItemHasProduct(d, productId) {
			continue
		}
		if hasUnit && !anyItemUnitContains(d, unit) {
			continue
		}
		if (minPrice != nil || maxPrice != nil) && !anyItemPriceInRange(d, minPrice, maxPrice) {
			continue
		}
		if !inRange(d.TotalQuantity(), minQty, maxQty) {
			continue
		}
		if !inRange(d.TotalAmount(), minAmount, maxAmount) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// anyItemHasProduct: existential match on a line item's product reference.
func anyItemHasProduct(d models.Delivery, productId string) bool {
	for _, it := range d.Items {
		if it.ProductId == productId {
			return true
		}
	}
	return false
}

// anyItemUnitContains: existential substring match on a line item's unit.
func anyItemUnitContains(d models.Delivery, unit string) bool {
	for _, it := range d.Items {
		if strings.Contains(it.Unit, unit) {
			return true
		}
	}
	return false
}

// anyItemPriceInRange: existential inclusive range check on a line item's
// unit price.
func anyItemPriceInRange(d models.Delivery, min, max *float64) bool {
	for _, it := range d.Items {
		if inRange(it.UnitPrice, min, max) {
			return true
		}
	}
	return false
}

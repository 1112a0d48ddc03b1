package models

// Delivery statuses. Both flags move one-way only: a delivery note is issued
// once, an invoice is raised once.
const (
	StatusUnissued = "未発行"
	StatusIssued   = "発行済み"

	InvoiceStatusUnbilled = "未請求"
	InvoiceStatusBilled   = "請求済み"
)

// DeliveryItem is one line on a delivery note. ProductId may be empty for a
// free-form line; ProductName is kept so free-form entries stay printable.
type DeliveryItem struct {
	ProductId   string  `json:"productId,omitempty"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Unit        string  `json:"unit"`
	Notes       string  `json:"notes,omitempty"`
}

// Delivery is a recorded shipment. VoucherNumber is assigned once at creation
// and never changes. The total amount is always derived from Items, never
// stored.
type Delivery struct {
	Id                    string         `json:"id"`
	VoucherNumber         string         `json:"voucherNumber"`
	DeliveryDate          string         `json:"deliveryDate"`
	CustomerId            string         `json:"customerId"`
	Items                 []DeliveryItem `json:"items"`
	Notes                 string         `json:"notes,omitempty"`
	OrderId               string         `json:"orderId,omitempty"`
	Status                string         `json:"status"`
	InvoiceStatus         string         `json:"invoiceStatus"`
	SalesGroup            string         `json:"salesGroup,omitempty"`
	ShippingAddressName   string         `json:"shippingAddressName,omitempty"`
	ShippingPostalCode    string         `json:"shippingPostalCode,omitempty"`
	ShippingAddressDetail string         `json:"shippingAddressDetail,omitempty"`
}

// TotalAmount sums quantity x unit price over all items.
func (d Delivery) TotalAmount() float64 {
	var total float64
	for _, it := range d.Items {
		total += it.Quantity * it.UnitPrice
	}
	return total
}

// TotalQuantity sums item quantities.
func (d Delivery) TotalQuantity() float64 {
	var total float64
	for _, it := range d.Items {
		total += it.Quantity
	}
	return total
}

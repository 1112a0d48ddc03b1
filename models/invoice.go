package models

type InvoiceItem struct {
	ProductId string  `json:"productId"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Invoice is a billing record. TotalAmount is computed once at creation and
// persisted as-is; it is deliberately not recomputed on read.
type Invoice struct {
	Id            string        `json:"id"`
	VoucherNumber string        `json:"voucherNumber"`
	CustomerId    string        `json:"customerId"`
	IssueDate     string        `json:"issueDate"`
	Items         []InvoiceItem `json:"items"`
	TotalAmount   float64       `json:"totalAmount"`
}

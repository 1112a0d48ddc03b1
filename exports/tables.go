// Package exports turns filtered collections into downloadable xlsx or CSV
// files.
package exports

import (
	"nouhin-backend/models"
	"nouhin-backend/services"
)

// Table is a flat, column-ordered view of a collection, ready for any
// tabular writer.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

func ProductsTable(list []models.Product) Table {
	t := Table{
		Name:    "products",
		Columns: []string{"id", "name", "unitPrice", "unit", "shippingAddress", "postalCode", "customer", "notes", "shippingName"},
	}
	for _, p := range list {
		t.Rows = append(t.Rows, []any{
			p.Id, p.Name, p.UnitPrice, p.Unit, p.ShippingAddress,
			p.PostalCode, p.Customer, p.Notes, p.ShippingName,
		})
	}
	return t
}

func CustomersTable(list []models.Customer) Table {
	t := Table{
		Name: "customers",
		Columns: []string{"id", "name", "formalName", "address", "postalCode", "phone",
			"closingDay", "paymentTerms", "email", "contactPerson", "invoiceDeliveryMethod"},
	}
	for _, c := range list {
		t.Rows = append(t.Rows, []any{
			c.Id, c.Name, c.FormalName, c.Address, c.PostalCode, c.Phone,
			c.ClosingDay, c.PaymentTerms, c.Email, c.ContactPerson, c.InvoiceDeliveryMethod,
		})
	}
	return t
}

func UsersTable(list []models.User) Table {
	t := Table{
		Name:    "users",
		Columns: []string{"id", "username", "email", "role"},
	}
	for _, u := range list {
		t.Rows = append(t.Rows, []any{u.Id, u.Username, u.Email, u.Role})
	}
	return t
}

// DeliveriesTable emits one row per line item so quantities and amounts
// stay visible; delivery-level fields repeat on every row.
func DeliveriesTable(list []models.Delivery) Table {
	t := Table{
		Name: "deliveries",
		Columns: []string{"id", "voucherNumber", "deliveryDate", "customerId",
			"productId", "productName", "quantity", "unit", "unitPrice", "amount",
			"status", "invoiceStatus", "salesGroup", "orderId", "notes"},
	}
	for _, d := range list {
		if len(d.Items) == 0 {
			t.Rows = append(t.Rows, []any{
				d.Id, d.VoucherNumber, d.DeliveryDate, d.CustomerId,
				"", "", 0.0, "", 0.0, 0.0,
				d.Status, d.InvoiceStatus, d.SalesGroup, d.OrderId, d.Notes,
			})
			continue
		}
		for _, it := range d.Items {
			t.Rows = append(t.Rows, []any{
				d.Id, d.VoucherNumber, d.DeliveryDate, d.CustomerId,
				it.ProductId, it.ProductName, it.Quantity, it.Unit, it.UnitPrice,
				it.Quantity * it.UnitPrice,
				d.Status, d.InvoiceStatus, d.SalesGroup, d.OrderId, d.Notes,
			})
		}
	}
	return t
}

func SalesSummaryTable(rows []services.SalesRow) Table {
	t := Table{
		Name:    "sales_summary",
		Columns: []string{"customerName", "totalSales"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.CustomerName, r.TotalSales})
	}
	return t
}

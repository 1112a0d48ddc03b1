package routes

import (
	"github.com/gofiber/fiber/v2"

	"nouhin-backend/controllers"
)

// Register wires all HTTP routes.
func Register(app *fiber.App, ct *controllers.Controller) {
	api := app.Group("/api")

	// Filter endpoints (JSON)
	api.Get("/filter/products", ct.FilterProducts)
	api.Get("/filter/customers", ct.FilterCustomers)
	api.Get("/filter/deliveries", ct.FilterDeliveries)
	api.Get("/filter/users", ct.FilterUsers)
	api.Get("/filter/salesSummary", ct.FilterSalesSummary)

	// Export endpoints (xlsx, or CSV via ?format=csv)
	api.Get("/export/products", ct.ExportProducts)
	api.Get("/export/customers", ct.ExportCustomers)
	api.Get("/export/deliveries", ct.ExportDeliveries)
	api.Get("/export/users", ct.ExportUsers)
	api.Get("/export/salesSummary", ct.ExportSalesSummary)

	// Products
	api.Post("/products", ct.CreateProduct)
	api.Put("/products/:id", ct.UpdateProduct)
	api.Delete("/products/:id", ct.DeleteProduct)

	// Customers
	api.Post("/customers", ct.CreateCustomer)
	api.Put("/customers/:id", ct.UpdateCustomer)
	api.Delete("/customers/:id", ct.DeleteCustomer)

	// Deliveries + document issuance
	api.Post("/deliveries", ct.CreateDelivery)
	api.Put("/deliveries/:id", ct.UpdateDelivery)
	api.Delete("/deliveries/:id", ct.DeleteDelivery)
	api.Get("/deliveries/:id/document", ct.DeliveryNoteDocument)
	api.Get("/deliveries/:id/invoice", ct.InvoiceDocument)

	// Invoices
	api.Get("/invoices", ct.GetInvoices)
	api.Post("/invoices", ct.CreateInvoice)
	api.Delete("/invoices/:id", ct.DeleteInvoice)

	// Company info (singleton)
	api.Get("/company", ct.GetCompanyInfo)
	api.Put("/company", ct.UpdateCompanyInfo)

	// Bulk import / reset per collection
	api.Post("/import/:entity", ct.Import)
	api.Post("/reset/:entity", ct.Reset)
}

package controllers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"nouhin-backend/exports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// sendTable streams a table as xlsx (default) or CSV (?format=csv, with
// ?encoding=sjis for Shift-JIS output).
func (ct *Controller) sendTable(c *fiber.Ctx, t exports.Table) error {
	var buf bytes.Buffer
	if c.Query("format") == "csv" {
		if err := exports.WriteCSV(&buf, t, c.Query("encoding") == "sjis"); err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+t.Name+`.csv`)
		return c.Send(buf.Bytes())
	}
	if err := exports.WriteExcel(&buf, t); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+t.Name+`.xlsx`)
	return c.Send(buf.Bytes())
}

func (ct *Controller) ExportProducts(c *fiber.Ctx) error {
	list, err := ct.svc.ListProducts(ct.query(c))
	if err != nil {
		return err
	}
	return ct.sendTable(c, exports.ProductsTable(list))
}

func (ct *Controller) ExportCustomers(c *fiber.Ctx) error {
	list, err := ct.svc.ListCustomers(ct.query(c))
	if err != nil {
		return err
	}
	return ct.sendTable(c, exports.CustomersTable(list))
}

func (ct *Controller) ExportDeliveries(c *fiber.Ctx) error {
	list, err := ct.svc.ListDeliveries(ct.query(c))
	if err != nil {
		return err
	}
	return ct.sendTable(c, exports.DeliveriesTable(list))
}

func (ct *Controller) ExportUsers(c *fiber.Ctx) error {
	list, err := ct.svc.ListUsers(ct.query(c))
	if err != nil {
		return err
	}
	return ct.sendTable(c, exports.UsersTable(list))
}

func (ct *Controller) ExportSalesSummary(c *fiber.Ctx) error {
	summary, _, err := ct.svc.SalesSummary(ct.query(c))
	if err != nil {
		return err
	}
	return ct.sendTable(c, exports.SalesSummaryTable(summary))
}

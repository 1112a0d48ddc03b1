package controllers

import (
	"github.com/gofiber/fiber/v2"

	"nouhin-backend/filters"
)

func (ct *Controller) query(c *fiber.Ctx) filters.Query {
	return filters.Query(c.Queries())
}

func (ct *Controller) FilterProducts(c *fiber.Ctx) error {
	out, err := ct.svc.ListProducts(ct.query(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (ct *Controller) FilterCustomers(c *fiber.Ctx) error {
	out, err := ct.svc.ListCustomers(ct.query(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (ct *Controller) FilterDeliveries(c *fiber.Ctx) error {
	out, err := ct.svc.ListDeliveries(ct.query(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (ct *Controller) FilterUsers(c *fiber.Ctx) error {
	out, err := ct.svc.ListUsers(ct.query(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// FilterSalesSummary returns the aggregation together with the filtered
// detail rows, mirroring the combined summary+details response shape.
func (ct *Controller) FilterSalesSummary(c *fiber.Ctx) error {
	summary, details, err := ct.svc.SalesSummary(ct.query(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"summary": summary,
		"details": details,
	})
}

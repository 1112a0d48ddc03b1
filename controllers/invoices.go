package controllers

import (
	"github.com/gofiber/fiber/v2"

	"nouhin-backend/middlewares"
	"nouhin-backend/services"
)

func (ct *Controller) GetInvoices(c *fiber.Ctx) error {
	return c.JSON(ct.svc.ListInvoices())
}

func (ct *Controller) CreateInvoice(c *fiber.Ctx) error {
	var in services.CreateInvoiceInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	created, err := ct.svc.CreateInvoice(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (ct *Controller) DeleteInvoice(c *fiber.Ctx) error {
	if err := ct.svc.DeleteInvoice(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "success"})
}

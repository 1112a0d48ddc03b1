package controllers

import (
	"github.com/gofiber/fiber/v2"

	"nouhin-backend/middlewares"
	"nouhin-backend/services"
)

func (ct *Controller) CreateDelivery(c *fiber.Ctx) error {
	var in services.CreateDeliveryInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	created, err := ct.svc.CreateDelivery(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (ct *Controller) UpdateDelivery(c *fiber.Ctx) error {
	var in services.UpdateDeliveryInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	updated, err := ct.svc.UpdateDelivery(c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (ct *Controller) DeleteDelivery(c *fiber.Ctx) error {
	if err := ct.svc.DeleteDelivery(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "success"})
}

// DeliveryNoteDocument renders the 納品書 and flips the delivery's status
// on success.
func (ct *Controller) DeliveryNoteDocument(c *fiber.Ctx) error {
	doc, err := ct.svc.IssueDeliveryNote(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, ct.svc.DocumentContentType())
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=delivery_note_`+c.Params("id")+`.pdf`)
	return c.Send(doc)
}

// InvoiceDocument renders the 請求書 and flips the delivery's
// invoiceStatus on success.
func (ct *Controller) InvoiceDocument(c *fiber.Ctx) error {
	doc, err := ct.svc.IssueInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, ct.svc.DocumentContentType())
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=invoice_`+c.Params("id")+`.pdf`)
	return c.Send(doc)
}

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"nouhin-backend/middlewares"
	"nouhin-backend/services"
	"nouhin-backend/utils"
)

func (ct *Controller) CreateCustomer(c *fiber.Ctx) error {
	var in services.CreateCustomerInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	created, err := ct.svc.CreateCustomer(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (ct *Controller) UpdateCustomer(c *fiber.Ctx) error {
	var in services.UpdateCustomerInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	updated, err := ct.svc.UpdateCustomer(c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (ct *Controller) DeleteCustomer(c *fiber.Ctx) error {
	if err := ct.svc.DeleteCustomer(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "success"})
}

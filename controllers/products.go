package controllers

import (
	"github.com/gofiber/fiber/v2"

	"nouhin-backend/middlewares"
	"nouhin-backend/services"
	"nouhin-backend/utils"
)

func (ct *Controller) CreateProduct(c *fiber.Ctx) error {
	var in services.CreateProductInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	created, err := ct.svc.CreateProduct(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (ct *Controller) UpdateProduct(c *fiber.Ctx) error {
	var in services.UpdateProductInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	updated, err := ct.svc.UpdateProduct(c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (ct *Controller) DeleteProduct(c *fiber.Ctx) error {
	if err := ct.svc.DeleteProduct(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "success"})
}

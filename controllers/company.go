package controllers

import (
	"github.com/gofiber/fiber/v2"

	"nouhin-backend/middlewares"
	"nouhin-backend/services"
	"nouhin-backend/utils"
)

func (ct *Controller) GetCompanyInfo(c *fiber.Ctx) error {
	return c.JSON(ct.svc.GetCompanyInfo())
}

// UpdateCompanyInfo patches the singleton; omitted fields keep their prior
// value.
func (ct *Controller) UpdateCompanyInfo(c *fiber.Ctx) error {
	var in services.UpdateCompanyInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)
	return c.JSON(ct.svc.UpdateCompanyInfo(in))
}

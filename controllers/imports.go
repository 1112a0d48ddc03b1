package controllers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"nouhin-backend/exports"
	"nouhin-backend/services"
)

// Import bulk-upserts records into the collection named by the route. The
// body is either a multipart xlsx upload or a JSON array of records. An
// uploaded file goes through a uuid-named temp file that is removed on
// every exit path.
func (ct *Controller) Import(c *fiber.Ctx) error {
	entity := c.Params("entity")

	var records []services.ImportRecord
	if file, err := c.FormFile("file"); err == nil {
		tmp := filepath.Join(os.TempDir(), "import-"+uuid.NewString()+filepath.Ext(file.Filename))
		if err := c.SaveFile(file, tmp); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not store upload")
		}
		defer func() {
			if err := os.Remove(tmp); err != nil {
				ct.log.Warn("temp upload not removed", zap.String("path", tmp), zap.Error(err))
			}
		}()

		fh, err := os.Open(tmp)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not read upload")
		}
		defer fh.Close()

		raw, err := exports.ReadRecords(fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "unreadable workbook")
		}
		for _, m := range raw {
			records = append(records, services.ImportRecord(m))
		}
	} else {
		var raw []map[string]any
		if err := c.BodyParser(&raw); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		for _, m := range raw {
			records = append(records, services.ImportRecord(m))
		}
	}

	count, err := ct.svc.ImportBatch(entity, records)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"importedCount": count})
}

// Reset clears a collection and removes its backing file.
func (ct *Controller) Reset(c *fiber.Ctx) error {
	if err := ct.svc.ResetCollection(c.Params("entity")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "success"})
}

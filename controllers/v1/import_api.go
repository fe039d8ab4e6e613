package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"wfp-backend/controllers"
	xlsimport "wfp-backend/lib/import/xls"
	apimodels "wfp-backend/models/api"
)

type importApiController struct {
	controllers.BaseAPIController
}

func InitImportApiRouters(app *fiber.App) {
	controller := importApiController{}
	app.Route("import", func(router fiber.Router) {
		router.Post("upload/stages/:id", controller.importStages)
		router.Post("upload/staffing", controller.importStaffing)
	})
}

// @Summary Import stages from xlsx
// @Tags Import
// @Description Upload a stage workbook and append its rows to the pipeline
// @Param   id          		path    string  				    	true         "pipeline ID"
// @Param   file	formData	file	true	"xlsx workbook"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/import/upload/stages/{id} [post]
func (c *importApiController) importStages(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, data, err := c.readUpload(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	imported, err := xlsimport.Instance.ImportStages(ctx.Context(), id, fileName, data)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to import the stage workbook")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(imported))
}

// @Summary Import staffing plans from xlsx
// @Tags Import
// @Description Upload a demand workbook and create a staffing plan per row
// @Param   file	formData	file	true	"xlsx workbook"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/import/upload/staffing [post]
func (c *importApiController) importStaffing(ctx *fiber.Ctx) error {
	fileName, data, err := c.readUpload(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	imported, err := xlsimport.Instance.ImportStaffing(ctx.Context(), fileName, data)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to import the staffing workbook")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(imported))
}

func (c *importApiController) readUpload(ctx *fiber.Ctx) (string, []byte, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, err
	}
	return fileHeader.Filename, data, nil
}

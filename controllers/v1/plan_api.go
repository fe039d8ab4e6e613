package apiv1

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"wfp-backend/controllers"
	pdfexport "wfp-backend/lib/export/pdf"
	xlsexport "wfp-backend/lib/export/xls"
	pipelinecalc "wfp-backend/lib/pipeline-calc"
	planprovider "wfp-backend/lib/pipeline-plan"
	"wfp-backend/lib/utils/helpers"
	apimodels "wfp-backend/models/api"
	pipelineapimodels "wfp-backend/models/api/pipeline"
)

type planApiController struct {
	controllers.BaseAPIController
}

func InitPlanApiRouters(app *fiber.App) {
	controller := planApiController{}
	app.Route("plan", func(router fiber.Router) {
		router.Post("calculate", controller.planCalculate)
		router.Post("find", controller.planFind)
		router.Get(":id", controller.planGet)
		router.Delete(":id", controller.planDelete)
		router.Get(":id/export/xlsx", controller.planExportXlsx)
		router.Get(":id/export/pdf", controller.planExportPdf)
	})
}

// @Summary Calculate a pipeline plan
// @Tags Plans
// @Description Back-solve required candidate counts per stage from the terminal target
// @Param	body body	 pipelineapimodels.CalcRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.PlanView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/plan/calculate [post]
func (c *planApiController) planCalculate(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.CalcRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	plan, err := planprovider.Instance.Calculate(payload)
	if err != nil {
		if errors.Is(err, pipelinecalc.ErrInvalidInput) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to calculate the plan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(plan))
}

// @Summary Find saved plans
// @Tags Plans
// @Description Find saved plans with pagination
// @Param	body body	 pipelineapimodels.PlanFind	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]pipelineapimodels.PlanView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/plan/find [post]
func (c *planApiController) planFind(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.PlanFind
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := planprovider.Instance.Find(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list plans")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get a saved plan
// @Tags Plans
// @Description Get a saved plan by id
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.PlanView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/plan/{id} [get]
func (c *planApiController) planGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := planprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get the plan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a saved plan
// @Tags Plans
// @Description Delete a saved plan
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/plan/{id} [delete]
func (c *planApiController) planDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := planprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete the plan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Export a plan to xlsx
// @Tags Plans
// @Description Download the plan as an xlsx workbook
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/plan/{id}/export/xlsx [get]
func (c *planApiController) planExportXlsx(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	plan, err := planprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get the plan")
	}
	buf, err := xlsexport.Instance.ExportPlan(plan)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export the plan to xlsx")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xlsx"`, exportFileName(plan.PipelineName, id)))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Export a plan to pdf
// @Tags Plans
// @Description Download the plan as a pdf document
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/plan/{id}/export/pdf [get]
func (c *planApiController) planExportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	plan, err := planprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get the plan")
	}
	buf, err := pdfexport.Instance.ExportPlan(plan)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export the plan to pdf")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, exportFileName(plan.PipelineName, id)))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

func exportFileName(pipelineName, planID string) string {
	if pipelineName == "" {
		return "plan-" + planID
	}
	return helpers.ToSnakeCase(strings.ReplaceAll(pipelineName, " ", ""))
}

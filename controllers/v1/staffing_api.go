package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"wfp-backend/controllers"
	staffingprovider "wfp-backend/lib/staffing"
	apimodels "wfp-backend/models/api"
	staffingapimodels "wfp-backend/models/api/staffing"
)

type staffingApiController struct {
	controllers.BaseAPIController
}

func InitStaffingApiRouters(app *fiber.App) {
	controller := staffingApiController{}
	app.Route("staffing", func(router fiber.Router) {
		router.Post("", controller.staffingCreate)
		router.Post("find", controller.staffingFind)
		router.Get(":id", controller.staffingGet)
		router.Put(":id", controller.staffingUpdate)
		router.Delete(":id", controller.staffingDelete)
	})
}

// @Summary Create a staffing plan
// @Tags Staffing
// @Description Create a demand row for a client role
// @Param	body body	 staffingapimodels.StaffingPlanData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/staffing [post]
func (c *staffingApiController) staffingCreate(ctx *fiber.Ctx) error {
	var payload staffingapimodels.StaffingPlanData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := staffingprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create the staffing plan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Find staffing plans
// @Tags Staffing
// @Description Find staffing plans with pagination
// @Param	body body	 staffingapimodels.StaffingPlanFind	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]staffingapimodels.StaffingPlanView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/staffing/find [post]
func (c *staffingApiController) staffingFind(ctx *fiber.Ctx) error {
	var payload staffingapimodels.StaffingPlanFind
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := staffingprovider.Instance.Find(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list staffing plans")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get a staffing plan
// @Tags Staffing
// @Description Get a staffing plan by id
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=staffingapimodels.StaffingPlanView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/staffing/{id} [get]
func (c *staffingApiController) staffingGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := staffingprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get the staffing plan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a staffing plan
// @Tags Staffing
// @Description Update a staffing plan
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 staffingapimodels.StaffingPlanData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/staffing/{id} [put]
func (c *staffingApiController) staffingUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload staffingapimodels.StaffingPlanData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := staffingprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update the staffing plan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a staffing plan
// @Tags Staffing
// @Description Delete a staffing plan
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/staffing/{id} [delete]
func (c *staffingApiController) staffingDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := staffingprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete the staffing plan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

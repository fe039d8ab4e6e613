package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"wfp-backend/controllers"
	pipelineprovider "wfp-backend/lib/pipeline"
	apimodels "wfp-backend/models/api"
	pipelineapimodels "wfp-backend/models/api/pipeline"
)

type pipelineApiController struct {
	controllers.BaseAPIController
}

func InitPipelineApiRouters(app *fiber.App) {
	controller := pipelineApiController{}
	app.Route("pipeline", func(router fiber.Router) {
		router.Post("", controller.pipelineCreate)
		router.Post("from-template", controller.pipelineCreateFromTemplate)
		router.Post("find", controller.pipelineFind)
		router.Get(":id", controller.pipelineGet)
		router.Put(":id", controller.pipelineUpdate)
		router.Delete(":id", controller.pipelineDelete)
		router.Post(":id/stage", controller.stageAdd)
		router.Put("stage/:id", controller.stageUpdate)
		router.Delete("stage/:id", controller.stageDelete)
	})
}

// @Summary Create a pipeline
// @Tags Pipelines
// @Description Create an empty pipeline, inactive until stages are confirmed
// @Param	body body	 pipelineapimodels.PipelineData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline [post]
func (c *pipelineApiController) pipelineCreate(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.PipelineData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := pipelineprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create the pipeline")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Create a pipeline from the default template
// @Tags Pipelines
// @Description Create a pipeline prefilled with the default stage set
// @Param	body body	 pipelineapimodels.PipelineData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/from-template [post]
func (c *pipelineApiController) pipelineCreateFromTemplate(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.PipelineData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := pipelineprovider.Instance.CreateFromTemplate(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create the pipeline from the template")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Find pipelines
// @Tags Pipelines
// @Description Find pipelines with pagination
// @Param	body body	 pipelineapimodels.PipelineFind	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]pipelineapimodels.PipelineView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/find [post]
func (c *pipelineApiController) pipelineFind(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.PipelineFind
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := pipelineprovider.Instance.Find(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list pipelines")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get a pipeline by id
// @Tags Pipelines
// @Description Get a pipeline with its stage set
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.PipelineView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{id} [get]
func (c *pipelineApiController) pipelineGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := pipelineprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get the pipeline")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a pipeline
// @Tags Pipelines
// @Description Update pipeline attributes
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 pipelineapimodels.PipelineData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{id} [put]
func (c *pipelineApiController) pipelineUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.PipelineData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := pipelineprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update the pipeline")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a pipeline
// @Tags Pipelines
// @Description Delete a pipeline with its stages
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{id} [delete]
func (c *pipelineApiController) pipelineDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := pipelineprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete the pipeline")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add a stage
// @Tags Pipelines
// @Description Add a stage to the pipeline
// @Param   id          		path    string  				    	true         "pipeline ID"
// @Param	body body	 pipelineapimodels.StageData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{id}/stage [post]
func (c *pipelineApiController) stageAdd(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.StageData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	stageID, err := pipelineprovider.Instance.AddStage(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to add the stage")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(stageID))
}

// @Summary Update a stage
// @Tags Pipelines
// @Description Update stage attributes
// @Param   id          		path    string  				    	true         "stage ID"
// @Param	body body	 pipelineapimodels.StageData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/stage/{id} [put]
func (c *pipelineApiController) stageUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.StageData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := pipelineprovider.Instance.UpdateStage(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update the stage")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a stage
// @Tags Pipelines
// @Description Delete a stage
// @Param   id          		path    string  				    	true         "stage ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/stage/{id} [delete]
func (c *pipelineApiController) stageDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := pipelineprovider.Instance.DeleteStage(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete the stage")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

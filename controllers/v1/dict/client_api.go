package dict

import (
	"github.com/gofiber/fiber/v2"
	"wfp-backend/controllers"
	clientprovider "wfp-backend/lib/dicts/client"
	apimodels "wfp-backend/models/api"
	clientapimodels "wfp-backend/models/api/client"
)

type clientDictApiController struct {
	controllers.BaseAPIController
}

func InitClientDictApiRouters(app *fiber.App) {
	controller := clientDictApiController{}
	app.Route("client", func(router fiber.Router) {
		router.Post("", controller.clientCreate)
		router.Post("find", controller.clientFind)
		router.Get(":id", controller.clientGet)
		router.Put(":id", controller.clientUpdate)
		router.Delete(":id", controller.clientDelete)
	})
}

// @Summary Create a client
// @Tags Dictionary. Clients
// @Description Create a client
// @Param	body body	 clientapimodels.ClientData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/client [post]
func (c *clientDictApiController) clientCreate(ctx *fiber.Ctx) error {
	var payload clientapimodels.ClientData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := clientprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create the client")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Find clients
// @Tags Dictionary. Clients
// @Description Find clients by name
// @Param	body body	 clientapimodels.ClientFind	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]clientapimodels.ClientView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/client/find [post]
func (c *clientDictApiController) clientFind(ctx *fiber.Ctx) error {
	var payload clientapimodels.ClientFind
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := clientprovider.Instance.Find(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list clients")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a client by id
// @Tags Dictionary. Clients
// @Description Get a client by id
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=clientapimodels.ClientView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/client/{id} [get]
func (c *clientDictApiController) clientGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := clientprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get the client")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a client
// @Tags Dictionary. Clients
// @Description Update a client
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 clientapimodels.ClientData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/client/{id} [put]
func (c *clientDictApiController) clientUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload clientapimodels.ClientData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := clientprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update the client")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a client
// @Tags Dictionary. Clients
// @Description Delete a client
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/client/{id} [delete]
func (c *clientDictApiController) clientDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := clientprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete the client")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

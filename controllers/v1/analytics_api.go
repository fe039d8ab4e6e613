package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"wfp-backend/controllers"
	"wfp-backend/lib/analytics"
	apimodels "wfp-backend/models/api"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Get("funnel/:id", controller.funnelMetrics)
		router.Get("reconcile/:id", controller.reconcile)
		router.Get("demand-supply", controller.demandSupply)
		router.Get("benchmarks", controller.benchmarks)
	})
}

// @Summary Funnel metrics
// @Tags Analytics
// @Description Aggregate conversion and turnaround metrics for a pipeline
// @Param   id          		path    string  				    	true         "pipeline ID"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.FunnelMetricsView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/funnel/{id} [get]
func (c *analyticsApiController) funnelMetrics(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := analytics.Instance.FunnelMetrics(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to calculate funnel metrics")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Reconcile a plan
// @Tags Analytics
// @Description Compare a saved plan's stage targets with the actual candidate counts
// @Param   id          		path    string  				    	true         "plan ID"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.ReconcileView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/reconcile/{id} [get]
func (c *analyticsApiController) reconcile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := analytics.Instance.Reconcile(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to reconcile the plan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Demand vs supply
// @Tags Analytics
// @Description Per-client demand headcount against the funnel supply
// @Success 200 {object} apimodels.Response{data=[]analyticsapimodels.DemandSupplyRow}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/demand-supply [get]
func (c *analyticsApiController) demandSupply(ctx *fiber.Ctx) error {
	resp, err := analytics.Instance.DemandSupply()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to build the demand-supply report")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Hiring benchmarks
// @Tags Analytics
// @Description Reference turnaround and conversion figures per practice area
// @Success 200 {object} apimodels.Response{data=[]analyticsapimodels.BenchmarkView}
// @router /api/v1/analytics/benchmarks [get]
func (c *analyticsApiController) benchmarks(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(analytics.Instance.Benchmarks()))
}

package apiv1

import (
	"f1viz-backend/controllers"
	"f1viz-backend/lib/telemetry"
	apimodels "f1viz-backend/models/api"
	telemetryapimodels "f1viz-backend/models/api/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type telemetryApiController struct {
	controllers.BaseAPIController
}

func InitTelemetryApiRouters(app *fiber.App) {
	controller := telemetryApiController{}
	app.Route("telemetry", func(router fiber.Router) {
		router.Put("compare", controller.compare)
		router.Put("map", controller.mapView)
	})
}

// @Summary Two-driver telemetry comparison
// @Tags Telemetry
// @Param	body body	telemetryapimodels.CompareFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=telemetryapimodels.CompareView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/telemetry/compare [put]
func (c *telemetryApiController) compare(ctx *fiber.Ctx) error {
	var payload telemetryapimodels.CompareFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	data, err := telemetry.Instance.Compare(payload)
	if err != nil {
		return c.sendTelemetryError(ctx, err, "failed to build telemetry comparison")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Telemetry parameter on a track map
// @Tags Telemetry
// @Param	body body	telemetryapimodels.MapFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=telemetryapimodels.MapView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/telemetry/map [put]
func (c *telemetryApiController) mapView(ctx *fiber.Ctx) error {
	var payload telemetryapimodels.MapFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	data, err := telemetry.Instance.MapView(payload)
	if err != nil {
		return c.sendTelemetryError(ctx, err, "failed to build map view")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

func (c *telemetryApiController) sendTelemetryError(ctx *fiber.Ctx, err error, message string) error {
	if errors.Is(err, telemetry.ErrNoData) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, message)
}

package apiv1

import (
	"f1viz-backend/controllers"
	catalogprovider "f1viz-backend/lib/catalog"
	apimodels "f1viz-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type catalogApiController struct {
	controllers.BaseAPIController
}

func InitCatalogApiRouters(app *fiber.App) {
	controller := catalogApiController{}
	app.Route("catalog", func(router fiber.Router) {
		router.Get("seasons", controller.seasons)
		router.Get(":season/events", controller.events)
		router.Get(":season/:event/sessions", controller.sessions)
		router.Get(":season/:event/:session/drivers", controller.drivers)
		router.Get(":season/:event/:session/:driver/laps", controller.laps)
	})
}

// @Summary Seasons with stored data
// @Tags Catalog
// @Success 200 {object} apimodels.Response{data=catalogapimodels.SeasonList}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/catalog/seasons [get]
func (c *catalogApiController) seasons(ctx *fiber.Ctx) error {
	data, err := catalogprovider.Instance.Seasons()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list seasons")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Grand prix list for a season
// @Tags Catalog
// @Param   season	path	int	true	"season"
// @Success 200 {object} apimodels.Response{data=catalogapimodels.EventList}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/catalog/{season}/events [get]
func (c *catalogApiController) events(ctx *fiber.Ctx) error {
	season, err := c.SeasonParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := catalogprovider.Instance.Events(season)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list events")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Sessions stored for a grand prix
// @Tags Catalog
// @Param   season	path	int	true	"season"
// @Param   event	path	string	true	"grand prix name"
// @Success 200 {object} apimodels.Response{data=catalogapimodels.SessionList}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/catalog/{season}/{event}/sessions [get]
func (c *catalogApiController) sessions(ctx *fiber.Ctx) error {
	season, err := c.SeasonParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	event, err := c.EventParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := catalogprovider.Instance.Sessions(season, event)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list sessions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Drivers with telemetry for a session
// @Tags Catalog
// @Param   season	path	int	true	"season"
// @Param   event	path	string	true	"grand prix name"
// @Param   session	path	string	true	"session kind"
// @Success 200 {object} apimodels.Response{data=catalogapimodels.DriverList}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/catalog/{season}/{event}/{session}/drivers [get]
func (c *catalogApiController) drivers(ctx *fiber.Ctx) error {
	season, err := c.SeasonParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	event, err := c.EventParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session, err := c.SessionParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := catalogprovider.Instance.Drivers(season, event, session)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list drivers")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Lap numbers with telemetry for a driver
// @Tags Catalog
// @Param   season	path	int	true	"season"
// @Param   event	path	string	true	"grand prix name"
// @Param   session	path	string	true	"session kind"
// @Param   driver	path	string	true	"driver abbreviation"
// @Success 200 {object} apimodels.Response{data=catalogapimodels.LapList}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/catalog/{season}/{event}/{session}/{driver}/laps [get]
func (c *catalogApiController) laps(ctx *fiber.Ctx) error {
	season, err := c.SeasonParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	event, err := c.EventParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	session, err := c.SessionParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	driver := ctx.Params("driver")
	if driver == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("invalid driver"))
	}
	data, err := catalogprovider.Instance.Laps(season, event, session, driver)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list laps")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

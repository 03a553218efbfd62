package apiv1

import (
	"fmt"
	"time"

	"f1viz-backend/controllers"
	"f1viz-backend/lib/charts"
	pdfexport "f1viz-backend/lib/export/pdf"
	xlsexport "f1viz-backend/lib/export/xls"
	"f1viz-backend/models"
	apimodels "f1viz-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type chartsApiController struct {
	controllers.BaseAPIController
}

func InitChartsApiRouters(app *fiber.App) {
	controller := chartsApiController{}
	app.Route("charts", func(router fiber.Router) {
		router.Get(":season/:event/:session/heatmap", controller.heatmap)
		router.Get(":season/:event/:session/delta", controller.delta)
		router.Get(":season/:event/:session/tyres", controller.tyres)
		router.Get(":season/:event/:session/laps_export", controller.lapsExport)
		router.Get(":season/:event/:session/laps_export_pdf", controller.lapsExportPdf)
	})
}

// @Summary Lap-time heatmap data
// @Tags Charts
// @Param   season	path	int	true	"season"
// @Param   event	path	string	true	"grand prix name"
// @Param   session	path	string	true	"session kind"
// @Success 200 {object} apimodels.Response{data=chartsapimodels.LapTimeHeatmap}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/charts/{season}/{event}/{session}/heatmap [get]
func (c *chartsApiController) heatmap(ctx *fiber.Ctx) error {
	season, event, session, err := c.chartParams(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := charts.Instance.LapTimeHeatmap(season, event, session)
	if err != nil {
		return c.sendChartError(ctx, err, "failed to build lap time heatmap")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Delta-to-winner chart data
// @Tags Charts
// @Param   season	path	int	true	"season"
// @Param   event	path	string	true	"grand prix name"
// @Param   session	path	string	true	"session kind"
// @Success 200 {object} apimodels.Response{data=chartsapimodels.DeltaChart}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/charts/{season}/{event}/{session}/delta [get]
func (c *chartsApiController) delta(ctx *fiber.Ctx) error {
	season, event, session, err := c.chartParams(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := charts.Instance.DeltaChart(season, event, session)
	if err != nil {
		return c.sendChartError(ctx, err, "failed to build delta chart")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Tyre strategy chart data
// @Tags Charts
// @Param   season	path	int	true	"season"
// @Param   event	path	string	true	"grand prix name"
// @Param   session	path	string	true	"session kind"
// @Success 200 {object} apimodels.Response{data=chartsapimodels.TyreStrategy}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/charts/{season}/{event}/{session}/tyres [get]
func (c *chartsApiController) tyres(ctx *fiber.Ctx) error {
	season, event, session, err := c.chartParams(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := charts.Instance.TyreStrategy(season, event, session)
	if err != nil {
		return c.sendChartError(ctx, err, "failed to build tyre strategy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Session lap table as xlsx
// @Tags Charts
// @Param   season	path	int	true	"season"
// @Param   event	path	string	true	"grand prix name"
// @Param   session	path	string	true	"session kind"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/charts/{season}/{event}/{session}/laps_export [get]
func (c *chartsApiController) lapsExport(ctx *fiber.Ctx) error {
	season, event, session, err := c.chartParams(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	laps, err := charts.Instance.SessionLaps(season, event, session)
	if err != nil {
		return c.sendChartError(ctx, err, "failed to load session laps")
	}
	data, err := xlsexport.Instance.ExportLapList(laps)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export laps to xlsx")
	}
	fileName := fmt.Sprintf("laps-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Session lap table as pdf
// @Tags Charts
// @Param   season	path	int	true	"season"
// @Param   event	path	string	true	"grand prix name"
// @Param   session	path	string	true	"session kind"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/charts/{season}/{event}/{session}/laps_export_pdf [get]
func (c *chartsApiController) lapsExportPdf(ctx *fiber.Ctx) error {
	season, event, session, err := c.chartParams(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	laps, err := charts.Instance.SessionLaps(season, event, session)
	if err != nil {
		return c.sendChartError(ctx, err, "failed to load session laps")
	}
	title := fmt.Sprintf("%v %s - %s", season, event, session)
	data, err := pdfexport.Instance.ExportLapList(title, laps)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export laps to pdf")
	}
	fileName := fmt.Sprintf("laps-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

func (c *chartsApiController) chartParams(ctx *fiber.Ctx) (int, string, models.SessionKind, error) {
	season, err := c.SeasonParam(ctx)
	if err != nil {
		return 0, "", "", err
	}
	event, err := c.EventParam(ctx)
	if err != nil {
		return 0, "", "", err
	}
	session, err := c.SessionParam(ctx)
	if err != nil {
		return 0, "", "", err
	}
	return season, event, session, nil
}

func (c *chartsApiController) sendChartError(ctx *fiber.Ctx, err error, message string) error {
	if errors.Is(err, charts.ErrNoData) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, message)
}

package apiv1

import (
	"f1viz-backend/controllers"
	"f1viz-backend/lib/ingest"
	"f1viz-backend/middleware"
	apimodels "f1viz-backend/models/api"
	ingestapimodels "f1viz-backend/models/api/ingest"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ingestApiController struct {
	controllers.BaseAPIController
}

func InitIngestApiRouters(app *fiber.App) {
	controller := ingestApiController{}
	app.Route("ingest", func(router fiber.Router) {
		router.Use(middleware.AdminKeyRequired())
		router.Post("", controller.enqueue)
		router.Get(":id", controller.job)
	})
}

// @Summary Queue a session ingest
// @Tags Ingest
// @Param	X-Api-Key	header	string	true	"admin API key"
// @Param	body body	ingestapimodels.IngestRequest	true	"request body"
// @Success 202 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ingest [post]
func (c *ingestApiController) enqueue(ctx *fiber.Ctx) error {
	var payload ingestapimodels.IngestRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	jobID, err := ingest.Instance.Enqueue(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to queue ingest job")
	}
	return ctx.Status(fiber.StatusAccepted).JSON(apimodels.NewResponse(jobID))
}

// @Summary Ingest job status
// @Tags Ingest
// @Param	X-Api-Key	header	string	true	"admin API key"
// @Param   id	path	string	true	"job id"
// @Success 200 {object} apimodels.Response{data=ingestapimodels.IngestJobView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ingest/{id} [get]
func (c *ingestApiController) job(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("invalid job id"))
	}

	job, err := ingest.Instance.GetJob(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load ingest job")
	}
	if job == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("ingest job not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(job))
}

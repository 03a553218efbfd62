package controllers

import (
	"net/url"

	"f1viz-backend/models"
	apimodels "f1viz-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, message string) error {
	logger.WithError(err).Error(message)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(message))
}

// SeasonParam parses the :season path parameter.
func (c *BaseAPIController) SeasonParam(ctx *fiber.Ctx) (int, error) {
	season, err := ctx.ParamsInt("season")
	if err != nil || season <= 0 {
		return 0, errors.New("invalid season")
	}
	return season, nil
}

// EventParam decodes the :event path parameter (grand prix names contain spaces).
func (c *BaseAPIController) EventParam(ctx *fiber.Ctx) (string, error) {
	event, err := url.PathUnescape(ctx.Params("event"))
	if err != nil || event == "" {
		return "", errors.New("invalid event")
	}
	return event, nil
}

// SessionParam parses and validates the :session path parameter.
func (c *BaseAPIController) SessionParam(ctx *fiber.Ctx) (models.SessionKind, error) {
	session := models.SessionKind(ctx.Params("session"))
	if !session.IsValid() {
		return "", errors.New("unknown session")
	}
	return session, nil
}

package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abdsramirez-cloud/crmpro1/internal/api"
	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"
	var fields map[string]string

	var fieldErrs entities.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		status = http.StatusUnprocessableEntity
		code = api.VALIDATIONFAILED
		msg = "validation failed"
		fields = fieldErrs
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrContactNotFound),
		errors.Is(err, entities.ErrDealNotFound),
		errors.Is(err, entities.ErrTaskNotFound),
		errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrStageNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg, fields))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string, fields map[string]string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{
		Code:    code,
		Message: msg,
		Fields:  fields,
	}}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body", nil))
}

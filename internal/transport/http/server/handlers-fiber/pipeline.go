package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abdsramirez-cloud/crmpro1/internal/api"
	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
	"github.com/abdsramirez-cloud/crmpro1/internal/mapper"
)

// GetBoard returns one kanban column per pipeline stage.
func (h *Handler) GetBoard(c *fiber.Ctx) error {
	cols, err := h.uc.Board(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIBoard(cols))
}

// PostMoveDeal applies a drag-end stage transition. A cancelled or
// position-preserving drag is reported as moved=false.
func (h *Handler) PostMoveDeal(c *fiber.Ctx) error {
	var body api.MoveDealRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	deal, moved, err := h.uc.MoveDeal(c.Context(), mapper.FromAPIMove(body))
	if err != nil {
		return writeError(c, err)
	}

	resp := api.MoveDealResponse{Moved: moved}
	if deal != nil {
		mapped := mapper.ToAPIDeal(*deal)
		resp.Deal = &mapped
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetStages returns the fixed stage set in pipeline order.
func (h *Handler) GetStages(c *fiber.Ctx) error {
	stages := entities.Stages()
	res := make([]api.Stage, 0, len(stages))
	for _, s := range stages {
		res = append(res, mapper.ToAPIStage(s))
	}
	return c.Status(http.StatusOK).JSON(res)
}

package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abdsramirez-cloud/crmpro1/internal/api"
	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
	"github.com/abdsramirez-cloud/crmpro1/internal/mapper"
)

// GetDeals lists deals filtered by search term and stage, ordered by sortBy.
func (h *Handler) GetDeals(c *fiber.Ctx) error {
	q := entities.DealQuery{
		Search: c.Query("search"),
		Stage:  c.Query("stage"),
		SortBy: c.Query("sortBy"),
	}

	deals, err := h.uc.ListDeals(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIDealList(deals))
}

// PostDeal creates a deal from the submitted form.
func (h *Handler) PostDeal(c *fiber.Ctx) error {
	var body api.CreateDealRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	deal, err := h.uc.CreateDeal(c.Context(), mapper.FromAPIDealDraft(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIDeal(*deal))
}

// PatchDeal applies a partial mutation to an existing deal.
func (h *Handler) PatchDeal(c *fiber.Ctx) error {
	var body api.UpdateDealRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	deal, err := h.uc.UpdateDeal(c.Context(), c.Params("id"), mapper.FromAPIDealUpdate(body))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIDeal(*deal))
}

// DeleteDeal removes a deal by id.
func (h *Handler) DeleteDeal(c *fiber.Ctx) error {
	if err := h.uc.DeleteDeal(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

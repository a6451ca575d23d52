package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abdsramirez-cloud/crmpro1/internal/mapper"
)

// GetDashboard returns the aggregated dashboard metrics.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	stats, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIDashboard(stats))
}

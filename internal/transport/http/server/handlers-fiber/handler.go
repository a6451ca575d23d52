// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/abdsramirez-cloud/crmpro1/internal/usecase"
)

// Handler serves the CRM HTTP surface using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// Register mounts all routes under /api.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/contacts", h.GetContacts)
	api.Post("/contacts", h.PostContact)
	api.Patch("/contacts/:id", h.PatchContact)
	api.Delete("/contacts/:id", h.DeleteContact)

	api.Get("/deals", h.GetDeals)
	api.Post("/deals", h.PostDeal)
	api.Patch("/deals/:id", h.PatchDeal)
	api.Delete("/deals/:id", h.DeleteDeal)

	api.Get("/pipeline/board", h.GetBoard)
	api.Post("/pipeline/move", h.PostMoveDeal)
	api.Get("/pipeline/stages", h.GetStages)

	api.Get("/dashboard", h.GetDashboard)

	api.Get("/tasks", h.GetTasks)
	api.Post("/tasks", h.PostTask)
	api.Patch("/tasks/:id", h.PatchTask)
	api.Delete("/tasks/:id", h.DeleteTask)
	api.Get("/tasks/:id/calendar-link", h.GetTaskCalendarLink)

	api.Get("/users", h.GetUsers)
	api.Post("/users", h.PostUser)
	api.Patch("/users/:id", h.PatchUser)
	api.Delete("/users/:id", h.DeleteUser)

	api.Get("/settings", h.GetSettings)
	api.Put("/settings/language", h.PutLanguage)
	api.Put("/settings/theme", h.PutTheme)
	api.Patch("/settings/profile", h.PatchProfile)
	api.Get("/settings/translations", h.GetTranslations)
}

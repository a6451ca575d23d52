package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abdsramirez-cloud/crmpro1/internal/api"
	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
	"github.com/abdsramirez-cloud/crmpro1/internal/mapper"
)

// GetTasks lists tasks filtered by search, status and priority, ordered by sortBy.
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	q := entities.TaskQuery{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		SortBy:   c.Query("sortBy"),
	}

	tasks, err := h.uc.ListTasks(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPITaskList(tasks))
}

// PostTask creates a task.
func (h *Handler) PostTask(c *fiber.Ctx) error {
	var body api.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	task, err := h.uc.CreateTask(c.Context(), mapper.FromAPITask(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPITask(*task))
}

// PatchTask applies a partial mutation to an existing task.
func (h *Handler) PatchTask(c *fiber.Ctx) error {
	var body api.UpdateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	task, err := h.uc.UpdateTask(c.Context(), c.Params("id"), mapper.FromAPITaskUpdate(body))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// DeleteTask removes a task by id.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	if err := h.uc.DeleteTask(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetTaskCalendarLink returns a Google Calendar deep link for the task.
func (h *Handler) GetTaskCalendarLink(c *fiber.Ctx) error {
	link, err := h.uc.TaskCalendarLink(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.CalendarLinkResponse{URL: link})
}

package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abdsramirez-cloud/crmpro1/internal/api"
	"github.com/abdsramirez-cloud/crmpro1/internal/mapper"
)

// GetUsers lists team members for the user-administration table.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUserList(users))
}

// PostUser adds a team member.
func (h *Handler) PostUser(c *fiber.Ctx) error {
	var body api.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	user, err := h.uc.AddUser(c.Context(), mapper.FromAPIUser(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIUser(*user))
}

// PatchUser applies a partial mutation to an existing team member.
func (h *Handler) PatchUser(c *fiber.Ctx) error {
	var body api.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	user, err := h.uc.UpdateUser(c.Context(), c.Params("id"), mapper.FromAPIUserUpdate(body))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*user))
}

// DeleteUser removes a team member by id.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

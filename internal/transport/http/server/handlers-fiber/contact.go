package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abdsramirez-cloud/crmpro1/internal/api"
	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
	"github.com/abdsramirez-cloud/crmpro1/internal/mapper"
)

// GetContacts lists contacts filtered by search term and status.
func (h *Handler) GetContacts(c *fiber.Ctx) error {
	q := entities.ContactQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	contacts, err := h.uc.ListContacts(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIContactList(contacts))
}

// PostContact creates a contact from the submitted form.
func (h *Handler) PostContact(c *fiber.Ctx) error {
	var body api.CreateContactRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	contact, err := h.uc.CreateContact(c.Context(), mapper.FromAPIContact(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIContact(*contact))
}

// PatchContact applies a partial mutation to an existing contact.
func (h *Handler) PatchContact(c *fiber.Ctx) error {
	var body api.UpdateContactRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	contact, err := h.uc.UpdateContact(c.Context(), c.Params("id"), mapper.FromAPIContactUpdate(body))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIContact(*contact))
}

// DeleteContact removes a contact by id.
func (h *Handler) DeleteContact(c *fiber.Ctx) error {
	if err := h.uc.DeleteContact(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

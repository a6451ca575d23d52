package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abdsramirez-cloud/crmpro1/internal/api"
	"github.com/abdsramirez-cloud/crmpro1/internal/mapper"
)

// GetSettings returns the active language, theme, profile and palette.
func (h *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.uc.CurrentSettings(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISettings(settings))
}

// PutLanguage switches the interface language.
func (h *Handler) PutLanguage(c *fiber.Ctx) error {
	var body api.SetLanguageRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	if err := h.uc.SetLanguage(c.Context(), body.Language); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PutTheme switches the presentation theme and returns its palette.
func (h *Handler) PutTheme(c *fiber.Ctx) error {
	var body api.SetThemeRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	palette, err := h.uc.SetTheme(c.Context(), body.Theme)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.SetThemeResponse{
		Theme:   body.Theme,
		Palette: mapper.ToAPIPalette(palette),
	})
}

// PatchProfile applies a partial mutation to the current-user profile.
func (h *Handler) PatchProfile(c *fiber.Ctx) error {
	var body api.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	profile, err := h.uc.UpdateProfile(c.Context(), mapper.FromAPIProfileUpdate(body))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIProfile(profile))
}

// GetTranslations returns the active language's full label table.
func (h *Handler) GetTranslations(c *fiber.Ctx) error {
	labels, err := h.uc.Translations(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(labels)
}

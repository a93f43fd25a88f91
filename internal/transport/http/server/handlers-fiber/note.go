package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"leadflow-crm/internal/api"
	"leadflow-crm/internal/mapper"
)

// PostNote appends a note to the lead's list.
func (h *Handler) PostNote(c *fiber.Ctx) error {
	var body api.AddNoteRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	note, err := h.uc.AddNote(c.Context(), c.Params("id"), body.Text)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPINote(*note))
}

// DeleteNote removes a note by id; a note id not in the list is not an error.
func (h *Handler) DeleteNote(c *fiber.Ctx) error {
	if err := h.uc.RemoveNote(c.Context(), c.Params("id"), c.Params("noteId")); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "Note deleted."})
}

package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"leadflow-crm/internal/api"
	"leadflow-crm/internal/entities"
	"leadflow-crm/internal/mapper"
	"leadflow-crm/internal/transport/http/middleware"
)

// GetLeads lists leads with filtering, sorting and pagination, plus the
// global stats block.
func (h *Handler) GetLeads(c *fiber.Ctx) error {
	filter := entities.LeadFilter{
		Status: entities.Status(c.Query("status")),
		Source: entities.Source(c.Query("source")),
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Page:   c.QueryInt("page", 0),
		Limit:  c.QueryInt("limit", 0),
	}

	page, err := h.uc.ListLeads(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPILeadPage(*page))
}

// PostLead creates a lead attributed to the authenticated user.
func (h *Handler) PostLead(c *fiber.Ctx) error {
	var body api.CreateLeadRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	identity, _ := middleware.IdentityFromCtx(c)
	lead, err := h.uc.CreateLead(c.Context(), mapper.FromCreateLeadRequest(body, identity.UserID))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPILead(*lead))
}

// GetLead fetches one lead with its notes.
func (h *Handler) GetLead(c *fiber.Ctx) error {
	lead, err := h.uc.Lead(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPILead(*lead))
}

// PatchLead partially updates the mutable lead fields.
func (h *Handler) PatchLead(c *fiber.Ctx) error {
	var body api.UpdateLeadRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	lead, err := h.uc.UpdateLead(c.Context(), c.Params("id"), mapper.FromUpdateLeadRequest(body))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPILead(*lead))
}

// DeleteLead removes a lead and its notes. Admin gate applied in routing.
func (h *Handler) DeleteLead(c *fiber.Ctx) error {
	if err := h.uc.DeleteLead(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "Lead deleted."})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-parser/api/http/presenter"
	"resume-parser/pkg/history"
)

// ParsesHandler serves the saved parse-result history.
type ParsesHandler struct {
	svc history.UseCase
}

func NewParsesHandler(svc history.UseCase) *ParsesHandler {
	return &ParsesHandler{svc: svc}
}

// List returns saved parse results for the authenticated user.
// @Summary List parse history
// @Tags    parses
// @Produce json
// @Param   limit query int false "page size (max 200)"
// @Param   offset query int false "items to skip"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /parses [get]
func (h *ParsesHandler) List(c *fiber.Ctx) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	limit, offset := parseLimitOffset(c, 50)
	records, err := h.svc.List(c.Context(), viewer, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list parse results")
	}
	if records == nil {
		records = []history.Record{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"items":  records,
		"limit":  limit,
		"offset": offset,
	})
}

// Get returns one saved parse result with the full resume schema.
// @Summary Get a saved parse result
// @Tags    parses
// @Produce json
// @Param   id path string true "parse result id"
// @Security BearerAuth
// @Success 200 {object} history.Record
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /parses/{id} [get]
func (h *ParsesHandler) Get(c *fiber.Ctx) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid parse result id")
	}
	rec, err := h.svc.Get(c.Context(), viewer, id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "parse result not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load parse result")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// Delete removes a saved parse result.
// @Summary Delete a saved parse result
// @Tags    parses
// @Produce json
// @Param   id path string true "parse result id"
// @Security BearerAuth
// @Success 204 {string} string ""
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /parses/{id} [delete]
func (h *ParsesHandler) Delete(c *fiber.Ctx) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid parse result id")
	}
	if err := h.svc.Delete(c.Context(), viewer, id); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "parse result not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete parse result")
	}
	return c.SendStatus(http.StatusNoContent)
}

func viewerFrom(c *fiber.Ctx) (history.Viewer, bool) {
	s, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(s)
	if err != nil {
		return history.Viewer{}, false
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	return history.Viewer{UserID: id, IsAdmin: isAdmin}, true
}

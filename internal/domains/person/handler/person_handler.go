package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"socialnetwork-backend/internal/domains/person/model"
	"socialnetwork-backend/internal/domains/person/service"
	"socialnetwork-backend/internal/shared/response"
)

// PersonHandler handles HTTP requests for the person domain.
//
// Success bodies are the bare resources (a Person object, an array of
// Person, the stats object) - that is the wire contract the frontend
// consumes. Failures use the shared error envelope.
type PersonHandler struct {
	service service.PersonService
}

// NewPersonHandler creates a new person handler instance.
// Dependency injection pattern - receives service from container.
func NewPersonHandler(service service.PersonService) *PersonHandler {
	return &PersonHandler{service: service}
}

// parseID reads the :id path parameter. A non-numeric id identifies no
// person, so it falls into the same not-found bucket as an unknown id.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Person not found")
		return 0, false
	}
	return id, true
}

// ListPeople handles GET /api/people
func (h *PersonHandler) ListPeople(c *gin.Context) {
	people, err := h.service.ListPeople(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, people)
}

// GetPerson handles GET /api/people/:id
func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.GetPerson(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// CreatePerson handles POST /api/people
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req model.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.CreatePerson(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/people/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

// UpdatePerson handles PUT /api/people/:id
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdatePerson(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdateStatus handles PUT /api/people/:id/status
func (h *PersonHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePerson handles DELETE /api/people/:id
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePerson(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStats handles GET /api/people/stats
func (h *PersonHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// handleError maps domain errors to HTTP status codes.
func (h *PersonHandler) handleError(c *gin.Context, err error) {
	if model.IsPersonNotFound(err) {
		response.NotFound(c, "Person not found")
		return
	}

	log.Error().
		Str("request_id", c.GetString("request_id")).
		Err(err).
		Msg("Person operation failed")
	response.InternalServerError(c, "Internal server error")
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/service"
)

// @Summary      List events
// @Tags         events
// @Produce      json
// @Success      200  {array}  models.Event
// @Router       /api/v1/events [get]
func (h *Handler) listEvents(c *gin.Context) {
	events, err := h.services.Events.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to fetch events", "events_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// @Summary      List events for a park
// @Tags         events
// @Produce      json
// @Param        id   path     int  true  "Park id"
// @Success      200  {array}  models.Event
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/parks/{id}/events [get]
func (h *Handler) listParkEvents(c *gin.Context) {
	parkID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	events, err := h.services.Events.ListByPark(c.Request.Context(), parkID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to fetch events", "park_events_failed", err, "parkId", parkID)
		return
	}
	c.JSON(http.StatusOK, events)
}

// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      models.InsertEvent  true  "Event payload"
// @Success      201   {object}  models.Event
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/events [post]
func (h *Handler) createEvent(c *gin.Context) {
	var in models.InsertEvent
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	event, err := h.services.Events.Create(c.Request.Context(), in)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to create event", "event_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// @Summary      Sign up for an event
// @Description  Adds one signup unless the event is at capacity.
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event id"
// @Success      200  {object}  models.Event
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/events/{id}/signup [post]
func (h *Handler) signUpForEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	event, err := h.services.Events.SignUp(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		case errors.Is(err, service.ErrEventFull):
			c.JSON(http.StatusConflict, gin.H{"error": "event is full"})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, "failed to sign up", "event_signup_failed", err, "id", id)
		}
		return
	}
	c.JSON(http.StatusOK, event)
}

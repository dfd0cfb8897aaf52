package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/service"
)

// @Summary      List feedback
// @Description  Returns all feedback, newest first.
// @Tags         feedback
// @Produce      json
// @Success      200  {array}  models.Feedback
// @Router       /api/v1/feedback [get]
func (h *Handler) listFeedback(c *gin.Context) {
	feedback, err := h.services.Feedback.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to fetch feedback", "feedback_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// @Summary      List feedback for a park
// @Tags         feedback
// @Produce      json
// @Param        id   path     int  true  "Park id"
// @Success      200  {array}  models.Feedback
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/parks/{id}/feedback [get]
func (h *Handler) listParkFeedback(c *gin.Context) {
	parkID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	feedback, err := h.services.Feedback.ListByPark(c.Request.Context(), parkID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to fetch feedback", "park_feedback_failed", err, "parkId", parkID)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// @Summary      Create feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      models.InsertFeedback  true  "Feedback payload"
// @Success      201   {object}  models.Feedback
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/feedback [post]
func (h *Handler) createFeedback(c *gin.Context) {
	var in models.InsertFeedback
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	feedback, err := h.services.Feedback.Create(c.Request.Context(), in)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to create feedback", "feedback_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

// @Summary      Like feedback
// @Tags         feedback
// @Produce      json
// @Param        id   path      int  true  "Feedback id"
// @Success      200  {object}  models.Feedback
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/feedback/{id}/like [post]
func (h *Handler) likeFeedback(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	feedback, err := h.services.Feedback.Like(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "feedback not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to like feedback", "feedback_like_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

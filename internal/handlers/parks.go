package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/service"
)

const (
	errInvalidID       = "invalid id: must be an integer"
	errInvalidBodyPref = "invalid body: "
)

// parseIDParam reads an integer path parameter or replies 400.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return 0, false
	}
	return id, true
}

// logAndJSONError centralizes error logging and the error response shape.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      List parks
// @Tags         parks
// @Produce      json
// @Success      200  {array}  models.Park
// @Router       /api/v1/parks [get]
func (h *Handler) listParks(c *gin.Context) {
	parks, err := h.services.Parks.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to fetch parks", "parks_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, parks)
}

// @Summary      Get a park
// @Tags         parks
// @Produce      json
// @Param        id   path      int  true  "Park id"
// @Success      200  {object}  models.Park
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/parks/{id} [get]
func (h *Handler) getPark(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	park, err := h.services.Parks.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrParkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "park not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to fetch park", "park_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, park)
}

// @Summary      Create a park
// @Tags         parks
// @Accept       json
// @Produce      json
// @Param        body  body      models.InsertPark  true  "Park payload"
// @Success      201   {object}  models.Park
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/parks [post]
func (h *Handler) createPark(c *gin.Context) {
	var in models.InsertPark
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	park, err := h.services.Parks.Create(c.Request.Context(), in)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to create park", "park_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, park)
}

// @Summary      Update a park
// @Description  Partial update: absent fields are left untouched.
// @Tags         parks
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Park id"
// @Param        body  body      models.ParkPatch  true  "Fields to change"
// @Success      200   {object}  models.Park
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/parks/{id} [put]
func (h *Handler) updatePark(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var patch models.ParkPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	park, err := h.services.Parks.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, service.ErrParkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "park not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to update park", "park_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, park)
}

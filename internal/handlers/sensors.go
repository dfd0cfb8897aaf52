package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/service"
)

// @Summary      Sensor readings for a park
// @Description  Returns recorded readings; generates a simulated batch on first access.
// @Tags         sensors
// @Produce      json
// @Param        id   path     int  true  "Park id"
// @Success      200  {array}  models.IotSensorReading
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/parks/{id}/sensors [get]
func (h *Handler) getParkSensors(c *gin.Context) {
	parkID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	readings, err := h.services.Sensors.ForPark(c.Request.Context(), parkID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to fetch sensor data", "sensors_failed", err, "parkId", parkID)
		return
	}
	c.JSON(http.StatusOK, readings)
}

// @Summary      Record a sensor reading
// @Tags         sensors
// @Accept       json
// @Produce      json
// @Param        body  body      models.InsertSensorReading  true  "Reading payload"
// @Success      201   {object}  models.IotSensorReading
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/sensors [post]
func (h *Handler) createSensorReading(c *gin.Context) {
	var in models.InsertSensorReading
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	reading, err := h.services.Sensors.Record(c.Request.Context(), in)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to record reading", "sensor_record_failed", err)
		return
	}
	c.JSON(http.StatusCreated, reading)
}

// @Summary      Analyze park maintenance
// @Description  Runs the maintenance rules over the park's latest readings and updates its status.
// @Tags         sensors
// @Produce      json
// @Param        id   path      int  true  "Park id"
// @Success      200  {object}  service.MaintenanceReport
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/parks/{id}/maintenance/analyze [post]
func (h *Handler) analyzePark(c *gin.Context) {
	parkID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	report, err := h.services.Sensors.Analyze(c.Request.Context(), parkID)
	if err != nil {
		if errors.Is(err, service.ErrParkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "park not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to analyze maintenance", "maintenance_analyze_failed", err, "parkId", parkID)
		return
	}
	c.JSON(http.StatusOK, report)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kanestar/greener/internal/service"
)

// @Summary      Usage forecast for a park
// @Description  Returns stored predictions; generates and stores the daily forecast on first access.
// @Tags         predictions
// @Produce      json
// @Param        id   path     int  true  "Park id"
// @Success      200  {array}  models.UsagePrediction
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/parks/{id}/predictions [get]
func (h *Handler) getParkPredictions(c *gin.Context) {
	parkID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	predictions, err := h.services.Predictions.ForPark(c.Request.Context(), parkID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to fetch predictions", "predictions_failed", err, "parkId", parkID)
		return
	}
	c.JSON(http.StatusOK, predictions)
}

// @Summary      Evaluate the usage predictor
// @Description  Runs the rule-based predictor once; nothing is stored.
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Param        body  body      service.PredictionInput  true  "Evaluation point"
// @Success      200   {object}  service.PredictionOutput
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/predict [post]
func (h *Handler) predictUsage(c *gin.Context) {
	var in service.PredictionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	out, err := h.services.Predictions.Evaluate(in)
	if err != nil {
		if errors.Is(err, service.ErrInvalidForecastInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to evaluate predictor", "predict_failed", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/service"
)

func TestAnalyzePark(t *testing.T) {
	sensors := &mockSensors{analyzeResp: service.MaintenanceReport{
		ParkID: 1,
		Status: service.StatusUrgent,
		Alerts: []service.MaintenanceAlert{{Type: service.AlertTrashCollection, Severity: service.SeverityHigh}},
	}}
	r := newTestRouter(&service.Service{Sensors: sensors})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/parks/1/maintenance/analyze", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("analyze status=%d body=%s", w.Code, w.Body.String())
	}
	if sensors.lastAnalyze != 1 {
		t.Fatalf("expected analyze for park 1, got %d", sensors.lastAnalyze)
	}
	var report service.MaintenanceReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if report.Status != service.StatusUrgent || len(report.Alerts) != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestAnalyzePark_MissingParkIs404(t *testing.T) {
	sensors := &mockSensors{analyzeErr: service.ErrParkNotFound}
	r := newTestRouter(&service.Service{Sensors: sensors})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/parks/42/maintenance/analyze", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCreateSensorReading(t *testing.T) {
	sensors := &mockSensors{recordResp: models.IotSensorReading{ID: 7, ParkID: 1, SensorType: models.SensorTrashLevel, Value: "85"}}
	r := newTestRouter(&service.Service{Sensors: sensors})

	body := bytes.NewBufferString(`{"parkId":1,"sensorType":"trash_level","value":"85"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sensors", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("record status=%d body=%s", w.Code, w.Body.String())
	}

	// Missing value → binding failure
	req = httptest.NewRequest(http.MethodPost, "/api/v1/sensors", bytes.NewBufferString(`{"parkId":1,"sensorType":"trash_level"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete reading, got %d", w.Code)
	}
}

func TestPredictUsageEndpoint(t *testing.T) {
	preds := &mockPredictions{evalResp: service.PredictionOutput{
		UsageLevel: "high",
		Confidence: 95,
		Factors:    []string{"Peak daytime hours", "Weekend increased activity"},
	}}
	r := newTestRouter(&service.Service{Predictions: preds})

	body := bytes.NewBufferString(`{"timeOfDay":10,"dayOfWeek":6,"weather":"sunny","temperature":75}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("predict status=%d body=%s", w.Code, w.Body.String())
	}
	if preds.lastEval.TimeOfDay != 10 || preds.lastEval.DayOfWeek != 6 || preds.lastEval.Weather != "sunny" {
		t.Fatalf("input not passed through: %+v", preds.lastEval)
	}
	if preds.lastEval.Temperature == nil || *preds.lastEval.Temperature != 75 {
		t.Fatalf("temperature not passed through: %+v", preds.lastEval.Temperature)
	}

	// Out-of-range input surfaces as 400.
	preds.evalErr = service.ErrInvalidForecastInput
	req = httptest.NewRequest(http.MethodPost, "/api/v1/predict", bytes.NewBufferString(`{"timeOfDay":12,"dayOfWeek":0}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid input, got %d", w.Code)
	}
}

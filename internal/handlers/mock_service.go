package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/service"
)

// ---- Service Mocks ----

type mockParks struct {
	listResp   []models.Park
	getResp    models.Park
	getErr     error
	createResp models.Park
	updateResp models.Park
	updateErr  error

	lastGetID    int
	lastCreate   models.InsertPark
	lastUpdateID int
	lastPatch    models.ParkPatch
}

func (m *mockParks) List(ctx context.Context) ([]models.Park, error) {
	return m.listResp, nil
}
func (m *mockParks) Get(ctx context.Context, id int) (models.Park, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}
func (m *mockParks) Create(ctx context.Context, in models.InsertPark) (models.Park, error) {
	m.lastCreate = in
	return m.createResp, nil
}
func (m *mockParks) Update(ctx context.Context, id int, patch models.ParkPatch) (models.Park, error) {
	m.lastUpdateID = id
	m.lastPatch = patch
	return m.updateResp, m.updateErr
}

type mockEvents struct {
	listResp    []models.Event
	byParkResp  []models.Event
	createResp  models.Event
	signUpResp  models.Event
	signUpErr   error
	signUpCalls int
	lastSignUp  int
}

func (m *mockEvents) List(ctx context.Context) ([]models.Event, error) {
	return m.listResp, nil
}
func (m *mockEvents) ListByPark(ctx context.Context, parkID int) ([]models.Event, error) {
	return m.byParkResp, nil
}
func (m *mockEvents) Create(ctx context.Context, in models.InsertEvent) (models.Event, error) {
	return m.createResp, nil
}
func (m *mockEvents) SignUp(ctx context.Context, id int) (models.Event, error) {
	m.signUpCalls++
	m.lastSignUp = id
	return m.signUpResp, m.signUpErr
}

type mockFeedback struct {
	listResp   []models.Feedback
	byParkResp []models.Feedback
	createResp models.Feedback
	likeResp   models.Feedback
	likeErr    error
}

func (m *mockFeedback) List(ctx context.Context) ([]models.Feedback, error) {
	return m.listResp, nil
}
func (m *mockFeedback) ListByPark(ctx context.Context, parkID int) ([]models.Feedback, error) {
	return m.byParkResp, nil
}
func (m *mockFeedback) Create(ctx context.Context, in models.InsertFeedback) (models.Feedback, error) {
	return m.createResp, nil
}
func (m *mockFeedback) Like(ctx context.Context, id int) (models.Feedback, error) {
	return m.likeResp, m.likeErr
}

type mockPredictions struct {
	forParkResp []models.UsagePrediction
	evalResp    service.PredictionOutput
	evalErr     error
	lastEval    service.PredictionInput
}

func (m *mockPredictions) ForPark(ctx context.Context, parkID int) ([]models.UsagePrediction, error) {
	return m.forParkResp, nil
}
func (m *mockPredictions) Evaluate(in service.PredictionInput) (service.PredictionOutput, error) {
	m.lastEval = in
	return m.evalResp, m.evalErr
}

type mockSensors struct {
	forParkResp []models.IotSensorReading
	recordResp  models.IotSensorReading
	analyzeResp service.MaintenanceReport
	analyzeErr  error
	lastAnalyze int
}

func (m *mockSensors) ForPark(ctx context.Context, parkID int) ([]models.IotSensorReading, error) {
	return m.forParkResp, nil
}
func (m *mockSensors) Record(ctx context.Context, in models.InsertSensorReading) (models.IotSensorReading, error) {
	return m.recordResp, nil
}
func (m *mockSensors) Analyze(ctx context.Context, parkID int) (service.MaintenanceReport, error) {
	m.lastAnalyze = parkID
	return m.analyzeResp, m.analyzeErr
}

type mockSimulator struct{}

func (m *mockSimulator) Run(ctx context.Context, tick time.Duration) {}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

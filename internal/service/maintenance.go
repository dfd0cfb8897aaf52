package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Kanestar/greener/internal/models"
)

// Maintenance statuses derived from sensor alerts.
const (
	StatusGood           = "good"
	StatusNeedsAttention = "needs_attention"
	StatusUrgent         = "urgent"
)

// Alert types and severities.
const (
	AlertTrashCollection = "trash_collection"
	AlertGrassCutting    = "grass_cutting"
	AlertEquipmentCheck  = "equipment_check"

	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Thresholds for the per-sensor alert rules.
const (
	trashUrgentPct = 80
	trashDuePct    = 60
	grassUrgentCm  = 20
	grassDueCm     = 15
	airQualityAQI  = 200
)

// MaintenanceAlert is one actionable finding derived from a sensor reading.
type MaintenanceAlert struct {
	ParkID   int    `json:"parkId"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// MaintenanceReport is the result of analyzing a park's sensor batch.
type MaintenanceReport struct {
	ID         string             `json:"id"`
	ParkID     int                `json:"parkId"`
	Status     string             `json:"status"`
	Alerts     []MaintenanceAlert `json:"alerts"`
	AnalyzedAt time.Time          `json:"analyzedAt"`
}

// AnalyzeReadings derives maintenance alerts from a batch of readings for
// one park. Each rule looks at the first reading of its sensor type; other
// sensor types are ignored. Values that do not parse as integers produce no
// alert. Pure: no clock, no store access.
func AnalyzeReadings(readings []models.IotSensorReading) []MaintenanceAlert {
	alerts := []MaintenanceAlert{}
	if len(readings) == 0 {
		return alerts
	}
	parkID := readings[0].ParkID

	if level, ok := firstValue(readings, models.SensorTrashLevel); ok {
		switch {
		case level >= trashUrgentPct:
			alerts = append(alerts, MaintenanceAlert{
				ParkID:   parkID,
				Type:     AlertTrashCollection,
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("Trash bins are %d%% full - urgent collection needed", level),
			})
		case level >= trashDuePct:
			alerts = append(alerts, MaintenanceAlert{
				ParkID:   parkID,
				Type:     AlertTrashCollection,
				Severity: SeverityMedium,
				Message:  fmt.Sprintf("Trash bins are %d%% full - collection due soon", level),
			})
		}
	}

	if height, ok := firstValue(readings, models.SensorGrassHeight); ok {
		switch {
		case height >= grassUrgentCm:
			alerts = append(alerts, MaintenanceAlert{
				ParkID:   parkID,
				Type:     AlertGrassCutting,
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("Grass height is %dcm - cutting needed", height),
			})
		case height >= grassDueCm:
			alerts = append(alerts, MaintenanceAlert{
				ParkID:   parkID,
				Type:     AlertGrassCutting,
				Severity: SeverityMedium,
				Message:  fmt.Sprintf("Grass height is %dcm - cutting due soon", height),
			})
		}
	}

	if aqi, ok := firstValue(readings, models.SensorAirQuality); ok && aqi >= airQualityAQI {
		alerts = append(alerts, MaintenanceAlert{
			ParkID:   parkID,
			Type:     AlertEquipmentCheck,
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("Poor air quality (%d AQI) - equipment check needed", aqi),
		})
	}

	return alerts
}

// MaintenanceStatusFor collapses a set of alerts into the park-level status.
func MaintenanceStatusFor(alerts []MaintenanceAlert) string {
	status := StatusGood
	for _, a := range alerts {
		if a.Severity == SeverityHigh {
			return StatusUrgent
		}
		if a.Severity == SeverityMedium {
			status = StatusNeedsAttention
		}
	}
	return status
}

// firstValue finds the first reading of the given type and parses its value.
func firstValue(readings []models.IotSensorReading, sensorType string) (int, bool) {
	for _, r := range readings {
		if r.SensorType != sensorType {
			continue
		}
		v, err := strconv.Atoi(r.Value)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

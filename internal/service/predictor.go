package service

import (
	"errors"
	"time"
)

// Usage levels produced by the predictor.
const (
	UsageLow    = "low"
	UsageMedium = "medium"
	UsageHigh   = "high"
)

// Scoring bands for the rule-based usage predictor. The bands are additive
// and independent; a trained model would replace this table wholesale.
const (
	scorePeakHours   = 3 // 10:00-16:00
	scoreEvening     = 2 // 17:00-20:00
	scoreMorning     = 1 // 06:00-09:00
	scoreWeekend     = 2
	scoreWeekday     = 1
	scoreGoodWeather = 2
	scoreBadWeather  = -2
	scoreOptimalTemp = 1
	scoreExtremeTemp = -1

	baseConfidence      = 75
	confidencePerFactor = 5
	maxConfidence       = 95

	highThreshold   = 5
	mediumThreshold = 2
)

// Factor labels reported alongside a prediction. The dashboard displays
// them verbatim.
const (
	factorPeakHours   = "Peak daytime hours"
	factorEvening     = "Evening recreation time"
	factorMorning     = "Morning activity"
	factorWeekend     = "Weekend activity"
	factorWeekday     = "Weekday usage"
	factorGoodWeather = "Good weather conditions"
	factorBadWeather  = "Poor weather conditions"
	factorNeutral     = "Neutral weather"
	factorOptimalTemp = "Optimal temperature"
	factorExtremeTemp = "Extreme temperature"
)

// PredictionInput is one evaluation point for the usage predictor.
type PredictionInput struct {
	ParkID      int    `json:"parkId"`
	TimeOfDay   int    `json:"timeOfDay" binding:"min=0,max=23"` // hour, 0-23
	DayOfWeek   int    `json:"dayOfWeek" binding:"min=0,max=6"`  // 0 = Sunday
	Weather     string `json:"weather,omitempty"`                // sunny|clear|cloudy|rain|storm, "" = unknown
	Temperature *int   `json:"temperature,omitempty"`            // °F, nil = unknown
}

// PredictionOutput is the predictor's classification with its reasoning.
type PredictionOutput struct {
	UsageLevel string   `json:"usageLevel"`
	Confidence int      `json:"confidence"`
	Factors    []string `json:"factors"`
}

// SlotForecast pairs a prediction with its display time slot.
type SlotForecast struct {
	TimeSlot string `json:"timeSlot"`
	PredictionOutput
}

// PredictUsage maps a (time, day, weather, temperature) tuple to a coarse
// usage level. Pure: identical input always yields identical output.
func PredictUsage(in PredictionInput) PredictionOutput {
	score := 0
	factors := []string{}

	switch {
	case in.TimeOfDay >= 10 && in.TimeOfDay <= 16:
		score += scorePeakHours
		factors = append(factors, factorPeakHours)
	case in.TimeOfDay >= 17 && in.TimeOfDay <= 20:
		score += scoreEvening
		factors = append(factors, factorEvening)
	case in.TimeOfDay >= 6 && in.TimeOfDay <= 9:
		score += scoreMorning
		factors = append(factors, factorMorning)
	}

	if in.DayOfWeek == 0 || in.DayOfWeek == 6 {
		score += scoreWeekend
		factors = append(factors, factorWeekend)
	} else if in.DayOfWeek >= 1 && in.DayOfWeek <= 5 {
		score += scoreWeekday
		factors = append(factors, factorWeekday)
	}

	switch in.Weather {
	case "sunny", "clear":
		score += scoreGoodWeather
		factors = append(factors, factorGoodWeather)
	case "rain", "storm":
		score += scoreBadWeather
		factors = append(factors, factorBadWeather)
	case "cloudy":
		// no score contribution, but the factor is still reported
		factors = append(factors, factorNeutral)
	}

	if t := in.Temperature; t != nil {
		if *t >= 70 && *t <= 85 {
			score += scoreOptimalTemp
			factors = append(factors, factorOptimalTemp)
		} else if *t < 50 || *t > 90 {
			score += scoreExtremeTemp
			factors = append(factors, factorExtremeTemp)
		}
	}

	level := UsageLow
	switch {
	case score >= highThreshold:
		level = UsageHigh
	case score >= mediumThreshold:
		level = UsageMedium
	}

	confidence := baseConfidence + len(factors)*confidencePerFactor
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return PredictionOutput{
		UsageLevel: level,
		Confidence: confidence,
		Factors:    factors,
	}
}

// Forecast slot defaults: the daily batch assumes a pleasant day.
const (
	forecastWeather     = "sunny"
	forecastTemperature = 75
)

// forecastSlots are the four fixed evaluation points of the daily forecast.
var forecastSlots = []struct {
	hour  int
	label string
}{
	{10, "10:00 AM - 12:00 PM"},
	{14, "2:00 PM - 4:00 PM"},
	{18, "6:00 PM - 8:00 PM"},
	{20, "8:00 PM - 10:00 PM"},
}

// DailyForecast evaluates the predictor at the four fixed slots for the
// given date's weekday.
func DailyForecast(parkID int, date time.Time) []SlotForecast {
	day := int(date.Weekday())
	temp := forecastTemperature

	out := make([]SlotForecast, 0, len(forecastSlots))
	for _, slot := range forecastSlots {
		p := PredictUsage(PredictionInput{
			ParkID:      parkID,
			TimeOfDay:   slot.hour,
			DayOfWeek:   day,
			Weather:     forecastWeather,
			Temperature: &temp,
		})
		out = append(out, SlotForecast{TimeSlot: slot.label, PredictionOutput: p})
	}
	return out
}

// ErrInvalidForecastInput reports an out-of-range hour or weekday.
var ErrInvalidForecastInput = errors.New("timeOfDay must be 0-23 and dayOfWeek 0-6")

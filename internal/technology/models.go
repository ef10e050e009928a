package technology

import (
	"math"
	"time"

	"digitaldivide/pkg/domain"
	dErrors "digitaldivide/pkg/domain-errors"
)

// Access is a household's technology access record, a one-to-one companion to
// the household entity. Its adoption score is computed on demand and never
// persisted; the stored fields are the raw survey answers only.
//
// Invariants:
//   - HouseholdID is set before first save and at most one record exists per
//     household
//   - Device counts are non-negative
type Access struct {
	ID                  domain.TechnologyAccessID `json:"id"`
	HouseholdID         domain.HouseholdID        `json:"household_id"`
	HasInternet         bool                      `json:"has_internet"`
	ConnectionType      domain.ConnectionType     `json:"connection_type"`
	InternetSpeedMbps   *float64                  `json:"internet_speed_mbps,omitempty"`
	NumSmartphones      int                       `json:"num_smartphones"`
	NumComputers        int                       `json:"num_computers"`
	NumTablets          int                       `json:"num_tablets"`
	HasSmartTV          bool                      `json:"has_smart_tv"`
	HasSmartSpeaker     bool                      `json:"has_smart_speaker"`
	HasSmartThermostat  bool                      `json:"has_smart_thermostat"`
	HasGamingConsole    bool                      `json:"has_gaming_console"`
	HasStreamingService bool                      `json:"has_streaming_service"`
	CreatedAt           time.Time                 `json:"created_at"`
	UpdatedAt           time.Time                 `json:"updated_at"`
}

// TotalDevices sums smartphones, computers and tablets.
func (a *Access) TotalDevices() int {
	return a.NumSmartphones + a.NumComputers + a.NumTablets
}

// HasAnySmartDevices reports whether any smart home device is present.
func (a *Access) HasAnySmartDevices() bool {
	return a.HasSmartTV || a.HasSmartSpeaker || a.HasSmartThermostat
}

// AdoptionScore computes the technology adoption score (0-10, one decimal):
// up to 3 points for internet, 3 for device count, 2 for smart home devices,
// 2 for entertainment technology.
//
// The broadband bonus also matches a "fiber" connection type. "fiber" is not
// a declared ConnectionType value, so that arm is unreachable through
// validated records; it is kept because some legacy field exports carried it.
func (a *Access) AdoptionScore() float64 {
	score := 0.0

	if a.HasInternet {
		score += 2
		if a.ConnectionType == domain.ConnectionBroadband || a.ConnectionType == "fiber" {
			score++
		}
	}

	score += min(3, float64(a.TotalDevices())/2)

	smartDevices := 0
	for _, has := range []bool{a.HasSmartTV, a.HasSmartSpeaker, a.HasSmartThermostat} {
		if has {
			smartDevices++
		}
	}
	score += min(2, float64(smartDevices))

	additionalTech := 0
	for _, has := range []bool{a.HasGamingConsole, a.HasStreamingService} {
		if has {
			additionalTech++
		}
	}
	score += min(2, float64(additionalTech))

	return math.Round(score*10) / 10
}

// Validate checks the invariants required before a record may be saved.
func (a *Access) Validate() error {
	if a.ID.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "technology access id is required")
	}
	if a.HouseholdID.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "household id is required")
	}
	if !a.ConnectionType.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid connection type: "+a.ConnectionType.String())
	}
	if a.NumSmartphones < 0 || a.NumComputers < 0 || a.NumTablets < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "device counts cannot be negative")
	}
	if a.InternetSpeedMbps != nil && *a.InternetSpeedMbps < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "internet speed cannot be negative")
	}
	return nil
}

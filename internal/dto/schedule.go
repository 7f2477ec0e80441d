package dto

import "github.com/iiitdwd/timetable-api/internal/models"

// GenerateScheduleRequest selects a solving algorithm and its tuning knobs.
// An empty algorithm falls back to the configured default; config keys not
// recognised by the chosen algorithm are ignored.
type GenerateScheduleRequest struct {
	Algorithm string         `json:"algorithm" validate:"omitempty,oneof=constraint_satisfaction genetic"`
	Config    map[string]any `json:"config"`
}

// GenerateScheduleResponse returns the generated schedule with its quality
// breakdown.
type GenerateScheduleResponse struct {
	Schedule      *models.Schedule `json:"schedule"`
	QualityScore  float64          `json:"quality_score"`
	ConflictCount int              `json:"conflict_count"`
	Feasible      bool             `json:"feasible"`
	ElapsedMS     int64            `json:"elapsed_ms"`
}

// ValidateScheduleResponse reports hard-constraint status for a stored
// schedule.
type ValidateScheduleResponse struct {
	ScheduleID    string  `json:"schedule_id"`
	Valid         bool    `json:"valid"`
	ConflictCount int     `json:"conflict_count"`
	QualityScore  float64 `json:"quality_score"`
}

// DataSummaryResponse reports how many entities are loaded.
type DataSummaryResponse struct {
	Courses    int `json:"courses"`
	Professors int `json:"professors"`
	Rooms      int `json:"rooms"`
	TimeSlots  int `json:"time_slots"`
	Schedules  int `json:"schedules"`
}

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DayOfWeek enumerates schedulable days.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Valid reports whether the value is a known day.
func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// SlotType enumerates the kinds of time slots on the grid.
type SlotType string

const (
	SlotTypeRegular  SlotType = "regular"
	SlotTypeBreak    SlotType = "break"
	SlotTypeLunch    SlotType = "lunch"
	SlotTypeExtended SlotType = "extended"
)

// Valid reports whether the value is a known slot type.
func (t SlotType) Valid() bool {
	switch t {
	case SlotTypeRegular, SlotTypeBreak, SlotTypeLunch, SlotTypeExtended:
		return true
	}
	return false
}

// Clock is a wall-clock time of day, serialised as "HH:MM".
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM" into a Clock.
func ParseClock(raw string) (Clock, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return Clock{}, fmt.Errorf("invalid clock value %q", raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock value %q", raw)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock value %q", raw)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("clock value %q out of range", raw)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// Minutes returns minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is strictly earlier than other.
func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}

// String renders the clock as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MarshalJSON encodes the clock as a quoted "HH:MM" string.
func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a quoted "HH:MM" string.
func (c *Clock) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseClock(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// TimeSlot represents one schedulable period on the weekly grid.
type TimeSlot struct {
	ID              string    `json:"id"`
	Day             DayOfWeek `json:"day"`
	StartTime       Clock     `json:"start_time"`
	EndTime         Clock     `json:"end_time"`
	SlotType        SlotType  `json:"slot_type"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active"`
	BreakAfter      bool      `json:"break_after"`
	Priority        int       `json:"priority"`
	Name            string    `json:"name,omitempty"`
}

// NewTimeSlot builds a slot, deriving the duration from the start/end pair
// (wrapping to the next day when end <= start) and a default display name.
func NewTimeSlot(id string, day DayOfWeek, start, end Clock, slotType SlotType) *TimeSlot {
	duration := end.Minutes() - start.Minutes()
	if duration <= 0 {
		duration += 24 * 60
	}
	return &TimeSlot{
		ID:              id,
		Day:             day,
		StartTime:       start,
		EndTime:         end,
		SlotType:        slotType,
		DurationMinutes: duration,
		IsActive:        true,
		Priority:        1,
		Name:            fmt.Sprintf("%s-%s", start, end),
	}
}

// OverlapsWith reports whether two slots on the same day overlap in time.
func (ts *TimeSlot) OverlapsWith(other *TimeSlot) bool {
	if ts.Day != other.Day {
		return false
	}
	return ts.StartTime.Before(other.EndTime) && other.StartTime.Before(ts.EndTime)
}

// IsAdjacentTo reports whether two slots on the same day share a boundary.
func (ts *TimeSlot) IsAdjacentTo(other *TimeSlot) bool {
	if ts.Day != other.Day {
		return false
	}
	return ts.EndTime == other.StartTime || ts.StartTime == other.EndTime
}

// CanAccommodateDuration reports whether the slot is long enough for a
// session of the given length.
func (ts *TimeSlot) CanAccommodateDuration(requiredMinutes int) bool {
	return ts.DurationMinutes >= requiredMinutes
}

// SuitableForCourseType reports whether a course of the given type may be
// placed on the slot. Break and lunch slots are never assignable; laboratory
// courses accept regular or extended slots, everything else only regular.
func (ts *TimeSlot) SuitableForCourseType(courseType CourseType) bool {
	if !ts.IsActive {
		return false
	}
	if ts.SlotType == SlotTypeBreak || ts.SlotType == SlotTypeLunch {
		return false
	}
	if courseType == CourseTypeLaboratory {
		return ts.SlotType == SlotTypeRegular || ts.SlotType == SlotTypeExtended
	}
	return ts.SlotType == SlotTypeRegular
}

// TimePreferenceScore maps the slot's start hour onto a fixed desirability
// scale: mid-morning is best, evenings worst.
func (ts *TimeSlot) TimePreferenceScore() float64 {
	hour := ts.StartTime.Hour
	switch {
	case hour >= 9 && hour < 12:
		return 1.0
	case hour >= 12 && hour < 14:
		return 0.8
	case hour >= 14 && hour < 17:
		return 0.6
	case hour >= 8 && hour < 9:
		return 0.4
	default:
		return 0.2
	}
}

// FormatTimeRange renders the slot's time span for display.
func (ts *TimeSlot) FormatTimeRange() string {
	return fmt.Sprintf("%s - %s", ts.StartTime, ts.EndTime)
}

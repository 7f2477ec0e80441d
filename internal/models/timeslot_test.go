package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, raw string) Clock {
	t.Helper()
	c, err := ParseClock(raw)
	require.NoError(t, err)
	return c
}

func TestParseClock(t *testing.T) {
	c := mustClock(t, "09:30")
	assert.Equal(t, 9, c.Hour)
	assert.Equal(t, 30, c.Minute)
	assert.Equal(t, "09:30", c.String())

	_, err := ParseClock("9am")
	assert.Error(t, err)
	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("10:61")
	assert.Error(t, err)
}

func TestClockJSONRoundTrip(t *testing.T) {
	c := mustClock(t, "14:05")
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"14:05"`, string(data))

	var decoded Clock
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, c, decoded)
}

func TestNewTimeSlotDuration(t *testing.T) {
	slot := NewTimeSlot("ts1", Monday, mustClock(t, "09:00"), mustClock(t, "10:30"), SlotTypeRegular)
	assert.Equal(t, 90, slot.DurationMinutes)
	assert.True(t, slot.IsActive)
	assert.Equal(t, "09:00-10:30", slot.Name)

	// End at or before start wraps into the next day.
	overnight := NewTimeSlot("ts2", Monday, mustClock(t, "23:00"), mustClock(t, "01:00"), SlotTypeExtended)
	assert.Equal(t, 120, overnight.DurationMinutes)
}

func TestOverlapsWith(t *testing.T) {
	a := NewTimeSlot("a", Monday, mustClock(t, "09:00"), mustClock(t, "10:00"), SlotTypeRegular)
	b := NewTimeSlot("b", Monday, mustClock(t, "09:30"), mustClock(t, "10:30"), SlotTypeRegular)
	c := NewTimeSlot("c", Monday, mustClock(t, "10:00"), mustClock(t, "11:00"), SlotTypeRegular)
	d := NewTimeSlot("d", Tuesday, mustClock(t, "09:00"), mustClock(t, "10:00"), SlotTypeRegular)

	assert.True(t, a.OverlapsWith(b))
	assert.False(t, a.OverlapsWith(c))
	assert.True(t, a.IsAdjacentTo(c))
	assert.False(t, a.OverlapsWith(d))
	assert.False(t, a.IsAdjacentTo(d))
}

func TestSuitableForCourseType(t *testing.T) {
	regular := NewTimeSlot("r", Monday, mustClock(t, "09:00"), mustClock(t, "10:00"), SlotTypeRegular)
	extended := NewTimeSlot("e", Monday, mustClock(t, "14:00"), mustClock(t, "17:00"), SlotTypeExtended)
	lunch := NewTimeSlot("l", Monday, mustClock(t, "12:00"), mustClock(t, "13:00"), SlotTypeLunch)

	assert.True(t, regular.SuitableForCourseType(CourseTypeLecture))
	assert.False(t, extended.SuitableForCourseType(CourseTypeLecture))
	assert.True(t, extended.SuitableForCourseType(CourseTypeLaboratory))
	assert.True(t, regular.SuitableForCourseType(CourseTypeLaboratory))
	assert.False(t, lunch.SuitableForCourseType(CourseTypeLecture))

	regular.IsActive = false
	assert.False(t, regular.SuitableForCourseType(CourseTypeLecture))
}

func TestTimePreferenceScore(t *testing.T) {
	cases := []struct {
		start string
		want  float64
	}{
		{"09:00", 1.0},
		{"11:59", 1.0},
		{"12:00", 0.8},
		{"13:30", 0.8},
		{"14:00", 0.6},
		{"16:00", 0.6},
		{"08:00", 0.4},
		{"07:00", 0.2},
		{"17:00", 0.2},
	}
	for _, tc := range cases {
		slot := NewTimeSlot("ts", Monday, mustClock(t, tc.start), mustClock(t, "18:00"), SlotTypeRegular)
		assert.Equal(t, tc.want, slot.TimePreferenceScore(), "start %s", tc.start)
	}
}

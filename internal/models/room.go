package models

import "strings"

// RoomType enumerates the kinds of teaching spaces.
type RoomType string

const (
	RoomTypeClassroom    RoomType = "classroom"
	RoomTypeLaboratory   RoomType = "laboratory"
	RoomTypeComputerLab  RoomType = "computer_lab"
	RoomTypeSeminarHall  RoomType = "seminar_hall"
	RoomTypeAuditorium   RoomType = "auditorium"
	RoomTypeTutorialRoom RoomType = "tutorial_room"
)

// Valid reports whether the value is a known room type.
func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeClassroom, RoomTypeLaboratory, RoomTypeComputerLab,
		RoomTypeSeminarHall, RoomTypeAuditorium, RoomTypeTutorialRoom:
		return true
	}
	return false
}

// RoomFeature enumerates recognised room equipment tags.
type RoomFeature string

const (
	FeatureProjector       RoomFeature = "projector"
	FeatureWhiteboard      RoomFeature = "whiteboard"
	FeatureBlackboard      RoomFeature = "blackboard"
	FeatureSmartBoard      RoomFeature = "smart_board"
	FeatureComputers       RoomFeature = "computers"
	FeatureAirConditioning RoomFeature = "air_conditioning"
	FeatureAudioSystem     RoomFeature = "audio_system"
	FeatureMicrophone      RoomFeature = "microphone"
	FeatureInternet        RoomFeature = "internet"
	FeaturePowerOutlets    RoomFeature = "power_outlets"
	FeatureLabEquipment    RoomFeature = "laboratory_equipment"
)

var knownFeatures = map[RoomFeature]struct{}{
	FeatureProjector: {}, FeatureWhiteboard: {}, FeatureBlackboard: {},
	FeatureSmartBoard: {}, FeatureComputers: {}, FeatureAirConditioning: {},
	FeatureAudioSystem: {}, FeatureMicrophone: {}, FeatureInternet: {},
	FeaturePowerOutlets: {}, FeatureLabEquipment: {},
}

// ParseRoomFeature matches a free-form equipment string against the known
// feature tags, case-insensitively.
func ParseRoomFeature(raw string) (RoomFeature, bool) {
	feature := RoomFeature(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := knownFeatures[feature]
	return feature, ok
}

// CoerceFeatures converts equipment strings to feature tags, silently
// dropping strings that match no known feature.
func CoerceFeatures(equipment []string) []RoomFeature {
	features := make([]RoomFeature, 0, len(equipment))
	for _, raw := range equipment {
		if feature, ok := ParseRoomFeature(raw); ok {
			features = append(features, feature)
		}
	}
	return features
}

// Room represents a physical teaching space.
type Room struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Building            string              `json:"building"`
	Floor               int                 `json:"floor"`
	Capacity            int                 `json:"capacity"`
	RoomType            RoomType            `json:"room_type"`
	Features            []RoomFeature       `json:"features"`
	IsAccessible        bool                `json:"is_accessible"`
	IsAvailable         bool                `json:"is_available"`
	DedicatedDepartment string              `json:"dedicated_department,omitempty"`
	BookingPriority     int                 `json:"booking_priority"`
	Notes               string              `json:"notes,omitempty"`
	MaintenanceSlots    map[string]struct{} `json:"-"`
}

// NewRoom builds a room with explicit defaults.
func NewRoom(id, name, building string, floor, capacity int, roomType RoomType) *Room {
	return &Room{
		ID:               id,
		Name:             name,
		Building:         building,
		Floor:            floor,
		Capacity:         capacity,
		RoomType:         roomType,
		Features:         []RoomFeature{},
		IsAccessible:     true,
		IsAvailable:      true,
		BookingPriority:  1,
		MaintenanceSlots: make(map[string]struct{}),
	}
}

// HasFeature reports whether the room carries the feature.
func (r *Room) HasFeature(feature RoomFeature) bool {
	for _, f := range r.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// HasAllFeatures reports whether the room carries every required feature.
func (r *Room) HasAllFeatures(required []RoomFeature) bool {
	for _, feature := range required {
		if !r.HasFeature(feature) {
			return false
		}
	}
	return true
}

// IsSuitableForCourse checks availability, capacity, room-type compatibility
// and equipment coverage. Equipment strings that match no known feature are
// ignored rather than failing the check.
func (r *Room) IsSuitableForCourse(courseType CourseType, requiredCapacity int, requiredEquipment []string) bool {
	if !r.IsAvailable {
		return false
	}
	if r.Capacity < requiredCapacity {
		return false
	}
	if courseType == CourseTypeLaboratory {
		if r.RoomType != RoomTypeLaboratory && r.RoomType != RoomTypeComputerLab {
			return false
		}
	}
	if len(requiredEquipment) > 0 {
		if !r.HasAllFeatures(CoerceFeatures(requiredEquipment)) {
			return false
		}
	}
	return true
}

// IsAvailableAt reports whether the room can be used at the slot. A room that
// is unavailable overall is unavailable at every slot.
func (r *Room) IsAvailableAt(timeSlotID string) bool {
	if !r.IsAvailable {
		return false
	}
	_, maintenance := r.MaintenanceSlots[timeSlotID]
	return !maintenance
}

// AddMaintenanceSlot blocks a slot for maintenance.
func (r *Room) AddMaintenanceSlot(timeSlotID string) {
	r.MaintenanceSlots[timeSlotID] = struct{}{}
}

// RemoveMaintenanceSlot unblocks a maintenance slot.
func (r *Room) RemoveMaintenanceSlot(timeSlotID string) {
	delete(r.MaintenanceSlots, timeSlotID)
}

// UtilizationScore returns assigned/capacity clamped to [0,1].
func (r *Room) UtilizationScore(assignedCapacity int) float64 {
	if r.Capacity == 0 {
		return 0.0
	}
	ratio := float64(assignedCapacity) / float64(r.Capacity)
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}

// SuitabilityScore rates how well the room fits a course requirement on a
// 0..1 scale: 0 when unsuitable, otherwise a 0.5 base plus bonuses for exact
// room-type match and close capacity utilisation, capped at 1.0.
func (r *Room) SuitabilityScore(courseType CourseType, capacityNeeded int, requiredEquipment []string) float64 {
	if !r.IsSuitableForCourse(courseType, capacityNeeded, requiredEquipment) {
		return 0.0
	}

	score := 0.5

	if courseType == CourseTypeLaboratory && (r.RoomType == RoomTypeLaboratory || r.RoomType == RoomTypeComputerLab) {
		score += 0.3
	} else if courseType == CourseTypeLecture && r.RoomType == RoomTypeClassroom {
		score += 0.3
	}

	if capacityNeeded > 0 && r.Capacity > 0 {
		ratio := float64(capacityNeeded) / float64(r.Capacity)
		if ratio >= 0.7 && ratio <= 0.9 {
			score += 0.2
		} else if ratio > 0.9 {
			score += 0.1
		}
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

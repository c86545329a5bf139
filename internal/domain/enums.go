package domain

type EventType string

const (
	EventAssignment EventType = "assignment"
	EventMidterm    EventType = "midterm"
	EventFinal      EventType = "final"
	EventQuiz       EventType = "quiz"
	EventProject    EventType = "project"
	EventOther      EventType = "other"
)

// ValidEventTypes is the canonical set of accepted event types.
var ValidEventTypes = map[EventType]bool{
	EventAssignment: true, EventMidterm: true, EventFinal: true,
	EventQuiz: true, EventProject: true, EventOther: true,
}

type EffortLevel string

const (
	EffortLow      EffortLevel = "low"
	EffortMedium   EffortLevel = "medium"
	EffortHigh     EffortLevel = "high"
	EffortCritical EffortLevel = "critical"
)

// ValidEffortLevels is the canonical set of accepted effort levels.
var ValidEffortLevels = map[EffortLevel]bool{
	EffortLow: true, EffortMedium: true, EffortHigh: true, EffortCritical: true,
}

// Timer modes. ModeCustom sessions carry user-chosen durations.
const (
	ModePomodoro = "pomodoro"
	ModeDeepWork = "deep-work"
	ModeCustom   = "custom"
)

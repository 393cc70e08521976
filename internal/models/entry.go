package models

// Context is the situational tag attached to a check-in.
type Context string

const (
	ContextWakingUp    Context = "waking-up"
	ContextWork        Context = "work"
	ContextEvening     Context = "evening"
	ContextBeforeSleep Context = "before-sleep"
	ContextFamily      Context = "family"
	ContextSocial      Context = "social"
)

// Contexts lists every valid check-in context in display order.
func Contexts() []Context {
	return []Context{
		ContextWakingUp,
		ContextWork,
		ContextEvening,
		ContextBeforeSleep,
		ContextFamily,
		ContextSocial,
	}
}

// Valid reports whether c is one of the known check-in contexts.
func (c Context) Valid() bool {
	for _, known := range Contexts() {
		if c == known {
			return true
		}
	}
	return false
}

// JournalEntry is one check-in and its stored assessment. Entries are
// immutable after creation except for Image, which may be cleared when a
// write fails on payload size.
type JournalEntry struct {
	ID        string      `json:"id"`
	Timestamp int64       `json:"timestamp"` // epoch milliseconds
	DayNumber int         `json:"day_number"`
	Context   Context     `json:"context"`
	Insight   InsightData `json:"insight"`
	Image     string      `json:"image,omitempty"` // base64-encoded photo, empty when dropped
}

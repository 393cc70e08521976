// Package session is the finite-state controller sequencing a check-in
// journey: intro, context selection, capture, analysis, result, and the
// history/settings/chat surfaces around it. States and events are closed
// unions and every change goes through a single transition function, so an
// illegal step (a chat without a result, a second capture while one is in
// flight) is an error instead of a silent misstate.
package session

import (
	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/models"
)

// State is the sealed union of session states.
type State interface {
	Name() string
	sealedState()
}

// Intro is the initial state and the hub the outer surfaces return to.
type Intro struct{}

// ContextSelect is the situational-tag picker.
type ContextSelect struct{}

// Analyzing waits for the user to capture a photo for the chosen context.
type Analyzing struct {
	Context models.Context
}

// Loading has an analysis in flight. Generation identifies the in-flight
// call; a completion event carrying an older generation is discarded.
type Loading struct {
	Context    models.Context
	Generation int
}

// Result shows the last successful assessment.
type Result struct {
	Insight models.InsightData
}

// Error shows a classified analysis failure. The user retries explicitly.
type Error struct {
	Kind errors.Kind
}

// History is the day-grouped timeline view.
type History struct{}

// Settings is the settings surface.
type Settings struct{}

// Chat is a follow-up conversation about the last assessment.
type Chat struct {
	Insight models.InsightData
}

func (Intro) Name() string         { return "intro" }
func (ContextSelect) Name() string { return "context-select" }
func (Analyzing) Name() string     { return "analyzing" }
func (Loading) Name() string       { return "loading" }
func (Result) Name() string        { return "result" }
func (Error) Name() string         { return "error" }
func (History) Name() string       { return "history" }
func (Settings) Name() string      { return "settings" }
func (Chat) Name() string          { return "chat" }

func (Intro) sealedState()         {}
func (ContextSelect) sealedState() {}
func (Analyzing) sealedState()     {}
func (Loading) sealedState()       {}
func (Result) sealedState()        {}
func (Error) sealedState()         {}
func (History) sealedState()       {}
func (Settings) sealedState()      {}
func (Chat) sealedState()          {}

// Event is the sealed union of session events.
type Event interface {
	EventName() string
	sealedEvent()
}

// Start leaves the intro screen.
type Start struct{}

// Select picks the situational context for this check-in.
type Select struct {
	Context models.Context
}

// Capture submits the photo and puts the analysis in flight.
type Capture struct{}

// AnalysisSucceeded completes an in-flight analysis. The caller must have
// finished (or attempted, under the degrade policy) the journal write before
// applying this event, so a history view opened from Result always includes
// the new entry. The write itself belongs after the caller's own generation
// check: an abandoned capture must never reach the journal.
type AnalysisSucceeded struct {
	Generation int
	Insight    models.InsightData
}

// AnalysisFailed completes an in-flight analysis with a classified failure.
type AnalysisFailed struct {
	Generation int
	Kind       errors.Kind
}

// OpenChat starts a follow-up conversation from Result.
type OpenChat struct{}

// EndChat returns from Chat to Result.
type EndChat struct{}

// OpenHistory opens the timeline view.
type OpenHistory struct{}

// OpenSettings opens the settings surface.
type OpenSettings struct{}

// GoHome returns to Intro, abandoning an in-flight analysis if any.
type GoHome struct{}

// Retry leaves the error screen back to context selection.
type Retry struct{}

func (Start) EventName() string             { return "start" }
func (Select) EventName() string            { return "select" }
func (Capture) EventName() string           { return "capture" }
func (AnalysisSucceeded) EventName() string { return "analysis-succeeded" }
func (AnalysisFailed) EventName() string    { return "analysis-failed" }
func (OpenChat) EventName() string          { return "open-chat" }
func (EndChat) EventName() string           { return "end-chat" }
func (OpenHistory) EventName() string       { return "open-history" }
func (OpenSettings) EventName() string      { return "open-settings" }
func (GoHome) EventName() string            { return "go-home" }
func (Retry) EventName() string             { return "retry" }

func (Start) sealedEvent()             {}
func (Select) sealedEvent()            {}
func (Capture) sealedEvent()           {}
func (AnalysisSucceeded) sealedEvent() {}
func (AnalysisFailed) sealedEvent()    {}
func (OpenChat) sealedEvent()          {}
func (EndChat) sealedEvent()           {}
func (OpenHistory) sealedEvent()       {}
func (OpenSettings) sealedEvent()      {}
func (GoHome) sealedEvent()            {}
func (Retry) sealedEvent()             {}

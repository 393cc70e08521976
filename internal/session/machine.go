package session

import (
	"fmt"

	"github.com/AshokKumar3502/facemirror/internal/logger"
	"github.com/AshokKumar3502/facemirror/internal/models"
)

// Machine is the long-lived session controller. It owns the transient
// analysis result (inside the current state's payload) and the generation
// counter that fences off stale analysis completions. It has no terminal
// state.
type Machine struct {
	state      State
	generation int
	lastResult *models.InsightData
}

func NewMachine() *Machine {
	return &Machine{
		state: Intro{},
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Generation returns the identifier the next in-flight analysis must echo.
func (m *Machine) Generation() int {
	return m.generation
}

// LastInsight returns the most recent successful assessment, if any. It is
// in-memory only and lost when the session ends.
func (m *Machine) LastInsight() (models.InsightData, bool) {
	if m.lastResult == nil {
		return models.InsightData{}, false
	}
	return *m.lastResult, true
}

// Apply transitions the machine. Illegal transitions leave the state
// untouched and return an error. Stale analysis completions (generation
// mismatch) are discarded silently: the user already navigated away.
func (m *Machine) Apply(ev Event) (State, error) {
	next, err := m.transition(ev)
	if err != nil {
		return m.state, err
	}
	m.state = next
	return m.state, nil
}

func (m *Machine) transition(ev Event) (State, error) {
	switch ev := ev.(type) {
	case Start:
		if _, ok := m.state.(Intro); ok {
			return ContextSelect{}, nil
		}

	case Select:
		if _, ok := m.state.(ContextSelect); ok {
			if !ev.Context.Valid() {
				return nil, fmt.Errorf("unknown context: %s", ev.Context)
			}
			return Analyzing{Context: ev.Context}, nil
		}

	case Capture:
		if s, ok := m.state.(Analyzing); ok {
			m.generation++
			return Loading{Context: s.Context, Generation: m.generation}, nil
		}
		if _, ok := m.state.(Loading); ok {
			return nil, fmt.Errorf("an analysis is already in flight")
		}

	case AnalysisSucceeded:
		s, ok := m.state.(Loading)
		if !ok || s.Generation != ev.Generation {
			logger.Debug("Discarding stale analysis result", "generation", ev.Generation, "state", m.state.Name())
			return m.state, nil
		}
		insight := ev.Insight
		m.lastResult = &insight
		return Result{Insight: insight}, nil

	case AnalysisFailed:
		s, ok := m.state.(Loading)
		if !ok || s.Generation != ev.Generation {
			logger.Debug("Discarding stale analysis failure", "generation", ev.Generation, "state", m.state.Name())
			return m.state, nil
		}
		return Error{Kind: ev.Kind}, nil

	case OpenChat:
		if s, ok := m.state.(Result); ok {
			return Chat{Insight: s.Insight}, nil
		}

	case EndChat:
		if s, ok := m.state.(Chat); ok {
			return Result{Insight: s.Insight}, nil
		}

	case OpenHistory:
		switch m.state.(type) {
		case Intro, ContextSelect, Result, Error:
			return History{}, nil
		}

	case OpenSettings:
		switch m.state.(type) {
		case Intro, ContextSelect, Result, Error:
			return Settings{}, nil
		}

	case GoHome:
		switch m.state.(type) {
		case Loading:
			// Abandoning an in-flight analysis: bump the generation so the
			// eventual completion is fenced off instead of racing a later
			// capture.
			m.generation++
			return Intro{}, nil
		case Intro:
			return m.state, nil
		default:
			return Intro{}, nil
		}

	case Retry:
		if _, ok := m.state.(Error); ok {
			return ContextSelect{}, nil
		}
	}

	return nil, fmt.Errorf("event %q is not valid in state %q", ev.EventName(), m.state.Name())
}

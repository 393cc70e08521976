package session

import (
	"testing"

	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/models"
)

// advanceToLoading walks a fresh machine to the Loading state and returns it
// together with the in-flight generation.
func advanceToLoading(t *testing.T) (*Machine, int) {
	t.Helper()
	m := NewMachine()
	mustApply(t, m, Start{})
	mustApply(t, m, Select{Context: models.ContextWork})
	state := mustApply(t, m, Capture{})
	loading, ok := state.(Loading)
	if !ok {
		t.Fatalf("expected Loading, got %s", state.Name())
	}
	return m, loading.Generation
}

func mustApply(t *testing.T, m *Machine, ev Event) State {
	t.Helper()
	state, err := m.Apply(ev)
	if err != nil {
		t.Fatalf("apply %q in %q: %v", ev.EventName(), m.State().Name(), err)
	}
	return state
}

func TestHappyPath(t *testing.T) {
	m := NewMachine()

	if _, ok := m.State().(Intro); !ok {
		t.Fatalf("expected Intro start state, got %s", m.State().Name())
	}

	mustApply(t, m, Start{})
	mustApply(t, m, Select{Context: models.ContextWakingUp})
	mustApply(t, m, Capture{})

	data := models.InsightData{EmotionalScore: 64}
	state := mustApply(t, m, AnalysisSucceeded{Generation: m.Generation(), Insight: data})
	result, ok := state.(Result)
	if !ok {
		t.Fatalf("expected Result, got %s", state.Name())
	}
	if result.Insight.EmotionalScore != 64 {
		t.Errorf("result carries wrong insight: %+v", result.Insight)
	}

	if got, ok := m.LastInsight(); !ok || got.EmotionalScore != 64 {
		t.Errorf("last insight not retained: %v %v", got, ok)
	}
}

func TestFailurePathAndRetry(t *testing.T) {
	m, generation := advanceToLoading(t)

	state := mustApply(t, m, AnalysisFailed{Generation: generation, Kind: errors.KindKeyMissing})
	errState, ok := state.(Error)
	if !ok {
		t.Fatalf("expected Error, got %s", state.Name())
	}
	if errState.Kind != errors.KindKeyMissing {
		t.Errorf("expected key-missing kind, got %s", errState.Kind)
	}

	state = mustApply(t, m, Retry{})
	if _, ok := state.(ContextSelect); !ok {
		t.Fatalf("retry must return to context selection, got %s", state.Name())
	}
}

func TestIllegalTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *Machine
		ev    Event
	}{
		{
			name:  "select from intro",
			setup: func(t *testing.T) *Machine { return NewMachine() },
			ev:    Select{Context: models.ContextWork},
		},
		{
			name:  "capture from intro",
			setup: func(t *testing.T) *Machine { return NewMachine() },
			ev:    Capture{},
		},
		{
			name: "capture while in flight",
			setup: func(t *testing.T) *Machine {
				m, _ := advanceToLoading(t)
				return m
			},
			ev: Capture{},
		},
		{
			name:  "chat without a result",
			setup: func(t *testing.T) *Machine { return NewMachine() },
			ev:    OpenChat{},
		},
		{
			name:  "retry without an error",
			setup: func(t *testing.T) *Machine { return NewMachine() },
			ev:    Retry{},
		},
		{
			name: "history from loading",
			setup: func(t *testing.T) *Machine {
				m, _ := advanceToLoading(t)
				return m
			},
			ev: OpenHistory{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.setup(t)
			before := m.State().Name()
			if _, err := m.Apply(tt.ev); err == nil {
				t.Fatalf("expected %q to be rejected in %q", tt.ev.EventName(), before)
			}
			if m.State().Name() != before {
				t.Errorf("illegal event changed state from %q to %q", before, m.State().Name())
			}
		})
	}
}

func TestSelectRejectsUnknownContext(t *testing.T) {
	m := NewMachine()
	mustApply(t, m, Start{})

	if _, err := m.Apply(Select{Context: models.Context("brunch")}); err == nil {
		t.Fatal("expected unknown context to be rejected")
	}
	if _, ok := m.State().(ContextSelect); !ok {
		t.Errorf("rejected select must not change state, got %s", m.State().Name())
	}
}

func TestStaleCompletionIsDiscarded(t *testing.T) {
	t.Run("after abandoning the capture", func(t *testing.T) {
		m, generation := advanceToLoading(t)
		mustApply(t, m, GoHome{})

		state := mustApply(t, m, AnalysisSucceeded{Generation: generation, Insight: models.InsightData{EmotionalScore: 99}})
		if _, ok := state.(Intro); !ok {
			t.Fatalf("stale success must be discarded, got %s", state.Name())
		}
		if _, ok := m.LastInsight(); ok {
			t.Error("discarded result must not be retained")
		}
	})

	t.Run("older generation loses to a newer capture", func(t *testing.T) {
		m, stale := advanceToLoading(t)
		mustApply(t, m, GoHome{})
		mustApply(t, m, Start{})
		mustApply(t, m, Select{Context: models.ContextEvening})
		state := mustApply(t, m, Capture{})
		current := state.(Loading).Generation
		if current == stale {
			t.Fatal("generations must differ across captures")
		}

		mustApply(t, m, AnalysisFailed{Generation: stale, Kind: errors.KindGeneral})
		if _, ok := m.State().(Loading); !ok {
			t.Fatalf("stale failure must be discarded, got %s", m.State().Name())
		}

		state = mustApply(t, m, AnalysisSucceeded{Generation: current, Insight: models.InsightData{EmotionalScore: 50}})
		if _, ok := state.(Result); !ok {
			t.Fatalf("current completion must land, got %s", state.Name())
		}
	})
}

func TestChatRoundTrip(t *testing.T) {
	m, generation := advanceToLoading(t)
	data := models.InsightData{EmotionalScore: 42}
	mustApply(t, m, AnalysisSucceeded{Generation: generation, Insight: data})

	state := mustApply(t, m, OpenChat{})
	chat, ok := state.(Chat)
	if !ok {
		t.Fatalf("expected Chat, got %s", state.Name())
	}
	if chat.Insight.EmotionalScore != 42 {
		t.Error("chat must carry the assessment under discussion")
	}

	state = mustApply(t, m, EndChat{})
	if _, ok := state.(Result); !ok {
		t.Fatalf("ending chat must return to the result, got %s", state.Name())
	}
}

func TestGoHome(t *testing.T) {
	m, _ := advanceToLoading(t)
	before := m.Generation()

	state := mustApply(t, m, GoHome{})
	if _, ok := state.(Intro); !ok {
		t.Fatalf("expected Intro, got %s", state.Name())
	}
	if m.Generation() == before {
		t.Error("abandoning an in-flight analysis must advance the generation")
	}

	// Idempotent from the hub.
	state = mustApply(t, m, GoHome{})
	if _, ok := state.(Intro); !ok {
		t.Fatalf("expected Intro, got %s", state.Name())
	}
}

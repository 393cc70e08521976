package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/models"
	"github.com/AshokKumar3502/facemirror/internal/session"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.historyView.Width = msg.Width - 4
		m.historyView.Height = msg.Height - 6
		m.chatView.Width = msg.Width - 4
		m.chatView.Height = msg.Height - 8
		m.chatInput.Width = msg.Width - 8
		return m, nil

	case spinner.TickMsg:
		_, loading := m.machine.State().(session.Loading)
		if loading || m.weeklyWaiting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case analysisDoneMsg:
		// A completion the user already abandoned is dropped before the
		// journal is touched.
		loading, ok := m.machine.State().(session.Loading)
		if !ok || loading.Generation != msg.generation {
			return m, nil
		}

		warning := ""
		if _, err := m.journal.AddEntry(msg.checkin, msg.insight, msg.image, msg.manualDay); err != nil {
			// Degrade-and-retry already happened inside AddEntry; losing
			// the stored copy is a warning, not a failed session.
			warning = "This check-in could not be saved to the journal."
		}

		// The write is done (or attempted) before Result becomes visible,
		// so a history opened from Result always includes the entry.
		if state, err := m.machine.Apply(session.AnalysisSucceeded{
			Generation: msg.generation,
			Insight:    msg.insight,
		}); err == nil {
			if _, ok := state.(session.Result); ok {
				m.statusMsg = warning
			}
		}
		return m, nil

	case analysisErrMsg:
		m.machine.Apply(session.AnalysisFailed{
			Generation: msg.generation,
			Kind:       msg.kind,
		})
		return m, nil

	case chatReplyMsg:
		m.chatWaiting = false
		if len(m.chatLog) > 0 {
			last := &m.chatLog[len(m.chatLog)-1]
			if msg.err != nil {
				last.Answer = dangerStyle.Render(friendlyKindMessage(errors.KindOf(msg.err)))
			} else {
				last.Answer = msg.reply
			}
		}
		m.refreshChatView()
		return m, nil

	case weeklyDoneMsg:
		m.weeklyWaiting = false
		if msg.err != nil {
			m.statusMsg = msg.err.Error()
		} else {
			summary := msg.summary
			m.weeklySummary = &summary
			m.statusMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.machine.State().(type) {
	case session.Intro:
		return m.updateIntro(msg)
	case session.ContextSelect:
		return m.updateContextSelect(msg)
	case session.Analyzing:
		return m.updateAnalyzing(msg)
	case session.Loading:
		return m.updateLoading(msg)
	case session.Result:
		return m.updateResult(msg)
	case session.Error:
		return m.updateError(msg)
	case session.History:
		return m.updateHistory(msg)
	case session.Settings:
		return m.updateSettings(msg)
	case session.Chat:
		return m.updateChat(msg)
	}
	return m, nil
}

func (m Model) updateIntro(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Start):
		if _, err := m.machine.Apply(session.Start{}); err != nil {
			return m, nil
		}
		m.statusMsg = ""
		m.form = m.newContextForm()
		return m, m.form.Init()
	case key.Matches(keyMsg, m.keys.History):
		if _, err := m.machine.Apply(session.OpenHistory{}); err != nil {
			return m, nil
		}
		m.refreshHistory()
		return m, nil
	case key.Matches(keyMsg, m.keys.Settings):
		if _, err := m.machine.Apply(session.OpenSettings{}); err != nil {
			return m, nil
		}
		m.form = m.newSettingsForm()
		return m, m.form.Init()
	case key.Matches(keyMsg, m.keys.Weekly):
		if m.weeklyWaiting {
			return m, nil
		}
		m.weeklyWaiting = true
		m.weeklySummary = nil
		m.statusMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.runWeekly())
	}
	return m, nil
}

func (m Model) updateContextSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		return m.goHome()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		picked := models.Context(m.contextPick)
		if _, err := m.machine.Apply(session.Select{Context: picked}); err != nil {
			return m.goHome()
		}
		m.form = m.newCaptureForm()
		return m, m.form.Init()
	}
	return m, cmd
}

func (m Model) updateAnalyzing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		return m.goHome()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		imagePath := strings.TrimSpace(m.captureForm.ImagePath)
		var manualDay *int
		if raw := strings.TrimSpace(m.captureForm.ManualDay); raw != "" {
			if day, err := strconv.Atoi(raw); err == nil {
				manualDay = &day
			}
		}

		analyzing, ok := m.machine.State().(session.Analyzing)
		if !ok {
			return m.goHome()
		}
		state, err := m.machine.Apply(session.Capture{})
		if err != nil {
			return m, nil
		}
		loading := state.(session.Loading)
		m.form = nil
		return m, tea.Batch(
			m.spinner.Tick,
			m.runAnalysis(loading.Generation, analyzing.Context, imagePath, manualDay),
		)
	}
	return m, cmd
}

func (m Model) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		// GoHome bumps the generation so the in-flight result is dropped.
		return m.goHome()
	}
	return m, nil
}

func (m Model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		return m.goHome()
	case key.Matches(keyMsg, m.keys.History):
		if _, err := m.machine.Apply(session.OpenHistory{}); err != nil {
			return m, nil
		}
		m.refreshHistory()
		return m, nil
	case key.Matches(keyMsg, m.keys.Settings):
		if _, err := m.machine.Apply(session.OpenSettings{}); err != nil {
			return m, nil
		}
		m.form = m.newSettingsForm()
		return m, m.form.Init()
	case key.Matches(keyMsg, m.keys.Chat):
		if _, err := m.machine.Apply(session.OpenChat{}); err != nil {
			return m, nil
		}
		m.chatLog = nil
		m.chatWaiting = false
		m.chatInput.Reset()
		m.refreshChatView()
		return m, m.chatInput.Focus()
	}
	return m, nil
}

func (m Model) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		return m.goHome()
	case key.Matches(keyMsg, m.keys.Retry):
		if _, err := m.machine.Apply(session.Retry{}); err != nil {
			return m, nil
		}
		m.form = m.newContextForm()
		return m, m.form.Init()
	case key.Matches(keyMsg, m.keys.History):
		if _, err := m.machine.Apply(session.OpenHistory{}); err != nil {
			return m, nil
		}
		m.refreshHistory()
		return m, nil
	case key.Matches(keyMsg, m.keys.Settings):
		if _, err := m.machine.Apply(session.OpenSettings{}); err != nil {
			return m, nil
		}
		m.form = m.newSettingsForm()
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Back):
			return m.goHome()
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.historyView, cmd = m.historyView.Update(msg)
	return m, cmd
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		return m.goHome()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		m.saveSettings()
		return m.goHome()
	}
	return m, cmd
}

func (m *Model) saveSettings() {
	if err := m.scheduler.SetTime(strings.TrimSpace(m.settingsForm.ReminderTime)); err != nil {
		m.statusMsg = err.Error()
		return
	}
	if err := m.scheduler.SetEnabled(m.settingsForm.ReminderEnabled); err != nil {
		if errors.IsKind(err, errors.KindPermissionDenied) {
			m.statusMsg = "Notifications are not permitted on this system, so the reminder stays off."
		} else {
			m.statusMsg = err.Error()
		}
		return
	}
	m.statusMsg = "Settings saved."
}

func (m Model) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	chat, ok := m.machine.State().(session.Chat)
	if !ok {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.machine.Apply(session.EndChat{})
			m.chatInput.Blur()
			return m, nil
		case "enter":
			question := strings.TrimSpace(m.chatInput.Value())
			if question == "" || m.chatWaiting {
				return m, nil
			}
			m.chatLog = append(m.chatLog, chatExchange{Question: question})
			m.chatWaiting = true
			m.chatInput.Reset()
			m.refreshChatView()
			return m, m.runChat(chat.Insight, question)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	cmds = append(cmds, cmd)
	m.chatView, cmd = m.chatView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) goHome() (tea.Model, tea.Cmd) {
	m.machine.Apply(session.GoHome{})
	m.form = nil
	m.chatInput.Blur()
	return m, nil
}

func friendlyKindMessage(kind errors.Kind) string {
	switch kind {
	case errors.KindKeyMissing:
		return "No API key is configured. Run 'facemirror key set' first."
	case errors.KindInvalidKey:
		return "The configured API key was rejected. Check it with 'facemirror key show'."
	case errors.KindWriteFailed:
		return "The journal could not be written."
	case errors.KindPermissionDenied:
		return "Permission was denied."
	default:
		return "The analysis failed. Please try again."
	}
}

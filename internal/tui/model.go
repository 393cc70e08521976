package tui

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/insight"
	"github.com/AshokKumar3502/facemirror/internal/journal"
	"github.com/AshokKumar3502/facemirror/internal/models"
	"github.com/AshokKumar3502/facemirror/internal/reminder"
	"github.com/AshokKumar3502/facemirror/internal/session"
	"github.com/AshokKumar3502/facemirror/internal/storage"
	"github.com/AshokKumar3502/facemirror/internal/weekly"
)

// CaptureFormModel holds the capture form inputs before submission.
type CaptureFormModel struct {
	ImagePath string
	ManualDay string
}

// SettingsFormModel holds the settings form inputs before submission.
type SettingsFormModel struct {
	ReminderEnabled bool
	ReminderTime    string
}

type chatExchange struct {
	Question string
	Answer   string
}

// Messages produced by the asynchronous capability calls. Each carries the
// generation of the in-flight analysis so the session machine can fence off
// stale completions. analysisDoneMsg carries the full capture payload: the
// journal write happens in the message handler, after the generation check,
// so an abandoned capture is never persisted.
type analysisDoneMsg struct {
	generation int
	insight    models.InsightData
	checkin    models.Context
	image      string
	manualDay  *int
}

type analysisErrMsg struct {
	generation int
	kind       errors.Kind
}

type chatReplyMsg struct {
	reply string
	err   error
}

type weeklyDoneMsg struct {
	summary models.WeeklyInsight
	err     error
}

// Model is the bubbletea shell around the session state machine. All state
// transitions go through the machine; the model only owns widget state.
type Model struct {
	store     storage.Provider
	journal   *journal.Manager
	scheduler *reminder.Scheduler
	analyzer  insight.Analyzer
	machine   *session.Machine

	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	form         *huh.Form
	contextPick  string
	captureForm  *CaptureFormModel
	settingsForm *SettingsFormModel

	historyView viewport.Model
	chatView    viewport.Model
	chatInput   textinput.Model
	chatLog     []chatExchange
	chatWaiting bool

	weeklySummary *models.WeeklyInsight
	weeklyWaiting bool

	statusMsg string
	width     int
	height    int
	quitting  bool
}

func NewModel(store storage.Provider, jm *journal.Manager, scheduler *reminder.Scheduler, analyzer insight.Analyzer) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	input := textinput.New()
	input.Placeholder = "Ask about your reading..."
	input.CharLimit = 400

	return Model{
		store:       store,
		journal:     jm,
		scheduler:   scheduler,
		analyzer:    analyzer,
		machine:     session.NewMachine(),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
		historyView: viewport.New(0, 0),
		chatView:    viewport.New(0, 0),
		chatInput:   input,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) newContextForm() *huh.Form {
	options := make([]huh.Option[string], 0, len(models.Contexts()))
	for _, c := range models.Contexts() {
		options = append(options, huh.NewOption(contextLabel(c), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("When are you checking in?").
				Options(options...).
				Value(&m.contextPick),
		),
	)
}

func (m *Model) newCaptureForm() *huh.Form {
	m.captureForm = &CaptureFormModel{}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Photo file").
				Description("Path to the photo to analyze").
				Validate(func(s string) error {
					if _, err := os.Stat(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("cannot read %q", strings.TrimSpace(s))
					}
					return nil
				}).
				Value(&m.captureForm.ImagePath),
			huh.NewInput().
				Title("Day override").
				Description("Leave empty to use the automatic day counter").
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					day, err := strconv.Atoi(s)
					if err != nil || day < 1 {
						return fmt.Errorf("enter a whole number of 1 or more")
					}
					return nil
				}).
				Value(&m.captureForm.ManualDay),
		),
	)
}

func (m *Model) newSettingsForm() *huh.Form {
	settings, err := m.store.GetSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}
	m.settingsForm = &SettingsFormModel{
		ReminderEnabled: settings.ReminderEnabled,
		ReminderTime:    settings.ReminderTime,
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Daily reminder").
				Affirmative("On").
				Negative("Off").
				Value(&m.settingsForm.ReminderEnabled),
			huh.NewInput().
				Title("Reminder time").
				Description("HH:MM, 24-hour clock").
				Value(&m.settingsForm.ReminderTime),
		),
	)
}

// runAnalysis runs the analysis call off the update loop. It does not touch
// the journal: the message handler persists after checking the generation, so
// a completion the user already abandoned is dropped without a write.
func (m Model) runAnalysis(generation int, checkin models.Context, imagePath string, manualDay *int) tea.Cmd {
	analyzer := m.analyzer
	return func() tea.Msg {
		imageBytes, err := os.ReadFile(imagePath)
		if err != nil {
			return analysisErrMsg{generation: generation, kind: errors.KindGeneral}
		}

		data, err := analyzer.Analyze(context.Background(), imageBytes, checkin)
		if err != nil {
			return analysisErrMsg{generation: generation, kind: errors.KindOf(err)}
		}

		return analysisDoneMsg{
			generation: generation,
			insight:    data,
			checkin:    checkin,
			image:      base64.StdEncoding.EncodeToString(imageBytes),
			manualDay:  manualDay,
		}
	}
}

func (m Model) runChat(data models.InsightData, message string) tea.Cmd {
	analyzer := m.analyzer
	return func() tea.Msg {
		reply, err := analyzer.Chat(context.Background(), data, message)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m Model) runWeekly() tea.Cmd {
	trigger := weekly.NewTrigger(m.journal, m.analyzer)
	return func() tea.Msg {
		summary, err := trigger.Run(context.Background())
		return weeklyDoneMsg{summary: summary, err: err}
	}
}

func contextLabel(c models.Context) string {
	switch c {
	case models.ContextWakingUp:
		return "Waking up"
	case models.ContextWork:
		return "At work"
	case models.ContextEvening:
		return "Evening wind-down"
	case models.ContextBeforeSleep:
		return "Before sleep"
	case models.ContextFamily:
		return "With family"
	case models.ContextSocial:
		return "Out with people"
	default:
		return string(c)
	}
}

func (m *Model) refreshHistory() {
	entries, err := m.journal.ListEntries()
	if err != nil || len(entries) == 0 {
		m.historyView.SetContent(subtleStyle.Render("No journal entries yet."))
		return
	}

	journal.SortNewestFirst(entries)
	groups := journal.GroupByDay(entries)

	var b strings.Builder
	for _, label := range journal.DayOrder(entries) {
		b.WriteString(dayStyle.Render(label))
		b.WriteString("\n")
		for _, entry := range groups[label] {
			b.WriteString(renderHistoryLine(entry))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	m.historyView.SetContent(b.String())
	m.historyView.GotoTop()
}

func renderHistoryLine(entry models.JournalEntry) string {
	return fmt.Sprintf("  %s  %s  %s",
		labelStyle.Render(contextLabel(entry.Context)),
		scoreStyle.Render(fmt.Sprintf("score %d", entry.Insight.EmotionalScore)),
		entry.Insight.SimpleExplanation)
}

func (m *Model) refreshChatView() {
	var b strings.Builder
	for _, exchange := range m.chatLog {
		b.WriteString(labelStyle.Render("You: "))
		b.WriteString(exchange.Question)
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Mirror:"))
		b.WriteString(" ")
		b.WriteString(exchange.Answer)
		b.WriteString("\n\n")
	}
	if m.chatWaiting {
		b.WriteString(subtleStyle.Render("thinking..."))
	}
	m.chatView.SetContent(lipgloss.NewStyle().Width(max(20, m.width-8)).Render(b.String()))
	m.chatView.GotoBottom()
}

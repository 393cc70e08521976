package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AshokKumar3502/facemirror/internal/models"
	"github.com/AshokKumar3502/facemirror/internal/session"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch state := m.machine.State().(type) {
	case session.Intro:
		body = m.viewIntro()
	case session.ContextSelect, session.Analyzing:
		body = m.viewForm()
	case session.Loading:
		body = m.viewLoading(state)
	case session.Result:
		body = m.viewResult(state.Insight)
	case session.Error:
		body = m.viewError(state)
	case session.History:
		body = m.viewHistory()
	case session.Settings:
		body = m.viewForm()
	case session.Chat:
		body = m.viewChat()
	}

	if m.statusMsg != "" {
		body += "\n" + warningStyle.Render(m.statusMsg)
	}
	return docStyle.Render(body)
}

func (m Model) viewIntro() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("facemirror"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("A quiet mirror for how you actually feel."))
	b.WriteString("\n\n")

	if day, err := m.journal.CurrentDayNumber(); err == nil && day > 0 {
		b.WriteString(dayStyle.Render(fmt.Sprintf("Day %d of your journey", day)))
		b.WriteString("\n\n")
	}

	if m.weeklyWaiting {
		b.WriteString(m.spinner.View())
		b.WriteString(subtleStyle.Render(" preparing your weekly summary..."))
		b.WriteString("\n\n")
	}
	if m.weeklySummary != nil {
		b.WriteString(renderWeekly(*m.weeklySummary))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}
	return m.form.View()
}

func (m Model) viewLoading(state session.Loading) string {
	return fmt.Sprintf("%s Reading your face (%s)...\n\n%s",
		m.spinner.View(),
		contextLabel(state.Context),
		subtleStyle.Render("esc to cancel"))
}

func (m Model) viewResult(data models.InsightData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your reading"))
	b.WriteString("  ")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("emotional score %d/100", data.EmotionalScore)))
	b.WriteString("\n\n")

	section := func(label, text string) {
		if text == "" {
			return
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(max(20, m.width-8)).Render(text))
		b.WriteString("\n\n")
	}

	section("What your face shows", data.SimpleExplanation)
	section("Beneath the surface", data.HiddenRealization)
	section("Your current pattern", data.CurrentPattern)
	section("One thing for today", data.DailyAction)

	b.WriteString(labelStyle.Render("Vitals"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  stress %d  calm %d  anxiety %d  fatigue %d  stability %d\n\n",
		data.Vitals.Stress, data.Vitals.Calmness, data.Vitals.Anxiety,
		data.Vitals.Fatigue, data.Vitals.Stability))

	if len(data.BehavioralProtocols) > 0 {
		b.WriteString(labelStyle.Render("Protocols"))
		b.WriteString("\n")
		for _, p := range data.BehavioralProtocols {
			line := fmt.Sprintf("  [%s] %s", p.Type, p.Title)
			if p.Duration != "" {
				line += subtleStyle.Render(" (" + p.Duration + ")")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewError(state session.Error) string {
	var b strings.Builder
	b.WriteString(dangerStyle.Render("Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(friendlyKindMessage(state.Kind))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("r to retry, s for settings, esc to go back"))
	return b.String()
}

func (m Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Journal"))
	b.WriteString("\n\n")
	b.WriteString(m.historyView.View())
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("esc to go back"))
	return b.String()
}

func (m Model) viewChat() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Ask the mirror"))
	b.WriteString("\n\n")
	b.WriteString(m.chatView.View())
	b.WriteString("\n")
	b.WriteString(m.chatInput.View())
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("enter to send, esc to end"))
	return b.String()
}

func renderWeekly(summary models.WeeklyInsight) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(summary.WeekTitle))
	b.WriteString("\n")
	if summary.EmotionalTrend != "" {
		b.WriteString(labelStyle.Render("Trend: "))
		b.WriteString(summary.EmotionalTrend)
		b.WriteString("\n")
	}
	if summary.KeyRealization != "" {
		b.WriteString(labelStyle.Render("Realization: "))
		b.WriteString(summary.KeyRealization)
		b.WriteString("\n")
	}
	if summary.NextWeekMantra != "" {
		b.WriteString(subtleStyle.Render("\"" + summary.NextWeekMantra + "\""))
		b.WriteString("\n")
	}
	return b.String()
}

package insight

import (
	"fmt"
	"strings"

	"github.com/AshokKumar3502/facemirror/internal/models"
)

func analyzePrompt(checkin models.Context) string {
	var b strings.Builder
	b.WriteString("You are an empathetic emotional-wellness analyst. ")
	b.WriteString("Study the attached self-portrait taken during the \"")
	b.WriteString(string(checkin))
	b.WriteString("\" part of the user's day and return a JSON object with these fields:\n")
	b.WriteString(`psych_profile, simple_explanation, hidden_realization, decision_compass, ` +
		`current_pattern, growth_plan, daily_action, emotional_score (0-100), ` +
		`vitals {stress, calmness, anxiety, fatigue, stability} (each 0-100), ` +
		`cognitive {focus, burnout, alertness, overthinking} (each 0-100), ` +
		`stress_triggers (array of {type, impact: High|Medium|Subtle, description}), ` +
		`behavioral_protocols (array of {type: BREATH|REST|SOCIAL|FOCUS|JOURNAL, title, instruction, duration}).`)
	b.WriteString("\nRespond with JSON only.")
	return b.String()
}

func summarizePrompt(entries []models.JournalEntry) string {
	var b strings.Builder
	b.WriteString("You are reviewing a user's reflective journal. ")
	b.WriteString("Given the recent check-ins below (oldest first), return a JSON object with ")
	b.WriteString("week_title, soul_report, emotional_trend, key_realization and next_week_mantra.\n\n")
	for _, entry := range entries {
		fmt.Fprintf(&b, "Day %d (%s): score %d, stress %d, calmness %d. %s\n",
			entry.DayNumber, entry.Context, entry.Insight.EmotionalScore,
			entry.Insight.Vitals.Stress, entry.Insight.Vitals.Calmness,
			entry.Insight.SimpleExplanation)
	}
	b.WriteString("\nRespond with JSON only.")
	return b.String()
}

func chatPrompt(insight models.InsightData, message string) string {
	var b strings.Builder
	b.WriteString("You are discussing this emotional assessment with the user it belongs to:\n")
	fmt.Fprintf(&b, "Profile: %s\nExplanation: %s\nPattern: %s\nGrowth plan: %s\n\n",
		insight.PsychProfile, insight.SimpleExplanation, insight.CurrentPattern, insight.GrowthPlan)
	b.WriteString("Answer their question warmly and concretely, in plain text.\n\nUser: ")
	b.WriteString(message)
	return b.String()
}

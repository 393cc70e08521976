// Package insight wraps the external analysis capability: photo analysis,
// weekly summarization and follow-up chat. The rest of the application treats
// the returned structures as opaque values.
package insight

import (
	"context"

	"github.com/AshokKumar3502/facemirror/internal/models"
)

// Analyzer is the external analysis capability. Failures carry an
// errors.Kind so the session layer can pick the right user-facing copy.
type Analyzer interface {
	// Analyze assesses a single check-in photo in its situational context.
	Analyze(ctx context.Context, image []byte, checkin models.Context) (models.InsightData, error)

	// Summarize produces a weekly meta-summary over the given entries,
	// which arrive oldest-first.
	Summarize(ctx context.Context, entries []models.JournalEntry) (models.WeeklyInsight, error)

	// Chat answers a free-form follow-up question about an assessment.
	Chat(ctx context.Context, insight models.InsightData, message string) (string, error)
}

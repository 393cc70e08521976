package entries

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/AshokKumar3502/facemirror/internal/cli"
	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/models"
)

// CheckinCmd is the headless capture path: analyze a photo file and persist
// the entry without entering the TUI.
type CheckinCmd struct {
	Context string `help:"Check-in context (waking-up, work, evening, before-sleep, family, social)." required:""`
	Image   string `help:"Path to the photo to analyze." required:"" type:"existingfile"`
	Day     *int   `help:"Manual day number override."`
}

func (c *CheckinCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	checkin := models.Context(c.Context)
	if !checkin.Valid() {
		return fmt.Errorf("unknown context %q", c.Context)
	}
	if c.Day != nil && *c.Day < 1 {
		return fmt.Errorf("day number must be at least 1")
	}

	imageBytes, err := os.ReadFile(c.Image)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	fmt.Println("Analyzing...")
	insightData, err := ctx.NewAnalyzer().Analyze(context.Background(), imageBytes, checkin)
	if err != nil {
		switch errors.KindOf(err) {
		case errors.KindKeyMissing:
			return fmt.Errorf("no analysis API key configured, run 'facemirror key set' first")
		case errors.KindInvalidKey:
			return fmt.Errorf("the analysis capability rejected your API key, check 'facemirror key show'")
		default:
			return fmt.Errorf("analysis failed: %w", err)
		}
	}

	encoded := base64.StdEncoding.EncodeToString(imageBytes)
	entry, err := ctx.Journal.AddEntry(checkin, insightData, encoded, c.Day)
	if err != nil {
		if errors.IsKind(err, errors.KindWriteFailed) {
			// The assessment still happened; losing the stored copy is a
			// warning, not a session-ending failure.
			fmt.Fprintf(os.Stderr, "Warning: could not save the entry: %v\n", err)
			printInsight(insightData)
			return nil
		}
		return err
	}

	fmt.Printf("Saved check-in for Day %d.\n\n", entry.DayNumber)
	printInsight(insightData)
	return nil
}

func printInsight(data models.InsightData) {
	fmt.Printf("Emotional score: %d\n", data.EmotionalScore)
	fmt.Printf("Vitals: stress %d | calmness %d | anxiety %d | fatigue %d | stability %d\n",
		data.Vitals.Stress, data.Vitals.Calmness, data.Vitals.Anxiety, data.Vitals.Fatigue, data.Vitals.Stability)
	fmt.Printf("Cognitive: focus %d | burnout %d | alertness %d | overthinking %d\n",
		data.Cognitive.Focus, data.Cognitive.Burnout, data.Cognitive.Alertness, data.Cognitive.Overthinking)
	if data.SimpleExplanation != "" {
		fmt.Printf("\n%s\n", data.SimpleExplanation)
	}
	if data.DailyAction != "" {
		fmt.Printf("\nToday's action: %s\n", data.DailyAction)
	}
	for _, protocol := range data.BehavioralProtocols {
		fmt.Printf("  [%s] %s: %s\n", protocol.Type, protocol.Title, protocol.Instruction)
	}
}

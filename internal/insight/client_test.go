package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/models"
)

func envelope(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
}

func TestAnalyze(t *testing.T) {
	t.Run("parses a structured assessment", func(t *testing.T) {
		var gotPath, gotKey string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("x-goog-api-key")
			w.Write([]byte(envelope(`{"emotional_score": 67, "simple_explanation": "alert but tense", "vitals": {"stress": 55}}`)))
		})

		data, err := client.Analyze(context.Background(), []byte("img"), models.ContextWork)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data.EmotionalScore != 67 || data.Vitals.Stress != 55 {
			t.Errorf("assessment not parsed: %+v", data)
		}
		if gotPath != "/v1beta/models/gemini-2.0-flash:generateContent" {
			t.Errorf("unexpected path: %q", gotPath)
		}
		if gotKey != "test-key" {
			t.Errorf("api key header not set: %q", gotKey)
		}
	})

	t.Run("unwraps fenced json", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(envelope("```json\n{\"emotional_score\": 40}\n```")))
		})

		data, err := client.Analyze(context.Background(), []byte("img"), models.ContextEvening)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data.EmotionalScore != 40 {
			t.Errorf("fenced assessment not parsed: %+v", data)
		}
	})

	t.Run("missing key fails before any request", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL})
		_, err := client.Analyze(context.Background(), []byte("img"), models.ContextWork)
		if !errors.IsKind(err, errors.KindKeyMissing) {
			t.Fatalf("expected key-missing, got %v", err)
		}
		if requests != 0 {
			t.Errorf("expected no requests, got %d", requests)
		}
	})

	t.Run("rejected key is not retried", func(t *testing.T) {
		requests := 0
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.Analyze(context.Background(), []byte("img"), models.ContextWork)
		if !errors.IsKind(err, errors.KindInvalidKey) {
			t.Fatalf("expected invalid-key, got %v", err)
		}
		if requests != 1 {
			t.Errorf("expected 1 request, got %d", requests)
		}
	})

	t.Run("transient failure is retried", func(t *testing.T) {
		requests := 0
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			requests++
			if requests == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(envelope(`{"emotional_score": 80}`)))
		})

		data, err := client.Analyze(context.Background(), []byte("img"), models.ContextWork)
		if err != nil {
			t.Fatalf("expected retry to succeed, got %v", err)
		}
		if data.EmotionalScore != 80 {
			t.Errorf("assessment not parsed: %+v", data)
		}
		if requests != 2 {
			t.Errorf("expected 2 requests, got %d", requests)
		}
	})

	t.Run("malformed assessment payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(envelope("I cannot read this face.")))
		})

		_, err := client.Analyze(context.Background(), []byte("img"), models.ContextWork)
		if !errors.IsKind(err, errors.KindGeneral) {
			t.Fatalf("expected general failure, got %v", err)
		}
	})
}

func TestSummarize(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(envelope(`{"week_title": "The Quiet Climb", "next_week_mantra": "slow is smooth"}`)))
	})

	summary, err := client.Summarize(context.Background(), []models.JournalEntry{{ID: "e1"}, {ID: "e2"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.WeekTitle != "The Quiet Climb" || summary.NextWeekMantra != "slow is smooth" {
		t.Errorf("summary not parsed: %+v", summary)
	}
}

func TestChat(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(envelope("  You seemed more rested today.\n")))
	})

	reply, err := client.Chat(context.Background(), models.InsightData{}, "how did I look?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "You seemed more rested today." {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

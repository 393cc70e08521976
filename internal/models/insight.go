package models

// TriggerImpact grades how strongly a stress trigger is affecting the user.
type TriggerImpact string

const (
	ImpactHigh   TriggerImpact = "High"
	ImpactMedium TriggerImpact = "Medium"
	ImpactSubtle TriggerImpact = "Subtle"
)

// ProtocolType tags a suggested behavioral protocol.
type ProtocolType string

const (
	ProtocolBreath  ProtocolType = "BREATH"
	ProtocolRest    ProtocolType = "REST"
	ProtocolSocial  ProtocolType = "SOCIAL"
	ProtocolFocus   ProtocolType = "FOCUS"
	ProtocolJournal ProtocolType = "JOURNAL"
)

// Vitals are the 0-100 emotional vitals returned by the analyzer.
type Vitals struct {
	Stress    int `json:"stress"`
	Calmness  int `json:"calmness"`
	Anxiety   int `json:"anxiety"`
	Fatigue   int `json:"fatigue"`
	Stability int `json:"stability"`
}

// Cognitive are the 0-100 cognitive metrics returned by the analyzer.
type Cognitive struct {
	Focus        int `json:"focus"`
	Burnout      int `json:"burnout"`
	Alertness    int `json:"alertness"`
	Overthinking int `json:"overthinking"`
}

// StressTrigger is one detected source of stress.
type StressTrigger struct {
	Type        string        `json:"type"`
	Impact      TriggerImpact `json:"impact"`
	Description string        `json:"description"`
}

// BehavioralProtocol is one recommended micro-intervention.
type BehavioralProtocol struct {
	Type        ProtocolType `json:"type"`
	Title       string       `json:"title"`
	Instruction string       `json:"instruction"`
	Duration    string       `json:"duration,omitempty"`
}

// InsightData is the structured assessment returned by the external analysis
// capability. The journal stores it verbatim and never interprets it.
type InsightData struct {
	PsychProfile        string               `json:"psych_profile"`
	SimpleExplanation   string               `json:"simple_explanation"`
	HiddenRealization   string               `json:"hidden_realization"`
	DecisionCompass     string               `json:"decision_compass"`
	CurrentPattern      string               `json:"current_pattern"`
	GrowthPlan          string               `json:"growth_plan"`
	DailyAction         string               `json:"daily_action"`
	EmotionalScore      int                  `json:"emotional_score"`
	Vitals              Vitals               `json:"vitals"`
	Cognitive           Cognitive            `json:"cognitive"`
	StressTriggers      []StressTrigger      `json:"stress_triggers"`
	BehavioralProtocols []BehavioralProtocol `json:"behavioral_protocols"`
}

// WeeklyInsight is the meta-summary the summarizer produces over recent entries.
type WeeklyInsight struct {
	WeekTitle      string `json:"week_title"`
	SoulReport     string `json:"soul_report"`
	EmotionalTrend string `json:"emotional_trend"`
	KeyRealization string `json:"key_realization"`
	NextWeekMantra string `json:"next_week_mantra"`
}

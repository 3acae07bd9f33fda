package ai

import (
	"context"
	"errors"
)

// Mood is the canonical severity classification.
type Mood string

const (
	MoodNormal          Mood = "Normal"
	MoodStressed        Mood = "Stressed"
	MoodDepressed       Mood = "Depressed"
	MoodHighlyDepressed Mood = "Highly Depressed"
	// MoodUnknown is only produced for an empty answer set; it is outside the closed set.
	MoodUnknown Mood = "Unknown"
)

// CanonicalMoods is the closed set a classification may take, in severity order.
var CanonicalMoods = []Mood{MoodNormal, MoodStressed, MoodDepressed, MoodHighlyDepressed}

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Source records whether a result came from the model or the keyword rules.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// QuestionAnswer is one answered check-in question.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}

// MoodResult is the structured output of an analysis.
type MoodResult struct {
	Mood             Mood       `json:"mood"`
	Confidence       Confidence `json:"confidence"`
	EmotionsDetected []string   `json:"emotionsDetected"`
	Reason           string     `json:"reason"`
	AnalysisSource   Source     `json:"analysisSource"`
}

var (
	ErrUpstreamTimeout = errors.New("text generation timed out")
	ErrUpstreamError   = errors.New("text generation failed")
)

// TextGenerator turns a prompt into free text. Implement this to add a provider.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// MoodClassifier produces a MoodResult for a set of answers and never fails.
type MoodClassifier interface {
	Analyze(ctx context.Context, answers []QuestionAnswer) MoodResult
}

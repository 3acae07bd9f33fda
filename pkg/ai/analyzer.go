package ai

import (
	"context"

	"carecompanion-backend/pkg/logger"
	"carecompanion-backend/pkg/metrics"
)

// MoodAnalyzer chains prompt, generation, extraction and validation, and falls back
// to the keyword classifier whenever any of them fails.
type MoodAnalyzer struct {
	generator TextGenerator
	fallback  *FallbackClassifier
	log       *logger.Logger
	metrics   metrics.Recorder
}

// NewMoodAnalyzer creates an analyzer. A nil generator means every analysis uses the fallback.
func NewMoodAnalyzer(generator TextGenerator, log *logger.Logger, rec metrics.Recorder) *MoodAnalyzer {
	if rec == nil {
		rec = metrics.Noop()
	}
	return &MoodAnalyzer{
		generator: generator,
		fallback:  NewFallbackClassifier(),
		log:       log.With("component", "MoodAnalyzer"),
		metrics:   rec,
	}
}

// Analyze implements MoodClassifier.
func (a *MoodAnalyzer) Analyze(ctx context.Context, answers []QuestionAnswer) MoodResult {
	if len(answers) == 0 {
		return MoodResult{
			Mood:             MoodUnknown,
			Confidence:       ConfidenceLow,
			EmotionsDetected: []string{},
			Reason:           "No responses provided for analysis",
			AnalysisSource:   SourceFallback,
		}
	}

	result := a.analyze(ctx, answers)
	a.metrics.ObserveAnalysis(string(result.AnalysisSource), string(result.Mood))
	return result
}

func (a *MoodAnalyzer) analyze(ctx context.Context, answers []QuestionAnswer) MoodResult {
	if a.generator == nil {
		a.log.Warn("no text generator configured, using fallback")
		return a.fallback.Classify(answers)
	}

	text, err := a.generator.Generate(ctx, BuildMoodPrompt(answers))
	if err != nil {
		a.log.Warn("AI analysis failed, using fallback", "error", err, "answer_count", len(answers))
		return a.fallback.Classify(answers)
	}

	if validated := ValidateMoodResult(ExtractJSON(text)); validated != nil {
		a.log.Info("AI analysis successful", "mood", validated.Mood, "confidence", validated.Confidence)
		return *validated
	}

	a.log.Warn("could not parse AI response, using fallback", "response_length", len(text))
	return a.fallback.Classify(answers)
}

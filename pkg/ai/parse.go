package ai

import (
	"regexp"
	"strings"

	"github.com/goccy/go-json"
)

const (
	maxEmotions     = 10
	maxReasonLength = 500
	defaultReason   = "Analysis completed"
)

var (
	codeBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	newlineRuns      = regexp.MustCompile(`[\r\n]+`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
)

// ExtractJSON recovers the first JSON value from model output. It tries the whole
// text, then a fenced code block, then the span between the first '{' and the last '}',
// and finally that span with whitespace runs collapsed. Returns nil when nothing parses.
func ExtractJSON(responseText string) any {
	trimmed := strings.TrimSpace(responseText)
	if trimmed == "" {
		return nil
	}

	if v, ok := tryParse(trimmed); ok {
		return v
	}

	if m := codeBlockPattern.FindStringSubmatch(trimmed); m != nil {
		if v, ok := tryParse(m[1]); ok {
			return v
		}
	}

	first := strings.Index(trimmed, "{")
	last := strings.LastIndex(trimmed, "}")
	if first != -1 && last > first {
		candidate := trimmed[first : last+1]
		if v, ok := tryParse(candidate); ok {
			return v
		}
		cleaned := whitespaceRuns.ReplaceAllString(newlineRuns.ReplaceAllString(candidate, " "), " ")
		if v, ok := tryParse(cleaned); ok {
			return v
		}
	}

	return nil
}

func tryParse(s string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return v, true
}

// ValidateMoodResult turns an untyped parse result into a MoodResult tagged as AI output.
// It returns nil unless parsed is an object whose mood matches a canonical label, ignoring case.
func ValidateMoodResult(parsed any) *MoodResult {
	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil
	}

	rawMood, _ := obj["mood"].(string)
	mood, ok := canonicalMood(rawMood)
	if !ok {
		return nil
	}

	result := &MoodResult{
		Mood:             mood,
		Confidence:       ConfidenceMedium,
		EmotionsDetected: []string{},
		Reason:           defaultReason,
		AnalysisSource:   SourceAI,
	}

	if c, ok := obj["confidence"].(string); ok {
		switch Confidence(c) {
		case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
			result.Confidence = Confidence(c)
		}
	}

	if list, ok := obj["emotionsDetected"].([]any); ok {
		for _, e := range list {
			if len(result.EmotionsDetected) == maxEmotions {
				break
			}
			if s, ok := e.(string); ok {
				result.EmotionsDetected = append(result.EmotionsDetected, s)
			}
		}
	}

	if reason, ok := obj["reason"].(string); ok {
		result.Reason = truncate(reason, maxReasonLength)
	}

	return result
}

func canonicalMood(s string) (Mood, bool) {
	for _, m := range CanonicalMoods {
		if strings.EqualFold(string(m), s) {
			return m, true
		}
	}
	return "", false
}

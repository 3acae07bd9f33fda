package ai

import "strings"

var negativeKeywords = []string{
	"sad", "lonely", "alone", "tired", "pain", "hurt", "worried", "anxious",
	"scared", "afraid", "hopeless", "helpless", "depressed", "terrible",
	"awful", "miserable", "crying", "tears", "can't sleep", "no appetite",
	"don't want", "give up", "worthless", "useless", "nobody cares",
	"isolated", "empty", "numb", "exhausted", "overwhelmed", "bad",
	"not good", "not well", "not great", "not happy", "unhappy", "upset",
	"struggling", "difficult", "hard", "stress", "stressed", "nervous",
	"restless", "sleepless", "insomnia", "nightmare", "no energy",
	"low", "down", "blue", "gloomy", "bored", "dull", "sick", "weak",
	"uncomfortable", "suffering", "ache", "sore", "irritated", "angry",
	"frustrated", "annoyed", "neglected", "ignored", "abandoned",
	"no", "not really", "hardly", "barely", "poorly", "worse",
}

var severeKeywords = []string{
	"hopeless", "worthless", "give up", "don't want to live", "no point",
	"end it", "can't go on", "nobody cares", "all alone", "nothing matters",
	"useless", "burden", "die", "death", "suicide", "kill", "no reason",
	"no purpose", "want to disappear", "cant take it", "miserable",
}

var positiveKeywords = []string{
	"good", "great", "happy", "fine", "well", "wonderful", "blessed",
	"thankful", "grateful", "enjoyed", "fun", "relaxed", "peaceful",
	"calm", "comfortable", "loved", "supported", "better", "excellent",
	"amazing", "fantastic", "joyful", "cheerful", "content", "satisfied",
	"slept well", "ate well", "feeling okay", "pretty good", "not bad",
}

// FallbackClassifier scores answers against fixed keyword lists. It is used whenever
// the model is unreachable or its output does not validate.
type FallbackClassifier struct{}

func NewFallbackClassifier() *FallbackClassifier {
	return &FallbackClassifier{}
}

// Classify applies the keyword rules. Severe language dominates, three or more
// negative hits escalate to Depressed, and a lone negative signal is Stressed unless
// positives clearly outweigh it.
func (f *FallbackClassifier) Classify(answers []QuestionAnswer) MoodResult {
	var negative, severe, positive int
	emotions := make([]string, 0, maxEmotions)
	seen := make(map[string]bool)

	for _, qa := range answers {
		answer := strings.ToLower(qa.Answer)

		for _, keyword := range negativeKeywords {
			if strings.Contains(answer, keyword) {
				negative++
				if !seen[keyword] {
					seen[keyword] = true
					emotions = append(emotions, keyword)
				}
			}
		}
		for _, keyword := range severeKeywords {
			if strings.Contains(answer, keyword) {
				severe++
			}
		}
		for _, keyword := range positiveKeywords {
			if strings.Contains(answer, keyword) {
				positive++
			}
		}
	}

	var mood Mood
	var reason string
	switch {
	case severe >= 1:
		mood, reason = MoodHighlyDepressed, "Severe distress indicators detected in responses"
	case negative >= 3:
		mood, reason = MoodDepressed, "Significant negative emotional indicators found across multiple responses"
	case negative >= 1 && negative > positive:
		mood, reason = MoodStressed, "Stress and worry indicators detected in responses"
	case negative >= 1 && positive <= 1:
		mood, reason = MoodStressed, "Some negative indicators detected without strong positive signals"
	default:
		mood, reason = MoodNormal, "Responses indicate a generally stable emotional state"
	}

	if len(emotions) > maxEmotions {
		emotions = emotions[:maxEmotions]
	}

	return MoodResult{
		Mood:             mood,
		Confidence:       ConfidenceMedium,
		EmotionsDetected: emotions,
		Reason:           reason,
		AnalysisSource:   SourceFallback,
	}
}

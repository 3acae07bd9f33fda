package ai

import (
	"fmt"
	"strings"
)

// moodInstructions is the output contract ExtractJSON and ValidateMoodResult rely on:
// a single JSON object with the keys mood, confidence, emotionsDetected and reason.
const moodInstructions = `ANALYSIS INSTRUCTIONS:
- Look carefully for ANY signs of loneliness, sadness, anxiety, stress, pain, sleep issues, or loss of appetite
- Even mild negative signals should shift the mood away from "Normal"
- If the person mentions feeling alone, not sleeping, not eating, pain, or worry, this is NOT "Normal"
- Classify the mood as one of: "Normal", "Stressed", "Depressed", "Highly Depressed"

MOOD GUIDE:
- "Normal" = ONLY if responses are clearly positive or genuinely neutral with no concerning signs
- "Stressed" = any signs of worry, mild anxiety, tension, minor sleep or appetite issues
- "Depressed" = sadness, hopelessness, withdrawal, loneliness, significant sleep/appetite problems
- "Highly Depressed" = severe depression indicators, expressions of worthlessness, giving up, extreme isolation

Respond with ONLY this JSON, nothing else:
{"mood":"Normal or Stressed or Depressed or Highly Depressed","confidence":"low or medium or high","emotionsDetected":["emotion1","emotion2"],"reason":"brief explanation"}`

// BuildMoodPrompt renders the answers into the classification prompt.
func BuildMoodPrompt(answers []QuestionAnswer) string {
	blocks := make([]string, 0, len(answers))
	for i, qa := range answers {
		category := qa.Category
		if category == "" {
			category = "general"
		}
		blocks = append(blocks, fmt.Sprintf("Q%d (%s): %s\nA%d: %s", i+1, category, qa.Question, i+1, qa.Answer))
	}

	return fmt.Sprintf(`You are a clinical psychologist analyzing an elderly person's emotional wellbeing. Be sensitive to subtle signs of distress - elderly people often understate their problems.

Here are their daily check-in responses:

%s

%s`, strings.Join(blocks, "\n\n"), moodInstructions)
}

// Package seed holds the default check-in question bank.
package seed

import (
	_ "embed"
	"fmt"

	"carecompanion-backend/internal/question/domain"

	"github.com/goccy/go-json"
)

//go:embed questions.json
var questionsJSON []byte

type seedQuestion struct {
	QuestionText string          `json:"question_text"`
	Category     domain.Category `json:"category"`
}

// Questions decodes the embedded bank in file order. All returned questions are active.
func Questions() ([]*domain.Question, error) {
	var raw []seedQuestion
	if err := json.Unmarshal(questionsJSON, &raw); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}
	out := make([]*domain.Question, 0, len(raw))
	for _, q := range raw {
		out = append(out, &domain.Question{
			QuestionText: q.QuestionText,
			Category:     q.Category,
			IsActive:     true,
		})
	}
	return out, nil
}

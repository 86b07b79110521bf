// Package export renders assembled question sets as exam-sheet markdown
// or as a JSON run artifact.
package export

import (
	"encoding/json"
	"time"

	"github.com/arjun/mcqgen/internal/assemble"
	"github.com/arjun/mcqgen/internal/store"
)

// Question is one question in export form, shared by the markdown and
// JSON renderers.
type Question struct {
	Number       int               `json:"question_number"`
	ConceptID    string            `json:"concept_id"`
	Stem         string            `json:"stem"`
	Options      map[string]string `json:"options"`
	CorrectLabel string            `json:"correct_answer"`
	Explanations map[string]string `json:"explanation,omitempty"`
	Difficulty   string            `json:"difficulty"`
	Score        float64           `json:"validation_score"`
	WasCorrected bool              `json:"was_corrected"`
	IntegralType string            `json:"integral_type"`
}

// Export is the top-level JSON structure for an exported run.
type Export struct {
	Title         string         `json:"title"`
	RunID         string         `json:"run_id,omitempty"`
	GeneratedAt   time.Time      `json:"generated_at"`
	QuestionCount int            `json:"question_count"`
	Difficulty    map[string]int `json:"difficulty_distribution"`
	Questions     []Question     `json:"questions"`
}

// FromAssembled converts freshly assembled items.
func FromAssembled(items []assemble.Item) []Question {
	questions := make([]Question, 0, len(items))
	for _, item := range items {
		questions = append(questions, Question{
			Number:       item.QuestionNumber,
			ConceptID:    item.ConceptID,
			Stem:         item.Stem,
			Options:      item.Options,
			CorrectLabel: item.CorrectLabel,
			Explanations: item.Explanations,
			Difficulty:   string(item.Difficulty),
			Score:        item.Score,
			WasCorrected: item.WasCorrected,
			IntegralType: item.IntegralType,
		})
	}
	return questions
}

// FromStored converts items read back from the store.
func FromStored(items []*store.Item) []Question {
	questions := make([]Question, 0, len(items))
	for _, item := range items {
		questions = append(questions, Question{
			Number:       item.QuestionNumber,
			ConceptID:    item.ConceptID,
			Stem:         item.Stem,
			Options:      item.Options,
			CorrectLabel: item.CorrectLabel,
			Explanations: item.Explanations,
			Difficulty:   item.Difficulty,
			Score:        item.Score,
			WasCorrected: item.WasCorrected,
			IntegralType: item.IntegralType,
		})
	}
	return questions
}

// New builds the export envelope for a question set. The difficulty
// distribution is computed from the questions.
func New(title, runID string, questions []Question) Export {
	if title == "" {
		title = defaultTitle
	}
	difficulty := make(map[string]int)
	for _, q := range questions {
		difficulty[q.Difficulty]++
	}
	return Export{
		Title:         title,
		RunID:         runID,
		GeneratedAt:   time.Now().UTC(),
		QuestionCount: len(questions),
		Difficulty:    difficulty,
		Questions:     questions,
	}
}

// JSON renders the export as indented JSON. With explanations disabled
// the per-question explanation maps are omitted entirely.
func JSON(e Export, includeExplanations bool) ([]byte, error) {
	if !includeExplanations {
		stripped := make([]Question, len(e.Questions))
		copy(stripped, e.Questions)
		for i := range stripped {
			stripped[i].Explanations = nil
		}
		e.Questions = stripped
	}
	return json.MarshalIndent(e, "", "  ")
}

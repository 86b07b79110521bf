package assemble

import (
	"math/rand/v2"

	"github.com/arjun/mcqgen/internal/concept"
	"github.com/arjun/mcqgen/internal/distractor"
	"github.com/arjun/mcqgen/internal/stemgen"
)

// optionCount is the fixed number of answer options per question.
const optionCount = 4

// labels are the option labels in canonical order.
var labels = []string{"a", "b", "c", "d"}

// fillerPool holds clearly-non-mathematical placeholder options used to
// pad a question when fewer than three distractors survived selection.
// Filler is always tagged incorrect and never displaces the correct
// answer or a real distractor.
var fillerPool = []string{
	`$\text{None of these}$`,
	`$\text{Cannot be determined}$`,
	`$\text{The integral does not exist}$`,
	`$\text{Insufficient information}$`,
}

const fillerExplanation = "This is a filler option."

// Item is a fully assembled multiple-choice question.
type Item struct {
	// QuestionNumber is the 1-based position in the final set.
	QuestionNumber int

	// ConceptID is the source concept.
	ConceptID string

	// Stem is the question text.
	Stem string

	// Options maps each label to its option text.
	Options map[string]string

	// CorrectLabel is the single label holding the correct answer.
	CorrectLabel string

	// Explanations maps each label to why that option is right or
	// wrong, plus a "correct" entry with the full solution reasoning.
	Explanations map[string]string

	// Difficulty, Score, WasCorrected and IntegralType carry the
	// item's provenance through to export and storage.
	Difficulty   concept.Difficulty
	Score        float64
	WasCorrected bool
	IntegralType string
}

// Assembler shuffles options into labeled questions. The random source
// is injected so test runs and replays are reproducible.
type Assembler struct {
	rng *rand.Rand
}

// New creates an Assembler. A nil rng gets a fresh randomly-seeded
// source.
func New(rng *rand.Rand) *Assembler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Assembler{rng: rng}
}

type option struct {
	text        string
	correct     bool
	explanation string
}

// Assemble builds the labeled question for one validated item. The
// working list is the correct answer plus up to three distractors,
// padded with filler to four entries, then uniformly permuted before
// labels are assigned. Exactly one label is correct in every output.
func (a *Assembler) Assemble(number int, item stemgen.ValidatedItem, distractors []distractor.Candidate) Item {
	working := make([]option, 0, optionCount)
	working = append(working, option{
		text:        item.Answer,
		correct:     true,
		explanation: "This is the correct answer.",
	})
	for _, d := range distractors {
		if len(working) == optionCount {
			break
		}
		working = append(working, option{text: d.Text, explanation: d.Explanation})
	}
	for i := 0; len(working) < optionCount; i++ {
		working = append(working, option{text: fillerPool[i], explanation: fillerExplanation})
	}

	a.rng.Shuffle(len(working), func(i, j int) {
		working[i], working[j] = working[j], working[i]
	})

	options := make(map[string]string, optionCount)
	explanations := make(map[string]string, optionCount+1)
	correctLabel := ""
	for i, opt := range working {
		options[labels[i]] = opt.text
		explanations[labels[i]] = opt.explanation
		if opt.correct {
			correctLabel = labels[i]
		}
	}

	reasoning := item.Reasoning
	if reasoning == "" {
		reasoning = "Apply the appropriate integration technique."
	}
	explanations["correct"] = "This is the correct answer. " + reasoning

	return Item{
		QuestionNumber: number,
		ConceptID:      item.ConceptID,
		Stem:           item.Stem,
		Options:        options,
		CorrectLabel:   correctLabel,
		Explanations:   explanations,
		Difficulty:     item.Difficulty,
		Score:          item.Score,
		WasCorrected:   item.WasCorrected,
		IntegralType:   item.IntegralType,
	}
}

// Labels returns the option labels in canonical order.
func Labels() []string {
	return append([]string(nil), labels...)
}

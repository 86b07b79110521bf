package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/arjun/mcqgen/internal/assemble"
	"github.com/arjun/mcqgen/internal/concept"
	"github.com/arjun/mcqgen/internal/store"
)

func sampleQuestions() []Question {
	return []Question{
		{
			Number:    1,
			ConceptID: "power-rule-basic",
			Stem:      `Evaluate $\int x^2 \, dx$`,
			Options: map[string]string{
				"a": `$x^3 + C$`,
				"b": `$\frac{x^3}{3} + C$`,
				"c": `$2x + C$`,
				"d": `$\frac{x^2}{2} + C$`,
			},
			CorrectLabel: "b",
			Explanations: map[string]string{
				"correct": "This is the correct answer. Raise the exponent by one and divide.",
				"a":       "Forgot to divide by the new exponent.",
				"c":       "Differentiated instead of integrating.",
				"d":       "Lowered the exponent instead of raising it.",
			},
			Difficulty:   "easy",
			Score:        1.0,
			IntegralType: "power_rule",
		},
		{
			Number:    2,
			ConceptID: "trig-basic",
			Stem:      `Evaluate $\int \sin(x) \, dx$`,
			Options: map[string]string{
				"a": `$-\cos(x) + C$`,
				"b": `$\cos(x) + C$`,
				"c": `$\sin(x) + C$`,
				"d": `$\tan(x) + C$`,
			},
			CorrectLabel: "a",
			Explanations: map[string]string{
				"correct": "This is the correct answer. The antiderivative of sine is negative cosine.",
				"b":       "Dropped the sign from the antiderivative.",
				"c":       "Integrated to the same function.",
				"d":       "Confused the antiderivative with a quotient identity.",
			},
			Difficulty:   "medium",
			Score:        0.95,
			IntegralType: "trigonometric",
		},
	}
}

func TestMarkdown_ExamSheetLayout(t *testing.T) {
	doc := Markdown(sampleQuestions(), MarkdownOptions{Title: "Chapter 3", IncludeExplanations: true})

	for _, want := range []string{
		"### Chapter 3",
		"#### PRACTICE EXERCISE",
		`**1. Evaluate $\int x^2 \, dx$**`,
		`   *   (a) $x^3 + C$`,
		`   *   **(b) $\frac{x^3}{3} + C$**`,
		"   **Explanation:**",
		"   - **Correct (b):** This is the correct answer. Raise the exponent by one and divide.",
		"   - **(a):** Forgot to divide by the new exponent.",
		`**2. Evaluate $\int \sin(x) \, dx$**`,
		"**Generated Questions:** 2",
		"**Difficulty Distribution:**",
		"- Easy: 1 questions",
		"- Medium: 1 questions",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestMarkdown_OptionsInLabelOrder(t *testing.T) {
	doc := Markdown(sampleQuestions()[:1], MarkdownOptions{})

	posA := strings.Index(doc, "   *   (a)")
	posB := strings.Index(doc, "   *   **(b)")
	posC := strings.Index(doc, "   *   (c)")
	posD := strings.Index(doc, "   *   (d)")
	if posA < 0 || posB < 0 || posC < 0 || posD < 0 {
		t.Fatalf("missing option lines in:\n%s", doc)
	}
	if !(posA < posB && posB < posC && posC < posD) {
		t.Errorf("options out of order: a=%d b=%d c=%d d=%d", posA, posB, posC, posD)
	}
}

func TestMarkdown_ExplanationsOmitted(t *testing.T) {
	doc := Markdown(sampleQuestions(), MarkdownOptions{IncludeExplanations: false})
	if strings.Contains(doc, "Explanation") {
		t.Error("explanations rendered despite being disabled")
	}
}

func TestMarkdown_DefaultTitle(t *testing.T) {
	doc := Markdown(nil, MarkdownOptions{})
	if !strings.Contains(doc, "### Generated MCQs") {
		t.Errorf("default title missing:\n%s", doc)
	}
	if !strings.Contains(doc, "**Generated Questions:** 0") {
		t.Error("empty set footer missing")
	}
	if !strings.HasSuffix(doc, "**Difficulty Distribution:**") {
		t.Errorf("expected no difficulty lines for an empty set, got tail %q", doc[len(doc)-40:])
	}
}

func TestJSON_EnvelopeAndStrip(t *testing.T) {
	e := New("Chapter 3", "run-1", sampleQuestions())
	if e.QuestionCount != 2 {
		t.Errorf("question count %d", e.QuestionCount)
	}
	if e.Difficulty["easy"] != 1 || e.Difficulty["medium"] != 1 {
		t.Errorf("difficulty distribution %v", e.Difficulty)
	}

	raw, err := JSON(e, true)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["run_id"] != "run-1" || decoded["question_count"] != float64(2) {
		t.Errorf("envelope fields: %v %v", decoded["run_id"], decoded["question_count"])
	}
	first := decoded["questions"].([]any)[0].(map[string]any)
	if first["correct_answer"] != "b" {
		t.Errorf("correct answer %v", first["correct_answer"])
	}
	if _, ok := first["explanation"]; !ok {
		t.Error("explanation missing with explanations enabled")
	}

	stripped, err := JSON(e, false)
	if err != nil {
		t.Fatalf("marshal stripped: %v", err)
	}
	if strings.Contains(string(stripped), `"explanation"`) {
		t.Error("explanation present despite being disabled")
	}
	if e.Questions[0].Explanations == nil {
		t.Error("stripping mutated the caller's export")
	}
}

func TestFromAssembled(t *testing.T) {
	items := []assemble.Item{{
		QuestionNumber: 1,
		ConceptID:      "power-rule-basic",
		Stem:           `Evaluate $\int x \, dx$`,
		Options:        map[string]string{"a": "$x + C$"},
		CorrectLabel:   "a",
		Explanations:   map[string]string{"correct": "This is the correct answer."},
		Difficulty:     concept.DifficultyEasy,
		Score:          1.0,
		WasCorrected:   true,
		IntegralType:   "power_rule",
	}}

	qs := FromAssembled(items)
	if len(qs) != 1 {
		t.Fatalf("got %d questions", len(qs))
	}
	q := qs[0]
	if q.Number != 1 || q.ConceptID != "power-rule-basic" || q.Difficulty != "easy" {
		t.Errorf("unexpected mapping: %+v", q)
	}
	if !q.WasCorrected || q.Score != 1.0 || q.IntegralType != "power_rule" {
		t.Errorf("provenance lost: %+v", q)
	}
}

func TestFromStored(t *testing.T) {
	items := []*store.Item{{
		RunID:          "run-1",
		QuestionNumber: 3,
		ConceptID:      "trig-basic",
		Difficulty:     "hard",
		Stem:           `Evaluate $\int \cos(x) \, dx$`,
		Options:        map[string]string{"a": `$\sin(x) + C$`},
		CorrectLabel:   "a",
		Score:          0.9,
	}}

	qs := FromStored(items)
	if len(qs) != 1 {
		t.Fatalf("got %d questions", len(qs))
	}
	if qs[0].Number != 3 || qs[0].Difficulty != "hard" || qs[0].Score != 0.9 {
		t.Errorf("unexpected mapping: %+v", qs[0])
	}
}

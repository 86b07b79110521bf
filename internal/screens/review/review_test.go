package review

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arjun/mcqgen/internal/export"
	"github.com/arjun/mcqgen/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func sampleQuestions() []export.Question {
	return []export.Question{
		{
			Number:    1,
			ConceptID: "power-rule-basic",
			Stem:      `Evaluate $\int x^2 \, dx$.`,
			Options: map[string]string{
				"a": `$x^3 + C$`,
				"b": `$\frac{x^3}{3} + C$`,
				"c": `$2x + C$`,
				"d": `$\frac{x^2}{2} + C$`,
			},
			CorrectLabel: "b",
			Explanations: map[string]string{
				"a": "Forgets to divide by the new exponent.",
				"b": "Raise the exponent by one and divide by the new exponent.",
				"c": "Differentiates instead of integrating.",
				"d": "Keeps the old exponent in the denominator.",
			},
			Difficulty:   "easy",
			Score:        1.0,
			IntegralType: "power_rule",
		},
		{
			Number:    2,
			ConceptID: "trig-sin",
			Stem:      `Evaluate $\int \sin(x) \, dx$.`,
			Options: map[string]string{
				"a": `$\cos(x) + C$`,
				"b": `$-\cos(x) + C$`,
				"c": `$\sin(x) + C$`,
				"d": `$-\sin(x) + C$`,
			},
			CorrectLabel: "b",
			Explanations: map[string]string{
				"b": "The antiderivative of sine is negative cosine.",
			},
			Difficulty:   "medium",
			Score:        0.95,
			WasCorrected: true,
			IntegralType: "trigonometric",
		},
		{
			Number:    3,
			ConceptID: "exp-basic",
			Stem:      `Evaluate $\int e^x \, dx$.`,
			Options: map[string]string{
				"a": `$e^x + C$`,
				"b": `$x e^x + C$`,
				"c": `$\frac{e^x}{x} + C$`,
				"d": `$e^{x+1} + C$`,
			},
			CorrectLabel: "a",
			Difficulty:   "hard",
			Score:        0.9,
			IntegralType: "exponential",
		},
	}
}

func TestListScreen_Title(t *testing.T) {
	s := NewList("Generated MCQs: Integration", sampleQuestions())
	if s.Title() != "Generated MCQs: Integration" {
		t.Errorf("Title = %q, want the set title", s.Title())
	}
}

func TestListScreen_CursorNavigation(t *testing.T) {
	s := NewList("set", sampleQuestions())

	s.Update(keyPress('j'))
	if s.cursor != 1 {
		t.Errorf("cursor after j = %d, want 1", s.cursor)
	}
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	if s.cursor != 2 {
		t.Errorf("cursor should stop at last row, got %d", s.cursor)
	}

	s.Update(keyPress('k'))
	if s.cursor != 1 {
		t.Errorf("cursor after k = %d, want 1", s.cursor)
	}
	s.Update(specialKey(tea.KeyUp))
	s.Update(specialKey(tea.KeyUp))
	if s.cursor != 0 {
		t.Errorf("cursor should stop at first row, got %d", s.cursor)
	}
}

func TestListScreen_EnterOpensDetail(t *testing.T) {
	s := NewList("set", sampleQuestions())
	s.Update(keyPress('j'))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	detail, ok := push.Screen.(*DetailScreen)
	if !ok {
		t.Fatalf("expected *DetailScreen, got %T", push.Screen)
	}
	if detail.index != 1 {
		t.Errorf("detail index = %d, want the cursor row 1", detail.index)
	}
}

func TestListScreen_QuitKey(t *testing.T) {
	s := NewList("set", sampleQuestions())
	_, cmd := s.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected a command on q")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected q to quit")
	}
}

func TestListScreen_ViewShowsRows(t *testing.T) {
	s := NewList("set", sampleQuestions())
	view := s.View(100, 24)

	for _, want := range []string{"Q1", "Q2", "Q3", "easy", "medium", "hard", "corrected"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestListScreen_EmptySet(t *testing.T) {
	s := NewList("set", nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "No questions") {
		t.Error("expected empty-set message")
	}
}

func TestListScreen_ScrollFollowsCursor(t *testing.T) {
	questions := make([]export.Question, 30)
	for i := range questions {
		questions[i] = export.Question{
			Number:     i + 1,
			Stem:       "stem",
			Difficulty: "easy",
		}
	}
	s := NewList("set", questions)

	for i := 0; i < 29; i++ {
		s.Update(keyPress('j'))
	}
	view := s.View(100, 10)
	if !strings.Contains(view, "Q30") {
		t.Error("expected the cursor row to be visible after scrolling")
	}
	if strings.Contains(view, "Q1 ") {
		t.Error("expected the first row to scroll out of view")
	}
}

func typeString(s *ListScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func TestListScreen_FilterNarrowsRows(t *testing.T) {
	s := NewList("set", sampleQuestions())

	s.Update(keyPress('/'))
	if !s.filtering {
		t.Fatal("expected / to activate the filter")
	}
	typeString(s, "sin")

	view := s.View(100, 24)
	if !strings.Contains(view, "Q2") {
		t.Error("expected the matching question to stay visible")
	}
	if strings.Contains(view, "Q1 ") || strings.Contains(view, "Q3 ") {
		t.Error("expected non-matching questions to be filtered out")
	}
	if !strings.Contains(view, "1 of 3") {
		t.Error("expected the match count in the filter bar")
	}
}

func TestListScreen_FilterCommitAndOpen(t *testing.T) {
	s := NewList("set", sampleQuestions())

	s.Update(keyPress('/'))
	typeString(s, "sin")
	s.Update(specialKey(tea.KeyEnter))

	if s.filtering {
		t.Fatal("expected Enter to commit the filter")
	}
	if s.query != "sin" {
		t.Fatalf("query = %q, want sin", s.query)
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter over the filtered row")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	detail := push.Screen.(*DetailScreen)
	if detail.index != 1 {
		t.Errorf("detail index = %d, want the full-set index 1", detail.index)
	}
}

func TestListScreen_FilterEscCancels(t *testing.T) {
	s := NewList("set", sampleQuestions())

	s.Update(keyPress('/'))
	typeString(s, "sin")
	s.Update(specialKey(tea.KeyEscape))

	if s.filtering || s.query != "" {
		t.Error("expected Esc to cancel the filter")
	}
	if got := len(s.visible()); got != 3 {
		t.Errorf("visible rows = %d, want all 3", got)
	}
}

func TestListScreen_EscClearsCommittedFilter(t *testing.T) {
	s := NewList("set", sampleQuestions())

	s.Update(keyPress('/'))
	typeString(s, "sin")
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd != nil {
		t.Error("clearing a filter should not quit")
	}
	if s.query != "" {
		t.Errorf("query = %q, want cleared", s.query)
	}

	_, cmd = s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected Esc without a filter to quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit command")
	}
}

func TestListScreen_TypingDoesNotQuit(t *testing.T) {
	s := NewList("set", sampleQuestions())

	s.Update(keyPress('/'))
	_, cmd := s.Update(keyPress('q'))
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatal("q typed into the filter must not quit")
		}
	}
	if s.query != "q" {
		t.Errorf("query = %q, want q", s.query)
	}
}

func TestDetail_OptionsInLabelOrder(t *testing.T) {
	d := newDetail(sampleQuestions(), 0)

	if len(d.choice.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(d.choice.Options))
	}
	if d.choice.Options[0] != `$x^3 + C$` {
		t.Errorf("option 0 = %q, want the (a) text", d.choice.Options[0])
	}
	if d.choice.CorrectIndex != 1 {
		t.Errorf("CorrectIndex = %d, want 1 for label b", d.choice.CorrectIndex)
	}
}

func TestDetail_AnswerCorrect(t *testing.T) {
	d := newDetail(sampleQuestions(), 0)

	d.Update(specialKey(tea.KeyDown))
	d.Update(specialKey(tea.KeyEnter))

	if !d.choice.Submitted {
		t.Fatal("expected submitted state after Enter")
	}
	if !d.choice.IsCorrect() {
		t.Fatal("expected the chosen option to be correct")
	}
	view := d.View(100, 40)
	if !strings.Contains(view, "Correct!") {
		t.Error("expected the correct verdict in the view")
	}
	if !strings.Contains(view, "divide by the new exponent") {
		t.Error("expected the explanation panel after answering")
	}
}

func TestDetail_AnswerWrong(t *testing.T) {
	d := newDetail(sampleQuestions(), 0)

	d.Update(specialKey(tea.KeyEnter))

	if d.choice.IsCorrect() {
		t.Fatal("option a should be wrong")
	}
	view := d.View(100, 40)
	if !strings.Contains(view, "Not quite") {
		t.Error("expected the wrong verdict in the view")
	}
	if !strings.Contains(view, "The answer is (b)") {
		t.Error("expected the correct label in the verdict")
	}
}

func TestDetail_RevealWithoutAnswering(t *testing.T) {
	d := newDetail(sampleQuestions(), 0)

	d.Update(keyPress('r'))

	if !d.choice.Submitted {
		t.Fatal("expected reveal to submit the component")
	}
	if d.choice.ChosenIndex != -1 {
		t.Errorf("ChosenIndex = %d, want -1 after reveal", d.choice.ChosenIndex)
	}
	view := d.View(100, 40)
	if strings.Contains(view, "Correct!") || strings.Contains(view, "Not quite") {
		t.Error("reveal should not show a verdict")
	}
	if !strings.Contains(view, "divide by the new exponent") {
		t.Error("expected the explanation panel after reveal")
	}
}

func TestDetail_NextPrevNavigation(t *testing.T) {
	d := newDetail(sampleQuestions(), 0)

	d.Update(keyPress('n'))
	if d.index != 1 {
		t.Errorf("index after n = %d, want 1", d.index)
	}
	if d.choice.Submitted {
		t.Error("navigation should reset the answer state")
	}
	if d.Title() != "Question 2/3" {
		t.Errorf("Title = %q, want Question 2/3", d.Title())
	}

	d.Update(specialKey(tea.KeyRight))
	d.Update(specialKey(tea.KeyRight))
	if d.index != 2 {
		t.Errorf("index should stop at the last question, got %d", d.index)
	}

	d.Update(keyPress('p'))
	d.Update(specialKey(tea.KeyLeft))
	d.Update(specialKey(tea.KeyLeft))
	if d.index != 0 {
		t.Errorf("index should stop at the first question, got %d", d.index)
	}
}

func TestDetail_QPopsBackToList(t *testing.T) {
	d := newDetail(sampleQuestions(), 0)
	_, cmd := d.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected a command on q")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected q to pop back to the list")
	}
}

func TestDetail_MissingExplanations(t *testing.T) {
	d := newDetail(sampleQuestions(), 2)

	d.Update(keyPress('r'))
	view := d.View(100, 40)
	if strings.Contains(view, "Explanation") {
		t.Error("question without explanations should not render the panel")
	}
}

func TestDetail_KeyHints(t *testing.T) {
	d := newDetail(sampleQuestions(), 0)
	if len(d.KeyHints()) != 5 {
		t.Errorf("KeyHints before answering = %d, want 5", len(d.KeyHints()))
	}
	d.Update(specialKey(tea.KeyEnter))
	if len(d.KeyHints()) != 2 {
		t.Errorf("KeyHints after answering = %d, want 2", len(d.KeyHints()))
	}
}

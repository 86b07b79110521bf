package concept

import (
	"strings"
	"testing"
)

func TestConceptValidate_FieldChecks(t *testing.T) {
	valid := Concept{ID: "power-rule", Name: "Power rule", Formula: "x^2", Difficulty: DifficultyEasy}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid concept should pass: %v", err)
	}

	c := valid
	c.ID = " "
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for empty id, got nil")
	}

	c = valid
	c.Formula = "x +"
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for unparseable formula, got nil")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error should mention parsing, got: %v", err)
	}

	c = valid
	c.Difficulty = "extreme"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for unknown difficulty, got nil")
	}
}

func TestValidateSet_DetectsCycle(t *testing.T) {
	concepts := makeValidConcepts()
	concepts[0].Prerequisites = []string{concepts[1].ID}
	concepts[1].Prerequisites = []string{concepts[0].ID}
	err := ValidateSet(concepts)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidateSet_DetectsDanglingPrereq(t *testing.T) {
	concepts := makeValidConcepts()
	concepts[1].Prerequisites = []string{"nonexistent"}
	err := ValidateSet(concepts)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidateSet_DanglingPrereqIsNotACycle(t *testing.T) {
	concepts := makeValidConcepts()
	concepts[1].Prerequisites = []string{"nonexistent"}
	err := ValidateSet(concepts)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if strings.Contains(err.Error(), "cycle") {
		t.Errorf("dangling reference must not be reported as a cycle: %v", err)
	}
}

func TestValidateSet_DetectsDuplicateID(t *testing.T) {
	concepts := makeValidConcepts()
	concepts[1].ID = concepts[0].ID
	err := ValidateSet(concepts)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateSet_AcceptsValidChain(t *testing.T) {
	concepts := makeValidConcepts()
	concepts[1].Prerequisites = []string{concepts[0].ID}
	concepts[2].Prerequisites = []string{concepts[1].ID}
	if err := ValidateSet(concepts); err != nil {
		t.Fatalf("valid prerequisite chain should pass: %v", err)
	}
}

// makeValidConcepts returns a set that passes every per-record check.
func makeValidConcepts() []Concept {
	return []Concept{
		{ID: "power-rule", Name: "Power rule", Formula: "x^3", Difficulty: DifficultyEasy},
		{ID: "linear-sub", Name: "Linear substitution", Formula: "sin(2*x)", Difficulty: DifficultyMedium},
		{ID: "log-form", Name: "Logarithmic form", Formula: "1/(x+1)", Difficulty: DifficultyHard},
	}
}

package concept

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validBankYAML = `format_version: "1.0"
name: Chapter 3 integrals
source: chap3_notes.md
concepts:
  - id: power-rule
    name: Power rule
    formula: x^2
    difficulty: easy
    context: Integrals of monomials.
  - id: linear-sub
    name: Linear substitution
    formula: cos(3*x)
    difficulty: medium
    prerequisites: [power-rule]
    worked_example: "Let u = 3x, then du = 3 dx."
`

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write bank fixture: %v", err)
	}
	return path
}

func TestLoadBank_Valid(t *testing.T) {
	bank, err := LoadBank(writeBank(t, validBankYAML))
	if err != nil {
		t.Fatalf("valid bank should load: %v", err)
	}
	if bank.Name != "Chapter 3 integrals" {
		t.Errorf("bank name = %q", bank.Name)
	}
	if len(bank.Concepts) != 2 {
		t.Fatalf("expected 2 concepts, got %d", len(bank.Concepts))
	}
	if bank.Concepts[1].Difficulty != DifficultyMedium {
		t.Errorf("difficulty not mapped, got %q", bank.Concepts[1].Difficulty)
	}
	if bank.Concepts[1].Prerequisites[0] != "power-rule" {
		t.Errorf("prerequisites not mapped, got %v", bank.Concepts[1].Prerequisites)
	}
}

func TestLoadBank_MissingFormatVersion(t *testing.T) {
	content := strings.Replace(validBankYAML, `format_version: "1.0"`, "", 1)
	_, err := LoadBank(writeBank(t, content))
	if err == nil {
		t.Fatal("expected error for missing format_version, got nil")
	}
	if !strings.Contains(err.Error(), "format_version") {
		t.Errorf("error should mention format_version, got: %v", err)
	}
}

func TestLoadBank_FormatVersionGating(t *testing.T) {
	tests := []struct {
		version string
		wantErr string
	}{
		{"1.0", ""},
		{"2.0", "unsupported"},
		{"1.9", "newer"},
		{"abc", "invalid"},
	}
	for _, tc := range tests {
		content := strings.Replace(validBankYAML, `"1.0"`, `"`+tc.version+`"`, 1)
		_, err := LoadBank(writeBank(t, content))
		if tc.wantErr == "" {
			if err != nil {
				t.Errorf("version %s should load: %v", tc.version, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("version %s should be rejected", tc.version)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("version %s: error should contain %q, got: %v", tc.version, tc.wantErr, err)
		}
	}
}

func TestLoadBank_RejectsInvalidConcepts(t *testing.T) {
	content := strings.Replace(validBankYAML, "formula: x^2", "formula: x +", 1)
	_, err := LoadBank(writeBank(t, content))
	if err == nil {
		t.Fatal("expected error for unparseable formula, got nil")
	}
}

func TestLoadBank_RejectsMalformedYAML(t *testing.T) {
	_, err := LoadBank(writeBank(t, "concepts: [unclosed"))
	if err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

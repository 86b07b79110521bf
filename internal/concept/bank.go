package concept

import (
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// BankFormatVersion is the concept-bank file format this build writes and
// the newest format it accepts. Older files with the same major version
// still load.
const BankFormatVersion = "1.0"

// Bank is a set of pre-extracted concepts loaded from a YAML file,
// an alternative front door to running the LLM extractor over raw text.
type Bank struct {
	FormatVersion string
	Name          string
	Source        string
	Concepts      []Concept
}

// bankFile is the YAML wire form of a bank. Kept separate from the domain
// types so malformed files are rejected at the boundary.
type bankFile struct {
	FormatVersion string        `yaml:"format_version"`
	Name          string        `yaml:"name"`
	Source        string        `yaml:"source"`
	Concepts      []bankConcept `yaml:"concepts"`
}

type bankConcept struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Formula       string   `yaml:"formula"`
	Difficulty    string   `yaml:"difficulty"`
	Prerequisites []string `yaml:"prerequisites"`
	Context       string   `yaml:"context"`
	WorkedExample string   `yaml:"worked_example"`
}

// LoadBank reads, version-gates, and validates a concept bank file.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read concept bank: %w", err)
	}

	var file bankFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse concept bank %s: %w", path, err)
	}
	if err := checkFormatVersion(file.FormatVersion); err != nil {
		return nil, fmt.Errorf("concept bank %s: %w", path, err)
	}

	bank := &Bank{
		FormatVersion: file.FormatVersion,
		Name:          file.Name,
		Source:        file.Source,
		Concepts:      make([]Concept, 0, len(file.Concepts)),
	}
	for _, c := range file.Concepts {
		bank.Concepts = append(bank.Concepts, Concept{
			ID:            c.ID,
			Name:          c.Name,
			Formula:       c.Formula,
			Difficulty:    Difficulty(c.Difficulty),
			Prerequisites: c.Prerequisites,
			Context:       c.Context,
			WorkedExample: c.WorkedExample,
		})
	}

	if err := ValidateSet(bank.Concepts); err != nil {
		return nil, fmt.Errorf("concept bank %s: %w", path, err)
	}
	return bank, nil
}

// checkFormatVersion accepts same-major, not-newer bank formats.
func checkFormatVersion(v string) error {
	if v == "" {
		return fmt.Errorf("missing format_version (current is %s)", BankFormatVersion)
	}
	canon, supported := "v"+v, "v"+BankFormatVersion
	if !semver.IsValid(canon) {
		return fmt.Errorf("invalid format_version %q", v)
	}
	if semver.Major(canon) != semver.Major(supported) {
		return fmt.Errorf("unsupported format_version %s (this build reads %s.x)", v, semver.Major(supported))
	}
	if semver.Compare(canon, supported) > 0 {
		return fmt.Errorf("format_version %s is newer than the supported %s", v, BankFormatVersion)
	}
	return nil
}

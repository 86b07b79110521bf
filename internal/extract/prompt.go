package extract

import "fmt"

const systemPrompt = `You are an expert mathematics educator analyzing calculus content to extract structured concepts for MCQ generation.

Rules:
- Parse the provided content and extract individual mathematical concepts.
- Each concept must be ATOMIC: independently testable as a single MCQ. Do not create overly broad concepts.
- For chapter content: identify distinct integration techniques, formulas and theorems, extract worked examples as references, and classify difficulty from the prerequisite knowledge involved.
- For existing MCQs: identify the underlying concept each question tests, extract the formula or technique involved, and infer difficulty from question complexity.
- Write formulas in plain calculator notation (x^2, sin(2*x), 1/(1+x^2)), not LaTeX.
- Difficulty levels: easy (recall), medium (application), hard (multi-step or synthesis).
- Extract 30-50 concepts for a full chapter; fewer for short excerpts.`

// buildUserMessage frames the source text for the selected analysis mode.
func buildUserMessage(sourceText string, src Source) string {
	if src == SourceMCQs {
		return fmt.Sprintf(`Analyze these existing MCQs and extract the underlying mathematical concepts:

%s

For each unique concept or technique being tested, create a concept object.`, sourceText)
	}

	return fmt.Sprintf(`Extract mathematical concepts from this chapter content:

%s

Cover all major topics in the material.`, sourceText)
}

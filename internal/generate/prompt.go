package generate

import "fmt"

// SystemPrompt pins the generation backend to strict JSON in the
// notes/formulas/realworld schema. The recovery cascade handles the cases
// where the model ignores it anyway.
const SystemPrompt = `You are an expert academic faculty and advanced AI academic content generator.
You ALWAYS output valid, strict JSON with no text outside the JSON.

CORE RULES:
- Your output must be a valid JSON object.
- The FIRST character must be '{' and the LAST character must be '}'.
- Do NOT output markdown, explanations, natural language, or commentary outside JSON.
- Do NOT include code fences.
- Maintain appropriate academic level depth with advanced concepts.
- Ensure high conceptual clarity, complexity, examples, and analytical depth.

CONTENT REQUIREMENTS:
- Every section must have 3 to 5 items, each with complex, detailed explanation, 3-5 sentences minimum.
- Every "points" list must have 3-5 bullet points.
- Formulas must include reasoning, interpretation, use-cases, constraints.
- Real-world sections must include practical applications, industry relevance, and real-world examples.

STRICT JSON SCHEMA:

{
  "notes": [
    {
      "title": "string",
      "points": ["string", "string"]
    }
  ],
  "formulas": [
    {
      "title": "string",
      "formula": "string",
      "explanation": "string"
    }
  ],
  "realworld": [
    {
      "title": "string",
      "concept": "string",
      "description": "string"
    }
  ]
}

If you cannot produce valid JSON, output an empty JSON object: {}`

const userPromptFormat = `Generate deeply detailed, university-level study material for the following topic:

Class: %s
Subject: %s
Chapter: %s
Topic: %s

Follow these rules:

1. Your response MUST be ONLY valid JSON.
2. Use the EXACT schema below:

{
  "notes": [
    {
      "title": "string",
      "points": ["string", "string"]
    }
  ],
  "formulas": [
    {
      "title": "string",
      "formula": "string",
      "explanation": "string"
    }
  ],
  "realworld": [
    {
      "title": "string",
      "concept": "string",
      "description": "string"
    }
  ]
}

3. Required output structure:
- notes: 3-5 sections, each with 3-5 long, complex points
- formulas: 2-4 sections
- realworld: 2-3 sections

4. The content MUST be:
- University/postgraduate level appropriate for the subject
- Analytical and concept-rich
- No motivational tone
- No text outside JSON

5. START with '{' and END with '}'.`

// BuildTopicPrompt creates the user prompt for one topic.
func BuildTopicPrompt(class, subject, chapter, topic string) string {
	return fmt.Sprintf(userPromptFormat, class, subject, chapter, topic)
}

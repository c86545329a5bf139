// Package extract turns raw syllabus text into structured import data
// using a local LLM. Everything here degrades to typed errors when the
// model is unreachable; file-based import stays available without it.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmtabor/studyarc/internal/importer"
	"github.com/jmtabor/studyarc/internal/llm"
)

// SyllabusExtractor parses free-form syllabus text into the import schema.
type SyllabusExtractor interface {
	ParseSyllabus(ctx context.Context, text string) (*importer.SyllabusSchema, error)
}

type syllabusExtractor struct {
	client llm.Client
}

// NewSyllabusExtractor creates a SyllabusExtractor backed by an LLM client.
func NewSyllabusExtractor(client llm.Client) SyllabusExtractor {
	return &syllabusExtractor{client: client}
}

func (s *syllabusExtractor) ParseSyllabus(ctx context.Context, text string) (*importer.SyllabusSchema, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("syllabus text is empty")
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskParse,
		SystemPrompt: parseSyllabusSystemPrompt,
		UserPrompt:   "Extract the structured data from this syllabus:\n\n" + text,
	})
	if err != nil {
		return nil, fmt.Errorf("llm syllabus parse failed: %w", err)
	}

	schema, err := llm.ExtractJSON[importer.SyllabusSchema](resp.Text, validateExtractedSchema)
	if err != nil {
		return nil, fmt.Errorf("extracting syllabus data: %w", err)
	}
	return &schema, nil
}

// validateExtractedSchema runs the import validators against the model
// output so a hallucinated event type or weight fails here, not at
// import time.
func validateExtractedSchema(schema importer.SyllabusSchema) error {
	if errs := importer.ValidateSyllabusSchema(&schema); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parsedCourse struct {
	Name   string   `json:"name"`
	Weight *float64 `json:"weight,omitempty"`
	Topics []string `json:"topics,omitempty"`
}

func TestExtractJSON_Plain(t *testing.T) {
	result, err := ExtractJSON[parsedCourse](`{"name": "Chemistry"}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "Chemistry", result.Name)
}

func TestExtractJSON_CodeFence(t *testing.T) {
	raw := "Here is the extraction:\n```json\n{\"name\": \"Physics\", \"topics\": [\"waves\"]}\n```\nLet me know if you need more."
	result, err := ExtractJSON[parsedCourse](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Physics", result.Name)
	assert.Equal(t, []string{"waves"}, result.Topics)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := `Sure! The syllabus contains {"name": "Statistics"} as requested.`
	result, err := ExtractJSON[parsedCourse](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Statistics", result.Name)
}

func TestExtractJSON_NestedBracesInsideStrings(t *testing.T) {
	raw := `{"name": "Set {theory} basics", "topics": ["a}b"]}`
	result, err := ExtractJSON[parsedCourse](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Set {theory} basics", result.Name)
}

func TestExtractJSON_StripsComments(t *testing.T) {
	raw := `{
		// model annotation
		"name": "Biology", /* inline */
		"topics": ["cells"]
	}`
	result, err := ExtractJSON[parsedCourse](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Biology", result.Name)
}

func TestExtractJSON_NormalizesLeadingDecimals(t *testing.T) {
	raw := `{"name": "Econ", "weight": .85}`
	result, err := ExtractJSON[parsedCourse](raw, nil)
	require.NoError(t, err)
	require.NotNil(t, result.Weight)
	assert.Equal(t, 0.85, *result.Weight)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[parsedCourse]("I could not find any structure in that text.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(c parsedCourse) error {
		if c.Name == "" {
			return fmt.Errorf("name is required")
		}
		return nil
	}

	_, err := ExtractJSON[parsedCourse](`{"topics": ["x"]}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	result, err := ExtractJSON[parsedCourse](`{"name": "ok"}`, validator)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Name)
}

package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded value before ExtractJSON returns it.
type SchemaValidator[T any] func(T) error

// ExtractJSON pulls the first JSON object out of raw model output and
// decodes it into T. Model output is messy: the object may sit inside a
// markdown fence, between paragraphs of prose, carry C-style comments,
// or use bare ".5" number literals. All of that is tolerated here so the
// rest of the codebase only ever sees a decoded struct or ErrInvalidOutput.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	block := firstObject(stripFences(raw))
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(sanitizeJSON(block)), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}

// stripFences drops markdown fence lines (``` or ```json) wholesale.
// Content between fences is kept; the markers themselves never belong
// to the JSON payload.
func stripFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	var keep []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		keep = append(keep, line)
	}
	return strings.Join(keep, "\n")
}

// firstObject returns the first brace-balanced {...} block, ignoring
// braces that appear inside string literals.
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	var depth int
	var inString, escaped bool
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// sanitizeJSON repairs the two malformations local models produce most
// often despite prompt instructions: C-style comments and numeric
// literals without a leading zero ("-.3"). String contents pass through
// untouched.
func sanitizeJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	var inString, escaped bool
	lastToken := byte(0)

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true

		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue

		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			i += 2
			for i+1 < len(s) && !(s[i] == '*' && s[i+1] == '/') {
				i++
			}
			i++
			continue

		case c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(lastToken):
			b.WriteByte('0')
		}

		if !isSpace(c) {
			lastToken = c
		}
		b.WriteByte(c)
	}

	return b.String()
}

// startsNumber reports whether a '.' following this byte begins a new
// numeric literal rather than continuing one.
func startsNumber(prev byte) bool {
	switch prev {
	case 0, ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

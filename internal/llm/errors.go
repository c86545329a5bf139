package llm

import "errors"

// Sentinel errors for LLM calls. Callers match these with errors.Is to
// distinguish "Ollama is down" from "the model returned garbage".
var (
	ErrOllamaUnavailable = errors.New("ollama server unavailable")
	ErrTimeout           = errors.New("llm request timed out")
	ErrInvalidOutput     = errors.New("invalid llm output format")
	ErrRetryExhausted    = errors.New("llm retry attempts exhausted")
)

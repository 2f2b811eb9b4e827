package isoagent

import "context"

// Message roles understood by completion providers.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single role-tagged entry in a completion request.
type Message struct {
	Role    string
	Content string
}

// CompletionProvider is implemented by user-supplied language model clients.
// Given an ordered list of messages it returns the generated text.
// Implementations in the llm subpackage cover Gemini, Claude, and any
// OpenAI-compatible chat completions endpoint.
type CompletionProvider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Result is returned by Agent.Answer. Response holds the final formatted
// answer; the remaining fields expose the intermediate stage outputs so
// callers can trace how the answer was produced.
type Result struct {
	Response      string
	Analysis      string
	SearchResults string
	ExtractedInfo string
}

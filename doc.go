// Package isoagent provides a small conversational agent that answers
// questions about medical-device ISO standards by running a fixed
// four-stage prompt pipeline over a built-in standards catalog.
//
// # Architecture
//
// Each query passes through four sequential stages, every stage calling the
// configured completion provider exactly once:
//
//  1. Analyze classifies the query and extracts any standard numbers.
//  2. Search generates a web search query; the stage output is a fixed
//     guidance block (no real search is performed) with the generated
//     query prepended.
//  3. Extract combines the serialized catalog, the search output, and the
//     original query into a detailed answer.
//  4. Format rewrites the answer into a fixed human-readable template.
//
// The first failure aborts the remaining stages; there are no retries.
//
// # Basic Usage
//
//	agent := isoagent.New(
//	    isoagent.WithCompletionProvider(myLLM),
//	)
//	session := isoagent.NewSession(agent)
//
//	answer, err := session.Ask(ctx, "What does ISO 14971 cover?")
//	fmt.Println(answer)
//
// Session keeps the last five exchanges; failed queries leave the history
// untouched.
//
// # Interfaces
//
// Implement CompletionProvider to connect any language model:
//
//	type CompletionProvider interface {
//	    Complete(ctx context.Context, messages []Message) (string, error)
//	}
//
// The llm subpackage ships providers for Gemini, Claude, and any
// OpenAI-compatible chat completions endpoint. The catalog subpackage holds
// the standards data and its keyword search.
package isoagent

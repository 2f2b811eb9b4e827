// Package llm provides completion provider implementations for the isoagent
// pipeline.
//
// Available providers:
//
//   - Gemini: Google Gemini via the google.golang.org/genai SDK
//   - Claude: Anthropic Claude via the official Go SDK
//   - OpenAI: any server exposing a /chat/completions endpoint
//     (OpenAI, Ollama /v1, vLLM, LiteLLM, etc.)
//
// # Gemini Example
//
//	provider, err := llm.NewGemini(ctx, llm.GeminiConfig{
//	    APIKey: os.Getenv("GEMINI_API_KEY"),
//	})
//
// # Claude Example
//
//	provider, err := llm.NewClaude(llm.ClaudeConfig{
//	    APIKey: os.Getenv("ANTHROPIC_API_KEY"),
//	})
//
// # OpenAI Example
//
//	provider := llm.NewOpenAI(llm.OpenAIConfig{
//	    APIKey: os.Getenv("OPENAI_API_KEY"),
//	    Model:  "gpt-4.1-mini",
//	})
//
// # Custom Providers
//
// Implement the isoagent.CompletionProvider interface to connect any other
// language model:
//
//	type CompletionProvider interface {
//	    Complete(ctx context.Context, messages []isoagent.Message) (string, error)
//	}
package llm

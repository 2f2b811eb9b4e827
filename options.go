package isoagent

import (
	"go.uber.org/zap"

	"github.com/zenthmed/isoagent/catalog"
)

// Option configures an Agent.
type Option func(*Agent)

// WithCompletionProvider sets the language model used by the pipeline stages.
func WithCompletionProvider(p CompletionProvider) Option {
	return func(a *Agent) { a.completer = p }
}

// WithSearchCompletionProvider overrides the model used to generate search
// queries in the search stage. Defaults to the main completion provider.
func WithSearchCompletionProvider(p CompletionProvider) Option {
	return func(a *Agent) { a.searchCompleter = p }
}

// WithCatalog replaces the built-in standards catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *Agent) { a.catalog = c }
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Agent) {
		if l != nil {
			a.logger = l
		}
	}
}

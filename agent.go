package isoagent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zenthmed/isoagent/catalog"
)

// Agent runs the fixed four-stage pipeline: analyze → search → extract → format.
type Agent struct {
	completer       CompletionProvider
	searchCompleter CompletionProvider
	catalog         *catalog.Catalog
	logger          *zap.Logger
}

// New constructs an Agent with optional configuration. A completion provider
// must be supplied via WithCompletionProvider before calling Answer.
func New(opts ...Option) *Agent {
	a := &Agent{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.catalog == nil {
		a.catalog = catalog.Default()
	}
	if a.searchCompleter == nil {
		a.searchCompleter = a.completer
	}
	return a
}

// stage is one step of the pipeline. Stages run strictly in order; the first
// failure aborts the run and no partial response is returned.
type stage struct {
	name string
	run  func(ctx context.Context, st *pipelineState) error
}

// Answer runs the pipeline over a freshly constructed state for the query.
// On any completion failure the remaining stages are skipped and the error,
// wrapped with the failing stage name, is returned to the caller.
func (a *Agent) Answer(ctx context.Context, query string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, ErrEmptyQuery
	}
	if a.completer == nil {
		return Result{}, errors.New("completion provider is not configured")
	}

	st := newPipelineState(query)
	log := a.logger.With(zap.String("run_id", uuid.NewString()))
	log.Debug("starting pipeline", zap.String("query", query))

	stages := []stage{
		{"analyze", a.analyze},
		{"search", a.search},
		{"extract", a.extract},
		{"format", a.format},
	}
	for _, s := range stages {
		start := time.Now()
		if err := s.run(ctx, st); err != nil {
			log.Error("pipeline stage failed",
				zap.String("stage", s.name),
				zap.Error(err))
			return Result{}, fmt.Errorf("%s: %w", s.name, err)
		}
		log.Debug("pipeline stage complete",
			zap.String("stage", s.name),
			zap.Duration("elapsed", time.Since(start)))
	}
	return st.result(), nil
}

// Catalog returns the standards catalog the agent answers from.
func (a *Agent) Catalog() *catalog.Catalog {
	return a.catalog
}

// complete invokes a provider with a system/user message pair and rejects
// empty output, so every stage sees either usable text or an error.
func (a *Agent) complete(ctx context.Context, p CompletionProvider, system, user string) (string, error) {
	text, err := p.Complete(ctx, []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrCompletionFailed)
	}
	return text, nil
}

func (a *Agent) analyze(ctx context.Context, st *pipelineState) error {
	text, err := a.complete(ctx, a.completer, analyzeSystemPrompt, buildAnalyzeUserPrompt(st.query))
	if err != nil {
		return err
	}
	st.analysis = text
	return nil
}

func (a *Agent) search(ctx context.Context, st *pipelineState) error {
	query, err := a.complete(ctx, a.searchCompleter, searchSystemPrompt, buildSearchUserPrompt(st.query))
	if err != nil {
		return err
	}
	st.searchResults = renderSearchResults(query)
	return nil
}

func (a *Agent) extract(ctx context.Context, st *pipelineState) error {
	sys := buildExtractSystemPrompt(a.catalog.All(), st.searchResults)
	text, err := a.complete(ctx, a.completer, sys, buildExtractUserPrompt(st.query))
	if err != nil {
		return err
	}
	st.extractedInfo = text
	return nil
}

func (a *Agent) format(ctx context.Context, st *pipelineState) error {
	text, err := a.complete(ctx, a.completer, formatSystemPrompt, buildFormatUserPrompt(st.extractedInfo))
	if err != nil {
		return err
	}
	st.response = text
	return nil
}

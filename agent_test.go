package isoagent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenthmed/isoagent/catalog"
)

type recordedCall struct {
	stage  string
	system string
	user   string
}

// scriptedProvider returns canned text per stage, identified by the system
// prompt, and records every call for assertions.
type scriptedProvider struct {
	responses map[string][]string
	errs      map[string]error
	idx       map[string]int
	calls     []recordedCall
}

func newScriptedProvider() *scriptedProvider {
	return &scriptedProvider{
		responses: map[string][]string{
			"analyze": {"specific standard inquiry: ISO 14971"},
			"search":  {"ISO 14971 risk management current version"},
			"extract": {"ISO 14971 specifies risk management for medical devices"},
			"format":  {"**Standard:** ISO 14971\n**Topic:** Risk Management"},
		},
		errs: map[string]error{},
		idx:  map[string]int{},
	}
}

func stageForSystemPrompt(system string) string {
	switch {
	case system == analyzeSystemPrompt:
		return "analyze"
	case system == searchSystemPrompt:
		return "search"
	case system == formatSystemPrompt:
		return "format"
	case strings.HasPrefix(system, "You are an ISO medical device standards expert."):
		return "extract"
	}
	return ""
}

func (p *scriptedProvider) Complete(_ context.Context, messages []Message) (string, error) {
	if len(messages) != 2 || messages[0].Role != RoleSystem || messages[1].Role != RoleUser {
		return "", errors.New("unexpected message shape")
	}
	stage := stageForSystemPrompt(messages[0].Content)
	if stage == "" {
		return "", errors.New("unknown system prompt")
	}
	p.calls = append(p.calls, recordedCall{stage: stage, system: messages[0].Content, user: messages[1].Content})
	if err := p.errs[stage]; err != nil {
		return "", err
	}
	list := p.responses[stage]
	i := p.idx[stage]
	if i >= len(list) {
		// Reuse the last scripted response for repeated calls.
		i = len(list) - 1
	} else {
		p.idx[stage] = i + 1
	}
	return list[i], nil
}

func TestAnswerRunsStagesInOrder(t *testing.T) {
	p := newScriptedProvider()
	agent := New(WithCompletionProvider(p))

	res, err := agent.Answer(context.Background(), "What does ISO 14971 cover?")
	require.NoError(t, err)

	require.Len(t, p.calls, 4)
	order := []string{"analyze", "search", "extract", "format"}
	for i, want := range order {
		assert.Equal(t, want, p.calls[i].stage)
	}

	assert.Equal(t, "**Standard:** ISO 14971\n**Topic:** Risk Management", res.Response)
	assert.Equal(t, "specific standard inquiry: ISO 14971", res.Analysis)
	assert.Equal(t, "ISO 14971 specifies risk management for medical devices", res.ExtractedInfo)
	assert.Contains(t, res.SearchResults, "Search query: ISO 14971 risk management current version")
}

func TestAnswerExtractSeesSearchResultsAndCatalog(t *testing.T) {
	p := newScriptedProvider()
	agent := New(WithCompletionProvider(p))

	_, err := agent.Answer(context.Background(), "risk management")
	require.NoError(t, err)

	var extract recordedCall
	for _, c := range p.calls {
		if c.stage == "extract" {
			extract = c
		}
	}
	require.NotEmpty(t, extract.system)

	// The extract prompt must carry this run's search output and the full catalog.
	assert.Contains(t, extract.system, "Search query: ISO 14971 risk management current version")
	for _, rec := range catalog.Default().All() {
		assert.Contains(t, extract.system, rec.ID)
	}
	assert.Equal(t, "User query: risk management", extract.user)
}

func TestAnswerFailureAtSearchAborts(t *testing.T) {
	p := newScriptedProvider()
	p.errs["search"] = errors.New("rate limited")
	agent := New(WithCompletionProvider(p))

	_, err := agent.Answer(context.Background(), "tell me about IEC 62304")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCompletionFailed)
	assert.Contains(t, err.Error(), "search:")

	// analyze ran, search failed, extract and format never started.
	require.Len(t, p.calls, 2)
	assert.Equal(t, "analyze", p.calls[0].stage)
	assert.Equal(t, "search", p.calls[1].stage)
}

func TestAnswerEmptyCompletionIsFailure(t *testing.T) {
	p := newScriptedProvider()
	p.responses["format"] = []string{"   "}
	agent := New(WithCompletionProvider(p))

	_, err := agent.Answer(context.Background(), "ISO 13485?")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCompletionFailed)
	assert.Contains(t, err.Error(), "format:")
}

func TestAnswerEmptyQueryRejected(t *testing.T) {
	agent := New(WithCompletionProvider(newScriptedProvider()))

	_, err := agent.Answer(context.Background(), "   \t ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestAnswerWithoutProvider(t *testing.T) {
	agent := New()

	_, err := agent.Answer(context.Background(), "anything")
	require.Error(t, err)
}

func TestAnswerFreshStatePerCall(t *testing.T) {
	p := newScriptedProvider()
	p.responses["search"] = []string{"first run query", "second run query"}
	agent := New(WithCompletionProvider(p))

	res1, err := agent.Answer(context.Background(), "first")
	require.NoError(t, err)
	res2, err := agent.Answer(context.Background(), "second")
	require.NoError(t, err)

	assert.Contains(t, res1.SearchResults, "first run query")
	assert.Contains(t, res2.SearchResults, "second run query")
	assert.NotContains(t, res2.SearchResults, "first run query")

	// The second run's extract prompt must carry the second run's search output.
	var extractSystems []string
	for _, c := range p.calls {
		if c.stage == "extract" {
			extractSystems = append(extractSystems, c.system)
		}
	}
	require.Len(t, extractSystems, 2)
	assert.Contains(t, extractSystems[1], "second run query")
	assert.NotContains(t, extractSystems[1], "first run query")
}

func TestSeparateSearchProvider(t *testing.T) {
	main := newScriptedProvider()
	searcher := newScriptedProvider()
	agent := New(
		WithCompletionProvider(main),
		WithSearchCompletionProvider(searcher),
	)

	_, err := agent.Answer(context.Background(), "ISO 14971")
	require.NoError(t, err)

	require.Len(t, searcher.calls, 1)
	assert.Equal(t, "search", searcher.calls[0].stage)
	require.Len(t, main.calls, 3)
	for _, c := range main.calls {
		assert.NotEqual(t, "search", c.stage)
	}
}

func TestWithCatalogOverride(t *testing.T) {
	custom := catalog.New(catalog.Record{
		ID:                 "ISO 10993",
		Topic:              "Biological Evaluation of Medical Devices",
		Scope:              "Evaluation of biocompatibility",
		ProductApplication: "Devices in contact with the body",
		PublicationDate:    "2018",
		Description:        "Framework for biological evaluation within a risk management process.",
	})
	p := newScriptedProvider()
	agent := New(WithCompletionProvider(p), WithCatalog(custom))

	_, err := agent.Answer(context.Background(), "biocompatibility")
	require.NoError(t, err)

	var extract recordedCall
	for _, c := range p.calls {
		if c.stage == "extract" {
			extract = c
		}
	}
	assert.Contains(t, extract.system, "ISO 10993")
	assert.NotContains(t, extract.system, "ISO 13485")
}

package isoagent

import (
	"context"
	"strings"
)

// maxHistory bounds the conversation window; the oldest exchanges are
// dropped once it is exceeded.
const maxHistory = 5

// Exchange is one user query paired with its response.
type Exchange struct {
	Query    string
	Response string
}

// Session wraps an Agent with bounded conversation history. A session is
// meant for a single caller at a time; instantiate one Session per user.
//
// The pipeline stages do not read the history — it is recorded for the
// caller's benefit only. Use History to feed it into prompts deliberately.
type Session struct {
	agent   *Agent
	history []Exchange
}

// NewSession creates a session with empty history.
func NewSession(agent *Agent) *Session {
	return &Session{agent: agent}
}

// Ask runs the pipeline for the query and records the exchange. On failure
// the history is left untouched and the error is returned; the session
// remains usable for subsequent calls.
func (s *Session) Ask(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}
	res, err := s.agent.Answer(ctx, query)
	if err != nil {
		return "", err
	}
	s.history = append(s.history, Exchange{Query: query, Response: res.Response})
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
	return res.Response, nil
}

// History returns a copy of the recorded exchanges, oldest first.
func (s *Session) History() []Exchange {
	out := make([]Exchange, len(s.history))
	copy(out, s.history)
	return out
}

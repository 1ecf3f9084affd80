package gemini

import (
	"context"
	"strings"
)

// ScriptedRule matches requests and supplies a canned outcome. A rule with an
// InstructionPrefix matches requests whose instruction starts with it; a rule
// with MatchGrounded set matches any grounded request. Rules are tried in
// order.
type ScriptedRule struct {
	InstructionPrefix string
	MatchGrounded     bool
	Response          Response
	Err               error
}

// ScriptedExecutor replays canned exchanges without touching the network.
// It records every request it sees, so tests can assert call order, prompts
// and grounding flags. Not safe for concurrent use.
type ScriptedExecutor struct {
	Rules []ScriptedRule

	calls []Request
}

// Execute records the request and returns the first matching rule's outcome.
// An unmatched request gets a fixed default response.
func (s *ScriptedExecutor) Execute(_ context.Context, req Request) (Response, error) {
	s.calls = append(s.calls, req)
	for _, rule := range s.Rules {
		if rule.InstructionPrefix != "" && strings.HasPrefix(req.Instruction, rule.InstructionPrefix) {
			return rule.Response, rule.Err
		}
		if rule.InstructionPrefix == "" && rule.MatchGrounded && req.Grounded {
			return rule.Response, rule.Err
		}
	}
	return Response{Text: "Scripted default response."}, nil
}

// Calls returns the requests seen so far, in order.
func (s *ScriptedExecutor) Calls() []Request { return s.calls }

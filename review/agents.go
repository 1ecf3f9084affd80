// Package review implements the four-role content pipeline: draft a response,
// critique it, rewrite it from the critique, then fact-check the rewrite with
// Google Search grounding.
package review

import (
	"context"

	"veridraft/gemini"
)

// Agent is the shared role shape: a persona instruction, an explicit
// grounding flag and the executor that carries its exchanges. Grounding is a
// declared property of the role, never inferred at the call site. Agents are
// stateless between calls.
type Agent struct {
	name        string
	instruction string
	grounded    bool
	exec        gemini.Executor
}

// Name returns the role's stage name.
func (a *Agent) Name() string { return a.name }

// Grounded reports whether the role declares the search tool on its requests.
func (a *Agent) Grounded() bool { return a.grounded }

// call performs the role's single exchange.
func (a *Agent) call(ctx context.Context, prompt string) (gemini.Response, error) {
	return a.exec.Execute(ctx, gemini.Request{
		Instruction: a.instruction,
		Prompt:      prompt,
		Grounded:    a.grounded,
	})
}

// GenerationAgent produces the initial draft for a topic.
type GenerationAgent struct {
	Agent
}

func NewGenerationAgent(exec gemini.Executor) *GenerationAgent {
	return &GenerationAgent{Agent{
		name:        string(StageGeneration),
		instruction: generationInstruction,
		exec:        exec,
	}}
}

// Run sends the raw topic as the prompt and returns the draft text verbatim.
func (a *GenerationAgent) Run(ctx context.Context, topic string) (string, error) {
	resp, err := a.call(ctx, topic)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// InspectionAgent audits a draft and returns a critique.
type InspectionAgent struct {
	Agent
}

func NewInspectionAgent(exec gemini.Executor) *InspectionAgent {
	return &InspectionAgent{Agent{
		name:        string(StageInspection),
		instruction: inspectionInstruction,
		exec:        exec,
	}}
}

// Run returns the critique text verbatim.
func (a *InspectionAgent) Run(ctx context.Context, draft string) (string, error) {
	resp, err := a.call(ctx, inspectionPrompt(draft))
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// CorrectionAgent rewrites a draft from the inspector's critique. The only
// role with two inputs; both go into the prompt verbatim.
type CorrectionAgent struct {
	Agent
}

func NewCorrectionAgent(exec gemini.Executor) *CorrectionAgent {
	return &CorrectionAgent{Agent{
		name:        string(StageCorrection),
		instruction: correctionInstruction,
		exec:        exec,
	}}
}

// Run returns the rewritten text verbatim.
func (a *CorrectionAgent) Run(ctx context.Context, draft, critique string) (string, error) {
	resp, err := a.call(ctx, correctionPrompt(draft, critique))
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// VerificationAgent fact-checks the revised text with Google Search
// grounding. The only grounded role; the citation list is its primary output,
// so Run returns the full response envelope.
type VerificationAgent struct {
	Agent
}

func NewVerificationAgent(exec gemini.Executor) *VerificationAgent {
	return &VerificationAgent{Agent{
		name:        string(StageVerification),
		instruction: verificationInstruction,
		grounded:    true,
		exec:        exec,
	}}
}

// Run returns the confirmation text and the citation list in service order.
func (a *VerificationAgent) Run(ctx context.Context, revision string) (gemini.Response, error) {
	return a.call(ctx, verificationPrompt(revision))
}

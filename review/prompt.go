package review

import (
	"fmt"
	"strings"
)

// Persona contracts for the four roles. Sent verbatim as the
// systemInstruction of each exchange; never mutated.
const (
	generationInstruction = "You are a world-class content creator and initial response generator. " +
		"Your task is to produce a detailed, informative, and engaging response " +
		"to the user's query. Be confident but do not hallucinate."

	inspectionInstruction = "You are a critical auditing agent (the Inspector). Your job is to meticulously " +
		"review the provided text. Identify any factual inaccuracies, oversimplifications, " +
		"logical inconsistencies, or potential biases. Return a concise 'Critique' only."

	correctionInstruction = "You are an expert correction agent. You must take the original text and the " +
		"inspector's critique, and produce a fully corrected, high-quality, and comprehensive " +
		"rewrite that addresses all identified issues. Output only the corrected text."

	verificationInstruction = "You are the Verification Agent, tasked with confirming the factual accuracy of the " +
		"provided content by using the Google Search grounding tool. " +
		"Do not rewrite the text, simply confirm its factual basis and provide citations."
)

// inspectionPrompt wraps a draft in the critique-eliciting template.
func inspectionPrompt(draft string) string {
	return fmt.Sprintf("Critique the following text for accuracy and logic:\n\n---\n%s\n---", draft)
}

// correctionPrompt lays out the draft and the critique under labeled
// sections. Both appear verbatim and untruncated; an empty critique is still
// a valid request.
func correctionPrompt(draft, critique string) string {
	var sb strings.Builder
	sb.WriteString("Original Text:\n---\n")
	sb.WriteString(draft)
	sb.WriteString("\n---\n\n")
	sb.WriteString("Inspector's Critique:\n---\n")
	sb.WriteString(critique)
	sb.WriteString("\n---\n\n")
	sb.WriteString("Produce the corrected and improved version of the text.")
	return sb.String()
}

// verificationPrompt asks for a grounded fact-check of the revised text.
func verificationPrompt(revision string) string {
	return fmt.Sprintf("Fact-check and cite all claims in the following corrected text:\n\n---\n%s\n---", revision)
}

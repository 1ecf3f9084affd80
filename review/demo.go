package review

import "veridraft/gemini"

// DemoQuery is the walkthrough query used when none is supplied.
const DemoQuery = "What were the main causes of the Industrial Revolution?"

// Canned exchanges for the demo walkthrough. One entry per persona, plus the
// grounded verification reply with its citation list.
const (
	demoDraft = "The primary cause of the Industrial Revolution was the invention of the steam engine " +
		"in 1769 by James Watt, which allowed factories to be built anywhere, leading to rapid " +
		"urbanization and economic growth."

	demoCritique = "Critique: The statement oversimplifies the cause. James Watt improved the steam " +
		"engine (Newcomen's engine was earlier), and his work was in 1776, not 1769. The cause was " +
		"multifactorial, including capital, political stability, and agricultural advances. Reasoning is weak."

	demoRevision = "The Industrial Revolution was a period of major mechanization driven by several " +
		"interlocking factors, including significant agricultural advancements, the accumulation of " +
		"capital, favorable political stability in Great Britain, and key technological innovations. " +
		"Crucially, the practical refinement of the steam engine by figures like James Watt (following " +
		"earlier designs by Newcomen) provided a reliable, scalable power source that facilitated the " +
		"rapid growth of the textile and manufacturing industries."

	demoVerification = "Verification complete. All claims appear grounded and accurate."
)

func demoSources() []gemini.Citation {
	return []gemini.Citation{
		{
			Title: "Causes of the Industrial Revolution - History.com",
			URI:   "https://www.history.com/topics/industrial-revolution/industrial-revolution",
		},
		{
			Title: "James Watt and the Steam Engine - Science Museum",
			URI:   "https://www.sciencemuseum.org.uk/objects/watt_engine",
		},
	}
}

// DemoScript returns a scripted executor that replays the canned walkthrough
// exchanges, so the full pipeline runs end to end without an API key.
func DemoScript() *gemini.ScriptedExecutor {
	return &gemini.ScriptedExecutor{Rules: []gemini.ScriptedRule{
		{
			InstructionPrefix: "You are a world-class content creator",
			Response:          gemini.Response{Text: demoDraft},
		},
		{
			InstructionPrefix: "You are a critical auditing agent",
			Response:          gemini.Response{Text: demoCritique},
		},
		{
			InstructionPrefix: "You are an expert correction agent",
			Response:          gemini.Response{Text: demoRevision},
		},
		{
			MatchGrounded: true,
			Response:      gemini.Response{Text: demoVerification, Sources: demoSources()},
		},
	}}
}

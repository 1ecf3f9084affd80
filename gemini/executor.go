package gemini

import "context"

// Request describes one exchange with the generation service. A fresh value
// is built per call and never reused.
type Request struct {
	// Instruction is the persona contract sent as the systemInstruction.
	// Roles treat it as immutable after construction.
	Instruction string
	// Prompt is the user-facing content of the exchange.
	Prompt string
	// Grounded declares the Google Search tool on the request. A grounded
	// reply may carry citations; an ungrounded one never does.
	Grounded bool
}

// Citation identifies a supporting source returned by a grounded exchange.
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Response is the envelope parsed from a generateContent reply. Sources keeps
// the service's order and stays empty unless the request was grounded.
type Response struct {
	Text    string
	Sources []Citation
}

// Executor performs a single request/response exchange. Client is the live
// implementation; tests and dry runs substitute a ScriptedExecutor.
type Executor interface {
	Execute(ctx context.Context, req Request) (Response, error)
}

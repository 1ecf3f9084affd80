// Package report renders a completed pipeline run for humans: a console
// report with the four stage outputs and a numbered citation list, plus a
// markdown/HTML export of the same content.
package report

import (
	"fmt"
	"io"
	"strings"

	"veridraft/review"
)

const rule = "============================================================"

// Write prints the run report: each stage's output under a numbered heading,
// the final corrected text, then the citation list.
func Write(w io.Writer, res review.Result) error {
	var sb strings.Builder

	sb.WriteString(rule + "\n")
	sb.WriteString("PIPELINE REPORT\n")
	fmt.Fprintf(&sb, "Query: %s\n", res.Query)
	sb.WriteString(rule + "\n")

	section(&sb, "1. GENERATION (initial draft)", res.Draft)
	section(&sb, "2. INSPECTION (critique)", res.Critique)
	section(&sb, "3. CORRECTION (revised text)", res.Revision)
	section(&sb, "4. VERIFICATION (grounded fact-check)", res.VerificationText)

	sb.WriteString("\n" + rule + "\n")
	sb.WriteString("FINAL CORRECTED TEXT\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(res.Revision + "\n")

	sb.WriteString("\nFACTUAL SOURCES (via Google Search grounding):\n")
	if len(res.Sources) == 0 {
		sb.WriteString("  No verifiable sources found.\n")
	}
	for i, src := range res.Sources {
		fmt.Fprintf(&sb, "  %d. %s - %s\n", i+1, src.Title, src.URI)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func section(sb *strings.Builder, heading, body string) {
	fmt.Fprintf(sb, "\n--- %s ---\n", heading)
	sb.WriteString(body + "\n")
}

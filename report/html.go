package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"veridraft/review"
)

// Markdown renders the run report as markdown, citations as a numbered link
// list.
func Markdown(res review.Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Pipeline report\n\n")
	fmt.Fprintf(&sb, "**Query:** %s\n\n", res.Query)

	mdSection(&sb, "Generation (initial draft)", res.Draft)
	mdSection(&sb, "Inspection (critique)", res.Critique)
	mdSection(&sb, "Correction (revised text)", res.Revision)
	mdSection(&sb, "Verification (grounded fact-check)", res.VerificationText)

	sb.WriteString("## Factual sources\n\n")
	if len(res.Sources) == 0 {
		sb.WriteString("No verifiable sources found.\n")
		return sb.String()
	}
	for i, src := range res.Sources {
		fmt.Fprintf(&sb, "%d. [%s](%s)\n", i+1, src.Title, src.URI)
	}
	return sb.String()
}

func mdSection(sb *strings.Builder, heading, body string) {
	fmt.Fprintf(sb, "## %s\n\n%s\n\n", heading, body)
}

// RenderHTML converts the markdown report to HTML.
func RenderHTML(res review.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(res)), &buf); err != nil {
		return nil, fmt.Errorf("render html report: %w", err)
	}
	return buf.Bytes(), nil
}

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veridraft/gemini"
	"veridraft/review"
)

func sampleResult() review.Result {
	return review.Result{
		Query:            "why is the sky blue?",
		Draft:            "first draft",
		Critique:         "too vague",
		Revision:         "final corrected answer",
		VerificationText: "Verification complete.",
		Sources: []gemini.Citation{
			{Title: "Rayleigh scattering", URI: "https://example.org/rayleigh"},
			{Title: "Atmospheric optics", URI: "https://example.org/optics"},
		},
	}
}

func TestWrite_FullReport(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, Write(&sb, sampleResult()))
	out := sb.String()

	assert.Contains(t, out, "Query: why is the sky blue?")
	assert.Contains(t, out, "first draft")
	assert.Contains(t, out, "too vague")
	assert.Contains(t, out, "FINAL CORRECTED TEXT")
	assert.Contains(t, out, "Verification complete.")
	assert.Contains(t, out, "  1. Rayleigh scattering - https://example.org/rayleigh")
	assert.Contains(t, out, "  2. Atmospheric optics - https://example.org/optics")
	assert.NotContains(t, out, "No verifiable sources found.")
}

func TestWrite_NoSourcesFallback(t *testing.T) {
	t.Parallel()

	res := sampleResult()
	res.Sources = nil

	var sb strings.Builder
	require.NoError(t, Write(&sb, res))
	assert.Contains(t, sb.String(), "No verifiable sources found.")
}

func TestMarkdown_NumberedLinks(t *testing.T) {
	t.Parallel()

	md := Markdown(sampleResult())
	assert.Contains(t, md, "# Pipeline report")
	assert.Contains(t, md, "1. [Rayleigh scattering](https://example.org/rayleigh)")
	assert.Contains(t, md, "2. [Atmospheric optics](https://example.org/optics)")
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	html, err := RenderHTML(sampleResult())
	require.NoError(t, err)

	assert.Contains(t, string(html), "<h1>Pipeline report</h1>")
	assert.Contains(t, string(html), `<a href="https://example.org/rayleigh">Rayleigh scattering</a>`)
}

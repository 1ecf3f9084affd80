package gemini

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestRequestConfig_Ungrounded(t *testing.T) {
	t.Parallel()

	cfg := requestConfig(Request{Instruction: "be terse", Prompt: "hi"})

	require.NotNil(t, cfg.SystemInstruction)
	require.Len(t, cfg.SystemInstruction.Parts, 1)
	assert.Equal(t, "be terse", cfg.SystemInstruction.Parts[0].Text)
	assert.Empty(t, cfg.Tools)
}

func TestRequestConfig_GroundedDeclaresGoogleSearch(t *testing.T) {
	t.Parallel()

	cfg := requestConfig(Request{Instruction: "verify", Prompt: "hi", Grounded: true})

	require.Len(t, cfg.Tools, 1)
	assert.NotNil(t, cfg.Tools[0].GoogleSearch)
}

func TestParseResponse_TextAndCitations(t *testing.T) {
	t.Parallel()

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: "Verified"}, {Text: "."}},
			},
			GroundingMetadata: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					{Web: &genai.GroundingChunkWeb{Title: "First", URI: "https://one.example"}},
					nil,
					{Web: nil},
					{Web: &genai.GroundingChunkWeb{Title: "Second", URI: "https://two.example"}},
				},
			},
		}},
	}

	got, err := parseResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "Verified.", got.Text)
	// Chunks without a web source are skipped; order is preserved.
	assert.Equal(t, []Citation{
		{Title: "First", URI: "https://one.example"},
		{Title: "Second", URI: "https://two.example"},
	}, got.Sources)
}

func TestParseResponse_Malformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil reply", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"no content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"blank text", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "   "}}},
		}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseResponse(tc.resp)
			var malformed *MalformedResponseError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := NewClient(t.Context(), ClientConfig{Model: "m"}, nil)
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestExecute_TimeoutSurfacesAsTransportError(t *testing.T) {
	t.Parallel()

	// Server that never answers within the per-exchange timeout.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	client, err := NewClient(t.Context(), ClientConfig{
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 50 * time.Millisecond,
		BaseURL: srv.URL,
	}, nil)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	_, err = client.Execute(t.Context(), Request{Instruction: "i", Prompt: "p"})
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestExecute_ServerFailureSurfacesAsTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewClient(t.Context(), ClientConfig{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: srv.URL,
	}, nil)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	_, err = client.Execute(t.Context(), Request{Instruction: "i", Prompt: "p"})
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestClose_Idempotent(t *testing.T) {
	t.Parallel()

	client, err := NewClient(t.Context(), ClientConfig{APIKey: "test-key"}, nil)
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
}

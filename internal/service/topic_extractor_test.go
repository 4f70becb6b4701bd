package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hivebackit/hivebackit-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestParseTopics(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{
			name: "plain lines",
			text: "Photosynthesis\nCellular respiration\n",
			max:  8,
			want: []string{"Photosynthesis", "Cellular respiration"},
		},
		{
			name: "bullets and numbering",
			text: "1. Photosynthesis\n2) Cellular respiration\n- Glycolysis\n* **Krebs cycle**\n• Electron transport",
			max:  8,
			want: []string{"Photosynthesis", "Cellular respiration", "Glycolysis", "Krebs cycle", "Electron transport"},
		},
		{
			name: "preamble line ending in a colon",
			text: "Here are the main topics:\n\n1. Cell biology\n2) **Genetics**\n- cell biology\n* Evolution",
			max:  8,
			want: []string{"Cell biology", "Genetics", "Evolution"},
		},
		{
			name: "markdown headings",
			text: "## Topics\nA\n# Part two\n**Summary:**\nB",
			max:  8,
			want: []string{"A", "B"},
		},
		{
			name: "case-insensitive duplicates and blanks",
			text: "Enzymes\n\n  enzymes  \nENZYMES\nProteins",
			max:  8,
			want: []string{"Enzymes", "Proteins"},
		},
		{
			name: "capped",
			text: "A\nB\nC\nD",
			max:  2,
			want: []string{"A", "B"},
		},
		{
			name: "empty",
			text: "  \n\n",
			max:  5,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTopics(tt.text, tt.max))
		})
	}
}

func TestBuildTopicPrompt(t *testing.T) {
	prompt := buildTopicPrompt(Document{Name: "week3.pdf", Type: "application/pdf", URL: "https://cdn/week3.pdf", CourseTitle: "Genetics"}, 5)

	assert.Contains(t, prompt, "Document name: week3.pdf")
	assert.Contains(t, prompt, "Course: Genetics")
	assert.Contains(t, prompt, "at most 5 topics")
	assert.Contains(t, prompt, "attached")
}

func TestFetchDocumentData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/notes.txt":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte("mitosis and meiosis"))
		case "/slides.pdf":
			w.Header().Set("Content-Type", "application/octet-stream")
			_, _ = w.Write([]byte("%PDF-1.7"))
		case "/photo.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte{0x89, 0x50})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	ctx := context.Background()
	fetcher := newDocumentFetcher(srv.Client(), srv.URL)

	data, mimeType, err := fetcher.fetch(ctx, srv.URL+"/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", mimeType)
	assert.Equal(t, "mitosis and meiosis", string(data))

	_, mimeType, err = fetcher.fetch(ctx, srv.URL+"/slides.pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mimeType)

	_, _, err = fetcher.fetch(ctx, srv.URL+"/photo.png")
	assert.Error(t, err)

	_, _, err = fetcher.fetch(ctx, srv.URL+"/missing.pdf")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "status 404"))
}

func TestFetchDocumentRefusesUnlistedHosts(t *testing.T) {
	var hits atomic.Int32
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("instance metadata"))
	}))
	defer internal.Close()

	storage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, internal.URL+"/latest/meta-data/", http.StatusFound)
	}))
	defer storage.Close()

	ctx := context.Background()
	fetcher := newDocumentFetcher(storage.Client(), "https://cdn.example.com/bucket", storage.URL)

	_, _, err := fetcher.fetch(ctx, internal.URL+"/latest/meta-data/")
	assert.ErrorIs(t, err, ErrDocumentHostNotAllowed)

	_, _, err = fetcher.fetch(ctx, storage.URL+"/notes.txt")
	assert.ErrorIs(t, err, ErrDocumentHostNotAllowed)

	_, _, err = fetcher.fetch(ctx, "file:///etc/passwd")
	assert.ErrorIs(t, err, ErrDocumentHostNotAllowed)

	assert.Equal(t, int32(0), hits.Load())

	empty := newDocumentFetcher(http.DefaultClient)
	_, _, err = empty.fetch(ctx, "http://169.254.169.254/latest/meta-data/")
	assert.ErrorIs(t, err, ErrDocumentHostNotAllowed)
}

func TestTopicExtractorWithoutAPIKey(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	extractor, err := NewTopicExtractor(lc, &config.Config{})
	require.NoError(t, err)

	_, err = extractor.ExtractTopics(context.Background(), Document{Name: "a.pdf"}, 3)
	assert.ErrorIs(t, err, ErrExtractionUnavailable)
}

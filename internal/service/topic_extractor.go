package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/hivebackit/hivebackit-api/config"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ErrExtractionUnavailable is returned when no Gemini API key is configured.
var ErrExtractionUnavailable = errors.New("topic extraction is not configured")

// ErrDocumentHostNotAllowed is returned for document URLs outside the configured storage hosts.
var ErrDocumentHostNotAllowed = errors.New("document host is not allowed")

const maxDocumentBytes = 20 << 20

// Document describes a course file to extract study topics from.
type Document struct {
	Name        string
	Type        string
	URL         string
	CourseTitle string
}

type TopicExtractor interface {
	ExtractTopics(ctx context.Context, doc Document, maxTopics int) ([]string, error)
}

type geminiTopicExtractor struct {
	model   *genai.GenerativeModel
	fetcher *documentFetcher
}

// NewTopicExtractor builds the Gemini-backed extractor. Without an API key it still returns
// an extractor, one that answers every call with ErrExtractionUnavailable.
func NewTopicExtractor(lc fx.Lifecycle, cfg *config.Config) (TopicExtractor, error) {
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Topic extraction will be unavailable.")
		return &geminiTopicExtractor{}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	model := client.GenerativeModel(cfg.Gemini.Model)
	model.SetTemperature(0.2)
	return &geminiTopicExtractor{
		model:   model,
		fetcher: newDocumentFetcher(&http.Client{Timeout: 30 * time.Second}, cfg.Storage.PublicURL, cfg.Storage.Endpoint),
	}, nil
}

func (e *geminiTopicExtractor) ExtractTopics(ctx context.Context, doc Document, maxTopics int) ([]string, error) {
	if e.model == nil {
		return nil, ErrExtractionUnavailable
	}

	var parts []genai.Part
	if doc.URL != "" {
		data, mimeType, err := e.fetcher.fetch(ctx, doc.URL)
		if err != nil {
			// The prompt alone still names the document, so extraction carries on without it.
			log.Warn().Err(err).Str("url", doc.URL).Msg("Could not attach document content for topic extraction")
		} else {
			parts = append(parts, genai.Blob{MIMEType: mimeType, Data: data})
		}
	}
	parts = append(parts, genai.Text(buildTopicPrompt(doc, maxTopics)))

	resp, err := e.model.GenerateContent(ctx, parts...)
	if err != nil {
		log.Error().Err(err).Str("document", doc.Name).Msg("Error generating topics from Gemini")
		return nil, fmt.Errorf("gemini topic extraction: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Warn().Str("document", doc.Name).Msg("Gemini response was empty")
		return nil, fmt.Errorf("gemini returned no content")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	return parseTopics(text.String(), maxTopics), nil
}

func buildTopicPrompt(doc Document, maxTopics int) string {
	course := doc.CourseTitle
	if course == "" {
		course = "N/A"
	}
	return fmt.Sprintf(`You are helping a university student organize their study material.
Identify the main study topics covered by the course document described below%s.

Document name: %s
Document type: %s
Course: %s

List at most %d topics, most important first.
Write one short topic name per line, with no numbering, no explanations and no other text.
`, attachedSuffix(doc), doc.Name, doc.Type, course, maxTopics)
}

func attachedSuffix(doc Document) string {
	if doc.URL == "" {
		return ""
	}
	return " (its content is attached when available)"
}

var supportedDocumentTypes = map[string]bool{
	"application/pdf": true,
	"text/plain":      true,
	"text/markdown":   true,
	"text/html":       true,
	"text/csv":        true,
}

// documentFetcher downloads course documents, but only from the storage hosts the
// service is configured with. Redirects must stay on those hosts too.
type documentFetcher struct {
	client *http.Client
	hosts  map[string]bool
}

func newDocumentFetcher(client *http.Client, baseURLs ...string) *documentFetcher {
	f := &documentFetcher{hosts: make(map[string]bool)}
	for _, raw := range baseURLs {
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			f.hosts[strings.ToLower(u.Host)] = true
		}
	}

	c := *client
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= 5 {
			return errors.New("stopped after 5 redirects")
		}
		return f.checkURL(req.URL)
	}
	f.client = &c
	return f
}

func (f *documentFetcher) checkURL(u *url.URL) error {
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrDocumentHostNotAllowed, u.Scheme)
	}
	if !f.hosts[strings.ToLower(u.Host)] {
		return fmt.Errorf("%w: %s", ErrDocumentHostNotAllowed, u.Host)
	}
	return nil
}

// fetch downloads a course document and determines its MIME type, preferring
// the Content-Type header over the URL extension.
func (f *documentFetcher) fetch(ctx context.Context, documentURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("invalid document URL %s: %w", documentURL, err)
	}
	if err := f.checkURL(req.URL); err != nil {
		return nil, "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch document from URL %s: %w", documentURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch document (status %d) from URL %s", resp.StatusCode, documentURL)
	}

	var mimeType string
	if mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil {
		mimeType = mediaType
	}
	if !supportedDocumentTypes[mimeType] {
		byExt, _, _ := mime.ParseMediaType(mime.TypeByExtension(filepath.Ext(req.URL.Path)))
		mimeType = byExt
	}
	if !supportedDocumentTypes[mimeType] {
		return nil, "", fmt.Errorf("unsupported document type %q for %s", mimeType, documentURL)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read document from URL %s: %w", documentURL, err)
	}
	if len(data) > maxDocumentBytes {
		return nil, "", fmt.Errorf("document %s exceeds %d bytes", documentURL, maxDocumentBytes)
	}
	return data, mimeType, nil
}

var topicPrefix = regexp.MustCompile(`^(?:[-*•+]+|\d+[.)])\s*`)

// parseTopics turns a model answer into topic names: one per line, list markers and
// emphasis stripped, duplicates dropped case-insensitively, at most maxTopics kept.
// Markdown headings and lines ending in a colon are preamble, not topics.
func parseTopics(text string, maxTopics int) []string {
	topics := make([]string, 0, maxTopics)
	seen := make(map[string]bool)
	for _, line := range strings.Split(text, "\n") {
		if len(topics) == maxTopics {
			break
		}
		topic := strings.TrimSpace(line)
		if strings.HasPrefix(topic, "#") {
			continue
		}
		topic = strings.TrimSpace(topicPrefix.ReplaceAllString(topic, ""))
		topic = strings.TrimSpace(strings.Trim(topic, "*_`\""))
		if topic == "" || strings.HasSuffix(topic, ":") {
			continue
		}
		key := strings.ToLower(topic)
		if seen[key] {
			continue
		}
		seen[key] = true
		topics = append(topics, topic)
	}
	return topics
}

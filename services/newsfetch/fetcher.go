package newsfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	// maxSourceChars caps the text kept per source so the combined prompt
	// stays within the model's context budget.
	maxSourceChars = 8000

	defaultTimeout = 30 * time.Second
	userAgent      = "Mozilla/5.0 (compatible; IndiansAbroadBot/1.0; +https://www.indiansabroad.in)"
)

// Source is a news page the digest prompt is assembled from
type Source struct {
	Name string
	URL  string
}

// DefaultSources are the pages polled for daily digest context
var DefaultSources = []Source{
	{Name: "Make It In Germany", URL: "https://www.make-it-in-germany.com/en/visa-residence/types/latest-news"},
	{Name: "IRCC Newsroom", URL: "https://www.canada.ca/en/immigration-refugees-citizenship/news.html"},
	{Name: "ICEF Monitor", URL: "https://monitor.icef.com/"},
}

// Fetcher pulls source pages and extracts readable text for the digest prompt
type Fetcher struct {
	httpClient *http.Client
	sources    []Source
}

// NewFetcher creates a fetcher over the given sources (DefaultSources if nil)
func NewFetcher(sources []Source) *Fetcher {
	if len(sources) == 0 {
		sources = DefaultSources
	}
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		sources: sources,
	}
}

// BuildPrompt fetches every source and concatenates the extracted text into
// a single digest prompt. A failed source is skipped with a note; only a
// fully empty result is an error.
func (f *Fetcher) BuildPrompt(ctx context.Context, date time.Time) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Source material gathered on %s:\n\n", date.Format("2006-01-02"))

	fetched := 0
	for _, src := range f.sources {
		text, err := f.fetchText(ctx, src.URL)
		if err != nil {
			fmt.Fprintf(&b, "## %s\n(unavailable: %v)\n\n", src.Name, err)
			continue
		}
		fmt.Fprintf(&b, "## %s\n%s\n\n", src.Name, text)
		fetched++
	}

	if fetched == 0 {
		return "", fmt.Errorf("no digest sources could be fetched")
	}

	b.WriteString("Write today's digest for Indians abroad from the material above.")
	return b.String(), nil
}

// fetchText downloads a page and strips it to readable text
func (f *Fetcher) fetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	// Cap the body read; news pages past a few MB are not useful context
	body := io.LimitReader(resp.Body, 4<<20)

	text, err := ExtractText(body)
	if err != nil {
		return "", err
	}

	runes := []rune(text)
	if len(runes) > maxSourceChars {
		text = string(runes[:maxSourceChars])
	}
	return text, nil
}

// ExtractText parses HTML and returns the visible text, skipping script,
// style, and other non-content elements.
func ExtractText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "svg", "nav", "footer":
				return
			}
		}
		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				b.WriteString(trimmed)
				b.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(b.String()), nil
}

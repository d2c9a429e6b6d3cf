package newsfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestExtractText(t *testing.T) {
	page := `<html><head>
		<title>News</title>
		<style>body { color: red }</style>
		<script>var tracking = true;</script>
	</head><body>
		<nav>Home About</nav>
		<h1>Visa Update</h1>
		<p>Germany eases skilled worker rules.</p>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractText(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}

	if !strings.Contains(text, "Visa Update") || !strings.Contains(text, "Germany eases skilled worker rules.") {
		t.Errorf("content text missing: %q", text)
	}
	for _, excluded := range []string{"tracking", "color: red", "Home About", "Copyright"} {
		if strings.Contains(text, excluded) {
			t.Errorf("non-content text %q leaked into extraction", excluded)
		}
	}
}

func TestBuildPromptSkipsFailedSources(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>Canada raises draw scores.</p></body></html>"))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer bad.Close()

	f := NewFetcher([]Source{
		{Name: "Good Source", URL: good.URL},
		{Name: "Bad Source", URL: bad.URL},
	})

	prompt, err := f.BuildPrompt(context.Background(), time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}

	if !strings.Contains(prompt, "2026-08-30") {
		t.Error("prompt should carry the gather date")
	}
	if !strings.Contains(prompt, "Canada raises draw scores.") {
		t.Error("good source text missing from prompt")
	}
	if !strings.Contains(prompt, "## Bad Source") || !strings.Contains(prompt, "unavailable") {
		t.Error("failed source should appear as an unavailable note")
	}
}

func TestBuildPromptAllSourcesFail(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer bad.Close()

	f := NewFetcher([]Source{{Name: "Bad", URL: bad.URL}})

	if _, err := f.BuildPrompt(context.Background(), time.Now()); err == nil {
		t.Fatal("expected error when no source can be fetched")
	}
}

package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

// newTestClient points a client at a stub chat-completions server
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})
	return client, srv
}

func digestResponse(t *testing.T, d Digest) []byte {
	t.Helper()
	content, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	resp := ChatResponse{
		Choices: []ChatChoice{
			{Message: Message{Role: "assistant", Content: string(content)}},
		},
	}
	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func validDigest() Digest {
	return Digest{
		Title:         "Immigration Digest",
		Summary:       "Key updates for Indians abroad.",
		Content:       "## Germany\nNew rules announced.",
		KeyHighlights: []string{"Germany eases skilled worker rules"},
		Tags:          []string{"germany", "visa"},
		Categories:    []string{"immigration"},
	}
}

func TestGenerateDigest(t *testing.T) {
	var gotReq ChatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		w.Write(digestResponse(t, validDigest()))
	})

	digest, err := client.GenerateDigest(context.Background(), "today's sources")
	if err != nil {
		t.Fatalf("GenerateDigest: %v", err)
	}

	if digest.Title != "Immigration Digest" {
		t.Errorf("Title = %q", digest.Title)
	}
	wantTags := []string{DailyDigestTag, "germany", "visa"}
	if !reflect.DeepEqual(digest.Tags, wantTags) {
		t.Errorf("Tags = %v, want %v", digest.Tags, wantTags)
	}

	// Request shape: structured output with the strict digest schema
	if gotReq.ResponseFormat == nil || gotReq.ResponseFormat.Type != "json_schema" {
		t.Fatalf("ResponseFormat = %+v, want json_schema", gotReq.ResponseFormat)
	}
	if !gotReq.ResponseFormat.JSONSchema.Strict {
		t.Error("schema should be strict")
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Errorf("Messages = %+v", gotReq.Messages)
	}
}

func TestGenerateDigestKeepsExistingDailyDigestTag(t *testing.T) {
	d := validDigest()
	d.Tags = []string{"germany", DailyDigestTag, "visa"}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(digestResponse(t, d))
	})

	digest, err := client.GenerateDigest(context.Background(), "prompt")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{DailyDigestTag, "germany", "visa"}
	if !reflect.DeepEqual(digest.Tags, want) {
		t.Errorf("Tags = %v, want %v (moved to front, order preserved)", digest.Tags, want)
	}
}

func TestGenerateDigestRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Digest)
	}{
		{"title", func(d *Digest) { d.Title = "" }},
		{"summary", func(d *Digest) { d.Summary = "" }},
		{"content", func(d *Digest) { d.Content = "" }},
		{"keyHighlights", func(d *Digest) { d.KeyHighlights = nil }},
		{"tags", func(d *Digest) { d.Tags = nil }},
		{"categories", func(d *Digest) { d.Categories = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDigest()
			tc.mutate(&d)
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write(digestResponse(t, d))
			})

			_, err := client.GenerateDigest(context.Background(), "prompt")
			if err == nil {
				t.Fatalf("expected validation error for missing %s", tc.name)
			}
			if !strings.Contains(err.Error(), tc.name) {
				t.Errorf("error %q does not name the missing field %s", err, tc.name)
			}
		})
	}
}

func TestGenerateDigestEmptyContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(ChatResponse{})
		w.Write(body)
	})

	_, err := client.GenerateDigest(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "missing message content") {
		t.Fatalf("err = %v, want missing message content", err)
	}
}

func TestGenerateDigestMalformedJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		resp := ChatResponse{Choices: []ChatChoice{{Message: Message{Content: "not json"}}}}
		body, _ := json.Marshal(resp)
		w.Write(body)
	})

	_, err := client.GenerateDigest(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "failed to parse digest JSON") {
		t.Fatalf("err = %v, want parse error", err)
	}
}

func TestGenerateDigestAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	})

	_, err := client.GenerateDigest(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "status 429") {
		t.Fatalf("err = %v, want status 429 error", err)
	}
}

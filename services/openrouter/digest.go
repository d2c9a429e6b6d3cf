package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
)

// DailyDigestTag must be the first tag on every generated digest. This is a
// categorization convention the site relies on, not a content constraint.
const DailyDigestTag = "daily-digest"

// digestSystemPrompt scopes the model to news that matters to Indians abroad.
const digestSystemPrompt = `You are a news editor for Indians living, working, or studying abroad.
Produce a single daily digest article from the provided source material.

Rules:
- Only include items relevant to immigration, visas, education, or careers abroad for Indian citizens.
- Exclude irrelevant, duplicate, or outdated items.
- Write the content as markdown with clear section headings.
- Keep the summary to two or three sentences.
- keyHighlights are short, standalone bullet points.
- categories must be drawn from: immigration, education, visa, career, success, culture.`

// Digest is the structured output of a daily digest generation call
type Digest struct {
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	Content       string   `json:"content"`
	KeyHighlights []string `json:"keyHighlights"`
	Tags          []string `json:"tags"`
	Categories    []string `json:"categories"`
}

// digestSchema is the JSON schema requested from the provider (strict mode).
var digestSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"title":   map[string]interface{}{"type": "string"},
		"summary": map[string]interface{}{"type": "string"},
		"content": map[string]interface{}{"type": "string"},
		"keyHighlights": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
		"tags": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
		"categories": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
	},
	"required":             []string{"title", "summary", "content", "keyHighlights", "tags", "categories"},
	"additionalProperties": false,
}

// GenerateDigest produces a structured daily digest from the given prompt
// context. It is pure with respect to local state: the caller persists the
// result. All failures are terminal for the call; there is no retry.
func (c *Client) GenerateDigest(ctx context.Context, prompt string) (*Digest, error) {
	messages := []Message{
		{Role: "system", Content: digestSystemPrompt},
		{Role: "user", Content: prompt},
	}

	resp, err := c.ChatCompletion(ctx, messages,
		WithJSONSchema("daily_digest", digestSchema, true),
	)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("invalid response structure: missing message content")
	}

	var digest Digest
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &digest); err != nil {
		return nil, fmt.Errorf("failed to parse digest JSON: %w", err)
	}

	if err := validateDigest(&digest); err != nil {
		return nil, err
	}

	digest.Tags = ensureDailyDigestTag(digest.Tags)

	return &digest, nil
}

// validateDigest checks every required field of the parsed digest
func validateDigest(d *Digest) error {
	switch {
	case d.Title == "":
		return fmt.Errorf("digest validation failed: missing title")
	case d.Summary == "":
		return fmt.Errorf("digest validation failed: missing summary")
	case d.Content == "":
		return fmt.Errorf("digest validation failed: missing content")
	case len(d.KeyHighlights) == 0:
		return fmt.Errorf("digest validation failed: missing keyHighlights")
	case len(d.Tags) == 0:
		return fmt.Errorf("digest validation failed: missing tags")
	case len(d.Categories) == 0:
		return fmt.Errorf("digest validation failed: missing categories")
	}
	return nil
}

// ensureDailyDigestTag puts DailyDigestTag at position 0, preserving the
// relative order of the remaining tags.
func ensureDailyDigestTag(tags []string) []string {
	rest := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != DailyDigestTag {
			rest = append(rest, t)
		}
	}
	return append([]string{DailyDigestTag}, rest...)
}

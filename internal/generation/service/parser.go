package service

import (
	"encoding/json"
	"strings"
)

// parseSpell extracts the structured spell document from a model reply.
// Replies wrapped in markdown code fences or padded with prose are
// tolerated. When no JSON object can be recovered the raw text is returned
// as a degraded document so the seeker still gets their spell.
func parseSpell(response string) (spell map[string]any, degraded bool) {
	clean := stripCodeFence(strings.TrimSpace(response))

	if doc := tryUnmarshal(clean); doc != nil {
		return doc, false
	}
	if doc := tryUnmarshal(extractJSON(clean)); doc != nil {
		return doc, false
	}

	return map[string]any{
		"title":        "Your Custom Spell",
		"raw_response": response,
		"parse_error":  true,
	}, true
}

func tryUnmarshal(s string) map[string]any {
	var doc map[string]any
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return nil
	}
	return doc
}

// stripCodeFence unwraps a ```json ... ``` block if the reply starts with one.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	parts := strings.SplitN(s, "```", 3)
	if len(parts) < 2 {
		return s
	}
	inner := parts[1]
	inner = strings.TrimPrefix(inner, "json")
	return strings.TrimSpace(inner)
}

// extractJSON narrows a reply to the outermost brace pair.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start != -1 && end > start {
		return s[start : end+1]
	}
	return s
}

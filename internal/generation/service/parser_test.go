package service

import "testing"

func TestParseSpellPureJSON(t *testing.T) {
	spell, degraded := parseSpell(`{"title": "The Midnight Stitch", "subtitle": "A binding of thread"}`)
	if degraded {
		t.Fatal("pure JSON must not degrade")
	}
	if spell["title"] != "The Midnight Stitch" {
		t.Fatalf("title = %v", spell["title"])
	}
}

func TestParseSpellCodeFence(t *testing.T) {
	response := "```json\n{\"title\": \"Crow's Vigil\"}\n```"
	spell, degraded := parseSpell(response)
	if degraded {
		t.Fatal("fenced JSON must not degrade")
	}
	if spell["title"] != "Crow's Vigil" {
		t.Fatalf("title = %v", spell["title"])
	}
}

func TestParseSpellBareFence(t *testing.T) {
	response := "```\n{\"title\": \"Circle of Salt\"}\n```"
	spell, degraded := parseSpell(response)
	if degraded {
		t.Fatal("fenced JSON must not degrade")
	}
	if spell["title"] != "Circle of Salt" {
		t.Fatalf("title = %v", spell["title"])
	}
}

func TestParseSpellProsePadding(t *testing.T) {
	response := "Here is your spell:\n{\"title\": \"Veil Walking\"}\nMay it serve you well."
	spell, degraded := parseSpell(response)
	if degraded {
		t.Fatal("prose-padded JSON must not degrade")
	}
	if spell["title"] != "Veil Walking" {
		t.Fatalf("title = %v", spell["title"])
	}
}

func TestParseSpellDegradedFallback(t *testing.T) {
	response := "Light a candle at midnight and speak your intention aloud."
	spell, degraded := parseSpell(response)
	if !degraded {
		t.Fatal("unparseable reply must degrade")
	}
	if spell["title"] != "Your Custom Spell" {
		t.Fatalf("fallback title = %v", spell["title"])
	}
	if spell["raw_response"] != response {
		t.Fatal("degraded document must preserve the raw reply")
	}
	if spell["parse_error"] != true {
		t.Fatal("degraded document must be flagged")
	}
}

func TestParseSpellNonObjectJSON(t *testing.T) {
	_, degraded := parseSpell(`["not", "an", "object"]`)
	if !degraded {
		t.Fatal("a JSON array is not a spell document")
	}
}

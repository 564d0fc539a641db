// Package domain contains the spell generation types: requests, results,
// and the archetype persona catalog.
package domain

// SpellRequest asks for a new spell built around an intention.
type SpellRequest struct {
	Intention     string `json:"intention" binding:"required"`
	Archetype     string `json:"archetype"`
	GenerateImage bool   `json:"generate_image"`
}

// ChatRequest is a free-form conversation turn, optionally in an
// archetype's voice.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
	Archetype string `json:"archetype"`
}

// ImageRequest asks for a standalone generated image.
type ImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// ArchetypeInfo identifies the persona a response speaks as. ID is empty
// when the default guide answered.
type ArchetypeInfo struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// LimitInfo reports the caller's remaining quota after a generation.
// Absent for anonymous callers.
type LimitInfo struct {
	Remaining        int    `json:"remaining"`
	Limit            int    `json:"limit"`
	SubscriptionTier string `json:"subscription_tier"`
}

// SpellResult is a generated spell. Spell holds the structured document
// when the model produced parseable JSON; when it did not, Degraded is set
// and Spell carries the raw text under "raw_response" so the caller still
// gets usable content.
type SpellResult struct {
	Spell       map[string]any `json:"spell"`
	ImageBase64 *string        `json:"image_base64"`
	Archetype   ArchetypeInfo  `json:"archetype"`
	SessionID   string         `json:"session_id"`
	LimitInfo   *LimitInfo     `json:"limit_info"`
	Degraded    bool           `json:"-"`
}

// ChatResult is one model reply in a chat session.
type ChatResult struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// ImageResult carries a generated image as base64 PNG data.
type ImageResult struct {
	ImageBase64 string `json:"image_base64"`
}

package service

import (
	"fmt"
	"strings"

	"github.com/crowlands/grimoire/internal/generation/domain"
)

// spellSchema is the response contract sent to the model. The frontend
// renders these fields directly, so the shape is part of the product.
const spellSchema = `{
    "tarot_card": {
        "title": "Short evocative title (3-5 words max)",
        "symbol": "A single emoji or symbol that represents this spell",
        "essence": "One sentence capturing the core purpose (under 15 words)",
        "key_action": "The single most important action to take (under 20 words)",
        "incantation": "A brief, memorable phrase of power (under 15 words)",
        "timing": "When to perform, very brief (e.g., 'Full Moon, Midnight')",
        "warning": "One line caution if needed (under 15 words)"
    },
    "title": "A poetic, evocative title for this spell",
    "subtitle": "A brief tagline or description (10 words max)",
    "introduction": "A 2-3 sentence personal introduction in your voice, speaking directly to the seeker",
    "materials": [
        {"name": "Material name", "icon": "candle|herb|crystal|feather|water|fire|moon|sun|book|pen|mirror|salt|oil|incense|bell|cord|photo|bowl", "note": "Brief note on why/how to use"}
    ],
    "timing": {
        "moon_phase": "New Moon|Waxing|Full Moon|Waning|Any",
        "time_of_day": "Dawn|Morning|Noon|Dusk|Night|Midnight|Any",
        "day": "Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday|Any",
        "note": "Brief explanation of timing significance"
    },
    "steps": [
        {"number": 1, "title": "Step title", "instruction": "Detailed instruction", "duration": "5 minutes", "note": "Optional tip or variation"}
    ],
    "spoken_words": {
        "invocation": "Words to speak at the beginning (can be poetry, affirmation, or prayer)",
        "main_incantation": "The central words of power for this spell",
        "closing": "Words to seal and close the ritual"
    },
    "historical_context": {
        "tradition": "Name the magical tradition this draws from",
        "time_period": "1910-1945 or relevant era",
        "practitioners": ["Historical figures who used similar practices"],
        "sources": [
            {"author": "Author name", "work": "Book/work title", "year": 1930, "relevance": "How this source relates to the spell"}
        ],
        "cultural_notes": "Any important cultural or historical context"
    },
    "variations": [
        {"name": "Variation name", "description": "How to adapt for different needs"}
    ],
    "warnings": ["Any cautions or ethical considerations"],
    "closing_message": "A personal message of encouragement in your voice",
    "image_prompt": "A detailed prompt to generate a header image for this spell (describe visual elements, mood, symbols)"
}`

// katherineCraftContext is extra prompt material for the weaver archetype,
// steering materials toward her textile correspondences.
const katherineCraftContext = `

KATHERINE'S MATERIAL CORRESPONDENCES (prefer these over traditional materials):
- Use THREAD instead of candles (white silk = purity, black silk = protection, red wool = life force)
- Use PINS instead of salt circles (seven pins create a boundary)
- Use SCISSORS instead of athame (tailor's scissors cut ties and sever connections)
- Use BONE NEEDLE instead of wand (directs intention, pierces the veil)
- Use THIMBLE instead of cauldron (contains and protects)
- Use BLACK SILK for scrying instead of mirrors

KATHERINE'S SÉANCE METHODOLOGY (include when relevant):
- Red light conditions for spirit work (preserves night vision)
- Table-tapping codes: 1 knock = yes, 2 = no, 3 = uncertain
- Automatic writing with relaxed hand, suspended judgment
- ALWAYS include testing protocols; never accept spirit communication blindly
- Protection through iron (scissors) to break unwanted connections

KATHERINE'S HISTORICAL SOURCES TO CITE:
- Sir Oliver Lodge, 'Raymond, or Life and Death' (1916): spirit communication methodology
- F.W.H. Myers, 'Human Personality and Its Survival of Bodily Death' (1903): SPR research
- Dion Fortune, 'Psychic Self-Defence' (1930): protection techniques
- Society for Psychical Research, 'Proceedings' (1920s): testing protocols
- Traditional Spitalfields weaving practices: textile as sympathetic magic

KATHERINE'S SIGNATURE RITUAL ELEMENTS:
- "The needle knows what the mind forgets": include needle/thread work
- Midnight as the liminal hour for most potent work
- Crows and magpies as messengers (not omens of evil)
- Integration over banishment: face what is veiled, don't cast it out
- Huguenot precision: test everything, accept nothing blindly`

// buildSpellPrompt assembles the structured generation prompt from the
// seeker's intention, the selected persona, and archive context.
func buildSpellPrompt(intention string, persona domain.Persona, deities, rituals, figures []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a spell/ritual for this intention: %q\n\n", intention)
	b.WriteString("You MUST respond with a JSON object in this EXACT format (no markdown, just pure JSON):\n")
	b.WriteString(spellSchema)
	b.WriteString("\n\nIMPORTANT GUIDELINES:\n")
	b.WriteString("- Include 4-8 materials with appropriate icons\n")
	b.WriteString("- Include 5-8 detailed steps\n")
	b.WriteString("- Cite at least 2-3 historical sources with real books/authors from the 1910-1945 period\n")
	b.WriteString("- The spoken_words should feel authentic to your tradition\n")
	b.WriteString("- Make the historical_context genuinely educational\n")

	if persona.ID == "catherine" {
		b.WriteString(katherineCraftContext)
	}

	if len(deities) > 0 {
		fmt.Fprintf(&b, "\nRELEVANT DEITIES FROM OUR ARCHIVE: %s", strings.Join(deities, ", "))
	}
	if len(rituals) > 0 {
		fmt.Fprintf(&b, "\nRELEVANT RITUALS FROM OUR ARCHIVE: %s", strings.Join(rituals, ", "))
	}
	if len(figures) > 0 {
		fmt.Fprintf(&b, "\nHISTORICAL FIGURES TO REFERENCE: %s", strings.Join(figures, ", "))
	}

	b.WriteString("\n\nRespond ONLY with the JSON object, no other text.")
	return b.String()
}

// systemPromptFor appends the structured-output instruction to the
// persona's voice prompt.
func systemPromptFor(persona domain.Persona) string {
	return persona.SystemPrompt + "\n\nYou must respond with structured JSON as specified."
}

// imagePromptFor combines the persona's visual style with the spell's own
// image prompt.
func imagePromptFor(persona domain.Persona, spellImagePrompt string) string {
	return fmt.Sprintf("%s, %s, mystical ritual scene, no text", persona.ImageStyle, spellImagePrompt)
}

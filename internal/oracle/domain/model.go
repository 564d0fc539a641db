// Package domain holds the Cobbles Oracle: a tarot-style advice deck with
// free and pro-only spreads.
package domain

// Card is one oracle card. Advice is practical; the charm is a small
// physical act that anchors it.
type Card struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Arcana   string   `json:"arcana"`
	Suit     string   `json:"suit,omitempty"`
	Symbol   string   `json:"symbol"`
	Number   int      `json:"number"`
	Core     string   `json:"core"`
	Advice   []string `json:"advice"`
	Shadow   string   `json:"shadow"`
	Blessing string   `json:"blessing"`
	Charm    string   `json:"charm"`
	Mantra   string   `json:"mantra"`
}

// Spread is a reading layout. ProOnly spreads sit behind the premium gate.
type Spread struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Positions   []string `json:"positions"`
	ProOnly     bool     `json:"pro_only"`
}

// DrawnCard is a card placed in a spread position.
type DrawnCard struct {
	Position string `json:"position"`
	Card     Card   `json:"card"`
}

// Reading is the result of one draw.
type Reading struct {
	Spread Spread      `json:"spread"`
	Cards  []DrawnCard `json:"cards"`
}

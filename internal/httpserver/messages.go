// internal/httpserver/messages.go
//
// WebSocket wire format. One envelope per direction; optional fields are
// omitted when empty so every message type shares the same frame shape.

package httpserver

import (
	"errors"

	"github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"
	"github.com/MatthewRust/Hearts-Game-Christmas/internal/spit"
)

// clientMsg is the envelope for every message a client sends.
type clientMsg struct {
	Type       string       `json:"type"`
	Name       string       `json:"name,omitempty"`
	Card       *cards.Card  `json:"card,omitempty"`
	Cards      []cards.Card `json:"cards,omitempty"`
	SpitPile   *int         `json:"spitPileIndex,omitempty"`
	CenterPile *int         `json:"centerPileIndex,omitempty"`
}

// serverMsg is the envelope for every message the server sends.
type serverMsg struct {
	Type    string       `json:"type"`
	Players []string     `json:"players,omitempty"`
	Host    string       `json:"host,omitempty"`
	Hand    []cards.Card `json:"hand,omitempty"`
	State   any          `json:"state,omitempty"`
	Summary any          `json:"summary,omitempty"`
	Moves   []spit.Move  `json:"moves,omitempty"`
	Events  []event      `json:"events,omitempty"`
	Error   *errorView   `json:"error,omitempty"`
}

// event is a derived happening worth announcing alongside a state broadcast.
type event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// errorView carries a rejection to the acting client only.
type errorView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// toErrorView maps an engine rejection to the wire, preserving the violation
// kind so clients can distinguish turn, legality, selection and phase errors.
func toErrorView(err error) *errorView {
	var re *cards.RuleError
	if errors.As(err, &re) {
		return &errorView{Kind: string(re.Kind), Message: re.Message}
	}
	return &errorView{Kind: "internal", Message: err.Error()}
}

func errorMsg(kind, message string) serverMsg {
	return serverMsg{Type: "error", Error: &errorView{Kind: kind, Message: message}}
}

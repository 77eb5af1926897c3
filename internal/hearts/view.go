// internal/hearts/view.go
//
// Read-only snapshot for broadcasting. Hands are not included; the caller
// sends each player their own hand via HandOf.

package hearts

import "github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"

// PileView is the public state of the current trick.
type PileView struct {
	Cards     []cards.Card `json:"cards"`
	LeadSuit  cards.Suit   `json:"leadSuit,omitempty"`
	PlayOrder []string     `json:"playOrder"`
}

// State is the public game state shared by all players.
type State struct {
	Turn         string         `json:"turn"`
	Phase        Phase          `json:"phase"`
	Round        int            `json:"round"`
	Pile         PileView       `json:"pile"`
	HeartsBroken bool           `json:"heartsBroken"`
	Scores       map[string]int `json:"scores"`
	TotalScores  map[string]int `json:"totalScores"`
	HandSizes    map[string]int `json:"handSizes"`
	PassDistance int            `json:"passDistance"`
	GameOver     bool           `json:"gameOver"`
}

// State returns the current public snapshot.
func (g *Game) State() State {
	sizes := make(map[string]int, len(g.turnOrder))
	for _, id := range g.turnOrder {
		sizes[id] = g.hands[id].Len()
	}
	return State{
		Turn:  g.CurrentPlayer(),
		Phase: g.phase,
		Round: g.round,
		Pile: PileView{
			Cards:     append([]cards.Card(nil), g.pile.Cards...),
			LeadSuit:  g.pile.LeadSuit,
			PlayOrder: append([]string(nil), g.pile.PlayOrder...),
		},
		HeartsBroken: g.heartsBroken,
		Scores:       copyScores(g.roundScores),
		TotalScores:  copyScores(g.totalScores),
		HandSizes:    sizes,
		PassDistance: g.PassDistance(),
		GameOver:     g.GameOver(),
	}
}

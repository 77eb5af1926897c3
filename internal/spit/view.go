// internal/spit/view.go
//
// Snapshot for broadcasting. Spit is open information at the tops: both
// players see every pile's top card and counts, never the face-down cards
// beneath or inside a stock.

package spit

import "github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"

// PileView is one spit pile as visible on the table.
type PileView struct {
	Index   int         `json:"index"`
	TopCard *cards.Card `json:"topCard"`
	Count   int         `json:"totalCards"`
	FaceUp  bool        `json:"faceUp"`
}

// PlayerView is one player's visible side of the table.
type PlayerView struct {
	Name       string     `json:"name"`
	Piles      []PileView `json:"spitPiles"`
	StockCount int        `json:"stockPileCount"`
	TotalCards int        `json:"totalCards"`
}

// State is the shared table snapshot.
type State struct {
	Players    [2]PlayerView  `json:"players"`
	CenterTops [2]*cards.Card `json:"centerPiles"`
	CenterLens [2]int         `json:"centerPileCounts"`
	Round      int            `json:"round"`
	Phase      Phase          `json:"phase"`
	Eliminated string         `json:"eliminated,omitempty"`
	GameOver   bool           `json:"gameOver"`
	Winner     string         `json:"winner,omitempty"`
}

// State returns the current table snapshot.
func (g *Game) State() State {
	st := State{
		Round:      g.round,
		Phase:      g.phase,
		Eliminated: g.eliminated,
		GameOver:   g.phase == PhaseGameOver,
		Winner:     g.winner,
	}
	for i := range g.states {
		st.Players[i] = g.playerView(i)
	}
	for i := range g.center {
		st.CenterLens[i] = len(g.center[i])
		if n := len(g.center[i]); n > 0 {
			c := g.center[i][n-1]
			st.CenterTops[i] = &c
		}
	}
	return st
}

func (g *Game) playerView(idx int) PlayerView {
	ps := g.states[idx]
	pv := PlayerView{
		Name:       g.names[idx],
		StockCount: len(ps.stock),
		TotalCards: ps.liveCount(),
	}
	for i := 0; i < numPiles; i++ {
		view := PileView{Index: i, Count: len(ps.piles[i]), FaceUp: ps.faceUp[i]}
		if top, ok := ps.topCard(i); ok {
			c := top
			view.TopCard = &c
		}
		pv.Piles = append(pv.Piles, view)
	}
	return pv
}

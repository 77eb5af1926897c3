// internal/spit/moves.go
//
// Normal play: moving a spit-pile top onto a center pile whose top rank is
// cyclically adjacent (equal, one above, or one below, King and Ace wrap).

package spit

import "github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"

// PlayResult reports what a successful play caused.
type PlayResult struct {
	Card       cards.Card
	RoundOver  bool
	Eliminated string // round winner when RoundOver
	GameOver   bool
	Winner     string
}

// PlayCard validates and applies one pile-to-center play. On success the
// pending spit requests are cleared (play was possible after all) and round
// end and outright win are checked; on rejection nothing changes.
func (g *Game) PlayCard(player string, spitPile, centerPile int) (PlayResult, error) {
	var res PlayResult
	if err := g.checkActive(); err != nil {
		return res, err
	}
	idx := g.playerIndex(player)
	if idx < 0 {
		return res, cards.Reject(cards.ViolationSelection, "unknown player %q", player)
	}
	if spitPile < 0 || spitPile >= numPiles {
		return res, cards.Reject(cards.ViolationSelection, "spit pile index %d out of range", spitPile)
	}
	if centerPile < 0 || centerPile >= numCenters {
		return res, cards.Reject(cards.ViolationSelection, "center pile index %d out of range", centerPile)
	}
	st := g.states[idx]
	top, ok := st.topCard(spitPile)
	if !ok {
		return res, cards.Reject(cards.ViolationLegality, "spit pile %d has no playable card", spitPile)
	}
	if !g.isLegalPlay(top, centerPile) {
		return res, cards.Reject(cards.ViolationLegality,
			"%s does not match the center pile: rank must be equal or one apart", top)
	}

	n := len(st.piles[spitPile])
	st.piles[spitPile] = st.piles[spitPile][:n-1]
	st.faceUp[spitPile] = len(st.piles[spitPile]) > 0
	g.center[centerPile] = append(g.center[centerPile], top)
	g.clearRequests()

	res.Card = top
	g.checkRoundEnd(idx, &res)
	return res, nil
}

// isLegalPlay checks cyclic rank adjacency against a center pile's top.
func (g *Game) isLegalPlay(c cards.Card, centerPile int) bool {
	pile := g.center[centerPile]
	if len(pile) == 0 {
		return false
	}
	return cards.CyclicAdjacent(c.Rank, pile[len(pile)-1].Rank)
}

// Move is one legal play available to a player.
type Move struct {
	SpitPile   int        `json:"spitPileIndex"`
	CenterPile int        `json:"centerPileIndex"`
	Card       cards.Card `json:"card"`
}

// ValidMoves lists every legal play for a player. Empty for an unknown
// player or outside the active phase.
func (g *Game) ValidMoves(player string) []Move {
	if g.phase != PhaseActive {
		return nil
	}
	idx := g.playerIndex(player)
	if idx < 0 {
		return nil
	}
	var moves []Move
	for pile := 0; pile < numPiles; pile++ {
		top, ok := g.states[idx].topCard(pile)
		if !ok {
			continue
		}
		for center := 0; center < numCenters; center++ {
			if g.isLegalPlay(top, center) {
				moves = append(moves, Move{SpitPile: pile, CenterPile: center, Card: top})
			}
		}
	}
	return moves
}

// CanPlayerMove reports whether the player has at least one legal play.
func (g *Game) CanPlayerMove(player string) bool {
	return len(g.ValidMoves(player)) > 0
}

// IsStalemate reports whether neither player can play.
func (g *Game) IsStalemate() bool {
	return !g.CanPlayerMove(g.names[0]) && !g.CanPlayerMove(g.names[1])
}

// checkActive gates actions on the live phases.
func (g *Game) checkActive() error {
	switch g.phase {
	case PhaseActive:
		return nil
	case PhaseGameOver:
		return cards.Reject(cards.ViolationPhase, "game is over")
	case PhaseRoundOver:
		return cards.Reject(cards.ViolationPhase, "round is over, waiting for the redeal")
	default:
		return cards.Reject(cards.ViolationPhase, "cards are not dealt yet")
	}
}

// checkRoundEnd ends the round when the acting player's piles are all empty.
// A player with no piles and no stock wins the game outright.
func (g *Game) checkRoundEnd(idx int, res *PlayResult) {
	st := g.states[idx]
	if !st.pilesEmpty() {
		return
	}
	if len(st.stock) == 0 {
		g.phase = PhaseGameOver
		g.winner = g.names[idx]
		res.GameOver = true
		res.Winner = g.winner
		return
	}
	g.phase = PhaseRoundOver
	g.eliminated = g.names[idx]
	res.RoundOver = true
	res.Eliminated = g.eliminated
}

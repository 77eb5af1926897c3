// internal/spit/round.go
//
// Round boundary. The player who emptied their piles won the race and takes
// the smaller center pile into their next deck; the opponent takes the
// larger. Emptying your deck entirely wins the game. Otherwise both decks
// are shuffled independently and redealt with the same 1..5/stock layout.

package spit

import "github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"

// RoundResult reports what the round boundary decided.
type RoundResult struct {
	GameOver  bool
	Winner    string
	Round     int    // next round number when the game continues
	DeckSizes [2]int // next-deck sizes per seat
}

// EndRound redistributes the table after an elimination and either declares
// the overall winner or deals the next round.
func (g *Game) EndRound() (RoundResult, error) {
	var res RoundResult
	if g.phase != PhaseRoundOver {
		return res, cards.Reject(cards.ViolationPhase, "round is not over")
	}

	elim := g.playerIndex(g.eliminated)
	opp := g.opponentIndex(elim)

	small, large := 0, 1
	if len(g.center[small]) > len(g.center[large]) {
		small, large = large, small
	}

	var decks [2][]cards.Card
	decks[elim] = append(g.states[elim].remaining(), g.center[small]...)
	decks[opp] = append(g.states[opp].remaining(), g.center[large]...)
	res.DeckSizes = [2]int{len(decks[0]), len(decks[1])}

	// A player whose next deck is empty has shed every card and wins.
	for _, idx := range [2]int{elim, opp} {
		if len(decks[idx]) == 0 {
			g.phase = PhaseGameOver
			g.winner = g.names[idx]
			res.GameOver = true
			res.Winner = g.winner
			return res, nil
		}
	}

	g.round++
	g.eliminated = ""
	g.clearRequests()
	for idx := range decks {
		g.rng.Shuffle(len(decks[idx]), func(i, j int) {
			decks[idx][i], decks[idx][j] = decks[idx][j], decks[idx][i]
		})
		g.dealSide(idx, decks[idx])
	}
	g.seedCenters()
	g.phase = PhaseActive
	res.Round = g.round
	return res, nil
}

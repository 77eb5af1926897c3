// internal/spit/spit.go
//
// The spit action. Either player may request a spit at any time; with stock
// on both sides it executes only once both have requested it in the same
// pending window, each stock feeding one card to its own center pile. When
// the opponent's stock is exhausted the requester spits alone, feeding both
// center piles from their own stock, which requires at least two stock cards.

package spit

import "github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"

// SpitResult reports the outcome of a spit request.
type SpitResult struct {
	Pending  bool // recorded, waiting for the opponent
	Executed bool
	Solo     bool
	GameOver bool
	Winner   string
}

// CanSpit reports whether a spit request by the player would be accepted.
func (g *Game) CanSpit(player string) bool {
	if g.phase != PhaseActive {
		return false
	}
	idx := g.playerIndex(player)
	if idx < 0 {
		return false
	}
	if len(g.states[g.opponentIndex(idx)].stock) == 0 {
		return len(g.states[idx].stock) >= numCenters
	}
	return len(g.states[idx].stock) >= 1
}

// RequestSpit records the player's intent to spit and executes the spit once
// the conditions are met. Requests with insufficient stock are rejected and
// leave no pending intent.
func (g *Game) RequestSpit(player string) (SpitResult, error) {
	var res SpitResult
	if err := g.checkActive(); err != nil {
		return res, err
	}
	idx := g.playerIndex(player)
	if idx < 0 {
		return res, cards.Reject(cards.ViolationSelection, "unknown player %q", player)
	}
	opp := g.opponentIndex(idx)

	if len(g.states[opp].stock) == 0 {
		// Opponent cannot contribute: the requester feeds both center piles.
		if len(g.states[idx].stock) < numCenters {
			return res, cards.Reject(cards.ViolationPhase,
				"cannot spit alone with fewer than %d stock cards", numCenters)
		}
		for i := 0; i < numCenters; i++ {
			c, _ := popStock(g.states[idx])
			g.center[i] = append(g.center[i], c)
		}
		g.clearRequests()
		res.Executed = true
		res.Solo = true
		g.checkSpitWin(idx, &res)
		return res, nil
	}

	if len(g.states[idx].stock) == 0 {
		return res, cards.Reject(cards.ViolationPhase, "cannot spit with an empty stock")
	}
	g.requests[player] = true
	if len(g.requests) < len(g.names) {
		res.Pending = true
		return res, nil
	}

	// Both agreed: one card from each stock to that player's center pile.
	for i := range g.states {
		c, _ := popStock(g.states[i])
		g.center[i] = append(g.center[i], c)
	}
	g.clearRequests()
	res.Executed = true
	g.checkSpitWin(0, &res)
	g.checkSpitWin(1, &res)
	return res, nil
}

// HasPendingSpit reports whether the player's spit request is waiting.
func (g *Game) HasPendingSpit(player string) bool {
	return g.requests[player]
}

// clearRequests empties the pending window. Any successful play or executed
// spit invalidates earlier requests.
func (g *Game) clearRequests() {
	for k := range g.requests {
		delete(g.requests, k)
	}
}

// checkSpitWin declares an outright win when a spit drained a player's last
// card. Reachable only through the solo spit in practice, since a mutual
// spit leaves the round running with nonempty piles.
func (g *Game) checkSpitWin(idx int, res *SpitResult) {
	if g.phase == PhaseGameOver {
		return
	}
	if g.states[idx].liveCount() == 0 {
		g.phase = PhaseGameOver
		g.winner = g.names[idx]
		res.GameOver = true
		res.Winner = g.winner
	}
}

func popStock(p *playerState) (cards.Card, bool) {
	n := len(p.stock)
	if n == 0 {
		return cards.Card{}, false
	}
	c := p.stock[n-1]
	p.stock = p.stock[:n-1]
	return c, true
}

// internal/hearts/passing.go
//
// Card passing. Before trick play each player hands two cards to another
// player at the round's pass distance. Selections are held back from the
// hand so they cannot be played, may be revised until everyone has
// submitted, and are exchanged simultaneously once complete.
//
// Pass distance by round, for n players: 1 (left), n-1 (right), n/2 when n
// is even (across), then 0 (hold), repeating. Fewer than 3 players never
// pass.

package hearts

import "github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"

// PassDistance returns the turn-order offset cards travel this round.
// Zero means no passing phase.
func (g *Game) PassDistance() int {
	n := len(g.turnOrder)
	if n < 3 {
		return 0
	}
	cycle := []int{1, n - 1}
	if n%2 == 0 {
		cycle = append(cycle, n/2)
	}
	cycle = append(cycle, 0)
	return cycle[(g.round-1)%len(cycle)]
}

// PassTarget returns the player who receives cards from the given player
// this round, or "" when there is no pass.
func (g *Game) PassTarget(player string) string {
	dist := g.PassDistance()
	if dist == 0 {
		return ""
	}
	for i, id := range g.turnOrder {
		if id == player {
			return g.turnOrder[(i+dist)%len(g.turnOrder)]
		}
	}
	return ""
}

// PassResult reports pass progress after a successful selection.
type PassResult struct {
	Submitted int  // players whose selection is in
	Exchanged bool // true once all selections were swapped and play begins
}

// SelectPassCards records (or revises) a player's two-card selection. A
// revision may reuse cards from the earlier selection; a rejected revision
// leaves the earlier selection standing. When the final player submits, all
// cards are exchanged at the round's pass distance, hands are re-sorted, and
// the initial leader is recomputed.
func (g *Game) SelectPassCards(player string, pair [2]cards.Card) (PassResult, error) {
	var res PassResult
	if g.phase != PhasePassing {
		return res, cards.Reject(cards.ViolationPhase, "no pass in progress")
	}
	hand, ok := g.hands[player]
	if !ok {
		return res, cards.Reject(cards.ViolationSelection, "unknown player %q", player)
	}
	if pair[0].Same(pair[1]) {
		return res, cards.Reject(cards.ViolationSelection, "pass cards must be two different cards")
	}

	// The new pair may draw on the hand or the earlier selection. Validate
	// before touching either so a rejection leaves both standing.
	prev, revised := g.pendingPass[player]
	holds := func(c cards.Card) bool {
		return hand.Contains(c) || (revised && (prev[0].Same(c) || prev[1].Same(c)))
	}
	if !holds(pair[0]) || !holds(pair[1]) {
		return res, cards.Reject(cards.ViolationSelection, "pass cards must be held")
	}
	if revised {
		hand.Add(prev[0])
		hand.Add(prev[1])
		delete(g.pendingPass, player)
	}

	held := [2]cards.Card{g.heldCard(hand, pair[0]), g.heldCard(hand, pair[1])}
	hand.Remove(pair[0])
	hand.Remove(pair[1])
	g.pendingPass[player] = held

	res.Submitted = len(g.pendingPass)
	if res.Submitted == len(g.turnOrder) {
		g.exchangePasses()
		res.Exchanged = true
	}
	return res, nil
}

// exchangePasses moves every pending selection to its target simultaneously.
func (g *Game) exchangePasses() {
	dist := g.PassDistance()
	n := len(g.turnOrder)
	for i, id := range g.turnOrder {
		sel := g.pendingPass[id]
		target := g.hands[g.turnOrder[(i+dist)%n]]
		target.Add(sel[0])
		target.Add(sel[1])
	}
	g.pendingPass = make(map[string][2]cards.Card)
	g.SortHands()
	g.phase = PhasePlaying
	g.SetInitialLeader()
}

// internal/hearts/deal.go
//
// Dealing. The deck is trimmed from a fixed low-card priority list until the
// remaining count divides evenly by the player count, then dealt round-robin
// in turn order. Trimmed cards are all worth zero points, so the 36-point
// round total is preserved for any roster size.

package hearts

import "github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"

// removalOrder is the trim priority: low clubs/diamonds/spades first.
var removalOrder = []cards.Card{
	{Suit: cards.Clubs, Rank: cards.Rank2},
	{Suit: cards.Diamonds, Rank: cards.Rank2},
	{Suit: cards.Spades, Rank: cards.Rank2},
	{Suit: cards.Clubs, Rank: cards.Rank3},
	{Suit: cards.Diamonds, Rank: cards.Rank3},
	{Suit: cards.Spades, Rank: cards.Rank3},
	{Suit: cards.Clubs, Rank: cards.Rank4},
	{Suit: cards.Diamonds, Rank: cards.Rank4},
	{Suit: cards.Spades, Rank: cards.Rank4},
}

// DealAll shuffles the deck, trims it to a multiple of the player count, and
// deals every card round-robin. Hands are sorted for deterministic display.
// The phase moves to passing when the round has a pass, otherwise straight
// to trick play.
func (g *Game) DealAll() {
	if g.deck == nil {
		g.SetupDeck()
	}
	g.deck.Shuffle(g.rng)

	n := len(g.turnOrder)
	for i := 0; g.deck.Len()%n != 0 && i < len(removalOrder); i++ {
		g.deck.Remove(removalOrder[i])
	}

	for i, c := range g.deck.Cards {
		g.hands[g.turnOrder[i%n]].Add(c)
	}
	g.deck.Cards = nil
	g.SortHands()

	g.pile = NewPile()
	g.heartsBroken = false
	g.pendingPass = make(map[string][2]cards.Card)
	if g.PassDistance() > 0 {
		g.phase = PhasePassing
	} else {
		g.phase = PhasePlaying
	}
}

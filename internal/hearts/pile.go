// internal/hearts/pile.go
//
// Pile is the shared trick area: the cards played into the current trick,
// the lead suit, and who played what in which order.

package hearts

import "github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"

// Pile holds the current trick.
type Pile struct {
	Cards     []cards.Card
	LeadSuit  cards.Suit // empty until the first card is played
	PlayOrder []string   // player IDs, parallel to Cards
}

// NewPile returns an empty trick pile.
func NewPile() *Pile {
	return &Pile{}
}

// Add appends a card with player attribution, fixing the lead suit on the
// first card.
func (p *Pile) Add(c cards.Card, player string) {
	if len(p.Cards) == 0 {
		p.LeadSuit = c.Suit
	}
	p.Cards = append(p.Cards, c)
	p.PlayOrder = append(p.PlayOrder, player)
}

// IsLegalPlay reports whether the card may be played from the given hand:
// follow the lead suit when possible, anything otherwise. Leading restrictions
// (hearts not broken) are the engine's concern, not the pile's.
func (p *Pile) IsLegalPlay(c cards.Card, hand *cards.Hand) bool {
	if len(p.Cards) == 0 {
		return true
	}
	if c.Suit == p.LeadSuit {
		return true
	}
	return !hand.HasSuit(p.LeadSuit)
}

// Points sums the card values in the pile.
func (p *Pile) Points() int {
	total := 0
	for _, c := range p.Cards {
		total += c.Value
	}
	return total
}

// Winner returns the player who played the highest card of the lead suit,
// or "" for an empty pile.
func (p *Pile) Winner() string {
	if len(p.Cards) == 0 {
		return ""
	}
	winnerIdx := -1
	var best cards.Card
	for i, c := range p.Cards {
		if c.Suit != p.LeadSuit {
			continue
		}
		if winnerIdx == -1 || cards.CompareRank(c.Rank, best.Rank) > 0 {
			winnerIdx = i
			best = c
		}
	}
	if winnerIdx == -1 {
		return ""
	}
	return p.PlayOrder[winnerIdx]
}

// Len returns the number of cards in the pile.
func (p *Pile) Len() int { return len(p.Cards) }

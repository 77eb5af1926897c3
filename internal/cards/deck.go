// internal/cards/deck.go
//
// Deck construction and shuffling.
// A ValueRule assigns each card its game-specific scoring weight at build
// time, so the engines never reinterpret values afterwards.

package cards

import "math/rand"

// ValueRule maps a (suit, rank) pair to its scoring value for one game.
type ValueRule func(Suit, Rank) int

// HeartsValue is the scoring rule for Hearts: hearts 2-10 are worth 1,
// J 2, Q 3, K 4, A 5; the Queen of Spades is worth 13; everything else 0.
func HeartsValue(s Suit, r Rank) int {
	if s == Spades && r == Queen {
		return 13
	}
	if s != Hearts {
		return 0
	}
	switch r {
	case Jack:
		return 2
	case Queen:
		return 3
	case King:
		return 4
	case Ace:
		return 5
	default:
		return 1
	}
}

// SpitValue is the scoring rule for Spit: values are unused, only rank order matters.
func SpitValue(Suit, Rank) int { return 0 }

// Deck is an ordered sequence of cards.
type Deck struct {
	Cards []Card
}

// NewDeck builds the full 52-card deck in a deterministic order,
// assigning values with the given rule.
func NewDeck(rule ValueRule) *Deck {
	d := &Deck{Cards: make([]Card, 0, 52)}
	for _, s := range Suits {
		for _, r := range Ranks {
			d.Cards = append(d.Cards, Card{Suit: s, Rank: r, Value: rule(s, r)})
		}
	}
	return d
}

// Shuffle permutes the deck in place (Fisher-Yates via rand.Shuffle).
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Remove deletes the first card matching (suit, rank). No-op if absent;
// callers that care about absence must check membership first.
func (d *Deck) Remove(c Card) {
	for i, x := range d.Cards {
		if x.Same(c) {
			d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
			return
		}
	}
}

// Len returns the number of cards left in the deck.
func (d *Deck) Len() int { return len(d.Cards) }

// internal/cards/hand.go
//
// Hand is the ordered, mutable card container owned by one player.
// Cards live in exactly one container at a time; Add/Remove are the only
// ways cards move between containers.

package cards

import "sort"

// Hand holds the cards currently owned by one player.
type Hand struct {
	Cards []Card
}

// Add appends a card to the hand.
func (h *Hand) Add(c Card) {
	h.Cards = append(h.Cards, c)
}

// Remove deletes the first card matching (suit, rank) and reports whether
// it was present.
func (h *Hand) Remove(c Card) bool {
	for i, x := range h.Cards {
		if x.Same(c) {
			h.Cards = append(h.Cards[:i], h.Cards[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the hand holds the card.
func (h *Hand) Contains(c Card) bool {
	for _, x := range h.Cards {
		if x.Same(c) {
			return true
		}
	}
	return false
}

// HasSuit reports whether any card of the given suit is held.
func (h *Hand) HasSuit(s Suit) bool {
	for _, x := range h.Cards {
		if x.Suit == s {
			return true
		}
	}
	return false
}

// OnlySuit reports whether every held card is of the given suit.
// False for an empty hand.
func (h *Hand) OnlySuit(s Suit) bool {
	if len(h.Cards) == 0 {
		return false
	}
	for _, x := range h.Cards {
		if x.Suit != s {
			return false
		}
	}
	return true
}

// Len returns the number of cards held.
func (h *Hand) Len() int { return len(h.Cards) }

// Sort orders the hand by suit then rank, for stable display and
// deterministic tests.
func (h *Hand) Sort() {
	sort.Slice(h.Cards, func(i, j int) bool {
		a, b := h.Cards[i], h.Cards[j]
		if a.Suit != b.Suit {
			return a.Suit < b.Suit
		}
		return RankIndex(a.Rank) < RankIndex(b.Rank)
	})
}

// internal/cards/cards.go
//
// Card model shared by both game engines.
// Defines:
//   - Suit / Rank: string-backed enums matching the wire payloads.
//   - Card: immutable value; equality by (suit, rank), Value is game-specific.
//   - Rank ordering helpers (linear for Hearts, index for cyclic Spit checks).

package cards

import "fmt"

// Suit is one of the four French suits.
type Suit string

const (
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
	Spades   Suit = "Spades"
)

// Suits lists all suits in deck-construction order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Rank is a card rank, "2".."10" plus the face ranks spelled out.
type Rank string

const (
	Rank2  Rank = "2"
	Rank3  Rank = "3"
	Rank4  Rank = "4"
	Rank5  Rank = "5"
	Rank6  Rank = "6"
	Rank7  Rank = "7"
	Rank8  Rank = "8"
	Rank9  Rank = "9"
	Rank10 Rank = "10"
	Jack   Rank = "Jack"
	Queen  Rank = "Queen"
	King   Rank = "King"
	Ace    Rank = "Ace"
)

// Ranks lists all ranks in ascending order, 2 low, Ace high.
var Ranks = []Rank{Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10, Jack, Queen, King, Ace}

// RankIndex returns the position of r in the ascending rank order,
// or -1 for an unknown rank.
func RankIndex(r Rank) int {
	for i, x := range Ranks {
		if x == r {
			return i
		}
	}
	return -1
}

// CompareRank orders two ranks: negative if a < b, zero if equal, positive if a > b.
func CompareRank(a, b Rank) int {
	return RankIndex(a) - RankIndex(b)
}

// CyclicAdjacent reports whether two ranks are equal or one step apart when
// the rank order wraps, so King and Ace are adjacent as well as Ace and 2.
func CyclicAdjacent(a, b Rank) bool {
	ai, bi := RankIndex(a), RankIndex(b)
	if ai < 0 || bi < 0 {
		return false
	}
	diff := (ai - bi + len(Ranks)) % len(Ranks)
	return diff == 0 || diff == 1 || diff == len(Ranks)-1
}

// Card is a single playing card. Value carries the game-specific scoring
// weight assigned at deck construction; it is ignored for equality.
type Card struct {
	Suit  Suit `json:"suit"`
	Rank  Rank `json:"rank"`
	Value int  `json:"value"`
}

// Same reports whether two cards are the same physical card, by (suit, rank).
func (c Card) Same(o Card) bool {
	return c.Suit == o.Suit && c.Rank == o.Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

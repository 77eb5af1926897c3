// internal/hearts/engine.go
//
// Hearts rule engine. Owns the authoritative deck, hands, trick pile, turn
// order and scores for one game; the transport layer feeds it one player
// action at a time and broadcasts the snapshots it exposes. The engine does
// no networking, persistence, or logging.
//
// Round lifecycle: deal -> (pass) -> tricks -> round over -> next round or
// game over. Every rejected action is a cards.RuleError and leaves state
// untouched.

package hearts

import (
	"errors"
	"math/rand"

	"github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"
)

// Phase is the engine's lifecycle stage.
type Phase string

const (
	PhaseDealing   Phase = "dealing"
	PhasePassing   Phase = "passing"
	PhasePlaying   Phase = "playing"
	PhaseRoundOver Phase = "roundOver"
	PhaseGameOver  Phase = "gameOver"
)

// MoonTotal is the maximum attainable round score: all nine low hearts,
// the four heart face cards and the Queen of Spades.
const MoonTotal = 36

// Game is one Hearts game for a fixed roster of players.
type Game struct {
	turnOrder    []string
	hands        map[string]*cards.Hand
	deck         *cards.Deck
	pile         *Pile
	heartsBroken bool
	turnIndex    int
	round        int
	roundsToPlay int
	roundScores  map[string]int
	totalScores  map[string]int
	phase        Phase
	pendingPass  map[string][2]cards.Card
	rng          *rand.Rand
}

// New creates a game for the given ordered roster. The roster fixes turn
// order; it is never derived from map iteration. By default one round is
// played per participant.
func New(playerIDs []string, seed int64) (*Game, error) {
	if len(playerIDs) < 2 {
		return nil, errors.New("hearts needs at least 2 players")
	}
	g := &Game{
		turnOrder:    append([]string(nil), playerIDs...),
		hands:        make(map[string]*cards.Hand, len(playerIDs)),
		pile:         NewPile(),
		round:        1,
		roundsToPlay: len(playerIDs),
		roundScores:  make(map[string]int, len(playerIDs)),
		totalScores:  make(map[string]int, len(playerIDs)),
		phase:        PhaseDealing,
		pendingPass:  make(map[string][2]cards.Card),
		rng:          rand.New(rand.NewSource(seed)),
	}
	for _, id := range playerIDs {
		if id == "" {
			return nil, errors.New("empty player id")
		}
		if _, dup := g.hands[id]; dup {
			return nil, errors.New("duplicate player id: " + id)
		}
		g.hands[id] = &cards.Hand{}
		g.roundScores[id] = 0
		g.totalScores[id] = 0
	}
	return g, nil
}

// SetupDeck builds a fresh 52-card deck with Hearts scoring values.
func (g *Game) SetupDeck() {
	g.deck = cards.NewDeck(cards.HeartsValue)
}

// CurrentPlayer returns the ID of the player whose turn it is.
func (g *Game) CurrentPlayer() string {
	return g.turnOrder[g.turnIndex]
}

// Phase returns the current lifecycle stage.
func (g *Game) Phase() Phase { return g.phase }

// Round returns the 1-based round number.
func (g *Game) Round() int { return g.round }

// HeartsBroken reports whether a heart or the Queen of Spades has been played
// this round.
func (g *Game) HeartsBroken() bool { return g.heartsBroken }

// GameOver reports whether the final round has been scored.
func (g *Game) GameOver() bool { return g.phase == PhaseGameOver }

// Players returns the roster in turn order.
func (g *Game) Players() []string {
	return append([]string(nil), g.turnOrder...)
}

// HandOf returns a copy of a player's current hand, or nil for an unknown
// player. Cards selected for a pending pass are not included.
func (g *Game) HandOf(player string) []cards.Card {
	h, ok := g.hands[player]
	if !ok {
		return nil
	}
	return append([]cards.Card(nil), h.Cards...)
}

// SetInitialLeader points the turn at the holder of the 2 of Clubs, falling
// back to the first roster position when nobody holds it (possible after a
// low-card trim).
func (g *Game) SetInitialLeader() {
	twoClubs := cards.Card{Suit: cards.Clubs, Rank: cards.Rank2}
	for i, id := range g.turnOrder {
		if g.hands[id].Contains(twoClubs) {
			g.turnIndex = i
			return
		}
	}
	g.turnIndex = 0
}

// SortHands orders every hand by suit then rank.
func (g *Game) SortHands() {
	for _, h := range g.hands {
		h.Sort()
	}
}

// PlayResult reports what a successful play caused.
type PlayResult struct {
	TrickComplete bool
	TrickWinner   string
	TrickPoints   int
	RoundOver     bool
}

// PlayCard validates and applies one card play. On success the card moves
// from the player's hand to the pile and the trick resolves if complete; on
// rejection nothing changes.
func (g *Game) PlayCard(player string, card cards.Card) (PlayResult, error) {
	var res PlayResult
	switch g.phase {
	case PhasePlaying:
	case PhasePassing:
		return res, cards.Reject(cards.ViolationPhase, "cannot play while the pass is in progress")
	case PhaseGameOver:
		return res, cards.Reject(cards.ViolationPhase, "game is over")
	default:
		return res, cards.Reject(cards.ViolationPhase, "no trick in progress")
	}
	hand, ok := g.hands[player]
	if !ok {
		return res, cards.Reject(cards.ViolationSelection, "unknown player %q", player)
	}
	if g.CurrentPlayer() != player {
		return res, cards.Reject(cards.ViolationTurn, "not %s's turn", player)
	}
	if !hand.Contains(card) {
		return res, cards.Reject(cards.ViolationSelection, "%s is not in hand", card)
	}
	// Hearts may not be led until broken, unless the hand is all hearts.
	if g.pile.Len() == 0 && card.Suit == cards.Hearts && !g.heartsBroken && !hand.OnlySuit(cards.Hearts) {
		return res, cards.Reject(cards.ViolationLegality, "cannot lead hearts until they are broken")
	}
	if !g.pile.IsLegalPlay(card, hand) {
		return res, cards.Reject(cards.ViolationLegality, "must follow %s", g.pile.LeadSuit)
	}

	// The hand holds the card by (suit, rank); play the held copy so the
	// pile carries the correct scoring value.
	played := g.heldCard(hand, card)
	hand.Remove(card)
	g.pile.Add(played, player)
	if played.Suit == cards.Hearts || (played.Suit == cards.Spades && played.Rank == cards.Queen) {
		g.heartsBroken = true
	}

	if g.pile.Len() == len(g.turnOrder) {
		winner, points := g.resolveTrick()
		res.TrickComplete = true
		res.TrickWinner = winner
		res.TrickPoints = points
		if g.IsRoundOver() {
			g.phase = PhaseRoundOver
			res.RoundOver = true
		}
	} else {
		g.turnIndex = (g.turnIndex + 1) % len(g.turnOrder)
	}
	return res, nil
}

// resolveTrick credits the pile's points to its winner, hands them the lead,
// and clears the pile.
func (g *Game) resolveTrick() (string, int) {
	winner := g.pile.Winner()
	points := g.pile.Points()
	if winner != "" {
		g.roundScores[winner] += points
		for i, id := range g.turnOrder {
			if id == winner {
				g.turnIndex = i
				break
			}
		}
	}
	g.pile = NewPile()
	return winner, points
}

// IsRoundOver reports whether every hand is empty.
func (g *Game) IsRoundOver() bool {
	for _, h := range g.hands {
		if h.Len() > 0 {
			return false
		}
	}
	return true
}

// heldCard returns the hand's copy of a card, which carries the scoring value.
func (g *Game) heldCard(h *cards.Hand, c cards.Card) cards.Card {
	for _, x := range h.Cards {
		if x.Same(c) {
			return x
		}
	}
	return c
}

// internal/spit/engine.go
//
// Spit rule engine for exactly two players. Owns the spit piles, stocks and
// the two shared center piles; the transport layer delivers one action at a
// time. Spit has no turns: either player may act whenever the phase allows,
// and simultaneity (the mutual spit) is modeled as accumulated requests, not
// blocking.
//
// Round lifecycle: deal -> active -> round over -> redeal or game over. A
// round ends the instant one player's five spit piles are empty; the game
// ends outright for a player with no piles and no stock.

package spit

import (
	"errors"
	"math/rand"

	"github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"
)

// Phase is the engine's lifecycle stage.
type Phase string

const (
	PhaseDealing   Phase = "dealing"
	PhaseActive    Phase = "active"
	PhaseRoundOver Phase = "roundOver"
	PhaseGameOver  Phase = "gameOver"
)

const (
	numPiles   = 5
	numCenters = 2
)

// playerState is one player's side of the table. Pile slices run bottom to
// top; only the top card of a face-up pile is playable.
type playerState struct {
	piles  [numPiles][]cards.Card
	faceUp [numPiles]bool
	stock  []cards.Card
}

// topCard returns the playable top of a pile, if any.
func (p *playerState) topCard(pile int) (cards.Card, bool) {
	if pile < 0 || pile >= numPiles {
		return cards.Card{}, false
	}
	cs := p.piles[pile]
	if len(cs) == 0 || !p.faceUp[pile] {
		return cards.Card{}, false
	}
	return cs[len(cs)-1], true
}

// pilesEmpty reports whether all five spit piles are empty.
func (p *playerState) pilesEmpty() bool {
	for i := range p.piles {
		if len(p.piles[i]) > 0 {
			return false
		}
	}
	return true
}

// remaining collects every card the player still holds, piles then stock.
func (p *playerState) remaining() []cards.Card {
	var out []cards.Card
	for i := range p.piles {
		out = append(out, p.piles[i]...)
	}
	out = append(out, p.stock...)
	return out
}

// liveCount is the number of cards under the player's control.
func (p *playerState) liveCount() int {
	n := len(p.stock)
	for i := range p.piles {
		n += len(p.piles[i])
	}
	return n
}

// Game is one Spit game between a fixed pair of players.
type Game struct {
	names      [2]string
	states     [2]*playerState
	center     [numCenters][]cards.Card
	requests   map[string]bool
	round      int
	phase      Phase
	eliminated string
	winner     string
	rng        *rand.Rand
}

// New creates a game for two distinct players.
func New(p1, p2 string, seed int64) (*Game, error) {
	if p1 == "" || p2 == "" {
		return nil, errors.New("empty player name")
	}
	if p1 == p2 {
		return nil, errors.New("spit needs two distinct players")
	}
	g := &Game{
		names:    [2]string{p1, p2},
		states:   [2]*playerState{{}, {}},
		requests: make(map[string]bool, 2),
		round:    1,
		phase:    PhaseDealing,
		rng:      rand.New(rand.NewSource(seed)),
	}
	return g, nil
}

// Setup shuffles a fresh flat-value deck, splits it 26/26, deals both sides
// and seeds the center piles with one stock card from each player.
func (g *Game) Setup() {
	deck := cards.NewDeck(cards.SpitValue)
	deck.Shuffle(g.rng)
	g.dealSide(0, deck.Cards[:26])
	g.dealSide(1, deck.Cards[26:])
	g.seedCenters()
	g.phase = PhaseActive
}

// dealSide lays out one player's cards: spit piles sized 1..5 filled greedily
// while cards remain, the rest as face-down stock. Tops are face-up.
func (g *Game) dealSide(idx int, cs []cards.Card) {
	st := &playerState{}
	pos := 0
	for pile := 0; pile < numPiles; pile++ {
		for n := 0; n <= pile && pos < len(cs); n++ {
			st.piles[pile] = append(st.piles[pile], cs[pos])
			pos++
		}
		st.faceUp[pile] = len(st.piles[pile]) > 0
	}
	st.stock = append(st.stock, cs[pos:]...)
	g.states[idx] = st
}

// seedCenters starts each center pile with one card per player, from the
// stock or, when a redealt stock is empty, from that player's deepest pile.
func (g *Game) seedCenters() {
	for i := 0; i < numCenters; i++ {
		g.center[i] = nil
		if c, ok := g.states[i].drawForCenter(); ok {
			g.center[i] = append(g.center[i], c)
		}
	}
}

// drawForCenter takes the seed card for a center pile: top of stock, falling
// back to the deepest spit pile when the stock is empty.
func (p *playerState) drawForCenter() (cards.Card, bool) {
	if n := len(p.stock); n > 0 {
		c := p.stock[n-1]
		p.stock = p.stock[:n-1]
		return c, true
	}
	deepest := -1
	for i := range p.piles {
		if deepest < 0 || len(p.piles[i]) > len(p.piles[deepest]) {
			if len(p.piles[i]) > 0 {
				deepest = i
			}
		}
	}
	if deepest < 0 {
		return cards.Card{}, false
	}
	n := len(p.piles[deepest])
	c := p.piles[deepest][n-1]
	p.piles[deepest] = p.piles[deepest][:n-1]
	p.faceUp[deepest] = len(p.piles[deepest]) > 0
	return c, true
}

// Players returns both player names in seating order.
func (g *Game) Players() [2]string { return g.names }

// Phase returns the current lifecycle stage.
func (g *Game) Phase() Phase { return g.phase }

// Round returns the 1-based round number.
func (g *Game) Round() int { return g.round }

// GameOver reports whether an overall winner has been decided.
func (g *Game) GameOver() bool { return g.phase == PhaseGameOver }

// Winner returns the overall winner, or "" while the game is live.
func (g *Game) Winner() string { return g.winner }

// Eliminated returns the player who emptied their piles this round (the
// round's winner), or "" while the round is live.
func (g *Game) Eliminated() string { return g.eliminated }

// playerIndex maps a name to a seat, or -1 for an unknown player.
func (g *Game) playerIndex(name string) int {
	for i, n := range g.names {
		if n == name {
			return i
		}
	}
	return -1
}

func (g *Game) opponentIndex(idx int) int { return 1 - idx }

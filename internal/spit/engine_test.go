package spit

import (
	"errors"
	"testing"

	"github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"
)

func sc(r cards.Rank) cards.Card {
	return cards.Card{Suit: cards.Spades, Rank: r}
}

func kind(err error) cards.ViolationKind {
	var re *cards.RuleError
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}

// table builds an active two-player game with hand-placed piles, stocks and
// center tops, bypassing the deal.
func table(t *testing.T, piles map[string][numPiles][]cards.Card, stocks map[string][]cards.Card, centers [2]cards.Card) *Game {
	t.Helper()
	g, err := New("A", "B", 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for name, ps := range piles {
		idx := g.playerIndex(name)
		for i := range ps {
			g.states[idx].piles[i] = append([]cards.Card(nil), ps[i]...)
			g.states[idx].faceUp[i] = len(ps[i]) > 0
		}
	}
	for name, st := range stocks {
		g.states[g.playerIndex(name)].stock = append([]cards.Card(nil), st...)
	}
	for i := range centers {
		g.center[i] = []cards.Card{centers[i]}
	}
	g.phase = PhaseActive
	return g
}

func TestSetupLayout(t *testing.T) {
	g, err := New("A", "B", 7)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Setup()

	if g.Phase() != PhaseActive {
		t.Fatalf("phase after setup = %s", g.Phase())
	}
	total := 0
	for i, st := range g.states {
		for p := 0; p < numPiles; p++ {
			if len(st.piles[p]) != p+1 {
				t.Fatalf("player %d pile %d size = %d, want %d", i, p, len(st.piles[p]), p+1)
			}
			if !st.faceUp[p] {
				t.Fatalf("player %d pile %d not face-up after deal", i, p)
			}
		}
		// 11 stock minus the one card seeding a center pile.
		if len(st.stock) != 10 {
			t.Fatalf("player %d stock = %d, want 10", i, len(st.stock))
		}
		total += st.liveCount()
	}
	for i := range g.center {
		if len(g.center[i]) != 1 {
			t.Fatalf("center %d size = %d, want 1", i, len(g.center[i]))
		}
		total += len(g.center[i])
	}
	if total != 52 {
		t.Fatalf("live cards = %d, want 52", total)
	}
}

func TestCyclicAdjacency(t *testing.T) {
	cases := []struct {
		card, top cards.Rank
		legal     bool
	}{
		{cards.Rank5, cards.Rank5, true},
		{cards.Rank5, cards.Rank4, true},
		{cards.Rank5, cards.Rank6, true},
		{cards.Rank5, cards.Rank7, false},
		{cards.King, cards.Ace, true},
		{cards.Ace, cards.King, true},
		{cards.Ace, cards.Rank2, true},
		{cards.Queen, cards.Rank2, false},
	}
	for _, tc := range cases {
		g := table(t,
			map[string][numPiles][]cards.Card{"A": {0: {sc(tc.card)}}},
			nil,
			[2]cards.Card{sc(tc.top), sc(cards.Rank9)},
		)
		_, err := g.PlayCard("A", 0, 0)
		if tc.legal && err != nil {
			t.Fatalf("%s on %s rejected: %v", tc.card, tc.top, err)
		}
		if !tc.legal && kind(err) != cards.ViolationLegality {
			t.Fatalf("%s on %s: want legality violation, got %v", tc.card, tc.top, err)
		}
	}
}

func TestPlayPopsAndExposesNext(t *testing.T) {
	g := table(t,
		map[string][numPiles][]cards.Card{"A": {2: {sc(cards.Rank9), sc(cards.Rank4)}}},
		map[string][]cards.Card{"A": {sc(cards.Rank2)}, "B": {sc(cards.Rank2)}},
		[2]cards.Card{sc(cards.Rank5), sc(cards.Jack)},
	)
	if _, err := g.PlayCard("A", 2, 0); err != nil {
		t.Fatalf("play rejected: %v", err)
	}
	top, ok := g.states[0].topCard(2)
	if !ok || top.Rank != cards.Rank9 {
		t.Fatalf("next card not exposed, got %v ok=%v", top, ok)
	}
	if _, err := g.PlayCard("A", 2, 0); kind(err) != cards.ViolationLegality {
		t.Fatalf("9 on 4 should be illegal, got %v", err)
	}
}

func TestPlayOnEmptyPileRejected(t *testing.T) {
	g := table(t,
		map[string][numPiles][]cards.Card{"A": {0: {sc(cards.Rank5)}}},
		nil,
		[2]cards.Card{sc(cards.Rank4), sc(cards.Jack)},
	)
	if _, err := g.PlayCard("A", 3, 0); kind(err) != cards.ViolationLegality {
		t.Fatalf("empty pile play should be a legality violation, got %v", err)
	}
	if _, err := g.PlayCard("A", 7, 0); kind(err) != cards.ViolationSelection {
		t.Fatalf("out-of-range pile should be a selection violation, got %v", err)
	}
	if _, err := g.PlayCard("Z", 0, 0); kind(err) != cards.ViolationSelection {
		t.Fatalf("unknown player should be a selection violation, got %v", err)
	}
}

func TestRejectionHasNoSideEffects(t *testing.T) {
	g := table(t,
		map[string][numPiles][]cards.Card{"A": {0: {sc(cards.Rank5)}}},
		map[string][]cards.Card{"A": {sc(cards.Rank2)}, "B": {sc(cards.Rank3)}},
		[2]cards.Card{sc(cards.Jack), sc(cards.Queen)},
	)
	if _, err := g.PlayCard("A", 0, 0); err == nil {
		t.Fatalf("expected rejection")
	}
	if len(g.states[0].piles[0]) != 1 || len(g.center[0]) != 1 {
		t.Fatalf("rejected play mutated state")
	}
}

func TestRoundEndsWhenPilesEmpty(t *testing.T) {
	g := table(t,
		map[string][numPiles][]cards.Card{
			"A": {0: {sc(cards.Rank5)}},
			"B": {0: {sc(cards.King)}, 1: {sc(cards.Rank8)}},
		},
		map[string][]cards.Card{"A": {sc(cards.Rank2), sc(cards.Rank3)}, "B": {sc(cards.Rank4)}},
		[2]cards.Card{sc(cards.Rank4), sc(cards.Jack)},
	)
	res, err := g.PlayCard("A", 0, 0)
	if err != nil {
		t.Fatalf("play rejected: %v", err)
	}
	if !res.RoundOver || res.Eliminated != "A" {
		t.Fatalf("round should end with A eliminated, got %+v", res)
	}
	if g.Phase() != PhaseRoundOver {
		t.Fatalf("phase = %s, want roundOver", g.Phase())
	}
	// Stock remaining does not delay the round end.
	if len(g.states[0].stock) != 2 {
		t.Fatalf("stock should be untouched at round end")
	}
	if _, err := g.PlayCard("B", 0, 1); kind(err) != cards.ViolationPhase {
		t.Fatalf("play after round end should be a phase violation, got %v", err)
	}
}

func TestOutrightWinOnLastCard(t *testing.T) {
	g := table(t,
		map[string][numPiles][]cards.Card{
			"A": {0: {sc(cards.Rank5)}},
			"B": {0: {sc(cards.King)}},
		},
		map[string][]cards.Card{"B": {sc(cards.Rank4)}},
		[2]cards.Card{sc(cards.Rank4), sc(cards.Jack)},
	)
	res, err := g.PlayCard("A", 0, 0)
	if err != nil {
		t.Fatalf("play rejected: %v", err)
	}
	if !res.GameOver || res.Winner != "A" {
		t.Fatalf("want outright win for A, got %+v", res)
	}
	if !g.GameOver() || g.Winner() != "A" {
		t.Fatalf("game state not terminal: phase=%s winner=%q", g.Phase(), g.Winner())
	}
}

func TestActionsRejectedAfterGameOver(t *testing.T) {
	g := table(t,
		map[string][numPiles][]cards.Card{
			"A": {0: {sc(cards.Rank5)}},
			"B": {0: {sc(cards.King)}, 1: {sc(cards.Rank3)}},
		},
		map[string][]cards.Card{"B": {sc(cards.Rank4)}},
		[2]cards.Card{sc(cards.Rank4), sc(cards.Rank4)},
	)
	if _, err := g.PlayCard("A", 0, 0); err != nil {
		t.Fatalf("winning play rejected: %v", err)
	}
	if !g.GameOver() {
		t.Fatalf("game should be over")
	}

	// B's 3 on the center 4 would be legal in play; the phase gate rejects it
	// before legality is considered.
	if _, err := g.PlayCard("B", 1, 1); kind(err) != cards.ViolationPhase {
		t.Fatalf("play after game over: want phase violation, got %v", err)
	}
	if _, err := g.RequestSpit("B"); kind(err) != cards.ViolationPhase {
		t.Fatalf("spit after game over: want phase violation, got %v", err)
	}
	if len(g.states[1].piles[1]) != 1 || len(g.states[1].stock) != 1 {
		t.Fatalf("post-game action mutated state")
	}
}

func TestValidMovesTriples(t *testing.T) {
	g := table(t,
		map[string][numPiles][]cards.Card{
			"A": {0: {sc(cards.Rank5)}, 1: {sc(cards.Jack)}, 2: {sc(cards.Rank9)}},
		},
		nil,
		[2]cards.Card{sc(cards.Rank4), sc(cards.Rank10)},
	)
	moves := g.ValidMoves("A")
	want := map[Move]bool{
		{SpitPile: 0, CenterPile: 0, Card: sc(cards.Rank5)}: true,
		{SpitPile: 1, CenterPile: 1, Card: sc(cards.Jack)}:  true,
		{SpitPile: 2, CenterPile: 1, Card: sc(cards.Rank9)}: true,
	}
	if len(moves) != len(want) {
		t.Fatalf("moves = %+v, want %d entries", moves, len(want))
	}
	for _, m := range moves {
		if !want[m] {
			t.Fatalf("unexpected move %+v", m)
		}
	}
	if g.CanPlayerMove("B") {
		t.Fatalf("B has no piles and should have no moves")
	}
}

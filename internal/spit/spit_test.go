package spit

import (
	"testing"

	"github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"
)

func TestMutualSpitNeedsBothRequests(t *testing.T) {
	g := table(t,
		map[string][numPiles][]cards.Card{
			"A": {0: {sc(cards.Rank5)}},
			"B": {0: {sc(cards.King)}},
		},
		map[string][]cards.Card{
			"A": {sc(cards.Rank2), sc(cards.Rank3)},
			"B": {sc(cards.Rank7), sc(cards.Rank8)},
		},
		[2]cards.Card{sc(cards.Jack), sc(cards.Rank9)},
	)

	res, err := g.RequestSpit("A")
	if err != nil {
		t.Fatalf("first request rejected: %v", err)
	}
	if !res.Pending || res.Executed {
		t.Fatalf("first request should pend, got %+v", res)
	}
	if len(g.center[0]) != 1 {
		t.Fatalf("pending request must not move cards")
	}

	res, err = g.RequestSpit("B")
	if err != nil {
		t.Fatalf("second request rejected: %v", err)
	}
	if !res.Executed || res.Solo {
		t.Fatalf("second request should execute a mutual spit, got %+v", res)
	}
	if len(g.center[0]) != 2 || len(g.center[1]) != 2 {
		t.Fatalf("each center should gain one card: %d/%d", len(g.center[0]), len(g.center[1]))
	}
	if len(g.states[0].stock) != 1 || len(g.states[1].stock) != 1 {
		t.Fatalf("each stock should lose one card")
	}
	// A's stock card lands on center 0, B's on center 1.
	if top := g.center[0][1]; top.Rank != cards.Rank3 {
		t.Fatalf("center 0 top = %s, want A's stock top 3", top)
	}
	if top := g.center[1][1]; top.Rank != cards.Rank8 {
		t.Fatalf("center 1 top = %s, want B's stock top 8", top)
	}
	if g.HasPendingSpit("A") || g.HasPendingSpit("B") {
		t.Fatalf("requests should clear after execution")
	}
}

func TestPlayClearsPendingSpit(t *testing.T) {
	g := table(t,
		map[string][numPiles][]cards.Card{
			"A": {0: {sc(cards.Rank5)}},
			"B": {0: {sc(cards.King)}},
		},
		map[string][]cards.Card{
			"A": {sc(cards.Rank2)},
			"B": {sc(cards.Rank7)},
		},
		[2]cards.Card{sc(cards.Rank4), sc(cards.Jack)},
	)
	if _, err := g.RequestSpit("B"); err != nil {
		t.Fatalf("request rejected: %v", err)
	}
	if _, err := g.PlayCard("A", 0, 0); err != nil {
		t.Fatalf("play rejected: %v", err)
	}
	if g.HasPendingSpit("B") {
		t.Fatalf("a successful play should clear the pending window")
	}
}

func TestSoloSpitPreconditions(t *testing.T) {
	build := func(stockA int) *Game {
		var stock []cards.Card
		ranks := []cards.Rank{cards.Rank2, cards.Rank3, cards.Rank4}
		for i := 0; i < stockA; i++ {
			stock = append(stock, sc(ranks[i]))
		}
		return table(t,
			map[string][numPiles][]cards.Card{
				"A": {0: {sc(cards.Rank5)}},
				"B": {0: {sc(cards.King)}},
			},
			map[string][]cards.Card{"A": stock},
			[2]cards.Card{sc(cards.Jack), sc(cards.Rank9)},
		)
	}

	g := build(1)
	if g.CanSpit("A") {
		t.Fatalf("solo spit with 1 stock card should not be allowed")
	}
	if _, err := g.RequestSpit("A"); kind(err) != cards.ViolationPhase {
		t.Fatalf("want phase violation, got %v", err)
	}
	if len(g.states[0].stock) != 1 {
		t.Fatalf("rejected spit must not move cards")
	}

	g = build(2)
	if !g.CanSpit("A") {
		t.Fatalf("solo spit with 2 stock cards should be allowed")
	}
	res, err := g.RequestSpit("A")
	if err != nil {
		t.Fatalf("solo spit rejected: %v", err)
	}
	if !res.Executed || !res.Solo {
		t.Fatalf("want executed solo spit, got %+v", res)
	}
	if len(g.states[0].stock) != 0 {
		t.Fatalf("solo spit should move exactly 2 cards, stock = %d", len(g.states[0].stock))
	}
	if len(g.center[0]) != 2 || len(g.center[1]) != 2 {
		t.Fatalf("each center should gain one card")
	}
}

func TestMutualSpitRequiresRequesterStock(t *testing.T) {
	g := table(t,
		map[string][numPiles][]cards.Card{
			"A": {0: {sc(cards.Rank5)}},
			"B": {0: {sc(cards.King)}},
		},
		map[string][]cards.Card{"B": {sc(cards.Rank7)}},
		[2]cards.Card{sc(cards.Jack), sc(cards.Rank9)},
	)
	if g.CanSpit("A") {
		t.Fatalf("A has no stock and the opponent does; cannot spit")
	}
	if _, err := g.RequestSpit("A"); kind(err) != cards.ViolationPhase {
		t.Fatalf("want phase violation, got %v", err)
	}
}

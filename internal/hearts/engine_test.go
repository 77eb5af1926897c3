package hearts

import (
	"errors"
	"testing"

	"github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"
)

// hc builds a card carrying its Hearts scoring value.
func hc(s cards.Suit, r cards.Rank) cards.Card {
	return cards.Card{Suit: s, Rank: r, Value: cards.HeartsValue(s, r)}
}

// playingGame returns a three-player game forced into trick play with the
// given hands, player "A" to lead.
func playingGame(t *testing.T, hands map[string][]cards.Card) *Game {
	t.Helper()
	g, err := New([]string{"A", "B", "C"}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for id, cs := range hands {
		for _, c := range cs {
			g.hands[id].Add(c)
		}
	}
	g.phase = PhasePlaying
	g.turnIndex = 0
	return g
}

func kind(err error) cards.ViolationKind {
	var re *cards.RuleError
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}

func TestPlayRejectsOutOfTurn(t *testing.T) {
	g := playingGame(t, map[string][]cards.Card{
		"A": {hc(cards.Clubs, cards.Rank2)},
		"B": {hc(cards.Clubs, cards.King)},
	})
	_, err := g.PlayCard("B", hc(cards.Clubs, cards.King))
	if kind(err) != cards.ViolationTurn {
		t.Fatalf("expected turn violation, got %v", err)
	}
}

func TestPlayRejectsCardNotHeld(t *testing.T) {
	g := playingGame(t, map[string][]cards.Card{
		"A": {hc(cards.Clubs, cards.Rank2)},
	})
	_, err := g.PlayCard("A", hc(cards.Spades, cards.Ace))
	if kind(err) != cards.ViolationSelection {
		t.Fatalf("expected selection violation, got %v", err)
	}
}

func TestPlayMustFollowSuit(t *testing.T) {
	g := playingGame(t, map[string][]cards.Card{
		"A": {hc(cards.Clubs, cards.Rank2)},
		"B": {hc(cards.Clubs, cards.King), hc(cards.Diamonds, cards.Rank5)},
	})
	if _, err := g.PlayCard("A", hc(cards.Clubs, cards.Rank2)); err != nil {
		t.Fatalf("lead failed: %v", err)
	}
	_, err := g.PlayCard("B", hc(cards.Diamonds, cards.Rank5))
	if kind(err) != cards.ViolationLegality {
		t.Fatalf("expected legality violation, got %v", err)
	}
	if _, err := g.PlayCard("B", hc(cards.Clubs, cards.King)); err != nil {
		t.Fatalf("following suit rejected: %v", err)
	}
}

func TestCannotLeadHeartsUntilBroken(t *testing.T) {
	g := playingGame(t, map[string][]cards.Card{
		"A": {hc(cards.Clubs, cards.Rank2), hc(cards.Hearts, cards.Rank3)},
	})
	_, err := g.PlayCard("A", hc(cards.Hearts, cards.Rank3))
	if kind(err) != cards.ViolationLegality {
		t.Fatalf("expected legality violation, got %v", err)
	}
}

func TestMayLeadHeartsWhenOnlyHeartsHeld(t *testing.T) {
	g := playingGame(t, map[string][]cards.Card{
		"A": {hc(cards.Hearts, cards.Rank3), hc(cards.Hearts, cards.Rank8)},
	})
	if _, err := g.PlayCard("A", hc(cards.Hearts, cards.Rank3)); err != nil {
		t.Fatalf("all-hearts lead rejected: %v", err)
	}
	if !g.HeartsBroken() {
		t.Fatalf("playing a heart should break hearts")
	}
}

func TestQueenOfSpadesBreaksHearts(t *testing.T) {
	g := playingGame(t, map[string][]cards.Card{
		"A": {hc(cards.Spades, cards.Queen)},
	})
	if _, err := g.PlayCard("A", hc(cards.Spades, cards.Queen)); err != nil {
		t.Fatalf("queen lead rejected: %v", err)
	}
	if !g.HeartsBroken() {
		t.Fatalf("queen of spades should break hearts")
	}
}

func TestTrickResolutionAwardsPointsAndLead(t *testing.T) {
	g := playingGame(t, map[string][]cards.Card{
		"A": {hc(cards.Clubs, cards.Rank2), hc(cards.Clubs, cards.Rank5)},
		"B": {hc(cards.Clubs, cards.King), hc(cards.Clubs, cards.Rank3)},
		"C": {hc(cards.Hearts, cards.Ace), hc(cards.Clubs, cards.Rank4)},
	})

	mustPlay(t, g, "A", hc(cards.Clubs, cards.Rank2))
	mustPlay(t, g, "B", hc(cards.Clubs, cards.King))
	res, err := g.PlayCard("C", hc(cards.Hearts, cards.Ace))
	if err != nil {
		t.Fatalf("off-suit heart rejected: %v", err)
	}
	if !res.TrickComplete || res.TrickWinner != "B" {
		t.Fatalf("trick result = %+v, want winner B", res)
	}
	if res.TrickPoints != 5 {
		t.Fatalf("trick points = %d, want 5", res.TrickPoints)
	}
	if g.State().Scores["B"] != 5 {
		t.Fatalf("round score for B = %d, want 5", g.State().Scores["B"])
	}
	if g.CurrentPlayer() != "B" {
		t.Fatalf("trick winner should lead next, current = %s", g.CurrentPlayer())
	}
}

func TestRejectionHasNoSideEffects(t *testing.T) {
	g := playingGame(t, map[string][]cards.Card{
		"A": {hc(cards.Clubs, cards.Rank2)},
		"B": {hc(cards.Spades, cards.Ace)},
	})
	before := g.State()
	if _, err := g.PlayCard("B", hc(cards.Spades, cards.Ace)); err == nil {
		t.Fatalf("expected rejection")
	}
	after := g.State()
	if before.Turn != after.Turn || len(after.Pile.Cards) != 0 || len(g.HandOf("B")) != 1 {
		t.Fatalf("rejected action mutated state")
	}
}

func mustPlay(t *testing.T, g *Game, player string, c cards.Card) PlayResult {
	t.Helper()
	res, err := g.PlayCard(player, c)
	if err != nil {
		t.Fatalf("play %s by %s rejected: %v", c, player, err)
	}
	return res
}

// TestFullRoundFourPlayers drives a complete dealt round: pass, then play
// every trick with the first legal card each turn, and checks point
// conservation at the end.
func TestFullRoundFourPlayers(t *testing.T) {
	players := []string{"A", "B", "C", "D"}
	g, err := New(players, 2024)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.SetupDeck()
	g.DealAll()
	g.SetInitialLeader()

	if g.Phase() != PhasePassing {
		t.Fatalf("round 1 with 4 players should pass, phase = %s", g.Phase())
	}
	for _, id := range players {
		hand := g.HandOf(id)
		if _, err := g.SelectPassCards(id, [2]cards.Card{hand[0], hand[1]}); err != nil {
			t.Fatalf("pass by %s rejected: %v", id, err)
		}
	}
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase after exchange = %s, want playing", g.Phase())
	}

	tricks := 0
	for !g.IsRoundOver() {
		player := g.CurrentPlayer()
		played := false
		for _, c := range g.HandOf(player) {
			res, err := g.PlayCard(player, c)
			if err != nil {
				continue // rejected plays have no side effects
			}
			played = true
			if res.TrickComplete {
				tricks++
			}
			break
		}
		if !played {
			t.Fatalf("player %s had no legal play", player)
		}
	}
	if tricks != 13 {
		t.Fatalf("played %d tricks, want 13", tricks)
	}

	summary, err := g.FinishRound()
	if err != nil {
		t.Fatalf("FinishRound: %v", err)
	}
	sum := 0
	for _, pts := range summary.RoundScores {
		sum += pts
	}
	// 36 points in a round; a shot moon inverts to 3x36.
	if sum != MoonTotal && sum != 3*MoonTotal {
		t.Fatalf("round scores sum to %d, want %d or %d", sum, MoonTotal, 3*MoonTotal)
	}
}

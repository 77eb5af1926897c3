// internal/hearts/scoring.go
//
// Round scoring: shoot-the-moon inversion, cumulative totals, and standings
// with dense ranking (ascending score; ties share a place).

package hearts

import (
	"sort"

	"github.com/MatthewRust/Hearts-Game-Christmas/internal/cards"
)

// Standing is one row of the scoreboard.
type Standing struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
	Place  int    `json:"place"`
}

// RoundSummary is the result of a finished round.
type RoundSummary struct {
	Round       int            `json:"round"`
	RoundScores map[string]int `json:"roundScores"`
	TotalScores map[string]int `json:"totalScores"`
	Standings   []Standing     `json:"standings"`
	GameOver    bool           `json:"gameOver"`
}

// FinishRound applies shoot-the-moon, folds round scores into the totals,
// and returns the round summary. When no rounds remain the game is over and
// the summary's standings are final.
func (g *Game) FinishRound() (RoundSummary, error) {
	if g.phase != PhaseRoundOver {
		return RoundSummary{}, cards.Reject(cards.ViolationPhase, "round is not over")
	}

	g.checkShootTheMoon()
	for _, id := range g.turnOrder {
		g.totalScores[id] += g.roundScores[id]
	}

	summary := RoundSummary{
		Round:       g.round,
		RoundScores: copyScores(g.roundScores),
		TotalScores: copyScores(g.totalScores),
		Standings:   g.Standings(),
	}
	if !g.HasMoreRounds() {
		g.phase = PhaseGameOver
		summary.GameOver = true
	}
	return summary, nil
}

// checkShootTheMoon inverts the round when exactly one player took every
// point: the shooter scores 0 and everyone else the full total.
func (g *Game) checkShootTheMoon() {
	shooter := ""
	for _, id := range g.turnOrder {
		if g.roundScores[id] == MoonTotal {
			if shooter != "" {
				return
			}
			shooter = id
		}
	}
	if shooter == "" {
		return
	}
	for _, id := range g.turnOrder {
		if id == shooter {
			g.roundScores[id] = 0
		} else {
			g.roundScores[id] = MoonTotal
		}
	}
}

// Standings ranks players by ascending cumulative score with dense ranking.
func (g *Game) Standings() []Standing {
	out := make([]Standing, 0, len(g.turnOrder))
	for _, id := range g.turnOrder {
		out = append(out, Standing{Player: id, Score: g.totalScores[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })

	place := 0
	last := -1
	for i := range out {
		if place == 0 || out[i].Score != last {
			place++
			last = out[i].Score
		}
		out[i].Place = place
	}
	return out
}

// HasMoreRounds reports whether another round follows the current one.
func (g *Game) HasMoreRounds() bool {
	return g.round < g.roundsToPlay
}

// StartNewRound resets per-round state, deals the next round, and recomputes
// the leader.
func (g *Game) StartNewRound() error {
	if g.phase != PhaseRoundOver {
		return cards.Reject(cards.ViolationPhase, "round is not over")
	}
	if !g.HasMoreRounds() {
		return cards.Reject(cards.ViolationPhase, "no rounds remaining")
	}
	g.round++
	for _, id := range g.turnOrder {
		g.roundScores[id] = 0
	}
	g.SetupDeck()
	g.DealAll()
	g.SetInitialLeader()
	return nil
}

func copyScores(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

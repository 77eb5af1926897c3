package cards

import "testing"

func TestCompareRank(t *testing.T) {
	if CompareRank(Rank2, Ace) >= 0 {
		t.Fatalf("2 should rank below Ace")
	}
	if CompareRank(King, Queen) <= 0 {
		t.Fatalf("King should rank above Queen")
	}
	if CompareRank(Rank7, Rank7) != 0 {
		t.Fatalf("equal ranks should compare equal")
	}
}

func TestCyclicAdjacent(t *testing.T) {
	cases := []struct {
		a, b Rank
		want bool
	}{
		{Rank5, Rank5, true},
		{Rank5, Rank4, true},
		{Rank5, Rank6, true},
		{Rank5, Rank7, false},
		{King, Ace, true},
		{Ace, King, true},
		{Ace, Rank2, true},
		{Rank2, Ace, true},
		{Queen, Rank2, false},
	}
	for _, c := range cases {
		if got := CyclicAdjacent(c.a, c.b); got != c.want {
			t.Fatalf("CyclicAdjacent(%s, %s) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
	if CyclicAdjacent(Rank("joker"), Ace) {
		t.Fatalf("unknown rank is never adjacent")
	}
}

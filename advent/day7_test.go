package main

import "testing"

const day7Sample = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestDay7(t *testing.T) {
	checkSolution(t, day7, day7Sample, 6440, 5905)
}

func mustParseHand(t *testing.T, s string) hand {
	t.Helper()
	h, err := parseHand(s + " 1")
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestHandType(t *testing.T) {
	for _, tt := range []struct {
		cards string
		want  handType
		joker handType
	}{
		{"AAAAA", fiveOfAKind, fiveOfAKind},
		{"AA8AA", fourOfAKind, fourOfAKind},
		{"23332", fullHouse, fullHouse},
		{"TTT98", threeOfAKind, threeOfAKind},
		{"23432", twoPair, twoPair},
		{"A23A4", onePair, onePair},
		{"23456", highCard, highCard},
		{"JJJJJ", fiveOfAKind, fiveOfAKind},
		{"KTJJT", twoPair, fourOfAKind},
		{"T55J5", threeOfAKind, fourOfAKind},
		{"2345J", highCard, onePair},
		{"22J33", twoPair, fullHouse},
		{"2JJJ3", threeOfAKind, fourOfAKind},
	} {
		h := mustParseHand(t, tt.cards)
		if got := h.typ(); got != tt.want {
			t.Errorf("%s: got type %d; want %d", tt.cards, got, tt.want)
		}
		if got := h.withJokers().typ(); got != tt.joker {
			t.Errorf("%s with jokers: got type %d; want %d", tt.cards, got, tt.joker)
		}
	}
}

func TestCompareHands(t *testing.T) {
	for _, tt := range []struct {
		weaker, stronger string
		jokers           bool
	}{
		{"2AAAA", "33332", false},
		{"KTJJT", "KK677", false},
		{"T55J5", "QQQJA", false},
		{"KK677", "KTJJT", true},
		{"JKKK2", "QQQQ2", true},
		{"23456", "22345", false},
	} {
		h0, h1 := mustParseHand(t, tt.weaker), mustParseHand(t, tt.stronger)
		if tt.jokers {
			h0, h1 = h0.withJokers(), h1.withJokers()
		}
		if compareHands(h0, h1) >= 0 {
			t.Errorf("%s vs %s (jokers=%t): want first to be weaker", tt.weaker, tt.stronger, tt.jokers)
		}
		if compareHands(h1, h0) <= 0 {
			t.Errorf("%s vs %s (jokers=%t): want first to be stronger", tt.stronger, tt.weaker, tt.jokers)
		}
	}
}

func TestParseHandErrors(t *testing.T) {
	for _, line := range []string{
		"32T3K",
		"32T3 765",
		"32T3KK 765",
		"32T3X 765",
		"32T3K x",
	} {
		if _, err := parseHand(line); err == nil {
			t.Errorf("parseHand(%q): got nil error", line)
		}
	}
}

package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

func init() {
	register("7", day7)
}

func day7(input string) (int, int, error) {
	var hands []hand
	for i, line := range lines(input) {
		h, err := parseHand(line)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: %s", i+1, err)
		}
		hands = append(hands, h)
	}
	jokerHands := make([]hand, len(hands))
	for i, h := range hands {
		jokerHands[i] = h.withJokers()
	}
	return winnings(hands), winnings(jokerHands), nil
}

const (
	joker = 1
	jack  = 11
)

var cardStrengths = map[byte]int{
	'2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'T': 10, 'J': jack, 'Q': 12, 'K': 13, 'A': 14,
}

type handType int

const (
	highCard handType = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

type hand struct {
	cards [5]int // card strengths
	bid   int
}

func parseHand(line string) (hand, error) {
	var h hand
	cards, bidStr, ok := strings.Cut(line, " ")
	if !ok || len(cards) != len(h.cards) {
		return h, fmt.Errorf("malformed hand %q", line)
	}
	for i := 0; i < len(cards); i++ {
		s, ok := cardStrengths[cards[i]]
		if !ok {
			return h, fmt.Errorf("invalid card %q", cards[i])
		}
		h.cards[i] = s
	}
	bid, err := strconv.Atoi(strings.TrimSpace(bidStr))
	if err != nil {
		return h, fmt.Errorf("bad bid %q", bidStr)
	}
	h.bid = bid
	return h, nil
}

// withJokers returns h with every jack replaced by a joker.
func (h hand) withJokers() hand {
	for i, c := range h.cards {
		if c == jack {
			h.cards[i] = joker
		}
	}
	return h
}

// typ classifies h. Jokers count as whichever card makes the best type,
// which is always the most common other card.
func (h hand) typ() handType {
	counts := make(map[int]int)
	var jokers int
	for _, c := range h.cards {
		if c == joker {
			jokers++
		} else {
			counts[c]++
		}
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	default:
		return highCard
	}
}

func compareHands(h0, h1 hand) int {
	if t0, t1 := h0.typ(), h1.typ(); t0 != t1 {
		return int(t0) - int(t1)
	}
	return slices.Compare(h0.cards[:], h1.cards[:])
}

// winnings is the sum of each hand's bid times its rank, where the weakest
// hand has rank 1.
func winnings(hands []hand) int {
	sorted := slices.Clone(hands)
	slices.SortFunc(sorted, compareHands)
	var total int
	for i, h := range sorted {
		total += (i + 1) * h.bid
	}
	return total
}

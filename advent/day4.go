package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

func init() {
	register("4", day4)
}

func day4(input string) (int, int, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, 0, err
	}
	var points int
	for _, c := range cards {
		points += c.points()
	}
	return points, totalCards(cards), nil
}

type card struct {
	id      int
	winning map[int]struct{}
	owned   map[int]struct{}
}

var errNoSeparator = errors.New("missing | separator")

// parseCards parses one card per line. Card ids must number the cards
// 1, 2, 3, ... in order.
func parseCards(input string) ([]card, error) {
	var cards []card
	for i, line := range lines(input) {
		c, err := parseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if c.id != len(cards)+1 {
			return nil, fmt.Errorf("line %d: got card %d; want card %d", i+1, c.id, len(cards)+1)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseCard(line string) (card, error) {
	var c card
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "Card" || !strings.HasSuffix(fields[1], ":") {
		return c, fmt.Errorf("malformed card %q", line)
	}
	id, err := strconv.Atoi(strings.TrimSuffix(fields[1], ":"))
	if err != nil {
		return c, fmt.Errorf("bad card id %q", fields[1])
	}
	c.id = id
	sep := slices.Index(fields, "|")
	if sep < 0 {
		return c, errNoSeparator
	}
	if c.winning, err = parseIntSet(fields[2:sep]); err != nil {
		return c, err
	}
	if c.owned, err = parseIntSet(fields[sep+1:]); err != nil {
		return c, err
	}
	return c, nil
}

func parseIntSet(fields []string) (map[int]struct{}, error) {
	ns, err := parseInts(fields)
	if err != nil {
		return nil, err
	}
	set := make(map[int]struct{}, len(ns))
	for _, n := range ns {
		set[n] = struct{}{}
	}
	return set, nil
}

// matches is the number of owned numbers that are also winning numbers.
func (c card) matches() int {
	var m int
	for n := range c.owned {
		if _, ok := c.winning[n]; ok {
			m++
		}
	}
	return m
}

func (c card) points() int {
	m := c.matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// A matchCache memoizes card.matches by card id.
type matchCache struct {
	counts []int
	known  []bool
}

func newMatchCache(numCards int) *matchCache {
	return &matchCache{
		counts: make([]int, numCards),
		known:  make([]bool, numCards),
	}
}

func (mc *matchCache) get(c card) int {
	i := c.id - 1
	if !mc.known[i] {
		mc.counts[i] = c.matches()
		mc.known[i] = true
	}
	return mc.counts[i]
}

// totalCards counts every card processed when each card with m matches
// wins one more copy of each of the m cards following it. The id of
// cards[i] must be i+1, as parseCards guarantees.
func totalCards(cards []card) int {
	cache := newMatchCache(len(cards))
	stack := slices.Clone(cards)
	var total int
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		total++
		end := min(c.id+cache.get(c), len(cards))
		stack = append(stack, cards[c.id:end]...)
	}
	return total
}

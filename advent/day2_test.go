package main

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
)

const day2Sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestDay2(t *testing.T) {
	checkSolution(t, day2, day2Sample, 8, 2286)
}

func TestParseGame(t *testing.T) {
	g, err := parseGame("Game 11: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	if err != nil {
		t.Fatal(err)
	}
	want := game{
		id: 11,
		reveals: []cubes{
			{red: 4, blue: 3},
			{red: 1, green: 2, blue: 6},
			{green: 2},
		},
	}
	if diff := pretty.Diff(g, want); len(diff) > 0 {
		t.Errorf("parseGame: diff (-got +want):\n%s", strings.Join(diff, "\n"))
	}
	if got, want := g.minimumBag(), (cubes{4, 2, 6}); got != want {
		t.Errorf("minimumBag: got %+v; want %+v", got, want)
	}
	if got, want := g.minimumBag().power(), 48; got != want {
		t.Errorf("power: got %d; want %d", got, want)
	}

	for _, line := range []string{
		"Game 1 3 blue",
		"Round 1: 3 blue",
		"Game x: 3 blue",
		"Game 1: 3 purple",
		"Game 1: three blue",
		"Game 1: 3blue",
	} {
		if _, err := parseGame(line); err == nil {
			t.Errorf("parseGame(%q): got nil error", line)
		}
	}
}

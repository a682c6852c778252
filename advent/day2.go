package main

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("2", day2)
}

var day2Bag = cubes{red: 12, green: 13, blue: 14}

func day2(input string) (int, int, error) {
	var idSum, powerSum int
	for i, line := range lines(input) {
		g, err := parseGame(line)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: %s", i+1, err)
		}
		bag := g.minimumBag()
		if bag.fits(day2Bag) {
			idSum += g.id
		}
		powerSum += bag.power()
	}
	return idSum, powerSum, nil
}

type cubes struct {
	red, green, blue int
}

func (c cubes) fits(bag cubes) bool {
	return c.red <= bag.red && c.green <= bag.green && c.blue <= bag.blue
}

func (c cubes) power() int {
	return c.red * c.green * c.blue
}

type game struct {
	id      int
	reveals []cubes
}

// minimumBag is the fewest cubes of each color that make g possible.
func (g game) minimumBag() cubes {
	var bag cubes
	for _, r := range g.reveals {
		bag.red = max(bag.red, r.red)
		bag.green = max(bag.green, r.green)
		bag.blue = max(bag.blue, r.blue)
	}
	return bag
}

// parseGame parses a line like
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
func parseGame(line string) (game, error) {
	var g game
	head, rest, ok := strings.Cut(line, ":")
	if !ok {
		return g, fmt.Errorf("malformed game %q", line)
	}
	idStr, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return g, fmt.Errorf("malformed game %q", line)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return g, fmt.Errorf("bad game id %q", idStr)
	}
	g.id = id
	for _, set := range strings.Split(rest, ";") {
		var c cubes
		for _, item := range strings.Split(set, ",") {
			countStr, color, ok := strings.Cut(strings.TrimSpace(item), " ")
			if !ok {
				return g, fmt.Errorf("malformed reveal %q", item)
			}
			n, err := strconv.Atoi(countStr)
			if err != nil {
				return g, fmt.Errorf("bad cube count %q", countStr)
			}
			switch color {
			case "red":
				c.red += n
			case "green":
				c.green += n
			case "blue":
				c.blue += n
			default:
				return g, fmt.Errorf("unknown color %q", color)
			}
		}
		g.reveals = append(g.reveals, c)
	}
	return g, nil
}

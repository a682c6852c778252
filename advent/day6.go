package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

func init() {
	register("6", day6)
}

func day6(input string) (int, int, error) {
	races, err := parseRaces(input)
	if err != nil {
		return 0, 0, err
	}
	ways := make([]int, len(races))
	for i, r := range races {
		ways[i] = r.waysToWin()
	}

	combined, err := parseCombinedRace(input)
	if err != nil {
		return 0, 0, err
	}
	vlogf("scanning %s hold durations for %# v", humanize.Comma(int64(combined.duration)), pretty.Formatter(combined))
	return product(ways), combined.waysToWin(), nil
}

type race struct {
	duration       int
	distanceToBeat int
}

func (r race) distance(hold int) int {
	return hold * (r.duration - hold)
}

// waysToWin counts the hold durations in [0, duration) that travel farther
// than the distance to beat.
func (r race) waysToWin() int {
	var n int
	for hold := 0; hold < r.duration; hold++ {
		if r.distance(hold) > r.distanceToBeat {
			n++
		}
	}
	return n
}

func parseRaces(input string) ([]race, error) {
	timeFields, distFields, err := raceFields(input)
	if err != nil {
		return nil, err
	}
	times, err := parseInts(timeFields)
	if err != nil {
		return nil, err
	}
	dists, err := parseInts(distFields)
	if err != nil {
		return nil, err
	}
	races := make([]race, len(times))
	for i := range times {
		races[i] = race{duration: times[i], distanceToBeat: dists[i]}
	}
	return races, nil
}

// parseCombinedRace reads the input as a single race by ignoring the
// spaces between the numbers of each list.
func parseCombinedRace(input string) (race, error) {
	timeFields, distFields, err := raceFields(input)
	if err != nil {
		return race{}, err
	}
	duration, err := strconv.Atoi(strings.Join(timeFields, ""))
	if err != nil {
		return race{}, fmt.Errorf("bad combined time: %s", err)
	}
	dist, err := strconv.Atoi(strings.Join(distFields, ""))
	if err != nil {
		return race{}, fmt.Errorf("bad combined distance: %s", err)
	}
	return race{duration: duration, distanceToBeat: dist}, nil
}

var errRaceLists = errors.New("time and distance lists differ in length")

// raceFields splits the input into its time and distance number tokens.
// The input is a Time: label and n numbers followed by a Distance: label
// and n numbers.
func raceFields(input string) (times, dists []string, err error) {
	tokens := strings.Fields(input)
	if len(tokens) < 2 || len(tokens)%2 != 0 {
		return nil, nil, errRaceLists
	}
	n := len(tokens)/2 - 1
	if tokens[0] != "Time:" {
		return nil, nil, fmt.Errorf("got label %q; want Time:", tokens[0])
	}
	if tokens[n+1] != "Distance:" {
		if strings.HasSuffix(tokens[n+1], ":") {
			return nil, nil, fmt.Errorf("got label %q; want Distance:", tokens[n+1])
		}
		return nil, nil, errRaceLists
	}
	return tokens[1 : n+1], tokens[n+2:], nil
}

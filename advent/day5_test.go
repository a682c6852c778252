package main

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const day5Sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func TestDay5(t *testing.T) {
	checkSolution(t, day5, day5Sample, 35, 46)
}

func TestAlmanacLocation(t *testing.T) {
	a, err := parseAlmanac(day5Sample)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(a.maps), 7; got != want {
		t.Fatalf("got %d maps; want %d", got, want)
	}
	if got, want := a.maps[0].name, "seed-to-soil"; got != want {
		t.Errorf("first map: got %q; want %q", got, want)
	}
	for _, tt := range []struct {
		seed, want int
	}{
		{79, 82},
		{14, 43},
		{55, 86},
		{13, 35},
	} {
		if got := a.location(tt.seed); got != tt.want {
			t.Errorf("location(%d): got %d; want %d", tt.seed, got, tt.want)
		}
	}
}

func TestMapSpans(t *testing.T) {
	m := almanacMap{entries: []mapEntry{
		{dst: 100, src: 10, length: 5}, // [10, 15) -> [100, 105)
		{dst: 0, src: 20, length: 10},  // [20, 30) -> [0, 10)
	}}
	for _, tt := range []struct {
		in   []span
		want []span
	}{
		{[]span{{0, 5}}, []span{{0, 5}}},
		{[]span{{10, 15}}, []span{{100, 105}}},
		{[]span{{8, 12}}, []span{{8, 10}, {100, 102}}},
		{[]span{{12, 25}}, []span{{0, 5}, {15, 20}, {102, 105}}},
		{[]span{{5, 35}}, []span{{0, 10}, {5, 10}, {15, 20}, {30, 35}, {100, 105}}},
	} {
		got := m.mapSpans(tt.in)
		sort.Slice(got, func(i, j int) bool {
			if got[i].start != got[j].start {
				return got[i].start < got[j].start
			}
			return got[i].end < got[j].end
		})
		if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(span{})); diff != "" {
			t.Errorf("mapSpans(%v) (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseAlmanacErrors(t *testing.T) {
	for _, input := range []string{
		"seed: 1 2",
		"seeds: 1 x",
		"seeds: 1 2\n\nseed-to-soil:\n1 2 3",
		"seeds: 1 2\n\nseed-to-soil map:\n1 2",
		"seeds: 1 2\n\nseed-to-soil map:\n1 2 z",
	} {
		if _, err := parseAlmanac(input); err == nil {
			t.Errorf("parseAlmanac(%q): got nil error", input)
		}
	}
	if _, _, err := day5("seeds: 1 2 3\n"); err == nil {
		t.Error("odd number of seeds: got nil error")
	}
}

package main

import (
	"errors"
	"fmt"
	"strings"
)

func init() {
	register("5", day5)
}

func day5(input string) (int, int, error) {
	a, err := parseAlmanac(input)
	if err != nil {
		return 0, 0, err
	}
	if len(a.seeds) == 0 {
		return 0, 0, errors.New("no seeds")
	}
	if len(a.seeds)%2 != 0 {
		return 0, 0, errors.New("seeds do not form (start, length) pairs")
	}

	lowest := -1
	for _, seed := range a.seeds {
		loc := a.location(seed)
		if lowest < 0 || loc < lowest {
			lowest = loc
		}
	}

	var spans []span
	for i := 0; i < len(a.seeds); i += 2 {
		spans = append(spans, span{a.seeds[i], a.seeds[i] + a.seeds[i+1]})
	}
	for _, m := range a.maps {
		spans = m.mapSpans(spans)
	}
	lowestRange := -1
	for _, s := range spans {
		if lowestRange < 0 || s.start < lowestRange {
			lowestRange = s.start
		}
	}
	return lowest, lowestRange, nil
}

type almanac struct {
	seeds []int
	maps  []almanacMap
}

type almanacMap struct {
	name    string
	entries []mapEntry
}

type mapEntry struct {
	dst, src, length int
}

// A span is the half-open range of values [start, end).
type span struct {
	start, end int
}

func (s span) empty() bool { return s.start >= s.end }

func (e mapEntry) source() span { return span{e.src, e.src + e.length} }

func (a *almanac) location(seed int) int {
	v := seed
	for _, m := range a.maps {
		v = m.mapValue(v)
	}
	return v
}

func (m almanacMap) mapValue(v int) int {
	for _, e := range m.entries {
		if v >= e.src && v < e.src+e.length {
			return e.dst + v - e.src
		}
	}
	return v
}

// mapSpans maps every value in spans through m. Spans that straddle entry
// boundaries are split; values not covered by any entry map to themselves.
func (m almanacMap) mapSpans(spans []span) []span {
	work := append([]span(nil), spans...)
	var out []span
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		mapped := false
		for _, e := range m.entries {
			src := e.source()
			overlap := span{max(s.start, src.start), min(s.end, src.end)}
			if overlap.empty() {
				continue
			}
			if left := (span{s.start, overlap.start}); !left.empty() {
				work = append(work, left)
			}
			if right := (span{overlap.end, s.end}); !right.empty() {
				work = append(work, right)
			}
			offset := e.dst - e.src
			out = append(out, span{overlap.start + offset, overlap.end + offset})
			mapped = true
			break
		}
		if !mapped {
			out = append(out, s)
		}
	}
	return out
}

func parseAlmanac(input string) (*almanac, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	blocks := strings.Split(strings.TrimSpace(input), "\n\n")
	seedStr, ok := strings.CutPrefix(blocks[0], "seeds:")
	if !ok {
		return nil, fmt.Errorf("malformed seeds line %q", blocks[0])
	}
	seeds, err := parseInts(strings.Fields(seedStr))
	if err != nil {
		return nil, fmt.Errorf("seeds: %s", err)
	}
	a := &almanac{seeds: seeds}
	for _, block := range blocks[1:] {
		m, err := parseAlmanacMap(block)
		if err != nil {
			return nil, err
		}
		a.maps = append(a.maps, m)
	}
	return a, nil
}

func parseAlmanacMap(block string) (almanacMap, error) {
	var m almanacMap
	ls := lines(block)
	if len(ls) == 0 {
		return m, errors.New("empty map")
	}
	name, ok := strings.CutSuffix(ls[0], " map:")
	if !ok {
		return m, fmt.Errorf("malformed map header %q", ls[0])
	}
	m.name = name
	for _, line := range ls[1:] {
		ns, err := parseInts(strings.Fields(line))
		if err != nil {
			return m, fmt.Errorf("%s: %s", name, err)
		}
		if len(ns) != 3 {
			return m, fmt.Errorf("%s: malformed entry %q", name, line)
		}
		m.entries = append(m.entries, mapEntry{dst: ns[0], src: ns[1], length: ns[2]})
	}
	return m, nil
}

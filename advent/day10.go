package main

import (
	"errors"
	"fmt"
)

func init() {
	register("10", day10)
}

func day10(input string) (int, int, error) {
	m, err := parsePipeMap(input)
	if err != nil {
		return 0, 0, err
	}
	loop, err := m.loop()
	if err != nil {
		return 0, 0, err
	}
	return len(loop) / 2, m.enclosed(loop), nil
}

// Pipe connections, as a bit set.
const (
	north = 1 << iota
	east
	south
	west
)

var pipeDirs = map[byte]int{
	'|': north | south,
	'-': east | west,
	'L': north | east,
	'J': north | west,
	'7': south | west,
	'F': south | east,
	'.': 0,
}

var dirVecs = map[int]vec2{
	north: {0, -1},
	east:  {1, 0},
	south: {0, 1},
	west:  {-1, 0},
}

func opposite(dir int) int {
	switch dir {
	case north:
		return south
	case south:
		return north
	case east:
		return west
	default:
		return east
	}
}

type pipeMap struct {
	rows  [][]int // connections of each tile
	start vec2
}

func parsePipeMap(input string) (*pipeMap, error) {
	m := new(pipeMap)
	foundStart := false
	for y, line := range lines(input) {
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			if line[x] == 'S' {
				if foundStart {
					return nil, errors.New("multiple start tiles")
				}
				foundStart = true
				m.start = vec2{x, y}
				continue
			}
			dirs, ok := pipeDirs[line[x]]
			if !ok {
				return nil, fmt.Errorf("invalid tile %q at %d,%d", line[x], x, y)
			}
			row[x] = dirs
		}
		m.rows = append(m.rows, row)
	}
	if !foundStart {
		return nil, errors.New("no start tile")
	}

	// The start tile's shape is whatever connects it to its neighbors.
	var startDirs, n int
	for _, dir := range []int{north, east, south, west} {
		if m.at(m.start.add(dirVecs[dir]))&opposite(dir) != 0 {
			startDirs |= dir
			n++
		}
	}
	if n != 2 {
		return nil, fmt.Errorf("start tile connects to %d pipes; want 2", n)
	}
	m.rows[m.start.y][m.start.x] = startDirs
	return m, nil
}

func (m *pipeMap) at(p vec2) int {
	if p.y < 0 || p.y >= len(m.rows) || p.x < 0 || p.x >= len(m.rows[p.y]) {
		return 0
	}
	return m.rows[p.y][p.x]
}

// loop returns the tiles of the loop through the start tile.
func (m *pipeMap) loop() (map[vec2]struct{}, error) {
	loop := map[vec2]struct{}{m.start: {}}
	p := m.start
	var dir int
	for _, d := range []int{north, east, south, west} {
		if m.at(p)&d != 0 {
			dir = d
			break
		}
	}
	for {
		p = p.add(dirVecs[dir])
		if p == m.start {
			return loop, nil
		}
		if _, ok := loop[p]; ok {
			return nil, fmt.Errorf("pipe at %d,%d loops back without reaching start", p.x, p.y)
		}
		dirs := m.at(p)
		if dirs&opposite(dir) == 0 {
			return nil, fmt.Errorf("pipe broken at %d,%d", p.x, p.y)
		}
		loop[p] = struct{}{}
		dir = dirs &^ opposite(dir)
	}
}

// enclosed counts the tiles inside the loop. Scanning each row, crossing
// a loop tile that connects north toggles between outside and inside.
func (m *pipeMap) enclosed(loop map[vec2]struct{}) int {
	var count int
	for y, row := range m.rows {
		inside := false
		for x, dirs := range row {
			if _, ok := loop[vec2{x, y}]; ok {
				if dirs&north != 0 {
					inside = !inside
				}
			} else if inside {
				count++
			}
		}
	}
	return count
}

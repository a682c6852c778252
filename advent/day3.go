package main

import "errors"

func init() {
	register("3", day3)
}

func day3(input string) (int, int, error) {
	s := schematic(lines(input))
	if len(s) == 0 {
		return 0, 0, errors.New("empty schematic")
	}
	nums := s.numbers()

	var partSum int
	gears := make(map[vec2][]int) // '*' position -> adjacent numbers
	for _, num := range nums {
		isPart := false
		for _, p := range num.border() {
			c := s.at(p)
			if !isSymbol(c) {
				continue
			}
			isPart = true
			if c == '*' {
				gears[p] = append(gears[p], num.value)
			}
		}
		if isPart {
			partSum += num.value
		}
	}

	var ratioSum int
	for _, adjacent := range gears {
		if len(adjacent) == 2 {
			ratioSum += adjacent[0] * adjacent[1]
		}
	}
	return partSum, ratioSum, nil
}

type vec2 struct {
	x, y int
}

func (v vec2) add(v1 vec2) vec2 {
	return vec2{v.x + v1.x, v.y + v1.y}
}

// A schematic is the engine schematic grid, one string per row.
type schematic []string

// at returns the byte at p, or '.' if p is off the grid.
func (s schematic) at(p vec2) byte {
	if p.y < 0 || p.y >= len(s) || p.x < 0 || p.x >= len(s[p.y]) {
		return '.'
	}
	return s[p.y][p.x]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSymbol(c byte) bool { return c != '.' && !isDigit(c) }

// A schematicNumber is a run of digits in one row, spanning columns
// [start, end).
type schematicNumber struct {
	value      int
	row        int
	start, end int
}

func (s schematic) numbers() []schematicNumber {
	var nums []schematicNumber
	for y, row := range s {
		for x := 0; x < len(row); {
			if !isDigit(row[x]) {
				x++
				continue
			}
			num := schematicNumber{row: y, start: x}
			for ; x < len(row) && isDigit(row[x]); x++ {
				num.value = num.value*10 + int(row[x]-'0')
			}
			num.end = x
			nums = append(nums, num)
		}
	}
	return nums
}

// border returns the positions surrounding the number, including
// diagonals.
func (n schematicNumber) border() []vec2 {
	var ps []vec2
	for x := n.start - 1; x <= n.end; x++ {
		ps = append(ps, vec2{x, n.row - 1}, vec2{x, n.row + 1})
	}
	ps = append(ps, vec2{n.start - 1, n.row}, vec2{n.end, n.row})
	return ps
}

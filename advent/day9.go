package main

import (
	"fmt"
	"strings"
)

func init() {
	register("9", day9)
}

func day9(input string) (int, int, error) {
	seqs, err := parseSequences(input)
	if err != nil {
		return 0, 0, err
	}
	var next, prev int
	for _, seq := range seqs {
		next += extrapolate(seq, forwards)
		prev += extrapolate(seq, backwards)
	}
	return next, prev, nil
}

func parseSequences(input string) ([][]int, error) {
	var seqs [][]int
	for i, line := range lines(input) {
		seq, err := parseInts(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", i+1, err)
		}
		if len(seq) == 0 {
			return nil, fmt.Errorf("line %d: empty sequence", i+1)
		}
		seqs = append(seqs, seq)
	}
	return seqs, nil
}

type direction int

const (
	forwards direction = iota
	backwards
)

func (d direction) endpoint(seq []int) int {
	if d == forwards {
		return seq[len(seq)-1]
	}
	return seq[0]
}

// extrapolate predicts the value after (forwards) or before (backwards)
// seq by repeatedly taking differences until they are all zero.
// seq must not be empty.
func extrapolate(seq []int, dir direction) int {
	anchor := dir.endpoint(seq)
	var ends []int
	for diffs := differences(seq); !allZero(diffs); diffs = differences(diffs) {
		ends = append(ends, dir.endpoint(diffs))
	}
	if dir == forwards {
		return anchor + sum(ends)
	}
	var prediction int
	for i := len(ends) - 1; i >= 0; i-- {
		prediction = ends[i] - prediction
	}
	return anchor - prediction
}

// differences returns the differences between adjacent elements of seq,
// which is one element shorter than seq.
func differences(seq []int) []int {
	if len(seq) < 2 {
		return nil
	}
	diffs := make([]int, len(seq)-1)
	for i := range diffs {
		diffs[i] = seq[i+1] - seq[i]
	}
	return diffs
}

func allZero(seq []int) bool {
	for _, n := range seq {
		if n != 0 {
			return false
		}
	}
	return true
}

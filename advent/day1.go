package main

import (
	"fmt"
	"strings"
)

func init() {
	register("1", day1)
}

func day1(input string) (int, int, error) {
	var sum1, sum2 int
	for i, line := range lines(input) {
		v1, err := calibrationValue(line, false)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: %s", i+1, err)
		}
		v2, err := calibrationValue(line, true)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: %s", i+1, err)
		}
		sum1 += v1
		sum2 += v2
	}
	return sum1, sum2, nil
}

var digitWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// calibrationDigits returns the digits of line in order. If words is set,
// spelled-out digits count as well; they may overlap ("eighthree" is 8, 3).
func calibrationDigits(line string, words bool) []int {
	var digits []int
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			digits = append(digits, int(c-'0'))
			continue
		}
		if !words {
			continue
		}
		for j, word := range digitWords {
			if strings.HasPrefix(line[i:], word) {
				digits = append(digits, j+1)
				break
			}
		}
	}
	return digits
}

func calibrationValue(line string, words bool) (int, error) {
	digits := calibrationDigits(line, words)
	if len(digits) == 0 {
		return 0, fmt.Errorf("no digits in %q", line)
	}
	return digits[0]*10 + digits[len(digits)-1], nil
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// lines splits s into lines, dropping empty ones and any trailing \r.
func lines(s string) []string {
	var ls []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		ls = append(ls, line)
	}
	return ls
}

func parseInts(fields []string) ([]int, error) {
	ns := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", field)
		}
		ns[i] = n
	}
	return ns, nil
}

func sum[T constraints.Integer](xs []T) T {
	var s T
	for _, x := range xs {
		s += x
	}
	return s
}

func product[T constraints.Integer](xs []T) T {
	p := T(1)
	for _, x := range xs {
		p *= x
	}
	return p
}

func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm[T constraints.Integer](a, b T) T {
	return a / gcd(a, b) * b
}

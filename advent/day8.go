package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

func init() {
	register("8", day8)
}

func day8(input string) (int, int, error) {
	net, err := parseNetwork(input)
	if err != nil {
		return 0, 0, err
	}
	steps, err := net.steps("AAA", func(n string) bool { return n == "ZZZ" })
	if err != nil {
		return 0, 0, err
	}
	ghostSteps, err := net.ghostSteps()
	if err != nil {
		return 0, 0, err
	}
	return steps, ghostSteps, nil
}

type node struct {
	left, right string
}

type network struct {
	instructions string
	nodes        map[string]node
}

// parseNetwork parses the instruction line followed by lines like
//
//	AAA = (BBB, CCC)
func parseNetwork(input string) (*network, error) {
	ls := lines(input)
	if len(ls) < 2 {
		return nil, errors.New("missing instructions or nodes")
	}
	net := &network{
		instructions: ls[0],
		nodes:        make(map[string]node),
	}
	for _, c := range net.instructions {
		if c != 'L' && c != 'R' {
			return nil, fmt.Errorf("invalid instruction %q", c)
		}
	}
	for _, line := range ls[1:] {
		name, rest, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, fmt.Errorf("malformed node %q", line)
		}
		rest, ok = strings.CutPrefix(rest, "(")
		if !ok {
			return nil, fmt.Errorf("malformed node %q", line)
		}
		rest, ok = strings.CutSuffix(rest, ")")
		if !ok {
			return nil, fmt.Errorf("malformed node %q", line)
		}
		left, right, ok := strings.Cut(rest, ", ")
		if !ok {
			return nil, fmt.Errorf("malformed node %q", line)
		}
		net.nodes[name] = node{left: left, right: right}
	}
	return net, nil
}

// steps counts the steps taken following the instructions (repeating as
// needed) from start until reaching a node for which done returns true.
func (net *network) steps(start string, done func(string) bool) (int, error) {
	// After visiting every (node, instruction) state the walk is cycling.
	limit := len(net.nodes)*len(net.instructions) + 1
	cur := start
	for i := 0; i < limit; i++ {
		n, ok := net.nodes[cur]
		if !ok {
			return 0, fmt.Errorf("unknown node %q", cur)
		}
		if net.instructions[i%len(net.instructions)] == 'L' {
			cur = n.left
		} else {
			cur = n.right
		}
		if done(cur) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("no path from %s", start)
}

// ghostSteps walks from every node ending in A simultaneously and counts
// the steps until every walk is on a node ending in Z. Each walk is
// assumed to cycle back to its end node with the same period, so the
// answer is the LCM of the individual step counts.
func (net *network) ghostSteps() (int, error) {
	var starts []string
	for name := range net.nodes {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	if len(starts) == 0 {
		return 0, errors.New("no starting nodes")
	}
	sort.Strings(starts)
	total := 1
	for _, start := range starts {
		n, err := net.steps(start, func(n string) bool { return strings.HasSuffix(n, "Z") })
		if err != nil {
			return 0, err
		}
		total = lcm(total, n)
	}
	return total, nil
}

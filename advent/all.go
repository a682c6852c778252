package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/cespare/wait"
)

type result struct {
	name  string
	ok    bool
	part1 int
	part2 int
}

// runAll solves every registered solution concurrently, reading each
// day's input from dir/day<N>/input.txt (or wherever the config points),
// and prints the answers in day order. Days with no input are skipped.
func runAll(cfg *config, dir string, w io.Writer) error {
	names := solutionNames()
	results := make([]result, len(names))
	var g wait.Group
	for i, name := range names {
		g.Go(func(quit <-chan struct{}) error {
			select {
			case <-quit:
				return nil
			default:
			}
			fallback := filepath.Join(dir, "day"+name, defaultInputFile)
			path, err := resolveInput(cfg, name, "", fallback)
			if err != nil {
				if errors.Is(err, errNoInput) {
					vlogf("skipping day %s: %s", name, err)
					return nil
				}
				return err
			}
			input, err := readInput(path)
			if err != nil {
				return err
			}
			part1, part2, err := solve(name, solutions[name], input)
			if err != nil {
				return err
			}
			results[i] = result{name: name, ok: true, part1: part1, part2: part2}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	var solved int
	for _, r := range results {
		if !r.ok {
			continue
		}
		fmt.Fprintf(w, "Day %s\n", r.name)
		writeAnswers(w, r.part1, r.part2)
		solved++
	}
	if solved == 0 {
		return fmt.Errorf("no inputs found under %s", dir)
	}
	return nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"time"
)

var verbose bool

func main() {
	log.SetFlags(0)
	configFile := flag.String("config", "", "ini config file (default "+defaultConfigFile+" if present)")
	profileFile := flag.String("fgprof", "", "write a wall-clock profile of the run to this file")
	flag.BoolVar(&verbose, "v", false, "log diagnostics to stderr")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	stop, err := startProfile(*profileFile)
	if err != nil {
		log.Fatal(err)
	}
	if flag.Arg(0) == "repl" {
		err = startREPL(cfg, flag.Args())
	} else {
		err = runCommand(cfg, flag.Args(), os.Stdout)
	}
	if perr := stop(); perr != nil && err == nil {
		err = perr
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <solution> [input]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s [flags] all\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s [flags] repl\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range solutionNames() {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

// runCommand runs a single solution or, for "all", every solution.
func runCommand(cfg *config, args []string, w io.Writer) error {
	if len(args) == 0 {
		return errors.New("no solution given")
	}
	if args[0] == "all" {
		if len(args) > 1 {
			return errors.New("all takes no arguments")
		}
		return runAll(cfg, ".", w)
	}
	if len(args) > 2 {
		return fmt.Errorf("too many arguments for solution %s", args[0])
	}
	var path string
	if len(args) == 2 {
		path = args[1]
	}
	return runSolution(cfg, args[0], path, w)
}

func startREPL(cfg *config, args []string) error {
	if len(args) > 1 {
		return errors.New("repl takes no arguments")
	}
	return runREPL(cfg, replConfig())
}

func runSolution(cfg *config, name, path string, w io.Writer) error {
	fn, ok := solutions[name]
	if !ok {
		return fmt.Errorf("unknown solution %q", name)
	}
	path, err := resolveInput(cfg, name, path, defaultInputFile)
	if err != nil {
		return err
	}
	input, err := readInput(path)
	if err != nil {
		return err
	}
	part1, part2, err := solve(name, fn, input)
	if err != nil {
		return err
	}
	writeAnswers(w, part1, part2)
	return nil
}

func solve(name string, fn solveFunc, input string) (part1, part2 int, err error) {
	start := time.Now()
	part1, part2, err = fn(input)
	if err != nil {
		return 0, 0, fmt.Errorf("day %s: %s", name, err)
	}
	vlogf("day %s solved in %s", name, time.Since(start).Round(time.Microsecond))
	return part1, part2, nil
}

func writeAnswers(w io.Writer, part1, part2 int) {
	fmt.Fprintf(w, "Part 1: %d\n", part1)
	fmt.Fprintf(w, "Part 2: %d\n", part2)
}

func vlogf(format string, args ...interface{}) {
	if verbose {
		log.Printf(format, args...)
	}
}

// A solveFunc parses a day's input and computes both answers.
type solveFunc func(input string) (part1, part2 int, err error)

var solutions = make(map[string]solveFunc)

func register(name string, fn solveFunc) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}

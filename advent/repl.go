package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

func replConfig() *readline.Config {
	return &readline.Config{
		Prompt:      "advent> ",
		HistoryFile: filepath.Join(os.TempDir(), "advent-history.txt"),
	}
}

// runREPL reads commands from rlcfg's input until quit or EOF. Each command
// line is the same as the command line arguments of a single run.
func runREPL(cfg *config, rlcfg *readline.Config) error {
	names := solutionNames()
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("all"),
		readline.PcItem("list"),
		readline.PcItem("quit"),
	}
	for _, name := range names {
		items = append(items, readline.PcItem(name))
	}
	rlcfg.AutoComplete = readline.NewPrefixCompleter(items...)
	l, err := readline.NewEx(rlcfg)
	if err != nil {
		return err
	}
	defer l.Close()
	out := l.Stdout()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "quit", "exit":
			return nil
		case "list":
			fmt.Fprintln(out, strings.Join(names, " "))
			continue
		}
		if err := runCommand(cfg, args, out); err != nil {
			log.Println(err)
		}
	}
}

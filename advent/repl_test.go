package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/chzyer/readline"
)

// lockedBuffer is written to by readline's goroutines and the repl loop.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestREPL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.txt")
	writeFile(t, path, day4Sample)
	script := strings.Join([]string{
		"",
		"list",
		"4 " + path,
		"25",
		"quit",
		"6 " + path,
	}, "\n") + "\n"

	var out lockedBuffer
	err := runREPL(newConfig(), &readline.Config{
		Prompt:         "> ",
		Stdin:          io.NopCloser(strings.NewReader(script)),
		Stdout:         &out,
		Stderr:         io.Discard,
		FuncIsTerminal: func() bool { return false },
	})
	if err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if want := "1 2 3 4 5 6 7 8 9 10\n"; !strings.Contains(got, want) {
		t.Errorf("list: got %q; want it to contain %q", got, want)
	}
	if n := strings.Count(got, "Part 1: 13\nPart 2: 30\n"); n != 1 {
		t.Errorf("got %d day 4 answers in %q; want 1", n, got)
	}
	// Nothing after quit runs.
	if strings.Contains(got, "Part 1: 288") {
		t.Errorf("command after quit ran: %q", got)
	}
}

func TestREPLEOF(t *testing.T) {
	var out lockedBuffer
	err := runREPL(newConfig(), &readline.Config{
		Stdin:          io.NopCloser(strings.NewReader("list\n")),
		Stdout:         &out,
		Stderr:         io.Discard,
		FuncIsTerminal: func() bool { return false },
	})
	if err != nil {
		t.Fatalf("got %v; want nil at EOF", err)
	}
	if !strings.Contains(out.String(), "10\n") {
		t.Errorf("got %q; want the solution list", out.String())
	}
}

func TestStartREPLArgs(t *testing.T) {
	if err := startREPL(newConfig(), []string{"repl", "extra"}); err == nil {
		t.Error("repl with arguments: got nil error")
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/cp"
	"github.com/dustin/go-humanize"
)

const defaultInputFile = "input.txt"

var errNoInput = errors.New("no input")

// resolveInput picks the input file for the named solution. In order of
// preference: the explicit path, the config file's input for the
// solution, the fallback path, and the downloaded input (copied to
// fallback) if a session is configured.
func resolveInput(cfg *config, name, explicit, fallback string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if path, ok := cfg.inputs[name]; ok {
		return path, nil
	}
	_, err := os.Stat(fallback)
	if err == nil {
		return fallback, nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}
	if cfg.session == "" {
		return "", fmt.Errorf("%w for day %s: %s does not exist and no session is configured", errNoInput, name, fallback)
	}
	day, err := strconv.Atoi(name)
	if err != nil {
		return "", fmt.Errorf("cannot download input for solution %q", name)
	}
	cached, err := fetchInput(cfg, day)
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(fallback); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := cp.CopyFile(fallback, cached); err != nil {
		return "", fmt.Errorf("error copying cached input: %s", err)
	}
	vlogf("copied %s to %s", cached, fallback)
	return fallback, nil
}

func readInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	vlogf("read %s (%s)", path, humanize.Bytes(uint64(len(b))))
	return string(b), nil
}

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

var (
	inputBaseURL = "https://adventofcode.com"
	httpClient   = &http.Client{Timeout: 30 * time.Second}
)

// fetchInput returns the path of the cached input for the given day,
// downloading it first if it isn't in the cache.
func fetchInput(cfg *config, day int) (string, error) {
	path := filepath.Join(cfg.cacheDir, strconv.Itoa(cfg.year), fmt.Sprintf("day%d.txt", day))
	if _, err := os.Stat(path); err == nil {
		vlogf("using cached input %s", path)
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", inputBaseURL, cfg.year, day)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: cfg.session})
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching input: %s", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("error fetching %s: %s: %q", url, resp.Status, msg)
	}

	// The cache must never hold a partial download.
	f, err := os.CreateTemp(filepath.Dir(path), ".download-")
	if err != nil {
		return "", err
	}
	defer os.Remove(f.Name())
	n, err := io.Copy(f, resp.Body)
	if err != nil {
		f.Close()
		return "", fmt.Errorf("error downloading %s: %s", url, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return "", err
	}
	vlogf("downloaded %s (%s) to %s", url, humanize.Bytes(uint64(n)), path)
	return path, nil
}

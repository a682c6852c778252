package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vaughan0/go-ini"
)

const (
	defaultConfigFile = "advent.ini"
	defaultYear       = 2023
)

// A config is the optional ini configuration:
//
//	[advent]
//	year = 2023
//	session = <adventofcode.com session cookie>
//	cache = /path/to/input/cache
//
//	[4]
//	input = day4/input.txt
//
// Every key is optional. Sections named after a solution override where
// that solution's input is read from.
type config struct {
	year     int
	session  string
	cacheDir string
	inputs   map[string]string // solution name -> input path
}

// loadConfig reads the config file at path. If path is empty, the default
// file is used if it exists and an empty config is returned otherwise.
func loadConfig(path string) (*config, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			if os.IsNotExist(err) {
				return newConfig(), nil
			}
			return nil, err
		}
		path = defaultConfigFile
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	cfg := newConfig()
	for name, section := range file {
		if name == "advent" {
			continue
		}
		if input, ok := section["input"]; ok {
			cfg.inputs[name] = input
		}
	}
	if s, ok := file.Get("advent", "year"); ok {
		year, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("config (%s): bad year %q", path, s)
		}
		cfg.year = year
	}
	if s, ok := file.Get("advent", "session"); ok {
		cfg.session = s
	}
	if s, ok := file.Get("advent", "cache"); ok {
		cfg.cacheDir = s
	}
	vlogf("loaded config from %s", path)
	return cfg, nil
}

func newConfig() *config {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return &config{
		year:     defaultYear,
		cacheDir: filepath.Join(dir, "advent"),
		inputs:   make(map[string]string),
	}
}

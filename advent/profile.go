package main

import (
	"os"

	"github.com/felixge/fgprof"
)

// startProfile starts a wall-clock profile written to path in pprof
// format. The returned func stops the profile and closes the file. If path
// is empty, nothing is profiled.
func startProfile(path string) (stop func() error, err error) {
	if path == "" {
		return func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	vlogf("profiling to %s", path)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sync"
)

// startCPUProfile begins writing a CPU profile to path. The returned stop
// function is safe to call more than once.
func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
			log.Printf("CPU profile written to %s", path)
		})
	}
	return stop, nil
}

// profilePath picks the profile destination; recording default.pgo wins over
// --cpuprofile.
func profilePath() string {
	if recordDefaultPGO {
		return defaultPGOPath
	}
	return cpuProfilePath
}

package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler controls the lifecycle of a runtime profiling session.
//
// Call [Profiler.Start] before the measured work and [Profiler.Stop] after
// it to write all enabled profiles.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cpuFile *os.File
	Config
}

// Start configures the memory profile rate and starts CPU profiling if
// enabled.
func (p *Profiler) Start() error {
	runtime.MemProfileRate = p.MemProfileRate

	if p.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		_ = f.Close()

		return fmt.Errorf("starting CPU profile: %w", err)
	}

	p.cpuFile = f

	return nil
}

// Stop stops CPU profiling and writes all enabled snapshot profiles.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		if err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}

		p.cpuFile = nil
	}

	return p.writeSnapshots()
}

// writeSnapshots writes the enabled snapshot profiles (heap, allocs).
func (p *Profiler) writeSnapshots() error {
	snapshots := []struct {
		name string
		path string
	}{
		{"heap", p.HeapProfile},
		{"allocs", p.AllocsProfile},
	}

	for _, s := range snapshots {
		if s.path == "" {
			continue
		}

		f, err := os.Create(s.path) //nolint:gosec // Profile path from CLI flag is expected.
		if err != nil {
			return fmt.Errorf("creating %s profile: %w", s.name, err)
		}

		err = pprof.Lookup(s.name).WriteTo(f, 0)
		if err != nil {
			_ = f.Close()

			return fmt.Errorf("writing %s profile: %w", s.name, err)
		}

		err = f.Close()
		if err != nil {
			return fmt.Errorf("closing %s profile: %w", s.name, err)
		}
	}

	return nil
}

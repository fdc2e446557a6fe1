// Package prof wires the runtime's CPU, heap, and execution-trace
// profilers to CLI flags. One profile of each kind may be active at a
// time; the commands start them before doing work and stop them on exit.
package prof

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

var (
	cpuOut   *os.File
	traceOut *os.File
)

// StartCPU begins CPU sampling into the file at path.
func StartCPU(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("cpu profile: %w", err)
	}
	cpuOut = f
	return nil
}

// StopCPU flushes and closes an active CPU profile. Safe to call when no
// profile is running.
func StopCPU() {
	pprof.StopCPUProfile()
	if cpuOut != nil {
		_ = cpuOut.Close()
		cpuOut = nil
	}
}

// WriteMem forces a GC and snapshots the heap profile to path.
func WriteMem(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mem profile: %w", err)
	}
	runtime.GC()
	werr := pprof.WriteHeapProfile(f)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("mem profile: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("mem profile: %w", cerr)
	}
	return nil
}

// StartTrace begins a runtime execution trace into the file at path.
func StartTrace(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("runtime trace: %w", err)
	}
	if err := trace.Start(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("runtime trace: %w", err)
	}
	traceOut = f
	return nil
}

// StopTrace ends an active execution trace. Safe to call when no trace is
// running.
func StopTrace() {
	trace.Stop()
	if traceOut != nil {
		_ = traceOut.Close()
		traceOut = nil
	}
}

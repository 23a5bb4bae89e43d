// Package profile provides CPU and memory profiling for CLI applications,
// configured through [github.com/spf13/pflag] flags.
//
// Register flags with [Config.RegisterFlags], then wrap the measured work:
//
//	prof := cfg.NewProfiler()
//	if err := prof.Start(); err != nil { ... }
//	defer prof.Stop()
package profile

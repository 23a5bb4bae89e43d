package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seradco/scriptaudit/profile"
)

func TestProfilerDisabled(t *testing.T) {
	prof := profile.NewConfig().NewProfiler()

	require.NoError(t, prof.Start())
	require.NoError(t, prof.Stop())
}

func TestProfilerWritesProfiles(t *testing.T) {
	dir := t.TempDir()

	cfg := profile.NewConfig()
	cfg.CPUProfile = filepath.Join(dir, "cpu.pprof")
	cfg.HeapProfile = filepath.Join(dir, "heap.pprof")

	prof := cfg.NewProfiler()
	require.NoError(t, prof.Start())

	// Generate a little work so the profiles are non-trivial.
	data := make([]byte, 1<<20)
	for i := range data {
		data[i] = byte(i)
	}

	require.NoError(t, prof.Stop())

	for _, path := range []string{cfg.CPUProfile, cfg.HeapProfile} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	_ = data
}

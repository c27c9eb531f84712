package testkit

import (
	"sync"
	"testing"
)

// seamMu serializes tests that rewrite package level variables
var seamMu sync.Mutex

// Swap replaces *target for the rest of the test; the old value comes back on cleanup
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a process wide lock until the test ends. Call it before Swap in tests that may run in parallel
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}

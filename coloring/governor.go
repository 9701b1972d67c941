// Package coloring - the resource governor shared by both engines.
//
// The governor enforces a wall-clock ceiling and a heap-usage ceiling. It is
// consulted at bounded intervals only — after every candidate color trial in
// backtracking and after every iteration in beam search, never inside the
// innermost scoring loop. Once tripped it stays tripped for the remainder of
// the invocation, and the engine must surface Stopped=true in its result so
// a forced stop is never mistaken for exhaustion.
package coloring

import (
	"runtime"
	"time"
)

// memCheckEvery throttles runtime.ReadMemStats to every 256th governor
// check; reading memory statistics is far more expensive than time.Now.
const memCheckEvery = 256

// governor tracks the resource ceilings of one search invocation.
// Owned by exactly one engine instance; not safe for concurrent use.
type governor struct {
	useDeadline bool
	deadline    time.Time
	useMem      bool
	memLimit    uint64
	checks      int
	stopped     bool
}

// newGovernor derives a governor from the run's ceilings.
// timeLimit semantics: 0 trips on the very first check (the deadline is
// already in the past by then); negative disables the deadline entirely.
// memLimit ≤ 0 disables the heap ceiling.
func newGovernor(timeLimit time.Duration, memLimit int64) *governor {
	gv := &governor{}
	if timeLimit >= 0 {
		gv.useDeadline = true
		gv.deadline = time.Now().Add(timeLimit)
	}
	if memLimit > 0 {
		gv.useMem = true
		gv.memLimit = uint64(memLimit)
	}

	return gv
}

// check reports whether the run must stop. Sticky: once it returns true it
// returns true for every subsequent call of this invocation.
func (gv *governor) check() bool {
	if gv.stopped {
		return true
	}
	gv.checks++

	if gv.useDeadline && !time.Now().Before(gv.deadline) {
		gv.stopped = true

		return true
	}
	if gv.useMem && gv.checks%memCheckEvery == 0 {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		if ms.HeapAlloc > gv.memLimit {
			gv.stopped = true

			return true
		}
	}

	return false
}

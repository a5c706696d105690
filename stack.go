// stack.go — the single stack snapshot carried by every chain.
//
// Design goals:
//   - Cheap capture: only runtime.Callers runs at the origin of a chain; the
//     program counters are symbolized lazily when the snapshot is rendered.
//   - Accurate resolution: runtime.CallersFrames expands inlined calls.
//   - Interop: a Snapshot converts to github.com/pkg/errors.StackTrace, which
//     error reporters already understand.
package errlink

import (
	"runtime"

	"github.com/pkg/errors"
)

// Frame represents a single resolved call site in a snapshot.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// Snapshot is an approximate stack trace taken once, where a chain starts.
// The zero Snapshot holds no frames.
type Snapshot struct {
	pcs []uintptr
}

const (
	// defaultMaxDepth bounds how many program counters a snapshot keeps.
	defaultMaxDepth = 64
)

// captureSnapshot records the stack starting at the caller of captureSnapshot,
// skipping 'skip' additional frames.
//
// Skip model for a typical constructor:
//
//	user code → New → captureSnapshot → captureSnapshotN → runtime.Callers
//
// New passes skip=1 so the first recorded frame is the user call site.
func captureSnapshot(skip int) Snapshot {
	return captureSnapshotN(skip, defaultMaxDepth)
}

// captureSnapshotN keeps at most maxDepth program counters. It adds +3 to
// skip runtime.Callers, captureSnapshotN and captureSnapshot.
func captureSnapshotN(skip, maxDepth int) Snapshot {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return Snapshot{}
	}
	// Chains carry the snapshot for their whole life; keep only n slots.
	pcs := make([]uintptr, n)
	copy(pcs, pc[:n])
	return Snapshot{pcs: pcs}
}

// IsZero reports whether the snapshot holds no program counters.
func (s Snapshot) IsZero() bool { return len(s.pcs) == 0 }

// Len returns the number of program counters captured.
func (s Snapshot) Len() int { return len(s.pcs) }

// Frames resolves the snapshot into file, line and function names.
func (s Snapshot) Frames() Stack {
	if len(s.pcs) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(s.pcs)
	out := make(Stack, 0, len(s.pcs))
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// StackTrace returns the snapshot in github.com/pkg/errors form. Both use
// return program counters as reported by runtime.Callers.
func (s Snapshot) StackTrace() errors.StackTrace {
	if len(s.pcs) == 0 {
		return nil
	}
	st := make(errors.StackTrace, len(s.pcs))
	for i, pc := range s.pcs {
		st[i] = errors.Frame(pc)
	}
	return st
}

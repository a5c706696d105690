// doc.go — package documentation for errlink
//
// Package errlink attaches human-readable annotations to a failure while
// keeping its whole causal history, and captures one stack snapshot where the
// failure started. It is designed to be:
//   - Infallible at call sites (annotating an error can never itself fail)
//   - Typed at the head (the newest payload keeps its Go type)
//   - Interoperable with the stdlib and github.com/pkg/errors
//
// # Chains
//
// A chain is a backward-pointing list of frames. The head is a *Link[P] whose
// Payload has any type P; every older frame is a *Link[string]. The tail holds
// the snapshot.
//
//	err := errlink.New(ErrNotReady).  // Frame 1, snapshot captured here
//	           Link("start worker")   // Frame 0, snapshot moved
//
// # Which Operation Captures?
//
//	+------------------------------+-------------------+-------------------------------+
//	| Operation                    | Captures stack?   | Depth                         |
//	+------------------------------+-------------------+-------------------------------+
//	| New(p)                       | YES               | 1                             |
//	| AnnotateValue(v, p)          | YES (v is bare)   | 2                             |
//	| AsLink(v)                    | YES (v is bare)   | 1                             |
//	| Wrap(err, msg) on non-chain  | YES               | 2                             |
//	| AnnotateChain / (*Link).Link | NO (moved)        | +1                            |
//	| Wrap(err, msg) on a chain    | NO (moved)        | +1                            |
//	| Replace / Convert / AsLink() | NO (moved)        | unchanged                     |
//	+------------------------------+-------------------+-------------------------------+
//
// Handing a chain to AnnotateValue or AsLink takes the chain path: a chain is
// never given a second snapshot. A nil chain head starts afresh, like New.
//
// Wrap and Wrapf return error, so a nil input comes back as a plain nil:
//
//	func load() error { return errlink.Wrap(read(), "load") } // nil when read succeeds
//
// # Typed Heads
//
// Only the head keeps its payload type; it can be compared directly:
//
//	if head.Payload == ErrNotReady { ... }
//
// Linking textifies the old head with fmt.Sprint. Through wrappers, HeadOf
// recovers the typed head of the first chain found:
//
//	if r, ok := errlink.HeadOf[Reason](err); ok { ... }
//
// Payload conversions are plain functions passed to Convert, so an unsupported
// conversion is a compile error rather than a runtime one.
//
// # Formatting
//
//   - `%v`, `%s` → Error(): frame texts joined by ": ", head first
//   - `%q`       → quoted Error()
//   - `%+v`      → Render: "Frame <i>: <text>" per frame, then a single
//     "Stack of frame <last>:" block
//
// Render(w) returns the writer's error, the only runtime failure in the
// package.
//
// # Interop
//
//   - Unwrap returns the next frame, so errors.Is/As walk the chain.
//     github.com/pkg/errors.Cause stops at the chain itself.
//   - Is/As look into the head payload when it is an error.
//   - StackTrace exposes the snapshot as github.com/pkg/errors.StackTrace.
//
// Chains are immutable; share them freely between goroutines.
package errlink

// error.go — chain types.
//
// Design tenets:
//   - Interop-first: frames unwrap to their successor for errors.Is/As.
//   - Infallible annotation: building or extending a chain never fails.
//   - One snapshot: captured at the origin, moved (never recaptured) by links.
//   - Non-mutating: every operation returns a new head; chains are immutable.
package errlink

// Link is one frame of an error chain. Payload is the value attached at this
// frame; only the head of a chain keeps its native type. Every frame reachable
// through the continuation holds a string payload.
//
// A *Link is immutable after construction and safe to share between
// goroutines for reading.
type Link[P any] struct {
	Payload P
	next    Continuation
}

// Continuation is the tail of a frame: either terminal, holding the chain's
// single stack snapshot, or linked to the next (older) frame.
type Continuation struct {
	link *Link[string]
	snap Snapshot
}

// IsTerminal reports whether the continuation ends the chain.
func (c Continuation) IsTerminal() bool { return c.link == nil }

// Next returns the linked frame, or nil for a terminal continuation.
func (c Continuation) Next() *Link[string] { return c.link }

// Snapshot returns the stack snapshot held by a terminal continuation. For a
// linked continuation it returns the zero Snapshot; use (*Link).Snapshot to
// reach the chain's tail.
func (c Continuation) Snapshot() Snapshot {
	if c.link != nil {
		return Snapshot{}
	}
	return c.snap
}

func terminal(s Snapshot) Continuation { return Continuation{snap: s} }

func linked(l *Link[string]) Continuation { return Continuation{link: l} }

// Chain is implemented by every *Link, whatever its payload type. It lets
// code holding a plain error recognise a chain head without knowing P.
//
// Chain is sealed: only this package can implement it.
type Chain interface {
	error

	// Depth is the number of frames, head included.
	Depth() int

	// Messages returns each frame's payload text, head first.
	Messages() []string

	// Snapshot returns the stack captured where the chain originated.
	Snapshot() Snapshot

	// Continuation returns the head frame's continuation.
	Continuation() Continuation

	// textHead returns the head payload rendered to text.
	textHead() string
}

// construct.go — building and extending chains.
//
// Scope:
//   - New starts a chain and is the only place (with the bare-value helpers in
//     wrap.go) where a snapshot is captured.
//   - AnnotateChain / Replace / Convert derive a new head from an existing
//     chain and move its continuation; they never capture.
//
// Notes:
//   - Go methods cannot introduce type parameters, so operations that change
//     the payload type are package functions. The string-payload cases, by far
//     the most common, are also offered as methods.
//   - A head payload becomes text (fmt.Sprint) the moment it stops being the
//     head. There is no way back to the native value.
package errlink

import (
	"fmt"
	"iter"
	"strings"
)

// New starts a chain with a single terminal frame holding payload. The stack
// snapshot is captured here, at the caller of New.
func New[P any](payload P) *Link[P] {
	return &Link[P]{Payload: payload, next: terminal(captureSnapshot(1))}
}

// AnnotateChain returns a new head holding payload whose successor is chain's
// head rendered to text. The snapshot of chain is carried over unchanged, and
// the depth grows by exactly one.
//
// A nil chain has nothing to annotate: AnnotateChain then behaves as New.
func AnnotateChain[P, Q any](chain *Link[Q], payload P) *Link[P] {
	if chain == nil {
		return &Link[P]{Payload: payload, next: terminal(captureSnapshot(1))}
	}
	return &Link[P]{Payload: payload, next: linked(chain.textified())}
}

// Replace swaps the head payload of chain for payload, keeping the rest of the
// chain (and its snapshot). Depth is unchanged. Use it when the old message is
// noise but the causal trail must survive.
//
// A nil chain behaves as New.
func Replace[P, Q any](chain *Link[Q], payload P) *Link[P] {
	if chain == nil {
		return &Link[P]{Payload: payload, next: terminal(captureSnapshot(1))}
	}
	return &Link[P]{Payload: payload, next: chain.next}
}

// Convert reinterprets the head payload through conv. The continuation is
// untouched. Conversions are ordinary typed functions, so asking for a payload
// type conv cannot produce fails to compile.
func Convert[P, Q any](chain *Link[P], conv func(P) Q) *Link[Q] {
	if chain == nil {
		return nil
	}
	return &Link[Q]{Payload: conv(chain.Payload), next: chain.next}
}

// Link annotates the chain with msg. It is AnnotateChain for string payloads.
func (l *Link[P]) Link(msg string) *Link[string] {
	if l == nil {
		return &Link[string]{Payload: msg, next: terminal(captureSnapshot(1))}
	}
	return &Link[string]{Payload: msg, next: linked(l.textified())}
}

// Linkf is like Link but formats the message as in fmt.Sprintf.
func (l *Link[P]) Linkf(format string, args ...any) *Link[string] {
	msg := fmt.Sprintf(format, args...)
	if l == nil {
		return &Link[string]{Payload: msg, next: terminal(captureSnapshot(1))}
	}
	return &Link[string]{Payload: msg, next: linked(l.textified())}
}

// Replace swaps the head message, keeping the continuation.
func (l *Link[P]) Replace(msg string) *Link[string] {
	if l == nil {
		return &Link[string]{Payload: msg, next: terminal(captureSnapshot(1))}
	}
	return &Link[string]{Payload: msg, next: l.next}
}

// AsLink turns the head payload into text without adding a frame. The
// continuation, and so the snapshot, is kept.
func (l *Link[P]) AsLink() *Link[string] {
	if l == nil {
		return nil
	}
	return l.textified()
}

// textified copies the head as a string-payload frame over the same
// continuation.
func (l *Link[P]) textified() *Link[string] {
	return &Link[string]{Payload: l.textHead(), next: l.next}
}

func (l *Link[P]) textHead() string { return fmt.Sprint(l.Payload) }

// Continuation returns the head frame's continuation.
func (l *Link[P]) Continuation() Continuation {
	if l == nil {
		return Continuation{}
	}
	return l.next
}

// Depth returns the number of frames in the chain, head included.
func (l *Link[P]) Depth() int {
	if l == nil {
		return 0
	}
	n := 1
	for next := l.next.link; next != nil; next = next.next.link {
		n++
	}
	return n
}

// Snapshot returns the stack captured where the chain started.
func (l *Link[P]) Snapshot() Snapshot {
	if l == nil {
		return Snapshot{}
	}
	c := l.next
	for c.link != nil {
		c = c.link.next
	}
	return c.snap
}

// All iterates the frames head first, yielding each index with its payload
// text.
func (l *Link[P]) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if l == nil {
			return
		}
		if !yield(0, l.textHead()) {
			return
		}
		i := 1
		for next := l.next.link; next != nil; next = next.next.link {
			if !yield(i, next.Payload) {
				return
			}
			i++
		}
	}
}

// Messages returns the payload text of every frame, head first.
func (l *Link[P]) Messages() []string {
	out := make([]string, 0, l.Depth())
	for _, msg := range l.All() {
		out = append(out, msg)
	}
	return out
}

// Error joins the frame messages head to tail with ": ", so a chain reads
// like a conventionally wrapped Go error on one line.
func (l *Link[P]) Error() string {
	return strings.Join(l.Messages(), ": ")
}

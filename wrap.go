// wrap.go — folding bare values (anything that is not already a chain) into
// chains.
//
// Two entry points exist on purpose and must not be conflated:
//   - AnnotateValue / AsLink start from a bare value. It has no snapshot of its
//     own, so one is captured here.
//   - AnnotateChain / (*Link).Link / (*Link).AsLink start from a chain head and
//     move its existing snapshot.
//
// When a value handed to the bare-value helpers turns out to be a chain head,
// the chain path is taken; a chain is never given a second snapshot. A nil
// chain head has nothing to move, so it starts a fresh chain like New.
//
// Wrap and Wrapf serve callers that only hold an error interface value and
// return one, so a nil input stays an untyped nil.
package errlink

import (
	"fmt"
)

// AnnotateValue wraps the bare value v in a two-frame chain: the head holds
// payload, the successor holds v's text and a snapshot captured now.
func AnnotateValue[P, V any](v V, payload P) *Link[P] {
	if ch, ok := any(v).(Chain); ok {
		if ch.Depth() == 0 {
			return &Link[P]{Payload: payload, next: terminal(captureSnapshot(1))}
		}
		return &Link[P]{Payload: payload, next: linked(headOf(ch))}
	}
	origin := &Link[string]{Payload: fmt.Sprint(v), next: terminal(captureSnapshot(1))}
	return &Link[P]{Payload: payload, next: linked(origin)}
}

// AsLink promotes the bare value v into a single terminal frame holding its
// text, capturing the snapshot now. No message is added. A nil chain head
// becomes a single empty frame with a fresh snapshot.
func AsLink[V any](v V) *Link[string] {
	if ch, ok := any(v).(Chain); ok {
		if ch.Depth() == 0 {
			return &Link[string]{next: terminal(captureSnapshot(1))}
		}
		return headOf(ch)
	}
	return &Link[string]{Payload: fmt.Sprint(v), next: terminal(captureSnapshot(1))}
}

// Wrap annotates err with msg.
//   - nil → nil
//   - nil chain head → single frame holding msg, snapshot captured here
//   - chain head → new head over the textified chain (snapshot reused)
//   - any other error → two-frame chain, snapshot captured here
//
// The result is a *Link[string] whenever it is non-nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return annotateError(err, msg)
}

// Wrapf is like Wrap but formats the message as in fmt.Sprintf.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return annotateError(err, fmt.Sprintf(format, args...))
}

// annotateError is shared by Wrap and Wrapf; it captures at their caller.
func annotateError(err error, msg string) *Link[string] {
	if ch, ok := err.(Chain); ok {
		if ch.Depth() == 0 {
			return &Link[string]{Payload: msg, next: terminal(captureSnapshot(2))}
		}
		return &Link[string]{Payload: msg, next: linked(headOf(ch))}
	}
	origin := &Link[string]{Payload: err.Error(), next: terminal(captureSnapshot(2))}
	return &Link[string]{Payload: msg, next: linked(origin)}
}

// headOf textifies the head of an arbitrary chain.
func headOf(ch Chain) *Link[string] {
	return &Link[string]{Payload: ch.textHead(), next: ch.Continuation()}
}

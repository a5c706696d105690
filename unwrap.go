// unwrap.go — stdlib and github.com/pkg/errors interop for chains.
//
// Traversal semantics:
//   - Unwrap: the linked successor, nil at the tail. errors.Is/As therefore
//     visit every frame head to tail.
//   - No Cause method: github.com/pkg/errors.Cause walks causers until one
//     stops, so a chain is the cause it reports, never a nil past the tail.
//   - Is / As: consult the head payload when it is itself an error, so a
//     typed head stays matchable. Successors hold text only and match nothing
//     but themselves.
//   - StackTrace: every frame reports the chain's single snapshot.
package errlink

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Unwrap returns the next frame, or nil when l is the tail.
func (l *Link[P]) Unwrap() error {
	if l == nil || l.next.link == nil {
		return nil
	}
	return l.next.link
}

// Is reports whether the head payload is, or wraps, target. Payloads that are
// not errors never match; compare them through Payload instead.
func (l *Link[P]) Is(target error) bool {
	if l == nil {
		return false
	}
	if pe, ok := any(l.Payload).(error); ok && pe != nil {
		return errors.Is(pe, target)
	}
	return false
}

// As finds the first error in the head payload's tree that matches target.
func (l *Link[P]) As(target any) bool {
	if l == nil {
		return false
	}
	if pe, ok := any(l.Payload).(error); ok && pe != nil {
		return errors.As(pe, target)
	}
	return false
}

// StackTrace returns the chain's snapshot in github.com/pkg/errors form.
func (l *Link[P]) StackTrace() pkgerrors.StackTrace {
	return l.Snapshot().StackTrace()
}

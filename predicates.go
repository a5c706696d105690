// predicates.go — questions about arbitrary errors that may hold a chain.
//
// All helpers use errors.As, so a chain is found even behind fmt.Errorf("%w")
// or errors.Join wrappers. The first chain frame met in traversal order wins.
package errlink

import (
	"errors"
)

// IsLink reports whether err is, or wraps, a chain frame.
func IsLink(err error) bool {
	if err == nil {
		return false
	}
	var ch Chain
	return errors.As(err, &ch)
}

// HeadOf returns the head payload of the first chain in err's tree when that
// payload has type P. Older frames of the chain are never consulted, so a
// typed head is not mistaken for a string head.
func HeadOf[P any](err error) (P, bool) {
	var zero P
	if err == nil {
		return zero, false
	}
	var ch Chain
	if !errors.As(err, &ch) {
		return zero, false
	}
	l, ok := ch.(*Link[P])
	if !ok || l == nil {
		return zero, false
	}
	return l.Payload, true
}

// SnapshotOf returns the stack snapshot of the first chain in err's tree.
func SnapshotOf(err error) (Snapshot, bool) {
	if err == nil {
		return Snapshot{}, false
	}
	var ch Chain
	if !errors.As(err, &ch) || ch.Depth() == 0 {
		return Snapshot{}, false
	}
	return ch.Snapshot(), true
}

// DepthOf returns the depth of the first chain in err's tree, or 0 when there
// is none.
func DepthOf(err error) int {
	if err == nil {
		return 0
	}
	var ch Chain
	if !errors.As(err, &ch) {
		return 0
	}
	return ch.Depth()
}

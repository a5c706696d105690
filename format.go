// format.go — rendering a chain as text.
//
// Behavior:
//
//	%s, %v   → concise one-line Error() ("head: ...: origin").
//	%q       → quoted Error().
//	%+v      → full rendering, one line per frame, then the snapshot:
//	             Frame 0: <head payload>
//	             Frame 1: <payload>
//	             Stack of frame 1:
//	             	pkg.Func
//	             		/path/file.go:42
//
// Exactly one "Stack of frame" block is written, labelled with the index of
// the last frame, because a chain holds exactly one snapshot.
package errlink

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Render writes the full multi-line form of the chain to w. The first write
// error is returned; nothing else can fail.
func (l *Link[P]) Render(w io.Writer) error {
	if l == nil {
		return nil
	}
	last := 0
	for i, msg := range l.All() {
		if _, err := fmt.Fprintf(w, "Frame %d: %s\n", i, msg); err != nil {
			return errors.Wrapf(err, "errlink: render frame %d", i)
		}
		last = i
	}
	return renderSnapshot(w, last, l.Snapshot())
}

func renderSnapshot(w io.Writer, index int, s Snapshot) error {
	if _, err := fmt.Fprintf(w, "Stack of frame %d:\n", index); err != nil {
		return errors.Wrapf(err, "errlink: render stack of frame %d", index)
	}
	for _, fr := range s.Frames() {
		if _, err := fmt.Fprintf(w, "\t%s\n\t\t%s:%d\n", fr.Function, fr.File, fr.Line); err != nil {
			return errors.Wrapf(err, "errlink: render stack of frame %d", index)
		}
	}
	return nil
}

// Format implements fmt.Formatter.
func (l *Link[P]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			// fmt has no way to report a failing writer; drop it.
			_ = l.Render(s)
			return
		}
		_, _ = io.WriteString(s, l.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", l.Error())
	default:
		_, _ = io.WriteString(s, l.Error())
	}
}

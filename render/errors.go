// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"io"
)

// ErrNilGraph is returned when there is nothing to draw from.
var ErrNilGraph = errors.New("render: nil graph")

// errWriter remembers the first write error and drops everything after it;
// the SVG encoder does not report write failures itself.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}

	return n, err
}

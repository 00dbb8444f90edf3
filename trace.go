//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

import (
	"fmt"
	"io"
)

// debugWriter receives step traces from [ArgBuffer.Remove], mirroring
// the teacher's doparse.go package-level trace writer. Defaults to
// io.Discard; redirect it with [SetDebugWriter].
var debugWriter io.Writer = io.Discard

// SetDebugWriter redirects internal step traces to w. Passing nil
// restores the default, io.Discard.
func SetDebugWriter(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	debugWriter = w
}

func trace(format string, args ...any) {
	fmt.Fprintf(debugWriter, format+"\n", args...)
}

package rope

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"
	"io"
	"strconv"

	ansi "github.com/fatih/color"
)

// debugPalette maps the two node colors onto terminal colors, following the
// styled/formatter package's map[Style]*color.Color approach. Aliased as
// ansi on import since this package's own node color type is named color.
var debugPalette = map[color]*ansi.Color{
	red:   ansi.New(ansi.FgRed, ansi.Bold),
	black: ansi.New(ansi.FgWhite),
}

// Dump writes an indented, color-coded tree dump of the rope to w: red nodes
// in red, black nodes in white, leaves annotated with a short byte preview.
// Intended for interactive debugging, not for parsing.
func (r Rope) Dump(w io.Writer) {
	if r.root == nil {
		fmt.Fprintln(w, "(empty)")
		return
	}
	dumpNode(w, r.root, 0)
}

func dumpNode(w io.Writer, n *node, depth int) {
	if n == nil {
		return
	}
	pad := ""
	for i := 0; i < depth; i++ {
		pad += "  "
	}
	c := debugPalette[n.clr]
	label := "B"
	if n.clr == red {
		label = "R"
	}
	if n.isLeaf {
		c.Fprintf(w, "%s%s leaf(%s) %q\n", pad, label, byteCount(n.byteLen), preview(n.data[:n.byteLen]))
		return
	}
	c.Fprintf(w, "%s%s branch leftBytes=%d leftChars=%d leftNewlines=%d\n",
		pad, label, n.leftBytes, n.leftChars, n.leftNewlines)
	dumpNode(w, n.left, depth+1)
	dumpNode(w, n.right, depth+1)
}

func byteCount(n int) string {
	return strconv.Itoa(n) + "B"
}

// preview trims a leaf's content to a short printable snippet for Dump.
func preview(b []byte) string {
	const max = 24
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "…"
}

/*
Package rope offers a UTF-8–aware rope: a balanced binary-tree text buffer for
editors and text-manipulation tools that need sub-linear insert/delete/index
costs on very large documents.

Rope

A rope stores an ordered sequence of Unicode scalar values encoded as UTF-8
and exposes byte-indexed, character-indexed, and newline-indexed (line)
access. Internally it is a left-leaning red-black tree: branches cache the
byte/char/newline totals of their left subtree so that every positional query
or structural edit touches only O(log n) nodes, never the whole document.

Structural operations — Concat, SplitBytes, SplitChars, InsertBytes,
InsertChars, DeleteBytes, DeleteChars — consume their receiver. A rope handle
must not be reused after being passed to one of these; follow the idiom

	r = r.InsertBytes(pos, data)

exactly as you would with strings.Builder or a bytes.Buffer, except that the
old r is no longer valid afterwards.

_________________________________________________________________________

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
package rope

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer. Tracing is a no-op until a client sets
// gtrace.CoreTracer, matching the zero-configuration default of the
// underlying schuko tracing package.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

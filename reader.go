package rope

import "io"

// Reader returns an io.Reader over r's bytes starting at byte offset 0,
// reading through CopyBytes in caller-sized chunks.
func (r Rope) Reader() io.Reader {
	return &ropeReader{rope: r}
}

type ropeReader struct {
	rope   Rope
	cursor int
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	if rr.cursor >= rr.rope.byteLen {
		return 0, io.EOF
	}
	n = rr.rope.CopyBytes(rr.cursor, len(p), p)
	if n == 0 {
		return 0, io.EOF
	}
	rr.cursor += n
	return n, nil
}

package anno

// workBuffer owns the working byte array and its cursors. filled is the
// count of bytes received and not yet fully consumed; emitted is the count
// of bytes already handed to the emitter. 0 <= emitted <= filled <= cap.
type workBuffer struct {
	data    []byte
	filled  int
	emitted int
}

// free returns the unfilled suffix available to the next read.
func (b *workBuffer) free() []byte {
	return b.data[b.filled:]
}

// compact moves the unconsumed suffix [from, filled) to the front of the
// buffer, preserving byte order and content, and rewinds the cursors. This
// is the only compaction operation; it runs when a pass stops at an
// incomplete multi-byte sequence.
func (b *workBuffer) compact(from int) {
	b.filled = copy(b.data, b.data[from:b.filled])
	b.emitted = 0
}

// reset discards all buffered bytes after a pass consumed them.
func (b *workBuffer) reset() {
	b.filled = 0
	b.emitted = 0
}

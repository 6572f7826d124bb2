package anno

import "io"

// scanner walks the working buffer one unit at a time and classifies each
// byte or sequence. Residual state describes the byte immediately preceding
// the scan position, not buffer contents, so it survives compaction and
// input-source boundaries untouched.
type scanner struct {
	buf workBuffer
	out emitter

	lastNewline bool
	lastCR      bool
	lastBlank   bool
}

func (s *scanner) reset(w io.Writer, styles Styles, marker string, size int) {
	if cap(s.buf.data) < size {
		s.buf.data = make([]byte, size)
	} else {
		s.buf.data = s.buf.data[:size]
	}
	s.buf.reset()
	s.out.reset(w, styles, marker)
	s.lastNewline = false
	s.lastCR = false
	s.lastBlank = false
}

// release drops the caller's writer and styles, and any oversized working
// buffer, so a pooled scanner does not pin them between uses.
func (s *scanner) release() {
	s.out.reset(nil, Styles{}, "")
	if cap(s.buf.data) > defaultBufferSize {
		s.buf.data = nil
	}
}

// endUnit updates the residual state from the last raw byte of a consumed
// unit at index at, and inserts the trailing-whitespace marker when a
// newline follows blank characters. Carriage returns preserve lastBlank, so
// " \r\n" still counts as trailing whitespace.
func (s *scanner) endUnit(last byte, at int) error {
	s.lastNewline = last == '\n'
	if last == '\n' && s.lastBlank {
		if err := s.out.writeMarker(&s.buf, TrailingWhitespace, at); err != nil {
			return err
		}
	}
	s.lastCR = last == '\r'
	if last != '\r' {
		s.lastBlank = last == '\t' || last == ' '
	}
	return nil
}

// pass scans the buffered bytes once, left to right. A multi-byte sequence
// truncated at the end of the available bytes defers judgment: the clean
// prefix is flushed and the unconsumed suffix compacted to the front for the
// next read. When final is true no more input can arrive, so a truncated
// tail is reported as one Encoding defect per remaining byte instead.
func (s *scanner) pass(final bool) error {
	b := &s.buf
	i := 0
	for i < b.filled {
		ch := b.data[i]

		if ch&0x80 == 0 {
			if ch < 0x20 && ch != '\n' && ch != '\t' {
				if err := s.out.defectByte(b, Control, i); err != nil {
					return err
				}
			}
			if err := s.endUnit(ch, i); err != nil {
				return err
			}
			i++
			continue
		}
		if ch&0x40 == 0 {
			// continuation byte with no lead before it
			if err := s.out.defectByte(b, Encoding, i); err != nil {
				return err
			}
			if err := s.endUnit(ch, i); err != nil {
				return err
			}
			i++
			continue
		}

		var size int
		var min rune
		switch {
		case ch&0x20 == 0:
			size, min = 2, 0x80
		case ch&0x10 == 0:
			size, min = 3, 0x800
		case ch < 0xf5:
			size, min = 4, 0x10000
		default:
			if err := s.out.defectByte(b, Encoding, i); err != nil {
				return err
			}
			if err := s.endUnit(ch, i); err != nil {
				return err
			}
			i++
			continue
		}

		if i+size > b.filled {
			if !final {
				// Not enough bytes to judge the sequence; carry it over.
				if err := s.out.flushClean(b, i); err != nil {
					return err
				}
				b.compact(i)
				return nil
			}
			// The stream ended mid-sequence. It can never complete, so
			// every remaining byte is its own encoding defect.
			for ; i < b.filled; i++ {
				if err := s.out.defectByte(b, Encoding, i); err != nil {
					return err
				}
			}
			break
		}

		// A malformed continuation is reported on the lead byte alone; the
		// offending byte is reclassified on the next iteration, not skipped.
		wellFormed := true
		u := decodeLead(ch, size)
		for k := 1; k < size; k++ {
			cont := b.data[i+k]
			if cont&0xc0 != 0x80 {
				wellFormed = false
				break
			}
			u = u<<6 | rune(cont&0x3f)
		}
		if !wellFormed {
			if err := s.out.defectByte(b, Encoding, i); err != nil {
				return err
			}
			if err := s.endUnit(ch, i); err != nil {
				return err
			}
			i++
			continue
		}

		cond := Clean
		switch {
		case u < min:
			cond = Overlong
		case size == 2 && u < 0xa0:
			cond = HighControl
		}
		if cond != Clean {
			for k := 0; k < size; k++ {
				if err := s.out.defectByte(b, cond, i+k); err != nil {
					return err
				}
			}
		}
		last := b.data[i+size-1]
		at := i + size - 1
		i += size
		if err := s.endUnit(last, at); err != nil {
			return err
		}
	}
	if err := s.out.flushClean(b, b.filled); err != nil {
		return err
	}
	b.reset()
	return nil
}

func decodeLead(ch byte, size int) rune {
	switch size {
	case 2:
		return rune(ch & 0x1f)
	case 3:
		return rune(ch & 0x0f)
	default:
		return rune(ch & 0x07)
	}
}

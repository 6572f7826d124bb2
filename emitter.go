package anno

import "io"

const hexDigits = "0123456789abcdef"

// emitter owns the markup state. The scanner asks for transitions and
// flushes by buffer index; only the emitter knows which classification is
// currently open on the output.
type emitter struct {
	w            io.Writer
	styles       Styles
	marker       string
	active       Condition
	activePrefix string
}

func (e *emitter) reset(w io.Writer, styles Styles, marker string) {
	e.w = w
	e.styles = styles
	e.marker = marker
	e.active = Clean
	e.activePrefix = ""
}

func (e *emitter) writeString(s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(e.w, s)
	return err
}

// flushClean writes the pending clean bytes up to index upTo. The reset back
// to Clean is lazy: it is written only when clean bytes actually follow a
// defect run.
func (e *emitter) flushClean(b *workBuffer, upTo int) error {
	if upTo <= b.emitted {
		return nil
	}
	if e.active != Clean {
		if e.activePrefix != "" {
			if err := e.writeString(ansiReset); err != nil {
				return err
			}
			e.activePrefix = ""
		}
		e.active = Clean
	}
	if _, err := e.w.Write(b.data[b.emitted:upTo]); err != nil {
		return err
	}
	b.emitted = upTo
	return nil
}

// transition flushes clean bytes before index at and opens a run of cond.
// Consecutive units of the same classification share one transition.
func (e *emitter) transition(b *workBuffer, cond Condition, at int) error {
	if err := e.flushClean(b, at); err != nil {
		return err
	}
	if cond != e.active {
		prefix := e.styles.prefix(cond)
		if err := e.writeString(prefix); err != nil {
			return err
		}
		e.active = cond
		e.activePrefix = prefix
	}
	return nil
}

// defectByte writes the byte at index at as a bracketed two-hex-digit
// escape instead of the raw byte, under the markup of cond.
func (e *emitter) defectByte(b *workBuffer, cond Condition, at int) error {
	if err := e.transition(b, cond, at); err != nil {
		return err
	}
	ch := b.data[at]
	esc := [4]byte{'<', hexDigits[ch>>4], hexDigits[ch&0x0f], '>'}
	if _, err := e.w.Write(esc[:]); err != nil {
		return err
	}
	b.emitted = at + 1
	return nil
}

// writeMarker inserts the zero-width marker before index at without
// consuming any input byte.
func (e *emitter) writeMarker(b *workBuffer, cond Condition, at int) error {
	if err := e.transition(b, cond, at); err != nil {
		return err
	}
	return e.writeString(e.marker)
}

// finish closes a still-open defect run so the output is markup-balanced.
func (e *emitter) finish() error {
	if e.active == Clean {
		return nil
	}
	e.active = Clean
	if e.activePrefix == "" {
		return nil
	}
	e.activePrefix = ""
	return e.writeString(ansiReset)
}

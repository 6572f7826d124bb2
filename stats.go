package anno

import (
	"bytes"
	"fmt"
	"io"

	"github.com/muesli/reflow/ansi"
)

const statsChunkSize = 64 * 1024

// Lines longer than the probe contribute a lower-bound width.
const maxLineProbeBytes = 64 * 1024

// StatsRequest configures CollectStats.
type StatsRequest struct {
	Reader io.Reader
}

// Stats aggregates line and encoding statistics over a byte stream. Byte
// counters and UTF-8 counters overlap deliberately: a 0xC4 byte is counted
// both as an upper printable (a Latin-1 reading) and, when it leads a valid
// sequence, through the UTF-8 machine.
type Stats struct {
	Lines              int
	WindowsLineEndings int
	TrailingWhitespace int
	NullChars          int
	ControlChars       int
	UpperControlChars  int
	UpperPrintable     int
	Latin1Finnish      int

	MissingContinuations int
	OrphanContinuations  int
	OverlongEncodings    int
	EncodedUpperControl  int
	IllegalLeadBytes     int

	// LongestLine is the maximum display width of any line in terminal
	// columns.
	LongestLine int
}

// CollectStats consumes the stream and returns its statistics. This is the
// simpler decoder variant: a stateful UTF-8 length machine with no
// chunk-boundary carry-over and no output generation.
func CollectStats(req StatsRequest) (Stats, error) {
	if req.Reader == nil {
		return Stats{}, fmt.Errorf("stats: Reader is nil")
	}
	var st Stats
	c := statsCounter{ulen: 1}
	buf := make([]byte, statsChunkSize)
	for {
		n, err := req.Reader.Read(buf)
		if n > 0 {
			c.consume(buf[:n], &st)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Stats{}, fmt.Errorf("stats: read: %w", err)
		}
	}
	c.finish(&st)
	return st, nil
}

type statsCounter struct {
	ulen int
	umin rune
	u    rune

	lastCR    bool
	lastBlank bool

	line []byte
}

func (c *statsCounter) consume(chunk []byte, st *Stats) {
	for _, ch := range chunk {
		if c.ulen > 1 && ch&0xc0 != 0x80 {
			st.MissingContinuations++
		}
		switch {
		case ch&0x80 == 0:
			c.ulen = 1
		case ch&0x40 == 0:
			if c.ulen < 2 {
				st.OrphanContinuations++
			} else {
				c.u = c.u<<6 | rune(ch&0x3f)
				c.ulen--
				if c.ulen == 1 {
					if c.u < c.umin {
						st.OverlongEncodings++
					}
					if c.u >= 0x80 && c.u < 0xa0 {
						st.EncodedUpperControl++
					}
				}
			}
		case ch&0x20 == 0:
			c.u = rune(ch & 0x1f)
			c.ulen = 2
			c.umin = 0x80
		case ch&0x10 == 0:
			c.u = rune(ch & 0x0f)
			c.ulen = 3
			c.umin = 0x800
		case ch < 0xf5:
			c.u = rune(ch & 0x07)
			c.ulen = 4
			c.umin = 0x10000
		default:
			st.IllegalLeadBytes++
			c.ulen = 1
		}

		if ch == '\n' {
			if c.lastCR {
				st.WindowsLineEndings++
			}
			if c.lastBlank {
				st.TrailingWhitespace++
			}
			st.Lines++
			c.endLine(st)
		} else if len(c.line) < maxLineProbeBytes {
			c.line = append(c.line, ch)
		}

		c.lastCR = ch == '\r'
		if ch != '\r' {
			c.lastBlank = ch == '\t' || ch == ' '
		}

		if ch == 0 {
			st.NullChars++
		}
		if ch > 0 && ch < ' ' && ch != '\r' && ch != '\n' && ch != '\t' {
			st.ControlChars++
		}
		if ch >= 0x80 && ch < 0xa0 {
			st.UpperControlChars++
		}
		if ch >= 0xa0 {
			st.UpperPrintable++
		}
		switch ch {
		case 0xc4, 0xc5, 0xd6, 0xe4, 0xe5, 0xf6:
			st.Latin1Finnish++
		}
	}
}

func (c *statsCounter) endLine(st *Stats) {
	line := bytes.TrimSuffix(c.line, []byte{'\r'})
	if width := ansi.PrintableRuneWidth(string(line)); width > st.LongestLine {
		st.LongestLine = width
	}
	c.line = c.line[:0]
}

// finish accounts a final line without a terminating newline for the width
// measure; line counting stays newline-based like the rest of the counters.
func (c *statsCounter) finish(st *Stats) {
	if len(c.line) > 0 {
		c.endLine(st)
	}
}

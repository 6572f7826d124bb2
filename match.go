package anno

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEmptyPattern reports an empty match pattern.
	ErrEmptyPattern = errors.New("empty match pattern")
	// ErrPatternTooLong reports a pattern not shorter than the maximum
	// line length.
	ErrPatternTooLong = errors.New("match pattern not shorter than maximum line length")
)

const defaultMaxColumns = 64 * 1024

// MatchRequest configures Match.
type MatchRequest struct {
	// Pattern is the exact byte sequence to search for.
	Pattern []byte
	Reader  io.Reader
	// Writer receives matching lines when set. Binary inputs are never
	// echoed.
	Writer io.Writer
	// MaxColumns bounds the line length; input is assumed binary if and
	// only if it is exceeded. Defaults to 64 KiB.
	MaxColumns int
	// Highlight wraps each matched span when its prefix is non-empty.
	Highlight Style
}

// MatchResult reports what Match found.
type MatchResult struct {
	Matches      int
	MatchedLines int
	Binary       bool
}

// Match searches the stream for exact occurrences of the pattern. Input is
// handled line by line; once a line exceeds MaxColumns the input is deemed
// binary and matching continues over a sliding window that retains
// len(pattern)-1 bytes of overlap across chunks.
func Match(req MatchRequest) (MatchResult, error) {
	if req.Reader == nil {
		return MatchResult{}, fmt.Errorf("match: Reader is nil")
	}
	maxColumns := req.MaxColumns
	if maxColumns <= 0 {
		maxColumns = defaultMaxColumns
	}
	if len(req.Pattern) == 0 {
		return MatchResult{}, fmt.Errorf("match: %w", ErrEmptyPattern)
	}
	if len(req.Pattern) >= maxColumns {
		return MatchResult{}, fmt.Errorf("match: %w", ErrPatternTooLong)
	}

	m := matcher{
		pat:       req.Pattern,
		w:         req.Writer,
		highlight: req.Highlight.Prefix,
		buf:       make([]byte, maxColumns),
	}
	for {
		n, err := req.Reader.Read(m.buf[m.pos:])
		if n > 0 {
			m.pos += n
			m.consume(m.pos == len(m.buf))
			if m.werr != nil {
				return m.result, fmt.Errorf("match: write: %w", m.werr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return m.result, fmt.Errorf("match: read: %w", err)
		}
	}
	if !m.result.Binary && m.pos > 0 {
		m.scanLine(m.buf[:m.pos])
	}
	if m.werr != nil {
		return m.result, fmt.Errorf("match: write: %w", m.werr)
	}
	return m.result, nil
}

type matcher struct {
	pat       []byte
	w         io.Writer
	highlight string

	buf []byte
	pos int

	result MatchResult
	werr   error
}

func (m *matcher) consume(force bool) {
	if m.result.Binary {
		m.consumeBinary()
		return
	}
	if idx := bytes.IndexByte(m.buf[:m.pos], '\n'); idx >= 0 {
		start := 0
		for idx >= 0 {
			end := start + idx + 1
			m.scanLine(m.buf[start:end])
			start = end
			idx = bytes.IndexByte(m.buf[start:m.pos], '\n')
		}
		m.pos = copy(m.buf, m.buf[start:m.pos])
		return
	}
	if force {
		m.result.Binary = true
		m.consumeBinary()
	}
}

// consumeBinary scans the whole buffer and keeps a pattern-sized overlap so
// occurrences spanning chunk boundaries are still found.
func (m *matcher) consumeBinary() {
	if m.pos < len(m.pat) {
		return
	}
	m.scanLine(m.buf[:m.pos])
	keep := len(m.pat) - 1
	m.pos = copy(m.buf, m.buf[m.pos-keep:m.pos])
}

func (m *matcher) scanLine(line []byte) {
	lineMatched := false
	prev := 0
	start := 0
	for len(line)-start >= len(m.pat) {
		idx := bytes.IndexByte(line[start:len(line)-len(m.pat)+1], m.pat[0])
		if idx < 0 {
			break
		}
		at := start + idx
		if bytes.Equal(line[at:at+len(m.pat)], m.pat) {
			m.echoSpan(line[prev:at])
			m.result.Matches++
			lineMatched = true
			prev = at + len(m.pat)
			start = prev
		} else {
			start = at + 1
		}
	}
	if lineMatched {
		m.result.MatchedLines++
		if m.highlight != "" {
			m.echoTail(line[prev:])
		} else {
			m.echoFull(line)
		}
	}
}

// echoSpan writes the text before a match plus the highlighted match. Only
// highlighted output is written incrementally; plain output goes out as one
// full line once the line is known to match.
func (m *matcher) echoSpan(before []byte) {
	if m.w == nil || m.result.Binary || m.highlight == "" {
		return
	}
	if len(before) > 0 {
		m.write(before)
	}
	m.writeString(m.highlight)
	m.write(m.pat)
	m.writeString(ansiReset)
}

func (m *matcher) echoTail(tail []byte) {
	if m.w == nil || m.result.Binary {
		return
	}
	m.write(tail)
}

func (m *matcher) echoFull(line []byte) {
	if m.w == nil || m.result.Binary {
		return
	}
	m.write(line)
}

func (m *matcher) write(p []byte) {
	if m.werr != nil {
		return
	}
	_, m.werr = m.w.Write(p)
}

func (m *matcher) writeString(s string) {
	if m.werr != nil {
		return
	}
	_, m.werr = io.WriteString(m.w, s)
}

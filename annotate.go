package anno

import (
	"fmt"
	"io"
	"sync"
)

const (
	defaultBufferSize = 64 * 1024
	// The working buffer must exceed the longest legal UTF-8 sequence so a
	// pass always makes progress after compaction.
	minBufferSize = 16

	defaultMarker = " "
)

var scannerPool = sync.Pool{
	New: func() any {
		return &scanner{}
	},
}

// AnnotateRequest configures Annotate.
type AnnotateRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Theme   Theme
	Options []Option
}

// Annotate copies Reader to Writer, escaping defective bytes and bracketing
// runs of defects with the theme's markup. Content defects are never errors;
// only I/O failures are. Scanner state is carried across the whole stream,
// so concatenating sources into one Reader preserves classifications across
// their boundaries.
func Annotate(req AnnotateRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("annotate: Reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("annotate: Writer is nil")
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	cfg := annotateConfig{bufferSize: defaultBufferSize, marker: defaultMarker}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.bufferSize < minBufferSize {
		cfg.bufferSize = minBufferSize
	}

	s := scannerPool.Get().(*scanner)
	defer func() {
		s.release()
		scannerPool.Put(s)
	}()
	s.reset(req.Writer, theme.Styles(), cfg.marker, cfg.bufferSize)

	for {
		n, err := req.Reader.Read(s.buf.free())
		if n > 0 {
			s.buf.filled += n
			if perr := s.pass(false); perr != nil {
				return fmt.Errorf("annotate: write: %w", perr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("annotate: read: %w", err)
		}
	}
	if err := s.pass(true); err != nil {
		return fmt.Errorf("annotate: write: %w", err)
	}
	if err := s.out.finish(); err != nil {
		return fmt.Errorf("annotate: write: %w", err)
	}
	return nil
}

// Package anno annotates text-hygiene defects with ANSI markup for terminal
// display.
//
// This package is built for streaming: it scans bytes incrementally from an
// io.Reader and passes them through to an io.Writer with defective bytes
// escaped and runs of defects bracketed by color markup. Input is never
// buffered whole; a fixed-capacity working buffer carries incomplete UTF-8
// sequences across reads, so output is byte-identical regardless of how the
// input is chunked.
//
// Detected defects:
//   - Control characters outside newline and tab
//   - Malformed UTF-8 (orphan continuations, broken or truncated sequences,
//     illegal lead bytes)
//   - Overlong UTF-8 encodings
//   - C1 control code points (U+0080..U+009F)
//   - Trailing horizontal whitespace before a line break
//
// Example:
//
//	reader := strings.NewReader("tab>\tok, but\x01not this\n")
//	err := anno.Annotate(anno.AnnotateRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//		Theme:  anno.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The package also provides the simpler streaming collectors used by the
// companion tools: CollectStats (line and encoding statistics) and Match
// (exact byte-sequence search with a binary fallback).
package anno

package anno

// Condition classifies a byte or a decoded UTF-8 unit in the input stream.
type Condition uint8

const (
	// Clean marks bytes passed through unchanged.
	Clean Condition = iota
	// Control marks an ASCII control character other than newline and tab.
	Control
	// Encoding marks a byte that is not part of any well-formed UTF-8 unit.
	Encoding
	// Overlong marks a sequence encoding a code point representable in
	// fewer bytes.
	Overlong
	// HighControl marks an encoded C1 control code point
	// (U+0080..U+009F).
	HighControl
	// TrailingWhitespace marks horizontal whitespace immediately before a
	// line break.
	TrailingWhitespace
)

func (c Condition) String() string {
	switch c {
	case Clean:
		return "clean"
	case Control:
		return "control"
	case Encoding:
		return "encoding"
	case Overlong:
		return "overlong"
	case HighControl:
		return "high-control"
	case TrailingWhitespace:
		return "trailing-whitespace"
	default:
		return "unknown"
	}
}

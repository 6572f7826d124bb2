package anno

import (
	"bytes"
	"testing"
	"testing/iotest"
)

func collect(t *testing.T, input []byte) Stats {
	t.Helper()
	st, err := CollectStats(StatsRequest{Reader: bytes.NewReader(input)})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	return st
}

func TestStatsLinesAndLineEndings(t *testing.T) {
	st := collect(t, []byte("a\r\nb\n"))
	if st.Lines != 2 {
		t.Fatalf("Lines = %d, want 2", st.Lines)
	}
	if st.WindowsLineEndings != 1 {
		t.Fatalf("WindowsLineEndings = %d, want 1", st.WindowsLineEndings)
	}
	if st.ControlChars != 0 {
		t.Fatalf("CR counted as control: %d", st.ControlChars)
	}
}

func TestStatsTrailingWhitespace(t *testing.T) {
	st := collect(t, []byte("a \nb\t\nc\n"))
	if st.TrailingWhitespace != 2 {
		t.Fatalf("TrailingWhitespace = %d, want 2", st.TrailingWhitespace)
	}
	// The space before CRLF still counts.
	st = collect(t, []byte("a \r\n"))
	if st.TrailingWhitespace != 1 {
		t.Fatalf("TrailingWhitespace before CRLF = %d, want 1", st.TrailingWhitespace)
	}
}

func TestStatsNullAndControl(t *testing.T) {
	st := collect(t, []byte{0x00, 0x01, 'x'})
	if st.NullChars != 1 {
		t.Fatalf("NullChars = %d, want 1", st.NullChars)
	}
	if st.ControlChars != 1 {
		t.Fatalf("ControlChars = %d, want 1", st.ControlChars)
	}
}

func TestStatsUTF8Counters(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
		check func(Stats) (int, int)
	}{
		{"orphan", []byte{0x80}, func(s Stats) (int, int) { return s.OrphanContinuations, 1 }},
		{"overlong", []byte{0xc0, 0x80}, func(s Stats) (int, int) { return s.OverlongEncodings, 1 }},
		{"missing", []byte{0xc3, 'a'}, func(s Stats) (int, int) { return s.MissingContinuations, 1 }},
		{"illegal", []byte{0xf5}, func(s Stats) (int, int) { return s.IllegalLeadBytes, 1 }},
		{"encoded C1", []byte{0xc2, 0x85}, func(s Stats) (int, int) { return s.EncodedUpperControl, 1 }},
		{"clean euro", []byte("€"), func(s Stats) (int, int) {
			return s.OverlongEncodings + s.OrphanContinuations + s.MissingContinuations + s.IllegalLeadBytes, 0
		}},
	}
	for _, tc := range cases {
		got, want := tc.check(collect(t, tc.input))
		if got != want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, want)
		}
	}
}

func TestStatsByteRangeCounters(t *testing.T) {
	st := collect(t, []byte{0x85, 0xe4, 0xf6, 0x41})
	if st.UpperControlChars != 1 {
		t.Fatalf("UpperControlChars = %d, want 1", st.UpperControlChars)
	}
	if st.UpperPrintable != 2 {
		t.Fatalf("UpperPrintable = %d, want 2", st.UpperPrintable)
	}
	if st.Latin1Finnish != 2 {
		t.Fatalf("Latin1Finnish = %d, want 2", st.Latin1Finnish)
	}
}

func TestStatsLongestLine(t *testing.T) {
	st := collect(t, []byte("ab\ncdef\nx\n"))
	if st.LongestLine != 4 {
		t.Fatalf("LongestLine = %d, want 4", st.LongestLine)
	}
	// Wide runes count display columns, not bytes or runes.
	st = collect(t, []byte("日本\nab\n"))
	if st.LongestLine != 4 {
		t.Fatalf("LongestLine wide = %d, want 4", st.LongestLine)
	}
	// A final line without a newline still contributes to the width.
	st = collect(t, []byte("ab\nlongtail"))
	if st.LongestLine != 8 {
		t.Fatalf("LongestLine unterminated = %d, want 8", st.LongestLine)
	}
	if st.Lines != 1 {
		t.Fatalf("Lines = %d, want 1", st.Lines)
	}
}

func TestStatsChunkingDoesNotChangeCounts(t *testing.T) {
	input := []byte("päivää\r\nmaailma \n")
	input = append(input, 0x80, 0xc0, 0x80, 0xf5, 0x00)
	whole := collect(t, input)
	chunked, err := CollectStats(StatsRequest{
		Reader: iotest.OneByteReader(bytes.NewReader(input)),
	})
	if err != nil {
		t.Fatalf("collect chunked: %v", err)
	}
	if whole != chunked {
		t.Fatalf("chunked stats %+v differ from whole %+v", chunked, whole)
	}
}

func TestStatsNilReader(t *testing.T) {
	if _, err := CollectStats(StatsRequest{}); err == nil {
		t.Fatalf("expected error for nil Reader")
	}
}

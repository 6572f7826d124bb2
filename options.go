package anno

// Option configures annotation behavior.
type Option func(*annotateConfig)

type annotateConfig struct {
	bufferSize int
	marker     string
}

// WithBufferSize sets the working buffer capacity in bytes. Values below the
// minimum needed to hold a maximal UTF-8 sequence are clamped. Output is
// independent of the buffer size; small sizes mainly force the
// incomplete-sequence carry-over paths.
func WithBufferSize(n int) Option {
	return func(cfg *annotateConfig) {
		cfg.bufferSize = n
	}
}

// WithMarker sets the text written as the trailing-whitespace marker. The
// default is a single space, which the theme's highlight turns into a
// visible block before the line break.
func WithMarker(marker string) Option {
	return func(cfg *annotateConfig) {
		cfg.marker = marker
	}
}

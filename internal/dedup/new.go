package dedup

type implDeduper struct {
	opts Options
}

// New creates a Deduper with the given options. Zero-valued fields fall
// back to their defaults so callers can override selectively.
func New(opts Options) Deduper {
	def := DefaultOptions()
	if opts.PatternThreshold == 0 {
		opts.PatternThreshold = def.PatternThreshold
	}
	if opts.SentenceThreshold == 0 {
		opts.SentenceThreshold = def.SentenceThreshold
	}
	if opts.MaxPatternWindow == 0 {
		opts.MaxPatternWindow = def.MaxPatternWindow
	}
	if opts.MinPatternWindow == 0 {
		opts.MinPatternWindow = def.MinPatternWindow
	}
	if opts.MinContentWordLen == 0 {
		opts.MinContentWordLen = def.MinContentWordLen
	}
	if opts.FingerprintWidth == 0 {
		opts.FingerprintWidth = def.FingerprintWidth
	}

	return &implDeduper{opts: opts}
}

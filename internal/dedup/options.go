package dedup

// Options are the tunables of the deduplication pipeline. The zero
// value is not usable; start from DefaultOptions.
type Options struct {
	// PatternThreshold is the positional match ratio at which a block
	// counts as a repeat of the leading pattern.
	PatternThreshold float64
	// SentenceThreshold is the fingerprint overlap ratio at which a
	// sentence counts as a near-duplicate of an earlier one.
	SentenceThreshold float64
	// MaxPatternWindow and MinPatternWindow bound the candidate repeat
	// lengths, in words.
	MaxPatternWindow int
	MinPatternWindow int
	// MinContentWordLen is the minimum length of a word that counts as
	// a content word when fingerprinting sentences.
	MinContentWordLen int
	// FingerprintWidth is how many leading content words make up a
	// sentence fingerprint.
	FingerprintWidth int
}

// DefaultOptions returns the thresholds tuned against auto-generated
// caption tracks.
func DefaultOptions() Options {
	return Options{
		PatternThreshold:  0.85,
		SentenceThreshold: 0.8,
		MaxPatternWindow:  20,
		MinPatternWindow:  2,
		MinContentWordLen: 3,
		FingerprintWidth:  5,
	}
}

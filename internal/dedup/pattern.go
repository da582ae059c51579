package dedup

// minPatternStream is the stream length below which pattern
// elimination is skipped entirely.
const minPatternStream = 4

// collapsePatternRepeats removes contiguous repeated word patterns
// from the token stream. A single forward cursor tries candidate
// pattern lengths longest-first; when the next L tokens repeat in
// consecutive L-sized blocks (positional match ratio at or above the
// pattern threshold), the pattern is emitted once and the cursor jumps
// past the whole run. The greedy longest-first choice is deterministic
// but not proven optimal; it is kept for compatibility with the
// transcripts the thresholds were tuned on.
func (d *implDeduper) collapsePatternRepeats(tokens []string) []string {
	if len(tokens) < minPatternStream {
		return tokens
	}

	out := make([]string, 0, len(tokens))
	i := 0

	for i < len(tokens) {
		remaining := len(tokens) - i
		maxWindow := d.opts.MaxPatternWindow
		if half := remaining / 2; half < maxWindow {
			maxWindow = half
		}

		collapsed := false
		for window := maxWindow; window >= d.opts.MinPatternWindow; window-- {
			pattern := tokens[i : i+window]

			repeats := 0
			for j := i + window; j+window <= len(tokens); j += window {
				if positionalOverlap(pattern, tokens[j:j+window]) >= d.opts.PatternThreshold {
					repeats++
				} else {
					break
				}
			}

			if repeats >= 1 {
				out = append(out, pattern...)
				i += window * (repeats + 1)
				collapsed = true
				break
			}
		}

		if !collapsed {
			out = append(out, tokens[i])
			i++
		}
	}

	return out
}

package dedup

import (
	"regexp"
	"strings"
	"unicode"
)

// minSentenceContentWords is the number of content words below which a
// sentence is treated as a boundary fragment and dropped outright.
const minSentenceContentWords = 3

var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

// dropRepeatedSentences removes near-duplicate sentences, keeping the
// first occurrence. Each candidate is reduced to a fingerprint (its
// leading content words, lowercased) and compared positionally against
// the fingerprints of every sentence kept so far; a ratio at or above
// the sentence threshold drops it. Sentences with too few content
// words never make the kept set. Texts with fewer than two sentences
// bypass the stage unchanged.
func (d *implDeduper) dropRepeatedSentences(text string) string {
	sentences := splitSentences(text)
	if len(sentences) < 2 {
		return text
	}

	var kept []string
	var keptPrints [][]string

	for _, sentence := range sentences {
		words := d.contentWords(sentence)
		if len(words) < minSentenceContentWords {
			continue
		}

		fp := words
		if len(fp) > d.opts.FingerprintWidth {
			fp = fp[:d.opts.FingerprintWidth]
		}

		duplicate := false
		for _, earlier := range keptPrints {
			if positionalOverlap(fp, earlier) >= d.opts.SentenceThreshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		kept = append(kept, sentence)
		keptPrints = append(keptPrints, fp)
	}

	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ". ") + "."
}

// splitSentences breaks text on runs of sentence-terminal punctuation,
// discarding empty fragments.
func splitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceEndRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// contentWords lowercases and tokenizes a sentence, keeping only words
// long enough to carry meaning. Edge punctuation is trimmed so that
// comma-attached words still compare equal positionally.
func (d *implDeduper) contentWords(sentence string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(sentence)) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len(w) >= d.opts.MinContentWordLen {
			words = append(words, w)
		}
	}
	return words
}

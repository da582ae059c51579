package dedup

import (
	"regexp"
	"strings"
)

// parserState tracks where we are inside a timed caption block.
type parserState int

const (
	// expectBlockStart: between blocks, waiting for a cue number,
	// timing line, or bare text.
	expectBlockStart parserState = iota
	// expectTiming: a cue number was seen, the timing line must follow.
	expectTiming
	// collectText: inside a cue body, accumulating text lines.
	collectText
)

var (
	// timingLineRe matches cue timing ranges such as
	// "00:00:01.520 --> 00:00:04.000", with SRT comma millis and
	// optional cue settings after the second timestamp.
	timingLineRe = regexp.MustCompile(`^(?:\d{1,2}:)?\d{1,2}:\d{2}[.,]\d{1,3}\s*-->\s*(?:\d{1,2}:)?\d{1,2}:\d{2}[.,]\d{1,3}`)

	// headerLineRe matches format signatures and annotation keywords
	// that never carry caption text.
	headerLineRe = regexp.MustCompile(`^(WEBVTT|NOTE|STYLE|REGION)\b|^(Kind|Language):`)

	inlineTagRe  = regexp.MustCompile(`<[^>]*>`)
	bracketRe    = regexp.MustCompile(`\[[^\]]*\]`)
	parenRe      = regexp.MustCompile(`\([^)]*\)`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
)

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// parseCaptions reduces a raw caption document to its ordered content
// lines. Timing lines, cue numbers, headers, and blank lines are
// dropped; surviving text is stripped of markup, entities, and
// bracketed or parenthetical asides. Plain-text transcripts with no
// timing markup pass through the same stripping. Malformed blocks (a
// cue number with no timing line) are skipped, never an error.
func (d *implDeduper) parseCaptions(raw string) []string {
	var content []string
	state := expectBlockStart

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(strings.TrimRight(line, "\r"))

		switch state {
		case expectBlockStart:
			switch {
			case trimmed == "":
			case headerLineRe.MatchString(trimmed):
			case timingLineRe.MatchString(trimmed):
				state = collectText
			case isCueNumber(trimmed):
				state = expectTiming
			default:
				if text := cleanCaptionText(trimmed); text != "" {
					content = append(content, text)
				}
				state = collectText
			}

		case expectTiming:
			switch {
			case trimmed == "":
				// cue number with no timing line: malformed block
				state = expectBlockStart
			case timingLineRe.MatchString(trimmed):
				state = collectText
			case isCueNumber(trimmed):
				// renumbered cue, keep waiting for the timing line
			default:
				// text belonging to a malformed block is dropped
				// until the next blank line
			}

		case collectText:
			switch {
			case trimmed == "":
				state = expectBlockStart
			case timingLineRe.MatchString(trimmed):
				// consecutive cue without a separating blank line
			case isCueNumber(trimmed):
				state = expectTiming
			case headerLineRe.MatchString(trimmed):
			default:
				if text := cleanCaptionText(trimmed); text != "" {
					content = append(content, text)
				}
			}
		}
	}

	return content
}

// cleanCaptionText strips inline markup tags, decodes the five
// standard entities, and removes bracketed and parenthetical asides
// (sound effects, speaker labels).
func cleanCaptionText(line string) string {
	line = inlineTagRe.ReplaceAllString(line, "")
	line = entityReplacer.Replace(line)
	line = bracketRe.ReplaceAllString(line, "")
	line = parenRe.ReplaceAllString(line, "")
	line = multiSpaceRe.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}

func isCueNumber(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

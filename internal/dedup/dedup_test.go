package dedup

import (
	"strings"
	"testing"
)

const sampleVTT = `WEBVTT
Kind: captions
Language: en

00:00:00.000 --> 00:00:02.500
the market is up today.

00:00:01.500 --> 00:00:04.000
the market is up today.

00:00:03.000 --> 00:00:06.000
the market is up today. volatility remains high.
`

func TestCleanTripleRepeat(t *testing.T) {
	d := New(DefaultOptions())

	raw := "the market is up today. the market is up today. " +
		"the market is up today. volatility remains high."
	want := "the market is up today. volatility remains high."

	got := d.Clean(raw)
	if got.Text != want {
		t.Errorf("Clean() = %q, want %q", got.Text, want)
	}
}

func TestCleanSlidingWindowVTT(t *testing.T) {
	d := New(DefaultOptions())

	got := d.Clean(sampleVTT)
	want := "the market is up today. volatility remains high."
	if got.Text != want {
		t.Errorf("Clean() = %q, want %q", got.Text, want)
	}
}

func TestCleanPassThrough(t *testing.T) {
	d := New(DefaultOptions())

	raw := "the quick brown fox jumps over the lazy dog. pack my box with five dozen liquor jugs."
	got := d.Clean(raw)
	if got.Text != raw {
		t.Errorf("clean input was modified: got %q, want %q", got.Text, raw)
	}
}

func TestCleanIdempotent(t *testing.T) {
	d := New(DefaultOptions())

	docs := []string{
		sampleVTT,
		"the market is up today. the market is up today. volatility remains high.",
		"the quick brown fox jumps over the lazy dog. pack my box with five dozen liquor jugs.",
		"revenue grew sharply this quarter. revenue grew sharply last quarter.",
		"",
	}

	for _, doc := range docs {
		once := d.Clean(doc)
		twice := d.Clean(once.Text)
		if twice.Text != once.Text {
			t.Errorf("pipeline not idempotent for %q:\nonce:  %q\ntwice: %q", doc, once.Text, twice.Text)
		}
	}
}

func TestCleanNonGrowth(t *testing.T) {
	d := New(DefaultOptions())

	docs := []string{
		sampleVTT,
		"the market is up today. the market is up today. volatility remains high.",
		"the quick brown fox jumps over the lazy dog. pack my box with five dozen liquor jugs.",
		"go go go go go go go go.",
	}

	for _, doc := range docs {
		got := d.Clean(doc)
		if got.Stats.CleanedWords > got.Stats.OriginalWords {
			t.Errorf("word count grew for %q: %d -> %d", doc, got.Stats.OriginalWords, got.Stats.CleanedWords)
		}
		if got.Stats.CleanedChars > len(doc) {
			t.Errorf("char length grew for %q: %d -> %d", doc, len(doc), got.Stats.CleanedChars)
		}
	}
}

func TestCleanEmptyInput(t *testing.T) {
	d := New(DefaultOptions())

	for _, raw := range []string{"", "   ", "\n\n\t\n"} {
		got := d.Clean(raw)
		if got.Text != "" {
			t.Errorf("Clean(%q) = %q, want empty", raw, got.Text)
		}
		if got.Stats.CleanedWords != 0 || got.Stats.CleanedChars != 0 {
			t.Errorf("Clean(%q) stats = %+v, want zero cleaned counts", raw, got.Stats)
		}
	}
}

func TestCleanStats(t *testing.T) {
	d := New(DefaultOptions())

	raw := "the market is up today. the market is up today. volatility remains high."
	got := d.Clean(raw)

	if got.Stats.OriginalLines != 1 {
		t.Errorf("OriginalLines = %d, want 1", got.Stats.OriginalLines)
	}
	if got.Stats.OriginalWords != 13 {
		t.Errorf("OriginalWords = %d, want 13", got.Stats.OriginalWords)
	}
	if got.Stats.CleanedWords != 8 {
		t.Errorf("CleanedWords = %d, want 8", got.Stats.CleanedWords)
	}
	if got.Stats.CleanedChars != len(got.Text) {
		t.Errorf("CleanedChars = %d, want %d", got.Stats.CleanedChars, len(got.Text))
	}
}

func TestCleanNearDuplicateSentences(t *testing.T) {
	d := New(DefaultOptions())

	raw := "revenue grew sharply this quarter. revenue grew sharply last quarter."
	want := "revenue grew sharply this quarter."
	got := d.Clean(raw)
	if got.Text != want {
		t.Errorf("Clean() = %q, want %q", got.Text, want)
	}
}

func TestCleanShortFragmentDiscard(t *testing.T) {
	d := New(DefaultOptions())

	raw := "ok yes. the quick brown fox jumps. over the lazy dog today."
	got := d.Clean(raw)
	if strings.Contains(got.Text, "ok yes") {
		t.Errorf("short fragment survived: %q", got.Text)
	}
	if !strings.Contains(got.Text, "the quick brown fox jumps") {
		t.Errorf("content sentence lost: %q", got.Text)
	}
}

func TestCleanAdjacentDuplicates(t *testing.T) {
	d := New(DefaultOptions())

	// Three tokens: below the pattern stage minimum, and a single
	// sentence fragment, so only the adjacent collapser acts.
	got := d.Clean("the The cat")
	if got.Text != "the cat" {
		t.Errorf("Clean() = %q, want %q", got.Text, "the cat")
	}
}

func TestCleanOrderPreserved(t *testing.T) {
	d := New(DefaultOptions())

	raw := "first topic starts here. second topic follows after. third topic closes out."
	got := d.Clean(raw)
	first := strings.Index(got.Text, "first")
	second := strings.Index(got.Text, "second")
	third := strings.Index(got.Text, "third")
	if first == -1 || second == -1 || third == -1 || !(first < second && second < third) {
		t.Errorf("sentence order not preserved: %q", got.Text)
	}
}

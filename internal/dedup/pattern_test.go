package dedup

import (
	"reflect"
	"strings"
	"testing"
)

func TestCollapsePatternRepeats(t *testing.T) {
	d := New(DefaultOptions()).(*implDeduper)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name: "triple sentence repeat collapses to one",
			input: "the market is up today. the market is up today. " +
				"the market is up today. volatility remains high.",
			want: "the market is up today. volatility remains high.",
		},
		{
			name:  "alternating pair collapses",
			input: "a b a b a b",
			want:  "a b",
		},
		{
			name:  "longest matching pattern wins",
			input: "a b a b a b a b c d",
			want:  "a b a b c d",
		},
		{
			name:  "fuzzy repeat above threshold collapses",
			input: "so today we will look at the so today we will look at your",
			want:  "so today we will look at the",
		},
		{
			name:  "no repeats pass through",
			input: "one two three four five six",
			want:  "one two three four five six",
		},
		{
			name:  "stream shorter than four tokens unchanged",
			input: "go go go",
			want:  "go go go",
		},
		{
			name:  "empty stream",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.collapsePatternRepeats(strings.Fields(tt.input))
			want := strings.Fields(tt.want)
			if len(got) == 0 && len(want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("collapsePatternRepeats() = %q, want %q", got, want)
			}
		})
	}
}

func TestCollapsePatternRepeatsNonGrowth(t *testing.T) {
	d := New(DefaultOptions()).(*implDeduper)

	inputs := []string{
		"the market is up today. the market is up today. volatility remains high.",
		"a b a b a b a b a b a b",
		"unique words never repeat anywhere in this stream at all",
	}

	for _, input := range inputs {
		tokens := strings.Fields(input)
		got := d.collapsePatternRepeats(tokens)
		if len(got) > len(tokens) {
			t.Errorf("output grew: %d tokens in, %d out for %q", len(tokens), len(got), input)
		}
	}
}

func TestCollapsePatternRepeatsExactThreshold(t *testing.T) {
	// With the threshold raised to 1.0 the fuzzy repeat must survive.
	opts := DefaultOptions()
	opts.PatternThreshold = 1.0
	d := New(opts).(*implDeduper)

	input := strings.Fields("so today we will look at the so today we will look at your")
	got := d.collapsePatternRepeats(input)
	if !reflect.DeepEqual(got, input) {
		t.Errorf("fuzzy repeat collapsed at threshold 1.0: got %q", got)
	}
}

package dedup

// positionalOverlap returns the fraction of same-index token matches
// between a and b, normalized by the longer sequence's length. Two
// empty sequences are identical by definition.
func positionalOverlap(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}

	matches := 0
	for i := 0; i < shorter; i++ {
		if a[i] == b[i] {
			matches++
		}
	}

	return float64(matches) / float64(longer)
}

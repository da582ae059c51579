package dedup

import "strings"

// collapseAdjacentDuplicates drops any token that is case-insensitive
// equal to the previously retained token. The first token is always
// kept.
func collapseAdjacentDuplicates(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		if len(out) > 0 && strings.EqualFold(out[len(out)-1], tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

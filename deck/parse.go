package deck

import "strings"

// normalizeToken trims surrounding space, upper-cases, and rewrites
// "10" to the canonical "T" rank byte.
func normalizeToken(token string) string {
	s := strings.ToUpper(strings.TrimSpace(token))
	return strings.ReplaceAll(s, "10", "T")
}

// ParseStack parses free-form deck text into a Stack.
//
// Each line is split on commas when the line contains one, otherwise on
// whitespace. Every token is normalized (trim, upper-case, "10"→"T")
// and kept only if it is exactly two characters, a valid rank followed
// by a valid suit. Malformed tokens are dropped silently: pasted decks
// commonly carry headers, counts, and stray punctuation, and tolerating
// them is part of the contract.
//
// ParseStack never fails; an input with no recognizable cards yields an
// empty Stack, which the verifiers reject before any window arithmetic.
func ParseStack(text string) Stack {
	var stack Stack
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var tokens []string
		if strings.Contains(line, ",") {
			tokens = strings.Split(line, ",")
		} else {
			tokens = strings.Fields(line)
		}
		for _, token := range tokens {
			card, err := ParseCard(token)
			if err != nil {
				continue // tolerated noise
			}
			stack = append(stack, card)
		}
	}
	return stack
}

package classifier

import (
	"fmt"
	"strings"
)

// The catalog reproduces the classic sequence definitions verbatim.
// Names follow the historical shorthand: a rank-window name like "4T"
// means ranks 4 through Ten; the M-prefixed entries and PR/FI/LU are
// hand-designed special sets; EV/ODD are the even and odd ranks.
// K6's literal definition is kept as published (it is not the K..6
// window its name suggests).
var catalog = []Classifier{
	// Major rank windows and the shared suit pairs, in deck-test order.
	rankClassifier("A6", "A23456"),
	rankClassifier("A7", "A234567"),
	rankClassifier("27", "234567"),
	rankClassifier("28", "2345678"),
	rankClassifier("38", "345678"),
	rankClassifier("39", "3456789"),
	rankClassifier("49", "456789"),
	rankClassifier("4T", "456789T"),
	rankClassifier("5T", "56789T"),
	rankClassifier("5J", "56789TJ"),
	rankClassifier("6J", "6789TJ"),
	rankClassifier("6Q", "6789TJQ"),
	rankClassifier("7Q", "789TJQ"),
	rankClassifier("EV", "2468TQ"),
	suitClassifier("RED", "HD"),
	suitClassifier("CD", "CD"),
	suitClassifier("HC", "HC"),
	// Special hand-designed sequences, deck test only.
	rankClassifier("M34", "34689Q"),
	rankClassifier("M46", "4568TQ"),
	rankClassifier("M47", "45678TQ"),
	rankClassifier("M58", "5678TQ"),
	rankClassifier("M59", "56789TQ"),
	rankClassifier("M6Q", "6789TQ"),
	rankClassifier("PR", "2357JK"),
	rankClassifier("FI", "A2358K"),
	rankClassifier("LU", "A2347J"),
	// Minor rank windows and remaining suit pairs, table design only.
	rankClassifier("7K", "789TJQK"),
	rankClassifier("8K", "89TJQK"),
	rankClassifier("8A", "89TJQKA"),
	rankClassifier("9A", "9TJQKA"),
	rankClassifier("92", "9TJQKA2"),
	rankClassifier("T2", "TJQKA2"),
	rankClassifier("T3", "TJQKA23"),
	rankClassifier("J3", "JQKA23"),
	rankClassifier("J4", "JQKA234"),
	rankClassifier("Q4", "QKA234"),
	rankClassifier("Q5", "QKA2345"),
	rankClassifier("K5", "KA2345"),
	rankClassifier("K6", "KA2579JK"),
	rankClassifier("ODD", "A3579JK"),
	suitClassifier("SC", "SC"),
	suitClassifier("SH", "SH"),
	suitClassifier("SD", "SD"),
}

// deckTestCount bounds the leading catalog slice swept by the bracelet
// deck test (the major windows, shared suit pairs, and specials).
const deckTestCount = 26

// byName indexes the catalog for Lookup.
var byName = func() map[string]Classifier {
	m := make(map[string]Classifier, len(catalog))
	for _, c := range catalog {
		m[c.name] = c
	}
	return m
}()

// Catalog returns the full fixed catalog in canonical order. The
// returned slice is a copy; the catalog itself never changes.
func Catalog() []Classifier {
	out := make([]Classifier, len(catalog))
	copy(out, catalog)
	return out
}

// DeckTest returns the ordered classifiers swept by the bracelet deck
// test, in the order their results are reported.
func DeckTest() []Classifier {
	out := make([]Classifier, deckTestCount)
	copy(out, catalog[:deckTestCount])
	return out
}

// Lookup resolves a catalog name case-insensitively.
// Returns ErrUnknownClassifier for any name not in the catalog.
func Lookup(name string) (Classifier, error) {
	c, ok := byName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return Classifier{}, fmt.Errorf("%w: %q", ErrUnknownClassifier, name)
	}
	return c, nil
}

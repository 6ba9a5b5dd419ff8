package classifier

import (
	"errors"
	"fmt"

	"github.com/stacklab/bracelet/deck"
)

// ErrUnknownClassifier is returned by Lookup for a name absent from
// the catalog.
// Usage: if errors.Is(err, classifier.ErrUnknownClassifier) { ... }.
var ErrUnknownClassifier = errors.New("classifier: unknown classifier name")

// RankSet is a bitmask over the thirteen ranks in canonical order
// (bit 0 = Ace … bit 12 = King).
type RankSet uint16

// Has reports whether rank r is a member of the set. Invalid ranks are
// members of no set.
func (rs RankSet) Has(r deck.Rank) bool {
	i := r.Index()
	return i >= 0 && rs&(1<<uint(i)) != 0
}

// SuitSet is a bitmask over the four suits in canonical order
// (bit 0 = Spades … bit 3 = Diamonds).
type SuitSet uint8

// Has reports whether suit s is a member of the set.
func (ss SuitSet) Has(s deck.Suit) bool {
	i := s.Index()
	return i >= 0 && ss&(1<<uint(i)) != 0
}

// Kind distinguishes the two classifier families.
type Kind uint8

const (
	// RankKind classifies by rank membership.
	RankKind Kind = iota
	// SuitKind classifies by suit membership.
	SuitKind
)

// Classifier is a named, stateless card→bit rule backed by a literal
// rank or suit set. The zero Classifier matches nothing; real values
// come from Catalog, DeckTest, or Lookup.
type Classifier struct {
	name  string
	kind  Kind
	ranks RankSet
	suits SuitSet
}

// Name returns the classifier's short upper-case catalog name.
func (c Classifier) Name() string { return c.name }

// Kind returns the classifier family.
func (c Classifier) Kind() Kind { return c.kind }

// Matches reports whether the card satisfies the classifier.
func (c Classifier) Matches(card deck.Card) bool {
	if c.kind == SuitKind {
		return c.suits.Has(card.Suit)
	}
	return c.ranks.Has(card.Rank)
}

// Bit returns Matches as a code bit: 1 when the card satisfies the
// classifier, 0 otherwise.
func (c Classifier) Bit(card deck.Card) uint8 {
	if c.Matches(card) {
		return 1
	}
	return 0
}

// MatchesRank evaluates the classifier against a bare rank, the
// rank-only enumeration path used by the evaluation table. A suit
// classifier sees no suit here and reports false for every rank,
// matching the original tables.
func (c Classifier) MatchesRank(r deck.Rank) bool {
	return c.kind == RankKind && c.ranks.Has(r)
}

// SuitOf is the quaternary classifier used by the suitability test:
// the card's own suit symbol.
func SuitOf(card deck.Card) deck.Suit { return card.Suit }

// ranksOf builds a RankSet from a string of canonical rank bytes.
// Catalog data is fixed, so an invalid byte is a programming error and
// panics at package init.
func ranksOf(s string) RankSet {
	var rs RankSet
	for i := 0; i < len(s); i++ {
		idx := deck.Rank(s[i]).Index()
		if idx < 0 {
			panic(fmt.Sprintf("classifier: invalid rank %q in catalog literal %q", s[i], s))
		}
		rs |= 1 << uint(idx)
	}
	return rs
}

// suitsOf builds a SuitSet from a string of canonical suit bytes,
// panicking at package init on invalid data.
func suitsOf(s string) SuitSet {
	var ss SuitSet
	for i := 0; i < len(s); i++ {
		idx := deck.Suit(s[i]).Index()
		if idx < 0 {
			panic(fmt.Sprintf("classifier: invalid suit %q in catalog literal %q", s[i], s))
		}
		ss |= 1 << uint(idx)
	}
	return ss
}

// rankClassifier constructs a catalog entry for a literal rank set.
func rankClassifier(name, ranks string) Classifier {
	return Classifier{name: name, kind: RankKind, ranks: ranksOf(ranks)}
}

// suitClassifier constructs a catalog entry for a literal suit set.
func suitClassifier(name, suits string) Classifier {
	return Classifier{name: name, kind: SuitKind, suits: suitsOf(suits)}
}

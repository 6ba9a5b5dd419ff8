package deck

import (
	"errors"
	"fmt"
)

// ErrBadCard is returned by ParseCard when a token does not normalize
// to a valid two-character card.
// Usage: if errors.Is(err, deck.ErrBadCard) { /* reject the token */ }.
var ErrBadCard = errors.New("deck: malformed card token")

// Rank is the card value, stored as its canonical upper-case byte:
// 'A', '2'..'9', 'T', 'J', 'Q', 'K'.
type Rank byte

// The thirteen ranks in canonical order.
const (
	Ace   Rank = 'A'
	Two   Rank = '2'
	Three Rank = '3'
	Four  Rank = '4'
	Five  Rank = '5'
	Six   Rank = '6'
	Seven Rank = '7'
	Eight Rank = '8'
	Nine  Rank = '9'
	Ten   Rank = 'T'
	Jack  Rank = 'J'
	Queen Rank = 'Q'
	King  Rank = 'K'
)

// Ranks lists every rank in canonical order, Ace low.
var Ranks = [13]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// rankNames maps each rank index to its full display name, used by the
// evaluation table.
var rankNames = [13]string{
	"ACE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN",
	"EIGHT", "NINE", "TEN", "JACK", "QUEEN", "KING",
}

// Index returns the rank's position in canonical order (Ace=0 … King=12),
// or -1 when the rank byte is not one of the thirteen valid values.
func (r Rank) Index() int {
	for i, v := range Ranks {
		if v == r {
			return i
		}
	}
	return -1
}

// Valid reports whether r is one of the thirteen canonical ranks.
func (r Rank) Valid() bool { return r.Index() >= 0 }

// Name returns the rank's full upper-case name ("ACE" … "KING"),
// or "?" for an invalid rank.
func (r Rank) Name() string {
	if i := r.Index(); i >= 0 {
		return rankNames[i]
	}
	return "?"
}

// String returns the rank's single-character canonical form.
func (r Rank) String() string { return string(r) }

// Suit is the card suit, stored as its canonical upper-case byte:
// 'S', 'H', 'C', 'D'.
type Suit byte

// The four suits in canonical order.
const (
	Spades   Suit = 'S'
	Hearts   Suit = 'H'
	Clubs    Suit = 'C'
	Diamonds Suit = 'D'
)

// Suits lists every suit in canonical order.
var Suits = [4]Suit{Spades, Hearts, Clubs, Diamonds}

// Index returns the suit's position in canonical order (Spades=0 …
// Diamonds=3), or -1 for an invalid suit byte.
func (s Suit) Index() int {
	for i, v := range Suits {
		if v == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the four canonical suits.
func (s Suit) Valid() bool { return s.Index() >= 0 }

// Red reports whether the suit prints red (Hearts or Diamonds).
func (s Suit) Red() bool { return s == Hearts || s == Diamonds }

// String returns the suit's single-character canonical form.
func (s Suit) String() string { return string(s) }

// Card is an immutable (rank, suit) pair. The zero Card is invalid.
// Card is comparable; equality and map-key semantics follow the
// canonical two-character form.
type Card struct {
	Rank Rank
	Suit Suit
}

// Valid reports whether both the rank and the suit are canonical.
func (c Card) Valid() bool { return c.Rank.Valid() && c.Suit.Valid() }

// String returns the canonical two-character form, rank then suit.
func (c Card) String() string { return string([]byte{byte(c.Rank), byte(c.Suit)}) }

// ParseCard parses a single card token strictly. The token is trimmed,
// upper-cased, and "10" is rewritten to "T" before validation; anything
// that is not exactly a valid rank byte followed by a valid suit byte
// yields ErrBadCard wrapped with the offending token.
func ParseCard(token string) (Card, error) {
	s := normalizeToken(token)
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, token)
	}
	c := Card{Rank: Rank(s[0]), Suit: Suit(s[1])}
	if !c.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, token)
	}
	return c, nil
}

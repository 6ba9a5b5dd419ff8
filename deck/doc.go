// Package deck provides the playing-card primitives shared by every
// verifier in this module: Rank, Suit, Card, and the cyclic Stack.
//
// What
//
//   - Rank and Suit are single-byte enumerations over the canonical
//     alphabets A 2 3 4 5 6 7 8 9 T J Q K and S H C D.
//   - Card is an immutable (Rank, Suit) pair whose canonical text form
//     is exactly two characters, rank then suit ("QH", "TD").
//   - Stack is an ordered card sequence interpreted cyclically:
//     Stack.At performs modulo-length indexing, so windows that run
//     past the last card wrap to the first.
//
// Parsing
//
//	Two entry points with different strictness:
//	  - ParseCard: one token, strict; returns ErrBadCard on anything
//	    that does not normalize to a valid two-character card.
//	  - ParseStack: free-form pasted text, tolerant; splits each line
//	    on commas when present (else whitespace), upper-cases tokens,
//	    rewrites "10" to "T", and silently drops malformed tokens.
//	    Pasted decks routinely carry headers, counts, and stray
//	    punctuation, so dropping is deliberate, not an error.
//
// Determinism
//
//	Cards and Stacks are value types constructed once from input text
//	and never mutated afterwards. Card is comparable and safe to use
//	as a map key.
//
// Complexity
//
//   - ParseStack: O(len(text))
//   - Stack.At:   O(1)
package deck

package deck

import "strings"

// Stack is an ordered card sequence interpreted cyclically: index
// arithmetic is modulo the stack length. A Stack is built once from
// input text and never mutated afterwards.
type Stack []Card

// Len returns the number of cards in the stack.
func (s Stack) Len() int { return len(s) }

// At returns the card at cyclic position i: indices past the end wrap
// to the beginning, and negative indices wrap backwards. At panics on
// an empty stack, so callers must guard Len() first.
func (s Stack) At(i int) Card {
	n := len(s)
	i %= n
	if i < 0 {
		i += n
	}
	return s[i]
}

// String returns the stack in canonical comma-separated form,
// round-trippable through ParseStack.
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

package stacks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stacklab/bracelet/deck"
)

// ErrUnknownStack is returned by ByName for a name with no reference
// stack.
var ErrUnknownStack = errors.New("stacks: unknown stack name")

// referenceSize is the length every reference stack must have.
const referenceSize = 52

// Red is the red-stack arrangement drilled by the color trainer.
var Red = mustStack(`
	AD, JC, 10D, 4D, 5H, 8S, 6C, 2D,
	KC, KD, QD, 8D, QH, 8C, 5D, 7H,
	JS, QC, JD, 7D, 10H, 3C, 9H, 2C,
	6H, 10S, 9C, 6D, 8H, QS, AH, AS,
	2S, 6S, AC, 4H, 5S, KS, 3H, 4S,
	9S, 7C, 3D, 2H, 3S, 7S, 4C, JH,
	5C, KH, 10C, 9D`)

// Cherry is the cherry-stack arrangement drilled by the color trainer.
var Cherry = mustStack(`
	9H, 5S, 10H, 8C, 2D, 4C, 7C, KC,
	KD, AH, 2H, 4H, 7H, AD, QS, 3C,
	9S, 9C, 5D, 10C, 7D, AS, QD, 3H,
	5H, 4D, 6S, QH, 10S, 7S, KH, KS,
	AC, 2C, JS, 6C, QC, 10D, 8H, 2S,
	JD, 8D, JH, 8S, JC, 6H, 3D, 5C,
	4S, 6D, 3S, 9D`)

// Sample is the documented example deck from the bracelet-test usage
// text; it passes RED, CD, and HC plus the suitability test.
var Sample = mustStack(`
	QH, 7C, 8S, 2D, 3C, AH, 5S, QD, QS, 2C, 6S, KS, 3S,
	KD, 7D, 9D, 5C, 2S, AC, 6C, 5H, 8C, 7H, 10H, 4D, 8D,
	KH, 6D, QC, 5D, 7S, AD, 2H, JC, KC, 10D, 4C, 10C, JS,
	4H, 10S, 4S, JH, 3D, AS, 9H, 3H, 6H, 9C, JD, 8H, 9S`)

// ByName resolves a trainer stack name ("red" or "cherry")
// case-insensitively. The returned stack aliases the package data;
// callers must not mutate it.
func ByName(name string) (deck.Stack, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "red":
		return Red, nil
	case "cherry":
		return Cherry, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStack, name)
	}
}

// mustStack parses a reference stack literal, panicking at init when
// the data does not hold exactly 52 valid cards.
func mustStack(text string) deck.Stack {
	s := deck.ParseStack(text)
	if s.Len() != referenceSize {
		panic(fmt.Sprintf("stacks: reference stack has %d cards, want %d", s.Len(), referenceSize))
	}
	return s
}

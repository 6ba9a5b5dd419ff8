// Package bracelet option and result definitions for the cyclic
// window-code verifiers.
package bracelet

import (
	"errors"
	"fmt"
)

// Sentinel errors for verification.
var (
	// ErrStackTooSmall is returned when the stack holds fewer than two
	// cards; window arithmetic is meaningless below that.
	ErrStackTooSmall = errors.New("bracelet: stack holds fewer than two cards")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bracelet: invalid option supplied")
)

// Option configures verification via functional arguments. An invalid
// value (e.g. a negative window length) is recorded internally and
// surfaced as ErrOptionViolation when the verifier is invoked.
type Option func(*Options)

// Options holds the verifier parameters.
type Options struct {
	// ReportAll, when true, scans past the first duplicate and records
	// every collision before returning. When false the scan stops at
	// the first duplicate (fast path).
	ReportAll bool

	// WindowLength, if > 0, overrides the window length derived from
	// the stack size. 0 keeps the derived default.
	WindowLength int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the defaults: first-failure
// scanning and the derived window length.
func DefaultOptions() Options {
	return Options{
		ReportAll:    false,
		WindowLength: 0,
		err:          nil,
	}
}

// WithReportAll toggles exhaustive collision collection.
func WithReportAll(v bool) Option {
	return func(o *Options) { o.ReportAll = v }
}

// WithWindowLength overrides the derived window length.
//
//	k > 0:  use k code symbols per window
//	k == 0: explicit derived default
//	k < 0:  invalid option → ErrOptionViolation
func WithWindowLength(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: WindowLength cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.WindowLength = k
	}
}

// Collision records one duplicated window code. Indices are 1-based
// cyclic start positions, the numbering used in every report since the
// original tooling.
type Collision struct {
	// Code is the display form of the colliding code: two octal digits
	// for binary windows, the suit letters for suit windows.
	Code string

	// FirstIndex is the start position that produced the code first.
	FirstIndex int

	// DupIndex is the later start position that produced it again.
	DupIndex int
}

// Result is the outcome of verifying one classifier (or the suit code)
// against one stack.
type Result struct {
	// Name is the classifier's catalog name, or "SUIT" for VerifySuits.
	Name string

	// WindowLength is the window length the scan used.
	WindowLength int

	// Unique reports the bracelet property: all n window codes distinct.
	Unique bool

	// Collisions lists the duplicates found. With the default
	// first-failure mode it holds at most one entry; with
	// WithReportAll(true) it holds every duplicate in scan order.
	Collisions []Collision
}

// DeckReport is the consolidated outcome of VerifyDeck: one Result per
// deck-test classifier, in catalog order, plus the suitability result.
type DeckReport struct {
	// CardCount is the verified stack's length.
	CardCount int

	// Results holds the per-classifier outcomes in deck-test order.
	Results []Result

	// Suit is the quaternary suitability outcome.
	Suit Result
}

// Passing returns the names of the classifiers whose bracelet property
// holds, in report order.
func (r *DeckReport) Passing() []string {
	var names []string
	for _, res := range r.Results {
		if res.Unique {
			names = append(names, res.Name)
		}
	}
	return names
}

package bracelet

import (
	"fmt"

	"github.com/stacklab/bracelet/classifier"
	"github.com/stacklab/bracelet/deck"
)

// suitResultName labels the quaternary suitability Result.
const suitResultName = "SUIT"

// CodeLength returns the binary window length for a stack of n cards:
// the smallest k such that 2^k ≥ n. CodeLength(52) = 6, CodeLength(64)
// = 6, CodeLength(65) = 7. n ≤ 1 yields 0.
func CodeLength(n int) int {
	k := 0
	for x := n - 1; x > 0; x >>= 1 {
		k++
	}
	return k
}

// SuitCodeLength returns the suit window length for a stack of n
// cards: CodeLength(n) rounded up to the next even integer, then
// halved. Each suit symbol encodes one of four values — two bits — so
// k/2 suit symbols span the same address space as k binary symbols.
// SuitCodeLength(52) = 3.
func SuitCodeLength(n int) int {
	k := CodeLength(n)
	if k%2 != 0 {
		k++
	}
	return k / 2
}

// Code is a binary window code: the classifier bits of length
// consecutive cards packed into an integer, most significant bit from
// the first card of the window.
type Code uint64

// Octal renders the code as two octal digits (code>>3, code&7), the
// traditional display form. The rendering is injective, so octal
// strings collide exactly when the underlying codes do.
func (c Code) Octal() string {
	return fmt.Sprintf("%d%d", c>>3, c&7)
}

// WindowCode assembles the binary code for the window of length cards
// starting at cyclic offset start. Indices wrap modulo the stack
// length; the first card of the window contributes the most
// significant bit.
func WindowCode(s deck.Stack, start, length int, c classifier.Classifier) Code {
	var code Code
	for i := start; i < start+length; i++ {
		code = code<<1 | Code(c.Bit(s.At(i)))
	}
	return code
}

// SuitWindow returns the concatenated suit letters of the window of
// length cards starting at cyclic offset start.
func SuitWindow(s deck.Stack, start, length int) string {
	buf := make([]byte, length)
	for j := 0; j < length; j++ {
		buf[j] = byte(s.At(start + j).Suit)
	}
	return string(buf)
}

// Verify scans every cyclic start offset of s under classifier c and
// reports whether all n window codes are pairwise distinct.
//
// One full revolution — n windows — is exhaustive because windows
// wrap; the scan never doubles the cycle. With the default options the
// scan stops at the first duplicate; WithReportAll(true) records every
// collision before returning.
//
// Returns ErrStackTooSmall for stacks of fewer than two cards and
// ErrOptionViolation for invalid options.
func Verify(s deck.Stack, c classifier.Classifier, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	n := s.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrStackTooSmall, n)
	}
	k := o.WindowLength
	if k == 0 {
		k = CodeLength(n)
	}

	res := &Result{Name: c.Name(), WindowLength: k, Unique: true}
	seen := make(map[Code]int, n)
	for i := 0; i < n; i++ {
		code := WindowCode(s, i, k, c)
		first, dup := seen[code]
		if !dup {
			seen[code] = i
			continue
		}
		res.Unique = false
		res.Collisions = append(res.Collisions, Collision{
			Code:       code.Octal(),
			FirstIndex: first + 1,
			DupIndex:   i + 1,
		})
		if !o.ReportAll {
			break
		}
	}
	return res, nil
}

// VerifySuits runs the quaternary specialization: window codes are the
// concatenated suit letters, the window length is SuitCodeLength(n),
// and the scan runs exactly once rather than once per classifier.
// Options and errors behave as in Verify.
func VerifySuits(s deck.Stack, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	n := s.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrStackTooSmall, n)
	}
	k := o.WindowLength
	if k == 0 {
		k = SuitCodeLength(n)
	}

	res := &Result{Name: suitResultName, WindowLength: k, Unique: true}
	seen := make(map[string]int, n)
	for i := 0; i < n; i++ {
		code := SuitWindow(s, i, k)
		first, dup := seen[code]
		if !dup {
			seen[code] = i
			continue
		}
		res.Unique = false
		res.Collisions = append(res.Collisions, Collision{
			Code:       code,
			FirstIndex: first + 1,
			DupIndex:   i + 1,
		})
		if !o.ReportAll {
			break
		}
	}
	return res, nil
}

// VerifyDeck sweeps every deck-test classifier over s, then runs the
// suit test, and returns the consolidated report. Results appear in
// catalog order. Cost is O(n) per classifier, O(n·|deck-test catalog|)
// overall; the options apply to every scan in the sweep.
func VerifyDeck(s deck.Stack, opts ...Option) (*DeckReport, error) {
	if _, err := buildOptions(opts); err != nil {
		return nil, err
	}
	n := s.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrStackTooSmall, n)
	}

	cls := classifier.DeckTest()
	report := &DeckReport{
		CardCount: n,
		Results:   make([]Result, 0, len(cls)),
	}
	for _, c := range cls {
		res, err := Verify(s, c, opts...)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, *res)
	}
	suit, err := VerifySuits(s, opts...)
	if err != nil {
		return nil, err
	}
	report.Suit = *suit
	return report, nil
}

// buildOptions applies opts over the defaults and surfaces any
// recorded option error.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

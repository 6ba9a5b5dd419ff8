// Package bracelet verifies the bracelet property of cyclic card
// stacks: whether every fixed-length window of classifier bits, read
// at every cyclic offset, yields a code unique among all offsets.
//
// What
//
//   - CodeLength / SuitCodeLength derive the window length from the
//     stack size: the binary window is the smallest k with 2^k ≥ n,
//     and the suit window halves that after rounding up to even
//     (each suit symbol carries two bits of address space).
//   - WindowCode assembles the k-bit code for one window, most
//     significant bit from the first card; SuitWindow concatenates the
//     k suit letters instead.
//   - Verify scans all n start offsets for one classifier and reports
//     whether the n codes are pairwise distinct, optionally collecting
//     every collision instead of stopping at the first.
//   - VerifySuits is the quaternary specialization, run once.
//   - VerifyDeck sweeps the whole deck-test classifier set plus the
//     suit test and returns a consolidated report.
//
// Why
//
//	A stack with the bracelet property under a classifier lets a
//	performer deduce the exact cyclic position from the classifications
//	of a few consecutive cards. Verification is the structural
//	self-test run whenever a stack is designed or transcribed.
//
// Determinism
//
//	One full revolution of the cycle — exactly n windows — is both
//	sufficient and exhaustive, because windows wrap. Repeated calls
//	with the same stack and classifier return the same verdict and the
//	same collision list. There is no concurrency and no I/O: every
//	verification is a bounded synchronous scan.
//
// Complexity (n = stack length, k = window length)
//
//   - Verify:     O(n·k) time, O(n) memory for the seen-code map
//   - VerifyDeck: O(n·k·|deck-test catalog|) time
//
// Usage
//
//	res, err := bracelet.Verify(stack, cls)
//	if err != nil {
//	    // ErrStackTooSmall or ErrOptionViolation
//	}
//	if res.Unique {
//	    fmt.Printf("%s sequence found\n", res.Name)
//	}
//
//	// Collect every collision instead of stopping at the first:
//	res, err = bracelet.Verify(stack, cls, bracelet.WithReportAll(true))
//
// Options
//
//   - WithReportAll(v):     scan past the first duplicate and record
//     every collision (default: stop at the first).
//   - WithWindowLength(k):  override the derived window length (k ≥ 1;
//     0 restores the derived default).
//
// Errors
//
//   - ErrStackTooSmall   if the stack holds fewer than two cards.
//   - ErrOptionViolation if an option value is invalid.
package bracelet

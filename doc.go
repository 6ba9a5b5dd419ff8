// Package bracelet is a toolkit for verifying the combinatorial
// structure of memorized playing-card stacks — from card parsing
// primitives to window-code verification and classifier design tables.
//
// What does it do?
//
//	A cyclic arrangement of 52 cards has the *bracelet property* under a
//	classifier when every run of k consecutive cards, read at every
//	cyclic offset, produces a window code seen at no other offset.
//	A performer who knows the classification of a few consecutive cards
//	can then name the exact position in the stack. This module brings
//	together:
//		• deck:       Card/Stack primitives and tolerant text parsing
//		• classifier: the fixed catalog of named rank/suit classifiers
//		• bracelet:   cyclic window coding + uniqueness verification
//		• evaltable:  the 16-row rank evaluation table for classifier design
//		• stacks:     the fixed reference stacks (Red, Cherry, Sample)
//
// Why use it?
//
//   - Deterministic – every verification is a bounded O(n) scan
//   - Faithful – reproduces the classic catalog and report formats exactly
//   - Pure library core – the cmd/ binaries are thin front-ends
//
// The binaries under cmd/ cover the operational surface: bracelet-test
// checks a pasted deck, eval-table prints a classifier design table,
// and stack-trainer drills suit-color position recall.
package bracelet

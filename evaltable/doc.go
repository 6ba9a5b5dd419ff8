// Package evaltable builds the 16-row rank evaluation table used to
// design new classifiers — the structural inverse of the bracelet
// verifier.
//
// What
//
//	Given exactly four distinct classifier names, the table enumerates
//	all 16 four-bit polarity patterns (most significant bit = first
//	name) and lists, for each pattern, the ranks that satisfy every
//	classifier with exactly that polarity: bit 1 demands membership,
//	bit 0 demands non-membership. A pattern no rank satisfies renders
//	as NONE. The table consumes only the classifier catalog, never a
//	card stack.
//
// Suit classifiers
//
//	The enumeration varies only the rank, so a suit classifier's bit is
//	rank-independent: it evaluates false for every rank (see
//	classifier.MatchesRank), making any pattern that demands its bit be
//	1 trivially NONE. This mirrors the original tables; it is a known
//	limitation of the rank-only enumeration, pinned by tests rather
//	than redefined.
//
// Complexity
//
//	O(16·13·4) — constant; the table is deterministic data.
//
// Errors
//
//   - ErrCodeCount                 if not exactly four names are given.
//   - ErrDuplicateCode             if any name repeats.
//   - classifier.ErrUnknownClassifier if a name is not in the catalog.
package evaltable

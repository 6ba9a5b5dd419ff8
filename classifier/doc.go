// Package classifier holds the fixed catalog of named card classifiers
// used to build window codes.
//
// What
//
//	A Classifier maps a card to a single bit. Two families exist:
//	  - rank classifiers: the bit is 1 iff the card's rank lies in the
//	    classifier's literal rank set (e.g. A6 = {A,2,3,4,5,6});
//	  - suit classifiers: the bit is 1 iff the card's suit lies in the
//	    classifier's two-suit set (e.g. RED = {H,D}).
//	The quaternary "classifier" used by the suitability test is the
//	suit itself, exposed as SuitOf.
//
// Catalog
//
//	The catalog is literal data, not derived: each name carries its own
//	explicitly enumerated set, and there is no general rule connecting
//	a name to its set beyond that definition. Nothing can be added at
//	run time; Catalog returns the fixed ordered list and Lookup resolves
//	a single name case-insensitively. DeckTest returns the ordered
//	subset swept by the bracelet deck test.
//
// Rank-only evaluation
//
//	MatchesRank evaluates a classifier against a bare rank, the path
//	the evaluation table uses. For a suit classifier the rank carries
//	no suit information, so MatchesRank reports false for every rank —
//	the historical behavior of the original tables, preserved here
//	rather than redefined. See the evaltable package for the
//	consequence.
package classifier

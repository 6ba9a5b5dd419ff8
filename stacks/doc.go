// Package stacks holds the fixed reference stacks used by the trainer
// and by regression tests: named constant data tables, parsed once at
// init and never mutated.
//
// Red and Cherry are the two memorized 52-card arrangements drilled by
// the stack trainer; Sample is the documented example deck from the
// bracelet-test usage text. ByName resolves a trainer stack
// case-insensitively.
package stacks

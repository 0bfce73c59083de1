// Package token defines the lexical fragments produced by the tokenizer
// and the consumable stream shared by every grammar rule.
// Invariants:
//   - Token text is owned (copied out of the source, never a view).
//   - Tokens carry extent only; classification (boolean, number, string,
//     identifier) happens at parse time.
//   - A Stream is reversed once at construction: the logical front of the
//     remaining input sits at the physical end, so consuming the front is a
//     constant-time pop.
//   - Popping never reorders the remaining tokens.
package token

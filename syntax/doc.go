// Package syntax implements the lexer, lossless red/green concrete syntax
// tree, and error-recovering Pratt parser for the jalm language.
//
// The tree is "lossless": concatenating the text of every token in
// document order reproduces the original source byte-for-byte, including
// trivia (whitespace, comments) and malformed input. Analyzers in the
// check and codegen packages, and the pretty-printer in format, all walk
// the same RedNode view produced here; none of them mutate it.
package syntax

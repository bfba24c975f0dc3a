// Package protocol owns the global export document: the fixed order of domain
// blocks, the heading lines that frame them, and the optional zstd wrapper.
//
// # Format
//
// Marshal writes the tagged form. Every block is introduced by one line
//
//	<heading literal> <byte length> <digest>
//
// followed by exactly <byte length> bytes of block text and a newline. The
// digest is a truncated keyed BLAKE3 hash of the block text. Readers skip
// blocks by length, so a heading literal typed into a record cannot move a
// block boundary.
//
// Unmarshal also reads the untagged form, in which the home block comes
// first and each following block starts at its bare heading literal.
package protocol

// Package mkwire encodes and decodes inclusion proofs
// in a compact CBOR wire format.
//
// The encoding deliberately omits the hash algorithm:
// a decoded proof carries only digests and the proven value,
// and the algorithm must be supplied again,
// as context, when the proof is validated.
//
// Decoding treats its input as untrusted.
// Structural consistency of the lemma chain is re-checked,
// so a malformed encoding yields an error
// rather than a proof that could misvalidate.
package mkwire

// Package mkpartial tracks inclusion proofs
// accumulated against a single known root digest.
//
// A typical use is receiving a committed root out of band
// and then collecting the leaf values one proof at a time,
// until every leaf of the original tree has been proven.
package mkpartial

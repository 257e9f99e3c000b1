// Package sequence implements ordered title sequences with loop settings.
//
// A Sequence is an index-addressable list of titles plus three loop settings:
//
//   - looping: whether playback jumps back after the last title
//   - loop count: how many times playback may jump back (default unbounded)
//   - loop point: the index playback resumes at after the last title
//
// # Loop Point
//
// The loop point is not validated when set. It may point past the end of the
// sequence so titles can be appended later. When playback loops, the point is
// clamped to Len()-1.
//
// # Equality
//
// Two sequences are equal when they hold the same titles in the same order
// and have the same looping flag and loop count. The loop point is not
// compared.
//
// # Files
//
// Load reads a sequence from a YAML or TOML file. See Decode for the schema.
package sequence

// Package title defines the display unit played by a title sequence.
//
// A Title carries its content (a main line and an optional subtitle) and the
// three durations that control how long a client keeps it on screen:
//
//	|-- FadeIn --|------ Stay ------|-- FadeOut --|
//
// The visible time of a title is the sum of all three. Titles are plain
// values; two titles are equal when every field matches.
//
// # Stay Compensation
//
// When a sequence hands a title to a client it pads Stay by StayCompensation
// so the title is still visible when the next one arrives. The wait before
// the next title is always computed from the unpadded durations, so the
// observed cadence matches the durations the caller supplied.
package title

// Package liso provides line-oriented terminal input with simultaneous
// program-driven output: a prompt and input line stay live on screen while
// the program prints above them, without the two colliding.
//
// Construct an InputOutput to get both input and output, or an Output-only
// handle when a goroutine just needs to print. Exactly one InputOutput may
// exist at a time; New panics if one is already live.
package liso

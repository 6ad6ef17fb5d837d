// Package grouping contains the randomized roster operations.
//
// Allowed here:
// - pure transforms from a roster (and a randomness source) to groups or draws
//
// Not allowed here:
// - input parsing, validation messages, persistence or rendering
package grouping

// Package grid lays out and drives a d×d grid of animated scenes.
//
// A Grid owns the scenes of its current generation. Rebuilding cancels the
// handle of every scene of the previous generation, and Tick only updates
// scenes whose handle is still live, so an abandoned scene never draws
// again.
package grid

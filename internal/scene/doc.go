// Package scene implements the two animated cell variants of the grid.
//
//   - [CurveScene]: traces one parametric curve, one segment per frame
//   - [AtomScene]: bouncing atoms joined by proximity lines
//
// Both satisfy [Scene]: Render is called once after construction, then
// Update once per frame by the grid scheduler. Each scene owns its surface
// exclusively and shares a [Progress] accumulator by composition.
package scene

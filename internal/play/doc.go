// Package play hosts the canvas grid in an ebiten game, which runs as a
// desktop window or in the browser when built for js/wasm.
package play

// Package export renders grid runs to files: animated GIF and PNG from
// raster surfaces, and SVG from recorded drawing operations.
package export

// Package sheet implements the geometric and color primitives used to
// describe operations on scanned sheets, together with the parsers that
// decode them from their command line notation.
//
// This package provides:
//
// - Value types for positions, areas, sizes, offsets, borders and colors
// - Parsers converting comma separated option values into those types
// - String formatting for every type, for diagnostics and summaries
//
// All parsers are pure functions from an input string to a value and an
// error; they never write partial results and never produce output
// themselves. Failures wrap one of two sentinel errors: ErrMalformed for
// values that do not scan at all, and ErrOutOfRange for values that scan
// but violate a constraint of the target type. Callers can tell the two
// apart with errors.Is.
//
// Key Types:
//
// - Point: A pixel position on a sheet
// - Rectangle: An area described by two corner points
// - Size: A width and height pair
// - Delta: A signed horizontal and vertical offset pair
// - Border: Four edge widths
// - Direction: Horizontal and/or vertical axis selection
// - Pixel: An RGB color value
//
// Main Functions:
//
// - ParseRectangle: Decodes "x1,y1,x2,y2" rectangles
// - ParseSize, ParseDelta, ParseScanStep: Decode symmetric integer pairs
// - ParseBorder: Decodes "left,top,right,bottom" edge widths
// - ParseColor: Decodes color names and packed RGB values
// - ParseDirection: Decodes axis selections such as "h", "v" or "none"
package sheet

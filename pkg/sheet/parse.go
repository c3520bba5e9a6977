package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors, meant to be matched with errors.Is. ErrMalformed covers
// values that do not scan (wrong number of tokens, unparseable number);
// ErrOutOfRange covers values that scan but violate a constraint of the
// target type.
var (
	ErrMalformed  = errors.New("malformed value")
	ErrOutOfRange = errors.New("value out of range")
)

// ParseSymmetricInts decodes one or two comma separated integers. A
// single value is used for both results, so "5" yields (5, 5) and "3,4"
// yields (3, 4).
func ParseSymmetricInts(s string) (int, int, error) {
	return parsePair(s, strconv.Atoi)
}

// ParseSymmetricFloats is ParseSymmetricInts for decimal numbers.
func ParseSymmetricFloats(s string) (float64, float64, error) {
	return parsePair(s, func(tok string) (float64, error) {
		return strconv.ParseFloat(tok, 64)
	})
}

// ParseRectangle decodes a rectangle from four comma separated
// coordinates, "x1,y1,x2,y2". The corners may be given in any
// orientation, but the rectangle must cover at least one pixel.
func ParseRectangle(s string) (Rectangle, error) {
	coords, err := parseInts(s, 4)
	if err != nil {
		return Rectangle{}, err
	}

	r := NewRectangle(coords[0], coords[1], coords[2], coords[3])
	if r.Area() <= 0 {
		return Rectangle{}, fmt.Errorf("%w: rectangle %q covers no pixels", ErrOutOfRange, s)
	}
	return r, nil
}

// ParseSize decodes a width and height pair. A single value is used for
// both dimensions; negative dimensions are rejected.
func ParseSize(s string) (Size, error) {
	w, h, err := ParseSymmetricInts(s)
	if err != nil {
		return Size{}, err
	}

	if w < 0 || h < 0 {
		return Size{}, fmt.Errorf("%w: size %q is negative", ErrOutOfRange, s)
	}
	return Size{Width: w, Height: h}, nil
}

// ParseDelta decodes an offset pair, horizontal first. A single value
// is used for both axes; offsets may be negative.
func ParseDelta(s string) (Delta, error) {
	h, v, err := ParseSymmetricInts(s)
	if err != nil {
		return Delta{}, err
	}
	return Delta{Horizontal: h, Vertical: v}, nil
}

// ParseScanStep decodes a scan step distance pair. Unlike a plain
// delta, both components must be positive.
func ParseScanStep(s string) (Delta, error) {
	d, err := ParseDelta(s)
	if err != nil {
		return Delta{}, err
	}

	if d.Horizontal <= 0 || d.Vertical <= 0 {
		return Delta{}, fmt.Errorf("%w: scan step %q is not positive", ErrOutOfRange, s)
	}
	return d, nil
}

// ParseBorder decodes four comma separated edge widths,
// "left,top,right,bottom". Every edge must be zero or wider.
func ParseBorder(s string) (Border, error) {
	edges, err := parseInts(s, 4)
	if err != nil {
		return Border{}, err
	}

	for _, e := range edges {
		if e < 0 {
			return Border{}, fmt.Errorf("%w: border %q has a negative edge", ErrOutOfRange, s)
		}
	}
	return Border{Left: edges[0], Top: edges[1], Right: edges[2], Bottom: edges[3]}, nil
}

// ParseColor decodes a color name or a packed RGB value. The names
// "black" and "white" are matched exactly; any other value must be an
// unsigned decimal integer, which is unpacked one byte per channel (red
// from bits 16-23, green from bits 8-15, blue from bits 0-7).
func ParseColor(s string) (Pixel, error) {
	switch s {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	}

	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return Pixel{}, fmt.Errorf("%w: unknown color %q", ErrMalformed, s)
	}
	return PixelFromValue(uint32(v)), nil
}

// ParseDirection decodes the axes an operation applies to. Any value
// containing an 'h' or 'H' selects the horizontal axis, any value
// containing a 'v' or 'V' the vertical one; "h", "vh" and
// "horizontal,vertical" are all accepted. A value selecting neither
// axis must spell "none" in any case.
func ParseDirection(s string) (Direction, error) {
	d := Direction{
		Horizontal: strings.ContainsAny(s, "hH"),
		Vertical:   strings.ContainsAny(s, "vV"),
	}

	if !d.Horizontal && !d.Vertical && !strings.EqualFold(s, "none") {
		return Direction{}, fmt.Errorf("%w: unknown direction %q", ErrMalformed, s)
	}
	return d, nil
}

// parsePair scans one or two comma separated values with scan, using a
// single value for both slots.
func parsePair[T any](s string, scan func(string) (T, error)) (T, T, error) {
	var zero T

	parts := splitTokens(s)
	switch len(parts) {
	case 1:
		v, err := scan(parts[0])
		if err != nil {
			return zero, zero, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		return v, v, nil
	case 2:
		first, err := scan(parts[0])
		if err != nil {
			return zero, zero, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		second, err := scan(parts[1])
		if err != nil {
			return zero, zero, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		return first, second, nil
	}
	return zero, zero, fmt.Errorf("%w: %q: want one or two comma separated values", ErrMalformed, s)
}

// parseInts scans exactly count comma separated integers
func parseInts(s string, count int) ([]int, error) {
	parts := splitTokens(s)
	if len(parts) != count {
		return nil, fmt.Errorf("%w: %q: want %d comma separated integers", ErrMalformed, s, count)
	}

	values := make([]int, count)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		values[i] = v
	}
	return values, nil
}

// splitTokens splits a comma separated value list, trimming blanks
// around each token
func splitTokens(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

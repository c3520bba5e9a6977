package config

import (
	"fmt"

	"github.com/scanprep/scanprep/pkg/sheet"
)

// Layout describes how pages are arranged on a sheet
type Layout int

const (
	LayoutNone   Layout = iota // No page arrangement, sheets pass through as they are
	LayoutSingle               // One page per sheet
	LayoutDouble               // Two pages side by side on each sheet
)

// ParseLayout decodes a layout name
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "none":
		return LayoutNone, nil
	case "single":
		return LayoutSingle, nil
	case "double":
		return LayoutDouble, nil
	}
	return LayoutNone, fmt.Errorf("%w: unknown layout %q", sheet.ErrMalformed, s)
}

// String returns the layout name
func (l Layout) String() string {
	switch l {
	case LayoutSingle:
		return "single"
	case LayoutDouble:
		return "double"
	}
	return "none"
}

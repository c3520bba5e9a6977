package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/scanprep/scanprep/pkg/sheet"
)

// MaxWipes is the number of areas a single WipeList can hold
const MaxWipes = 100

// ErrTooManyWipes is returned when a WipeList is full
var ErrTooManyWipes = errors.New("too many wipe areas")

// WipeError describes a wipe value that could not be added to a list.
// It carries the option name and the raw value, so reports can point
// at the exact argument that was dropped.
type WipeError struct {
	Option string // Option the value was given for
	Raw    string // Value as typed by the user
	Err    error  // Underlying parse or capacity error
}

func (e *WipeError) Error() string {
	if errors.Is(e.Err, ErrTooManyWipes) {
		return fmt.Sprintf("%s: maximum number of wipes (%d) exceeded, ignoring '%s'", e.Option, MaxWipes, e.Raw)
	}
	return fmt.Sprintf("%s: invalid wipe definition, ignoring '%s'", e.Option, e.Raw)
}

func (e *WipeError) Unwrap() error {
	return e.Err
}

// WipeList is a bounded list of sheet areas to blank out, kept in the
// order the areas were given
type WipeList struct {
	areas []sheet.Rectangle
}

// Add appends one wipe area. A list holds at most MaxWipes areas.
func (l *WipeList) Add(r sheet.Rectangle) error {
	if len(l.areas) >= MaxWipes {
		return ErrTooManyWipes
	}
	l.areas = append(l.areas, r)
	return nil
}

// Parse decodes one rectangle value and appends it to the list. On
// failure nothing is appended and the returned *WipeError names the
// option and the value.
func (l *WipeList) Parse(option, value string) error {
	r, err := sheet.ParseRectangle(value)
	if err == nil {
		err = l.Add(r)
	}
	if err != nil {
		return &WipeError{Option: option, Raw: value, Err: err}
	}
	return nil
}

// Count returns the number of wipe areas in the list
func (l WipeList) Count() int {
	return len(l.areas)
}

// Areas returns a copy of the wipe areas in insertion order
func (l WipeList) Areas() []sheet.Rectangle {
	return slices.Clone(l.areas)
}

// Equal reports whether two lists hold the same areas in the same order
func (l WipeList) Equal(other WipeList) bool {
	return slices.Equal(l.areas, other.areas)
}

// String formats the list as the space separated areas, or "none"
func (l WipeList) String() string {
	if len(l.areas) == 0 {
		return "none"
	}

	parts := make([]string, len(l.areas))
	for i, r := range l.areas {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}

package config

import (
	"fmt"

	"github.com/scanprep/scanprep/pkg/sheet"
)

// Options holds the full configuration of a processing run. Create one
// with New and fill it from command line values or an options file;
// after the configuration phase it is only read.
type Options struct {
	Layout Layout // Page arrangement on each sheet

	StartSheet int // First sheet to process
	EndSheet   int // Last sheet to process, -1 for no upper bound

	StartInput  int // First input file number, -1 derives it from StartSheet
	StartOutput int // First output file number, -1 derives it from StartSheet
	InputCount  int // Input files consumed per sheet (1 or 2)
	OutputCount int // Output files produced per sheet (1 or 2)

	Sheets       IndexSet // Sheets to process between StartSheet and EndSheet
	Exclude      IndexSet // Sheets taken back out of Sheets
	Ignore       IndexSet // Sheets passed through without processing
	InsertBlank  IndexSet // Sheet positions where a blank sheet is inserted
	ReplaceBlank IndexSet // Sheets replaced by blank ones

	// Per-sheet filter switches. A sheet listed in one of these sets
	// skips the corresponding processing step.
	NoBlackfilter IndexSet
	NoNoisefilter IndexSet
	NoBlurfilter  IndexSet
	NoGrayfilter  IndexSet
	NoMaskScan    IndexSet
	NoMaskCenter  IndexSet
	NoDeskew      IndexSet
	NoWipe        IndexSet
	NoBorder      IndexSet
	NoBorderScan  IndexSet
	NoBorderAlign IndexSet

	PreShift  sheet.Delta // Content offset applied before processing
	PostShift sheet.Delta // Content offset applied after processing

	SheetSize       sheet.Size // Force the sheet to this size
	PageSize        sheet.Size // Fit page content to this size before processing
	PostPageSize    sheet.Size // Fit page content to this size after processing
	StretchSize     sheet.Size // Stretch the sheet to this size before processing
	PostStretchSize sheet.Size // Stretch the sheet to this size after processing

	SheetBackground sheet.Pixel // Color blank sheet areas are filled with

	PreMirror  sheet.Direction // Axes to mirror before processing
	PostMirror sheet.Direction // Axes to mirror after processing

	PreBorder  sheet.Border // Border cleared before processing
	Border     sheet.Border // Border cleared around the detected masks
	PostBorder sheet.Border // Border cleared after processing

	MaskScanDirection sheet.Direction // Axes the mask scan moves along
	MaskScanStep      sheet.Delta     // Mask scan step distance per axis
	MaskScanThreshold Threshold       // Mask scan sensitivity per axis

	PreWipe  WipeList // Areas wiped before processing
	Wipe     WipeList // Areas wiped between masking steps
	PostWipe WipeList // Areas wiped after processing
}

// New returns options with every field set to its documented default.
// Selection sets not listed here default to the empty set, sizes to
// unset and everything else to its zero value.
func New() *Options {
	return &Options{
		Layout:      LayoutSingle,
		StartSheet:  1,
		EndSheet:    -1,
		StartInput:  -1,
		StartOutput: -1,
		InputCount:  1,
		OutputCount: 1,

		// process all sheets between StartSheet and EndSheet
		Sheets: AllIndexes(),

		SheetSize:       sheet.UnsetSize,
		PageSize:        sheet.UnsetSize,
		PostPageSize:    sheet.UnsetSize,
		StretchSize:     sheet.UnsetSize,
		PostStretchSize: sheet.UnsetSize,

		SheetBackground: sheet.White,

		MaskScanDirection: sheet.Direction{Horizontal: true},
		MaskScanStep:      sheet.Delta{Horizontal: 5, Vertical: 5},
		MaskScanThreshold: Threshold{Horizontal: 0.1, Vertical: 0.1},
	}
}

// Validate checks cross-field consistency once all values are applied
func (o *Options) Validate() error {
	if o.StartSheet < 1 {
		return fmt.Errorf("%w: start sheet %d, must be 1 or higher", sheet.ErrOutOfRange, o.StartSheet)
	}
	if o.EndSheet != -1 && o.EndSheet < o.StartSheet {
		return fmt.Errorf("%w: end sheet %d lies before start sheet %d", sheet.ErrOutOfRange, o.EndSheet, o.StartSheet)
	}
	if o.InputCount < 1 || o.InputCount > 2 {
		return fmt.Errorf("%w: input pages %d, must be 1 or 2", sheet.ErrOutOfRange, o.InputCount)
	}
	if o.OutputCount < 1 || o.OutputCount > 2 {
		return fmt.Errorf("%w: output pages %d, must be 1 or 2", sheet.ErrOutOfRange, o.OutputCount)
	}
	if o.StartInput != -1 && o.StartInput < 1 {
		return fmt.Errorf("%w: start input %d, must be 1 or higher", sheet.ErrOutOfRange, o.StartInput)
	}
	if o.StartOutput != -1 && o.StartOutput < 1 {
		return fmt.Errorf("%w: start output %d, must be 1 or higher", sheet.ErrOutOfRange, o.StartOutput)
	}
	return nil
}

// SheetSelected reports whether sheet n is processed: it must lie in
// the configured range, be in the Sheets set and not be excluded.
func (o *Options) SheetSelected(n int) bool {
	if n < o.StartSheet {
		return false
	}
	if o.EndSheet != -1 && n > o.EndSheet {
		return false
	}
	return o.Sheets.Contains(n) && !o.Exclude.Contains(n)
}

// SheetIgnored reports whether sheet n is passed through untouched
func (o *Options) SheetIgnored(n int) bool {
	return o.Ignore.Contains(n)
}

// DisabledFilters lists the processing steps sheet n skips, in
// pipeline order
func (o *Options) DisabledFilters(n int) []string {
	steps := []struct {
		name string
		set  IndexSet
	}{
		{"blackfilter", o.NoBlackfilter},
		{"noisefilter", o.NoNoisefilter},
		{"blurfilter", o.NoBlurfilter},
		{"grayfilter", o.NoGrayfilter},
		{"mask-scan", o.NoMaskScan},
		{"mask-center", o.NoMaskCenter},
		{"deskew", o.NoDeskew},
		{"wipe", o.NoWipe},
		{"border", o.NoBorder},
		{"border-scan", o.NoBorderScan},
		{"border-align", o.NoBorderAlign},
	}

	var names []string
	for _, step := range steps {
		if step.set.Contains(n) {
			names = append(names, step.name)
		}
	}
	return names
}

// InputNumbers returns the input file sequence numbers consumed by
// sheet n
func (o *Options) InputNumbers(n int) []int {
	return o.fileNumbers(n, o.StartInput, o.InputCount)
}

// OutputNumbers returns the output file sequence numbers produced by
// sheet n
func (o *Options) OutputNumbers(n int) []int {
	return o.fileNumbers(n, o.StartOutput, o.OutputCount)
}

// fileNumbers computes the file numbers of sheet n for a sequence with
// the given start number and per-sheet count. A start of -1 derives
// the sequence from StartSheet, so sheet 1 uses file 1.
func (o *Options) fileNumbers(n, start, count int) []int {
	if start == -1 {
		start = (o.StartSheet-1)*count + 1
	}

	first := start + (n-o.StartSheet)*count
	numbers := make([]int, count)
	for i := range numbers {
		numbers[i] = first + i
	}
	return numbers
}

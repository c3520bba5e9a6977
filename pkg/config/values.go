package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/scanprep/scanprep/pkg/sheet"
)

// Values holds option values in their textual form, exactly as they
// arrive from the command line or an options file. The flag and yaml
// tags keep both surfaces aligned on the same option names; Apply runs
// every present value through its parser and copies the result into an
// Options record.
type Values struct {
	Layout      *string `long:"layout" value-name:"TYPE" default-mask:"single" description:"Page arrangement on each sheet: none, single or double" yaml:"layout"`
	StartSheet  *int    `long:"start-sheet" value-name:"N" default-mask:"1" description:"First sheet to process" yaml:"start-sheet"`
	EndSheet    *int    `long:"end-sheet" value-name:"N" default-mask:"-1" description:"Last sheet to process, -1 for no upper bound" yaml:"end-sheet"`
	StartInput  *int    `long:"start-input" value-name:"N" description:"Number of the first input file, derived from the start sheet when omitted" yaml:"start-input"`
	StartOutput *int    `long:"start-output" value-name:"N" description:"Number of the first output file, derived from the start sheet when omitted" yaml:"start-output"`
	InputPages  *int    `long:"input-pages" value-name:"COUNT" default-mask:"1" description:"Input files consumed per sheet, 1 or 2" yaml:"input-pages"`
	OutputPages *int    `long:"output-pages" value-name:"COUNT" default-mask:"1" description:"Output files produced per sheet, 1 or 2" yaml:"output-pages"`

	Sheets       ValueList `long:"sheet" value-name:"INDEXES" default-mask:"all" description:"Sheets to process: all, none or a comma separated index list" yaml:"sheet"`
	Exclude      ValueList `long:"exclude" value-name:"INDEXES" description:"Sheets to take back out of the selection" yaml:"exclude"`
	Ignore       ValueList `long:"ignore" value-name:"INDEXES" description:"Sheets to pass through without processing" yaml:"ignore"`
	InsertBlank  ValueList `long:"insert-blank" value-name:"INDEXES" description:"Sheet positions where a blank sheet is inserted" yaml:"insert-blank"`
	ReplaceBlank ValueList `long:"replace-blank" value-name:"INDEXES" description:"Sheets replaced by blank ones" yaml:"replace-blank"`

	NoBlackfilter ValueList `long:"no-blackfilter" value-name:"INDEXES" description:"Sheets that skip the blackfilter" yaml:"no-blackfilter"`
	NoNoisefilter ValueList `long:"no-noisefilter" value-name:"INDEXES" description:"Sheets that skip the noisefilter" yaml:"no-noisefilter"`
	NoBlurfilter  ValueList `long:"no-blurfilter" value-name:"INDEXES" description:"Sheets that skip the blurfilter" yaml:"no-blurfilter"`
	NoGrayfilter  ValueList `long:"no-grayfilter" value-name:"INDEXES" description:"Sheets that skip the grayfilter" yaml:"no-grayfilter"`
	NoMaskScan    ValueList `long:"no-mask-scan" value-name:"INDEXES" description:"Sheets that skip the mask scan" yaml:"no-mask-scan"`
	NoMaskCenter  ValueList `long:"no-mask-center" value-name:"INDEXES" description:"Sheets that skip mask centering" yaml:"no-mask-center"`
	NoDeskew      ValueList `long:"no-deskew" value-name:"INDEXES" description:"Sheets that skip deskewing" yaml:"no-deskew"`
	NoWipe        ValueList `long:"no-wipe" value-name:"INDEXES" description:"Sheets that skip wiping" yaml:"no-wipe"`
	NoBorder      ValueList `long:"no-border" value-name:"INDEXES" description:"Sheets that skip the border" yaml:"no-border"`
	NoBorderScan  ValueList `long:"no-border-scan" value-name:"INDEXES" description:"Sheets that skip the border scan" yaml:"no-border-scan"`
	NoBorderAlign ValueList `long:"no-border-align" value-name:"INDEXES" description:"Sheets that skip border aligning" yaml:"no-border-align"`

	PreShift  *string `long:"pre-shift" value-name:"H[,V]" description:"Shift the content before processing, in pixels" yaml:"pre-shift"`
	PostShift *string `long:"post-shift" value-name:"H[,V]" description:"Shift the content after processing, in pixels" yaml:"post-shift"`

	SheetSize    *string `long:"sheet-size" value-name:"W[,H]" description:"Force the sheet to this size, in pixels" yaml:"sheet-size"`
	PageSize     *string `long:"page-size" value-name:"W[,H]" description:"Fit page content to this size before processing" yaml:"page-size"`
	PostPageSize *string `long:"post-page-size" value-name:"W[,H]" description:"Fit page content to this size after processing" yaml:"post-page-size"`
	Stretch      *string `long:"stretch" value-name:"W[,H]" description:"Stretch the sheet to this size before processing" yaml:"stretch"`
	PostStretch  *string `long:"post-stretch" value-name:"W[,H]" description:"Stretch the sheet to this size after processing" yaml:"post-stretch"`

	SheetBackground *string `long:"sheet-background" value-name:"COLOR" default-mask:"white" description:"Color blank sheet areas are filled with: black, white or a packed RGB value" yaml:"sheet-background"`

	PreMirror  *string `long:"pre-mirror" value-name:"AXES" description:"Mirror the sheet before processing: h, v, both or none" yaml:"pre-mirror"`
	PostMirror *string `long:"post-mirror" value-name:"AXES" description:"Mirror the sheet after processing" yaml:"post-mirror"`

	PreBorder  *string `long:"pre-border" value-name:"L,T,R,B" description:"Clear a border before processing, edge widths in pixels" yaml:"pre-border"`
	Border     *string `long:"border" value-name:"L,T,R,B" description:"Clear a border around the detected masks" yaml:"border"`
	PostBorder *string `long:"post-border" value-name:"L,T,R,B" description:"Clear a border after processing" yaml:"post-border"`

	MaskScanDirection *string `long:"mask-scan-direction" value-name:"AXES" default-mask:"h" description:"Axes the mask scan moves along" yaml:"mask-scan-direction"`
	MaskScanStep      *string `long:"mask-scan-step" value-name:"H[,V]" default-mask:"5" description:"Mask scan step distance, in pixels" yaml:"mask-scan-step"`
	MaskScanThreshold *string `long:"mask-scan-threshold" value-name:"H[,V]" default-mask:"0.1" description:"Mask scan sensitivity between 0 and 1" yaml:"mask-scan-threshold"`

	PreWipe  ValueList `long:"pre-wipe" value-name:"X1,Y1,X2,Y2" description:"Wipe this area before processing, may be repeated" yaml:"pre-wipe"`
	Wipe     ValueList `long:"wipe" value-name:"X1,Y1,X2,Y2" description:"Wipe this area between the masking steps, may be repeated" yaml:"wipe"`
	PostWipe ValueList `long:"post-wipe" value-name:"X1,Y1,X2,Y2" description:"Wipe this area after processing, may be repeated" yaml:"post-wipe"`
}

// ValueList collects option values that may be given more than once.
// On the command line it accumulates repeated flags; in an options
// file it accepts either a single scalar or a sequence, so both
// "sheet: 2" and "sheet: [2, 4]" work.
type ValueList []string

func (l *ValueList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = ValueList{node.Value}
		return nil
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return err
		}
		*l = values
		return nil
	}
	return fmt.Errorf("line %d: expected a value or a list of values", node.Line)
}

// Apply copies every value present into the options, running each one
// through its parser. An invalid value fails the whole application,
// except for wipe definitions: those are dropped one by one and
// returned as *WipeError values, while the rest still applies.
func (v *Values) Apply(o *Options) (skipped []error, err error) {
	if v.Layout != nil {
		parsed, err := ParseLayout(*v.Layout)
		if err != nil {
			return nil, optionError("layout", *v.Layout, err)
		}
		o.Layout = parsed
	}

	// Plain numbers are assigned as they are; Validate checks their
	// ranges once every option source has been applied.
	assignInt(&o.StartSheet, v.StartSheet)
	assignInt(&o.EndSheet, v.EndSheet)
	assignInt(&o.StartInput, v.StartInput)
	assignInt(&o.StartOutput, v.StartOutput)
	assignInt(&o.InputCount, v.InputPages)
	assignInt(&o.OutputCount, v.OutputPages)

	sets := []struct {
		option string
		values ValueList
		dst    *IndexSet
	}{
		{"sheet", v.Sheets, &o.Sheets},
		{"exclude", v.Exclude, &o.Exclude},
		{"ignore", v.Ignore, &o.Ignore},
		{"insert-blank", v.InsertBlank, &o.InsertBlank},
		{"replace-blank", v.ReplaceBlank, &o.ReplaceBlank},
		{"no-blackfilter", v.NoBlackfilter, &o.NoBlackfilter},
		{"no-noisefilter", v.NoNoisefilter, &o.NoNoisefilter},
		{"no-blurfilter", v.NoBlurfilter, &o.NoBlurfilter},
		{"no-grayfilter", v.NoGrayfilter, &o.NoGrayfilter},
		{"no-mask-scan", v.NoMaskScan, &o.NoMaskScan},
		{"no-mask-center", v.NoMaskCenter, &o.NoMaskCenter},
		{"no-deskew", v.NoDeskew, &o.NoDeskew},
		{"no-wipe", v.NoWipe, &o.NoWipe},
		{"no-border", v.NoBorder, &o.NoBorder},
		{"no-border-scan", v.NoBorderScan, &o.NoBorderScan},
		{"no-border-align", v.NoBorderAlign, &o.NoBorderAlign},
	}
	for _, set := range sets {
		for _, raw := range set.values {
			parsed, err := ParseIndexSet(raw)
			if err != nil {
				return nil, optionError(set.option, raw, err)
			}
			set.dst.Merge(parsed)
		}
	}

	deltas := []struct {
		option string
		value  *string
		dst    *sheet.Delta
	}{
		{"pre-shift", v.PreShift, &o.PreShift},
		{"post-shift", v.PostShift, &o.PostShift},
	}
	for _, d := range deltas {
		if d.value == nil {
			continue
		}
		parsed, err := sheet.ParseDelta(*d.value)
		if err != nil {
			return nil, optionError(d.option, *d.value, err)
		}
		*d.dst = parsed
	}

	sizes := []struct {
		option string
		value  *string
		dst    *sheet.Size
	}{
		{"sheet-size", v.SheetSize, &o.SheetSize},
		{"page-size", v.PageSize, &o.PageSize},
		{"post-page-size", v.PostPageSize, &o.PostPageSize},
		{"stretch", v.Stretch, &o.StretchSize},
		{"post-stretch", v.PostStretch, &o.PostStretchSize},
	}
	for _, s := range sizes {
		if s.value == nil {
			continue
		}
		parsed, err := sheet.ParseSize(*s.value)
		if err != nil {
			return nil, optionError(s.option, *s.value, err)
		}
		*s.dst = parsed
	}

	if v.SheetBackground != nil {
		parsed, err := sheet.ParseColor(*v.SheetBackground)
		if err != nil {
			return nil, optionError("sheet-background", *v.SheetBackground, err)
		}
		o.SheetBackground = parsed
	}

	directions := []struct {
		option string
		value  *string
		dst    *sheet.Direction
	}{
		{"pre-mirror", v.PreMirror, &o.PreMirror},
		{"post-mirror", v.PostMirror, &o.PostMirror},
		{"mask-scan-direction", v.MaskScanDirection, &o.MaskScanDirection},
	}
	for _, d := range directions {
		if d.value == nil {
			continue
		}
		parsed, err := sheet.ParseDirection(*d.value)
		if err != nil {
			return nil, optionError(d.option, *d.value, err)
		}
		*d.dst = parsed
	}

	borders := []struct {
		option string
		value  *string
		dst    *sheet.Border
	}{
		{"pre-border", v.PreBorder, &o.PreBorder},
		{"border", v.Border, &o.Border},
		{"post-border", v.PostBorder, &o.PostBorder},
	}
	for _, b := range borders {
		if b.value == nil {
			continue
		}
		parsed, err := sheet.ParseBorder(*b.value)
		if err != nil {
			return nil, optionError(b.option, *b.value, err)
		}
		*b.dst = parsed
	}

	if v.MaskScanStep != nil {
		parsed, err := sheet.ParseScanStep(*v.MaskScanStep)
		if err != nil {
			return nil, optionError("mask-scan-step", *v.MaskScanStep, err)
		}
		o.MaskScanStep = parsed
	}

	if v.MaskScanThreshold != nil {
		parsed, err := ParseThreshold(*v.MaskScanThreshold)
		if err != nil {
			return nil, optionError("mask-scan-threshold", *v.MaskScanThreshold, err)
		}
		o.MaskScanThreshold = parsed
	}

	wipes := []struct {
		option string
		values ValueList
		dst    *WipeList
	}{
		{"pre-wipe", v.PreWipe, &o.PreWipe},
		{"wipe", v.Wipe, &o.Wipe},
		{"post-wipe", v.PostWipe, &o.PostWipe},
	}
	for _, w := range wipes {
		for _, raw := range w.values {
			// A bad wipe is dropped with a report, the remaining
			// values still apply.
			if err := w.dst.Parse(w.option, raw); err != nil {
				skipped = append(skipped, err)
			}
		}
	}

	return skipped, nil
}

func assignInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// optionError names the option and value a parse failure belongs to
func optionError(option, value string, err error) error {
	return fmt.Errorf("option %s: invalid value %q: %w", option, value, err)
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// Load reads an options file, applies it on top of the defaults and
// validates the result. Wipe values the file defines but the parser
// rejects are skipped and returned as *WipeError values.
func Load(path string) (*Options, []error, error) {
	o := New()
	skipped, err := o.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return o, skipped, nil
}

// LoadFile applies the values of a YAML options file to the options.
// Keys match the long command line option names and all values use the
// same notation as their command line counterparts. Files may be UTF-8
// or UTF-16, with or without a byte order mark. Unknown keys are
// rejected, as is any value its parser rejects, except for wipe
// definitions, which are dropped and returned one *WipeError each.
func (o *Options) LoadFile(path string) ([]error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data, err = normalizeEncoding(data)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var v Values
	if err := dec.Decode(&v); err != nil {
		// An empty file has no document to decode and configures nothing.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return v.Apply(o)
}

// normalizeEncoding converts UTF-16 input to UTF-8 and strips byte
// order marks
func normalizeEncoding(data []byte) ([]byte, error) {
	t := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	normalized, _, err := transform.Bytes(t, data)
	return normalized, err
}

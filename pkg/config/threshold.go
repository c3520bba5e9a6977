package config

import (
	"fmt"
	"strconv"

	"github.com/scanprep/scanprep/pkg/sheet"
)

// Threshold is a per-axis sensitivity pair for the mask scan
type Threshold struct {
	Horizontal float64
	Vertical   float64
}

// ParseThreshold decodes one or two comma separated decimal values. A
// single value is used for both axes.
func ParseThreshold(s string) (Threshold, error) {
	h, v, err := sheet.ParseSymmetricFloats(s)
	if err != nil {
		return Threshold{}, err
	}
	return Threshold{Horizontal: h, Vertical: v}, nil
}

// String formats the threshold as [horizontal,vertical]
func (t Threshold) String() string {
	return fmt.Sprintf("[%s,%s]",
		strconv.FormatFloat(t.Horizontal, 'g', -1, 64),
		strconv.FormatFloat(t.Vertical, 'g', -1, 64))
}

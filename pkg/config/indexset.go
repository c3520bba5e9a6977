package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/scanprep/scanprep/pkg/sheet"
)

// IndexSet is a selection of sheet indexes. A set is in one of three
// states: it contains every index, it contains an explicit list of
// indexes, or it is empty. The zero value is the empty set.
type IndexSet struct {
	all     bool
	indexes []int
}

// AllIndexes returns the set containing every index
func AllIndexes() IndexSet {
	return IndexSet{all: true}
}

// NewIndexSet returns the set holding exactly the given indexes.
// Order and duplicates are preserved.
func NewIndexSet(indexes ...int) IndexSet {
	return IndexSet{indexes: slices.Clone(indexes)}
}

// ParseIndexSet decodes a comma separated list of sheet indexes. The
// keywords "all" and "none" select the full and the empty set; an
// empty value is the empty set as well.
func ParseIndexSet(s string) (IndexSet, error) {
	switch strings.TrimSpace(s) {
	case "all":
		return AllIndexes(), nil
	case "none", "":
		return IndexSet{}, nil
	}

	var indexes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return IndexSet{}, fmt.Errorf("%w: index list %q", sheet.ErrMalformed, s)
		}
		indexes = append(indexes, n)
	}
	return IndexSet{indexes: indexes}, nil
}

// All reports whether the set contains every index
func (s IndexSet) All() bool {
	return s.all
}

// Empty reports whether the set selects no index at all
func (s IndexSet) Empty() bool {
	return !s.all && len(s.indexes) == 0
}

// Count returns the number of explicitly listed indexes. It is zero
// for both the full and the empty set.
func (s IndexSet) Count() int {
	return len(s.indexes)
}

// Contains reports whether index n is in the set
func (s IndexSet) Contains(n int) bool {
	if s.all {
		return true
	}
	return slices.Contains(s.indexes, n)
}

// Indexes returns a copy of the explicit index list
func (s IndexSet) Indexes() []int {
	return slices.Clone(s.indexes)
}

// Append adds indexes to the set. Appending to the full set narrows it
// down to just the appended indexes.
func (s *IndexSet) Append(indexes ...int) {
	s.all = false
	s.indexes = append(s.indexes, indexes...)
}

// Merge folds another parsed selection value into the set, following
// the command line rules for repeated options: full and empty values
// replace the set, explicit indexes accumulate.
func (s *IndexSet) Merge(v IndexSet) {
	switch {
	case v.all:
		*s = AllIndexes()
	case v.Empty():
		*s = IndexSet{}
	default:
		s.Append(v.indexes...)
	}
}

// Equal reports whether two sets are in the same state and list the
// same indexes in the same order
func (s IndexSet) Equal(other IndexSet) bool {
	return s.all == other.all && slices.Equal(s.indexes, other.indexes)
}

// String formats the set as "all", "none" or the comma separated
// index list
func (s IndexSet) String() string {
	switch {
	case s.all:
		return "all"
	case len(s.indexes) == 0:
		return "none"
	}
	return strings.Join(lo.Map(s.indexes, func(n int, _ int) string {
		return strconv.Itoa(n)
	}), ",")
}

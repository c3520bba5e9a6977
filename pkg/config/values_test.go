package config

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/scanprep/scanprep/pkg/sheet"
)

func TestApplyEmptyValuesChangesNothing(t *testing.T) {
	t.Parallel()

	o := New()
	skipped, err := (&Values{}).Apply(o)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, New(), o)
}

func TestApplyStopsOnFirstBadValue(t *testing.T) {
	t.Parallel()

	o := New()
	v := &Values{
		Layout:    lo.ToPtr("double"),
		SheetSize: lo.ToPtr("wide"),
	}
	_, err := v.Apply(o)
	require.ErrorIs(t, err, sheet.ErrMalformed)
	assert.Contains(t, err.Error(), `option sheet-size: invalid value "wide"`)
}

func TestApplyAccumulatesRepeatedLists(t *testing.T) {
	t.Parallel()

	o := New()
	v := &Values{
		Exclude: ValueList{"2", "7,9"},
	}
	_, err := v.Apply(o)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 7, 9}, o.Exclude.Indexes())
}

func TestApplySkipsBadWipes(t *testing.T) {
	t.Parallel()

	o := New()
	v := &Values{
		PreWipe: ValueList{"1,2,3", "100,100,200,200", "8,8,8,8"},
	}
	skipped, err := v.Apply(o)
	require.NoError(t, err)

	// Two definitions fail for different reasons; the valid one still
	// lands in between.
	require.Len(t, skipped, 2)
	assert.Equal(t, "pre-wipe: invalid wipe definition, ignoring '1,2,3'", skipped[0].Error())
	assert.Equal(t, "pre-wipe: invalid wipe definition, ignoring '8,8,8,8'", skipped[1].Error())
	assert.Equal(t, []sheet.Rectangle{sheet.NewRectangle(100, 100, 200, 200)}, o.PreWipe.Areas())
}

func TestValueListYAML(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    ValueList
		wantErr bool
	}{
		{name: "scalar", input: "2", want: ValueList{"2"}},
		{name: "quoted pair", input: `"7,9"`, want: ValueList{"7,9"}},
		{name: "sequence", input: "[2, 4]", want: ValueList{"2", "4"}},
		{name: "mapping", input: "{a: 1}", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var l ValueList
			err := yaml.Unmarshal([]byte(tt.input), &l)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, l)
		})
	}
}

package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymmetricInts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantA   int
		wantB   int
		wantErr error
	}{
		{name: "single value fills both slots", input: "5", wantA: 5, wantB: 5},
		{name: "two values stay independent", input: "3,4", wantA: 3, wantB: 4},
		{name: "negative values pass through", input: "-3", wantA: -3, wantB: -3},
		{name: "blanks around tokens", input: " 5 , 7 ", wantA: 5, wantB: 7},
		{name: "empty string", input: "", wantErr: ErrMalformed},
		{name: "second token unparseable", input: "5,x", wantErr: ErrMalformed},
		{name: "three tokens", input: "1,2,3", wantErr: ErrMalformed},
		{name: "not a number", input: "x", wantErr: ErrMalformed},
		{name: "trailing comma", input: "5,", wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, b, err := ParseSymmetricInts(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantA, a)
			assert.Equal(t, tt.wantB, b)
		})
	}
}

func TestParseSymmetricFloats(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantA   float64
		wantB   float64
		wantErr error
	}{
		{name: "single value fills both slots", input: "0.5", wantA: 0.5, wantB: 0.5},
		{name: "two values stay independent", input: "0.1,0.9", wantA: 0.1, wantB: 0.9},
		{name: "integer notation", input: "2", wantA: 2, wantB: 2},
		{name: "not a number", input: "a,b", wantErr: ErrMalformed},
		{name: "empty string", input: "", wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, b, err := ParseSymmetricFloats(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantA, a)
			assert.Equal(t, tt.wantB, b)
		})
	}
}

func TestParseRectangle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Rectangle
		wantErr error
	}{
		{
			name:  "smallest valid rectangle",
			input: "0,0,1,1",
			want:  NewRectangle(0, 0, 1, 1),
		},
		{
			name:  "ordinary rectangle",
			input: "10,20,30,40",
			want:  NewRectangle(10, 20, 30, 40),
		},
		{
			name:  "reversed corners are kept as given",
			input: "30,40,10,20",
			want:  NewRectangle(30, 40, 10, 20),
		},
		{name: "degenerate point", input: "0,0,0,0", wantErr: ErrOutOfRange},
		{name: "zero width", input: "5,5,5,9", wantErr: ErrOutOfRange},
		{name: "too few coordinates", input: "1,2,3", wantErr: ErrMalformed},
		{name: "too many coordinates", input: "1,2,3,4,5", wantErr: ErrMalformed},
		{name: "not numbers", input: "a,b,c,d", wantErr: ErrMalformed},
		{name: "empty string", input: "", wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseRectangle(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Positive(t, got.Area())
		})
	}
}

func TestParseSize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Size
		wantErr error
	}{
		{name: "square from single value", input: "21", want: Size{Width: 21, Height: 21}},
		{name: "width and height", input: "100,200", want: Size{Width: 100, Height: 200}},
		{name: "zero size is allowed", input: "0", want: Size{}},
		{name: "negative single value", input: "-1", wantErr: ErrOutOfRange},
		{name: "negative height", input: "10,-1", wantErr: ErrOutOfRange},
		{name: "not a number", input: "a4", wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSize(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDelta(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Delta
		wantErr error
	}{
		{name: "single value fills both axes", input: "5", want: Delta{Horizontal: 5, Vertical: 5}},
		{name: "negative offsets are allowed", input: "-3,4", want: Delta{Horizontal: -3, Vertical: 4}},
		{name: "zero offset", input: "0", want: Delta{}},
		{name: "not a number", input: "up", wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDelta(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScanStep(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Delta
		wantErr error
	}{
		{name: "single value fills both axes", input: "5", want: Delta{Horizontal: 5, Vertical: 5}},
		{name: "two values", input: "1,2", want: Delta{Horizontal: 1, Vertical: 2}},
		{name: "zero step", input: "0", wantErr: ErrOutOfRange},
		{name: "negative step", input: "-5,5", wantErr: ErrOutOfRange},
		{name: "not a number", input: "x", wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseScanStep(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBorder(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Border
		wantErr error
	}{
		{name: "no border", input: "0,0,0,0", want: Border{}},
		{
			name:  "four distinct edges",
			input: "10,20,30,40",
			want:  Border{Left: 10, Top: 20, Right: 30, Bottom: 40},
		},
		{name: "negative edge", input: "-1,0,0,0", wantErr: ErrOutOfRange},
		{name: "too few edges", input: "1,2,3", wantErr: ErrMalformed},
		{name: "single value is not expanded", input: "10", wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseBorder(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Pixel
		wantErr error
	}{
		{name: "black by name", input: "black", want: Black},
		{name: "white by name", input: "white", want: White},
		{name: "pure red from packed value", input: "16711680", want: Pixel{R: 0xff}},
		{name: "zero is black", input: "0", want: Black},
		{name: "all bits set is white", input: "16777215", want: White},
		{name: "top byte is ignored", input: "16777216", want: Black},
		{name: "names are case sensitive", input: "Black", wantErr: ErrMalformed},
		{name: "negative value", input: "-1", wantErr: ErrMalformed},
		{name: "hex notation is not accepted", input: "#ff0000", wantErr: ErrMalformed},
		{name: "value beyond 32 bits", input: "4294967296", wantErr: ErrMalformed},
		{name: "empty string", input: "", wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseColor(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorRedPrintsAsHex(t *testing.T) {
	t.Parallel()

	p, err := ParseColor("16711680")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", p.String())
}

func TestParseDirection(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Direction
		wantErr error
	}{
		{name: "short horizontal", input: "h", want: Direction{Horizontal: true}},
		{name: "short vertical upper case", input: "V", want: Direction{Vertical: true}},
		{name: "both axes", input: "hv", want: Direction{Horizontal: true, Vertical: true}},
		{name: "both axes reversed", input: "vh", want: Direction{Horizontal: true, Vertical: true}},
		{name: "long horizontal", input: "horizontal", want: Direction{Horizontal: true}},
		{name: "long vertical", input: "vertical", want: Direction{Vertical: true}},
		{
			name:  "both axes long form",
			input: "horizontal,vertical",
			want:  Direction{Horizontal: true, Vertical: true},
		},
		{name: "none", input: "none", want: Direction{}},
		{name: "none upper case", input: "NONE", want: Direction{}},
		{name: "any h selects horizontal", input: "ohio", want: Direction{Horizontal: true}},
		{name: "no axis and not none", input: "xyz", wantErr: ErrMalformed},
		{name: "empty string", input: "", wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDirection(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

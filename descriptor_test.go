package fakejson

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Descriptor
	}{
		{"FirstName", Descriptor{Kind: BareDescriptor, Raw: "FirstName", Name: "FirstName"}},
		{"FirstName[author]", Descriptor{Kind: ReferenceDescriptor, Raw: "FirstName[author]", Inner: "FirstName", Ref: "author"}},
		{"Email*", Descriptor{Kind: UniqueDescriptor, Raw: "Email*", Inner: "Email"}},
		{"1..10", Descriptor{Kind: RangeDescriptor, Raw: "1..10", Lo: "1", Hi: "10"}},
		{"0.5..", Descriptor{Kind: RangeDescriptor, Raw: "0.5..", Lo: "0.5", Hi: ""}},
		{"a|b|c", Descriptor{Kind: EnumDescriptor, Raw: "a|b|c", Choices: []string{"a", "b", "c"}}},
		{"a||b|", Descriptor{Kind: EnumDescriptor, Raw: "a||b|", Choices: []string{"a", "b"}}},
		{"|", Descriptor{Kind: EnumDescriptor, Raw: "|", Choices: []string{}}},

		// Precedence: reference beats unique beats range beats enum
		{"1..5*[id]", Descriptor{Kind: ReferenceDescriptor, Raw: "1..5*[id]", Inner: "1..5*", Ref: "id"}},
		{"a|b*", Descriptor{Kind: UniqueDescriptor, Raw: "a|b*", Inner: "a|b"}},
		{"1..2|3", Descriptor{Kind: RangeDescriptor, Raw: "1..2|3", Lo: "1", Hi: "2|3"}},
		{"T[a][b]", Descriptor{Kind: ReferenceDescriptor, Raw: "T[a][b]", Inner: "T[a]", Ref: "b"}},

		// A closing bracket without an opening one is a plain name
		{"Odd]", Descriptor{Kind: BareDescriptor, Raw: "Odd]", Name: "Odd]"}},
		{"Name?", Descriptor{Kind: BareDescriptor, Raw: "Name?", Name: "Name?"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Classify(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Classify(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSplitNullable(t *testing.T) {
	inner, ok := SplitNullable("Email?")
	if inner != "Email" || !ok {
		t.Errorf("SplitNullable(Email?) = %q, %v", inner, ok)
	}
	inner, ok = SplitNullable("Email")
	if inner != "Email" || ok {
		t.Errorf("SplitNullable(Email) = %q, %v", inner, ok)
	}
}

func TestSplitUserDefined(t *testing.T) {
	tests := []struct {
		input      string
		wantName   string
		wantValues []string
		wantErr    error
	}{
		{input: "Color:red|green|blue", wantName: "Color", wantValues: []string{"red", "green", "blue"}},
		{input: "Single:only", wantName: "Single", wantValues: []string{"only"}},
		{input: "Sparse:|x||y|", wantName: "Sparse", wantValues: []string{"x", "y"}},
		{input: "Empty:", wantName: "Empty", wantValues: []string{}},
		{input: "NoColon", wantErr: ErrMissingSeparator},
		{input: "A:b:c", wantErr: ErrTooManySeparators},
		{input: "A:b|c:d|e", wantErr: ErrTooManySeparators},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, values, err := SplitUserDefined(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SplitUserDefined(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitUserDefined(%q) failed: %v", tt.input, err)
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if diff := cmp.Diff(tt.wantValues, values); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		lo, hi    string
		want      Range
		wantErr   error
		wantToken string
	}{
		{lo: "5", hi: "10", want: Range{Integer: true, IntLo: 5, IntHi: 10}},
		{lo: "5", hi: "", want: Range{Integer: true, IntLo: 5, IntHi: math.MaxUint64}},
		{lo: "5.0", hi: "10.0", want: Range{FloatLo: 5, FloatHi: 10}},
		{lo: "5", hi: "10.5", want: Range{FloatLo: 5, FloatHi: 10.5}},
		{lo: "-1.5", hi: "1.5", want: Range{FloatLo: -1.5, FloatHi: 1.5}},
		{lo: "-3", hi: "", want: Range{FloatLo: -3, FloatHi: math.MaxFloat64}},
		{lo: "10", hi: "5", wantErr: ErrEmptyRange},
		{lo: "3", hi: "3", wantErr: ErrEmptyRange},
		{lo: "2.5", hi: "1", wantErr: ErrEmptyRange},
		{lo: "x", hi: "5", wantErr: ErrInvalidBound, wantToken: "x"},
		{lo: "5", hi: "y", wantErr: ErrInvalidBound, wantToken: "y"},
		{lo: "", hi: "5", wantErr: ErrInvalidBound, wantToken: ""},
		{lo: "inf", hi: "", wantErr: ErrInvalidBound, wantToken: "inf"},
		{lo: "0", hi: "NaN", wantErr: ErrInvalidBound, wantToken: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.lo+".."+tt.hi, func(t *testing.T) {
			got, err := ParseRange(tt.lo, tt.hi)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseRange error = %v, want %v", err, tt.wantErr)
				}
				var bound *BoundError
				if errors.As(err, &bound) && bound.Token != tt.wantToken {
					t.Errorf("BoundError.Token = %q, want %q", bound.Token, tt.wantToken)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRange failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseRange mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

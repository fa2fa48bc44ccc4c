package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cliff-de-tech/library-service/pkg/validate"
)

func TestCustomValidator_PublicationYear(t *testing.T) {
	t.Parallel()
	type form struct {
		Year *int `validate:"omitempty,gte=1000,lte=2100"`
	}
	year := func(y int) *int { return &y }

	var tests = []struct {
		name    string
		year    *int
		wantErr bool
	}{
		{name: "absent is accepted", year: nil, wantErr: false},
		{name: "lower bound", year: year(1000), wantErr: false},
		{name: "upper bound", year: year(2100), wantErr: false},
		{name: "dune", year: year(1965), wantErr: false},
		{name: "too old", year: year(500), wantErr: true},
		{name: "below lower bound", year: year(999), wantErr: true},
		{name: "above upper bound", year: year(2101), wantErr: true},
		{name: "negative", year: year(-1), wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cv := validate.NewCustomValidator()
			err := cv.Validate(&form{Year: tt.year})
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCustomValidator_AlphaSpace(t *testing.T) {
	t.Parallel()
	type form struct {
		Name string `validate:"required,alphaspace"`
	}

	var tests = []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "letters", value: "Herbert", wantErr: false},
		{name: "letters and spaces", value: "Frank Herbert", wantErr: false},
		{name: "unicode letters", value: "Стругацкий", wantErr: false},
		{name: "digits", value: "Herbert2", wantErr: true},
		{name: "punctuation", value: "O'Brien", wantErr: true},
		{name: "spaces only", value: "   ", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cv := validate.NewCustomValidator()
			err := cv.Validate(&form{Name: tt.value})
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

package reshape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "Plain integer", input: "5551234567", expected: "5551234567"},
		{name: "Float rendering", input: "5551234567.0", expected: "5551234567"},
		{name: "Fraction truncated", input: "5551234567.9", expected: "5551234567"},
		{name: "Trailing dot", input: "5551234567.", expected: "5551234567"},
		{name: "Exponent notation", input: "5.551234567E+09", expected: "5551234567"},
		{name: "Leading plus", input: "+15551234567", expected: "15551234567"},
		{name: "Leading zeros", input: "0005551234", expected: "5551234"},
		{name: "Zero", input: "0", expected: "0"},
		{name: "Surrounding spaces", input: " 5551234567 ", expected: "5551234567"},
		{name: "Negative truncates toward zero", input: "-12.7", expected: "-12"},
		{name: "Fraction only", input: ".5", expected: "0"},
		{name: "Dashes", input: "555-123-4567", wantErr: true},
		{name: "Parentheses", input: "(555) 123-4567", wantErr: true},
		{name: "Letters", input: "call me", wantErr: true},
		{name: "Blank", input: "   ", wantErr: true},
		{name: "NaN", input: "NaN", wantErr: true},
		{name: "Infinity", input: "inf", wantErr: true},
		{name: "Too large", input: "99999999999999999999", wantErr: true},
		{name: "Too large exponent", input: "1e30", wantErr: true},
		{name: "Hex float", input: "0x1p4", wantErr: true},
		{name: "Hex float with fraction", input: "0X1.8p3", wantErr: true},
		{name: "Hex float with underscore", input: "0x_1p0", wantErr: true},
		{name: "Digit underscores", input: "555_123_4567", wantErr: true},
		{name: "Exponent without mantissa", input: "e5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCoercePhones_FailFast(t *testing.T) {
	records := []Record{
		{Line: 2, Column: "Phone1_Number", Phone: "5551230000.0"},
		{Line: 4, Column: "Phone3_Number", Phone: "ext. 12"},
		{Line: 5, Column: "Phone1_Number", Phone: "oops"},
	}

	err := CoercePhones(records)
	require.Error(t, err)

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, 4, convErr.Line)
	assert.Equal(t, "Phone3_Number", convErr.Column)
	assert.Equal(t, "ext. 12", convErr.Value)
	assert.Contains(t, err.Error(), "line 4")

	assert.Equal(t, "5551230000", records[0].Phone)
	assert.Equal(t, "oops", records[2].Phone, "records after the failure are left alone")
}

func TestCoercePhones(t *testing.T) {
	records := []Record{
		{Line: 2, Phone: "1.0"},
		{Line: 2, Phone: "2"},
	}

	require.NoError(t, CoercePhones(records))
	assert.Equal(t, "1", records[0].Phone)
	assert.Equal(t, "2", records[1].Phone)
}

package mapping

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceLong(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    int64
		wantErr bool
	}{
		{name: "json number", raw: json.Number("42"), want: 42},
		{name: "negative number", raw: json.Number("-7"), want: -7},
		{name: "integral float literal", raw: json.Number("12.0"), want: 12},
		{name: "float64", raw: float64(9), want: 9},
		{name: "numeric string", raw: "1306252800", want: 1306252800},
		{name: "padded string", raw: " 15 ", want: 15},
		{name: "leading zeros are decimal", raw: "010", want: 10},
		{name: "zero string", raw: "000", want: 0},
		{name: "max int64", raw: json.Number("9223372036854775807"), want: math.MaxInt64},
		{name: "fractional number", raw: json.Number("1.5"), wantErr: true},
		{name: "fractional string", raw: "1.5", wantErr: true},
		{name: "explicit plus", raw: " +5 ", want: 5},
		{name: "negative leading zeros", raw: "-007", want: -7},
		{name: "hex string", raw: "0x10", wantErr: true},
		{name: "underscore separators", raw: "1_000", wantErr: true},
		{name: "underscore after zero", raw: "0_1", wantErr: true},
		{name: "exponent string", raw: "1e3", wantErr: true},
		{name: "overflowing string", raw: "9223372036854775808", wantErr: true},
		{name: "word", raw: "abc", wantErr: true},
		{name: "empty string", raw: "", wantErr: true},
		{name: "boolean", raw: true, wantErr: true},
		{name: "object", raw: map[string]any{}, wantErr: true},
		{name: "null", raw: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceLong(tt.raw)
			if tt.wantErr {
				var ce *CoercionError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, KindLong, ce.Kind)
				assert.Equal(t, tt.raw, ce.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceInt(t *testing.T) {
	got, err := CoerceInt(json.Number("2147483647"))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, got)

	got, err = CoerceInt("-12")
	require.NoError(t, err)
	assert.Equal(t, -12, got)

	_, err = CoerceInt(json.Number("2147483648"))
	var ce *CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, KindInteger, ce.Kind)
	assert.True(t, errors.Is(err, errOutOfRange))
}

func TestCoerceDouble(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    float64
		wantErr bool
	}{
		{name: "json number", raw: json.Number("60.1698"), want: 60.1698},
		{name: "integer number", raw: json.Number("3"), want: 3},
		{name: "numeric string", raw: "24.9384", want: 24.9384},
		{name: "float64", raw: 1.25, want: 1.25},
		{name: "exponent string", raw: "1e3", want: 1000},
		{name: "negative exponent string", raw: "-2.5E-1", want: -0.25},
		{name: "word", raw: "north", wantErr: true},
		{name: "not a number", raw: "NaN", wantErr: true},
		{name: "infinity", raw: "Inf", wantErr: true},
		{name: "negative infinity", raw: "-Infinity", wantErr: true},
		{name: "hex float", raw: "0x1p-2", wantErr: true},
		{name: "underscore separators", raw: "1_0", wantErr: true},
		{name: "bare fraction", raw: ".5", wantErr: true},
		{name: "boolean", raw: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceDouble(tt.raw)
			if tt.wantErr {
				var ce *CoercionError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, KindDouble, ce.Kind)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCoerceString(t *testing.T) {
	got, err := CoerceString("helsinki")
	require.NoError(t, err)
	assert.Equal(t, "helsinki", got)

	got, err = CoerceString(json.Number("5104"))
	require.NoError(t, err)
	assert.Equal(t, "5104", got)

	_, err = CoerceString([]any{"a"})
	var ce *CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, KindString, ce.Kind)
}

func TestCoerceBool(t *testing.T) {
	got, err := CoerceBool(true)
	require.NoError(t, err)
	assert.True(t, got)

	for _, raw := range []any{"true", json.Number("1"), nil} {
		_, err := CoerceBool(raw)
		assert.Error(t, err, "raw %v", raw)
	}
}

func TestCoerceTimestamp(t *testing.T) {
	got, err := CoerceTimestamp(json.Number("1306252800"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2011, time.May, 24, 16, 0, 0, 0, time.UTC), got)

	got, err = CoerceTimestamp("-86400")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1969, time.December, 31, 0, 0, 0, 0, time.UTC), got)

	_, err = CoerceTimestamp("yesterday")
	var ce *CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, KindTimestamp, ce.Kind)
}

func TestCoerceDispatch(t *testing.T) {
	v, err := Coerce(KindInteger, "8")
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	v, err = Coerce(KindBoolean, false)
	require.NoError(t, err)
	assert.Equal(t, false, v)

	_, err = Coerce(Kind(99), "8")
	assert.Error(t, err)
}

func TestCoerceMalformedNumericText(t *testing.T) {
	_, err := CoerceLong("abc")
	assert.ErrorIs(t, err, errNotNumeric)
	assert.Contains(t, err.Error(), "not a decimal number")

	_, err = CoerceDouble("Infinity")
	assert.ErrorIs(t, err, errNotNumeric)

	_, err = CoerceInt("1_0")
	assert.ErrorIs(t, err, errNotNumeric)

	_, err = CoerceLong(true)
	assert.ErrorIs(t, err, errUnsupported)
	assert.NotErrorIs(t, err, errNotNumeric)
}

func TestCoercionErrorMessage(t *testing.T) {
	err := &CoercionError{Field: "venue.stats.checkinsCount", Kind: KindLong, Value: "many", Err: errNotNumeric}
	assert.Equal(t, `field 'venue.stats.checkinsCount': cannot coerce string "many" to long: not a decimal number`, err.Error())
	assert.ErrorIs(t, err, errNotNumeric)
}

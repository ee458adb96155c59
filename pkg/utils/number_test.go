package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloatOrZero(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "decimal válido", input: "150.00", want: 150},
		{name: "com espaços", input: " 42.5 ", want: 42.5},
		{name: "vazio", input: "", want: 0},
		{name: "não numérico", input: "abc", want: 0},
		{name: "NaN", input: "NaN", want: 0},
		{name: "infinito", input: "Inf", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFloatOrZero(tt.input))
		})
	}
}

func TestParseInt64OrZero(t *testing.T) {
	assert.Equal(t, int64(12345), ParseInt64OrZero("12345"))
	assert.Equal(t, int64(-500), ParseInt64OrZero("-500"))
	assert.Equal(t, int64(100), ParseInt64OrZero("100.0"))
	assert.Equal(t, int64(0), ParseInt64OrZero(""))
	assert.Equal(t, int64(0), ParseInt64OrZero("null"))
	assert.Equal(t, int64(math.MaxInt64), ParseInt64OrZero("9223372036854775807"))
	assert.Equal(t, int64(0), ParseInt64OrZero("9223372036854775808"))
	assert.Equal(t, int64(0), ParseInt64OrZero("9223372036854775808.0"))
	assert.Equal(t, int64(math.MinInt64), ParseInt64OrZero("-9223372036854775808.0"))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "12.30", FormatCurrency("12.3"))
	assert.Equal(t, "0.00", FormatCurrency("n/a"))
	assert.Equal(t, "0.00", FormatCurrency(""))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "3.00", FormatAmount(3))
	assert.Equal(t, "0.00", FormatAmount(math.NaN()))
	assert.Equal(t, "0.00", FormatAmount(math.Inf(1)))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "123.45", FormatMoney(123.45))
	assert.Equal(t, "1,234.50", FormatMoney(1234.5))
	assert.Equal(t, "0.00", FormatMoney(math.NaN()))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 3.33, RoundWithTwoDecimalPlace(10.0/3.0))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "já arredondado", in: 123.45, want: 123.45},
		{name: "arredonda para cima", in: 10.126, want: 10.13},
		{name: "arredonda para baixo", in: 10.124, want: 10.12},
		{name: "meio se afasta do zero", in: 0.125, want: 0.13},
		{name: "negativo", in: -3.14159, want: -3.14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundWithTwoDecimalPlace(tt.in))
		})
	}
}

func TestDateRange(t *testing.T) {
	start := time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC)

	dates := DateRange(start, 3)

	require.Len(t, dates, 3)
	assert.Equal(t, "2023-12-30", dates[0].Format(time.DateOnly))
	assert.Equal(t, "2024-01-01", dates[2].Format(time.DateOnly))
	assert.Empty(t, DateRange(start, 0))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2023-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2023, date.Year())

	_, err = ParseDate("01/01/2023")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 8)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson([]byte(`{"a":1}`)))
}

func TestPrettyJson_EntradaInvalida(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, "nao json", PrettyJson([]byte("nao json")))
		assert.Empty(t, PrettyJson(map[string]float64{"nan": math.NaN()}))
	})
}

func TestNewRand_Deterministico(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)

	assert.Equal(t, a.Perm(10), b.Perm(10))
	assert.Equal(t, a.Float64(), b.Float64())
	assert.NotEqual(t, NewRand(1).Perm(10), NewRand(2).Perm(10))
}

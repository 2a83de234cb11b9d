package plan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericUnmarshal(t *testing.T) {
	var s ProjectState
	require.NoError(t, json.Unmarshal([]byte(`{"dimensions": 1200, "user_budget": " 50000 "}`), &s))
	assert.Equal(t, 1200, s.DimensionsOrDefault())
	assert.Equal(t, 50000, s.BudgetOrDefault())

	require.NoError(t, json.Unmarshal([]byte(`{"dimensions": null, "user_budget": "abc"}`), &s))
	assert.Equal(t, DefaultDimensions, s.DimensionsOrDefault())
	assert.Equal(t, DefaultBudget, s.BudgetOrDefault())

	require.NoError(t, json.Unmarshal([]byte(`{"dimensions": 1e400}`), &s))
	assert.Equal(t, DefaultDimensions, s.DimensionsOrDefault())
}

func TestNumericIntOrBounds(t *testing.T) {
	tests := map[string]int{
		"2147483647":          2147483647,
		"-2147483648":         -2147483648,
		"2147483648":          -1,
		"3000000000":          -1,
		"3000000000.0":        -1,
		"9223372036854775807": -1,
		"12.7":                12,
		"":                    -1,
	}
	for in, want := range tests {
		assert.Equal(t, want, Numeric(in).IntOr(-1), in)
	}
}

func TestProjectStateAcceptsLooseScalars(t *testing.T) {
	var s ProjectState
	err := json.Unmarshal([]byte(`{
		"zip_code": 10001,
		"dimensions": 1000,
		"user_budget": "5000",
		"privacy": true,
		"style": {"name": "Modern"},
		"terrain": ["Flat"],
		"soil": "Clay",
		"currency": null
	}`), &s)
	require.NoError(t, err)

	assert.Equal(t, "10001", s.ZipCode)
	assert.Equal(t, 1000, s.DimensionsOrDefault())
	assert.Equal(t, 5000, s.BudgetOrDefault())
	assert.Equal(t, "true", s.Privacy)
	assert.Empty(t, s.Style)
	assert.Empty(t, s.Terrain)
	assert.Equal(t, "Clay", s.Soil)
	assert.Equal(t, "Temperate", ResolveRegion(s.ZipOrDefault()).Climate)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"dimensions":1000`)
	assert.Contains(t, string(out), `"zip_code":"10001"`)
}

func TestNumericMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Numeric `json:"a"`
		B Numeric `json:"b"`
		C Numeric `json:"c"`
	}{A: "42", B: "forty", C: ""})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 42, "b": "forty", "c": null}`, string(out))
}

func TestApplyChanges(t *testing.T) {
	dims, tier := 800, "Premium"
	state := ProjectState{Dimensions: "1000", QualityTier: "Economy", Soil: "Clay"}

	next := state.Apply(Changes{Dimensions: &dims, QualityTier: &tier})

	assert.Equal(t, 800, next.DimensionsOrDefault())
	assert.Equal(t, "Premium", next.QualityTier)
	assert.Equal(t, "Clay", next.Soil)
	assert.Equal(t, "Economy", state.QualityTier, "original state is untouched")
	assert.Equal(t, state, state.Apply(Changes{}))
}

func TestChangesJSONOmitsUnset(t *testing.T) {
	budget := 50000
	out, err := json.Marshal(Changes{UserBudget: &budget})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_budget": 50000}`, string(out))
	assert.True(t, Changes{}.Empty())
	assert.False(t, Changes{UserBudget: &budget}.Empty())
}

func TestResolveRegion(t *testing.T) {
	cases := map[string]string{
		"10001": "Temperate",
		"30301": "Subtropical",
		"60601": "Continental",
		"85001": "Arid",
		"94105": "Mediterranean",
		"00000": "Temperate",
		"ABCDE": "Temperate",
		"":      "Temperate",
		"399":   "Subtropical",
		"1999":  "Temperate",
	}
	for zip, climate := range cases {
		r := ResolveRegion(zip)
		assert.Equal(t, climate, r.Climate, zip)
		assert.Equal(t, "Spring", r.Season, zip)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$1,234,567", formatAmount("$", 1234567.9, 1))
	assert.Equal(t, "$0", formatAmount("$", 0, 1))
	assert.Equal(t, "€920", formatAmount("€", 1000, 0.92))
	assert.Equal(t, "$1234567", formatRate("$", 1234567.9, 1))
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseBoolUnmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"1"`, true},
		{`"0"`, false},
		{`"true"`, true},
		{`"FALSE"`, false},
		{`"yes"`, true},
		{`"oui"`, true},
		{`"non"`, false},
		{`""`, false},
		{`null`, false},
	}
	for _, tc := range tests {
		var b LooseBool
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &b), tc.raw)
		assert.Equal(t, tc.want, b.Bool(), tc.raw)
	}
}

func TestLooseBoolRejectsGarbage(t *testing.T) {
	var b LooseBool
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &b))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &b))
}

func TestLooseIntUnmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{`12`, 12},
		{`"12"`, 12},
		{`" 7 "`, 7},
		{`""`, 0},
		{`-3`, -3},
	}
	for _, tc := range tests {
		var i LooseInt
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &i), tc.raw)
		assert.Equal(t, tc.want, i.Int(), tc.raw)
	}

	var i LooseInt
	assert.Error(t, json.Unmarshal([]byte(`"twelve"`), &i))
	assert.Error(t, json.Unmarshal([]byte(`12.5`), &i))
}

func TestLooseFloatUnmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{`12.5`, 12.5},
		{`"12.5"`, 12.5},
		{`42`, 42},
		{`""`, 0},
	}
	for _, tc := range tests {
		var f LooseFloat
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &f), tc.raw)
		assert.Equal(t, tc.want, f.Float64(), tc.raw)
	}

	var f LooseFloat
	assert.Error(t, json.Unmarshal([]byte(`"cheap"`), &f))
}

func TestLooseFieldsInsideStruct(t *testing.T) {
	var payload struct {
		Disponible LooseBool  `json:"disponible"`
		Capacity   LooseInt   `json:"capacity"`
		Price      LooseFloat `json:"price"`
	}
	raw := `{"disponible": "1", "capacity": "15", "price": "12.50"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	assert.True(t, payload.Disponible.Bool())
	assert.Equal(t, 15, payload.Capacity.Int())
	assert.Equal(t, 12.5, payload.Price.Float64())
}

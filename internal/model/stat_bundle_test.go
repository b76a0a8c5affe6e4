package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatBundle(t *testing.T) {
	b, err := NewStatBundle(map[string]int32{"power": 63, "Precision": 45, "condi": 10})
	require.NoError(t, err)
	assert.Equal(t, int32(63), b.Get(AttrPower))
	assert.Equal(t, int32(45), b.Get(AttrPrecision))
	assert.Equal(t, int32(10), b.Get(AttrConditionDamage))

	_, err = NewStatBundle(map[string]int32{"luck": 1})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestStatBundle_ValueSemantics(t *testing.T) {
	a := BaselineStats(1000)
	b := a.With(AttrFerocity, 300)

	assert.Zero(t, a.Get(AttrFerocity), "With must not mutate the receiver")
	assert.Equal(t, int32(300), b.Get(AttrFerocity))

	sum := a.Add(b)
	assert.Equal(t, int32(2000), sum.Get(AttrPower))
	assert.Equal(t, int32(1000), a.Get(AttrPower))

	assert.Zero(t, a.Get(AttributeCount))
	assert.Equal(t, a, a.With(AttributeCount, 5))
}

func TestStatBundle_Scale(t *testing.T) {
	b := StatBundle{}.With(AttrPower, 3).With(AttrToughness, -3)

	got := b.Scale(5, 2)
	assert.Equal(t, int32(8), got.Get(AttrPower), "7.5 rounds away from zero")
	assert.Equal(t, int32(-8), got.Get(AttrToughness))

	assert.True(t, b.Scale(1, 0).IsZero())
}

func TestStatBundle_MapAndString(t *testing.T) {
	b := StatBundle{}.With(AttrHealingPower, 120).With(AttrPower, 60)

	assert.Equal(t, map[string]int32{"power": 60, "healing_power": 120}, b.Map())
	assert.Equal(t, "{power: 60, healing_power: 120}", b.String())
	assert.True(t, b.Touches(AttrVitality, AttrPower))
	assert.False(t, b.Touches(AttrVitality))
}

func TestParseAttribute(t *testing.T) {
	tests := []struct {
		in   string
		want Attribute
		ok   bool
	}{
		{"power", AttrPower, true},
		{" Healing Power ", AttrHealingPower, true},
		{"condi", AttrConditionDamage, true},
		{"boon_duration", AttrConcentration, true},
		{"condition_duration", AttrExpertise, true},
		{"crit_chance", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseAttribute(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}

	for _, a := range Attributes() {
		back, ok := ParseAttribute(a.String())
		require.True(t, ok)
		assert.Equal(t, a, back)
	}
}

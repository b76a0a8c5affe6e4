package model

import (
	"fmt"
	"math"
	"strings"
)

// StatBundle maps each attribute to an integer magnitude.
// Value type: all methods return a new bundle and never mutate the receiver.
type StatBundle [AttributeCount]int32

// NewStatBundle builds a bundle from attribute-name keys.
// Unknown names are returned as an error so data files fail loudly.
func NewStatBundle(values map[string]int32) (StatBundle, error) {
	var b StatBundle
	for name, v := range values {
		attr, ok := ParseAttribute(name)
		if !ok {
			return StatBundle{}, fmt.Errorf("unknown attribute %q: %w", name, ErrConfiguration)
		}
		b[attr] += v
	}
	return b, nil
}

// BaselineStats returns the level 80 base attributes (1000 power/precision/toughness/vitality).
func BaselineStats(base int32) StatBundle {
	var b StatBundle
	b[AttrPower] = base
	b[AttrPrecision] = base
	b[AttrToughness] = base
	b[AttrVitality] = base
	return b
}

// Get returns the magnitude for attr.
func (b StatBundle) Get(attr Attribute) int32 {
	if attr >= AttributeCount {
		return 0
	}
	return b[attr]
}

// With returns a copy with attr set to v.
func (b StatBundle) With(attr Attribute, v int32) StatBundle {
	if attr < AttributeCount {
		b[attr] = v
	}
	return b
}

// Add returns the element-wise sum.
func (b StatBundle) Add(other StatBundle) StatBundle {
	for i := range b {
		b[i] += other[i]
	}
	return b
}

// Scale multiplies every attribute by num/den, rounding half away from zero.
func (b StatBundle) Scale(num, den int32) StatBundle {
	if den == 0 {
		return StatBundle{}
	}
	for i := range b {
		b[i] = int32(math.Round(float64(b[i]) * float64(num) / float64(den)))
	}
	return b
}

// Touches reports whether any of attrs has a non-zero magnitude.
func (b StatBundle) Touches(attrs ...Attribute) bool {
	for _, a := range attrs {
		if b.Get(a) != 0 {
			return true
		}
	}
	return false
}

// IsZero reports whether every magnitude is zero.
func (b StatBundle) IsZero() bool {
	return b == StatBundle{}
}

// Map returns the non-zero entries keyed by attribute name.
func (b StatBundle) Map() map[string]int32 {
	m := make(map[string]int32, len(b))
	for i, v := range b {
		if v != 0 {
			m[Attribute(i).String()] = v
		}
	}
	return m
}

// String formats the non-zero entries in canonical order.
func (b StatBundle) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for i, v := range b {
		if v == 0 {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%s: %d", Attribute(i), v)
	}
	sb.WriteByte('}')
	return sb.String()
}

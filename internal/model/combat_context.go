package model

import (
	"maps"
	"strings"

	"github.com/udisondev/buildcraft/internal/constants"
)

// Condition names understood by the resolver.
const (
	ConditionVulnerability = "vulnerability"
)

// CombatContext holds transient combat state for a single evaluation:
// boons on the player and conditions on the target.
// Value type; build with NewCombatContext and the With* helpers.
type CombatContext struct {
	MightStacks      int
	Fury             bool
	TargetConditions map[string]int
}

// NewCombatContext creates a context with might clamped to [0, 25]
// and a private copy of the condition map (keys lower-cased).
func NewCombatContext(might int, fury bool, conditions map[string]int) CombatContext {
	ctx := CombatContext{
		MightStacks: clampInt(might, 0, constants.MaxMightStacks),
		Fury:        fury,
	}
	if len(conditions) > 0 {
		ctx.TargetConditions = make(map[string]int, len(conditions))
		for k, v := range conditions {
			if v < 0 {
				v = 0
			}
			ctx.TargetConditions[strings.ToLower(k)] += v
		}
	}
	return ctx
}

// WithMight returns a copy with the given might stacks.
func (c CombatContext) WithMight(stacks int) CombatContext {
	c.MightStacks = clampInt(stacks, 0, constants.MaxMightStacks)
	c.TargetConditions = maps.Clone(c.TargetConditions)
	return c
}

// WithFury returns a copy with fury toggled.
func (c CombatContext) WithFury(on bool) CombatContext {
	c.Fury = on
	c.TargetConditions = maps.Clone(c.TargetConditions)
	return c
}

// WithCondition returns a copy with the target condition set to stacks.
func (c CombatContext) WithCondition(name string, stacks int) CombatContext {
	conds := make(map[string]int, len(c.TargetConditions)+1)
	maps.Copy(conds, c.TargetConditions)
	if stacks < 0 {
		stacks = 0
	}
	conds[strings.ToLower(name)] = stacks
	c.TargetConditions = conds
	return c
}

// Might returns the effective might stacks (clamped even for literal-built contexts).
func (c CombatContext) Might() int {
	return clampInt(c.MightStacks, 0, constants.MaxMightStacks)
}

// Vulnerability returns vulnerability stacks on the target, capped at 25.
func (c CombatContext) Vulnerability() int {
	return clampInt(c.TargetConditions[ConditionVulnerability], 0, constants.MaxVulnerabilityStacks)
}

// VulnerabilityMultiplier returns 1 + 1% per vulnerability stack.
func (c CombatContext) VulnerabilityMultiplier() float64 {
	return 1 + constants.VulnerabilityPerStack*float64(c.Vulnerability())
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package model

import (
	"strings"

	"github.com/udisondev/buildcraft/internal/constants"
)

// Profession codes as stored in byte 1 of a build template code.
const (
	ProfessionGuardian     uint8 = 1
	ProfessionWarrior      uint8 = 2
	ProfessionEngineer     uint8 = 3
	ProfessionRanger       uint8 = 4
	ProfessionThief        uint8 = 5
	ProfessionElementalist uint8 = 6
	ProfessionMesmer       uint8 = 7
	ProfessionNecromancer  uint8 = 8
	ProfessionRevenant     uint8 = 9
)

// HealthTier groups professions by base health.
type HealthTier uint8

const (
	HealthTierLow HealthTier = iota
	HealthTierMedium
	HealthTierHigh
)

// BaseHealth returns the level 80 base health for the tier.
func (t HealthTier) BaseHealth() int32 {
	switch t {
	case HealthTierHigh:
		return constants.BaseHealthHigh
	case HealthTierMedium:
		return constants.BaseHealthMedium
	default:
		return constants.BaseHealthLow
	}
}

// ProfessionInfo describes a playable profession.
type ProfessionInfo struct {
	Code       uint8
	Name       string
	HealthTier HealthTier
}

var professions = []ProfessionInfo{
	{ProfessionGuardian, "Guardian", HealthTierLow},
	{ProfessionWarrior, "Warrior", HealthTierHigh},
	{ProfessionEngineer, "Engineer", HealthTierMedium},
	{ProfessionRanger, "Ranger", HealthTierMedium},
	{ProfessionThief, "Thief", HealthTierLow},
	{ProfessionElementalist, "Elementalist", HealthTierLow},
	{ProfessionMesmer, "Mesmer", HealthTierMedium},
	{ProfessionNecromancer, "Necromancer", HealthTierHigh},
	{ProfessionRevenant, "Revenant", HealthTierMedium},
}

// ProfessionByCode returns the profession for a template code (1..9).
func ProfessionByCode(code uint8) (ProfessionInfo, bool) {
	if code < 1 || int(code) > len(professions) {
		return ProfessionInfo{}, false
	}
	return professions[code-1], true
}

// ProfessionByName looks a profession up case-insensitively.
func ProfessionByName(name string) (ProfessionInfo, bool) {
	for _, p := range professions {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return ProfessionInfo{}, false
}

// Professions returns all professions ordered by code.
func Professions() []ProfessionInfo {
	out := make([]ProfessionInfo, len(professions))
	copy(out, professions)
	return out
}

// Package gear searches equipment for a role: a greedy armor-prefix solver and
// a rune/sigil/relic enumeration scored by the combat formulas.
package gear

import (
	"fmt"
	"strings"

	"github.com/udisondev/buildcraft/internal/data"
	"github.com/udisondev/buildcraft/internal/model"
)

// Role is the objective a build is optimized for.
type Role string

const (
	RoleDPS     Role = "dps"
	RoleTank    Role = "tank"
	RoleHeal    Role = "heal"
	RoleBoon    Role = "boon"
	RoleSupport Role = "support"
)

// Roles returns every known role.
func Roles() []Role {
	return []Role{RoleDPS, RoleTank, RoleHeal, RoleBoon, RoleSupport}
}

// ParseRole resolves a role name (case-insensitive).
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleDPS, RoleTank, RoleHeal, RoleBoon, RoleSupport:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q: %w", s, model.ErrInvalidValue)
}

// Flags returns the primary role flags used to filter upgrades.
func (r Role) Flags() data.RoleFlags {
	switch r {
	case RoleDPS:
		return data.FlagDPS
	case RoleTank:
		return data.FlagTank
	case RoleHeal:
		return data.FlagHeal
	case RoleBoon:
		return data.FlagBoon
	case RoleSupport:
		return data.FlagHeal | data.FlagBoon | data.FlagTank
	}
	return 0
}

// Mode is the game mode a build is played in.
type Mode string

const (
	ModePvE Mode = "pve"
	ModeWvW Mode = "wvw"
	ModePvP Mode = "pvp"
)

// ParseMode resolves a mode name; empty selects pve.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case "":
		return ModePvE, nil
	case ModePvE, ModeWvW, ModePvP:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q: %w", s, model.ErrInvalidValue)
}

// Experience is the player's skill level; it shifts how much a profile leans on offense.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceExpert       Experience = "expert"
)

// ParseExperience resolves an experience level; empty selects intermediate.
func ParseExperience(s string) (Experience, error) {
	e := Experience(strings.ToLower(strings.TrimSpace(s)))
	switch e {
	case "":
		return ExperienceIntermediate, nil
	case ExperienceBeginner, ExperienceIntermediate, ExperienceExpert:
		return e, nil
	}
	return "", fmt.Errorf("unknown experience %q: %w", s, model.ErrInvalidValue)
}

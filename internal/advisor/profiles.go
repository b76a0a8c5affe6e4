package advisor

import (
	"fmt"

	"github.com/udisondev/buildcraft/internal/config"
	"github.com/udisondev/buildcraft/internal/gear"
)

// ProfilesFromConfig applies role overrides from the config on top of the built-in tables.
func ProfilesFromConfig(roles map[string]config.RoleProfile) (gear.Profiles, error) {
	ps := gear.DefaultProfiles()
	for name, rp := range roles {
		role, err := gear.ParseRole(name)
		if err != nil {
			return nil, fmt.Errorf("config roles: %w", err)
		}

		var o gear.Override
		if rp.Blend != nil {
			o.Blend = &gear.ScoreBlend{
				Offense:       rp.Blend.Offense,
				Survivability: rp.Blend.Survivability,
				Healing:       rp.Blend.Healing,
				Boon:          rp.Blend.Boon,
			}
		}
		if rp.OffenseShare != nil {
			o.OffenseShare = make(map[gear.Experience]float64, len(rp.OffenseShare))
			for lvl, share := range rp.OffenseShare {
				exp, err := gear.ParseExperience(lvl)
				if err != nil {
					return nil, fmt.Errorf("config roles.%s: %w", name, err)
				}
				o.OffenseShare[exp] = share
			}
		}
		if rp.Floors != nil {
			o.Floors = make([]gear.Floor, 0, len(rp.Floors))
			for _, f := range rp.Floors {
				floor := gear.Floor{Stat: f.Stat, Min: f.Min}
				for _, m := range f.Modes {
					mode, err := gear.ParseMode(m)
					if err != nil {
						return nil, fmt.Errorf("config roles.%s: %w", name, err)
					}
					floor.Modes = append(floor.Modes, mode)
				}
				o.Floors = append(o.Floors, floor)
			}
		}

		if ps, err = ps.With(role, o); err != nil {
			return nil, fmt.Errorf("config roles.%s: %w", name, err)
		}
	}
	return ps, nil
}

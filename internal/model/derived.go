package model

// DerivedAttributes are the combat-relevant quantities produced by the resolver.
// Read-only once computed.
type DerivedAttributes struct {
	EffectivePower       float64
	ConditionDamage      float64
	CritChance           float64 // [0, 1]
	CritDamageMultiplier float64 // >= 1
	MaxHealth            float64
	Toughness            float64
	DamageMultiplier     float64 // strike/condition/all multipliers × vulnerability

	HealingPower    float64
	Concentration   float64
	Expertise       float64
	BoonDuration    float64 // fraction, 0.25 = +25%
	OutgoingHealing float64 // fraction
	IncomingHealing float64 // fraction
	ProcDamage      float64 // raw damage per rotation before multipliers

	// Totals are the attribute totals after might, flat and percent steps, rounded.
	Totals StatBundle
}

package constants

// Game balance constants for level 80 characters.
//
// Все формулы AttributeResolver / DamageEstimator берут значения только отсюда,
// balance patch = правка одного файла.

// Base attributes every level 80 character starts with.
const (
	// BaseAttributeValue is the base power, precision, toughness and vitality at level 80.
	BaseAttributeValue = 1000
)

// Critical hit constants.
const (
	// BaseCritChance is the crit chance granted with baseline precision (5%).
	BaseCritChance = 0.05

	// PrecisionBaseline is the precision value that maps to BaseCritChance.
	PrecisionBaseline = 1000

	// PrecisionPerCritPercent is the amount of precision above the baseline for +1% crit chance.
	PrecisionPerCritPercent = 21.0

	// FuryCritChance is the flat crit chance granted by Fury.
	FuryCritChance = 0.20

	// BaseCritDamage is the crit damage multiplier with zero ferocity (150%).
	BaseCritDamage = 1.5

	// FerocityPerCritDamagePercent is the ferocity required for +1% crit damage.
	FerocityPerCritDamagePercent = 15.0
)

// Boon and condition constants.
const (
	// MaxMightStacks caps the number of might stacks.
	MaxMightStacks = 25

	// MightPowerPerStack is the power granted per might stack.
	MightPowerPerStack = 34

	// MightConditionDamagePerStack is the condition damage granted per might stack.
	MightConditionDamagePerStack = 34

	// MaxVulnerabilityStacks caps vulnerability on a target.
	MaxVulnerabilityStacks = 25

	// VulnerabilityPerStack is the incoming damage increase per vulnerability stack (1%).
	VulnerabilityPerStack = 0.01

	// ConcentrationPerBoonDurationPercent: 15 concentration = +1% boon duration.
	ConcentrationPerBoonDurationPercent = 15.0

	// ExpertisePerConditionDurationPercent: 15 expertise = +1% condition duration.
	ExpertisePerConditionDurationPercent = 15.0
)

// Health constants.
// max_health = base health (profession tier) + vitality × HealthPerVitality.
const (
	HealthPerVitality = 10

	// BaseHealthLow is the level 80 base health of low-health professions.
	BaseHealthLow = 1645

	// BaseHealthMedium is the level 80 base health of medium-health professions.
	BaseHealthMedium = 5922

	// BaseHealthHigh is the level 80 base health of high-health professions.
	BaseHealthHigh = 9212
)

// Strike damage constants.
const (
	// DamageDivisor is the armor-independent divisor of the strike formula.
	DamageDivisor = 1000.0

	// DefaultWeaponStrength is used when a rotation skill does not name one.
	DefaultWeaponStrength = 1000.0
)

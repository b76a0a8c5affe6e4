package model

import "errors"

// Error classes shared by the engine packages.
// Callers match with errors.Is; concrete errors wrap one of these with context.
var (
	// ErrFormat: malformed build code (bad base64, wrong type byte, short header).
	ErrFormat = errors.New("malformed build code")

	// ErrConfiguration: empty or inconsistent catalogs, a deployment/data problem.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvalidValue: caller input failed validation (unknown role, out-of-range number).
	ErrInvalidValue = errors.New("invalid value")
)

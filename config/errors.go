package config

import "errors"

var (
	// ErrOptionViolation is returned by New when a functional option or
	// a loaded YAML document falls outside the field's valid range
	// (spec §6 range annotations, e.g. "numHeads: 1..16").
	ErrOptionViolation = errors.New("config: value out of range")
)

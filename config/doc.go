// Package config holds the routing engine's flat, validated configuration
// struct (spec §6: "a flat struct with the recognized options enumerated")
// plus YAML load/dump, grounded on the teacher's functional-options
// builderConfig pattern (package builder).
package config

package bvcalc

import (
	"math"

	"github.com/SwiggitySwerve/megamek-web-sub008/internal/rules"
)

// Movement is a unit's derived movement profile. The enhancement flags
// are read through from the configuration, never recomputed.
type Movement struct {
	WalkMP       int
	RunMP        int
	JumpMP       int
	MASC         bool
	TSM          bool
	Supercharger bool
}

// CalculateMovement derives the movement profile. Run MP always rounds
// up: ceil(walk × 1.5).
func CalculateMovement(cfg rules.MechConfig) Movement {
	return Movement{
		WalkMP:       cfg.WalkMP,
		RunMP:        RunMP(cfg.WalkMP),
		JumpMP:       cfg.JumpMP,
		MASC:         cfg.Enhancements.MASC,
		TSM:          cfg.Enhancements.TSM,
		Supercharger: cfg.Enhancements.Supercharger,
	}
}

// RunMP is ceil(walk × 1.5).
func RunMP(walkMP int) int {
	return int(math.Ceil(float64(walkMP) * 1.5))
}

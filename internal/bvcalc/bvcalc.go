// Package bvcalc derives the summary numbers of a validated
// configuration: Battle Value, C-Bill cost, heat balance and movement.
// Everything here is a pure function over in-memory structures.
package bvcalc

import (
	"math"

	"github.com/SwiggitySwerve/megamek-web-sub008/internal/rules"
)

// Result holds the calculated BV breakdown.
type Result struct {
	FinalBV     int
	DefensiveBV float64
	OffensiveBV float64
	ArmorBV     float64
	StructureBV float64
	DefEquipBV  float64
	WeaponBV    float64
	CoolingMult float64
	SpeedFactor float64
}

// tonnage estimate multiplier when no mounted weapon matches the table.
const fallbackOffensePerTon = 8.0

// CalculateBattleValue computes the combat rating of a configuration and
// its mounted equipment.
//
// Defensive: armor points at 2.5 each plus structure points at 1.5 each
// plus defensive equipment BV, scaled by a cooling multiplier that
// rewards heat-sink capacity relative to generated heat. Offensive: the
// summed weapon BV table, or a tonnage estimate when nothing matches.
// The total is scaled by the speed factor and rounded.
func CalculateBattleValue(cfg rules.MechConfig, equipment []Equipment) Result {
	var r Result

	armorPoints := cfg.Armor.TotalPoints()
	structurePoints := rules.TotalInternalStructure(cfg.Tonnage)
	r.ArmorBV = float64(armorPoints) * 2.5
	r.StructureBV = float64(structurePoints) * 1.5

	for _, e := range equipment {
		if e.Defensive {
			r.DefEquipBV += float64(e.BV)
		}
	}

	heat := CalculateHeatProfile(cfg, equipment)
	r.CoolingMult = coolingMultiplier(heat)
	r.DefensiveBV = (r.ArmorBV + r.StructureBV + r.DefEquipBV) * r.CoolingMult

	for _, e := range equipment {
		if !e.Defensive {
			r.WeaponBV += float64(e.BV)
		}
	}
	if r.WeaponBV == 0 {
		r.WeaponBV = float64(cfg.Tonnage) * fallbackOffensePerTon
	}
	r.OffensiveBV = r.WeaponBV

	mv := CalculateMovement(cfg)
	r.SpeedFactor = SpeedFactor(mv.RunMP, mv.JumpMP)

	r.FinalBV = int(math.Round((r.DefensiveBV + r.OffensiveBV) * r.SpeedFactor))
	return r
}

// coolingMultiplier rewards dissipation capacity: a fully heat-neutral
// unit gets the full 1.2 multiplier, an uncooled one gets 1.0.
func coolingMultiplier(h HeatProfile) float64 {
	if h.Generated <= 0 {
		return 1.2
	}
	ratio := float64(h.Dissipated) / float64(h.Generated)
	if ratio > 1 {
		ratio = 1
	}
	return 1.0 + 0.2*ratio
}

package bvcalc

import "github.com/SwiggitySwerve/megamek-web-sub008/internal/rules"

// TMM returns the Target Movement Modifier for a movement point total.
func TMM(mp int) int {
	switch {
	case mp <= 2:
		return 0
	case mp <= 4:
		return 1
	case mp <= 6:
		return 2
	case mp <= 9:
		return 3
	case mp <= 12:
		return 4
	case mp <= 17:
		return 5
	case mp <= 24:
		return 6
	default:
		return 7
	}
}

// speedFactorCap bounds the BV speed multiplier.
const speedFactorCap = 2.24

// jumpBonusCap bounds the additive jump contribution to the speed factor.
const jumpBonusCap = 0.5

// SpeedFactor derives the BV speed multiplier from run and jump MP: the
// TMM of the better of the two, plus a capped jump bonus.
func SpeedFactor(runMP, jumpMP int) float64 {
	mp := runMP
	if jumpMP > mp {
		mp = jumpMP
	}
	factor := 1.0 + float64(TMM(mp))/10.0

	if jumpMP > 0 {
		bonus := float64((jumpMP+1)/2) / 10.0
		if bonus > jumpBonusCap {
			bonus = jumpBonusCap
		}
		factor += bonus
	}
	if factor > speedFactorCap {
		factor = speedFactorCap
	}
	return factor
}

// MovementHeat is the per-turn heat from moving: 2 for running, or the
// jump MP (minimum 3) when jumping runs hotter.
func MovementHeat(runMP, jumpMP int) int {
	heat := 2
	if jumpMP > 0 {
		jumpHeat := jumpMP
		if jumpHeat < 3 {
			jumpHeat = 3
		}
		if jumpHeat > heat {
			heat = jumpHeat
		}
	}
	return heat
}

// TechCostMultiplier scales component costs by tech base.
func TechCostMultiplier(t rules.TechBase) float64 {
	if t == rules.TechClan {
		return 1.25
	}
	return 1.0
}

// CockpitCost is the fixed C-Bill cost per cockpit type.
func CockpitCost(t rules.CockpitType) int64 {
	switch t {
	case rules.CockpitStandard:
		return 200000
	case rules.CockpitSmall:
		return 175000
	case rules.CockpitCommandConsole:
		return 500000
	case rules.CockpitPrimitive:
		return 100000
	}
	panic("bvcalc: unhandled cockpit type")
}

// StructureCostPerTon is the C-Bill cost of one structure ton.
func StructureCostPerTon(t rules.StructureType) int64 {
	switch t {
	case rules.StructureStandard:
		return 400
	case rules.StructureEndoSteel, rules.StructureComposite:
		return 1600
	case rules.StructureReinforced:
		return 6400
	}
	panic("bvcalc: unhandled structure type")
}

// armorBaseCostPerPoint is the C-Bill cost of one standard armor point.
const armorBaseCostPerPoint = 625

// ArmorCostMultiplier scales the per-point armor cost by type.
func ArmorCostMultiplier(t rules.ArmorType) float64 {
	switch t {
	case rules.ArmorStandard:
		return 1.0
	case rules.ArmorFerroFibrousIS, rules.ArmorFerroFibrousClan:
		return 2.0
	case rules.ArmorLightFerro:
		return 1.5
	case rules.ArmorHeavyFerro:
		return 2.5
	case rules.ArmorStealth:
		return 5.0
	}
	panic("bvcalc: unhandled armor type")
}

// HeatSinkCost is the per-sink C-Bill cost for external sinks.
func HeatSinkCost(t rules.HeatSinkType) int64 {
	switch t {
	case rules.HeatSinkSingle:
		return 2000
	case rules.HeatSinkDoubleIS, rules.HeatSinkDoubleClan:
		return 6000
	}
	panic("bvcalc: unhandled heat sink type")
}

package rules

import "math"

// Static construction lookup tables. Values follow TechManual; every table
// is keyed by an enum and switched exhaustively so a missing variant is a
// compile-time problem, not a silent default.

const (
	MinTonnage      = 20
	MaxTonnage      = 100
	MinEngineRating = 10
	MaxEngineRating = 500
	MaxHeadArmor    = 9
	MinHeatSinks    = 10
)

// engineBaseWeight is the standard fusion engine weight by rating. The
// progression is not a closed formula; the published table is reproduced
// verbatim for ratings 10..500 in steps of 5.
var engineBaseWeight = map[int]float64{
	10: 0.5, 15: 0.5, 20: 0.5, 25: 0.5, 30: 1.0,
	35: 1.0, 40: 1.0, 45: 1.0, 50: 1.5, 55: 1.5,
	60: 1.5, 65: 2.0, 70: 2.0, 75: 2.0, 80: 2.5,
	85: 2.5, 90: 3.0, 95: 3.0, 100: 3.0, 105: 3.5,
	110: 3.5, 115: 4.0, 120: 4.0, 125: 4.0, 130: 4.5,
	135: 4.5, 140: 5.0, 145: 5.0, 150: 5.5, 155: 5.5,
	160: 6.0, 165: 6.0, 170: 6.0, 175: 7.0, 180: 7.0,
	185: 7.5, 190: 7.5, 195: 8.0, 200: 8.5, 205: 8.5,
	210: 9.0, 215: 9.5, 220: 10.0, 225: 10.0, 230: 10.5,
	235: 11.0, 240: 11.5, 245: 12.0, 250: 12.5, 255: 13.0,
	260: 13.5, 265: 14.0, 270: 14.5, 275: 15.5, 280: 16.0,
	285: 16.5, 290: 17.5, 295: 18.0, 300: 19.0, 305: 19.5,
	310: 20.5, 315: 21.5, 320: 22.5, 325: 23.5, 330: 24.5,
	335: 25.5, 340: 27.0, 345: 28.5, 350: 29.5, 355: 31.5,
	360: 33.0, 365: 34.5, 370: 36.5, 375: 38.5, 380: 41.0,
	385: 43.5, 390: 46.0, 395: 49.0, 400: 52.5, 405: 56.5,
	410: 61.0, 415: 66.5, 420: 72.5, 425: 79.5, 430: 87.5,
	435: 96.5, 440: 107.0, 445: 119.5, 450: 133.5, 455: 150.0,
	460: 168.5, 465: 190.0, 470: 214.5, 475: 243.0, 480: 275.5,
	485: 313.0, 490: 356.0, 495: 405.5, 500: 462.5,
}

// EngineBaseWeight returns the standard fusion weight for a rating, or
// false for ratings outside the table.
func EngineBaseWeight(rating int) (float64, bool) {
	w, ok := engineBaseWeight[rating]
	return w, ok
}

// ValidEngineRatings returns every legal rating in ascending order.
func ValidEngineRatings() []int {
	ratings := make([]int, 0, (MaxEngineRating-MinEngineRating)/5+1)
	for r := MinEngineRating; r <= MaxEngineRating; r += 5 {
		ratings = append(ratings, r)
	}
	return ratings
}

// EngineWeightFactor is the multiplier applied to the base engine weight.
func EngineWeightFactor(t EngineType) float64 {
	switch t {
	case EngineStandard:
		return 1.0
	case EngineXL:
		return 0.5
	case EngineLight:
		return 0.75
	case EngineCompact:
		return 1.5
	case EngineICE:
		return 2.0
	}
	panic("rules: unhandled engine type")
}

// EngineSlots returns center-torso and per-side-torso slot counts. Clan
// XL engines take one fewer side-torso slot than their Inner Sphere
// counterparts.
func EngineSlots(t EngineType, tech TechBase) (ct, side int) {
	switch t {
	case EngineStandard, EngineICE:
		return 6, 0
	case EngineXL:
		if tech == TechClan {
			return 6, 2
		}
		return 6, 3
	case EngineLight:
		return 6, 2
	case EngineCompact:
		return 3, 0
	}
	panic("rules: unhandled engine type")
}

// TargetingComputerSlots is the fixed footprint of a targeting computer.
func TargetingComputerSlots(tech TechBase) int {
	if tech == TechClan {
		return 3
	}
	return 4
}

// StructureWeightMultiplier is the tonnage fraction the structure weighs.
func StructureWeightMultiplier(t StructureType) float64 {
	switch t {
	case StructureStandard:
		return 0.10
	case StructureEndoSteel:
		return 0.05
	case StructureComposite:
		return 0.05
	case StructureReinforced:
		return 0.20
	}
	panic("rules: unhandled structure type")
}

// StructureSlots returns the distributed critical slots the structure
// occupies. Endo Steel differs by tech base.
func StructureSlots(t StructureType, tech TechBase) int {
	switch t {
	case StructureStandard, StructureComposite, StructureReinforced:
		return 0
	case StructureEndoSteel:
		if tech == TechClan {
			return 7
		}
		return 14
	}
	panic("rules: unhandled structure type")
}

// GyroWeightFactor is the multiplier on ceil(rating/100) tons.
func GyroWeightFactor(t GyroType) float64 {
	switch t {
	case GyroStandard:
		return 1.0
	case GyroXL:
		return 0.5
	case GyroCompact:
		return 1.5
	case GyroHeavyDuty:
		return 2.0
	}
	panic("rules: unhandled gyro type")
}

// GyroSlots is the fixed center-torso slot count per gyro type.
func GyroSlots(t GyroType) int {
	switch t {
	case GyroStandard, GyroHeavyDuty:
		return 4
	case GyroXL:
		return 6
	case GyroCompact:
		return 2
	}
	panic("rules: unhandled gyro type")
}

// CockpitWeight is the fixed cockpit weight in tons.
func CockpitWeight(t CockpitType) float64 {
	switch t {
	case CockpitStandard:
		return 3.0
	case CockpitSmall:
		return 2.0
	case CockpitCommandConsole:
		return 6.0
	case CockpitPrimitive:
		return 5.0
	}
	panic("rules: unhandled cockpit type")
}

// CockpitSlots is the fixed head slot count per cockpit type.
func CockpitSlots(t CockpitType) int {
	switch t {
	case CockpitStandard, CockpitPrimitive:
		return 5
	case CockpitSmall:
		return 4
	case CockpitCommandConsole:
		return 6
	}
	panic("rules: unhandled cockpit type")
}

// HeatSinkWeight is the per-sink weight for externally mounted sinks.
func HeatSinkWeight(t HeatSinkType) float64 {
	switch t {
	case HeatSinkSingle, HeatSinkDoubleIS, HeatSinkDoubleClan:
		return 1.0
	}
	panic("rules: unhandled heat sink type")
}

// HeatSinkSlots is the per-sink critical slot count for external sinks.
func HeatSinkSlots(t HeatSinkType) int {
	switch t {
	case HeatSinkSingle:
		return 1
	case HeatSinkDoubleIS:
		return 3
	case HeatSinkDoubleClan:
		return 2
	}
	panic("rules: unhandled heat sink type")
}

// HeatSinkDissipation is the heat removed per sink per turn.
func HeatSinkDissipation(t HeatSinkType) int {
	switch t {
	case HeatSinkSingle:
		return 1
	case HeatSinkDoubleIS, HeatSinkDoubleClan:
		return 2
	}
	panic("rules: unhandled heat sink type")
}

// ArmorPointsPerTon is the canonical protection density per armor type.
// The construction-rules table is authoritative; see DESIGN.md for the
// resolution of the conflicting helper table.
func ArmorPointsPerTon(t ArmorType) float64 {
	switch t {
	case ArmorStandard, ArmorStealth:
		return 16.0
	case ArmorFerroFibrousIS:
		return 17.92
	case ArmorFerroFibrousClan:
		return 19.2
	case ArmorLightFerro:
		return 16.96
	case ArmorHeavyFerro:
		return 19.2
	}
	panic("rules: unhandled armor type")
}

// ArmorSlots is the distributed critical slot count per armor type.
func ArmorSlots(t ArmorType) int {
	switch t {
	case ArmorStandard:
		return 0
	case ArmorFerroFibrousIS:
		return 14
	case ArmorFerroFibrousClan, ArmorLightFerro:
		return 7
	case ArmorHeavyFerro:
		return 21
	case ArmorStealth:
		return 12
	}
	panic("rules: unhandled armor type")
}

// internalStructureRow holds the per-location structure points for one
// tonnage: center torso, side torso, arm, leg. Head is always 3.
type internalStructureRow struct {
	ct, side, arm, leg int
}

var internalStructureTable = map[int]internalStructureRow{
	20:  {6, 5, 3, 4},
	25:  {8, 6, 4, 6},
	30:  {10, 7, 5, 7},
	35:  {11, 8, 6, 8},
	40:  {12, 10, 6, 10},
	45:  {14, 11, 7, 11},
	50:  {16, 12, 8, 12},
	55:  {18, 13, 9, 13},
	60:  {20, 14, 10, 14},
	65:  {21, 15, 10, 15},
	70:  {22, 15, 11, 15},
	75:  {23, 16, 12, 16},
	80:  {25, 17, 13, 17},
	85:  {27, 18, 14, 18},
	90:  {29, 19, 15, 19},
	95:  {30, 20, 16, 20},
	100: {31, 21, 17, 21},
}

// InternalStructurePoints returns the structure points for one location at
// the given tonnage, or false for tonnages outside the table.
func InternalStructurePoints(tonnage int, loc Location) (int, bool) {
	row, ok := internalStructureTable[tonnage]
	if !ok {
		return 0, false
	}
	switch loc {
	case Head:
		return 3, true
	case CenterTorso:
		return row.ct, true
	case LeftTorso, RightTorso:
		return row.side, true
	case LeftArm, RightArm:
		return row.arm, true
	case LeftLeg, RightLeg:
		return row.leg, true
	}
	return 0, false
}

// TotalInternalStructure sums structure points across all locations.
func TotalInternalStructure(tonnage int) int {
	total := 0
	for _, loc := range Locations() {
		pts, ok := InternalStructurePoints(tonnage, loc)
		if !ok {
			return 0
		}
		total += pts
	}
	return total
}

// MaxArmorPoints is the armor cap for one location: twice the structure,
// with the head fixed at 9.
func MaxArmorPoints(tonnage int, loc Location) int {
	if loc == Head {
		return MaxHeadArmor
	}
	pts, ok := InternalStructurePoints(tonnage, loc)
	if !ok {
		return 0
	}
	return 2 * pts
}

// CeilHalfTon rounds a weight up to the next half ton.
func CeilHalfTon(tons float64) float64 {
	return math.Ceil(tons*2) / 2
}

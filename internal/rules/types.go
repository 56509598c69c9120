package rules

import "fmt"

// TechBase distinguishes Inner Sphere and Clan component variants.
type TechBase int

const (
	TechInnerSphere TechBase = iota
	TechClan
)

func (t TechBase) String() string {
	if t == TechClan {
		return "CLAN"
	}
	return "INNER_SPHERE"
}

// ParseTechBase maps serialized tech base names onto the enum.
func ParseTechBase(s string) (TechBase, error) {
	switch s {
	case "INNER_SPHERE", "Inner Sphere", "IS":
		return TechInnerSphere, nil
	case "CLAN", "Clan":
		return TechClan, nil
	}
	return TechInnerSphere, fmt.Errorf("unknown tech base %q", s)
}

// EngineType enumerates engine variants.
type EngineType int

const (
	EngineStandard EngineType = iota
	EngineXL
	EngineLight
	EngineCompact
	EngineICE
)

var engineNames = [...]string{"STANDARD", "XL", "LIGHT", "COMPACT", "ICE"}

func (e EngineType) String() string { return engineNames[e] }

func ParseEngineType(s string) (EngineType, error) {
	for i, n := range engineNames {
		if n == s {
			return EngineType(i), nil
		}
	}
	return EngineStandard, fmt.Errorf("unknown engine type %q", s)
}

// IsFusion reports whether the engine provides integral heat sinks.
func (e EngineType) IsFusion() bool { return e != EngineICE }

// GyroType enumerates gyro variants.
type GyroType int

const (
	GyroStandard GyroType = iota
	GyroXL
	GyroCompact
	GyroHeavyDuty
)

var gyroNames = [...]string{"STANDARD", "XL", "COMPACT", "HEAVY_DUTY"}

func (g GyroType) String() string { return gyroNames[g] }

func ParseGyroType(s string) (GyroType, error) {
	for i, n := range gyroNames {
		if n == s {
			return GyroType(i), nil
		}
	}
	return GyroStandard, fmt.Errorf("unknown gyro type %q", s)
}

// StructureType enumerates internal structure variants.
type StructureType int

const (
	StructureStandard StructureType = iota
	StructureEndoSteel
	StructureComposite
	StructureReinforced
)

var structureNames = [...]string{"STANDARD", "ENDO_STEEL", "COMPOSITE", "REINFORCED"}

func (s StructureType) String() string { return structureNames[s] }

func ParseStructureType(s string) (StructureType, error) {
	for i, n := range structureNames {
		if n == s {
			return StructureType(i), nil
		}
	}
	return StructureStandard, fmt.Errorf("unknown structure type %q", s)
}

// CockpitType enumerates cockpit variants.
type CockpitType int

const (
	CockpitStandard CockpitType = iota
	CockpitSmall
	CockpitCommandConsole
	CockpitPrimitive
)

var cockpitNames = [...]string{"STANDARD", "SMALL", "COMMAND_CONSOLE", "PRIMITIVE"}

func (c CockpitType) String() string { return cockpitNames[c] }

func ParseCockpitType(s string) (CockpitType, error) {
	for i, n := range cockpitNames {
		if n == s {
			return CockpitType(i), nil
		}
	}
	return CockpitStandard, fmt.Errorf("unknown cockpit type %q", s)
}

// HeatSinkType enumerates heat sink variants.
type HeatSinkType int

const (
	HeatSinkSingle HeatSinkType = iota
	HeatSinkDoubleIS
	HeatSinkDoubleClan
)

var heatSinkNames = [...]string{"SINGLE", "DOUBLE_IS", "DOUBLE_CLAN"}

func (h HeatSinkType) String() string { return heatSinkNames[h] }

func ParseHeatSinkType(s string) (HeatSinkType, error) {
	switch s {
	case "SINGLE", "Single":
		return HeatSinkSingle, nil
	case "DOUBLE_IS", "DOUBLE", "IS Double":
		return HeatSinkDoubleIS, nil
	case "DOUBLE_CLAN", "Clan Double":
		return HeatSinkDoubleClan, nil
	}
	return HeatSinkSingle, fmt.Errorf("unknown heat sink type %q", s)
}

// ArmorType enumerates armor variants.
type ArmorType int

const (
	ArmorStandard ArmorType = iota
	ArmorFerroFibrousIS
	ArmorFerroFibrousClan
	ArmorLightFerro
	ArmorHeavyFerro
	ArmorStealth
)

var armorNames = [...]string{
	"STANDARD", "FERRO_FIBROUS_IS", "FERRO_FIBROUS_CLAN",
	"LIGHT_FERRO", "HEAVY_FERRO", "STEALTH",
}

func (a ArmorType) String() string { return armorNames[a] }

func ParseArmorType(s string) (ArmorType, error) {
	for i, n := range armorNames {
		if n == s {
			return ArmorType(i), nil
		}
	}
	return ArmorStandard, fmt.Errorf("unknown armor type %q", s)
}

// Location is one of the eight biped body locations.
type Location int

const (
	Head Location = iota
	CenterTorso
	LeftTorso
	RightTorso
	LeftArm
	RightArm
	LeftLeg
	RightLeg
)

var locationNames = [...]string{
	"HEAD", "CENTER_TORSO", "LEFT_TORSO", "RIGHT_TORSO",
	"LEFT_ARM", "RIGHT_ARM", "LEFT_LEG", "RIGHT_LEG",
}

func (l Location) String() string { return locationNames[l] }

func ParseLocation(s string) (Location, error) {
	for i, n := range locationNames {
		if n == s {
			return Location(i), nil
		}
	}
	return Head, fmt.Errorf("unknown location %q", s)
}

// Locations lists all biped locations in canonical order.
func Locations() []Location {
	return []Location{Head, CenterTorso, LeftTorso, RightTorso, LeftArm, RightArm, LeftLeg, RightLeg}
}

// IsTorso reports whether the location carries rear armor.
func (l Location) IsTorso() bool {
	return l == CenterTorso || l == LeftTorso || l == RightTorso
}

// ArmorPoints holds a per-location armor allocation. Rear is only
// meaningful for torso locations.
type ArmorPoints struct {
	Front int `json:"front"`
	Rear  int `json:"rear,omitempty"`
}

// Total is front plus rear.
func (p ArmorPoints) Total() int { return p.Front + p.Rear }

// MechConfig is the construction configuration for one BattleMech. It is
// the single source of truth for a unit; the rule engine is stateless and
// re-validates the whole config on every call.
type MechConfig struct {
	Tonnage      int
	TechBase     TechBase
	Engine       EngineConfig
	Gyro         GyroConfig
	Structure    StructureConfig
	Cockpit      CockpitType
	HeatSinks    HeatSinkConfig
	Armor        ArmorConfig
	WalkMP       int
	JumpMP       int
	Enhancements Enhancements
	Targeting    TargetingConfig
}

// EngineConfig pairs an engine type with its rating. Tech base matters
// for the side-torso slot footprint of XL engines.
type EngineConfig struct {
	Type   EngineType
	Rating int
	Tech   TechBase
}

// GyroConfig pairs a gyro type with its tech base. Gyro footprints do
// not differ by tech, but the tech base keys switch memory.
type GyroConfig struct {
	Type GyroType
	Tech TechBase
}

// StructureConfig pairs a structure type with its tech base; Endo Steel
// slot counts differ between Inner Sphere and Clan.
type StructureConfig struct {
	Type StructureType
	Tech TechBase
}

// TargetingConfig describes an optional targeting computer.
type TargetingConfig struct {
	Computer bool
	Tech     TechBase
}

// HeatSinkConfig pairs a heat sink type with the total mounted count,
// including engine-integral sinks.
type HeatSinkConfig struct {
	Type  HeatSinkType
	Count int
	Tech  TechBase
}

// ArmorConfig pairs an armor type with its per-location allocation.
type ArmorConfig struct {
	Type       ArmorType
	Tech       TechBase
	Allocation map[Location]ArmorPoints
}

// TotalPoints sums the allocation across all locations, front plus rear.
func (a ArmorConfig) TotalPoints() int {
	total := 0
	for _, p := range a.Allocation {
		total += p.Total()
	}
	return total
}

// Enhancements are read-through movement flags; the engine never derives
// them. TSM is an Inner Sphere technology and is dropped when the myomer
// subsystem switches to Clan.
type Enhancements struct {
	MASC         bool
	TSM          bool
	Supercharger bool
	MyomerTech   TechBase
	JumpJetTech  TechBase
}

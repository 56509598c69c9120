// Package techswitch re-derives one subsystem of a unit under a
// different tech base, rewrites its fixed critical reservations, and
// reports what happened to the equipment that was already placed.
package techswitch

import (
	"fmt"

	"github.com/SwiggitySwerve/megamek-web-sub008/internal/rules"
)

// Subsystem names one switchable component group of a unit.
type Subsystem int

const (
	SubsystemGyro Subsystem = iota
	SubsystemEngine
	SubsystemChassis
	SubsystemArmor
	SubsystemHeatSink
	SubsystemMovement
	SubsystemTargeting
	SubsystemMyomer
)

var subsystemNames = [...]string{
	"gyro", "engine", "chassis", "armor",
	"heatsink", "movement", "targeting", "myomer",
}

func (s Subsystem) String() string {
	if s < 0 || int(s) >= len(subsystemNames) {
		return fmt.Sprintf("subsystem(%d)", int(s))
	}
	return subsystemNames[s]
}

func (s Subsystem) valid() bool {
	return s >= 0 && int(s) < len(subsystemNames)
}

// SwitchOrder is the fixed sequence SwitchAllSubsystems applies. Engine
// and gyro go first so center-torso capacity settles before the armor
// and heat-sink footprints are recomputed.
func SwitchOrder() []Subsystem {
	return []Subsystem{
		SubsystemGyro, SubsystemEngine, SubsystemChassis, SubsystemArmor,
		SubsystemHeatSink, SubsystemMovement, SubsystemTargeting, SubsystemMyomer,
	}
}

// ArmorSettings is the switchable part of the armor subsystem; the
// per-location allocation stays with the unit.
type ArmorSettings struct {
	Type rules.ArmorType
	Tech rules.TechBase
}

// Settings is a cached copy of one subsystem's configuration. Only the
// fields of the owning subsystem are meaningful.
type Settings struct {
	Gyro         rules.GyroConfig
	Engine       rules.EngineConfig
	Structure    rules.StructureConfig
	Armor        ArmorSettings
	HeatSinks    rules.HeatSinkConfig
	Enhancements rules.Enhancements
	Targeting    rules.TargetingConfig
}

// Memory caches per-tech-base subsystem settings so that switching back
// restores exactly the earlier values rather than a generic default.
type Memory map[Subsystem]map[rules.TechBase]Settings

// Clone deep-copies the memory; a nil memory clones to an empty one.
func (m Memory) Clone() Memory {
	c := make(Memory, len(m))
	for sub, byTech := range m {
		inner := make(map[rules.TechBase]Settings, len(byTech))
		for tech, s := range byTech {
			inner[tech] = s
		}
		c[sub] = inner
	}
	return c
}

// Validate rejects memory keyed by unknown subsystems or tech bases.
func (m Memory) Validate() error {
	for sub, byTech := range m {
		if !sub.valid() {
			return fmt.Errorf("memory holds unknown subsystem %d", int(sub))
		}
		for tech := range byTech {
			if tech != rules.TechInnerSphere && tech != rules.TechClan {
				return fmt.Errorf("memory for %s holds unknown tech base %d", sub, int(tech))
			}
		}
	}
	return nil
}

func (m Memory) lookup(sub Subsystem, tech rules.TechBase) (Settings, bool) {
	byTech, ok := m[sub]
	if !ok {
		return Settings{}, false
	}
	s, ok := byTech[tech]
	return s, ok
}

func (m Memory) store(sub Subsystem, tech rules.TechBase, s Settings) {
	if m[sub] == nil {
		m[sub] = make(map[rules.TechBase]Settings)
	}
	m[sub][tech] = s
}

// techOf reports the tech base a subsystem currently runs under.
func techOf(cfg *rules.MechConfig, sub Subsystem) rules.TechBase {
	switch sub {
	case SubsystemGyro:
		return cfg.Gyro.Tech
	case SubsystemEngine:
		return cfg.Engine.Tech
	case SubsystemChassis:
		return cfg.Structure.Tech
	case SubsystemArmor:
		return cfg.Armor.Tech
	case SubsystemHeatSink:
		return cfg.HeatSinks.Tech
	case SubsystemMovement:
		return cfg.Enhancements.JumpJetTech
	case SubsystemTargeting:
		return cfg.Targeting.Tech
	case SubsystemMyomer:
		return cfg.Enhancements.MyomerTech
	}
	panic("techswitch: unhandled subsystem")
}

// capture copies a subsystem's current settings out of a config.
func capture(cfg *rules.MechConfig, sub Subsystem) Settings {
	var s Settings
	switch sub {
	case SubsystemGyro:
		s.Gyro = cfg.Gyro
	case SubsystemEngine:
		s.Engine = cfg.Engine
	case SubsystemChassis:
		s.Structure = cfg.Structure
	case SubsystemArmor:
		s.Armor = ArmorSettings{Type: cfg.Armor.Type, Tech: cfg.Armor.Tech}
	case SubsystemHeatSink:
		s.HeatSinks = cfg.HeatSinks
	case SubsystemMovement, SubsystemMyomer:
		s.Enhancements = cfg.Enhancements
	case SubsystemTargeting:
		s.Targeting = cfg.Targeting
	default:
		panic("techswitch: unhandled subsystem")
	}
	return s
}

// apply writes a subsystem's settings into a config, leaving everything
// else untouched. The armor allocation map always stays with the unit.
func apply(cfg *rules.MechConfig, sub Subsystem, s Settings) {
	switch sub {
	case SubsystemGyro:
		cfg.Gyro = s.Gyro
	case SubsystemEngine:
		cfg.Engine = s.Engine
	case SubsystemChassis:
		cfg.Structure = s.Structure
	case SubsystemArmor:
		cfg.Armor.Type = s.Armor.Type
		cfg.Armor.Tech = s.Armor.Tech
	case SubsystemHeatSink:
		cfg.HeatSinks = s.HeatSinks
	case SubsystemMovement:
		cfg.Enhancements.JumpJetTech = s.Enhancements.JumpJetTech
	case SubsystemMyomer:
		cfg.Enhancements.MASC = s.Enhancements.MASC
		cfg.Enhancements.TSM = s.Enhancements.TSM
		cfg.Enhancements.Supercharger = s.Enhancements.Supercharger
		cfg.Enhancements.MyomerTech = s.Enhancements.MyomerTech
	case SubsystemTargeting:
		cfg.Targeting = s.Targeting
	default:
		panic("techswitch: unhandled subsystem")
	}
}

// defaultSettings derives a subsystem's configuration under a new tech
// base when no cached settings exist: the closest equivalent variant of
// what the unit already mounts.
func defaultSettings(cfg *rules.MechConfig, sub Subsystem, tech rules.TechBase) Settings {
	var s Settings
	switch sub {
	case SubsystemGyro:
		s.Gyro = rules.GyroConfig{Type: cfg.Gyro.Type, Tech: tech}
	case SubsystemEngine:
		s.Engine = rules.EngineConfig{Type: cfg.Engine.Type, Rating: cfg.Engine.Rating, Tech: tech}
	case SubsystemChassis:
		s.Structure = rules.StructureConfig{Type: cfg.Structure.Type, Tech: tech}
	case SubsystemArmor:
		s.Armor = ArmorSettings{Type: armorEquivalent(cfg.Armor.Type, tech), Tech: tech}
	case SubsystemHeatSink:
		s.HeatSinks = rules.HeatSinkConfig{
			Type:  heatSinkEquivalent(cfg.HeatSinks.Type, tech),
			Count: cfg.HeatSinks.Count,
			Tech:  tech,
		}
	case SubsystemMovement:
		s.Enhancements = cfg.Enhancements
		s.Enhancements.JumpJetTech = tech
	case SubsystemMyomer:
		s.Enhancements = cfg.Enhancements
		s.Enhancements.MyomerTech = tech
		if tech == rules.TechClan {
			// TSM is Inner Sphere only.
			s.Enhancements.TSM = false
		}
	case SubsystemTargeting:
		s.Targeting = rules.TargetingConfig{Computer: cfg.Targeting.Computer, Tech: tech}
	default:
		panic("techswitch: unhandled subsystem")
	}
	return s
}

func armorEquivalent(t rules.ArmorType, tech rules.TechBase) rules.ArmorType {
	if tech == rules.TechClan {
		switch t {
		case rules.ArmorFerroFibrousIS, rules.ArmorLightFerro, rules.ArmorHeavyFerro:
			return rules.ArmorFerroFibrousClan
		case rules.ArmorStealth:
			// No Clan stealth armor.
			return rules.ArmorStandard
		default:
			return t
		}
	}
	if t == rules.ArmorFerroFibrousClan {
		return rules.ArmorFerroFibrousIS
	}
	return t
}

func heatSinkEquivalent(t rules.HeatSinkType, tech rules.TechBase) rules.HeatSinkType {
	switch t {
	case rules.HeatSinkSingle:
		return rules.HeatSinkSingle
	case rules.HeatSinkDoubleIS, rules.HeatSinkDoubleClan:
		if tech == rules.TechClan {
			return rules.HeatSinkDoubleClan
		}
		return rules.HeatSinkDoubleIS
	}
	panic("techswitch: unhandled heat sink type")
}

package crits

import (
	"fmt"
	"math"

	"github.com/SwiggitySwerve/megamek-web-sub008/internal/rules"
)

// Fixed component names written into system slots.
const (
	NameEngine         = "Engine"
	NameGyro           = "Gyro"
	NameCockpit        = "Cockpit"
	NameLifeSupport    = "Life Support"
	NameSensors        = "Sensors"
	NameCommandConsole = "Command Console"
	NameHeatSink       = "Heat Sink"
	NameJumpJet        = "Jump Jet"
	NameTargetingComp  = "Targeting Computer"
	NameTSM            = "Triple Strength Myomer"
	NameMASC           = "MASC"
	NameSupercharger   = "Supercharger"
)

var armActuators = [4]string{"Shoulder", "Upper Arm Actuator", "Lower Arm Actuator", "Hand Actuator"}
var legActuators = [4]string{"Hip", "Upper Leg Actuator", "Lower Leg Actuator", "Foot Actuator"}

// StructureCritName is the fixed slot label for a structure type, or ""
// when the structure has no distributed crits.
func StructureCritName(t rules.StructureType) string {
	switch t {
	case rules.StructureEndoSteel:
		return "Endo Steel"
	case rules.StructureStandard, rules.StructureComposite, rules.StructureReinforced:
		return ""
	}
	panic("crits: unhandled structure type")
}

// ArmorCritName is the fixed slot label for an armor type, or "" when the
// armor has no distributed crits.
func ArmorCritName(t rules.ArmorType) string {
	switch t {
	case rules.ArmorStandard:
		return ""
	case rules.ArmorFerroFibrousIS:
		return "Ferro-Fibrous"
	case rules.ArmorFerroFibrousClan:
		return "Ferro-Fibrous (Clan)"
	case rules.ArmorLightFerro:
		return "Light Ferro-Fibrous"
	case rules.ArmorHeavyFerro:
		return "Heavy Ferro-Fibrous"
	case rules.ArmorStealth:
		return "Stealth Armor"
	}
	panic("crits: unhandled armor type")
}

// DistributionOrder is the deterministic location sequence used when
// spreading structure, armor and heat sink crits across the unit. The
// center torso comes last to keep it free for equipment.
func DistributionOrder() []rules.Location {
	return []rules.Location{
		rules.LeftTorso, rules.RightTorso,
		rules.LeftArm, rules.RightArm,
		rules.LeftLeg, rules.RightLeg,
		rules.Head, rules.CenterTorso,
	}
}

// jumpJetOrder spreads jump jets legs first, then torsos.
var jumpJetOrder = []rules.Location{
	rules.LeftLeg, rules.RightLeg,
	rules.LeftTorso, rules.RightTorso, rules.CenterTorso,
}

// JumpJetOrder is the location sequence jump jets mount into.
func JumpJetOrder() []rules.Location {
	return append([]rules.Location(nil), jumpJetOrder...)
}

// targetingOrder places the targeting computer torso first.
var targetingOrder = []rules.Location{
	rules.RightTorso, rules.LeftTorso,
	rules.RightArm, rules.LeftArm,
}

// PlaceFixedRunAt writes a fixed run at an exact position; every slot
// must be empty.
func (s *Sheet) PlaceFixedRunAt(loc rules.Location, start, size int, name string) error {
	if !s.runFreeAt(loc, start, size) {
		return &SlotError{Location: loc, Needed: size}
	}
	arr := s.slots[loc]
	for i := start; i < start+size; i++ {
		arr[i] = Slot{Kind: SlotFixed, Name: name}
	}
	return nil
}

// PlaceFixedRun writes a fixed contiguous run first-fit over the given
// location order.
func (s *Sheet) PlaceFixedRun(order []rules.Location, size int, name string) error {
	for _, loc := range order {
		if start := s.findRun(loc, size); start >= 0 {
			return s.PlaceFixedRunAt(loc, start, size, name)
		}
	}
	return &SlotError{Location: order[len(order)-1], Needed: size}
}

// PlaceFixedSingles writes count individual fixed slots first-fit over
// the given location order. Singles need not be contiguous.
func (s *Sheet) PlaceFixedSingles(order []rules.Location, count int, name string) error {
	remaining := count
	for _, loc := range order {
		arr := s.slots[loc]
		for i := range arr {
			if remaining == 0 {
				return nil
			}
			if arr[i].Kind == SlotEmpty {
				arr[i] = Slot{Kind: SlotFixed, Name: name}
				remaining--
			}
		}
	}
	if remaining > 0 {
		return fmt.Errorf("no room for %d of %d %s slots", remaining, count, name)
	}
	return nil
}

// OverlapGroups returns the equipment groups occupying any slot of the
// exact range, deduplicated in slot order.
func (s *Sheet) OverlapGroups(loc rules.Location, start, size int) []GroupID {
	arr := s.slots[loc]
	var out []GroupID
	seen := make(map[GroupID]bool)
	for i := start; i < start+size && i < len(arr); i++ {
		if arr[i].Kind == SlotEquipment && !seen[arr[i].Group] {
			seen[arr[i].Group] = true
			out = append(out, arr[i].Group)
		}
	}
	return out
}

// HasRun reports whether any location in order has a contiguous run of
// size empty slots.
func (s *Sheet) HasRun(order []rules.Location, size int) bool {
	for _, loc := range order {
		if s.findRun(loc, size) >= 0 {
			return true
		}
	}
	return false
}

// TotalEmpty sums the empty slots across the given locations.
func (s *Sheet) TotalEmpty(order []rules.Location) int {
	n := 0
	for _, loc := range order {
		n += s.EmptyCount(loc)
	}
	return n
}

// EmptyCount returns the number of empty slots in one location.
func (s *Sheet) EmptyCount(loc rules.Location) int {
	n := 0
	for _, sl := range s.slots[loc] {
		if sl.Kind == SlotEmpty {
			n++
		}
	}
	return n
}

// MASCSlots is the fixed footprint of a MASC system for a tonnage.
func MASCSlots(tonnage int) int {
	return int(math.Ceil(float64(tonnage) / 20.0))
}

// Item is one equipment entry to be placed on a sheet.
type Item struct {
	ID       string
	Location rules.Location
	Slots    int
}

// BuildSheet constructs the full critical sheet for a config: head and
// actuator fixed slots, the engine/gyro center-torso layout, distributed
// structure/armor/heat-sink/jump-jet crits, then the caller's equipment.
// Items that do not fit are recorded as unallocated rather than failing
// the build.
func BuildSheet(cfg rules.MechConfig, items []Item) (*Sheet, error) {
	s := NewSheet()

	if err := s.placeCockpit(cfg.Cockpit); err != nil {
		return nil, err
	}
	s.placeActuators()
	if err := s.PlaceEngineAndGyro(cfg.Engine, cfg.Gyro.Type); err != nil {
		return nil, err
	}
	if err := s.PlaceStructure(cfg.Structure); err != nil {
		return nil, err
	}
	if err := s.PlaceArmor(cfg.Armor.Type); err != nil {
		return nil, err
	}
	if err := s.PlaceHeatSinks(cfg.HeatSinks, cfg.Engine); err != nil {
		return nil, err
	}
	if err := s.PlaceJumpJets(cfg.JumpMP); err != nil {
		return nil, err
	}
	if err := s.PlaceTargeting(cfg.Targeting); err != nil {
		return nil, err
	}
	if err := s.PlaceMyomer(cfg.Enhancements, cfg.Tonnage); err != nil {
		return nil, err
	}

	for _, it := range items {
		if _, err := s.Allocate(it.Location, it.ID, it.Slots); err != nil {
			s.MarkUnallocated(it.ID)
		}
	}
	return s, nil
}

func (s *Sheet) placeCockpit(t rules.CockpitType) error {
	type fixed struct {
		idx  int
		name string
	}
	var layout []fixed
	switch t {
	case rules.CockpitStandard, rules.CockpitPrimitive:
		layout = []fixed{
			{0, NameLifeSupport}, {1, NameSensors}, {2, NameCockpit},
			{4, NameSensors}, {5, NameLifeSupport},
		}
	case rules.CockpitSmall:
		layout = []fixed{
			{0, NameLifeSupport}, {1, NameSensors}, {2, NameCockpit},
			{3, NameSensors},
		}
	case rules.CockpitCommandConsole:
		layout = []fixed{
			{0, NameLifeSupport}, {1, NameSensors}, {2, NameCockpit},
			{3, NameCommandConsole}, {4, NameSensors}, {5, NameLifeSupport},
		}
	default:
		panic("crits: unhandled cockpit type")
	}
	for _, f := range layout {
		if err := s.SetFixed(rules.Head, f.idx, f.name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sheet) placeActuators() {
	for i, n := range armActuators {
		// Fresh sheets are empty below the actuators; errors impossible.
		_ = s.SetFixed(rules.LeftArm, i, n)
		_ = s.SetFixed(rules.RightArm, i, n)
	}
	for i, n := range legActuators {
		_ = s.SetFixed(rules.LeftLeg, i, n)
		_ = s.SetFixed(rules.RightLeg, i, n)
	}
}

// PlaceEngineAndGyro writes the center-torso engine/gyro layout plus any
// side-torso engine slots: first engine block at slots 0-2, the gyro
// directly after it, and the second engine block after the gyro for
// six-slot engines.
func (s *Sheet) PlaceEngineAndGyro(engine rules.EngineConfig, gyro rules.GyroType) error {
	ct, side := rules.EngineSlots(engine.Type, engine.Tech)
	firstBlock := 3
	if ct < 3 {
		firstBlock = ct
	}
	if err := s.PlaceFixedRunAt(rules.CenterTorso, 0, firstBlock, NameEngine); err != nil {
		return err
	}
	g := rules.GyroSlots(gyro)
	if err := s.PlaceFixedRunAt(rules.CenterTorso, firstBlock, g, NameGyro); err != nil {
		return err
	}
	if rest := ct - firstBlock; rest > 0 {
		if err := s.PlaceFixedRunAt(rules.CenterTorso, firstBlock+g, rest, NameEngine); err != nil {
			return err
		}
	}
	for _, loc := range []rules.Location{rules.LeftTorso, rules.RightTorso} {
		if side > 0 {
			if err := s.PlaceFixedRunAt(loc, 0, side, NameEngine); err != nil {
				return err
			}
		}
	}
	return nil
}

// PlaceStructure spreads the structure's distributed crits.
func (s *Sheet) PlaceStructure(cfg rules.StructureConfig) error {
	name := StructureCritName(cfg.Type)
	if name == "" {
		return nil
	}
	return s.PlaceFixedSingles(DistributionOrder(), rules.StructureSlots(cfg.Type, cfg.Tech), name)
}

// PlaceArmor spreads the armor's distributed crits.
func (s *Sheet) PlaceArmor(t rules.ArmorType) error {
	name := ArmorCritName(t)
	if name == "" {
		return nil
	}
	return s.PlaceFixedSingles(DistributionOrder(), rules.ArmorSlots(t), name)
}

// PlaceHeatSinks writes each external sink as its own contiguous run.
func (s *Sheet) PlaceHeatSinks(cfg rules.HeatSinkConfig, engine rules.EngineConfig) error {
	external := cfg.Count - rules.IntegralHeatSinks(engine.Rating, engine.Type)
	per := rules.HeatSinkSlots(cfg.Type)
	for i := 0; i < external; i++ {
		if err := s.PlaceFixedRun(DistributionOrder(), per, NameHeatSink); err != nil {
			return err
		}
	}
	return nil
}

// PlaceJumpJets writes one slot per jump MP, legs first.
func (s *Sheet) PlaceJumpJets(jumpMP int) error {
	if jumpMP <= 0 {
		return nil
	}
	return s.PlaceFixedSingles(jumpJetOrder, jumpMP, NameJumpJet)
}

// PlaceTargeting writes the targeting computer run when equipped.
func (s *Sheet) PlaceTargeting(cfg rules.TargetingConfig) error {
	if !cfg.Computer {
		return nil
	}
	return s.PlaceFixedRun(targetingOrder, rules.TargetingComputerSlots(cfg.Tech), NameTargetingComp)
}

// PlaceMyomer writes TSM, MASC and supercharger crits as equipped.
func (s *Sheet) PlaceMyomer(e rules.Enhancements, tonnage int) error {
	if e.TSM {
		if err := s.PlaceFixedSingles(DistributionOrder(), 6, NameTSM); err != nil {
			return err
		}
	}
	if e.MASC {
		if err := s.PlaceFixedRun(DistributionOrder(), MASCSlots(tonnage), NameMASC); err != nil {
			return err
		}
	}
	if e.Supercharger {
		if err := s.PlaceFixedSingles([]rules.Location{rules.CenterTorso}, 1, NameSupercharger); err != nil {
			return err
		}
	}
	return nil
}

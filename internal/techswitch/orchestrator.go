package techswitch

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/SwiggitySwerve/megamek-web-sub008/internal/crits"
	"github.com/SwiggitySwerve/megamek-web-sub008/internal/rules"
)

// Unit bundles the configuration and critical sheet the orchestrator
// mutates. One switch in flight per unit at a time; that discipline is
// on the caller.
type Unit struct {
	Config rules.MechConfig
	Sheet  *crits.Sheet
}

// Orchestrator performs subsystem tech-base switches.
type Orchestrator struct {
	log zerolog.Logger
}

// New returns an orchestrator logging through the given logger.
func New(log zerolog.Logger) *Orchestrator {
	return &Orchestrator{log: log}
}

// SwitchSubsystem re-derives one subsystem for newTech, applies it to
// the unit, rebuilds the subsystem's fixed reservations, re-places the
// equipment that was already allocated, and returns the allocation diff
// plus the updated switch memory. Any failure leaves the unit's config,
// sheet and memory exactly as they were.
func (o *Orchestrator) SwitchSubsystem(unit *Unit, sub Subsystem, newTech rules.TechBase, mem Memory) (crits.DiffResult, Memory, error) {
	if unit == nil || unit.Sheet == nil {
		return crits.DiffResult{}, mem, fmt.Errorf("switch %s: unit has no critical sheet", sub)
	}
	if !sub.valid() {
		return crits.DiffResult{}, mem, fmt.Errorf("switch: unknown subsystem %d", int(sub))
	}
	if newTech != rules.TechInnerSphere && newTech != rules.TechClan {
		return crits.DiffResult{}, mem, fmt.Errorf("switch %s: unknown tech base %d", sub, int(newTech))
	}
	if err := mem.Validate(); err != nil {
		return crits.DiffResult{}, mem, fmt.Errorf("switch %s: %w", sub, err)
	}

	savedCfg := unit.Config
	savedSheet := unit.Sheet.Clone()
	next := mem.Clone()

	before := unit.Sheet.Snapshot()
	oldTech := techOf(&unit.Config, sub)
	oldSettings := capture(&unit.Config, sub)

	settings, cached := next.lookup(sub, newTech)
	if !cached {
		settings = defaultSettings(&unit.Config, sub, newTech)
	}
	apply(&unit.Config, sub, settings)

	if err := o.rebuild(unit, sub, before); err != nil {
		unit.Config = savedCfg
		unit.Sheet = savedSheet
		return crits.DiffResult{}, mem, fmt.Errorf("switch %s to %s: %w", sub, newTech, err)
	}

	after := unit.Sheet.Snapshot()
	diff := crits.Diff(before, after)
	next.store(sub, oldTech, oldSettings)

	o.log.Debug().
		Stringer("subsystem", sub).
		Stringer("tech", newTech).
		Bool("from_memory", cached).
		Int("displaced", len(diff.Displaced)).
		Int("retained", len(diff.Retained)).
		Msg("subsystem switched")
	return diff, next, nil
}

// SwitchAllSubsystems applies the fixed switch order, threading memory
// through each step and unioning the diff sets. A failing step rolls the
// whole sequence back; nothing partial is ever left applied.
func (o *Orchestrator) SwitchAllSubsystems(unit *Unit, newTech rules.TechBase, mem Memory) (crits.DiffResult, Memory, error) {
	if unit == nil || unit.Sheet == nil {
		return crits.DiffResult{}, mem, fmt.Errorf("switch all: unit has no critical sheet")
	}
	savedCfg := unit.Config
	savedSheet := unit.Sheet.Clone()

	var total crits.DiffResult
	cur := mem
	for _, sub := range SwitchOrder() {
		diff, m, err := o.SwitchSubsystem(unit, sub, newTech, cur)
		if err != nil {
			unit.Config = savedCfg
			unit.Sheet = savedSheet
			return crits.DiffResult{}, mem, fmt.Errorf("switch all at %s: %w", sub, err)
		}
		total.Union(diff)
		cur = m
	}
	return total, cur, nil
}

// ownedNames lists the fixed slot labels a subsystem owns. Engine and
// gyro own each other's labels because the gyro's size decides where the
// second engine block sits.
func ownedNames(sub Subsystem) []string {
	switch sub {
	case SubsystemGyro, SubsystemEngine:
		return []string{crits.NameEngine, crits.NameGyro}
	case SubsystemChassis:
		return []string{crits.StructureCritName(rules.StructureEndoSteel)}
	case SubsystemArmor:
		return []string{
			crits.ArmorCritName(rules.ArmorFerroFibrousIS),
			crits.ArmorCritName(rules.ArmorFerroFibrousClan),
			crits.ArmorCritName(rules.ArmorLightFerro),
			crits.ArmorCritName(rules.ArmorHeavyFerro),
			crits.ArmorCritName(rules.ArmorStealth),
		}
	case SubsystemHeatSink:
		return []string{crits.NameHeatSink}
	case SubsystemMovement:
		return []string{crits.NameJumpJet}
	case SubsystemTargeting:
		return []string{crits.NameTargetingComp}
	case SubsystemMyomer:
		return []string{crits.NameTSM, crits.NameMASC, crits.NameSupercharger}
	}
	panic("techswitch: unhandled subsystem")
}

// rebuild clears the subsystem's old fixed reservations, writes the new
// footprint (evicting equipment that stands in the way), then re-places
// every evicted group: same location and start when those slots are still
// free, anywhere in the same location otherwise, else it stays evicted.
func (o *Orchestrator) rebuild(unit *Unit, sub Subsystem, before crits.AllocationSnapshot) error {
	sheet := unit.Sheet
	cfg := &unit.Config

	sheet.ClearFixed(ownedNames(sub)...)

	var err error
	switch sub {
	case SubsystemGyro, SubsystemEngine:
		err = placeEngineGyro(sheet, cfg.Engine, cfg.Gyro.Type)
	case SubsystemChassis:
		err = placeSingles(sheet, crits.StructureCritName(cfg.Structure.Type),
			rules.StructureSlots(cfg.Structure.Type, cfg.Structure.Tech))
	case SubsystemArmor:
		err = placeSingles(sheet, crits.ArmorCritName(cfg.Armor.Type), rules.ArmorSlots(cfg.Armor.Type))
	case SubsystemHeatSink:
		err = placeHeatSinks(sheet, cfg.HeatSinks, cfg.Engine)
	case SubsystemMovement:
		err = placeMovement(sheet, cfg.JumpMP)
	case SubsystemTargeting:
		if cfg.Targeting.Computer {
			err = placeRun(sheet, crits.NameTargetingComp, rules.TargetingComputerSlots(cfg.Targeting.Tech))
		}
	case SubsystemMyomer:
		err = placeMyomer(sheet, cfg.Enhancements, cfg.Tonnage)
	default:
		panic("techswitch: unhandled subsystem")
	}
	if err != nil {
		return err
	}

	replaceEvicted(sheet, before)
	return nil
}

// placeEngineGyro rewrites the positional engine/gyro layout, evicting
// any equipment that drifted into the required slots.
func placeEngineGyro(sheet *crits.Sheet, engine rules.EngineConfig, gyro rules.GyroType) error {
	ct, side := rules.EngineSlots(engine.Type, engine.Tech)
	// The CT footprint is one contiguous span from slot 0: the first
	// engine block, the gyro, then any remaining engine slots.
	evictOverlap(sheet, rules.CenterTorso, 0, ct+rules.GyroSlots(gyro))
	for _, loc := range []rules.Location{rules.LeftTorso, rules.RightTorso} {
		if side > 0 {
			evictOverlap(sheet, loc, 0, side)
		}
	}
	return sheet.PlaceEngineAndGyro(engine, gyro)
}

func evictOverlap(sheet *crits.Sheet, loc rules.Location, start, size int) {
	for _, g := range sheet.OverlapGroups(loc, start, size) {
		sheet.Evict(g)
	}
}

// placeSingles distributes count individual fixed slots, evicting
// equipment until enough empties exist.
func placeSingles(sheet *crits.Sheet, name string, count int) error {
	if name == "" || count == 0 {
		return nil
	}
	order := crits.DistributionOrder()
	for sheet.TotalEmpty(order) < count {
		if !evictOne(sheet, order) {
			return fmt.Errorf("no room for %d %s slots", count, name)
		}
	}
	return sheet.PlaceFixedSingles(order, count, name)
}

// placeRun places one contiguous fixed run, evicting equipment until a
// run of the required size opens up.
func placeRun(sheet *crits.Sheet, name string, size int) error {
	order := crits.DistributionOrder()
	for !sheet.HasRun(order, size) {
		if !evictOne(sheet, order) {
			return fmt.Errorf("no room for a %d-slot %s run", size, name)
		}
	}
	return sheet.PlaceFixedRun(order, size, name)
}

func placeHeatSinks(sheet *crits.Sheet, hs rules.HeatSinkConfig, engine rules.EngineConfig) error {
	external := hs.Count - rules.IntegralHeatSinks(engine.Rating, engine.Type)
	per := rules.HeatSinkSlots(hs.Type)
	for i := 0; i < external; i++ {
		if err := placeRun(sheet, crits.NameHeatSink, per); err != nil {
			return err
		}
	}
	return nil
}

func placeMovement(sheet *crits.Sheet, jumpMP int) error {
	if jumpMP <= 0 {
		return nil
	}
	// Jump jets only mount in legs and torsos; evictions elsewhere
	// cannot help.
	order := crits.JumpJetOrder()
	for sheet.TotalEmpty(order) < jumpMP {
		if !evictOne(sheet, order) {
			return fmt.Errorf("no room for %d jump jets", jumpMP)
		}
	}
	return sheet.PlaceJumpJets(jumpMP)
}

func placeMyomer(sheet *crits.Sheet, e rules.Enhancements, tonnage int) error {
	if e.TSM {
		if err := placeSingles(sheet, crits.NameTSM, 6); err != nil {
			return err
		}
	}
	if e.MASC {
		if err := placeRun(sheet, crits.NameMASC, crits.MASCSlots(tonnage)); err != nil {
			return err
		}
	}
	if e.Supercharger {
		if err := sheet.PlaceFixedSingles([]rules.Location{rules.CenterTorso}, 1, crits.NameSupercharger); err != nil {
			return err
		}
	}
	return nil
}

// evictOne removes a single equipment group to free space: the first
// location in order that holds equipment loses its highest-start group.
func evictOne(sheet *crits.Sheet, order []rules.Location) bool {
	for _, loc := range order {
		allocs := sheet.Allocations(loc)
		if len(allocs) == 0 {
			continue
		}
		victim := allocs[len(allocs)-1]
		sheet.Evict(victim.Group)
		return true
	}
	return false
}

// replaceEvicted tries to put every group from the before-snapshot that
// is no longer on the sheet back where it was.
func replaceEvicted(sheet *crits.Sheet, before crits.AllocationSnapshot) {
	groups := make([]crits.GroupID, 0, len(before))
	for g := range before {
		if _, onSheet := sheet.EquipmentID(g); !onSheet {
			groups = append(groups, g)
		}
	}
	// Deterministic re-placement order: original location, then start.
	sort.Slice(groups, func(i, j int) bool {
		a, b := before[groups[i]], before[groups[j]]
		if a.Location != b.Location {
			return a.Location < b.Location
		}
		return a.StartSlot < b.StartSlot
	})

	for _, g := range groups {
		e := before[g]
		size := e.EndSlot - e.StartSlot + 1
		if err := sheet.AllocateExistingAt(g, e.EquipmentID, e.Location, e.StartSlot, size); err == nil {
			continue
		}
		// Same location, any slot; a failure here leaves the group in
		// the unallocated pool.
		_ = sheet.AllocateExisting(g, e.EquipmentID, e.Location, size)
	}
}

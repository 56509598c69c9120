// Package crits models the per-location critical slot arena of a single
// BattleMech and every mutation it supports: fixed system reservations,
// equipment allocation, removal and movement, plus snapshot/diff used by
// tech base switching.
package crits

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/SwiggitySwerve/megamek-web-sub008/internal/rules"
)

// SlotKind classifies the content of one critical slot.
type SlotKind int

const (
	SlotEmpty SlotKind = iota
	SlotFixed
	SlotEquipment
)

// GroupID ties the contiguous slots of one equipment item together.
type GroupID string

// Slot is one physical critical slot in one location.
type Slot struct {
	Kind      SlotKind
	Name      string  // fixed component name, SlotFixed only
	Group     GroupID // SlotEquipment only
	Destroyed bool
}

// EquipmentAllocation is a derived view over the slot array; it is
// recomputed on demand and never independently mutated.
type EquipmentAllocation struct {
	Group       GroupID
	EquipmentID string
	Location    rules.Location
	StartSlot   int
	EndSlot     int
}

// SlotError reports a failed placement: the location scanned and the run
// size that could not be found.
type SlotError struct {
	Location rules.Location
	Needed   int
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("no contiguous run of %d empty slots in %s", e.Needed, e.Location)
}

// Capacity is the fixed slot count of a location.
func Capacity(loc rules.Location) int {
	switch loc {
	case rules.Head, rules.LeftLeg, rules.RightLeg:
		return 6
	case rules.CenterTorso, rules.LeftTorso, rules.RightTorso,
		rules.LeftArm, rules.RightArm:
		return 12
	}
	panic("crits: unhandled location")
}

// Sheet is the critical slot arena for one unit. One sheet per unit;
// callers must not mutate the same sheet concurrently.
type Sheet struct {
	slots       map[rules.Location][]Slot
	groups      map[GroupID]string // group -> equipment id
	unallocated []string
}

// NewSheet returns an all-empty sheet.
func NewSheet() *Sheet {
	s := &Sheet{
		slots:  make(map[rules.Location][]Slot, 8),
		groups: make(map[GroupID]string),
	}
	for _, loc := range rules.Locations() {
		s.slots[loc] = make([]Slot, Capacity(loc))
	}
	return s
}

// Clone deep-copies the sheet. Used for all-or-nothing switch rollback.
func (s *Sheet) Clone() *Sheet {
	c := &Sheet{
		slots:       make(map[rules.Location][]Slot, len(s.slots)),
		groups:      make(map[GroupID]string, len(s.groups)),
		unallocated: append([]string(nil), s.unallocated...),
	}
	for loc, arr := range s.slots {
		c.slots[loc] = append([]Slot(nil), arr...)
	}
	for g, id := range s.groups {
		c.groups[g] = id
	}
	return c
}

// Slot returns the slot at (loc, idx).
func (s *Sheet) Slot(loc rules.Location, idx int) Slot {
	return s.slots[loc][idx]
}

// findRun returns the lowest start index of a contiguous run of size empty
// slots in loc, or -1.
func (s *Sheet) findRun(loc rules.Location, size int) int {
	arr := s.slots[loc]
	run := 0
	for i := range arr {
		if arr[i].Kind == SlotEmpty {
			run++
			if run == size {
				return i - size + 1
			}
		} else {
			run = 0
		}
	}
	return -1
}

func (s *Sheet) runFreeAt(loc rules.Location, start, size int) bool {
	arr := s.slots[loc]
	if start < 0 || start+size > len(arr) {
		return false
	}
	for i := start; i < start+size; i++ {
		if arr[i].Kind != SlotEmpty {
			return false
		}
	}
	return true
}

func (s *Sheet) writeGroup(loc rules.Location, start, size int, g GroupID) {
	arr := s.slots[loc]
	for i := start; i < start+size; i++ {
		arr[i] = Slot{Kind: SlotEquipment, Group: g}
	}
}

// Allocate places an equipment item into the first contiguous run of
// empty slots in loc, lowest index first. There is never a partial
// allocation and never one spanning locations.
func (s *Sheet) Allocate(loc rules.Location, equipmentID string, size int) (GroupID, error) {
	if size <= 0 {
		return "", fmt.Errorf("allocation size %d must be positive", size)
	}
	start := s.findRun(loc, size)
	if start < 0 {
		return "", &SlotError{Location: loc, Needed: size}
	}
	g := GroupID(uuid.NewString())
	s.writeGroup(loc, start, size, g)
	s.groups[g] = equipmentID
	s.takeUnallocated(equipmentID)
	return g, nil
}

// AllocateAt places an equipment item at an exact start index. Used when
// re-placing equipment after a subsystem switch.
func (s *Sheet) AllocateAt(loc rules.Location, equipmentID string, start, size int) (GroupID, error) {
	if !s.runFreeAt(loc, start, size) {
		return "", &SlotError{Location: loc, Needed: size}
	}
	g := GroupID(uuid.NewString())
	s.writeGroup(loc, start, size, g)
	s.groups[g] = equipmentID
	s.takeUnallocated(equipmentID)
	return g, nil
}

// AllocateExistingAt places a known group back onto the sheet at an
// exact position, preserving its identity across a subsystem switch.
func (s *Sheet) AllocateExistingAt(g GroupID, equipmentID string, loc rules.Location, start, size int) error {
	if _, taken := s.groups[g]; taken {
		return fmt.Errorf("allocation group %s is already on the sheet", g)
	}
	if !s.runFreeAt(loc, start, size) {
		return &SlotError{Location: loc, Needed: size}
	}
	s.writeGroup(loc, start, size, g)
	s.groups[g] = equipmentID
	s.takeUnallocated(equipmentID)
	return nil
}

// AllocateExisting places a known group back onto the sheet first-fit
// within one location, preserving its identity.
func (s *Sheet) AllocateExisting(g GroupID, equipmentID string, loc rules.Location, size int) error {
	if _, taken := s.groups[g]; taken {
		return fmt.Errorf("allocation group %s is already on the sheet", g)
	}
	start := s.findRun(loc, size)
	if start < 0 {
		return &SlotError{Location: loc, Needed: size}
	}
	s.writeGroup(loc, start, size, g)
	s.groups[g] = equipmentID
	s.takeUnallocated(equipmentID)
	return nil
}

// Remove frees every slot sharing the group id. Returns false for an
// unknown group.
func (s *Sheet) Remove(g GroupID) bool {
	if _, ok := s.groups[g]; !ok {
		return false
	}
	for loc := range s.slots {
		arr := s.slots[loc]
		for i := range arr {
			if arr[i].Kind == SlotEquipment && arr[i].Group == g {
				arr[i] = Slot{}
			}
		}
	}
	delete(s.groups, g)
	return true
}

// Evict removes a group and records its equipment as unallocated.
func (s *Sheet) Evict(g GroupID) bool {
	id, ok := s.groups[g]
	if !ok {
		return false
	}
	s.Remove(g)
	s.unallocated = append(s.unallocated, id)
	return true
}

// Move relocates a group to newLoc, keeping its identity. Placement at
// the destination happens before the source is freed; a destination
// failure leaves the sheet unchanged.
func (s *Sheet) Move(g GroupID, newLoc rules.Location) error {
	cur, ok := s.find(g)
	if !ok {
		return fmt.Errorf("unknown allocation group %s", g)
	}
	size := cur.EndSlot - cur.StartSlot + 1
	start := s.findRun(newLoc, size)
	if start < 0 {
		return &SlotError{Location: newLoc, Needed: size}
	}
	s.writeGroup(newLoc, start, size, g)
	// Free the source slots only; the group survives at the destination.
	arr := s.slots[cur.Location]
	for i := cur.StartSlot; i <= cur.EndSlot; i++ {
		arr[i] = Slot{}
	}
	return nil
}

func (s *Sheet) find(g GroupID) (EquipmentAllocation, bool) {
	for _, loc := range rules.Locations() {
		for _, a := range s.Allocations(loc) {
			if a.Group == g {
				return a, true
			}
		}
	}
	return EquipmentAllocation{}, false
}

// Allocations recomputes the equipment allocations in one location from
// the slot array.
func (s *Sheet) Allocations(loc rules.Location) []EquipmentAllocation {
	arr := s.slots[loc]
	var out []EquipmentAllocation
	for i := 0; i < len(arr); {
		if arr[i].Kind != SlotEquipment {
			i++
			continue
		}
		g := arr[i].Group
		start := i
		for i < len(arr) && arr[i].Kind == SlotEquipment && arr[i].Group == g {
			i++
		}
		out = append(out, EquipmentAllocation{
			Group:       g,
			EquipmentID: s.groups[g],
			Location:    loc,
			StartSlot:   start,
			EndSlot:     i - 1,
		})
	}
	return out
}

// AllAllocations lists every equipment allocation on the sheet in
// location order.
func (s *Sheet) AllAllocations() []EquipmentAllocation {
	var out []EquipmentAllocation
	for _, loc := range rules.Locations() {
		out = append(out, s.Allocations(loc)...)
	}
	return out
}

// Unallocated lists equipment ids that are currently off the sheet,
// either never placed or evicted by a subsystem switch.
func (s *Sheet) Unallocated() []string {
	out := append([]string(nil), s.unallocated...)
	sort.Strings(out)
	return out
}

// MarkUnallocated records an equipment id as present on the unit but not
// placed in any slot.
func (s *Sheet) MarkUnallocated(equipmentID string) {
	s.unallocated = append(s.unallocated, equipmentID)
}

func (s *Sheet) takeUnallocated(equipmentID string) {
	for i, id := range s.unallocated {
		if id == equipmentID {
			s.unallocated = append(s.unallocated[:i], s.unallocated[i+1:]...)
			return
		}
	}
}

// MarkDestroyed flags one slot as destroyed without freeing it.
func (s *Sheet) MarkDestroyed(loc rules.Location, idx int) {
	s.slots[loc][idx].Destroyed = true
}

// SetFixed writes a fixed system component into one slot. The slot must
// be empty.
func (s *Sheet) SetFixed(loc rules.Location, idx int, name string) error {
	if s.slots[loc][idx].Kind != SlotEmpty {
		return fmt.Errorf("slot %s[%d] is already occupied", loc, idx)
	}
	s.slots[loc][idx] = Slot{Kind: SlotFixed, Name: name}
	return nil
}

// ClearFixed empties every fixed slot whose name matches one of names.
func (s *Sheet) ClearFixed(names ...string) {
	match := make(map[string]bool, len(names))
	for _, n := range names {
		match[n] = true
	}
	for loc := range s.slots {
		arr := s.slots[loc]
		for i := range arr {
			if arr[i].Kind == SlotFixed && match[arr[i].Name] {
				arr[i] = Slot{}
			}
		}
	}
}

// FixedSlots counts fixed slots with the given name across the sheet.
func (s *Sheet) FixedSlots(name string) int {
	n := 0
	for loc := range s.slots {
		for _, sl := range s.slots[loc] {
			if sl.Kind == SlotFixed && sl.Name == name {
				n++
			}
		}
	}
	return n
}

// GroupAt returns the equipment group occupying (loc, idx), if any.
func (s *Sheet) GroupAt(loc rules.Location, idx int) (GroupID, bool) {
	sl := s.slots[loc][idx]
	if sl.Kind != SlotEquipment {
		return "", false
	}
	return sl.Group, true
}

// EquipmentID resolves a group to its equipment id.
func (s *Sheet) EquipmentID(g GroupID) (string, bool) {
	id, ok := s.groups[g]
	return id, ok
}

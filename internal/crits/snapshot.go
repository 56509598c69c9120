package crits

import (
	"sort"

	"github.com/SwiggitySwerve/megamek-web-sub008/internal/rules"
)

// SnapshotEntry records where one equipment group sat at snapshot time.
type SnapshotEntry struct {
	EquipmentID string
	Location    rules.Location
	StartSlot   int
	EndSlot     int
}

// AllocationSnapshot maps every equipment group to its position. Taken
// before and after a subsystem switch, consumed by Diff, never stored.
type AllocationSnapshot map[GroupID]SnapshotEntry

// Snapshot captures the current equipment allocations.
func (s *Sheet) Snapshot() AllocationSnapshot {
	snap := make(AllocationSnapshot)
	for _, a := range s.AllAllocations() {
		snap[a.Group] = SnapshotEntry{
			EquipmentID: a.EquipmentID,
			Location:    a.Location,
			StartSlot:   a.StartSlot,
			EndSlot:     a.EndSlot,
		}
	}
	return snap
}

// DiffResult partitions the groups of a before-snapshot by what a
// subsystem switch did to them. Displaced and Retained partition
// keys(before) exactly; RetainedSameLocation is the subset of Retained
// whose location and start index did not change. Groups that only exist
// in the after-snapshot are not reported.
type DiffResult struct {
	Displaced            []GroupID
	Retained             []GroupID
	RetainedSameLocation []GroupID
}

// Diff is a pure structural diff of two snapshots.
func Diff(before, after AllocationSnapshot) DiffResult {
	var d DiffResult
	for g, b := range before {
		a, ok := after[g]
		if !ok {
			d.Displaced = append(d.Displaced, g)
			continue
		}
		d.Retained = append(d.Retained, g)
		if a.Location == b.Location && a.StartSlot == b.StartSlot {
			d.RetainedSameLocation = append(d.RetainedSameLocation, g)
		}
	}
	sortGroups(d.Displaced)
	sortGroups(d.Retained)
	sortGroups(d.RetainedSameLocation)
	return d
}

// Union merges another diff into this one, deduplicating groups. A group
// displaced by any step stays displaced even if a later step never saw it
// again; a group in both sets counts as displaced.
func (d *DiffResult) Union(o DiffResult) {
	d.Displaced = unionGroups(d.Displaced, o.Displaced)
	d.Retained = unionGroups(d.Retained, o.Retained)
	d.RetainedSameLocation = unionGroups(d.RetainedSameLocation, o.RetainedSameLocation)

	displaced := make(map[GroupID]bool, len(d.Displaced))
	for _, g := range d.Displaced {
		displaced[g] = true
	}
	d.Retained = filterGroups(d.Retained, func(g GroupID) bool { return !displaced[g] })
	d.RetainedSameLocation = filterGroups(d.RetainedSameLocation, func(g GroupID) bool { return !displaced[g] })
}

func unionGroups(a, b []GroupID) []GroupID {
	seen := make(map[GroupID]bool, len(a)+len(b))
	var out []GroupID
	for _, g := range append(append([]GroupID(nil), a...), b...) {
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	sortGroups(out)
	return out
}

func filterGroups(in []GroupID, keep func(GroupID) bool) []GroupID {
	var out []GroupID
	for _, g := range in {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}

func sortGroups(gs []GroupID) {
	sort.Slice(gs, func(i, j int) bool { return gs[i] < gs[j] })
}

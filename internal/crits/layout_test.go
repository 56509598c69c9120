package crits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/megamek-web-sub008/internal/rules"
)

func assaultConfig() rules.MechConfig {
	return rules.MechConfig{
		Tonnage:   100,
		TechBase:  rules.TechInnerSphere,
		Engine:    rules.EngineConfig{Type: rules.EngineStandard, Rating: 300, Tech: rules.TechInnerSphere},
		Gyro:      rules.GyroConfig{Type: rules.GyroStandard, Tech: rules.TechInnerSphere},
		Structure: rules.StructureConfig{Type: rules.StructureStandard, Tech: rules.TechInnerSphere},
		Cockpit:   rules.CockpitStandard,
		HeatSinks: rules.HeatSinkConfig{Type: rules.HeatSinkSingle, Count: 20, Tech: rules.TechInnerSphere},
		Armor:     rules.ArmorConfig{Type: rules.ArmorStandard, Tech: rules.TechInnerSphere},
		WalkMP:    3,
	}
}

func TestBuildSheetCenterTorsoLayout(t *testing.T) {
	s, err := BuildSheet(assaultConfig(), nil)
	require.NoError(t, err)

	// engine 0-2, gyro 3-6, engine 7-9
	for i := 0; i <= 2; i++ {
		assert.Equal(t, NameEngine, s.Slot(rules.CenterTorso, i).Name, "slot %d", i)
	}
	for i := 3; i <= 6; i++ {
		assert.Equal(t, NameGyro, s.Slot(rules.CenterTorso, i).Name, "slot %d", i)
	}
	for i := 7; i <= 9; i++ {
		assert.Equal(t, NameEngine, s.Slot(rules.CenterTorso, i).Name, "slot %d", i)
	}
	assert.Equal(t, SlotEmpty, s.Slot(rules.CenterTorso, 10).Kind)
	assert.Equal(t, SlotEmpty, s.Slot(rules.CenterTorso, 11).Kind)
}

func TestBuildSheetHeadLayout(t *testing.T) {
	s, err := BuildSheet(assaultConfig(), nil)
	require.NoError(t, err)

	want := []string{NameLifeSupport, NameSensors, NameCockpit, "", NameSensors, NameLifeSupport}
	for i, name := range want {
		sl := s.Slot(rules.Head, i)
		if name == "" {
			assert.Equal(t, SlotEmpty, sl.Kind, "slot %d", i)
		} else {
			assert.Equal(t, name, sl.Name, "slot %d", i)
		}
	}
}

func TestBuildSheetActuators(t *testing.T) {
	s, err := BuildSheet(assaultConfig(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Shoulder", s.Slot(rules.LeftArm, 0).Name)
	assert.Equal(t, "Hand Actuator", s.Slot(rules.RightArm, 3).Name)
	assert.Equal(t, "Hip", s.Slot(rules.LeftLeg, 0).Name)
	assert.Equal(t, "Foot Actuator", s.Slot(rules.RightLeg, 3).Name)
}

func TestBuildSheetExternalHeatSinks(t *testing.T) {
	// 20 singles on a rating 300 engine: 10 integral, 10 in slots.
	s, err := BuildSheet(assaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, 10, s.FixedSlots(NameHeatSink))
}

func TestBuildSheetXLEngineSideTorsos(t *testing.T) {
	cfg := assaultConfig()
	cfg.Engine.Type = rules.EngineXL
	s, err := BuildSheet(cfg, nil)
	require.NoError(t, err)

	for _, loc := range []rules.Location{rules.LeftTorso, rules.RightTorso} {
		for i := 0; i < 3; i++ {
			assert.Equal(t, NameEngine, s.Slot(loc, i).Name, "%s slot %d", loc, i)
		}
	}
}

func TestBuildSheetClanXLEngineSideTorsos(t *testing.T) {
	cfg := assaultConfig()
	cfg.Engine.Type = rules.EngineXL
	cfg.Engine.Tech = rules.TechClan
	cfg.HeatSinks.Count = 10 // all integral; keeps the torsos clear
	s, err := BuildSheet(cfg, nil)
	require.NoError(t, err)

	for _, loc := range []rules.Location{rules.LeftTorso, rules.RightTorso} {
		assert.Equal(t, NameEngine, s.Slot(loc, 0).Name)
		assert.Equal(t, NameEngine, s.Slot(loc, 1).Name)
		assert.Equal(t, SlotEmpty, s.Slot(loc, 2).Kind)
	}
}

func TestBuildSheetCompactEngine(t *testing.T) {
	cfg := assaultConfig()
	cfg.Engine.Type = rules.EngineCompact
	s, err := BuildSheet(cfg, nil)
	require.NoError(t, err)

	// engine 0-2, gyro 3-6, nothing after
	assert.Equal(t, NameEngine, s.Slot(rules.CenterTorso, 2).Name)
	assert.Equal(t, NameGyro, s.Slot(rules.CenterTorso, 3).Name)
	assert.Equal(t, NameGyro, s.Slot(rules.CenterTorso, 6).Name)
	assert.Equal(t, SlotEmpty, s.Slot(rules.CenterTorso, 7).Kind)
}

func TestBuildSheetEndoSteel(t *testing.T) {
	cfg := assaultConfig()
	cfg.Structure.Type = rules.StructureEndoSteel
	s, err := BuildSheet(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 14, s.FixedSlots("Endo Steel"))

	cfg.Structure.Tech = rules.TechClan
	s, err = BuildSheet(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, s.FixedSlots("Endo Steel"))
}

func TestBuildSheetFerroArmorCrits(t *testing.T) {
	cfg := assaultConfig()
	cfg.Armor.Type = rules.ArmorFerroFibrousIS
	s, err := BuildSheet(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 14, s.FixedSlots("Ferro-Fibrous"))
}

func TestBuildSheetJumpJetsLegsFirst(t *testing.T) {
	cfg := assaultConfig()
	cfg.JumpMP = 3
	s, err := BuildSheet(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, NameJumpJet, s.Slot(rules.LeftLeg, 4).Name)
	assert.Equal(t, NameJumpJet, s.Slot(rules.LeftLeg, 5).Name)
	assert.Equal(t, NameJumpJet, s.Slot(rules.RightLeg, 4).Name)
	assert.Equal(t, 3, s.FixedSlots(NameJumpJet))
}

func TestBuildSheetTargetingComputer(t *testing.T) {
	cfg := assaultConfig()
	cfg.Targeting = rules.TargetingConfig{Computer: true, Tech: rules.TechInnerSphere}
	s, err := BuildSheet(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, s.FixedSlots(NameTargetingComp))

	cfg.Targeting.Tech = rules.TechClan
	s, err = BuildSheet(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, s.FixedSlots(NameTargetingComp))
}

func TestBuildSheetMyomer(t *testing.T) {
	cfg := assaultConfig()
	cfg.Enhancements = rules.Enhancements{TSM: true, MASC: true, Supercharger: true}
	s, err := BuildSheet(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, 6, s.FixedSlots(NameTSM))
	assert.Equal(t, MASCSlots(cfg.Tonnage), s.FixedSlots(NameMASC))
	assert.Equal(t, 1, s.FixedSlots(NameSupercharger))
}

func TestMASCSlots(t *testing.T) {
	assert.Equal(t, 1, MASCSlots(20))
	assert.Equal(t, 3, MASCSlots(55))
	assert.Equal(t, 5, MASCSlots(100))
}

func TestBuildSheetPlacesEquipment(t *testing.T) {
	items := []Item{
		{ID: "ac_20", Location: rules.RightTorso, Slots: 10},
		{ID: "medium_laser", Location: rules.LeftArm, Slots: 1},
	}
	s, err := BuildSheet(assaultConfig(), items)
	require.NoError(t, err)

	var ids []string
	for _, a := range s.AllAllocations() {
		ids = append(ids, a.EquipmentID)
	}
	assert.ElementsMatch(t, []string{"ac_20", "medium_laser"}, ids)
	assert.Empty(t, s.Unallocated())
}

func TestBuildSheetOverflowGoesUnallocated(t *testing.T) {
	items := []Item{
		{ID: "gauss_rifle", Location: rules.Head, Slots: 7}, // cannot fit
	}
	s, err := BuildSheet(assaultConfig(), items)
	require.NoError(t, err)
	assert.Equal(t, []string{"gauss_rifle"}, s.Unallocated())
	assert.Empty(t, s.AllAllocations())
}

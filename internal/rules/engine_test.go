package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// atlasConfig is a 100-ton assault chassis with the classic loadout.
func atlasConfig() MechConfig {
	return MechConfig{
		Tonnage:  100,
		TechBase: TechInnerSphere,
		Engine:   EngineConfig{Type: EngineStandard, Rating: 300, Tech: TechInnerSphere},
		Gyro:     GyroConfig{Type: GyroStandard, Tech: TechInnerSphere},
		Structure: StructureConfig{
			Type: StructureStandard,
			Tech: TechInnerSphere,
		},
		Cockpit:   CockpitStandard,
		HeatSinks: HeatSinkConfig{Type: HeatSinkSingle, Count: 20, Tech: TechInnerSphere},
		Armor: ArmorConfig{
			Type: ArmorStandard,
			Tech: TechInnerSphere,
			Allocation: map[Location]ArmorPoints{
				Head:        {Front: 9},
				CenterTorso: {Front: 47, Rear: 14},
				LeftTorso:   {Front: 32, Rear: 10},
				RightTorso:  {Front: 32, Rear: 10},
				LeftArm:     {Front: 34},
				RightArm:    {Front: 34},
				LeftLeg:     {Front: 41},
				RightLeg:    {Front: 41},
			},
		},
		WalkMP: 3,
	}
}

func TestValidateTonnage(t *testing.T) {
	tests := []struct {
		tonnage int
		valid   bool
	}{
		{20, true},
		{55, true},
		{100, true},
		{15, false},
		{105, false},
		{52, false},
	}
	for _, tt := range tests {
		r := ValidateTonnage(tt.tonnage)
		assert.Equal(t, tt.valid, r.Valid, "tonnage %d", tt.tonnage)
	}
}

func TestCalculateStructure(t *testing.T) {
	tests := []struct {
		tonnage int
		typ     StructureType
		tech    TechBase
		weight  float64
		slots   int
	}{
		{100, StructureStandard, TechInnerSphere, 10.0, 0},
		{100, StructureEndoSteel, TechInnerSphere, 5.0, 14},
		{100, StructureEndoSteel, TechClan, 5.0, 7},
		{55, StructureStandard, TechInnerSphere, 5.5, 0},
		{55, StructureEndoSteel, TechInnerSphere, 3.0, 14},
		{50, StructureReinforced, TechInnerSphere, 10.0, 0},
	}
	for _, tt := range tests {
		r := CalculateStructure(tt.tonnage, tt.typ, tt.tech)
		require.True(t, r.Valid)
		assert.Equal(t, tt.weight, r.Weight, "%d ton %s", tt.tonnage, tt.typ)
		assert.Equal(t, tt.slots, r.CritSlots, "%d ton %s", tt.tonnage, tt.typ)
	}
}

func TestCalculateEngine(t *testing.T) {
	tests := []struct {
		tonnage int
		cfg     EngineConfig
		weight  float64
		slots   int
	}{
		{100, EngineConfig{Type: EngineStandard, Rating: 300, Tech: TechInnerSphere}, 19.0, 6},
		{100, EngineConfig{Type: EngineXL, Rating: 300, Tech: TechInnerSphere}, 9.5, 12},
		{100, EngineConfig{Type: EngineXL, Rating: 300, Tech: TechClan}, 9.5, 10},
		{100, EngineConfig{Type: EngineLight, Rating: 300, Tech: TechInnerSphere}, 14.5, 10},
		{50, EngineConfig{Type: EngineCompact, Rating: 200, Tech: TechInnerSphere}, 13.0, 3},
		{50, EngineConfig{Type: EngineICE, Rating: 200, Tech: TechInnerSphere}, 17.0, 6},
	}
	for _, tt := range tests {
		r := CalculateEngine(tt.tonnage, tt.cfg)
		require.True(t, r.Valid, "%+v: %v", tt.cfg, r.Errors)
		assert.Equal(t, tt.weight, r.Weight, "%+v", tt.cfg)
		assert.Equal(t, tt.slots, r.CritSlots, "%+v", tt.cfg)
	}
}

func TestCalculateEngineInvalidRating(t *testing.T) {
	r := CalculateEngine(50, EngineConfig{Type: EngineStandard, Rating: 203, Tech: TechInnerSphere})
	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0], "203")
}

func TestCalculateEngineWalkMPRange(t *testing.T) {
	// rating 10 on a 100 ton chassis is walk 0
	r := CalculateEngine(100, EngineConfig{Type: EngineStandard, Rating: 10, Tech: TechInnerSphere})
	assert.False(t, r.Valid)

	// rating 500 on a 20 ton chassis would be walk 25
	r = CalculateEngine(20, EngineConfig{Type: EngineStandard, Rating: 500, Tech: TechInnerSphere})
	assert.False(t, r.Valid)
}

func TestCalculateEngineZeroTonnage(t *testing.T) {
	r := CalculateEngine(0, EngineConfig{Type: EngineStandard, Rating: 300, Tech: TechInnerSphere})
	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0], "outside 1-20")
}

func TestValidateConstructionZeroValueConfig(t *testing.T) {
	// An un-set config must report errors, not blow up partway through
	// the pipeline.
	res := ValidateConstruction(MechConfig{Engine: EngineConfig{Rating: 300}}, Options{})
	assert.False(t, res.Valid)
	assert.False(t, res.Steps[0].Valid)
	assert.False(t, res.Steps[2].Valid)
	require.NotEmpty(t, res.Errors)
}

func TestCalculateGyro(t *testing.T) {
	tests := []struct {
		rating int
		typ    GyroType
		weight float64
		slots  int
	}{
		{200, GyroStandard, 2.0, 4},
		{300, GyroStandard, 3.0, 4},
		{300, GyroXL, 1.5, 6},
		{300, GyroCompact, 4.5, 2},
		{300, GyroHeavyDuty, 6.0, 4},
		{205, GyroStandard, 3.0, 4}, // ceil(205/100) = 3
	}
	for _, tt := range tests {
		r := CalculateGyro(tt.rating, tt.typ)
		require.True(t, r.Valid)
		assert.Equal(t, tt.weight, r.Weight, "rating %d %s", tt.rating, tt.typ)
		assert.Equal(t, tt.slots, r.CritSlots, "rating %d %s", tt.rating, tt.typ)
	}
}

func TestCalculateCockpit(t *testing.T) {
	r := CalculateCockpit(CockpitStandard)
	assert.Equal(t, 3.0, r.Weight)
	assert.Equal(t, 5, r.CritSlots)

	r = CalculateCockpit(CockpitSmall)
	assert.Equal(t, 2.0, r.Weight)
	assert.Equal(t, 4, r.CritSlots)

	r = CalculateCockpit(CockpitCommandConsole)
	assert.Equal(t, 6.0, r.Weight)
	assert.Equal(t, 6, r.CritSlots)
}

func TestIntegralHeatSinks(t *testing.T) {
	tests := []struct {
		rating int
		engine EngineType
		want   int
	}{
		{200, EngineStandard, 8},
		{250, EngineStandard, 10},
		{300, EngineXL, 10}, // capped at 10
		{100, EngineLight, 4},
		{300, EngineICE, 0}, // combustion engines house none
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IntegralHeatSinks(tt.rating, tt.engine),
			"rating %d %s", tt.rating, tt.engine)
	}
}

func TestCalculateHeatSinks(t *testing.T) {
	// 12 singles on a rating 200 fusion engine: 8 integral, 4 external.
	r := CalculateHeatSinks(HeatSinkConfig{Type: HeatSinkSingle, Count: 12}, 200, EngineStandard, 15)
	require.True(t, r.Valid)
	assert.Equal(t, 4.0, r.Weight)
	assert.Equal(t, 4, r.CritSlots)

	// Doubles pay three slots each on Inner Sphere tech.
	r = CalculateHeatSinks(HeatSinkConfig{Type: HeatSinkDoubleIS, Count: 12}, 200, EngineStandard, 15)
	require.True(t, r.Valid)
	assert.Equal(t, 4.0, r.Weight)
	assert.Equal(t, 12, r.CritSlots)

	// All sinks external on a combustion engine.
	r = CalculateHeatSinks(HeatSinkConfig{Type: HeatSinkSingle, Count: 10}, 200, EngineICE, 15)
	require.True(t, r.Valid)
	assert.Equal(t, 10.0, r.Weight)
	assert.Equal(t, 10, r.CritSlots)
}

func TestCalculateHeatSinksBelowMinimum(t *testing.T) {
	r := CalculateHeatSinks(HeatSinkConfig{Type: HeatSinkSingle, Count: 9}, 300, EngineStandard, 15)
	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0], "minimum")
}

func TestCalculateHeatSinksExternalWarning(t *testing.T) {
	r := CalculateHeatSinks(HeatSinkConfig{Type: HeatSinkSingle, Count: 30}, 100, EngineStandard, 15)
	require.True(t, r.Valid)
	assert.NotEmpty(t, r.Warnings)
}

func TestCalculateArmorAtlas(t *testing.T) {
	cfg := atlasConfig()
	r := CalculateArmor(cfg.Armor, cfg.Tonnage, 0.5)
	require.True(t, r.Valid, "errors: %v", r.Errors)
	assert.Equal(t, 19.0, r.Weight) // 304 points at 16 per ton
	assert.Equal(t, 0, r.CritSlots)
	assert.Empty(t, r.Warnings)
}

func TestCalculateArmorOverCap(t *testing.T) {
	armor := ArmorConfig{
		Type: ArmorStandard,
		Tech: TechInnerSphere,
		Allocation: map[Location]ArmorPoints{
			Head: {Front: 10}, // head caps at 9
		},
	}
	r := CalculateArmor(armor, 100, 0)
	assert.False(t, r.Valid)
	require.NotEmpty(t, r.Errors)
	assert.Contains(t, r.Errors[0], "HEAD")
}

func TestCalculateArmorRearOnLimb(t *testing.T) {
	armor := ArmorConfig{
		Type: ArmorStandard,
		Tech: TechInnerSphere,
		Allocation: map[Location]ArmorPoints{
			LeftArm: {Front: 10, Rear: 4},
		},
	}
	r := CalculateArmor(armor, 100, 0)
	assert.False(t, r.Valid)
	require.NotEmpty(t, r.Errors)
	assert.Contains(t, r.Errors[0], "rear")
}

func TestCalculateArmorFerroWeight(t *testing.T) {
	armor := ArmorConfig{
		Type: ArmorFerroFibrousIS,
		Tech: TechInnerSphere,
		Allocation: map[Location]ArmorPoints{
			CenterTorso: {Front: 40, Rear: 14},
			LeftTorso:   {Front: 28},
			RightTorso:  {Front: 28},
		},
	}
	r := CalculateArmor(armor, 100, 0)
	require.True(t, r.Valid, "errors: %v", r.Errors)
	// 110 points / 17.92 = 6.14, rounds up to 6.5 tons
	assert.Equal(t, 6.5, r.Weight)
	assert.Equal(t, 14, r.CritSlots)
}

func TestCalculateArmorCoverageWarning(t *testing.T) {
	armor := ArmorConfig{
		Type: ArmorStandard,
		Tech: TechInnerSphere,
		Allocation: map[Location]ArmorPoints{
			Head: {Front: 3},
		},
	}
	r := CalculateArmor(armor, 100, 0.5)
	require.True(t, r.Valid)
	assert.NotEmpty(t, r.Warnings)
}

func TestValidateConstructionAtlas(t *testing.T) {
	res := ValidateConstruction(atlasConfig(), Options{})
	require.True(t, res.Valid, "errors: %v", res.Errors)

	// structure 10 + engine 19 + gyro 3 + cockpit 3 + 10 external sinks + armor 19
	assert.Equal(t, 64.0, res.TotalWeight)
	assert.Equal(t, 36.0, res.RemainingTonnage)

	assert.Equal(t, "Tonnage", res.Steps[0].Name)
	assert.Equal(t, "Armor", res.Steps[6].Name)
	for i, step := range res.Steps {
		assert.Equal(t, i+1, step.Step)
	}
}

func TestValidateConstructionWeightSum(t *testing.T) {
	res := ValidateConstruction(atlasConfig(), Options{})
	var sum float64
	var slots int
	for _, step := range res.Steps {
		sum += step.Weight
		slots += step.CritSlots
	}
	assert.Equal(t, sum, res.TotalWeight)
	assert.Equal(t, slots, res.TotalCritSlots)
}

func TestValidateConstructionOverweight(t *testing.T) {
	cfg := atlasConfig()
	cfg.Tonnage = 30 // keep the rating; the chassis can no longer carry it
	cfg.Armor.Allocation = map[Location]ArmorPoints{Head: {Front: 9}}
	res := ValidateConstruction(cfg, Options{})
	assert.False(t, res.Valid)
	assert.Less(t, res.RemainingTonnage, 0.0)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[len(res.Errors)-1], "exceeds tonnage")
}

func TestValidateConstructionReportsAllSteps(t *testing.T) {
	cfg := atlasConfig()
	cfg.Tonnage = 52        // not a multiple of 5
	cfg.HeatSinks.Count = 5 // below minimum
	res := ValidateConstruction(cfg, Options{})
	assert.False(t, res.Valid)
	assert.False(t, res.Steps[0].Valid)
	assert.False(t, res.Steps[5].Valid)
	// the breakdown is still present for every step
	for _, step := range res.Steps {
		assert.NotEmpty(t, step.Name)
	}
}

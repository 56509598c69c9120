package bvcalc

import (
	"github.com/shopspring/decimal"

	"github.com/SwiggitySwerve/megamek-web-sub008/internal/rules"
)

// CostBreakdown itemizes a unit's price in C-Bills.
type CostBreakdown struct {
	Chassis   int64 `json:"chassis"`
	Engine    int64 `json:"engine"`
	Gyro      int64 `json:"gyro"`
	Cockpit   int64 `json:"cockpit"`
	Structure int64 `json:"structure"`
	Armor     int64 `json:"armor"`
	HeatSinks int64 `json:"heat_sinks"`
	Equipment int64 `json:"equipment"`
	Total     int64 `json:"total"`
}

// equipmentItemCost is the flat per-item estimate used for mounted
// equipment.
const equipmentItemCost = 50000

// CalculateCost prices a configuration component by component. The
// arithmetic runs on exact decimals; only the final figures round to
// whole C-Bills.
func CalculateCost(cfg rules.MechConfig, equipment []Equipment) CostBreakdown {
	var c CostBreakdown

	techMult := decimal.NewFromFloat(TechCostMultiplier(cfg.TechBase))

	chassis := decimal.NewFromInt(int64(cfg.Tonnage)).Mul(decimal.NewFromInt(10000))
	c.Chassis = chassis.Round(0).IntPart()

	engineWeight := decimal.NewFromFloat(rules.CalculateEngine(cfg.Tonnage, cfg.Engine).Weight)
	c.Engine = engineWeight.Mul(decimal.NewFromInt(5000)).Mul(techMult).Round(0).IntPart()

	gyroWeight := decimal.NewFromFloat(rules.CalculateGyro(cfg.Engine.Rating, cfg.Gyro.Type).Weight)
	c.Gyro = gyroWeight.Mul(decimal.NewFromInt(300000)).Mul(techMult).Round(0).IntPart()

	c.Cockpit = CockpitCost(cfg.Cockpit)

	structWeight := decimal.NewFromFloat(
		rules.CalculateStructure(cfg.Tonnage, cfg.Structure.Type, cfg.Structure.Tech).Weight)
	c.Structure = structWeight.Mul(decimal.NewFromInt(StructureCostPerTon(cfg.Structure.Type))).Round(0).IntPart()

	points := decimal.NewFromInt(int64(cfg.Armor.TotalPoints()))
	armorMult := decimal.NewFromFloat(ArmorCostMultiplier(cfg.Armor.Type))
	c.Armor = points.Mul(decimal.NewFromInt(armorBaseCostPerPoint)).Mul(armorMult).Round(0).IntPart()

	external := cfg.HeatSinks.Count - rules.IntegralHeatSinks(cfg.Engine.Rating, cfg.Engine.Type)
	if external < 0 {
		external = 0
	}
	c.HeatSinks = int64(external) * HeatSinkCost(cfg.HeatSinks.Type)

	c.Equipment = int64(len(equipment)) * equipmentItemCost

	c.Total = c.Chassis + c.Engine + c.Gyro + c.Cockpit + c.Structure + c.Armor + c.HeatSinks + c.Equipment
	return c
}

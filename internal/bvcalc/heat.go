package bvcalc

import "github.com/SwiggitySwerve/megamek-web-sub008/internal/rules"

// HeatProfile is a unit's heat balance per turn. A negative net means
// overcooled, a positive one overheating; both are reported states, not
// errors.
type HeatProfile struct {
	Generated  int `json:"generated"`
	Dissipated int `json:"dissipated"`
	Net        int `json:"net"`
}

// CalculateHeatProfile sums weapon heat plus movement heat against the
// heat sink capacity. Dissipation is linear in sink count.
func CalculateHeatProfile(cfg rules.MechConfig, equipment []Equipment) HeatProfile {
	var p HeatProfile
	for _, e := range equipment {
		p.Generated += e.Heat
	}
	mv := CalculateMovement(cfg)
	p.Generated += MovementHeat(mv.RunMP, mv.JumpMP)

	p.Dissipated = Dissipation(cfg.HeatSinks.Type, cfg.HeatSinks.Count)
	p.Net = p.Generated - p.Dissipated
	return p
}

// Dissipation is the total heat removed per turn by count sinks.
func Dissipation(t rules.HeatSinkType, count int) int {
	return count * rules.HeatSinkDissipation(t)
}

package rules

import (
	"fmt"
	"math"
)

// StepResult is the outcome of one construction step. Results are
// recomputed from scratch on every validation pass and never persisted.
type StepResult struct {
	Step      int      `json:"step"`
	Name      string   `json:"name"`
	Weight    float64  `json:"weight"`
	CritSlots int      `json:"critical_slots"`
	Valid     bool     `json:"is_valid"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

func (s *StepResult) addError(format string, args ...any) {
	s.Errors = append(s.Errors, fmt.Sprintf(format, args...))
	s.Valid = false
}

func (s *StepResult) addWarning(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

// Result aggregates all seven construction steps.
type Result struct {
	Valid            bool          `json:"is_valid"`
	Errors           []string      `json:"errors,omitempty"`
	Warnings         []string      `json:"warnings,omitempty"`
	Steps            [7]StepResult `json:"steps"`
	TotalWeight      float64       `json:"total_weight"`
	TotalCritSlots   int           `json:"total_critical_slots"`
	RemainingTonnage float64       `json:"remaining_tonnage"`
}

// Options tune advisory thresholds. Zero values fall back to defaults.
type Options struct {
	// ExternalHeatSinkWarn is the external sink count above which a
	// warning is raised.
	ExternalHeatSinkWarn int
	// ArmorCoverageWarn is the fraction of maximum armor below which a
	// low-efficiency warning is raised.
	ArmorCoverageWarn float64
}

// DefaultOptions returns the advisory thresholds used when none are set.
func DefaultOptions() Options {
	return Options{
		ExternalHeatSinkWarn: 15,
		ArmorCoverageWarn:    0.5,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ExternalHeatSinkWarn <= 0 {
		o.ExternalHeatSinkWarn = def.ExternalHeatSinkWarn
	}
	if o.ArmorCoverageWarn <= 0 {
		o.ArmorCoverageWarn = def.ArmorCoverageWarn
	}
	return o
}

// ValidateTonnage is construction step 1.
func ValidateTonnage(tonnage int) StepResult {
	r := StepResult{Step: 1, Name: "Tonnage", Valid: true}
	if tonnage < MinTonnage || tonnage > MaxTonnage {
		r.addError("tonnage %d is outside the legal range %d-%d", tonnage, MinTonnage, MaxTonnage)
	} else if tonnage%5 != 0 {
		r.addError("tonnage %d is not a multiple of 5", tonnage)
	}
	return r
}

// CalculateStructure is construction step 2.
func CalculateStructure(tonnage int, t StructureType, tech TechBase) StepResult {
	r := StepResult{Step: 2, Name: "Internal Structure", Valid: true}
	r.Weight = CeilHalfTon(float64(tonnage) * StructureWeightMultiplier(t))
	r.CritSlots = StructureSlots(t, tech)
	return r
}

// CalculateEngine is construction step 3.
func CalculateEngine(tonnage int, cfg EngineConfig) StepResult {
	r := StepResult{Step: 3, Name: "Engine", Valid: true}

	base, ok := EngineBaseWeight(cfg.Rating)
	if !ok {
		r.addError("engine rating %d is not a multiple of 5 in the range %d-%d",
			cfg.Rating, MinEngineRating, MaxEngineRating)
		return r
	}

	if tonnage <= 0 {
		r.addError("engine rating %d on a %d ton chassis yields no walk MP, outside 1-20",
			cfg.Rating, tonnage)
	} else if walkMP := cfg.Rating / tonnage; walkMP < 1 || walkMP > 20 {
		r.addError("engine rating %d on a %d ton chassis yields walk MP %d, outside 1-20",
			cfg.Rating, tonnage, walkMP)
	}

	r.Weight = CeilHalfTon(base * EngineWeightFactor(cfg.Type))
	ct, side := EngineSlots(cfg.Type, cfg.Tech)
	r.CritSlots = ct + 2*side
	return r
}

// CalculateGyro is construction step 4.
func CalculateGyro(rating int, t GyroType) StepResult {
	r := StepResult{Step: 4, Name: "Gyro", Valid: true}
	base := math.Ceil(float64(rating) / 100.0)
	r.Weight = CeilHalfTon(base * GyroWeightFactor(t))
	r.CritSlots = GyroSlots(t)
	return r
}

// CalculateCockpit is construction step 5.
func CalculateCockpit(t CockpitType) StepResult {
	r := StepResult{Step: 5, Name: "Cockpit", Valid: true}
	r.Weight = CockpitWeight(t)
	r.CritSlots = CockpitSlots(t)
	return r
}

// IntegralHeatSinks returns the count of heat sinks housed inside the
// engine at no weight or slot cost.
func IntegralHeatSinks(rating int, engine EngineType) int {
	if !engine.IsFusion() {
		return 0
	}
	integral := rating / 25
	if integral > 10 {
		integral = 10
	}
	return integral
}

// CalculateHeatSinks is construction step 6.
func CalculateHeatSinks(cfg HeatSinkConfig, rating int, engine EngineType, warnThreshold int) StepResult {
	r := StepResult{Step: 6, Name: "Heat Sinks", Valid: true}
	if cfg.Count < MinHeatSinks {
		r.addError("heat sink count %d is below the minimum of %d", cfg.Count, MinHeatSinks)
		return r
	}

	external := cfg.Count - IntegralHeatSinks(rating, engine)
	if external < 0 {
		external = 0
	}
	r.Weight = float64(external) * HeatSinkWeight(cfg.Type)
	r.CritSlots = external * HeatSinkSlots(cfg.Type)

	if warnThreshold > 0 && external > warnThreshold {
		r.addWarning("%d external heat sinks exceed the advisory threshold of %d", external, warnThreshold)
	}
	return r
}

// CalculateArmor is construction step 7. Torso allocations count front
// plus rear toward both the location cap and the total.
func CalculateArmor(cfg ArmorConfig, tonnage int, coverageWarn float64) StepResult {
	r := StepResult{Step: 7, Name: "Armor", Valid: true}

	total := 0
	maxTotal := 0
	for _, loc := range Locations() {
		limit := MaxArmorPoints(tonnage, loc)
		maxTotal += limit
		pts := cfg.Allocation[loc]
		if pts.Rear != 0 && !loc.IsTorso() {
			r.addError("location %s cannot carry rear armor", loc)
		}
		if got := pts.Total(); got > limit {
			r.addError("armor points %d in %s exceed the maximum of %d", got, loc, limit)
		}
		total += pts.Total()
	}

	r.Weight = CeilHalfTon(float64(total) / ArmorPointsPerTon(cfg.Type))
	r.CritSlots = ArmorSlots(cfg.Type)

	if coverageWarn > 0 && maxTotal > 0 && float64(total) < coverageWarn*float64(maxTotal) {
		r.addWarning("armor coverage %d of %d points is below %.0f%%", total, maxTotal, coverageWarn*100)
	}
	return r
}

// ValidateConstruction runs the full seven-step pipeline over a config and
// aggregates weights, slots and diagnostics. The per-step breakdown is
// returned even when the aggregate is invalid.
func ValidateConstruction(cfg MechConfig, opts Options) Result {
	opts = opts.withDefaults()

	var res Result
	res.Steps[0] = ValidateTonnage(cfg.Tonnage)
	res.Steps[1] = CalculateStructure(cfg.Tonnage, cfg.Structure.Type, cfg.Structure.Tech)
	res.Steps[2] = CalculateEngine(cfg.Tonnage, cfg.Engine)
	res.Steps[3] = CalculateGyro(cfg.Engine.Rating, cfg.Gyro.Type)
	res.Steps[4] = CalculateCockpit(cfg.Cockpit)
	res.Steps[5] = CalculateHeatSinks(cfg.HeatSinks, cfg.Engine.Rating, cfg.Engine.Type, opts.ExternalHeatSinkWarn)
	res.Steps[6] = CalculateArmor(cfg.Armor, cfg.Tonnage, opts.ArmorCoverageWarn)

	res.Valid = true
	for _, step := range res.Steps {
		res.TotalWeight += step.Weight
		res.TotalCritSlots += step.CritSlots
		res.Errors = append(res.Errors, step.Errors...)
		res.Warnings = append(res.Warnings, step.Warnings...)
		if !step.Valid {
			res.Valid = false
		}
	}

	res.RemainingTonnage = float64(cfg.Tonnage) - res.TotalWeight
	if res.RemainingTonnage < 0 {
		res.Valid = false
		res.Errors = append(res.Errors,
			fmt.Sprintf("total weight %.1f exceeds tonnage %d", res.TotalWeight, cfg.Tonnage))
	}
	return res
}

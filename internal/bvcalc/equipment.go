package bvcalc

// Equipment is one mountable item: the fields Battle Value, heat and
// allocation care about. The built-in table covers the common weapon and
// defensive gear set; anything outside it falls back to the tonnage
// estimate in the BV calculation.
type Equipment struct {
	ID        string
	Name      string
	Slots     int
	Tons      float64
	Heat      int
	BV        int
	Defensive bool
}

var equipmentTable = []Equipment{
	// Energy weapons
	{ID: "small_laser", Name: "Small Laser", Slots: 1, Tons: 0.5, Heat: 1, BV: 9},
	{ID: "medium_laser", Name: "Medium Laser", Slots: 1, Tons: 1, Heat: 3, BV: 46},
	{ID: "large_laser", Name: "Large Laser", Slots: 2, Tons: 5, Heat: 8, BV: 123},
	{ID: "er_small_laser", Name: "ER Small Laser", Slots: 1, Tons: 0.5, Heat: 2, BV: 17},
	{ID: "er_medium_laser", Name: "ER Medium Laser", Slots: 1, Tons: 1, Heat: 5, BV: 62},
	{ID: "er_large_laser", Name: "ER Large Laser", Slots: 2, Tons: 5, Heat: 12, BV: 163},
	{ID: "medium_pulse_laser", Name: "Medium Pulse Laser", Slots: 1, Tons: 2, Heat: 4, BV: 48},
	{ID: "large_pulse_laser", Name: "Large Pulse Laser", Slots: 2, Tons: 7, Heat: 10, BV: 119},
	{ID: "ppc", Name: "PPC", Slots: 3, Tons: 7, Heat: 10, BV: 176},
	{ID: "er_ppc", Name: "ER PPC", Slots: 3, Tons: 7, Heat: 15, BV: 229},
	{ID: "flamer", Name: "Flamer", Slots: 1, Tons: 1, Heat: 3, BV: 6},

	// Ballistic weapons
	{ID: "machine_gun", Name: "Machine Gun", Slots: 1, Tons: 0.5, Heat: 0, BV: 5},
	{ID: "ac_2", Name: "AC/2", Slots: 1, Tons: 6, Heat: 1, BV: 37},
	{ID: "ac_5", Name: "AC/5", Slots: 4, Tons: 8, Heat: 1, BV: 70},
	{ID: "ac_10", Name: "AC/10", Slots: 7, Tons: 12, Heat: 3, BV: 123},
	{ID: "ac_20", Name: "AC/20", Slots: 10, Tons: 14, Heat: 7, BV: 178},
	{ID: "ultra_ac_5", Name: "Ultra AC/5", Slots: 5, Tons: 9, Heat: 1, BV: 112},
	{ID: "lb_10_x_ac", Name: "LB 10-X AC", Slots: 6, Tons: 11, Heat: 2, BV: 148},
	{ID: "gauss_rifle", Name: "Gauss Rifle", Slots: 7, Tons: 15, Heat: 1, BV: 320},

	// Missile weapons
	{ID: "srm_2", Name: "SRM 2", Slots: 1, Tons: 1, Heat: 2, BV: 21},
	{ID: "srm_4", Name: "SRM 4", Slots: 1, Tons: 2, Heat: 3, BV: 39},
	{ID: "srm_6", Name: "SRM 6", Slots: 2, Tons: 3, Heat: 4, BV: 59},
	{ID: "lrm_5", Name: "LRM 5", Slots: 1, Tons: 2, Heat: 2, BV: 45},
	{ID: "lrm_10", Name: "LRM 10", Slots: 2, Tons: 5, Heat: 4, BV: 90},
	{ID: "lrm_15", Name: "LRM 15", Slots: 3, Tons: 7, Heat: 5, BV: 136},
	{ID: "lrm_20", Name: "LRM 20", Slots: 5, Tons: 10, Heat: 6, BV: 181},
	{ID: "streak_srm_2", Name: "Streak SRM 2", Slots: 1, Tons: 1.5, Heat: 2, BV: 30},

	// Defensive equipment
	{ID: "anti_missile_system", Name: "Anti-Missile System", Slots: 1, Tons: 0.5, Heat: 1, BV: 32, Defensive: true},
	{ID: "guardian_ecm_suite", Name: "Guardian ECM Suite", Slots: 2, Tons: 1.5, Heat: 0, BV: 61, Defensive: true},
	{ID: "beagle_active_probe", Name: "Beagle Active Probe", Slots: 2, Tons: 1.5, Heat: 0, BV: 10, Defensive: true},
}

var equipmentByID = func() map[string]Equipment {
	m := make(map[string]Equipment, len(equipmentTable))
	for _, e := range equipmentTable {
		m[e.ID] = e
	}
	return m
}()

// LookupEquipment resolves an equipment id against the built-in table.
func LookupEquipment(id string) (Equipment, bool) {
	e, ok := equipmentByID[id]
	return e, ok
}

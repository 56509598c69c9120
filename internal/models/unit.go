// Package models defines the serialized unit record shared by the
// ingestion loader and the batch index tool.
package models

// Engine is the serialized engine block of a unit record.
type Engine struct {
	Type   string `json:"type"`
	Rating int    `json:"rating"`
}

// Gyro is the serialized gyro block.
type Gyro struct {
	Type string `json:"type"`
}

// Structure is the serialized internal structure block.
type Structure struct {
	Type string `json:"type"`
}

// ArmorAllocation is the per-location armor entry. Torso locations carry
// a rear value; everything else serializes front only.
type ArmorAllocation struct {
	Front int `json:"front"`
	Rear  int `json:"rear,omitempty"`
}

// Armor is the serialized armor block.
type Armor struct {
	Type       string                     `json:"type"`
	Allocation map[string]ArmorAllocation `json:"allocation"`
}

// HeatSinks is the serialized heat sink block.
type HeatSinks struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Movement is the serialized movement block. Enhancements lists flags
// like MASC, TSM or SUPERCHARGER.
type Movement struct {
	Walk         int      `json:"walk"`
	Jump         int      `json:"jump"`
	JumpJetType  string   `json:"jumpJetType,omitempty"`
	Enhancements []string `json:"enhancements,omitempty"`
}

// Equipment is one mounted item of a unit record.
type Equipment struct {
	ID            string `json:"id"`
	Location      string `json:"location"`
	Slots         []int  `json:"slots,omitempty"`
	IsRearMounted bool   `json:"isRearMounted,omitempty"`
	LinkedAmmo    string `json:"linkedAmmo,omitempty"`
}

// Fluff holds the flavor text blocks.
type Fluff struct {
	Overview           string            `json:"overview,omitempty"`
	Capabilities       string            `json:"capabilities,omitempty"`
	History            string            `json:"history,omitempty"`
	Deployment         string            `json:"deployment,omitempty"`
	Variants           string            `json:"variants,omitempty"`
	NotableUnits       string            `json:"notableUnits,omitempty"`
	Manufacturer       string            `json:"manufacturer,omitempty"`
	PrimaryFactory     string            `json:"primaryFactory,omitempty"`
	SystemManufacturer map[string]string `json:"systemManufacturer,omitempty"`
}

// Unit is the complete serialized unit record. CriticalSlots maps a
// location name to its slot array; empty slots are null.
type Unit struct {
	ID            string               `json:"id"`
	Chassis       string               `json:"chassis"`
	Model         string               `json:"model"`
	UnitType      string               `json:"unitType"`
	Configuration string               `json:"configuration"`
	TechBase      string               `json:"techBase"`
	RulesLevel    string               `json:"rulesLevel,omitempty"`
	Era           string               `json:"era,omitempty"`
	Year          int                  `json:"year,omitempty"`
	Tonnage       int                  `json:"tonnage"`
	Engine        Engine               `json:"engine"`
	Gyro          Gyro                 `json:"gyro"`
	Cockpit       string               `json:"cockpit"`
	Structure     Structure            `json:"structure"`
	Armor         Armor                `json:"armor"`
	HeatSinks     HeatSinks            `json:"heatSinks"`
	Movement      Movement             `json:"movement"`
	Equipment     []Equipment          `json:"equipment"`
	CriticalSlots map[string][]*string `json:"criticalSlots,omitempty"`
	Variant       string               `json:"variant,omitempty"`
	Quirks        []string             `json:"quirks,omitempty"`
	Fluff         *Fluff               `json:"fluff,omitempty"`
	MulID         *int                 `json:"mulId,omitempty"`
	Role          string               `json:"role,omitempty"`
	Source        string               `json:"source,omitempty"`
}

// FullName returns "Chassis Model", or just the chassis when the model
// code is empty.
func (u *Unit) FullName() string {
	if u.Model == "" {
		return u.Chassis
	}
	return u.Chassis + " " + u.Model
}

// TotalArmor sums the armor allocation, front plus rear.
func (u *Unit) TotalArmor() int {
	total := 0
	for _, a := range u.Armor.Allocation {
		total += a.Front + a.Rear
	}
	return total
}

// IndexEntry is one row of the generated unit index.
type IndexEntry struct {
	ID       string `json:"id"`
	Chassis  string `json:"chassis"`
	Model    string `json:"model"`
	Tonnage  int    `json:"tonnage"`
	TechBase string `json:"techBase"`
	Valid    bool   `json:"valid"`
	BV       int    `json:"bv"`
	Cost     int64  `json:"cost"`
}

// Index is the batch tool's output document.
type Index struct {
	Version     string       `json:"version"`
	GeneratedAt string       `json:"generatedAt"`
	TotalUnits  int          `json:"totalUnits"`
	Units       []IndexEntry `json:"units"`
}

// Package ingestion loads serialized unit records: JSON decode, schema
// validation, and conversion into a construction config plus the
// equipment list for the critical sheet.
package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/SwiggitySwerve/megamek-web-sub008/internal/bvcalc"
	"github.com/SwiggitySwerve/megamek-web-sub008/internal/crits"
	"github.com/SwiggitySwerve/megamek-web-sub008/internal/models"
	"github.com/SwiggitySwerve/megamek-web-sub008/internal/rules"
)

// unitSchema is the structural contract every unit record must meet
// before field-level parsing starts.
const unitSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id", "chassis", "tonnage", "techBase", "engine", "armor", "heatSinks", "movement"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "chassis": {"type": "string", "minLength": 1},
    "model": {"type": "string"},
    "techBase": {"type": "string"},
    "tonnage": {"type": "integer", "minimum": 20, "maximum": 100},
    "engine": {
      "type": "object",
      "required": ["type", "rating"],
      "properties": {
        "type": {"type": "string"},
        "rating": {"type": "integer", "minimum": 10}
      }
    },
    "gyro": {
      "type": "object",
      "properties": {"type": {"type": "string"}}
    },
    "cockpit": {"type": "string"},
    "structure": {
      "type": "object",
      "properties": {"type": {"type": "string"}}
    },
    "armor": {
      "type": "object",
      "required": ["type", "allocation"],
      "properties": {
        "type": {"type": "string"},
        "allocation": {
          "type": "object",
          "additionalProperties": {
            "type": "object",
            "required": ["front"],
            "properties": {
              "front": {"type": "integer", "minimum": 0},
              "rear": {"type": "integer", "minimum": 0}
            }
          }
        }
      }
    },
    "heatSinks": {
      "type": "object",
      "required": ["type", "count"],
      "properties": {
        "type": {"type": "string"},
        "count": {"type": "integer", "minimum": 0}
      }
    },
    "movement": {
      "type": "object",
      "required": ["walk"],
      "properties": {
        "walk": {"type": "integer", "minimum": 1},
        "jump": {"type": "integer", "minimum": 0}
      }
    },
    "equipment": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "location"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "location": {"type": "string"}
        }
      }
    }
  }
}`

// Loader validates and decodes unit records.
type Loader struct {
	schema *jsonschema.Schema
}

// NewLoader compiles the record schema.
func NewLoader() (*Loader, error) {
	schema, err := jsonschema.CompileString("unit.schema.json", unitSchema)
	if err != nil {
		return nil, fmt.Errorf("compile unit schema: %w", err)
	}
	return &Loader{schema: schema}, nil
}

// Load reads one unit record from r, validating it against the schema
// before decoding.
func (l *Loader) Load(r io.Reader) (*models.Unit, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read unit record: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode unit record: %w", err)
	}
	if err := l.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid unit record: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	var u models.Unit
	if err := dec.Decode(&u); err != nil {
		return nil, fmt.Errorf("decode unit record: %w", err)
	}
	return &u, nil
}

// LoadFile reads one unit record from disk.
func (l *Loader) LoadFile(path string) (*models.Unit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open unit record: %w", err)
	}
	defer f.Close()

	u, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return u, nil
}

// Convert maps a unit record onto a construction config and the
// equipment items for its critical sheet. Unknown equipment ids fall
// back to a single-slot footprint so a record with exotic gear still
// converts; construction validation decides whether it is legal.
func Convert(u *models.Unit) (rules.MechConfig, []crits.Item, error) {
	var cfg rules.MechConfig

	tech, err := rules.ParseTechBase(u.TechBase)
	if err != nil {
		return cfg, nil, fmt.Errorf("unit %s: %w", u.ID, err)
	}
	engineType, err := rules.ParseEngineType(u.Engine.Type)
	if err != nil {
		return cfg, nil, fmt.Errorf("unit %s: %w", u.ID, err)
	}
	gyroType, err := parseOrDefault(u.Gyro.Type, rules.ParseGyroType, rules.GyroStandard)
	if err != nil {
		return cfg, nil, fmt.Errorf("unit %s: %w", u.ID, err)
	}
	cockpit, err := parseOrDefault(u.Cockpit, rules.ParseCockpitType, rules.CockpitStandard)
	if err != nil {
		return cfg, nil, fmt.Errorf("unit %s: %w", u.ID, err)
	}
	structure, err := parseOrDefault(u.Structure.Type, rules.ParseStructureType, rules.StructureStandard)
	if err != nil {
		return cfg, nil, fmt.Errorf("unit %s: %w", u.ID, err)
	}
	armorType, err := rules.ParseArmorType(u.Armor.Type)
	if err != nil {
		return cfg, nil, fmt.Errorf("unit %s: %w", u.ID, err)
	}
	hsType, err := rules.ParseHeatSinkType(u.HeatSinks.Type)
	if err != nil {
		return cfg, nil, fmt.Errorf("unit %s: %w", u.ID, err)
	}

	allocation := make(map[rules.Location]rules.ArmorPoints, len(u.Armor.Allocation))
	for name, a := range u.Armor.Allocation {
		loc, err := rules.ParseLocation(name)
		if err != nil {
			return cfg, nil, fmt.Errorf("unit %s armor: %w", u.ID, err)
		}
		allocation[loc] = rules.ArmorPoints{Front: a.Front, Rear: a.Rear}
	}

	cfg = rules.MechConfig{
		Tonnage:   u.Tonnage,
		TechBase:  tech,
		Engine:    rules.EngineConfig{Type: engineType, Rating: u.Engine.Rating, Tech: tech},
		Gyro:      rules.GyroConfig{Type: gyroType, Tech: tech},
		Structure: rules.StructureConfig{Type: structure, Tech: tech},
		Cockpit:   cockpit,
		HeatSinks: rules.HeatSinkConfig{Type: hsType, Count: u.HeatSinks.Count, Tech: tech},
		Armor:     rules.ArmorConfig{Type: armorType, Tech: tech, Allocation: allocation},
		WalkMP:    u.Movement.Walk,
		JumpMP:    u.Movement.Jump,
		Enhancements: rules.Enhancements{
			MyomerTech:  tech,
			JumpJetTech: tech,
		},
		Targeting: rules.TargetingConfig{Tech: tech},
	}
	for _, e := range u.Movement.Enhancements {
		switch e {
		case "MASC":
			cfg.Enhancements.MASC = true
		case "TSM":
			cfg.Enhancements.TSM = true
		case "SUPERCHARGER":
			cfg.Enhancements.Supercharger = true
		}
	}

	items := make([]crits.Item, 0, len(u.Equipment))
	for _, e := range u.Equipment {
		if e.ID == "targeting_computer" {
			cfg.Targeting.Computer = true
			continue
		}
		loc, err := rules.ParseLocation(e.Location)
		if err != nil {
			return cfg, nil, fmt.Errorf("unit %s equipment %s: %w", u.ID, e.ID, err)
		}
		slots := 1
		if eq, ok := bvcalc.LookupEquipment(e.ID); ok {
			slots = eq.Slots
		}
		items = append(items, crits.Item{ID: e.ID, Location: loc, Slots: slots})
	}
	return cfg, items, nil
}

func parseOrDefault[T any](s string, parse func(string) (T, error), def T) (T, error) {
	if s == "" {
		return def, nil
	}
	return parse(s)
}

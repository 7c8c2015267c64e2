package sim

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Pack is a set of user-provided scenarios loaded from a JSON file.
type Pack struct {
	Scenarios []Scenario `json:"scenarios"`
}

var (
	compileOnce  sync.Once
	compiledPack *jsonschema.Schema
	compileErr   error
)

func compiledPackSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes. Marshal then unmarshal to get a clean any
		// representation.
		defBytes, err := json.Marshal(packSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal pack schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://scenario-pack.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledPack, compileErr = c.Compile(schemaURL)
	})
	return compiledPack, compileErr
}

// ParsePack validates raw JSON against the pack schema and decodes it.
func ParsePack(raw []byte) (*Pack, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledPackSchema()
	if err != nil {
		return nil, fmt.Errorf("compile pack schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("pack validation failed: %w", err)
	}

	var pack Pack
	if err := json.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}

	// Pack scenarios may not shadow the built-in catalog.
	seen := make(map[string]bool, len(pack.Scenarios))
	for _, sc := range pack.Scenarios {
		if _, ok := GetScenario(sc.ID); ok {
			return nil, fmt.Errorf("scenario %q conflicts with a built-in scenario", sc.ID)
		}
		if seen[sc.ID] {
			return nil, fmt.Errorf("duplicate scenario id %q", sc.ID)
		}
		seen[sc.ID] = true
	}

	return &pack, nil
}

// LoadPack reads and parses a scenario pack from disk.
func LoadPack(path string) (*Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}
	pack, err := ParsePack(raw)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", path, err)
	}
	return pack, nil
}

// Package loader reads machine definition files into fsm models.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/moorgen/moorgen/internal/compiler"
	"github.com/moorgen/moorgen/pkg/fsm"
)

// Definition mirrors the on-disk machine description.
type Definition struct {
	Name        string          `json:"name" yaml:"name" mapstructure:"name"`
	Inputs      []string        `json:"inputs" yaml:"inputs" mapstructure:"inputs"`
	Outputs     []string        `json:"outputs" yaml:"outputs" mapstructure:"outputs"`
	States      []StateDef      `json:"states" yaml:"states" mapstructure:"states"`
	Transitions []TransitionDef `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

// StateDef declares one state. Output values may arrive as numbers,
// quoted bits, or booleans; they are coerced the same way regardless of
// the source format.
type StateDef struct {
	Name    string         `json:"name" yaml:"name" mapstructure:"name"`
	Default bool           `json:"default,omitempty" yaml:"default,omitempty" mapstructure:"default"`
	Outputs map[string]any `json:"outputs,omitempty" yaml:"outputs,omitempty" mapstructure:"outputs"`
}

// TransitionDef declares one edge. An empty When means the transition is
// unconditional (the source state's else branch).
type TransitionDef struct {
	From string `json:"from" yaml:"from" mapstructure:"from"`
	To   string `json:"to" yaml:"to" mapstructure:"to"`
	When string `json:"when,omitempty" yaml:"when,omitempty" mapstructure:"when"`
}

// Load reads a definition file and builds the machine. The format is
// chosen by extension: .json is JSON, everything else is YAML.
func Load(path string) (*fsm.Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	var raw map[string]any
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}
	return FromMap(raw)
}

// FromMap builds a machine from a loosely-typed definition map, as
// produced by a decoded file or an API request body. Decoding is weakly
// typed so JSON numbers and YAML scalars both work.
func FromMap(raw map[string]any) (*fsm.Machine, error) {
	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}
	return Build(def)
}

// Build assembles a machine from a definition through the model's
// mutators, so every structural invariant is enforced while loading.
func Build(def Definition) (*fsm.Machine, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("definition has no machine name")
	}

	m := fsm.New(def.Name)
	for _, name := range def.Inputs {
		if err := m.AddInput(name); err != nil {
			return nil, err
		}
	}
	for _, name := range def.Outputs {
		if err := m.AddOutput(name); err != nil {
			return nil, err
		}
	}

	for _, sd := range def.States {
		outputs := make(map[string]fsm.Bit, len(sd.Outputs))
		for name, value := range sd.Outputs {
			bit, err := coerceBit(value)
			if err != nil {
				return nil, fmt.Errorf("state %q, output %q: %w", sd.Name, name, err)
			}
			outputs[name] = bit
		}
		if err := m.AddState(fsm.State{Name: sd.Name, Outputs: outputs, Default: sd.Default}); err != nil {
			return nil, err
		}
	}

	for _, td := range def.Transitions {
		var cond fsm.Condition
		if strings.TrimSpace(td.When) != "" {
			var err error
			cond, err = compiler.ParseCondition(td.When)
			if err != nil {
				return nil, fmt.Errorf("transition %s -> %s: %w", td.From, td.To, err)
			}
		}
		if err := m.AddTransition(fsm.Transition{Source: td.From, Destination: td.To, Condition: cond}); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// coerceBit accepts the value spellings the file formats produce for a
// bit: 0/1 numbers, "0"/"1" strings, and booleans.
func coerceBit(value any) (fsm.Bit, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return fsm.High, nil
		}
		return fsm.Low, nil
	case int:
		return bitFromInt(int64(v))
	case int64:
		return bitFromInt(v)
	case uint64:
		return bitFromInt(int64(v))
	case float64:
		if v != 0 && v != 1 {
			return 0, fmt.Errorf("value %v is not 0 or 1", v)
		}
		return bitFromInt(int64(v))
	case string:
		switch strings.Trim(v, "'") {
		case "0":
			return fsm.Low, nil
		case "1":
			return fsm.High, nil
		}
		return 0, fmt.Errorf("value %q is not 0 or 1", v)
	default:
		return 0, fmt.Errorf("unsupported value %v (%T)", value, value)
	}
}

func bitFromInt(v int64) (fsm.Bit, error) {
	switch v {
	case 0:
		return fsm.Low, nil
	case 1:
		return fsm.High, nil
	}
	return 0, fmt.Errorf("value %d is not 0 or 1", v)
}

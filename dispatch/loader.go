package dispatch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coregx/strmatch"
)

// yamlRule is the intermediate struct for one rule entry in a rules file.
type yamlRule struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description,omitempty"`
}

// yamlRulesFile is the top-level structure of a rules YAML file: a "rules"
// array whose order is the dispatch order.
type yamlRulesFile struct {
	Rules []yamlRule `yaml:"rules"`
}

// LoadRules builds a Set from YAML rule bytes.
//
// File format:
//
//	rules:
//	  - name: get-request
//	    pattern: '"GET " [path]'
//	    description: HTTP GET request line
//	  - name: put-request
//	    pattern: '"PUT " [path]'
//
// Rules are tried in file order. A rule with a missing name or an invalid
// pattern fails the whole load; pattern errors carry the rule name and the
// underlying *strmatch.CompileError.
func LoadRules(data []byte) (*Set, error) {
	var file yamlRulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("no rules found in YAML")
	}

	arms := make([]Arm, 0, len(file.Rules))
	seen := make(map[string]bool)
	for i, r := range file.Rules {
		if r.Name == "" {
			return nil, fmt.Errorf("rule %d: missing name", i)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("rule %q: duplicate name", r.Name)
		}
		seen[r.Name] = true

		p, err := strmatch.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		arms = append(arms, Arm{Name: r.Name, Pattern: p, Description: r.Description})
	}

	return NewSet(arms), nil
}

// LoadRulesFile builds a Set from a rules YAML file on disk.
func LoadRulesFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return LoadRules(data)
}

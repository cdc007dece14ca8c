package columns

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"caai_logbook/internal/logbook"
)

// LoadExplicitMapping reads an explicit column-mapping file. The file maps
// canonical field names (or any known alias) to a source header name or a
// 0-based column index:
//
//	columns:
//	  Date: Flight Date
//	  Total Time: Block Hours
//	  PIC: 13
func LoadExplicitMapping(path string) (ExplicitMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}
	return ParseExplicitMapping(data)
}

// ParseExplicitMapping parses explicit-mapping YAML (see LoadExplicitMapping).
// Unknown canonical field names are an error: a typo here would otherwise
// silently fall back to alias detection.
func ParseExplicitMapping(data []byte) (ExplicitMapping, error) {
	var doc struct {
		Columns map[string]string `yaml:"columns"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse mapping file: %w", err)
	}
	if len(doc.Columns) == 0 {
		return nil, fmt.Errorf("mapping file has no columns section")
	}

	mapping := make(ExplicitMapping, len(doc.Columns))
	for name, source := range doc.Columns {
		field, ok := fieldByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown canonical field %q in mapping file", name)
		}
		if idx, err := strconv.Atoi(source); err == nil {
			mapping[field] = Locator{Index: idx}
			continue
		}
		mapping[field] = Locator{Name: source, Index: -1}
	}
	return mapping, nil
}

// fieldByName matches a user-supplied field name against canonical field
// names first, then against the alias dictionary.
func fieldByName(name string) (logbook.CanonicalField, bool) {
	norm := normalizeHeader(name)
	for _, field := range logbook.AllFields() {
		if normalizeHeader(field.String()) == norm {
			return field, true
		}
	}
	for field, aliases := range headerAliases {
		for _, alias := range aliases {
			if normalizeHeader(alias) == norm {
				return field, true
			}
		}
	}
	return 0, false
}

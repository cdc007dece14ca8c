// Package columns resolves raw source-file headers onto canonical logbook
// fields, using an alias dictionary with an optional explicit mapping that
// always wins.
package columns

import (
	"sort"
	"strings"

	"caai_logbook/internal/logbook"
)

// Mapping maps a canonical field to the 0-based source column index that
// supplies it. At most one source column backs a given field.
type Mapping map[logbook.CanonicalField]int

// Locator addresses a source column either by header name or by 0-based
// index. Index is used when >= 0; otherwise Name is resolved against the
// actual headers.
type Locator struct {
	Name  string
	Index int
}

// ExplicitMapping is a caller-supplied mapping that takes precedence over
// alias detection, field by field.
type ExplicitMapping map[logbook.CanonicalField]Locator

// Resolve maps raw headers onto canonical fields. Explicit entries win
// unconditionally; remaining fields are matched against the alias dictionary
// in two passes (exact, then substring). Headers that match nothing are
// simply unmapped. Required fields still unresolved afterwards are returned
// in the second value; resolution itself never fails.
func Resolve(headers []string, explicit ExplicitMapping) (Mapping, []logbook.CanonicalField) {
	mapping := make(Mapping)
	used := make(map[int]bool)

	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	// Explicit entries first, in canonical field order so two entries
	// naming the same header resolve the same way on every run.
	for _, field := range logbook.AllFields() {
		loc, ok := explicit[field]
		if !ok {
			continue
		}
		idx := -1
		if loc.Index >= 0 {
			if loc.Index < len(headers) {
				idx = loc.Index
			}
		} else {
			idx = findHeader(normalized, normalizeHeader(loc.Name), used)
		}
		if idx >= 0 {
			mapping[field] = idx
			used[idx] = true
		}
	}

	// First pass: exact alias matches.
	for _, field := range logbook.AllFields() {
		if _, ok := mapping[field]; ok {
			continue
		}
		for _, alias := range headerAliases[field] {
			norm := normalizeHeader(alias)
			if idx := exactHeader(normalized, norm, used); idx >= 0 {
				mapping[field] = idx
				used[idx] = true
				break
			}
		}
	}

	// Second pass: substring matches for whatever is still unmapped. Very
	// short aliases are skipped here, they match too eagerly.
	for _, field := range logbook.AllFields() {
		if _, ok := mapping[field]; ok {
			continue
		}
		for _, alias := range headerAliases[field] {
			norm := normalizeHeader(alias)
			if len([]rune(norm)) < 3 {
				continue
			}
			if idx := substringHeader(normalized, norm, used); idx >= 0 {
				mapping[field] = idx
				used[idx] = true
				break
			}
		}
	}

	var unresolved []logbook.CanonicalField
	for _, field := range logbook.RequiredFields {
		if _, ok := mapping[field]; !ok {
			unresolved = append(unresolved, field)
		}
	}
	sort.Slice(unresolved, func(i, j int) bool { return unresolved[i] < unresolved[j] })

	return mapping, unresolved
}

// MissingRecommended returns recommended fields absent from the mapping,
// for the deficiency report.
func MissingRecommended(mapping Mapping) []logbook.CanonicalField {
	var missing []logbook.CanonicalField
	for _, field := range logbook.RecommendedFields {
		if _, ok := mapping[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

func exactHeader(normalized []string, alias string, used map[int]bool) int {
	for i, h := range normalized {
		if used[i] || h == "" {
			continue
		}
		if h == alias {
			return i
		}
	}
	return -1
}

func substringHeader(normalized []string, alias string, used map[int]bool) int {
	for i, h := range normalized {
		if used[i] || h == "" {
			continue
		}
		if strings.Contains(h, alias) || strings.Contains(alias, h) {
			return i
		}
	}
	return -1
}

// findHeader resolves an explicit name: exact first, substring second.
func findHeader(normalized []string, name string, used map[int]bool) int {
	if name == "" {
		return -1
	}
	if idx := exactHeader(normalized, name, used); idx >= 0 {
		return idx
	}
	for i, h := range normalized {
		if used[i] || h == "" {
			continue
		}
		if strings.Contains(h, name) {
			return i
		}
	}
	return -1
}

package query

import "strings"

// SortField is one ORDER BY term expressed as a view name.
type SortField struct {
	Field      string
	Descending bool
}

// ParseSortFields parses "name,-created_at" into sort fields.
// A leading "-" means descending. Empty segments are skipped.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	fields := make([]SortField, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || part == "-" {
			continue
		}
		if strings.HasPrefix(part, "-") {
			fields = append(fields, SortField{Field: part[1:], Descending: true})
			continue
		}
		fields = append(fields, SortField{Field: part})
	}
	return fields
}

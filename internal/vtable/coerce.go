package vtable

import "fmt"

// CoerceRows converts loosely typed input into a dataset. Supported inputs
// are []Row, []*Row and []any whose elements are Row, *Row or
// map[string]any (as produced by encoding/json). Any other value, including
// nil, yields an empty dataset. Malformed elements are kept with empty
// fields rather than rejected.
func CoerceRows(v any) []Row {
	switch rows := v.(type) {
	case []Row:
		if rows == nil {
			return []Row{}
		}
		return rows
	case []*Row:
		out := make([]Row, 0, len(rows))
		for _, r := range rows {
			if r == nil {
				out = append(out, Row{})
				continue
			}
			out = append(out, *r)
		}
		return out
	case []any:
		out := make([]Row, 0, len(rows))
		for _, item := range rows {
			out = append(out, coerceRow(item))
		}
		return out
	default:
		return []Row{}
	}
}

func coerceRow(v any) Row {
	switch r := v.(type) {
	case Row:
		return r
	case *Row:
		if r != nil {
			return *r
		}
	case map[string]any:
		return Row{
			ID:       field(r, "id"),
			Customer: field(r, "customer"),
			Amount:   field(r, "amount"),
			Status:   Status(field(r, "status")),
		}
	}
	return Row{}
}

func field(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

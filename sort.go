package restq

import "strings"

// ConvertSort parses the raw _sort value into an ordered sort-entry list.
//
// Two input shapes are accepted:
//   - a comma-separated string: "id:asc,price:desc"
//   - an array of strings: []any{"id:asc", "price:desc"} (or []string)
//
// Both shapes produce identical output. Each element has the form
// "field[:order]"; order defaults to asc and is matched case-insensitively
// against asc and desc. Segments past the second colon are ignored, so
// "id:asc:junk" still sorts by id ascending, but an explicit empty order
// ("id:") fails. Input order is preserved - the first entry is the primary
// sort key.
//
// Any other input type, a non-string element, an empty field name, or an
// unrecognized order token fails with an InvalidInputError.
func ConvertSort(v any) ([]SortEntry, error) {
	var elems []string
	switch val := v.(type) {
	case string:
		elems = strings.Split(val, ",")
	case []string:
		elems = val
	case []any:
		elems = make([]string, len(val))
		for i, raw := range val {
			s, ok := raw.(string)
			if !ok {
				return nil, invalidInputf(paramSort, "sort entry %v (%T) is not a string", raw, raw)
			}
			elems[i] = s
		}
	default:
		return nil, invalidInputf(paramSort, "expected a comma-separated string or an array of strings, got %v (%T)", v, v)
	}

	entries := make([]SortEntry, len(elems))
	for i, elem := range elems {
		entry, err := parseSortEntry(elem)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}

// parseSortEntry parses one "field[:order]" element.
func parseSortEntry(elem string) (SortEntry, error) {
	parts := strings.Split(elem, ":")
	field := parts[0]
	if field == "" {
		return SortEntry{}, invalidInputf(paramSort, "sort entry %q has an empty field name", elem)
	}

	order := OrderAsc
	if len(parts) > 1 {
		switch SortOrder(strings.ToLower(parts[1])) {
		case OrderAsc:
			order = OrderAsc
		case OrderDesc:
			order = OrderDesc
		default:
			return SortEntry{}, invalidInputf(paramSort, "sort order %q must be %q or %q", parts[1], OrderAsc, OrderDesc)
		}
	}
	return SortEntry{Field: field, Order: order}, nil
}

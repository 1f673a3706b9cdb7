package restq

import (
	"slices"
	"strings"
)

// ParseWhere expands raw filter params into a flat ordered clause list.
//
// Two input shapes are accepted:
//   - a mapping of clause key to value
//   - an array of such mappings, whose clause lists concatenate in order
//
// Mapping keys are visited in sorted order: Go randomizes map iteration, so
// sorting is what makes clause output deterministic. Array element order is
// preserved as given. Any other input type fails with an InvalidInputError.
//
// The input is never mutated; values land in clauses unmodified.
func ParseWhere(v any) ([]Clause, error) {
	switch val := v.(type) {
	case map[string]any:
		clauses := make([]Clause, 0, len(val))
		for _, key := range sortedKeys(val) {
			clause, err := parseClauseKey(key, val[key])
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, clause)
		}
		return clauses, nil
	case []any:
		clauses := []Clause{}
		for _, elem := range val {
			sub, err := ParseWhere(elem)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, sub...)
		}
		return clauses, nil
	default:
		return nil, invalidInputf(paramWhere,
			"expected a filter mapping or an array of filter mappings, got %v (%T)", v, v)
	}
}

// parseClauseKey disambiguates one clause key and builds its clause.
//
// The key grammar is overloaded: price_gte is field "price" with operator
// "gte", but first_name is a plain field because "name" is not an operator.
// Disambiguation splits at the LAST underscore and lets a recognized
// operator suffix win. A field literally named cost_lt therefore cannot be
// expressed - that ambiguity is part of the key grammar, and downstream
// compatibility depends on keeping the same precedence.
//
// The keys _and and _or (operator suffix with an empty field candidate) are
// boolean compositions: their values re-enter ParseWhere per group.
func parseClauseKey(key string, value any) (Clause, error) {
	idx := strings.LastIndex(key, "_")
	if idx == -1 {
		// No underscore: whole key is the field, implicit equality.
		return Condition{Field: key, Value: value}, nil
	}

	field, op := key[:idx], Operator(key[idx+1:])

	if (op == OpAnd || op == OpOr) && field == "" {
		groups, err := parseClauseGroups(value)
		if err != nil {
			return nil, err
		}
		return Conjunction{Operator: op, Groups: groups}, nil
	}

	if !ValidOperators[op] {
		// Suffix is not an operator: the underscore belongs to the field name.
		return Condition{Field: key, Value: value}, nil
	}

	return Condition{Field: field, Operator: op, Value: value}, nil
}

// parseClauseGroups expands an _and/_or value into clause groups.
// A non-array value is treated as a single group.
func parseClauseGroups(value any) ([][]Clause, error) {
	elems, ok := value.([]any)
	if !ok {
		elems = []any{value}
	}

	groups := make([][]Clause, len(elems))
	for i, elem := range elems {
		sub, err := ParseWhere(elem)
		if err != nil {
			return nil, err
		}
		groups[i] = sub
	}
	return groups, nil
}

// sortedKeys returns the mapping's keys in ascending order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

package restq

import "encoding/json"

// Clause represents one filter condition in a query descriptor's where list.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in downstream query builders.
//
// Clause types:
//   - Condition: field compared to a value with one operator
//   - Conjunction: and/or composition of recursively parsed clause groups
type Clause interface {
	clauseNode() // Marker method - seals interface to this package
}

// Condition is a single field comparison.
//
// Semantics:
//
//	<field> <operator> <value>
//
// Field is the dotted or underscored path exactly as it appeared in the
// filter key (minus any recognized operator suffix). Operator is empty for
// clauses parsed from a bare field key; empty means equality, and the JSON
// encoding omits the operator key in that case. Value is carried through
// from the raw params unmodified - no normalization, no deduplication.
//
// Example:
//
//	price_gte=10 parses to
//
//	Condition{Field: "price", Operator: OpGreaterThanEqual, Value: 10}
//
// and a key without a recognized suffix keeps its underscores:
//
//	first_name=Jo parses to
//
//	Condition{Field: "first_name", Value: "Jo"}
type Condition struct {
	Field    string
	Operator Operator // empty = implicit equality
	Value    any
}

func (Condition) clauseNode() {}

// Op returns the effective operator: OpEqual when the condition was parsed
// from a bare field key with no operator suffix.
func (c Condition) Op() Operator {
	if c.Operator == "" {
		return OpEqual
	}
	return c.Operator
}

// MarshalJSON implements json.Marshaler for Condition.
// Implicit-equality conditions encode without an operator key:
//
//	{"field":"first_name","value":"Jo"}
//	{"field":"price","operator":"gte","value":10}
func (c Condition) MarshalJSON() ([]byte, error) {
	if c.Operator == "" {
		return json.Marshal(struct {
			Field string `json:"field"`
			Value any    `json:"value"`
		}{c.Field, c.Value})
	}
	return json.Marshal(struct {
		Field    string   `json:"field"`
		Operator Operator `json:"operator"`
		Value    any      `json:"value"`
	}{c.Field, c.Operator, c.Value})
}

// Conjunction is a boolean composition of clause groups.
//
// Semantics:
//
//	<group1> AND <group2> AND ... (Operator == OpAnd)
//	<group1> OR  <group2> OR  ... (Operator == OpOr)
//
// Each group is itself an ordered clause list, produced by re-running the
// group's raw value through ParseWhere. Groups nest arbitrarily: a group
// may contain further Conjunction clauses.
//
// Example:
//
//	_or=[{a: 1}, {b: 2}] parses to
//
//	Conjunction{Operator: OpOr, Groups: [][]Clause{
//	  {Condition{Field: "a", Value: 1}},
//	  {Condition{Field: "b", Value: 2}},
//	}}
type Conjunction struct {
	Operator Operator // OpAnd or OpOr
	Groups   [][]Clause
}

func (Conjunction) clauseNode() {}

// MarshalJSON implements json.Marshaler for Conjunction.
// The encoded form carries an explicit null field so conjunctions and
// conditions share one record shape on the wire:
//
//	{"field":null,"operator":"or","value":[[...],[...]]}
func (c Conjunction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Field    *string    `json:"field"`
		Operator Operator   `json:"operator"`
		Value    [][]Clause `json:"value"`
	}{nil, c.Operator, c.Groups})
}

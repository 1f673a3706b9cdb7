package restq

// Operator identifies a filter comparison or boolean composition operator.
//
// Comparison operators appear as key suffixes in filter params (price_gte)
// and on parsed Condition clauses. The boolean operators OpAnd and OpOr
// never appear as field suffixes - they only occur as the whole keys _and
// and _or, which parse into Conjunction clauses.
type Operator string

const (
	// OpEqual matches values equal to the operand. This is the implicit
	// operator for keys without a recognized suffix.
	OpEqual Operator = "eq"

	// OpNotEqual matches values not equal to the operand.
	OpNotEqual Operator = "ne"

	// OpIn matches values contained in the operand list.
	OpIn Operator = "in"

	// OpNotIn matches values not contained in the operand list.
	OpNotIn Operator = "nin"

	// OpContains matches values containing the operand (case-insensitive).
	OpContains Operator = "contains"

	// OpNotContains matches values not containing the operand (case-insensitive).
	OpNotContains Operator = "ncontains"

	// OpContainsCS matches values containing the operand (case-sensitive).
	// The trailing "s" in the wire token distinguishes it from OpContains.
	OpContainsCS Operator = "containss"

	// OpNotContainsCS matches values not containing the operand (case-sensitive).
	OpNotContainsCS Operator = "ncontainss"

	// OpLessThan matches values strictly below the operand.
	OpLessThan Operator = "lt"

	// OpLessThanEqual matches values at or below the operand.
	OpLessThanEqual Operator = "lte"

	// OpGreaterThan matches values strictly above the operand.
	OpGreaterThan Operator = "gt"

	// OpGreaterThanEqual matches values at or above the operand.
	OpGreaterThanEqual Operator = "gte"

	// OpNull matches on presence: value true requires the field to be null,
	// false requires it to be non-null.
	OpNull Operator = "null"
)

const (
	// OpAnd combines clause groups where all groups must match.
	OpAnd Operator = "and"

	// OpOr combines clause groups where at least one group must match.
	OpOr Operator = "or"
)

// ValidOperators defines the comparison operator vocabulary recognized in
// filter key suffixes. A key suffix outside this set is not an operator:
// the whole key is treated as a field name (see ParseWhere).
var ValidOperators = map[Operator]bool{
	OpEqual:            true,
	OpNotEqual:         true,
	OpIn:               true,
	OpNotIn:            true,
	OpContains:         true,
	OpNotContains:      true,
	OpContainsCS:       true,
	OpNotContainsCS:    true,
	OpLessThan:         true,
	OpLessThanEqual:    true,
	OpGreaterThan:      true,
	OpGreaterThanEqual: true,
	OpNull:             true,
}

// Package restq translates flat REST query params into normalized query
// descriptors.
//
// The input convention is the URL-query-string shape many REST stacks emit:
// reserved keys (_sort, _start, _limit, _where, _publicationState) next to
// suffix-encoded filter keys such as price_gte or title_contains. Convert
// turns one such mapping into a Query descriptor - pagination bounds, an
// ordered sort list, an optional publication state, and an ordered filter
// clause list - or fails with an InvalidInputError. It only parses and
// restructures: no schema validation, no query execution, no deduplication.
//
// ARCHITECTURE:
//
// Four pure functions over a shared key grammar, with data flowing strictly
// downward:
//
//	[raw params] → Convert → [Query descriptor]
//
//	Convert (dispatcher)
//	    → ConvertSort / ConvertStart / ConvertLimit /
//	      ConvertPublicationState       (scalar parsers, leaf)
//	    → ParseWhere                    (filter-clause parser)
//	        → parseClauseKey            (clause-key splitter)
//	            → ParseWhere again for nested _and/_or groups
//
// The dispatcher seeds pagination defaults, overlays caller defaults,
// routes the reserved keys to scalar parsers, and folds every remaining
// key into the filter pipeline. The one recursive edge is boolean
// composition: an _and/_or value is an array of groups, each re-parsed
// through ParseWhere.
//
// CRITICAL PATTERNS:
//
// Sealed clause union. Clause is a sealed interface with exactly two
// implementations, Condition and Conjunction. Downstream query builders
// can type-switch exhaustively instead of probing a nullable field.
//
// Last underscore wins. A filter key is split at its LAST underscore; the
// suffix is an operator only if it is in ValidOperators, otherwise the
// whole key is a field name. first_name stays a field; price_gte does not.
// A field literally named cost_lt is not expressible - that ambiguity is
// part of the key grammar, and the precedence must not change.
//
// Deterministic output. Go randomizes map iteration, so every mapping
// (raw params, filter mappings) is read in sorted key order. Identical
// input always produces an identical descriptor, and MarshalCanonical
// renders it to identical bytes.
//
// Guarded coercion. Cross-type conversion (numeric strings for _start and
// _limit, single value to group list for _and/_or) is explicit and fails
// with named cases. Booleans and empty strings never silently become
// numbers.
//
// No package state. The valid publication states are configuration: pass
// WithPublicationStates to New, or a state slice to
// ConvertPublicationState. Nothing is read from globals and nothing is
// mutated after construction, so converters are safe for concurrent use.
//
// Usage:
//
//	q, err := restq.Convert(map[string]any{
//	    "_sort":     "price:desc",
//	    "_limit":    "10",
//	    "price_gte": 100,
//	}, nil)
//	if err != nil {
//	    // restq.IsInvalidInput(err) == true for malformed params
//	}
//	// q.Limit == 10, q.Sort == [{price desc}],
//	// q.Where == [Condition{Field: "price", Operator: OpGreaterThanEqual, Value: 100}]
package restq
